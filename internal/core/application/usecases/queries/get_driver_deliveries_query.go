package queries

import (
	"errors"

	"reco/internal/core/domain/model/kernel"
	"reco/internal/pkg/guard"
)

var ErrGetDriverDeliveriesQueryIsNotConstructed = errors.New(
	"GetDriverDeliveriesQuery must be created via NewGetDriverDeliveriesQuery constructor",
)

// recentLimit caps the finished deliveries returned to a driver.
const recentLimit = 10

// GetDriverDeliveriesQuery returns a driver's work list. Drivers see their
// own list; staff may look at anyone's.
type GetDriverDeliveriesQuery struct {
	actor    kernel.Actor
	driverID kernel.UUID
	guard    guard.ConstructorGuard
}

func NewGetDriverDeliveriesQuery(actor kernel.Actor, driverID kernel.UUID) (GetDriverDeliveriesQuery, error) {
	if err := errors.Join(actor.Validate(), driverID.Validate()); err != nil {
		return GetDriverDeliveriesQuery{}, err
	}
	return GetDriverDeliveriesQuery{actor: actor, driverID: driverID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetDriverDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetDriverDeliveriesQueryIsNotConstructed)
}

type DriverDeliveryStats struct {
	Pending   int64
	InTransit int64
	Completed int64
	Total     int64
}

// GetDriverDeliveriesQueryResponse splits open work from the most recent
// finished deliveries. Both lists are newest first.
type GetDriverDeliveriesQueryResponse struct {
	Stats  DriverDeliveryStats
	Active []DeliveryView
	Recent []DeliveryView
}
