package queries

import (
	"errors"
	"strings"

	"reco/internal/core/domain/model/delivery"
	"reco/internal/core/domain/model/kernel"
	"reco/internal/pkg/guard"
)

var ErrListAllDeliveriesQueryIsNotConstructed = errors.New(
	"ListAllDeliveriesQuery must be created via NewListAllDeliveriesQuery constructor",
)

// ListAllDeliveriesQuery is the staff logistics board, optionally narrowed
// to one status or one driver.
type ListAllDeliveriesQuery struct {
	actor    kernel.Actor
	status   delivery.Status
	driverID *kernel.UUID
	guard    guard.ConstructorGuard
}

func NewListAllDeliveriesQuery(actor kernel.Actor, status string, driverID *kernel.UUID) (ListAllDeliveriesQuery, error) {
	q := ListAllDeliveriesQuery{actor: actor, driverID: driverID, guard: guard.NewConstructorGuard()}

	var statusErr, driverErr error
	if strings.TrimSpace(status) != "" {
		q.status, statusErr = delivery.ParseStatus(status)
	}
	if driverID != nil {
		driverErr = driverID.Validate()
	}
	if err := errors.Join(actor.Validate(), statusErr, driverErr); err != nil {
		return ListAllDeliveriesQuery{}, err
	}
	return q, nil
}

func (q ListAllDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrListAllDeliveriesQueryIsNotConstructed)
}

func (q ListAllDeliveriesQuery) Status() delivery.Status {
	return q.status
}

func (q ListAllDeliveriesQuery) DriverID() *kernel.UUID {
	return q.driverID
}

type ListAllDeliveriesQueryResponse struct {
	Stats      DeliveryStats
	Deliveries []DeliveryView
}
