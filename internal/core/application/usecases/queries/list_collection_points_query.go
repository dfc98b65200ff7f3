package queries

import (
	"errors"

	"reco/internal/core/domain/model/kernel"
	"reco/internal/pkg/guard"
)

var ErrListCollectionPointsQueryIsNotConstructed = errors.New(
	"ListCollectionPointsQuery must be created via NewListCollectionPointsQuery constructor",
)

// ListCollectionPointsQuery lists drop-off points with their inventory.
type ListCollectionPointsQuery struct {
	activeOnly bool
	guard      guard.ConstructorGuard
}

func NewListCollectionPointsQuery(activeOnly bool) ListCollectionPointsQuery {
	return ListCollectionPointsQuery{activeOnly: activeOnly, guard: guard.NewConstructorGuard()}
}

func (q ListCollectionPointsQuery) Validate() error {
	return q.guard.Validate(ErrListCollectionPointsQueryIsNotConstructed)
}

func (q ListCollectionPointsQuery) ActiveOnly() bool {
	return q.activeOnly
}

// CollectionPointView carries the point and the number of approved or
// in-route donations addressed to it.
type CollectionPointView struct {
	ID           kernel.UUID
	Name         string
	Address      string
	Latitude     float64
	Longitude    float64
	OpeningHours string
	Capacity     int
	Active       bool
	Inventory    int64
	HasRoom      bool
}
