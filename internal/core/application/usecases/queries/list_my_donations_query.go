package queries

import (
	"errors"

	"reco/internal/core/domain/model/kernel"
	"reco/internal/pkg/guard"
)

var ErrListMyDonationsQueryIsNotConstructed = errors.New(
	"ListMyDonationsQuery must be created via NewListMyDonationsQuery constructor",
)

// ListMyDonationsQuery lists every donation the acting donor listed, in any
// status, newest first.
type ListMyDonationsQuery struct {
	actor kernel.Actor
	guard guard.ConstructorGuard
}

func NewListMyDonationsQuery(actor kernel.Actor) (ListMyDonationsQuery, error) {
	if err := actor.Validate(); err != nil {
		return ListMyDonationsQuery{}, err
	}
	return ListMyDonationsQuery{actor: actor, guard: guard.NewConstructorGuard()}, nil
}

func (q ListMyDonationsQuery) Validate() error {
	return q.guard.Validate(ErrListMyDonationsQueryIsNotConstructed)
}

type ListMyDonationsQueryResponse struct {
	Stats     DonationStats
	Donations []DonationView
}
