package queries

import (
	"errors"
	"strings"

	"reco/internal/core/domain/model/donation"
	"reco/internal/core/domain/model/kernel"
	"reco/internal/pkg/guard"
)

var ErrListAllDonationsQueryIsNotConstructed = errors.New(
	"ListAllDonationsQuery must be created via NewListAllDonationsQuery constructor",
)

// ListAllDonationsQuery is the staff review list over every donation.
type ListAllDonationsQuery struct {
	actor     kernel.Actor
	status    donation.Status
	condition donation.Condition
	search    string
	guard     guard.ConstructorGuard
}

func NewListAllDonationsQuery(actor kernel.Actor, status, condition, search string) (ListAllDonationsQuery, error) {
	q := ListAllDonationsQuery{
		actor:  actor,
		search: strings.TrimSpace(search),
		guard:  guard.NewConstructorGuard(),
	}

	var statusErr, conditionErr error
	if strings.TrimSpace(status) != "" {
		q.status, statusErr = donation.ParseStatus(status)
	}
	if strings.TrimSpace(condition) != "" {
		q.condition, conditionErr = donation.ParseCondition(condition)
	}
	if err := errors.Join(actor.Validate(), statusErr, conditionErr); err != nil {
		return ListAllDonationsQuery{}, err
	}
	return q, nil
}

func (q ListAllDonationsQuery) Validate() error {
	return q.guard.Validate(ErrListAllDonationsQueryIsNotConstructed)
}

// ListAllDonationsQueryResponse carries stats over every donation regardless
// of the filters.
type ListAllDonationsQueryResponse struct {
	Stats     DonationStats
	Donations []DonationView
}
