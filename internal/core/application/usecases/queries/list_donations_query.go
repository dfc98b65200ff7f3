package queries

import (
	"errors"
	"fmt"
	"strings"

	"reco/internal/core/domain/model/donation"
	"reco/internal/core/domain/model/kernel"
	"reco/internal/pkg/errs"
	"reco/internal/pkg/guard"
)

var ErrListDonationsQueryIsNotConstructed = errors.New(
	"ListDonationsQuery must be created via NewListDonationsQuery constructor",
)

// DonationOrder sorts the catalog.
type DonationOrder string

const (
	OrderRecent DonationOrder = "recent"
	OrderOldest DonationOrder = "oldest"
	OrderName   DonationOrder = "name"
)

var donationOrderBy = map[DonationOrder][]string{
	OrderRecent: {"d.created_at DESC", "d.id"},
	OrderOldest: {"d.created_at", "d.id"},
	OrderName:   {"d.title", "d.id"},
}

// ParseDonationOrder defaults to the most recent first.
func ParseDonationOrder(s string) (DonationOrder, error) {
	o := DonationOrder(strings.ToLower(strings.TrimSpace(s)))
	if o == "" {
		return OrderRecent, nil
	}
	if _, ok := donationOrderBy[o]; ok {
		return o, nil
	}
	return "", errs.NewValueIsInvalidErrorWithCause("order", fmt.Errorf("%q is not one of recent, oldest, name", s))
}

// ListDonationsQuery browses the public catalog: available donations that
// were approved or already delivered.
type ListDonationsQuery struct {
	actor     kernel.Actor
	search    string
	city      string
	condition donation.Condition
	order     DonationOrder
	guard     guard.ConstructorGuard
}

// NewListDonationsQuery matches search against title and description and
// city as a substring. Empty filters match everything.
func NewListDonationsQuery(actor kernel.Actor, search, city, condition, order string) (ListDonationsQuery, error) {
	q := ListDonationsQuery{
		actor:  actor,
		search: strings.TrimSpace(search),
		city:   strings.TrimSpace(city),
		guard:  guard.NewConstructorGuard(),
	}

	var conditionErr, orderErr error
	if strings.TrimSpace(condition) != "" {
		q.condition, conditionErr = donation.ParseCondition(condition)
	}
	q.order, orderErr = ParseDonationOrder(order)
	if err := errors.Join(actor.Validate(), conditionErr, orderErr); err != nil {
		return ListDonationsQuery{}, err
	}
	return q, nil
}

func (q ListDonationsQuery) Validate() error {
	return q.guard.Validate(ErrListDonationsQueryIsNotConstructed)
}

func (q ListDonationsQuery) Search() string {
	return q.search
}

func (q ListDonationsQuery) City() string {
	return q.city
}

func (q ListDonationsQuery) Condition() donation.Condition {
	return q.condition
}

func (q ListDonationsQuery) Order() DonationOrder {
	return q.order
}

type ListDonationsQueryResponse struct {
	Donations []DonationView
}
