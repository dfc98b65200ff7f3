package queries

import (
	"errors"
	"strings"

	"reco/internal/core/domain/model/donationrequest"
	"reco/internal/core/domain/model/kernel"
	"reco/internal/pkg/guard"
)

var ErrListMyRequestsQueryIsNotConstructed = errors.New(
	"ListMyRequestsQuery must be created via NewListMyRequestsQuery constructor",
)

// ListMyRequestsQuery lists the acting beneficiary's requests, optionally
// narrowed to one status. Stats always cover every status.
type ListMyRequestsQuery struct {
	actor  kernel.Actor
	status donationrequest.Status
	guard  guard.ConstructorGuard
}

func NewListMyRequestsQuery(actor kernel.Actor, status string) (ListMyRequestsQuery, error) {
	q := ListMyRequestsQuery{actor: actor, guard: guard.NewConstructorGuard()}

	var statusErr error
	if strings.TrimSpace(status) != "" {
		q.status, statusErr = donationrequest.ParseStatus(status)
	}
	if err := errors.Join(actor.Validate(), statusErr); err != nil {
		return ListMyRequestsQuery{}, err
	}
	return q, nil
}

func (q ListMyRequestsQuery) Validate() error {
	return q.guard.Validate(ErrListMyRequestsQueryIsNotConstructed)
}

type ListMyRequestsQueryResponse struct {
	Stats    RequestStats
	Requests []RequestView
}
