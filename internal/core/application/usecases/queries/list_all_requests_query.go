package queries

import (
	"errors"
	"strings"

	"reco/internal/core/domain/model/donationrequest"
	"reco/internal/core/domain/model/kernel"
	"reco/internal/pkg/guard"
)

var ErrListAllRequestsQueryIsNotConstructed = errors.New(
	"ListAllRequestsQuery must be created via NewListAllRequestsQuery constructor",
)

// ListAllRequestsQuery is the staff review list over every request.
type ListAllRequestsQuery struct {
	actor  kernel.Actor
	status donationrequest.Status
	guard  guard.ConstructorGuard
}

func NewListAllRequestsQuery(actor kernel.Actor, status string) (ListAllRequestsQuery, error) {
	q := ListAllRequestsQuery{actor: actor, guard: guard.NewConstructorGuard()}

	var statusErr error
	if strings.TrimSpace(status) != "" {
		q.status, statusErr = donationrequest.ParseStatus(status)
	}
	if err := errors.Join(actor.Validate(), statusErr); err != nil {
		return ListAllRequestsQuery{}, err
	}
	return q, nil
}

func (q ListAllRequestsQuery) Validate() error {
	return q.guard.Validate(ErrListAllRequestsQueryIsNotConstructed)
}

type ListAllRequestsQueryResponse struct {
	Stats    RequestStats
	Requests []RequestView
}
