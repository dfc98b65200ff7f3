package queries

import (
	"errors"

	"reco/internal/core/domain/model/kernel"
	"reco/internal/pkg/guard"
)

var ErrGetRequestQueryIsNotConstructed = errors.New(
	"GetRequestQuery must be created via NewGetRequestQuery constructor",
)

// GetRequestQuery loads one request for its beneficiary, the donor of the
// requested item or staff.
type GetRequestQuery struct {
	actor     kernel.Actor
	requestID kernel.UUID
	guard     guard.ConstructorGuard
}

func NewGetRequestQuery(actor kernel.Actor, requestID kernel.UUID) (GetRequestQuery, error) {
	if err := errors.Join(actor.Validate(), requestID.Validate()); err != nil {
		return GetRequestQuery{}, err
	}
	return GetRequestQuery{actor: actor, requestID: requestID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetRequestQuery) Validate() error {
	return q.guard.Validate(ErrGetRequestQueryIsNotConstructed)
}

type GetRequestQueryResponse struct {
	Request RequestView
}
