package queries

import (
	"context"

	"reco/internal/pkg/errs"

	sq "github.com/Masterminds/squirrel"
	"gorm.io/gorm"
)

type GetRequestQueryHandler struct {
	db *gorm.DB
}

func NewGetRequestQueryHandler(db *gorm.DB) GetRequestQueryHandler {
	return GetRequestQueryHandler{db: db}
}

func (h GetRequestQueryHandler) Handle(ctx context.Context, query GetRequestQuery) (GetRequestQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetRequestQueryResponse{}, err
	}

	requests, err := scanRequests(ctx, h.db, requestsFrom().Where(sq.Eq{"r.id": query.requestID.Bytes()}))
	if err != nil {
		return GetRequestQueryResponse{}, err
	}
	if len(requests) == 0 {
		return GetRequestQueryResponse{}, errs.NewObjectNotFoundError("donation request", query.requestID.String())
	}

	r := requests[0]
	if !query.actor.Is(r.BeneficiaryID) && !query.actor.CanActFor(r.DonorID) {
		return GetRequestQueryResponse{}, errs.NewPermissionDeniedError("view donation request")
	}
	return GetRequestQueryResponse{Request: r}, nil
}
