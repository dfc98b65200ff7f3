package queries

import (
	"context"

	"reco/internal/core/domain/model/donationrequest"

	sq "github.com/Masterminds/squirrel"
	"gorm.io/gorm"
)

type ListMyRequestsQueryHandler struct {
	db *gorm.DB
}

func NewListMyRequestsQueryHandler(db *gorm.DB) ListMyRequestsQueryHandler {
	return ListMyRequestsQueryHandler{db: db}
}

func (h ListMyRequestsQueryHandler) Handle(
	ctx context.Context,
	query ListMyRequestsQuery,
) (ListMyRequestsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListMyRequestsQueryResponse{}, err
	}

	owner := query.actor.ID().Bytes()
	stats, err := requestStats(ctx, h.db, sq.Eq{"beneficiary_id": owner})
	if err != nil {
		return ListMyRequestsQueryResponse{}, err
	}

	b := requestsFrom().Where(sq.Eq{"r.beneficiary_id": owner}).OrderBy("r.created_at DESC", "r.id")
	if query.status != donationrequest.Unknown {
		b = b.Where(sq.Eq{"r.status": int(query.status)})
	}

	requests, err := scanRequests(ctx, h.db, b)
	if err != nil {
		return ListMyRequestsQueryResponse{}, err
	}

	return ListMyRequestsQueryResponse{Stats: stats, Requests: requests}, nil
}
