package queries

import (
	"context"

	"reco/internal/core/domain/model/donationrequest"

	sq "github.com/Masterminds/squirrel"
	"gorm.io/gorm"
)

type ListAllRequestsQueryHandler struct {
	db *gorm.DB
}

func NewListAllRequestsQueryHandler(db *gorm.DB) ListAllRequestsQueryHandler {
	return ListAllRequestsQueryHandler{db: db}
}

// Handle lists pending requests first, then by age.
func (h ListAllRequestsQueryHandler) Handle(
	ctx context.Context,
	query ListAllRequestsQuery,
) (ListAllRequestsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListAllRequestsQueryResponse{}, err
	}
	if err := query.actor.RequireStaff("list donation requests"); err != nil {
		return ListAllRequestsQueryResponse{}, err
	}

	stats, err := requestStats(ctx, h.db, nil)
	if err != nil {
		return ListAllRequestsQueryResponse{}, err
	}

	b := requestsFrom().
		OrderByClause("CASE WHEN r.status = ? THEN 0 ELSE 1 END", int(donationrequest.Pending)).
		OrderBy("r.created_at DESC", "r.id")
	if query.status != donationrequest.Unknown {
		b = b.Where(sq.Eq{"r.status": int(query.status)})
	}

	requests, err := scanRequests(ctx, h.db, b)
	if err != nil {
		return ListAllRequestsQueryResponse{}, err
	}
	return ListAllRequestsQueryResponse{Stats: stats, Requests: requests}, nil
}
