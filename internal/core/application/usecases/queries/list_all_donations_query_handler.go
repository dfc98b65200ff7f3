package queries

import (
	"context"

	"reco/internal/core/domain/model/donation"

	sq "github.com/Masterminds/squirrel"
	"gorm.io/gorm"
)

type ListAllDonationsQueryHandler struct {
	db *gorm.DB
}

func NewListAllDonationsQueryHandler(db *gorm.DB) ListAllDonationsQueryHandler {
	return ListAllDonationsQueryHandler{db: db}
}

func (h ListAllDonationsQueryHandler) Handle(
	ctx context.Context,
	query ListAllDonationsQuery,
) (ListAllDonationsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListAllDonationsQueryResponse{}, err
	}
	if err := query.actor.RequireStaff("list donations"); err != nil {
		return ListAllDonationsQueryResponse{}, err
	}

	stats, err := donationStats(ctx, h.db, nil)
	if err != nil {
		return ListAllDonationsQueryResponse{}, err
	}

	b := donationsFrom().OrderBy("d.created_at DESC", "d.id")
	if query.status != donation.Unknown {
		b = b.Where(sq.Eq{"d.status": int(query.status)})
	}
	if query.condition != donation.ConditionUnknown {
		b = b.Where(sq.Eq{"d.condition": int(query.condition)})
	}
	if query.search != "" {
		b = b.Where(sq.Or{
			sq.ILike{"d.title": contains(query.search)},
			sq.ILike{"d.description": contains(query.search)},
			sq.ILike{"p.username": contains(query.search)},
		})
	}

	donations, err := scanDonations(ctx, h.db, b)
	if err != nil {
		return ListAllDonationsQueryResponse{}, err
	}
	return ListAllDonationsQueryResponse{Stats: stats, Donations: donations}, nil
}
