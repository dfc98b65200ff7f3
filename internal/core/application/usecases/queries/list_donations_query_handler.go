package queries

import (
	"context"

	"reco/internal/core/domain/model/donation"

	sq "github.com/Masterminds/squirrel"
	"gorm.io/gorm"
)

type ListDonationsQueryHandler struct {
	db *gorm.DB
}

func NewListDonationsQueryHandler(db *gorm.DB) ListDonationsQueryHandler {
	return ListDonationsQueryHandler{db: db}
}

func (h ListDonationsQueryHandler) Handle(ctx context.Context, query ListDonationsQuery) (ListDonationsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListDonationsQueryResponse{}, err
	}

	b := donationsFrom().
		Where(sq.Eq{
			"d.status":    []int{int(donation.Approved), int(donation.Delivered)},
			"d.available": true,
		}).
		OrderBy(donationOrderBy[query.order]...)
	if query.search != "" {
		b = b.Where(sq.Or{
			sq.ILike{"d.title": contains(query.search)},
			sq.ILike{"d.description": contains(query.search)},
		})
	}
	if query.city != "" {
		b = b.Where(sq.ILike{"d.city": contains(query.city)})
	}
	if query.condition != donation.ConditionUnknown {
		b = b.Where(sq.Eq{"d.condition": int(query.condition)})
	}

	donations, err := scanDonations(ctx, h.db, b)
	if err != nil {
		return ListDonationsQueryResponse{}, err
	}
	return ListDonationsQueryResponse{Donations: donations}, nil
}
