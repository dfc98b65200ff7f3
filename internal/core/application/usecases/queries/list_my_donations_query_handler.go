package queries

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"gorm.io/gorm"
)

type ListMyDonationsQueryHandler struct {
	db *gorm.DB
}

func NewListMyDonationsQueryHandler(db *gorm.DB) ListMyDonationsQueryHandler {
	return ListMyDonationsQueryHandler{db: db}
}

func (h ListMyDonationsQueryHandler) Handle(
	ctx context.Context,
	query ListMyDonationsQuery,
) (ListMyDonationsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListMyDonationsQueryResponse{}, err
	}

	owner := query.actor.ID().Bytes()
	stats, err := donationStats(ctx, h.db, sq.Eq{"donor_id": owner})
	if err != nil {
		return ListMyDonationsQueryResponse{}, err
	}

	donations, err := scanDonations(ctx, h.db,
		donationsFrom().Where(sq.Eq{"d.donor_id": owner}).OrderBy("d.created_at DESC", "d.id"))
	if err != nil {
		return ListMyDonationsQueryResponse{}, err
	}

	return ListMyDonationsQueryResponse{Stats: stats, Donations: donations}, nil
}
