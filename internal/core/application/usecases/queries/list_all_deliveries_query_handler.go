package queries

import (
	"context"

	"reco/internal/core/domain/model/delivery"

	sq "github.com/Masterminds/squirrel"
	"gorm.io/gorm"
)

type ListAllDeliveriesQueryHandler struct {
	db *gorm.DB
}

func NewListAllDeliveriesQueryHandler(db *gorm.DB) ListAllDeliveriesQueryHandler {
	return ListAllDeliveriesQueryHandler{db: db}
}

func (h ListAllDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query ListAllDeliveriesQuery,
) (ListAllDeliveriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListAllDeliveriesQueryResponse{}, err
	}
	if err := query.actor.RequireStaff("list deliveries"); err != nil {
		return ListAllDeliveriesQueryResponse{}, err
	}

	stats, err := deliveryStats(ctx, h.db, nil)
	if err != nil {
		return ListAllDeliveriesQueryResponse{}, err
	}

	b := deliveriesFrom().OrderBy("dl.assigned_at DESC", "dl.id")
	if query.status != delivery.Unknown {
		b = b.Where(sq.Eq{"dl.status": int(query.status)})
	}
	if query.driverID != nil {
		b = b.Where(sq.Eq{"dl.driver_id": query.driverID.Bytes()})
	}

	deliveries, err := scanDeliveries(ctx, h.db, b)
	if err != nil {
		return ListAllDeliveriesQueryResponse{}, err
	}
	return ListAllDeliveriesQueryResponse{Stats: stats, Deliveries: deliveries}, nil
}
