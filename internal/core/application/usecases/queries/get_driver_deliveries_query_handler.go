package queries

import (
	"context"

	"reco/internal/core/domain/model/delivery"

	sq "github.com/Masterminds/squirrel"
	"gorm.io/gorm"
)

type GetDriverDeliveriesQueryHandler struct {
	db *gorm.DB
}

func NewGetDriverDeliveriesQueryHandler(db *gorm.DB) GetDriverDeliveriesQueryHandler {
	return GetDriverDeliveriesQueryHandler{db: db}
}

func (h GetDriverDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetDriverDeliveriesQuery,
) (GetDriverDeliveriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDriverDeliveriesQueryResponse{}, err
	}
	if err := query.actor.RequireOwnerOrStaff("view deliveries", query.driverID); err != nil {
		return GetDriverDeliveriesQueryResponse{}, err
	}

	resp := GetDriverDeliveriesQueryResponse{
		Active: make([]DeliveryView, 0),
		Recent: make([]DeliveryView, 0),
	}

	byStatus, err := countByColumn(ctx, h.db, "deliveries", "status", sq.Eq{"driver_id": query.driverID.Bytes()})
	if err != nil {
		return resp, err
	}
	resp.Stats = DriverDeliveryStats{
		Pending:   byStatus[int(delivery.Assigned)] + byStatus[int(delivery.PickedUp)],
		InTransit: byStatus[int(delivery.InTransit)],
		Completed: byStatus[int(delivery.Delivered)],
	}
	for _, n := range byStatus {
		resp.Stats.Total += n
	}

	terminal := []int{int(delivery.Delivered), int(delivery.Canceled)}
	base := deliveriesFrom().
		Where(sq.Eq{"dl.driver_id": query.driverID.Bytes()}).
		OrderBy("dl.assigned_at DESC", "dl.id")

	if resp.Active, err = scanDeliveries(ctx, h.db, base.Where(sq.NotEq{"dl.status": terminal})); err != nil {
		return resp, err
	}
	if resp.Recent, err = scanDeliveries(ctx, h.db, base.Where(sq.Eq{"dl.status": terminal}).Limit(recentLimit)); err != nil {
		return resp, err
	}

	return resp, nil
}
