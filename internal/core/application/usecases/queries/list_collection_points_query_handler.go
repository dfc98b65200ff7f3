package queries

import (
	"context"

	"reco/internal/core/domain/model/donation"
	"reco/internal/core/domain/model/kernel"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListCollectionPointsQueryHandler struct {
	db *gorm.DB
}

func NewListCollectionPointsQueryHandler(db *gorm.DB) ListCollectionPointsQueryHandler {
	return ListCollectionPointsQueryHandler{db: db}
}

// Handle orders points by name.
func (h ListCollectionPointsQueryHandler) Handle(
	ctx context.Context,
	query ListCollectionPointsQuery,
) ([]CollectionPointView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	inventory := psql().
		Select("COUNT(*)").
		From("donations d").
		Where("d.collection_point_id = cp.id").
		Where(sq.Eq{"d.status": []int{int(donation.Approved), int(donation.InRoute)}})
	inventorySQL, inventoryArgs, err := inventory.ToSql()
	if err != nil {
		return nil, err
	}

	b := psql().
		Select("cp.id", "cp.name", "cp.address", "cp.latitude", "cp.longitude",
			"cp.opening_hours", "cp.capacity", "cp.active").
		Column("("+inventorySQL+") AS inventory", inventoryArgs...).
		From("collection_points cp").
		OrderBy("cp.name", "cp.id")
	if query.activeOnly {
		b = b.Where(sq.Eq{"cp.active": true})
	}

	sqlQuery, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(sqlQuery, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	points := make([]CollectionPointView, 0)
	for rows.Next() {
		var v CollectionPointView
		var id uuid.UUID
		err = rows.Scan(&id, &v.Name, &v.Address, &v.Latitude, &v.Longitude,
			&v.OpeningHours, &v.Capacity, &v.Active, &v.Inventory)
		if err != nil {
			return nil, err
		}
		if v.ID, err = kernel.UUIDFromGoogle(id); err != nil {
			return nil, err
		}
		v.HasRoom = v.Capacity == 0 || v.Inventory < int64(v.Capacity)
		points = append(points, v)
	}

	return points, rows.Err()
}
