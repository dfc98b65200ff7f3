package queries

import (
	"context"

	"reco/internal/core/domain/model/kernel"
	"reco/internal/core/domain/model/recycling"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetRecyclingReportQueryHandler struct {
	db *gorm.DB
}

func NewGetRecyclingReportQueryHandler(db *gorm.DB) GetRecyclingReportQueryHandler {
	return GetRecyclingReportQueryHandler{db: db}
}

func (h GetRecyclingReportQueryHandler) Handle(
	ctx context.Context,
	query GetRecyclingReportQuery,
) (GetRecyclingReportQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetRecyclingReportQueryResponse{}, err
	}
	if err := query.actor.RequireStaff("view recycling report"); err != nil {
		return GetRecyclingReportQueryResponse{}, err
	}

	resp := GetRecyclingReportQueryResponse{
		Period:   query.period,
		Since:    query.period.Since(query.now),
		Partners: make([]PartnerStats, 0),
	}

	inPeriod := sq.And{}
	if resp.Since != nil {
		inPeriod = append(inPeriod, sq.GtOrEq{"b.created_at": *resp.Since})
	}

	var err error
	resp.TotalBatches, err = countRows(ctx, h.db,
		psql().Select("COUNT(*)").From("recycling_batches b").Where(inPeriod))
	if err != nil {
		return resp, err
	}

	resp.CertifiedBatches, err = countRows(ctx, h.db,
		psql().Select("COUNT(*)").From("recycling_batches b").
			Where(inPeriod).Where(sq.Eq{"b.status": int(recycling.Certified)}))
	if err != nil {
		return resp, err
	}

	resp.TotalItems, err = countRows(ctx, h.db,
		psql().Select("COUNT(*)").From("recycling_batch_items i").
			Join("recycling_batches b ON b.id = i.batch_id").Where(inPeriod))
	if err != nil {
		return resp, err
	}

	weightQuery, args, err := psql().
		Select("COALESCE(SUM(b.actual_weight_kg), 0)").
		From("recycling_batches b").
		Where(inPeriod).
		ToSql()
	if err != nil {
		return resp, err
	}
	if err := h.db.WithContext(ctx).Raw(weightQuery, args...).Row().Scan(&resp.TotalWeightKg); err != nil {
		return resp, err
	}
	resp.Impact = recycling.ImpactOf(resp.TotalWeightKg)

	partnersQuery, args, err := psql().
		Select("p.id", "p.company_name", "COUNT(b.id)", "COALESCE(SUM(b.actual_weight_kg), 0) AS weight").
		From("recycling_partners p").
		Join("recycling_batches b ON b.partner_id = p.id").
		Where(inPeriod).
		GroupBy("p.id", "p.company_name").
		OrderBy("weight DESC", "p.company_name").
		ToSql()
	if err != nil {
		return resp, err
	}

	rows, err := h.db.WithContext(ctx).Raw(partnersQuery, args...).Rows()
	if err != nil {
		return resp, err
	}
	defer rows.Close()

	for rows.Next() {
		var stats PartnerStats
		var id uuid.UUID
		if err := rows.Scan(&id, &stats.CompanyName, &stats.BatchCount, &stats.TotalWeightKg); err != nil {
			return resp, err
		}
		if stats.PartnerID, err = kernel.UUIDFromGoogle(id); err != nil {
			return resp, err
		}
		resp.Partners = append(resp.Partners, stats)
	}

	return resp, rows.Err()
}
