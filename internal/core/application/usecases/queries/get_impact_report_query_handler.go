package queries

import (
	"context"

	"reco/internal/core/domain/model/donation"
	"reco/internal/core/domain/model/recycling"

	sq "github.com/Masterminds/squirrel"
	"gorm.io/gorm"
)

// deliveredAt is when a donation reached its beneficiary. Donations handed
// over without a tracked delivery fall back to their listing time.
const deliveredAt = "COALESCE(dl.delivered_at, d.created_at)"

type GetImpactReportQueryHandler struct {
	db *gorm.DB
}

func NewGetImpactReportQueryHandler(db *gorm.DB) GetImpactReportQueryHandler {
	return GetImpactReportQueryHandler{db: db}
}

func (h GetImpactReportQueryHandler) Handle(
	ctx context.Context,
	query GetImpactReportQuery,
) (GetImpactReportQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetImpactReportQueryResponse{}, err
	}
	if err := query.actor.RequireStaff("view impact report"); err != nil {
		return GetImpactReportQueryResponse{}, err
	}

	resp := GetImpactReportQueryResponse{
		Period:      query.period,
		Since:       query.period.Since(query.now),
		ByCondition: make(map[string]int64),
		Monthly:     make([]MonthlyCount, 0),
	}

	delivered := sq.And{sq.Eq{"d.status": int(donation.Delivered)}}
	if resp.Since != nil {
		delivered = append(delivered, sq.Expr(deliveredAt+" >= ?", *resp.Since))
	}
	from := func(columns ...string) sq.SelectBuilder {
		return psql().Select(columns...).
			From("donations d").
			LeftJoin("deliveries dl ON dl.donation_id = d.id").
			Where(delivered)
	}

	var err error
	if resp.DeliveredDonations, err = countRows(ctx, h.db, from("COUNT(*)")); err != nil {
		return resp, err
	}
	if resp.UniqueBeneficiaries, err = countRows(ctx, h.db, from("COUNT(DISTINCT d.beneficiary_id)")); err != nil {
		return resp, err
	}
	resp.EstimatedWeightKg = float64(resp.DeliveredDonations) * recycling.UnitWeightKg
	resp.Impact = recycling.ImpactOf(resp.EstimatedWeightKg)

	if err = h.byCondition(ctx, from("d.condition", "COUNT(*)").GroupBy("d.condition"), resp.ByCondition); err != nil {
		return resp, err
	}

	monthly := from("date_trunc('month', "+deliveredAt+") AS month", "COUNT(*)").
		GroupBy("month").
		OrderBy("month")
	if resp.Monthly, err = h.monthly(ctx, monthly); err != nil {
		return resp, err
	}

	return resp, nil
}

func (h GetImpactReportQueryHandler) byCondition(ctx context.Context, b sq.SelectBuilder, out map[string]int64) error {
	query, args, err := b.ToSql()
	if err != nil {
		return err
	}

	rows, err := h.db.WithContext(ctx).Raw(query, args...).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var condition int
		var n int64
		if err := rows.Scan(&condition, &n); err != nil {
			return err
		}
		out[donation.Condition(condition).String()] = n
	}
	return rows.Err()
}

func (h GetImpactReportQueryHandler) monthly(ctx context.Context, b sq.SelectBuilder) ([]MonthlyCount, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(query, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]MonthlyCount, 0)
	for rows.Next() {
		var m MonthlyCount
		if err := rows.Scan(&m.Month, &m.Count); err != nil {
			return nil, err
		}
		m.Month = m.Month.UTC()
		out = append(out, m)
	}
	return out, rows.Err()
}
