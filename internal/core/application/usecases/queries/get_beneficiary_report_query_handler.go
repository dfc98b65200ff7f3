package queries

import (
	"context"
	"fmt"
	"time"

	"reco/internal/core/domain/model/donationrequest"
	"reco/internal/core/domain/model/kernel"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetBeneficiaryReportQueryHandler struct {
	db *gorm.DB
}

func NewGetBeneficiaryReportQueryHandler(db *gorm.DB) GetBeneficiaryReportQueryHandler {
	return GetBeneficiaryReportQueryHandler{db: db}
}

func (h GetBeneficiaryReportQueryHandler) Handle(
	ctx context.Context,
	query GetBeneficiaryReportQuery,
) (GetBeneficiaryReportQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetBeneficiaryReportQueryResponse{}, err
	}
	if err := query.actor.RequireStaff("view beneficiary report"); err != nil {
		return GetBeneficiaryReportQueryResponse{}, err
	}

	resp := GetBeneficiaryReportQueryResponse{
		Period:           query.period,
		Since:            query.period.Since(query.now),
		TopBeneficiaries: make([]BeneficiaryStats, 0),
	}

	inPeriod := sq.And{}
	if resp.Since != nil {
		inPeriod = append(inPeriod, sq.GtOrEq{"created_at": *resp.Since})
	}

	var err error
	if resp.Stats, err = requestStats(ctx, h.db, inPeriod); err != nil {
		return resp, err
	}
	if resp.Stats.Total > 0 {
		resp.ApprovalRate = float64(resp.Stats.Approved+resp.Stats.Delivered) * 100 / float64(resp.Stats.Total)
	}

	resp.UniqueBeneficiaries, err = countRows(ctx, h.db,
		psql().Select("COUNT(DISTINCT beneficiary_id)").From("donation_requests").Where(inPeriod))
	if err != nil {
		return resp, err
	}

	if resp.TopBeneficiaries, err = h.top(ctx, resp.Since); err != nil {
		return resp, err
	}

	return resp, nil
}

func (h GetBeneficiaryReportQueryHandler) top(ctx context.Context, since *time.Time) ([]BeneficiaryStats, error) {
	accepted := fmt.Sprintf("COUNT(*) FILTER (WHERE r.status IN (%d, %d))",
		int(donationrequest.Approved), int(donationrequest.Delivered))

	where := sq.And{}
	if since != nil {
		where = append(where, sq.GtOrEq{"r.created_at": *since})
	}

	query, args, err := psql().
		Select("r.beneficiary_id", "COALESCE(p.username, '')", "COUNT(*) AS total", accepted).
		From("donation_requests r").
		LeftJoin("profiles p ON p.id = r.beneficiary_id").
		Where(where).
		GroupBy("r.beneficiary_id", "p.username").
		OrderBy("total DESC", "p.username").
		Limit(topBeneficiariesLimit).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(query, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]BeneficiaryStats, 0)
	for rows.Next() {
		var s BeneficiaryStats
		var id uuid.UUID
		if err := rows.Scan(&id, &s.Username, &s.Requests, &s.Accepted); err != nil {
			return nil, err
		}
		if s.ProfileID, err = kernel.UUIDFromGoogle(id); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
