package queries

import (
	"context"
	"database/sql"
	"errors"

	"reco/internal/core/domain/model/recycling"
	"reco/internal/pkg/errs"

	sq "github.com/Masterminds/squirrel"
	"gorm.io/gorm"
)

type GetBatchImpactQueryHandler struct {
	db *gorm.DB
}

func NewGetBatchImpactQueryHandler(db *gorm.DB) GetBatchImpactQueryHandler {
	return GetBatchImpactQueryHandler{db: db}
}

func (h GetBatchImpactQueryHandler) Handle(
	ctx context.Context,
	query GetBatchImpactQuery,
) (GetBatchImpactQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetBatchImpactQueryResponse{}, err
	}

	sqlQuery, args, err := psql().
		Select("b.code", "b.status", "b.estimated_weight_kg", "b.actual_weight_kg",
			"(SELECT COUNT(*) FROM recycling_batch_items i WHERE i.batch_id = b.id)").
		From("recycling_batches b").
		Where(sq.Eq{"b.id": query.batchID.Bytes()}).
		ToSql()
	if err != nil {
		return GetBatchImpactQueryResponse{}, err
	}

	resp := GetBatchImpactQueryResponse{BatchID: query.batchID}
	var status int
	err = h.db.WithContext(ctx).Raw(sqlQuery, args...).Row().
		Scan(&resp.Code, &status, &resp.EstimatedWeightKg, &resp.ActualWeightKg, &resp.Items)
	if errors.Is(err, sql.ErrNoRows) {
		return GetBatchImpactQueryResponse{}, errs.NewObjectNotFoundError("recycling batch", query.batchID.String())
	}
	if err != nil {
		return GetBatchImpactQueryResponse{}, err
	}

	resp.Status = recycling.BatchStatus(status).String()
	weight := resp.EstimatedWeightKg
	if resp.ActualWeightKg != nil {
		weight = *resp.ActualWeightKg
	}
	resp.Impact = recycling.ImpactOf(weight)

	return resp, nil
}
