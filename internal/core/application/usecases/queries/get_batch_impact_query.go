package queries

import (
	"errors"

	"reco/internal/core/domain/model/kernel"
	"reco/internal/core/domain/model/recycling"
	"reco/internal/pkg/guard"
)

var ErrGetBatchImpactQueryIsNotConstructed = errors.New(
	"GetBatchImpactQuery must be created via NewGetBatchImpactQuery constructor",
)

type GetBatchImpactQuery struct {
	batchID kernel.UUID
	guard   guard.ConstructorGuard
}

func NewGetBatchImpactQuery(batchID kernel.UUID) (GetBatchImpactQuery, error) {
	if err := batchID.Validate(); err != nil {
		return GetBatchImpactQuery{}, err
	}
	return GetBatchImpactQuery{batchID: batchID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetBatchImpactQuery) Validate() error {
	return q.guard.Validate(ErrGetBatchImpactQueryIsNotConstructed)
}

// GetBatchImpactQueryResponse computes Impact from the actual weight when
// the batch was weighed, otherwise from the estimate.
type GetBatchImpactQueryResponse struct {
	BatchID           kernel.UUID
	Code              string
	Status            string
	Items             int64
	EstimatedWeightKg float64
	ActualWeightKg    *float64
	Impact            recycling.Impact
}
