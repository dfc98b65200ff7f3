package ports

import (
	"context"

	"reco/internal/core/domain/model/kernel"
	"reco/internal/core/domain/model/recycling"
)

// RecyclingBatchRepository persists batches with their item set. Batch codes
// are unique: a duplicate returns errs.ConflictError.
type RecyclingBatchRepository interface {
	Add(ctx context.Context, aggregate *recycling.Batch) error

	Update(ctx context.Context, aggregate *recycling.Batch) error

	Get(ctx context.Context, id kernel.UUID) (*recycling.Batch, error)

	// Count returns the number of batches ever created.
	Count(ctx context.Context) (int64, error)
}

// RecyclingPartnerRepository persists partners. Tax ids are unique.
type RecyclingPartnerRepository interface {
	Add(ctx context.Context, aggregate *recycling.Partner) error

	Update(ctx context.Context, aggregate *recycling.Partner) error

	Get(ctx context.Context, id kernel.UUID) (*recycling.Partner, error)
}
