package recyclingrepo

import (
	"context"

	"reco/internal/adapters/out/postgres/pgutil"
	"reco/internal/core/domain/model/kernel"
	"reco/internal/core/domain/model/recycling"

	"gorm.io/gorm"
)

// GormBatchRepository implements ports.RecyclingBatchRepository.
type GormBatchRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
	lock    bool
}

func NewGormBatchRepository(db *gorm.DB, tracker aggregateTracker, lock bool) *GormBatchRepository {
	return &GormBatchRepository{db: db, tracker: tracker, lock: lock}
}

// Add stores the batch with its items. A duplicate code or a donation that
// already sits in another batch fails with Conflict.
func (r *GormBatchRepository) Add(ctx context.Context, aggregate *recycling.Batch) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := batchFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgutil.WriteError("recycling batch", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes the batch row only.
func (r *GormBatchRepository) Update(ctx context.Context, aggregate *recycling.Batch) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := batchFromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&BatchDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("Items").
		Updates(&dto)
	if result.Error != nil {
		return pgutil.WriteError("recycling batch", result.Error)
	}
	if result.RowsAffected == 0 {
		return pgutil.ReadError("recycling batch", aggregate.ID().String(), gorm.ErrRecordNotFound)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormBatchRepository) Get(ctx context.Context, id kernel.UUID) (*recycling.Batch, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto BatchDTO
	err := pgutil.Locked(r.db.WithContext(ctx), r.lock).
		Preload("Items").
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		return nil, pgutil.ReadError("recycling batch", id.String(), err)
	}

	return batchToDomain(dto)
}

// Count returns the number of batches ever created.
func (r *GormBatchRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&BatchDTO{}).Count(&count).Error
	return count, err
}
