package recyclingrepo

import (
	"context"

	"reco/internal/adapters/out/postgres/pgutil"
	"reco/internal/core/domain/model/kernel"
	"reco/internal/core/domain/model/recycling"

	"gorm.io/gorm"
)

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormPartnerRepository implements ports.RecyclingPartnerRepository.
type GormPartnerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
	lock    bool
}

func NewGormPartnerRepository(db *gorm.DB, tracker aggregateTracker, lock bool) *GormPartnerRepository {
	return &GormPartnerRepository{db: db, tracker: tracker, lock: lock}
}

// Add fails with Conflict on a tax id that is already registered.
func (r *GormPartnerRepository) Add(ctx context.Context, aggregate *recycling.Partner) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := partnerFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgutil.WriteError("recycling partner", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormPartnerRepository) Update(ctx context.Context, aggregate *recycling.Partner) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := partnerFromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&PartnerDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return pgutil.WriteError("recycling partner", result.Error)
	}
	if result.RowsAffected == 0 {
		return pgutil.ReadError("recycling partner", aggregate.ID().String(), gorm.ErrRecordNotFound)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormPartnerRepository) Get(ctx context.Context, id kernel.UUID) (*recycling.Partner, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PartnerDTO
	err := pgutil.Locked(r.db.WithContext(ctx), r.lock).First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		return nil, pgutil.ReadError("recycling partner", id.String(), err)
	}

	return partnerToDomain(dto)
}
