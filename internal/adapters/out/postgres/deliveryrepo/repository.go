package deliveryrepo

import (
	"context"
	"errors"

	"reco/internal/adapters/out/postgres/pgutil"
	"reco/internal/core/domain/model/delivery"
	"reco/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormDeliveryRepository implements ports.DeliveryRepository.
type GormDeliveryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
	lock    bool
}

func NewGormDeliveryRepository(db *gorm.DB, tracker aggregateTracker, lock bool) *GormDeliveryRepository {
	return &GormDeliveryRepository{db: db, tracker: tracker, lock: lock}
}

// Add fails with Conflict when the donation already has a delivery.
func (r *GormDeliveryRepository) Add(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgutil.WriteError("delivery", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormDeliveryRepository) Update(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&DeliveryDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return pgutil.WriteError("delivery", result.Error)
	}
	if result.RowsAffected == 0 {
		return pgutil.ReadError("delivery", aggregate.ID().String(), gorm.ErrRecordNotFound)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryDTO
	err := pgutil.Locked(r.db.WithContext(ctx), r.lock).First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		return nil, pgutil.ReadError("delivery", id.String(), err)
	}

	return toDomain(dto)
}

// FindByDonation returns nil, nil when the donation has no delivery.
func (r *GormDeliveryRepository) FindByDonation(ctx context.Context, donationID kernel.UUID) (*delivery.Delivery, error) {
	if err := donationID.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryDTO
	err := pgutil.Locked(r.db.WithContext(ctx), r.lock).Take(&dto, "donation_id = ?", donationID.Bytes()).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return toDomain(dto)
}
