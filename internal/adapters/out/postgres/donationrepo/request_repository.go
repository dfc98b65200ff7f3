package donationrepo

import (
	"context"
	"errors"

	"reco/internal/adapters/out/postgres/pgutil"
	"reco/internal/core/domain/model/donationrequest"
	"reco/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GormRequestRepository implements ports.DonationRequestRepository.
type GormRequestRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
	lock    bool
}

func NewGormRequestRepository(db *gorm.DB, tracker aggregateTracker, lock bool) *GormRequestRepository {
	return &GormRequestRepository{db: db, tracker: tracker, lock: lock}
}

// Add fails with Conflict when the beneficiary already asked for the donation.
func (r *GormRequestRepository) Add(ctx context.Context, aggregate *donationrequest.Request) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := requestFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgutil.WriteError("donation request", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormRequestRepository) Update(ctx context.Context, aggregate *donationrequest.Request) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := requestFromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&RequestDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return pgutil.WriteError("donation request", result.Error)
	}
	if result.RowsAffected == 0 {
		return pgutil.ReadError("donation request", aggregate.ID().String(), gorm.ErrRecordNotFound)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormRequestRepository) Get(ctx context.Context, id kernel.UUID) (*donationrequest.Request, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RequestDTO
	err := pgutil.Locked(r.db.WithContext(ctx), r.lock).First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		return nil, pgutil.ReadError("donation request", id.String(), err)
	}

	return requestToDomain(dto)
}

// FindByPair returns nil, nil when the beneficiary has not asked yet.
func (r *GormRequestRepository) FindByPair(
	ctx context.Context,
	donationID, beneficiaryID kernel.UUID,
) (*donationrequest.Request, error) {
	if err := errors.Join(donationID.Validate(), beneficiaryID.Validate()); err != nil {
		return nil, err
	}

	var dto RequestDTO
	err := r.db.WithContext(ctx).
		Where("donation_id = ? AND beneficiary_id = ?", donationID.Bytes(), beneficiaryID.Bytes()).
		Take(&dto).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return requestToDomain(dto)
}

// ListByDonation returns the donation's requests oldest first, locked when
// the repository locks.
func (r *GormRequestRepository) ListByDonation(
	ctx context.Context,
	donationID kernel.UUID,
) ([]*donationrequest.Request, error) {
	if err := donationID.Validate(); err != nil {
		return nil, err
	}

	var dtos []RequestDTO
	err := pgutil.Locked(r.db.WithContext(ctx), r.lock).
		Where("donation_id = ?", donationID.Bytes()).
		Order("created_at, id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	requests := make([]*donationrequest.Request, 0, len(dtos))
	for _, dto := range dtos {
		req, err := requestToDomain(dto)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}

	return requests, nil
}

func (r *GormRequestRepository) CountByDonation(ctx context.Context, donationID kernel.UUID) (int64, error) {
	if err := donationID.Validate(); err != nil {
		return 0, err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&RequestDTO{}).Where("donation_id = ?", donationID.Bytes()).Count(&count).Error
	return count, err
}
