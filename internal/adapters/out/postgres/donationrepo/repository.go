package donationrepo

import (
	"context"

	"reco/internal/adapters/out/postgres/pgutil"
	"reco/internal/core/domain/model/donation"
	"reco/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormDonationRepository implements ports.DonationRepository. With lock set,
// reads take a row lock for the rest of the transaction.
type GormDonationRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
	lock    bool
}

func NewGormDonationRepository(db *gorm.DB, tracker aggregateTracker, lock bool) *GormDonationRepository {
	return &GormDonationRepository{db: db, tracker: tracker, lock: lock}
}

func (r *GormDonationRepository) Add(ctx context.Context, aggregate *donation.Donation) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgutil.WriteError("donation", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes every column, so cleared optional fields become NULL.
func (r *GormDonationRepository) Update(ctx context.Context, aggregate *donation.Donation) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&DonationDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return pgutil.WriteError("donation", result.Error)
	}
	if result.RowsAffected == 0 {
		return pgutil.ReadError("donation", aggregate.ID().String(), gorm.ErrRecordNotFound)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormDonationRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&DonationDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return pgutil.ReadError("donation", id.String(), gorm.ErrRecordNotFound)
	}
	return nil
}

func (r *GormDonationRepository) Get(ctx context.Context, id kernel.UUID) (*donation.Donation, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DonationDTO
	err := pgutil.Locked(r.db.WithContext(ctx), r.lock).First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		return nil, pgutil.ReadError("donation", id.String(), err)
	}

	return toDomain(dto)
}

// ListByIDs skips ids that do not exist. Rows are locked in id order to keep
// concurrent batch creations from deadlocking.
func (r *GormDonationRepository) ListByIDs(ctx context.Context, ids []kernel.UUID) ([]*donation.Donation, error) {
	if len(ids) == 0 {
		return []*donation.Donation{}, nil
	}

	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		raw = append(raw, id.Bytes())
	}

	var dtos []DonationDTO
	err := pgutil.Locked(r.db.WithContext(ctx), r.lock).
		Where("id IN ?", raw).
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]DonationDTO, len(dtos))
	for _, dto := range dtos {
		byID[dto.ID] = dto
	}

	donations := make([]*donation.Donation, 0, len(dtos))
	for _, id := range raw {
		dto, ok := byID[id]
		if !ok {
			continue
		}
		d, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		donations = append(donations, d)
	}

	return donations, nil
}
