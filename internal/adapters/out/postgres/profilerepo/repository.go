package profilerepo

import (
	"context"

	"reco/internal/adapters/out/postgres/pgutil"
	"reco/internal/core/domain/model/collectionpoint"
	"reco/internal/core/domain/model/kernel"
	"reco/internal/core/domain/model/profile"

	"gorm.io/gorm"
)

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormProfileRepository implements ports.ProfileRepository.
type GormProfileRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
	lock    bool
}

func NewGormProfileRepository(db *gorm.DB, tracker aggregateTracker, lock bool) *GormProfileRepository {
	return &GormProfileRepository{db: db, tracker: tracker, lock: lock}
}

// Add fails with Conflict when the user or the username is already
// registered.
func (r *GormProfileRepository) Add(ctx context.Context, aggregate *profile.Profile) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := profileFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgutil.WriteError("profile", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormProfileRepository) Update(ctx context.Context, aggregate *profile.Profile) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := profileFromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ProfileDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return pgutil.WriteError("profile", result.Error)
	}
	if result.RowsAffected == 0 {
		return pgutil.ReadError("profile", aggregate.ID().String(), gorm.ErrRecordNotFound)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormProfileRepository) Get(ctx context.Context, id kernel.UUID) (*profile.Profile, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProfileDTO
	err := pgutil.Locked(r.db.WithContext(ctx), r.lock).First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		return nil, pgutil.ReadError("profile", id.String(), err)
	}

	return profileToDomain(dto)
}

// ListStaff returns staff and admin profiles ordered by username. Rows are
// not locked.
func (r *GormProfileRepository) ListStaff(ctx context.Context) ([]*profile.Profile, error) {
	var dtos []ProfileDTO
	err := r.db.WithContext(ctx).
		Where("staff = ? OR role = ?", true, int(kernel.RoleAdmin)).
		Order("username").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	profiles := make([]*profile.Profile, 0, len(dtos))
	for _, dto := range dtos {
		p, err := profileToDomain(dto)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}

	return profiles, nil
}

// GormCollectionPointRepository implements ports.CollectionPointRepository.
type GormCollectionPointRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormCollectionPointRepository(db *gorm.DB, tracker aggregateTracker) *GormCollectionPointRepository {
	return &GormCollectionPointRepository{db: db, tracker: tracker}
}

func (r *GormCollectionPointRepository) Add(ctx context.Context, aggregate *collectionpoint.CollectionPoint) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := pointFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgutil.WriteError("collection point", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormCollectionPointRepository) Get(ctx context.Context, id kernel.UUID) (*collectionpoint.CollectionPoint, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CollectionPointDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, pgutil.ReadError("collection point", id.String(), err)
	}

	return pointToDomain(dto)
}
