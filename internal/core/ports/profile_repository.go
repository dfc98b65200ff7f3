package ports

import (
	"context"

	"reco/internal/core/domain/model/collectionpoint"
	"reco/internal/core/domain/model/kernel"
	"reco/internal/core/domain/model/profile"
)

type ProfileRepository interface {
	// Add returns errs.ConflictError when the user already has a profile.
	Add(ctx context.Context, aggregate *profile.Profile) error

	Update(ctx context.Context, aggregate *profile.Profile) error

	Get(ctx context.Context, id kernel.UUID) (*profile.Profile, error)

	// ListStaff returns staff and admin profiles. Rows are not locked.
	ListStaff(ctx context.Context) ([]*profile.Profile, error)
}

type CollectionPointRepository interface {
	Add(ctx context.Context, aggregate *collectionpoint.CollectionPoint) error

	Get(ctx context.Context, id kernel.UUID) (*collectionpoint.CollectionPoint, error)
}
