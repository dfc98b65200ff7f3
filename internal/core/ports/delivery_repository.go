package ports

import (
	"context"

	"reco/internal/core/domain/model/delivery"
	"reco/internal/core/domain/model/kernel"
)

// DeliveryRepository persists deliveries. A donation has at most one
// delivery: adding a second returns errs.ConflictError.
type DeliveryRepository interface {
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	Update(ctx context.Context, aggregate *delivery.Delivery) error

	Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// FindByDonation returns nil, nil when the donation has no delivery.
	FindByDonation(ctx context.Context, donationID kernel.UUID) (*delivery.Delivery, error)
}
