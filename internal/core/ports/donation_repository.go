// Package ports defines the contracts between the ReCo core and its adapters:
// repositories per aggregate, the unit of work that binds them to one
// transaction, the notification dispatcher and file storage.
//
// Repositories obtained from a unit of work after Begin lock every row they
// read (SELECT ... FOR UPDATE) until Commit or Rollback, so two concurrent
// transitions of the same record are serialized and the second one sees the
// first one's result.
package ports

import (
	"context"

	"reco/internal/core/domain/model/donation"
	"reco/internal/core/domain/model/kernel"
)

// DonationRepository persists donation aggregates.
type DonationRepository interface {
	Add(ctx context.Context, aggregate *donation.Donation) error

	Update(ctx context.Context, aggregate *donation.Donation) error

	// Delete removes the donation. Callers check deletability first.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get returns errs.ObjectNotFoundError when id is unknown.
	Get(ctx context.Context, id kernel.UUID) (*donation.Donation, error)

	// ListByIDs returns the donations that exist among ids, in ids order.
	// Unknown ids are skipped.
	ListByIDs(ctx context.Context, ids []kernel.UUID) ([]*donation.Donation, error)
}
