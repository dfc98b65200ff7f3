package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is one business transaction. Every status change of a command
// and all its cascades commit together or not at all.
type UnitOfWork interface {
	Begin(ctx context.Context) error

	Commit(ctx context.Context) error

	// Rollback is a no-op error after Commit, so handlers defer it.
	Rollback(ctx context.Context) error

	DonationRepository() DonationRepository
	DonationRequestRepository() DonationRequestRepository
	DeliveryRepository() DeliveryRepository
	RecyclingBatchRepository() RecyclingBatchRepository
	RecyclingPartnerRepository() RecyclingPartnerRepository
	ProfileRepository() ProfileRepository
	CollectionPointRepository() CollectionPointRepository
	MessageRepository() MessageRepository
}
