package ports

import (
	"context"

	"reco/internal/core/domain/model/donationrequest"
	"reco/internal/core/domain/model/kernel"
)

// DonationRequestRepository persists beneficiaries' requests. The store
// enforces one request per (donation, beneficiary): adding a duplicate
// returns errs.ConflictError.
type DonationRequestRepository interface {
	Add(ctx context.Context, aggregate *donationrequest.Request) error

	Update(ctx context.Context, aggregate *donationrequest.Request) error

	Get(ctx context.Context, id kernel.UUID) (*donationrequest.Request, error)

	// FindByPair returns nil, nil when the beneficiary has not requested the
	// donation.
	FindByPair(ctx context.Context, donationID, beneficiaryID kernel.UUID) (*donationrequest.Request, error)

	// ListByDonation returns the donation's requests oldest first.
	ListByDonation(ctx context.Context, donationID kernel.UUID) ([]*donationrequest.Request, error)

	CountByDonation(ctx context.Context, donationID kernel.UUID) (int64, error)
}
