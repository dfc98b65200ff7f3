package queries

import (
	"errors"
	"time"

	"reco/internal/core/domain/model/kernel"
	"reco/internal/pkg/guard"
)

var ErrGetDonationQueryIsNotConstructed = errors.New(
	"GetDonationQuery must be created via NewGetDonationQuery constructor",
)

// GetDonationQuery loads one donation. Listings in the catalog are visible
// to everyone; others only to the donor, the selected beneficiary and staff.
type GetDonationQuery struct {
	actor      kernel.Actor
	donationID kernel.UUID
	guard      guard.ConstructorGuard
}

func NewGetDonationQuery(actor kernel.Actor, donationID kernel.UUID) (GetDonationQuery, error) {
	if err := errors.Join(actor.Validate(), donationID.Validate()); err != nil {
		return GetDonationQuery{}, err
	}
	return GetDonationQuery{actor: actor, donationID: donationID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetDonationQuery) Validate() error {
	return q.guard.Validate(ErrGetDonationQueryIsNotConstructed)
}

// GetDonationQueryResponse adds contact and logistics details to the listed
// view. DeliveryStatus and OwnRequestStatus are empty when absent.
type GetDonationQueryResponse struct {
	Donation            DonationView
	ContactEmail        string
	ContactPhone        string
	PickupAddress       string
	CollectionPointID   *kernel.UUID
	CollectionPointName string
	BeneficiaryID       *kernel.UUID
	RejectionReason     string
	ApprovedAt          *time.Time
	DeliveryStatus      string
	OwnRequestStatus    string
}
