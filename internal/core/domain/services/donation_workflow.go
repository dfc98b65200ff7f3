package services

import (
	"time"

	"reco/internal/core/domain/model/donation"
	"reco/internal/core/domain/model/donationrequest"
	"reco/internal/core/domain/model/kernel"
	"reco/internal/core/domain/model/notification"
	"reco/internal/pkg/errs"
)

// DonationWorkflow guards and applies donation status changes.
//
// Example:
//
//	intents, err := services.NewDonationWorkflow().Approve(actor, d, time.Now())
//	if err != nil {
//	    return err
//	}
//	// persist d, commit, then dispatch intents
type DonationWorkflow struct{}

func NewDonationWorkflow() DonationWorkflow {
	return DonationWorkflow{}
}

// Approve requires staff and a pending donation. The donor is notified.
func (w DonationWorkflow) Approve(actor kernel.Actor, d *donation.Donation, now time.Time) ([]notification.Intent, error) {
	if err := actor.RequireStaff("approve donation"); err != nil {
		return nil, err
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}

	if err := d.Approve(actor.ID(), now); err != nil {
		return nil, err
	}

	return []notification.Intent{
		notification.NewIntent(notification.KindDonationApproved, notification.ToProfile(d.DonorID()), donationPayload(d), now),
	}, nil
}

// Reject cancels the donation with reason. Delivered donations cannot be
// rejected. The donor is notified with the reason.
func (w DonationWorkflow) Reject(
	actor kernel.Actor,
	d *donation.Donation,
	reason string,
	now time.Time,
) ([]notification.Intent, error) {
	if err := actor.RequireStaff("reject donation"); err != nil {
		return nil, err
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}

	if err := d.Cancel(reason); err != nil {
		return nil, err
	}

	payload := donationPayload(d)
	payload[notification.KeyReason] = d.RejectionReason()
	return []notification.Intent{
		notification.NewIntent(notification.KindDonationRejected, notification.ToProfile(d.DonorID()), payload, now),
	}, nil
}

// MarkForRecycling diverts a donation that is not yet in route or delivered.
func (w DonationWorkflow) MarkForRecycling(actor kernel.Actor, d *donation.Donation) error {
	if err := actor.RequireStaff("mark donation for recycling"); err != nil {
		return err
	}
	if err := d.Validate(); err != nil {
		return err
	}
	return d.MarkForRecycling()
}

// SelectBeneficiary hands the donation to a beneficiary whose request was
// approved. The donation goes in route and that request is delivered.
// requests are the donation's requests; the matching approved one must be
// among them or the call fails with ObjectNotFound.
func (w DonationWorkflow) SelectBeneficiary(
	actor kernel.Actor,
	d *donation.Donation,
	beneficiaryID kernel.UUID,
	requests []*donationrequest.Request,
	now time.Time,
) (*donationrequest.Request, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	if err := actor.RequireOwnerOrStaff("select beneficiary", d.DonorID()); err != nil {
		return nil, err
	}

	var approved *donationrequest.Request
	for _, r := range requests {
		if r.DonationID().IsEqual(d.ID()) && r.IsFrom(beneficiaryID) && r.Status() == donationrequest.Approved {
			approved = r
			break
		}
	}
	if approved == nil {
		return nil, errs.NewObjectNotFoundError("approved request", beneficiaryID.String())
	}

	if err := d.AssignBeneficiary(beneficiaryID); err != nil {
		return nil, err
	}
	if err := approved.MarkDelivered(now); err != nil {
		return nil, err
	}
	return approved, nil
}

// Edit lets the owning donor or staff change the item description while the
// listing is pending or approved.
func (w DonationWorkflow) Edit(actor kernel.Actor, d *donation.Donation, details donation.Details) error {
	if err := d.Validate(); err != nil {
		return err
	}
	if err := actor.RequireOwnerOrStaff("edit donation", d.DonorID()); err != nil {
		return err
	}
	return d.Edit(details)
}

// CheckDeletion lets the owning donor or staff delete, and only before any
// request exists and while the donation is pending or approved.
func (w DonationWorkflow) CheckDeletion(actor kernel.Actor, d *donation.Donation, requestCount int) error {
	if err := d.Validate(); err != nil {
		return err
	}
	if err := actor.RequireOwnerOrStaff("delete donation", d.DonorID()); err != nil {
		return err
	}
	return d.CheckDeletable(requestCount)
}

func donationPayload(d *donation.Donation) map[string]string {
	return map[string]string{
		notification.KeyDonationID:    d.ID().String(),
		notification.KeyDonationTitle: d.Title(),
		notification.KeyStatus:        d.Status().String(),
	}
}
