package services

import (
	"fmt"
	"time"

	"reco/internal/core/domain/model/donation"
	"reco/internal/core/domain/model/donationrequest"
	"reco/internal/core/domain/model/kernel"
	"reco/internal/core/domain/model/notification"
	"reco/internal/core/domain/model/profile"
	"reco/internal/pkg/errs"
)

// RequestWorkflow handles beneficiaries' claims on donations.
type RequestWorkflow struct{}

func NewRequestWorkflow() RequestWorkflow {
	return RequestWorkflow{}
}

// Submit creates the actor's request for d. existing is the request already
// stored for (d, actor), nil when there is none. Staff with an email are
// told a new request arrived.
func (w RequestWorkflow) Submit(
	actor kernel.Actor,
	d *donation.Donation,
	existing *donationrequest.Request,
	reason string,
	staff []*profile.Profile,
	id kernel.UUID,
	now time.Time,
) (*donationrequest.Request, []notification.Intent, error) {
	if err := actor.Validate(); err != nil {
		return nil, nil, err
	}
	if err := d.Validate(); err != nil {
		return nil, nil, err
	}

	if d.IsOwnedBy(actor.ID()) {
		return nil, nil, errs.NewConflictError("donation request", "donors cannot request their own donation")
	}
	if existing != nil {
		return nil, nil, errs.NewConflictError("donation request", "a request for this donation already exists")
	}
	if d.Status() != donation.Approved {
		return nil, nil, errs.NewConflictError("donation request", fmt.Sprintf("donation is %s, not approved", d.Status()))
	}

	r, err := donationrequest.NewRequest(id, d.ID(), actor.ID(), reason, now)
	if err != nil {
		return nil, nil, err
	}

	recipients := make([]notification.Recipient, 0, len(staff))
	for _, p := range staff {
		if p == nil || !p.IsStaff() || p.Email() == "" {
			continue
		}
		recipients = append(recipients, notification.ToAddress(p.ID(), p.Email()))
	}

	payload := requestPayload(r, d)
	payload[notification.KeyReason] = r.Reason()
	return r, notification.Broadcast(notification.KindNewRequestAdmin, recipients, payload, now), nil
}

// Approve requires staff and a pending request. The beneficiary is notified.
func (w RequestWorkflow) Approve(
	actor kernel.Actor,
	r *donationrequest.Request,
	d *donation.Donation,
	now time.Time,
) ([]notification.Intent, error) {
	if err := actor.RequireStaff("approve donation request"); err != nil {
		return nil, err
	}
	if err := validateRequestOf(r, d); err != nil {
		return nil, err
	}

	if err := r.Approve(actor.ID(), now); err != nil {
		return nil, err
	}

	return []notification.Intent{
		notification.NewIntent(notification.KindRequestApproved, notification.ToProfile(r.BeneficiaryID()), requestPayload(r, d), now),
	}, nil
}

// Reject requires staff and a pending request. The beneficiary is notified
// with the stored reason.
func (w RequestWorkflow) Reject(
	actor kernel.Actor,
	r *donationrequest.Request,
	d *donation.Donation,
	reason string,
	now time.Time,
) ([]notification.Intent, error) {
	if err := actor.RequireStaff("reject donation request"); err != nil {
		return nil, err
	}
	if err := validateRequestOf(r, d); err != nil {
		return nil, err
	}

	if err := r.Reject(reason, now); err != nil {
		return nil, err
	}

	payload := requestPayload(r, d)
	payload[notification.KeyReason] = r.RejectionReason()
	return []notification.Intent{
		notification.NewIntent(notification.KindRequestRejected, notification.ToProfile(r.BeneficiaryID()), payload, now),
	}, nil
}

func validateRequestOf(r *donationrequest.Request, d *donation.Donation) error {
	if err := r.Validate(); err != nil {
		return err
	}
	if err := d.Validate(); err != nil {
		return err
	}
	if !r.DonationID().IsEqual(d.ID()) {
		return errs.NewValueIsInvalidErrorWithCause("donation", fmt.Errorf("request %s belongs to another donation", r.ID()))
	}
	return nil
}

func requestPayload(r *donationrequest.Request, d *donation.Donation) map[string]string {
	return map[string]string{
		notification.KeyRequestID:     r.ID().String(),
		notification.KeyDonationID:    d.ID().String(),
		notification.KeyDonationTitle: d.Title(),
		notification.KeyStatus:        r.Status().String(),
	}
}
