package services

import (
	"fmt"
	"time"

	"reco/internal/core/domain/model/delivery"
	"reco/internal/core/domain/model/donation"
	"reco/internal/core/domain/model/donationrequest"
	"reco/internal/core/domain/model/kernel"
	"reco/internal/core/domain/model/notification"
	"reco/internal/core/domain/model/profile"
	"reco/internal/pkg/errs"
)

// DeliveryWorkflow assigns deliveries and moves them along the driver's route.
type DeliveryWorkflow struct{}

func NewDeliveryWorkflow() DeliveryWorkflow {
	return DeliveryWorkflow{}
}

// DeliveryOutcome is what a delivery transition changed besides the delivery.
type DeliveryOutcome struct {
	// Promoted is the request moved to delivered, nil when none was.
	Promoted *donationrequest.Request
	Intents  []notification.Intent
}

// Create assigns the transport of d. existing is the delivery already stored
// for d, nil when there is none; driver is optional. The donation goes in
// route and the donor and beneficiary are notified.
func (w DeliveryWorkflow) Create(
	actor kernel.Actor,
	d *donation.Donation,
	existing *delivery.Delivery,
	driver *profile.Profile,
	id kernel.UUID,
	now time.Time,
) (*delivery.Delivery, []notification.Intent, error) {
	if err := actor.RequireStaff("assign delivery"); err != nil {
		return nil, nil, err
	}
	if err := d.Validate(); err != nil {
		return nil, nil, err
	}

	if existing != nil {
		return nil, nil, errs.NewConflictError("delivery", "donation already has a delivery")
	}

	var driverID *kernel.UUID
	if driver != nil {
		if !driver.IsDriver() {
			return nil, nil, errs.NewPreconditionFailedError("driver", fmt.Sprintf("%s is not a driver", driver.Username()))
		}
		assignee := driver.ID()
		driverID = &assignee
	}

	switch {
	case d.Status() == donation.Approved:
	case d.Status() == donation.InRoute && d.BeneficiaryID() != nil:
	case d.Status() == donation.InRoute:
		// In route without a beneficiary means a recycling batch claimed it.
		return nil, nil, errs.NewPreconditionFailedError("donation", "donation is claimed by a recycling batch")
	default:
		return nil, nil, errs.NewPreconditionFailedError("donation", fmt.Sprintf("donation is %s", d.Status()))
	}

	dl, err := delivery.NewDelivery(id, d.ID(), driverID, now)
	if err != nil {
		return nil, nil, err
	}
	if err = d.StartRoute(); err != nil {
		return nil, nil, err
	}

	return dl, notification.Broadcast(
		notification.KindDeliveryInProgress,
		partiesOf(d, nil),
		deliveryPayload(dl, d),
		now,
	), nil
}

// Transition moves the delivery to next. Only the assigned driver or staff
// may do so. Reaching delivered delivers the donation and promotes at most
// one approved request: the selected beneficiary's, or the first approved
// one when no beneficiary was selected. Nothing is promoted when a request
// of the donation is already delivered.
func (w DeliveryWorkflow) Transition(
	actor kernel.Actor,
	dl *delivery.Delivery,
	d *donation.Donation,
	requests []*donationrequest.Request,
	next delivery.Status,
	point *kernel.GeoPoint,
	now time.Time,
) (DeliveryOutcome, error) {
	if err := validateDeliveryOf(dl, d); err != nil {
		return DeliveryOutcome{}, err
	}
	if err := w.requireDriverOrStaff(actor, dl, "update delivery status"); err != nil {
		return DeliveryOutcome{}, err
	}

	if err := dl.TransitionTo(next, point, now); err != nil {
		return DeliveryOutcome{}, err
	}
	if next != delivery.Delivered {
		return DeliveryOutcome{}, nil
	}

	if err := d.MarkDelivered(); err != nil {
		return DeliveryOutcome{}, err
	}

	promoted := promotableRequest(d, requests)
	if promoted != nil {
		if err := promoted.MarkDelivered(now); err != nil {
			return DeliveryOutcome{}, err
		}
	}

	return DeliveryOutcome{
		Promoted: promoted,
		Intents: notification.Broadcast(
			notification.KindDeliveryCompleted,
			partiesOf(d, promoted),
			deliveryPayload(dl, d),
			now,
		),
	}, nil
}

// CheckProof reports whether actor may attach proof to dl right now. Callers
// run it before uploading any file.
func (w DeliveryWorkflow) CheckProof(actor kernel.Actor, dl *delivery.Delivery) error {
	if err := dl.Validate(); err != nil {
		return err
	}
	if err := w.requireDriverOrStaff(actor, dl, "attach delivery proof"); err != nil {
		return err
	}
	return dl.AcceptsProof()
}

// AttachProof stores proof on a non-terminal delivery without changing its
// status.
func (w DeliveryWorkflow) AttachProof(actor kernel.Actor, dl *delivery.Delivery, proof delivery.Proof) error {
	if err := w.CheckProof(actor, dl); err != nil {
		return err
	}
	return dl.AttachProof(proof)
}

func (w DeliveryWorkflow) requireDriverOrStaff(actor kernel.Actor, dl *delivery.Delivery, action string) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if actor.IsStaff() || dl.IsDrivenBy(actor.ID()) {
		return nil
	}
	return errs.NewPermissionDeniedError(action)
}

func promotableRequest(d *donation.Donation, requests []*donationrequest.Request) *donationrequest.Request {
	var first *donationrequest.Request
	for _, r := range requests {
		if !r.DonationID().IsEqual(d.ID()) {
			continue
		}
		if r.Status() == donationrequest.Delivered {
			return nil
		}
		if r.Status() != donationrequest.Approved {
			continue
		}
		if b := d.BeneficiaryID(); b != nil {
			if r.IsFrom(*b) {
				return r
			}
			continue
		}
		if first == nil {
			first = r
		}
	}
	if d.BeneficiaryID() != nil {
		return nil
	}
	return first
}

func partiesOf(d *donation.Donation, promoted *donationrequest.Request) []notification.Recipient {
	recipients := []notification.Recipient{notification.ToProfile(d.DonorID())}
	switch {
	case d.BeneficiaryID() != nil:
		recipients = append(recipients, notification.ToProfile(*d.BeneficiaryID()))
	case promoted != nil:
		recipients = append(recipients, notification.ToProfile(promoted.BeneficiaryID()))
	}
	return recipients
}

func validateDeliveryOf(dl *delivery.Delivery, d *donation.Donation) error {
	if err := dl.Validate(); err != nil {
		return err
	}
	if err := d.Validate(); err != nil {
		return err
	}
	if !dl.DonationID().IsEqual(d.ID()) {
		return errs.NewValueIsInvalidErrorWithCause("donation", fmt.Errorf("delivery %s belongs to another donation", dl.ID()))
	}
	return nil
}

func deliveryPayload(dl *delivery.Delivery, d *donation.Donation) map[string]string {
	return map[string]string{
		notification.KeyDeliveryID:    dl.ID().String(),
		notification.KeyDonationID:    d.ID().String(),
		notification.KeyDonationTitle: d.Title(),
		notification.KeyStatus:        dl.Status().String(),
	}
}
