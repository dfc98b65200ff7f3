package donation

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"reco/internal/core/domain/model/kernel"
	"reco/internal/pkg/errs"
)

const titleMaxLength = 200

var (
	ErrDonationIsNotConstructed = errors.New("Donation must be created via NewDonation constructor")
	ErrTitleIsRequired          = errs.NewValueIsRequiredError("title")
	ErrPickupAddressIsRequired  = errs.NewValueIsRequiredError("pickup address")
)

// Details is what the donor describes when listing an item.
type Details struct {
	Title             string
	Description       string
	Condition         Condition
	City              string
	ContactEmail      string
	ContactPhone      string
	ImageRef          string
	DeliveryType      DeliveryType
	PickupAddress     string
	PickupPoint       *kernel.GeoPoint
	CollectionPointID *kernel.UUID
}

func (d Details) validate() error {
	var errList []error
	title := strings.TrimSpace(d.Title)
	switch {
	case title == "":
		errList = append(errList, ErrTitleIsRequired)
	case len(title) > titleMaxLength:
		errList = append(errList, errs.NewValueIsOutOfRangeError("title length", len(title), 1, titleMaxLength))
	}
	errList = append(errList, d.Condition.Validate(), d.DeliveryType.Validate())
	if d.DeliveryType == DeliveryTypeHomePickup && strings.TrimSpace(d.PickupAddress) == "" {
		errList = append(errList, ErrPickupAddressIsRequired)
	}
	if d.PickupPoint != nil {
		errList = append(errList, d.PickupPoint.Validate())
	}
	if d.CollectionPointID != nil {
		errList = append(errList, d.CollectionPointID.Validate())
	}
	return errors.Join(errList...)
}

// State is the workflow-owned part of a donation, used when restoring from
// persistence.
type State struct {
	Status          Status
	Available       bool
	ApproverID      *kernel.UUID
	ApprovedAt      *time.Time
	BeneficiaryID   *kernel.UUID
	RejectionReason string
	CreatedAt       time.Time
}

// Donation is the aggregate root for an offered item.
type Donation struct {
	id              kernel.UUID
	donorID         kernel.UUID
	details         Details
	status          Status
	available       bool
	approverID      *kernel.UUID
	approvedAt      *time.Time
	beneficiaryID   *kernel.UUID
	rejectionReason string
	createdAt       time.Time
	isConstructed   bool
}

// NewDonation lists a new item in pending status.
//
// Example:
//
//	d, err := donation.NewDonation(kernel.NewUUID(), donor.ID(), donation.Details{
//	    Title:        "Notebook Dell",
//	    Condition:    donation.ConditionGood,
//	    DeliveryType: donation.DeliveryTypeCollectionPoint,
//	}, time.Now())
func NewDonation(id, donorID kernel.UUID, details Details, createdAt time.Time) (*Donation, error) {
	return RestoreDonation(id, donorID, details, State{
		Status:    Pending,
		Available: true,
		CreatedAt: createdAt,
	})
}

// RestoreDonation rebuilds a donation read from the store.
func RestoreDonation(id, donorID kernel.UUID, details Details, state State) (*Donation, error) {
	if err := errors.Join(
		id.Validate(),
		donorID.Validate(),
		details.validate(),
		state.Status.Validate(),
	); err != nil {
		return nil, err
	}

	details.Title = strings.TrimSpace(details.Title)
	return &Donation{
		id:              id,
		donorID:         donorID,
		details:         details,
		status:          state.Status,
		available:       state.Available,
		approverID:      state.ApproverID,
		approvedAt:      state.ApprovedAt,
		beneficiaryID:   state.BeneficiaryID,
		rejectionReason: state.RejectionReason,
		createdAt:       state.CreatedAt,
		isConstructed:   true,
	}, nil
}

func (d *Donation) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDonationIsNotConstructed
	}
	return nil
}

func (d *Donation) ID() kernel.UUID {
	return d.id
}

func (d *Donation) DonorID() kernel.UUID {
	return d.donorID
}

func (d *Donation) Details() Details {
	return d.details
}

func (d *Donation) Title() string {
	return d.details.Title
}

func (d *Donation) Status() Status {
	return d.status
}

func (d *Donation) IsAvailable() bool {
	return d.available
}

func (d *Donation) ApproverID() *kernel.UUID {
	return d.approverID
}

func (d *Donation) ApprovedAt() *time.Time {
	return d.approvedAt
}

func (d *Donation) BeneficiaryID() *kernel.UUID {
	return d.beneficiaryID
}

func (d *Donation) RejectionReason() string {
	return d.rejectionReason
}

func (d *Donation) CreatedAt() time.Time {
	return d.createdAt
}

func (d *Donation) CollectionPointID() *kernel.UUID {
	return d.details.CollectionPointID
}

func (d *Donation) IsEqual(other *Donation) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// IsOwnedBy reports whether profileID listed this donation.
func (d *Donation) IsOwnedBy(profileID kernel.UUID) bool {
	return d.donorID.IsEqual(profileID)
}

// Approve moves a pending donation to approved and records who did it.
func (d *Donation) Approve(approverID kernel.UUID, at time.Time) error {
	if err := approverID.Validate(); err != nil {
		return err
	}
	if err := d.transitionTo(Approved); err != nil {
		return err
	}
	d.approverID = &approverID
	d.approvedAt = &at
	return nil
}

// Cancel rejects the donation. Delivered items can never be canceled.
func (d *Donation) Cancel(reason string) error {
	if d.status == Delivered {
		return errs.NewInvalidTransitionError("donation", d.status.String(), Canceled.String())
	}
	if err := d.transitionTo(Canceled); err != nil {
		return err
	}
	d.rejectionReason = strings.TrimSpace(reason)
	d.available = false
	return nil
}

// MarkForRecycling diverts the item to recycling unless it already moves or
// has arrived.
func (d *Donation) MarkForRecycling() error {
	if d.status.IsInLogistics() {
		return errs.NewInvalidTransitionErrorWithCause(
			"donation", d.status.String(), ForRecycling.String(),
			fmt.Errorf("item is already in the logistics flow"),
		)
	}
	if err := d.transitionTo(ForRecycling); err != nil {
		return err
	}
	d.available = false
	return nil
}

// AssignBeneficiary sends an approved donation on its way to beneficiaryID.
func (d *Donation) AssignBeneficiary(beneficiaryID kernel.UUID) error {
	if err := beneficiaryID.Validate(); err != nil {
		return err
	}
	if d.status != Approved {
		return errs.NewInvalidTransitionError("donation", d.status.String(), InRoute.String())
	}
	if err := d.transitionTo(InRoute); err != nil {
		return err
	}
	d.beneficiaryID = &beneficiaryID
	return nil
}

// StartRoute is the cascade of assigning a delivery. It is a no-op when the
// donation is already in route.
func (d *Donation) StartRoute() error {
	if d.status == InRoute {
		return nil
	}
	if d.status != Approved {
		return errs.NewInvalidTransitionError("donation", d.status.String(), InRoute.String())
	}
	return d.transitionTo(InRoute)
}

// ClaimForRecycling is the cascade of a recycling batch taking the item.
func (d *Donation) ClaimForRecycling() error {
	if d.status != ForRecycling {
		return errs.NewPreconditionFailedError("donation", fmt.Sprintf("%s is %s, not for_recycling", d.id, d.status))
	}
	return d.transitionTo(InRoute)
}

// MarkDelivered is the cascade of a completed delivery. Repeating it on a
// delivered donation changes nothing.
func (d *Donation) MarkDelivered() error {
	if d.status == Delivered {
		return nil
	}
	return d.transitionTo(Delivered)
}

// Edit replaces the donor's description of the item. Listings that entered
// logistics or were closed keep their details.
func (d *Donation) Edit(details Details) error {
	if d.status != Pending && d.status != Approved {
		return errs.NewPreconditionFailedError("donation", fmt.Sprintf("donation in status %s cannot be edited", d.status))
	}
	if err := details.validate(); err != nil {
		return err
	}
	details.Title = strings.TrimSpace(details.Title)
	d.details = details
	return nil
}

// CheckDeletable allows the owner to withdraw the listing only while nobody
// has requested it and it has not entered logistics.
func (d *Donation) CheckDeletable(requestCount int) error {
	if requestCount > 0 {
		return errs.NewPreconditionFailedError("donation", "donation already has requests")
	}
	if d.status != Pending && d.status != Approved {
		return errs.NewPreconditionFailedError("donation", fmt.Sprintf("donation in status %s cannot be deleted", d.status))
	}
	return nil
}

func (d *Donation) transitionTo(next Status) error {
	status, err := d.status.TransitionTo(next)
	if err != nil {
		return err
	}
	d.status = status
	if status != Pending && status != Approved {
		d.available = false
	}
	return nil
}
