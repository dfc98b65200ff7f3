package delivery

import (
	"errors"
	"strings"
	"time"

	"reco/internal/core/domain/model/kernel"
	"reco/internal/pkg/errs"
)

var ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery constructor")

// Proof is the evidence a driver attaches to a delivery. Empty fields keep
// whatever was attached before.
type Proof struct {
	ImageRef     string
	SignatureRef string
	Notes        string
}

// Record is the full persisted state of a delivery.
type Record struct {
	ID            kernel.UUID
	DonationID    kernel.UUID
	DriverID      *kernel.UUID
	Status        Status
	AssignedAt    time.Time
	PickedUpAt    *time.Time
	DeliveredAt   *time.Time
	PickupPoint   *kernel.GeoPoint
	DeliveryPoint *kernel.GeoPoint
	Proof         Proof
}

// Delivery belongs to exactly one donation; a donation has at most one.
type Delivery struct {
	id            kernel.UUID
	donationID    kernel.UUID
	driverID      *kernel.UUID
	status        Status
	assignedAt    time.Time
	pickedUpAt    *time.Time
	deliveredAt   *time.Time
	pickupPoint   *kernel.GeoPoint
	deliveryPoint *kernel.GeoPoint
	proof         Proof
	isConstructed bool
}

// NewDelivery assigns the transport of donationID, optionally to a driver.
func NewDelivery(id, donationID kernel.UUID, driverID *kernel.UUID, assignedAt time.Time) (*Delivery, error) {
	return RestoreDelivery(Record{
		ID:         id,
		DonationID: donationID,
		DriverID:   driverID,
		Status:     Assigned,
		AssignedAt: assignedAt,
	})
}

func RestoreDelivery(rec Record) (*Delivery, error) {
	var driverErr error
	if rec.DriverID != nil {
		driverErr = rec.DriverID.Validate()
	}

	if err := errors.Join(
		rec.ID.Validate(),
		rec.DonationID.Validate(),
		driverErr,
		rec.Status.Validate(),
	); err != nil {
		return nil, err
	}

	return &Delivery{
		id:            rec.ID,
		donationID:    rec.DonationID,
		driverID:      rec.DriverID,
		status:        rec.Status,
		assignedAt:    rec.AssignedAt,
		pickedUpAt:    rec.PickedUpAt,
		deliveredAt:   rec.DeliveredAt,
		pickupPoint:   rec.PickupPoint,
		deliveryPoint: rec.DeliveryPoint,
		proof:         rec.Proof,
		isConstructed: true,
	}, nil
}

func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}
	return nil
}

// Record returns a snapshot for persistence.
func (d *Delivery) Record() Record {
	return Record{
		ID:            d.id,
		DonationID:    d.donationID,
		DriverID:      d.driverID,
		Status:        d.status,
		AssignedAt:    d.assignedAt,
		PickedUpAt:    d.pickedUpAt,
		DeliveredAt:   d.deliveredAt,
		PickupPoint:   d.pickupPoint,
		DeliveryPoint: d.deliveryPoint,
		Proof:         d.proof,
	}
}

func (d *Delivery) ID() kernel.UUID {
	return d.id
}

func (d *Delivery) DonationID() kernel.UUID {
	return d.donationID
}

func (d *Delivery) DriverID() *kernel.UUID {
	return d.driverID
}

func (d *Delivery) Status() Status {
	return d.status
}

func (d *Delivery) AssignedAt() time.Time {
	return d.assignedAt
}

func (d *Delivery) PickedUpAt() *time.Time {
	return d.pickedUpAt
}

func (d *Delivery) DeliveredAt() *time.Time {
	return d.deliveredAt
}

func (d *Delivery) PickupPoint() *kernel.GeoPoint {
	return d.pickupPoint
}

func (d *Delivery) DeliveryPoint() *kernel.GeoPoint {
	return d.deliveryPoint
}

func (d *Delivery) Proof() Proof {
	return d.proof
}

// IsDrivenBy reports whether profileID is the assigned driver.
func (d *Delivery) IsDrivenBy(profileID kernel.UUID) bool {
	return d.driverID != nil && d.driverID.IsEqual(profileID)
}

// TransitionTo moves along the adjacency table. Reaching picked_up stamps the
// pickup point and time; reaching delivered stamps the delivery point and time.
func (d *Delivery) TransitionTo(next Status, point *kernel.GeoPoint, at time.Time) error {
	if point != nil {
		if err := point.Validate(); err != nil {
			return err
		}
	}

	status, err := d.status.TransitionTo(next)
	if err != nil {
		return err
	}

	d.status = status
	switch status {
	case PickedUp:
		d.pickedUpAt = &at
		d.pickupPoint = point
	case Delivered:
		d.deliveredAt = &at
		d.deliveryPoint = point
	}
	return nil
}

// AcceptsProof fails once the delivery reached a terminal status.
func (d *Delivery) AcceptsProof() error {
	if d.status.IsTerminal() {
		return errs.NewPreconditionFailedError("delivery", "proof cannot be attached to a "+d.status.String()+" delivery")
	}
	return nil
}

// AttachProof stores proof artifacts without changing status.
func (d *Delivery) AttachProof(proof Proof) error {
	if err := d.AcceptsProof(); err != nil {
		return err
	}
	if v := strings.TrimSpace(proof.ImageRef); v != "" {
		d.proof.ImageRef = v
	}
	if v := strings.TrimSpace(proof.SignatureRef); v != "" {
		d.proof.SignatureRef = v
	}
	if v := strings.TrimSpace(proof.Notes); v != "" {
		d.proof.Notes = v
	}
	return nil
}
