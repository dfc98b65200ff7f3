// Package deliveryrepo persists deliveries.
package deliveryrepo

import (
	"errors"
	"time"

	"reco/internal/core/domain/model/delivery"
	"reco/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DeliveryDTO is a row of the deliveries table. A donation has at most one
// delivery.
type DeliveryDTO struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey"`
	DonationID        uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_delivery_donation"`
	DriverID          *uuid.UUID `gorm:"type:uuid;index"`
	Status            int        `gorm:"type:smallint;not null;index"`
	AssignedAt        time.Time  `gorm:"not null"`
	PickedUpAt        *time.Time
	DeliveredAt       *time.Time
	PickupLatitude    *float64 `gorm:"type:double precision"`
	PickupLongitude   *float64 `gorm:"type:double precision"`
	DeliveryLatitude  *float64 `gorm:"type:double precision"`
	DeliveryLongitude *float64 `gorm:"type:double precision"`
	Proof             ProofDTO `gorm:"embedded;embeddedPrefix:proof_"`
}

func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// ProofDTO is embedded into the deliveries table.
type ProofDTO struct {
	ImageRef     string `gorm:"type:varchar(500)"`
	SignatureRef string `gorm:"type:varchar(500)"`
	Notes        string `gorm:"type:text"`
}

func fromDomain(d *delivery.Delivery) DeliveryDTO {
	rec := d.Record()
	pickupLat, pickupLng := kernel.Coordinates(rec.PickupPoint)
	deliveryLat, deliveryLng := kernel.Coordinates(rec.DeliveryPoint)

	return DeliveryDTO{
		ID:                rec.ID.Bytes(),
		DonationID:        rec.DonationID.Bytes(),
		DriverID:          kernel.GooglePtr(rec.DriverID),
		Status:            int(rec.Status),
		AssignedAt:        rec.AssignedAt,
		PickedUpAt:        rec.PickedUpAt,
		DeliveredAt:       rec.DeliveredAt,
		PickupLatitude:    pickupLat,
		PickupLongitude:   pickupLng,
		DeliveryLatitude:  deliveryLat,
		DeliveryLongitude: deliveryLng,
		Proof: ProofDTO{
			ImageRef:     rec.Proof.ImageRef,
			SignatureRef: rec.Proof.SignatureRef,
			Notes:        rec.Proof.Notes,
		},
	}
}

func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, idErr := kernel.UUIDFromGoogle(dto.ID)
	donationID, donationErr := kernel.UUIDFromGoogle(dto.DonationID)
	driverID, driverErr := kernel.UUIDPtrFromGoogle(dto.DriverID)
	pickup, pickupErr := kernel.NewOptionalGeoPoint(dto.PickupLatitude, dto.PickupLongitude)
	dropoff, dropoffErr := kernel.NewOptionalGeoPoint(dto.DeliveryLatitude, dto.DeliveryLongitude)
	if err := errors.Join(idErr, donationErr, driverErr, pickupErr, dropoffErr); err != nil {
		return nil, err
	}

	return delivery.RestoreDelivery(delivery.Record{
		ID:            id,
		DonationID:    donationID,
		DriverID:      driverID,
		Status:        delivery.Status(dto.Status),
		AssignedAt:    dto.AssignedAt,
		PickedUpAt:    dto.PickedUpAt,
		DeliveredAt:   dto.DeliveredAt,
		PickupPoint:   pickup,
		DeliveryPoint: dropoff,
		Proof: delivery.Proof{
			ImageRef:     dto.Proof.ImageRef,
			SignatureRef: dto.Proof.SignatureRef,
			Notes:        dto.Proof.Notes,
		},
	})
}
