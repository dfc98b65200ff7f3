// Package donationrepo persists donations and their requests.
package donationrepo

import (
	"errors"
	"time"

	"reco/internal/core/domain/model/donation"
	"reco/internal/core/domain/model/donationrequest"
	"reco/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DonationDTO is a row of the donations table. Status and enum columns hold
// the domain's int values.
type DonationDTO struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey"`
	DonorID           uuid.UUID  `gorm:"type:uuid;not null;index"`
	Title             string     `gorm:"type:varchar(200);not null"`
	Description       string     `gorm:"type:text"`
	Condition         int        `gorm:"type:smallint;not null"`
	City              string     `gorm:"type:varchar(100)"`
	ContactEmail      string     `gorm:"type:varchar(255)"`
	ContactPhone      string     `gorm:"type:varchar(50)"`
	ImageRef          string     `gorm:"type:varchar(500)"`
	DeliveryType      int        `gorm:"type:smallint;not null"`
	PickupAddress     string     `gorm:"type:text"`
	PickupLatitude    *float64   `gorm:"type:double precision"`
	PickupLongitude   *float64   `gorm:"type:double precision"`
	CollectionPointID *uuid.UUID `gorm:"type:uuid;index"`
	Status            int        `gorm:"type:smallint;not null;index"`
	Available         bool       `gorm:"not null"`
	ApproverID        *uuid.UUID `gorm:"type:uuid"`
	ApprovedAt        *time.Time
	BeneficiaryID     *uuid.UUID `gorm:"type:uuid;index"`
	RejectionReason   string     `gorm:"type:text"`
	CreatedAt         time.Time  `gorm:"not null;index"`
}

func (DonationDTO) TableName() string {
	return "donations"
}

// RequestDTO is a row of the donation_requests table. One request per
// (donation, beneficiary) pair.
type RequestDTO struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	DonationID      uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_request_pair"`
	BeneficiaryID   uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_request_pair;index"`
	Reason          string     `gorm:"type:text;not null"`
	Status          int        `gorm:"type:smallint;not null;index"`
	RejectionReason string     `gorm:"type:text"`
	ApproverID      *uuid.UUID `gorm:"type:uuid"`
	CreatedAt       time.Time  `gorm:"not null"`
	UpdatedAt       time.Time  `gorm:"not null;autoUpdateTime:false"`
}

func (RequestDTO) TableName() string {
	return "donation_requests"
}

func fromDomain(d *donation.Donation) DonationDTO {
	details := d.Details()
	lat, lng := kernel.Coordinates(details.PickupPoint)

	return DonationDTO{
		ID:                d.ID().Bytes(),
		DonorID:           d.DonorID().Bytes(),
		Title:             details.Title,
		Description:       details.Description,
		Condition:         int(details.Condition),
		City:              details.City,
		ContactEmail:      details.ContactEmail,
		ContactPhone:      details.ContactPhone,
		ImageRef:          details.ImageRef,
		DeliveryType:      int(details.DeliveryType),
		PickupAddress:     details.PickupAddress,
		PickupLatitude:    lat,
		PickupLongitude:   lng,
		CollectionPointID: kernel.GooglePtr(details.CollectionPointID),
		Status:            int(d.Status()),
		Available:         d.IsAvailable(),
		ApproverID:        kernel.GooglePtr(d.ApproverID()),
		ApprovedAt:        d.ApprovedAt(),
		BeneficiaryID:     kernel.GooglePtr(d.BeneficiaryID()),
		RejectionReason:   d.RejectionReason(),
		CreatedAt:         d.CreatedAt(),
	}
}

func toDomain(dto DonationDTO) (*donation.Donation, error) {
	id, idErr := kernel.UUIDFromGoogle(dto.ID)
	donorID, donorErr := kernel.UUIDFromGoogle(dto.DonorID)
	point, pointErr := kernel.NewOptionalGeoPoint(dto.PickupLatitude, dto.PickupLongitude)
	collectionPointID, cpErr := kernel.UUIDPtrFromGoogle(dto.CollectionPointID)
	approverID, approverErr := kernel.UUIDPtrFromGoogle(dto.ApproverID)
	beneficiaryID, beneficiaryErr := kernel.UUIDPtrFromGoogle(dto.BeneficiaryID)
	if err := errors.Join(idErr, donorErr, pointErr, cpErr, approverErr, beneficiaryErr); err != nil {
		return nil, err
	}

	return donation.RestoreDonation(id, donorID, donation.Details{
		Title:             dto.Title,
		Description:       dto.Description,
		Condition:         donation.Condition(dto.Condition),
		City:              dto.City,
		ContactEmail:      dto.ContactEmail,
		ContactPhone:      dto.ContactPhone,
		ImageRef:          dto.ImageRef,
		DeliveryType:      donation.DeliveryType(dto.DeliveryType),
		PickupAddress:     dto.PickupAddress,
		PickupPoint:       point,
		CollectionPointID: collectionPointID,
	}, donation.State{
		Status:          donation.Status(dto.Status),
		Available:       dto.Available,
		ApproverID:      approverID,
		ApprovedAt:      dto.ApprovedAt,
		BeneficiaryID:   beneficiaryID,
		RejectionReason: dto.RejectionReason,
		CreatedAt:       dto.CreatedAt,
	})
}

func requestFromDomain(r *donationrequest.Request) RequestDTO {
	return RequestDTO{
		ID:              r.ID().Bytes(),
		DonationID:      r.DonationID().Bytes(),
		BeneficiaryID:   r.BeneficiaryID().Bytes(),
		Reason:          r.Reason(),
		Status:          int(r.Status()),
		RejectionReason: r.RejectionReason(),
		ApproverID:      kernel.GooglePtr(r.ApproverID()),
		CreatedAt:       r.CreatedAt(),
		UpdatedAt:       r.UpdatedAt(),
	}
}

func requestToDomain(dto RequestDTO) (*donationrequest.Request, error) {
	id, idErr := kernel.UUIDFromGoogle(dto.ID)
	donationID, donationErr := kernel.UUIDFromGoogle(dto.DonationID)
	beneficiaryID, beneficiaryErr := kernel.UUIDFromGoogle(dto.BeneficiaryID)
	approverID, approverErr := kernel.UUIDPtrFromGoogle(dto.ApproverID)
	if err := errors.Join(idErr, donationErr, beneficiaryErr, approverErr); err != nil {
		return nil, err
	}

	return donationrequest.RestoreRequest(
		id, donationID, beneficiaryID,
		dto.Reason,
		donationrequest.Status(dto.Status),
		dto.RejectionReason,
		approverID,
		dto.CreatedAt, dto.UpdatedAt,
	)
}
