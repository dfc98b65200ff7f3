// Package recyclingrepo persists recycling partners and batches.
package recyclingrepo

import (
	"errors"
	"time"

	"reco/internal/core/domain/model/kernel"
	"reco/internal/core/domain/model/recycling"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// PartnerDTO is a row of the recycling_partners table.
type PartnerDTO struct {
	ID                   uuid.UUID      `gorm:"type:uuid;primaryKey"`
	CompanyName          string         `gorm:"type:varchar(255);not null"`
	TaxID                string         `gorm:"type:varchar(14);not null;uniqueIndex:idx_partner_tax_id"`
	Address              string         `gorm:"type:text"`
	Phone                string         `gorm:"type:varchar(50)"`
	Email                string         `gorm:"type:varchar(255);not null"`
	ContactPerson        string         `gorm:"type:varchar(255)"`
	EnvironmentalLicense string         `gorm:"type:varchar(100)"`
	Materials            pq.StringArray `gorm:"type:text[];not null"`
	MonthlyCapacityKg    float64        `gorm:"type:double precision"`
	Latitude             *float64       `gorm:"type:double precision"`
	Longitude            *float64       `gorm:"type:double precision"`
	Active               bool           `gorm:"not null;index"`
	CreatedAt            time.Time      `gorm:"not null"`
}

func (PartnerDTO) TableName() string {
	return "recycling_partners"
}

// BatchDTO is a row of the recycling_batches table. Items live in
// recycling_batch_items and never change after creation.
type BatchDTO struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code                string    `gorm:"type:varchar(20);not null;uniqueIndex:idx_batch_code"`
	PartnerID           uuid.UUID `gorm:"type:uuid;not null;index"`
	Status              int       `gorm:"type:smallint;not null;index"`
	EstimatedWeightKg   float64   `gorm:"type:double precision;not null"`
	ActualWeightKg      *float64  `gorm:"type:double precision"`
	CollectedAt         *time.Time
	ShippedAt           *time.Time
	ProcessedAt         *time.Time
	ProcessedBy         *uuid.UUID `gorm:"type:uuid"`
	CertificateNumber   string     `gorm:"type:varchar(100)"`
	CertificateFileRef  string     `gorm:"type:varchar(500)"`
	CertificateIssuedAt *time.Time
	CreatedBy           uuid.UUID      `gorm:"type:uuid;not null"`
	Notes               string         `gorm:"type:text"`
	CreatedAt           time.Time      `gorm:"not null;index"`
	Items               []BatchItemDTO `gorm:"foreignKey:BatchID;constraint:OnDelete:CASCADE"`
}

func (BatchDTO) TableName() string {
	return "recycling_batches"
}

// BatchItemDTO links a donation to the batch that claimed it.
type BatchItemDTO struct {
	BatchID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	DonationID uuid.UUID `gorm:"type:uuid;primaryKey;uniqueIndex:idx_batch_item_donation"`
	Position   int       `gorm:"not null"`
}

func (BatchItemDTO) TableName() string {
	return "recycling_batch_items"
}

func partnerFromDomain(p *recycling.Partner) PartnerDTO {
	details := p.Details()
	lat, lng := kernel.Coordinates(details.Point)

	return PartnerDTO{
		ID:                   p.ID().Bytes(),
		CompanyName:          details.CompanyName,
		TaxID:                details.TaxID,
		Address:              details.Address,
		Phone:                details.Phone,
		Email:                details.Email,
		ContactPerson:        details.ContactPerson,
		EnvironmentalLicense: details.EnvironmentalLicense,
		Materials:            recycling.MaterialNames(details.Materials),
		MonthlyCapacityKg:    details.MonthlyCapacityKg,
		Latitude:             lat,
		Longitude:            lng,
		Active:               p.IsActive(),
		CreatedAt:            p.CreatedAt(),
	}
}

func partnerToDomain(dto PartnerDTO) (*recycling.Partner, error) {
	id, idErr := kernel.UUIDFromGoogle(dto.ID)
	materials, materialsErr := recycling.ParseMaterials(dto.Materials)
	point, pointErr := kernel.NewOptionalGeoPoint(dto.Latitude, dto.Longitude)
	if err := errors.Join(idErr, materialsErr, pointErr); err != nil {
		return nil, err
	}

	return recycling.RestorePartner(id, recycling.PartnerDetails{
		CompanyName:          dto.CompanyName,
		TaxID:                dto.TaxID,
		Address:              dto.Address,
		Phone:                dto.Phone,
		Email:                dto.Email,
		ContactPerson:        dto.ContactPerson,
		EnvironmentalLicense: dto.EnvironmentalLicense,
		Materials:            materials,
		MonthlyCapacityKg:    dto.MonthlyCapacityKg,
		Point:                point,
	}, dto.Active, dto.CreatedAt)
}

func batchFromDomain(b *recycling.Batch) BatchDTO {
	rec := b.Record()
	batchID := rec.ID.Bytes()

	items := make([]BatchItemDTO, 0, len(rec.Items))
	for i, item := range rec.Items {
		items = append(items, BatchItemDTO{BatchID: batchID, DonationID: item.Bytes(), Position: i})
	}

	return BatchDTO{
		ID:                  batchID,
		Code:                rec.Code.String(),
		PartnerID:           rec.PartnerID.Bytes(),
		Status:              int(rec.Status),
		EstimatedWeightKg:   rec.EstimatedWeightKg,
		ActualWeightKg:      rec.ActualWeightKg,
		CollectedAt:         rec.CollectedAt,
		ShippedAt:           rec.ShippedAt,
		ProcessedAt:         rec.ProcessedAt,
		ProcessedBy:         kernel.GooglePtr(rec.ProcessedBy),
		CertificateNumber:   rec.Certificate.Number,
		CertificateFileRef:  rec.Certificate.FileRef,
		CertificateIssuedAt: rec.Certificate.IssuedAt,
		CreatedBy:           rec.CreatedBy.Bytes(),
		Notes:               rec.Notes,
		CreatedAt:           rec.CreatedAt,
		Items:               items,
	}
}

func batchToDomain(dto BatchDTO) (*recycling.Batch, error) {
	id, idErr := kernel.UUIDFromGoogle(dto.ID)
	partnerID, partnerErr := kernel.UUIDFromGoogle(dto.PartnerID)
	createdBy, createdByErr := kernel.UUIDFromGoogle(dto.CreatedBy)
	processedBy, processedByErr := kernel.UUIDPtrFromGoogle(dto.ProcessedBy)
	code, codeErr := recycling.ParseCode(dto.Code)
	errList := []error{idErr, partnerErr, createdByErr, processedByErr, codeErr}

	items := make([]kernel.UUID, len(dto.Items))
	for _, item := range dto.Items {
		itemID, err := kernel.UUIDFromGoogle(item.DonationID)
		if item.Position < 0 || item.Position >= len(items) {
			err = errors.Join(err, errors.New("recycling batch item position out of range"))
		}
		if err != nil {
			errList = append(errList, err)
			continue
		}
		items[item.Position] = itemID
	}
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}

	return recycling.RestoreBatch(recycling.BatchRecord{
		ID:                id,
		Code:              code,
		PartnerID:         partnerID,
		Status:            recycling.BatchStatus(dto.Status),
		Items:             items,
		EstimatedWeightKg: dto.EstimatedWeightKg,
		ActualWeightKg:    dto.ActualWeightKg,
		CollectedAt:       dto.CollectedAt,
		ShippedAt:         dto.ShippedAt,
		ProcessedAt:       dto.ProcessedAt,
		ProcessedBy:       processedBy,
		Certificate: recycling.Certificate{
			Number:   dto.CertificateNumber,
			FileRef:  dto.CertificateFileRef,
			IssuedAt: dto.CertificateIssuedAt,
		},
		CreatedBy: createdBy,
		Notes:     dto.Notes,
		CreatedAt: dto.CreatedAt,
	})
}
