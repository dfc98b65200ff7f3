// Package profilerepo persists marketplace profiles and collection points.
package profilerepo

import (
	"errors"
	"time"

	"reco/internal/core/domain/model/collectionpoint"
	"reco/internal/core/domain/model/kernel"
	"reco/internal/core/domain/model/profile"

	"github.com/google/uuid"
)

type ProfileDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username        string    `gorm:"type:varchar(150);not null;uniqueIndex:idx_profile_username"`
	FullName        string    `gorm:"type:varchar(255)"`
	Email           string    `gorm:"type:varchar(255)"`
	Phone           string    `gorm:"type:varchar(50)"`
	City            string    `gorm:"type:varchar(100)"`
	Role            int       `gorm:"type:smallint;not null;index"`
	Staff           bool      `gorm:"not null"`
	DriverAvailable bool      `gorm:"not null"`
	VehicleType     string    `gorm:"type:varchar(50)"`
	MaxItems        int       `gorm:"not null"`
	CreatedAt       time.Time `gorm:"not null"`
}

func (ProfileDTO) TableName() string {
	return "profiles"
}

type CollectionPointDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"type:varchar(255);not null"`
	Address      string    `gorm:"type:text;not null"`
	Latitude     float64   `gorm:"type:double precision;not null"`
	Longitude    float64   `gorm:"type:double precision;not null"`
	OpeningHours string    `gorm:"type:varchar(255)"`
	Capacity     int       `gorm:"not null"`
	Phone        string    `gorm:"type:varchar(50)"`
	Email        string    `gorm:"type:varchar(255)"`
	Active       bool      `gorm:"not null;index"`
	CreatedBy    uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt    time.Time `gorm:"not null"`
}

func (CollectionPointDTO) TableName() string {
	return "collection_points"
}

func profileFromDomain(p *profile.Profile) ProfileDTO {
	contact := p.Contact()
	driver := p.Driver()

	return ProfileDTO{
		ID:              p.ID().Bytes(),
		Username:        p.Username(),
		FullName:        contact.FullName,
		Email:           contact.Email,
		Phone:           contact.Phone,
		City:            contact.City,
		Role:            int(p.Role()),
		Staff:           p.StaffFlag(),
		DriverAvailable: driver.Available,
		VehicleType:     driver.VehicleType,
		MaxItems:        driver.MaxItems,
		CreatedAt:       p.CreatedAt(),
	}
}

func profileToDomain(dto ProfileDTO) (*profile.Profile, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}

	return profile.NewProfile(
		id,
		dto.Username,
		profile.Contact{FullName: dto.FullName, Email: dto.Email, Phone: dto.Phone, City: dto.City},
		kernel.Role(dto.Role),
		dto.Staff,
		profile.DriverInfo{Available: dto.DriverAvailable, VehicleType: dto.VehicleType, MaxItems: dto.MaxItems},
		dto.CreatedAt,
	)
}

func pointFromDomain(c *collectionpoint.CollectionPoint) CollectionPointDTO {
	details := c.Details()

	return CollectionPointDTO{
		ID:           c.ID().Bytes(),
		Name:         details.Name,
		Address:      details.Address,
		Latitude:     details.Point.Latitude(),
		Longitude:    details.Point.Longitude(),
		OpeningHours: details.OpeningHours,
		Capacity:     details.Capacity,
		Phone:        details.Phone,
		Email:        details.Email,
		Active:       c.IsActive(),
		CreatedBy:    c.CreatedBy().Bytes(),
		CreatedAt:    c.CreatedAt(),
	}
}

func pointToDomain(dto CollectionPointDTO) (*collectionpoint.CollectionPoint, error) {
	id, idErr := kernel.UUIDFromGoogle(dto.ID)
	createdBy, createdByErr := kernel.UUIDFromGoogle(dto.CreatedBy)
	geo, geoErr := kernel.NewGeoPoint(dto.Latitude, dto.Longitude)
	if err := errors.Join(idErr, createdByErr, geoErr); err != nil {
		return nil, err
	}

	return collectionpoint.RestoreCollectionPoint(id, collectionpoint.Details{
		Name:         dto.Name,
		Address:      dto.Address,
		Point:        geo,
		OpeningHours: dto.OpeningHours,
		Capacity:     dto.Capacity,
		Phone:        dto.Phone,
		Email:        dto.Email,
	}, dto.Active, createdBy, dto.CreatedAt)
}
