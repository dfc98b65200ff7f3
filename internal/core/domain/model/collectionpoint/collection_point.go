// Package collectionpoint models physical drop-off locations for donated
// items.
package collectionpoint

import (
	"errors"
	"strings"
	"time"

	"reco/internal/core/domain/model/kernel"
	"reco/internal/pkg/errs"
)

var (
	ErrCollectionPointIsNotConstructed = errors.New("CollectionPoint must be created via NewCollectionPoint constructor")
	ErrNameIsRequired                  = errs.NewValueIsRequiredError("name")
	ErrAddressIsRequired               = errs.NewValueIsRequiredError("address")
)

type Details struct {
	Name         string
	Address      string
	Point        kernel.GeoPoint
	OpeningHours string
	Capacity     int
	Phone        string
	Email        string
}

// CollectionPoint is a drop-off location. Its inventory is not stored: it is
// the number of linked donations that are approved or in route.
type CollectionPoint struct {
	id            kernel.UUID
	details       Details
	active        bool
	createdBy     kernel.UUID
	createdAt     time.Time
	isConstructed bool
}

func NewCollectionPoint(id kernel.UUID, details Details, createdBy kernel.UUID, createdAt time.Time) (*CollectionPoint, error) {
	return RestoreCollectionPoint(id, details, true, createdBy, createdAt)
}

func RestoreCollectionPoint(
	id kernel.UUID,
	details Details,
	active bool,
	createdBy kernel.UUID,
	createdAt time.Time,
) (*CollectionPoint, error) {
	details.Name = strings.TrimSpace(details.Name)
	details.Address = strings.TrimSpace(details.Address)

	var nameErr, addressErr, capacityErr error
	if details.Name == "" {
		nameErr = ErrNameIsRequired
	}
	if details.Address == "" {
		addressErr = ErrAddressIsRequired
	}
	if details.Capacity < 0 {
		capacityErr = errs.NewValueIsOutOfRangeError("capacity", details.Capacity, 0, "unbounded")
	}

	if err := errors.Join(
		id.Validate(),
		nameErr,
		addressErr,
		details.Point.Validate(),
		capacityErr,
		createdBy.Validate(),
	); err != nil {
		return nil, err
	}

	return &CollectionPoint{
		id:            id,
		details:       details,
		active:        active,
		createdBy:     createdBy,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

func (c *CollectionPoint) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCollectionPointIsNotConstructed
	}
	return nil
}

func (c *CollectionPoint) ID() kernel.UUID {
	return c.id
}

func (c *CollectionPoint) Details() Details {
	return c.details
}

func (c *CollectionPoint) IsActive() bool {
	return c.active
}

func (c *CollectionPoint) CreatedBy() kernel.UUID {
	return c.createdBy
}

func (c *CollectionPoint) CreatedAt() time.Time {
	return c.createdAt
}

// HasRoomFor reports whether inventory items fit. Zero capacity means no limit.
func (c *CollectionPoint) HasRoomFor(inventory int) bool {
	return c.details.Capacity == 0 || inventory < c.details.Capacity
}

func (c *CollectionPoint) Deactivate() {
	c.active = false
}
