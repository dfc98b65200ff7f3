// Package profile holds the marketplace profile attached to an authenticated
// user: role, contact data and driver availability.
package profile

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"reco/internal/core/domain/model/kernel"
	"reco/internal/pkg/errs"
)

var (
	ErrProfileIsNotConstructed = errors.New("Profile must be created via NewProfile constructor")
	ErrUsernameIsRequired      = errs.NewValueIsRequiredError("username")
)

// Contact is the part of a profile the user edits freely.
type Contact struct {
	FullName string
	Email    string
	Phone    string
	City     string
}

// DriverInfo is only meaningful for drivers.
type DriverInfo struct {
	Available   bool
	VehicleType string
	MaxItems    int
}

// Profile is keyed by the identity provider's user id.
type Profile struct {
	id            kernel.UUID
	username      string
	contact       Contact
	role          kernel.Role
	staff         bool
	driver        DriverInfo
	createdAt     time.Time
	isConstructed bool
}

func NewProfile(
	id kernel.UUID,
	username string,
	contact Contact,
	role kernel.Role,
	staff bool,
	driver DriverInfo,
	createdAt time.Time,
) (*Profile, error) {
	username = strings.TrimSpace(username)
	contact.Email = strings.TrimSpace(contact.Email)
	contact.FullName = strings.TrimSpace(contact.FullName)

	var usernameErr, maxItemsErr error
	if username == "" {
		usernameErr = ErrUsernameIsRequired
	}
	if driver.MaxItems < 0 {
		maxItemsErr = errs.NewValueIsOutOfRangeError("max items", driver.MaxItems, 0, "unbounded")
	}

	if err := errors.Join(id.Validate(), usernameErr, role.Validate(), maxItemsErr); err != nil {
		return nil, err
	}

	if role != kernel.RoleDriver {
		driver = DriverInfo{}
	}

	return &Profile{
		id:            id,
		username:      username,
		contact:       contact,
		role:          role,
		staff:         staff,
		driver:        driver,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

func (p *Profile) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProfileIsNotConstructed
	}
	return nil
}

func (p *Profile) ID() kernel.UUID {
	return p.id
}

func (p *Profile) Username() string {
	return p.username
}

func (p *Profile) Contact() Contact {
	return p.contact
}

func (p *Profile) Email() string {
	return p.contact.Email
}

func (p *Profile) Role() kernel.Role {
	return p.role
}

func (p *Profile) Driver() DriverInfo {
	return p.driver
}

func (p *Profile) CreatedAt() time.Time {
	return p.createdAt
}

// IsStaff mirrors kernel.Actor: the staff flag or the admin role.
func (p *Profile) IsStaff() bool {
	return p.staff || p.role == kernel.RoleAdmin
}

// StaffFlag is the raw stored flag.
func (p *Profile) StaffFlag() bool {
	return p.staff
}

func (p *Profile) IsDriver() bool {
	return p.role == kernel.RoleDriver
}

// DisplayName is the full name, or the username when no name was given.
func (p *Profile) DisplayName() string {
	if p.contact.FullName != "" {
		return p.contact.FullName
	}
	return p.username
}

// SetAvailability toggles whether a driver takes new deliveries.
func (p *Profile) SetAvailability(available bool) error {
	if !p.IsDriver() {
		return errs.NewPreconditionFailedError("profile", fmt.Sprintf("%s is not a driver", p.username))
	}
	p.driver.Available = available
	return nil
}

// Actor converts the profile to the capability used by workflows.
func (p *Profile) Actor() (kernel.Actor, error) {
	return kernel.NewActor(p.id, p.role, p.staff)
}
