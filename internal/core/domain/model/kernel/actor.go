package kernel

import (
	"errors"
	"fmt"
	"strings"

	"reco/internal/pkg/errs"
)

// Role is the marketplace role carried by a profile and by the bearer token.
type Role int

const (
	RoleUnknown Role = iota
	RoleDonor
	RoleBeneficiary
	RoleOrganization
	RoleDriver
	RoleRecycler
	RoleAdmin
)

var roleNames = map[Role]string{
	RoleDonor:        "donor",
	RoleBeneficiary:  "beneficiary",
	RoleOrganization: "organization",
	RoleDriver:       "driver",
	RoleRecycler:     "recycler",
	RoleAdmin:        "admin",
}

// ErrActorIsNotConstructed is returned when validating a zero-value Actor.
var ErrActorIsNotConstructed = errors.New("Actor must be created via NewActor constructor")

// ParseRole maps the persisted or claimed role name back to a Role.
func ParseRole(s string) (Role, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for r, name := range roleNames {
		if name == needle {
			return r, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a known role", s))
}

// Roles lists every valid role in declaration order.
func Roles() []Role {
	return []Role{RoleDonor, RoleBeneficiary, RoleOrganization, RoleDriver, RoleRecycler, RoleAdmin}
}

func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return "unknown"
}

func (r Role) Validate() error {
	if _, ok := roleNames[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// Actor is the capability of whoever invokes a workflow operation. Every
// operation receives it explicitly; there is no ambient "current user".
type Actor struct {
	id            UUID
	role          Role
	staff         bool
	isConstructed bool
}

func NewActor(id UUID, role Role, staff bool) (Actor, error) {
	if err := errors.Join(id.Validate(), role.Validate()); err != nil {
		return Actor{}, err
	}
	return Actor{id: id, role: role, staff: staff, isConstructed: true}, nil
}

func (a Actor) Validate() error {
	if !a.isConstructed {
		return ErrActorIsNotConstructed
	}
	return nil
}

func (a Actor) ID() UUID {
	return a.id
}

func (a Actor) Role() Role {
	return a.role
}

// IsStaff reports administrative capability: the staff flag or the admin role.
func (a Actor) IsStaff() bool {
	return a.isConstructed && (a.staff || a.role == RoleAdmin)
}

// Is reports whether the actor is the given profile.
func (a Actor) Is(id UUID) bool {
	return a.isConstructed && a.id.IsEqual(id)
}

// CanActFor reports whether the actor is the owner or has staff capability.
func (a Actor) CanActFor(owner UUID) bool {
	return a.Is(owner) || a.IsStaff()
}

// RequireStaff returns PermissionDenied unless the actor is staff.
func (a Actor) RequireStaff(action string) error {
	if err := a.Validate(); err != nil {
		return err
	}
	if !a.IsStaff() {
		return errs.NewPermissionDeniedError(action)
	}
	return nil
}

// RequireOwnerOrStaff returns PermissionDenied unless CanActFor(owner).
func (a Actor) RequireOwnerOrStaff(action string, owner UUID) error {
	if err := a.Validate(); err != nil {
		return err
	}
	if !a.CanActFor(owner) {
		return errs.NewPermissionDeniedError(action)
	}
	return nil
}
