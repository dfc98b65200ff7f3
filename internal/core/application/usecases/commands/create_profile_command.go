package commands

import (
	"errors"
	"strings"

	"reco/internal/core/domain/model/kernel"
	"reco/internal/core/domain/model/profile"
	"reco/internal/pkg/errs"
	"reco/internal/pkg/guard"
)

var (
	ErrCreateProfileCommandIsNotConstructed = errors.New(
		"CreateProfileCommand must be created via NewCreateProfileCommand constructor",
	)
	ErrUsernameIsRequired = errs.NewValueIsRequiredError("username")
)

// CreateProfileCommand registers the marketplace profile of an authenticated
// user. A user registers itself; staff may register anyone and are the only
// ones allowed to hand out the admin role or the staff flag.
//
// Example:
//
//	cmd, err := NewCreateProfileCommand(actor, actor.ID(), "maria", contact, kernel.RoleDonor, false, profile.DriverInfo{})
//	if err != nil {
//	    return err
//	}
//	err = NewCreateProfileCommandHandler(uowFactory).Handle(ctx, cmd)
type CreateProfileCommand struct { //nolint:recvcheck //using for validation
	actor     kernel.Actor
	profileID kernel.UUID
	username  string
	contact   profile.Contact
	role      kernel.Role
	staff     bool
	driver    profile.DriverInfo

	guard guard.ConstructorGuard
}

func NewCreateProfileCommand(
	actor kernel.Actor,
	profileID kernel.UUID,
	username string,
	contact profile.Contact,
	role kernel.Role,
	staff bool,
	driver profile.DriverInfo,
) (CreateProfileCommand, error) {
	cmd := CreateProfileCommand{
		contact: contact,
		staff:   staff,
		driver:  driver,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setProfileID(profileID),
		cmd.setUsername(username),
		cmd.setRole(role),
	); err != nil {
		return CreateProfileCommand{}, err
	}

	return cmd, nil
}

func (c CreateProfileCommand) Validate() error {
	return c.guard.Validate(ErrCreateProfileCommandIsNotConstructed)
}

func (c CreateProfileCommand) Actor() kernel.Actor {
	return c.actor
}

func (c CreateProfileCommand) ProfileID() kernel.UUID {
	return c.profileID
}

func (c CreateProfileCommand) Username() string {
	return c.username
}

func (c CreateProfileCommand) Contact() profile.Contact {
	return c.contact
}

func (c CreateProfileCommand) Role() kernel.Role {
	return c.role
}

func (c CreateProfileCommand) Staff() bool {
	return c.staff
}

func (c CreateProfileCommand) Driver() profile.DriverInfo {
	return c.driver
}

func (c *CreateProfileCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *CreateProfileCommand) setProfileID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.profileID = id
	return nil
}

func (c *CreateProfileCommand) setUsername(username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return ErrUsernameIsRequired
	}

	c.username = username
	return nil
}

func (c *CreateProfileCommand) setRole(role kernel.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}
