package commands

import (
	"errors"

	"reco/internal/core/domain/model/kernel"
	"reco/internal/pkg/guard"
)

var ErrSetDriverAvailabilityCommandIsNotConstructed = errors.New(
	"SetDriverAvailabilityCommand must be created via NewSetDriverAvailabilityCommand constructor",
)

// SetDriverAvailabilityCommand toggles whether a driver takes new deliveries.
type SetDriverAvailabilityCommand struct { //nolint:recvcheck //using for validation
	actor     kernel.Actor
	profileID kernel.UUID
	available bool

	guard guard.ConstructorGuard
}

func NewSetDriverAvailabilityCommand(
	actor kernel.Actor,
	profileID kernel.UUID,
	available bool,
) (SetDriverAvailabilityCommand, error) {
	cmd := SetDriverAvailabilityCommand{
		available: available,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setProfileID(profileID),
	); err != nil {
		return SetDriverAvailabilityCommand{}, err
	}

	return cmd, nil
}

func (c SetDriverAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrSetDriverAvailabilityCommandIsNotConstructed)
}

func (c SetDriverAvailabilityCommand) Actor() kernel.Actor {
	return c.actor
}

func (c SetDriverAvailabilityCommand) ProfileID() kernel.UUID {
	return c.profileID
}

func (c SetDriverAvailabilityCommand) Available() bool {
	return c.available
}

func (c *SetDriverAvailabilityCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *SetDriverAvailabilityCommand) setProfileID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.profileID = id
	return nil
}
