package commands

import (
	"errors"

	"reco/internal/core/domain/model/kernel"
	"reco/internal/pkg/guard"
)

var ErrApproveDonationCommandIsNotConstructed = errors.New(
	"ApproveDonationCommand must be created via NewApproveDonationCommand constructor",
)

// ApproveDonationCommand publishes a pending donation. Staff only.
type ApproveDonationCommand struct { //nolint:recvcheck //using for validation
	actor      kernel.Actor
	donationID kernel.UUID

	guard guard.ConstructorGuard
}

func NewApproveDonationCommand(actor kernel.Actor, donationID kernel.UUID) (ApproveDonationCommand, error) {
	cmd := ApproveDonationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setDonationID(donationID),
	); err != nil {
		return ApproveDonationCommand{}, err
	}

	return cmd, nil
}

func (c ApproveDonationCommand) Validate() error {
	return c.guard.Validate(ErrApproveDonationCommandIsNotConstructed)
}

func (c ApproveDonationCommand) Actor() kernel.Actor {
	return c.actor
}

func (c ApproveDonationCommand) DonationID() kernel.UUID {
	return c.donationID
}

func (c *ApproveDonationCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *ApproveDonationCommand) setDonationID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.donationID = id
	return nil
}
