package commands

import (
	"errors"

	"reco/internal/core/domain/model/kernel"
	"reco/internal/pkg/guard"
)

var ErrDeleteDonationCommandIsNotConstructed = errors.New(
	"DeleteDonationCommand must be created via NewDeleteDonationCommand constructor",
)

// DeleteDonationCommand removes a donation its donor no longer offers.
type DeleteDonationCommand struct { //nolint:recvcheck //using for validation
	actor      kernel.Actor
	donationID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteDonationCommand(actor kernel.Actor, donationID kernel.UUID) (DeleteDonationCommand, error) {
	cmd := DeleteDonationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setDonationID(donationID),
	); err != nil {
		return DeleteDonationCommand{}, err
	}

	return cmd, nil
}

func (c DeleteDonationCommand) Validate() error {
	return c.guard.Validate(ErrDeleteDonationCommandIsNotConstructed)
}

func (c DeleteDonationCommand) Actor() kernel.Actor {
	return c.actor
}

func (c DeleteDonationCommand) DonationID() kernel.UUID {
	return c.donationID
}

func (c *DeleteDonationCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *DeleteDonationCommand) setDonationID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.donationID = id
	return nil
}
