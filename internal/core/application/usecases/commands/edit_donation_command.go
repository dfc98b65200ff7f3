package commands

import (
	"errors"

	"reco/internal/core/domain/model/donation"
	"reco/internal/core/domain/model/kernel"
	"reco/internal/pkg/guard"
)

var ErrEditDonationCommandIsNotConstructed = errors.New(
	"EditDonationCommand must be created via NewEditDonationCommand constructor",
)

// EditDonationCommand replaces the description of a listed item.
type EditDonationCommand struct { //nolint:recvcheck //using for validation
	actor      kernel.Actor
	donationID kernel.UUID
	details    donation.Details

	guard guard.ConstructorGuard
}

func NewEditDonationCommand(
	actor kernel.Actor,
	donationID kernel.UUID,
	details donation.Details,
) (EditDonationCommand, error) {
	cmd := EditDonationCommand{
		details: details,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setDonationID(donationID),
	); err != nil {
		return EditDonationCommand{}, err
	}

	return cmd, nil
}

func (c EditDonationCommand) Validate() error {
	return c.guard.Validate(ErrEditDonationCommandIsNotConstructed)
}

func (c EditDonationCommand) Actor() kernel.Actor {
	return c.actor
}

func (c EditDonationCommand) DonationID() kernel.UUID {
	return c.donationID
}

func (c EditDonationCommand) Details() donation.Details {
	return c.details
}

func (c *EditDonationCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *EditDonationCommand) setDonationID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.donationID = id
	return nil
}
