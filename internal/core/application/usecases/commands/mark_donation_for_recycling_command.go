package commands

import (
	"errors"

	"reco/internal/core/domain/model/kernel"
	"reco/internal/pkg/guard"
)

var ErrMarkDonationForRecyclingCommandIsNotConstructed = errors.New(
	"MarkDonationForRecyclingCommand must be created via NewMarkDonationForRecyclingCommand constructor",
)

// MarkDonationForRecyclingCommand diverts a donation to the recycling flow.
type MarkDonationForRecyclingCommand struct { //nolint:recvcheck //using for validation
	actor      kernel.Actor
	donationID kernel.UUID

	guard guard.ConstructorGuard
}

func NewMarkDonationForRecyclingCommand(actor kernel.Actor, donationID kernel.UUID) (MarkDonationForRecyclingCommand, error) {
	cmd := MarkDonationForRecyclingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setDonationID(donationID),
	); err != nil {
		return MarkDonationForRecyclingCommand{}, err
	}

	return cmd, nil
}

func (c MarkDonationForRecyclingCommand) Validate() error {
	return c.guard.Validate(ErrMarkDonationForRecyclingCommandIsNotConstructed)
}

func (c MarkDonationForRecyclingCommand) Actor() kernel.Actor {
	return c.actor
}

func (c MarkDonationForRecyclingCommand) DonationID() kernel.UUID {
	return c.donationID
}

func (c *MarkDonationForRecyclingCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *MarkDonationForRecyclingCommand) setDonationID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.donationID = id
	return nil
}
