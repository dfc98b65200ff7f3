package commands

import (
	"errors"
	"strings"

	"reco/internal/core/domain/model/kernel"
	"reco/internal/pkg/guard"
)

var ErrRejectDonationCommandIsNotConstructed = errors.New(
	"RejectDonationCommand must be created via NewRejectDonationCommand constructor",
)

// RejectDonationCommand cancels a donation on review. Staff only.
type RejectDonationCommand struct { //nolint:recvcheck //using for validation
	actor      kernel.Actor
	donationID kernel.UUID
	reason     string

	guard guard.ConstructorGuard
}

func NewRejectDonationCommand(actor kernel.Actor, donationID kernel.UUID, reason string) (RejectDonationCommand, error) {
	cmd := RejectDonationCommand{
		reason: strings.TrimSpace(reason),
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setDonationID(donationID),
	); err != nil {
		return RejectDonationCommand{}, err
	}

	return cmd, nil
}

func (c RejectDonationCommand) Validate() error {
	return c.guard.Validate(ErrRejectDonationCommandIsNotConstructed)
}

func (c RejectDonationCommand) Actor() kernel.Actor {
	return c.actor
}

func (c RejectDonationCommand) DonationID() kernel.UUID {
	return c.donationID
}

// Reason may be empty.
func (c RejectDonationCommand) Reason() string {
	return c.reason
}

func (c *RejectDonationCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *RejectDonationCommand) setDonationID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.donationID = id
	return nil
}
