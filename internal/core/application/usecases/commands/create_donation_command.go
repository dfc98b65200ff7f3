package commands

import (
	"errors"

	"reco/internal/core/domain/model/donation"
	"reco/internal/core/domain/model/kernel"
	"reco/internal/pkg/guard"
)

var ErrCreateDonationCommandIsNotConstructed = errors.New(
	"CreateDonationCommand must be created via NewCreateDonationCommand constructor",
)

// CreateDonationCommand lists an item on behalf of the acting donor. The
// donation starts pending and waits for staff review.
//
// Example:
//
//	details := donation.Details{
//	    Title:        "Laptop",
//	    Condition:    donation.ConditionGood,
//	    DeliveryType: donation.DeliveryTypeHomePickup,
//	    PickupAddress: "Rua A, 10",
//	}
//	cmd, err := NewCreateDonationCommand(actor, kernel.NewUUID(), details)
//	if err != nil {
//	    return err
//	}
//	err = NewCreateDonationCommandHandler(uowFactory).Handle(ctx, cmd)
type CreateDonationCommand struct { //nolint:recvcheck //using for validation
	actor      kernel.Actor
	donationID kernel.UUID
	details    donation.Details

	guard guard.ConstructorGuard
}

func NewCreateDonationCommand(
	actor kernel.Actor,
	donationID kernel.UUID,
	details donation.Details,
) (CreateDonationCommand, error) {
	cmd := CreateDonationCommand{
		details: details,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setDonationID(donationID),
	); err != nil {
		return CreateDonationCommand{}, err
	}

	return cmd, nil
}

func (c CreateDonationCommand) Validate() error {
	return c.guard.Validate(ErrCreateDonationCommandIsNotConstructed)
}

func (c CreateDonationCommand) Actor() kernel.Actor {
	return c.actor
}

func (c CreateDonationCommand) DonationID() kernel.UUID {
	return c.donationID
}

func (c CreateDonationCommand) Details() donation.Details {
	return c.details
}

func (c *CreateDonationCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *CreateDonationCommand) setDonationID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.donationID = id
	return nil
}
