package commands

import (
	"errors"

	"reco/internal/core/domain/model/kernel"
	"reco/internal/pkg/guard"
)

var ErrCreateDeliveryCommandIsNotConstructed = errors.New(
	"CreateDeliveryCommand must be created via NewCreateDeliveryCommand constructor",
)

// CreateDeliveryCommand assigns the transport of a donation, optionally to a
// driver. Staff only.
type CreateDeliveryCommand struct { //nolint:recvcheck //using for validation
	actor      kernel.Actor
	deliveryID kernel.UUID
	donationID kernel.UUID
	driverID   *kernel.UUID

	guard guard.ConstructorGuard
}

func NewCreateDeliveryCommand(
	actor kernel.Actor,
	deliveryID kernel.UUID,
	donationID kernel.UUID,
	driverID *kernel.UUID,
) (CreateDeliveryCommand, error) {
	cmd := CreateDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setDeliveryID(deliveryID),
		cmd.setDonationID(donationID),
		cmd.setDriverID(driverID),
	); err != nil {
		return CreateDeliveryCommand{}, err
	}

	return cmd, nil
}

func (c CreateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryCommandIsNotConstructed)
}

func (c CreateDeliveryCommand) Actor() kernel.Actor {
	return c.actor
}

func (c CreateDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

func (c CreateDeliveryCommand) DonationID() kernel.UUID {
	return c.donationID
}

// DriverID is nil when no driver is assigned yet.
func (c CreateDeliveryCommand) DriverID() *kernel.UUID {
	return c.driverID
}

func (c *CreateDeliveryCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *CreateDeliveryCommand) setDeliveryID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.deliveryID = id
	return nil
}

func (c *CreateDeliveryCommand) setDonationID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.donationID = id
	return nil
}

func (c *CreateDeliveryCommand) setDriverID(id *kernel.UUID) error {
	if id == nil {
		return nil
	}
	if err := id.Validate(); err != nil {
		return err
	}

	driverID := *id
	c.driverID = &driverID
	return nil
}
