package commands

import (
	"errors"

	"reco/internal/core/domain/model/kernel"
	"reco/internal/core/domain/model/recycling"
	"reco/internal/pkg/guard"
)

var ErrRegisterRecyclingPartnerCommandIsNotConstructed = errors.New(
	"RegisterRecyclingPartnerCommand must be created via NewRegisterRecyclingPartnerCommand constructor",
)

// RegisterRecyclingPartnerCommand adds a licensed recycling company. Staff
// only. The partner starts active.
type RegisterRecyclingPartnerCommand struct { //nolint:recvcheck //using for validation
	actor     kernel.Actor
	partnerID kernel.UUID
	details   recycling.PartnerDetails

	guard guard.ConstructorGuard
}

func NewRegisterRecyclingPartnerCommand(
	actor kernel.Actor,
	partnerID kernel.UUID,
	details recycling.PartnerDetails,
) (RegisterRecyclingPartnerCommand, error) {
	cmd := RegisterRecyclingPartnerCommand{
		details: details,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setPartnerID(partnerID),
	); err != nil {
		return RegisterRecyclingPartnerCommand{}, err
	}

	return cmd, nil
}

func (c RegisterRecyclingPartnerCommand) Validate() error {
	return c.guard.Validate(ErrRegisterRecyclingPartnerCommandIsNotConstructed)
}

func (c RegisterRecyclingPartnerCommand) Actor() kernel.Actor {
	return c.actor
}

func (c RegisterRecyclingPartnerCommand) PartnerID() kernel.UUID {
	return c.partnerID
}

func (c RegisterRecyclingPartnerCommand) Details() recycling.PartnerDetails {
	return c.details
}

func (c *RegisterRecyclingPartnerCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *RegisterRecyclingPartnerCommand) setPartnerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.partnerID = id
	return nil
}
