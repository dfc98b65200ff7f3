package commands

import (
	"errors"

	"reco/internal/core/domain/model/kernel"
	"reco/internal/pkg/guard"
)

var ErrSetRecyclingPartnerActiveCommandIsNotConstructed = errors.New(
	"SetRecyclingPartnerActiveCommand must be created via NewSetRecyclingPartnerActiveCommand constructor",
)

// SetRecyclingPartnerActiveCommand suspends or reinstates a partner. Inactive
// partners get no new batches.
type SetRecyclingPartnerActiveCommand struct { //nolint:recvcheck //using for validation
	actor     kernel.Actor
	partnerID kernel.UUID
	active    bool

	guard guard.ConstructorGuard
}

func NewSetRecyclingPartnerActiveCommand(
	actor kernel.Actor,
	partnerID kernel.UUID,
	active bool,
) (SetRecyclingPartnerActiveCommand, error) {
	cmd := SetRecyclingPartnerActiveCommand{
		active: active,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setPartnerID(partnerID),
	); err != nil {
		return SetRecyclingPartnerActiveCommand{}, err
	}

	return cmd, nil
}

func (c SetRecyclingPartnerActiveCommand) Validate() error {
	return c.guard.Validate(ErrSetRecyclingPartnerActiveCommandIsNotConstructed)
}

func (c SetRecyclingPartnerActiveCommand) Actor() kernel.Actor {
	return c.actor
}

func (c SetRecyclingPartnerActiveCommand) PartnerID() kernel.UUID {
	return c.partnerID
}

func (c SetRecyclingPartnerActiveCommand) Active() bool {
	return c.active
}

func (c *SetRecyclingPartnerActiveCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *SetRecyclingPartnerActiveCommand) setPartnerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.partnerID = id
	return nil
}
