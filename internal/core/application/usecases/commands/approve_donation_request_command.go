package commands

import (
	"errors"

	"reco/internal/core/domain/model/kernel"
	"reco/internal/pkg/guard"
)

var ErrApproveDonationRequestCommandIsNotConstructed = errors.New(
	"ApproveDonationRequestCommand must be created via NewApproveDonationRequestCommand constructor",
)

// ApproveDonationRequestCommand accepts a beneficiary's pending request.
type ApproveDonationRequestCommand struct { //nolint:recvcheck //using for validation
	actor     kernel.Actor
	requestID kernel.UUID

	guard guard.ConstructorGuard
}

func NewApproveDonationRequestCommand(actor kernel.Actor, requestID kernel.UUID) (ApproveDonationRequestCommand, error) {
	cmd := ApproveDonationRequestCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setRequestID(requestID),
	); err != nil {
		return ApproveDonationRequestCommand{}, err
	}

	return cmd, nil
}

func (c ApproveDonationRequestCommand) Validate() error {
	return c.guard.Validate(ErrApproveDonationRequestCommandIsNotConstructed)
}

func (c ApproveDonationRequestCommand) Actor() kernel.Actor {
	return c.actor
}

func (c ApproveDonationRequestCommand) RequestID() kernel.UUID {
	return c.requestID
}

func (c *ApproveDonationRequestCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *ApproveDonationRequestCommand) setRequestID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.requestID = id
	return nil
}
