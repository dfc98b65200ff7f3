package commands

import (
	"errors"
	"strings"

	"reco/internal/core/domain/model/kernel"
	"reco/internal/pkg/guard"
)

var ErrRejectDonationRequestCommandIsNotConstructed = errors.New(
	"RejectDonationRequestCommand must be created via NewRejectDonationRequestCommand constructor",
)

// RejectDonationRequestCommand declines a pending request. An empty reason
// is stored as the default rejection text.
type RejectDonationRequestCommand struct { //nolint:recvcheck //using for validation
	actor     kernel.Actor
	requestID kernel.UUID
	reason    string

	guard guard.ConstructorGuard
}

func NewRejectDonationRequestCommand(actor kernel.Actor, requestID kernel.UUID, reason string) (RejectDonationRequestCommand, error) {
	cmd := RejectDonationRequestCommand{
		reason: strings.TrimSpace(reason),
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setRequestID(requestID),
	); err != nil {
		return RejectDonationRequestCommand{}, err
	}

	return cmd, nil
}

func (c RejectDonationRequestCommand) Validate() error {
	return c.guard.Validate(ErrRejectDonationRequestCommandIsNotConstructed)
}

func (c RejectDonationRequestCommand) Actor() kernel.Actor {
	return c.actor
}

func (c RejectDonationRequestCommand) RequestID() kernel.UUID {
	return c.requestID
}

// Reason may be empty.
func (c RejectDonationRequestCommand) Reason() string {
	return c.reason
}

func (c *RejectDonationRequestCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *RejectDonationRequestCommand) setRequestID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.requestID = id
	return nil
}
