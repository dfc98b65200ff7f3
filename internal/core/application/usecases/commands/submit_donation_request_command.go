package commands

import (
	"errors"
	"strings"

	"reco/internal/core/domain/model/donationrequest"
	"reco/internal/core/domain/model/kernel"
	"reco/internal/pkg/guard"
)

var ErrSubmitDonationRequestCommandIsNotConstructed = errors.New(
	"SubmitDonationRequestCommand must be created via NewSubmitDonationRequestCommand constructor",
)

// SubmitDonationRequestCommand is a beneficiary asking for an approved
// donation. reason explains the need and is required.
type SubmitDonationRequestCommand struct { //nolint:recvcheck //using for validation
	actor      kernel.Actor
	requestID  kernel.UUID
	donationID kernel.UUID
	reason     string

	guard guard.ConstructorGuard
}

func NewSubmitDonationRequestCommand(
	actor kernel.Actor,
	requestID kernel.UUID,
	donationID kernel.UUID,
	reason string,
) (SubmitDonationRequestCommand, error) {
	cmd := SubmitDonationRequestCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setRequestID(requestID),
		cmd.setDonationID(donationID),
		cmd.setReason(reason),
	); err != nil {
		return SubmitDonationRequestCommand{}, err
	}

	return cmd, nil
}

func (c SubmitDonationRequestCommand) Validate() error {
	return c.guard.Validate(ErrSubmitDonationRequestCommandIsNotConstructed)
}

func (c SubmitDonationRequestCommand) Actor() kernel.Actor {
	return c.actor
}

func (c SubmitDonationRequestCommand) RequestID() kernel.UUID {
	return c.requestID
}

func (c SubmitDonationRequestCommand) DonationID() kernel.UUID {
	return c.donationID
}

func (c SubmitDonationRequestCommand) Reason() string {
	return c.reason
}

func (c *SubmitDonationRequestCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *SubmitDonationRequestCommand) setRequestID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.requestID = id
	return nil
}

func (c *SubmitDonationRequestCommand) setDonationID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.donationID = id
	return nil
}

func (c *SubmitDonationRequestCommand) setReason(reason string) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return donationrequest.ErrReasonIsRequired
	}

	c.reason = reason
	return nil
}
