package commands

import (
	"errors"

	"reco/internal/core/domain/model/kernel"
	"reco/internal/pkg/guard"
)

var ErrPostMessageCommandIsNotConstructed = errors.New(
	"PostMessageCommand must be created via NewPostMessageCommand constructor",
)

// PostMessageCommand sends a chat message about a donation. The donor names
// the participant; everyone else writes to the donor.
type PostMessageCommand struct { //nolint:recvcheck //using for validation
	actor       kernel.Actor
	messageID   kernel.UUID
	donationID  kernel.UUID
	participant *kernel.UUID
	text        string

	guard guard.ConstructorGuard
}

func NewPostMessageCommand(
	actor kernel.Actor,
	messageID, donationID kernel.UUID,
	participant *kernel.UUID,
	text string,
) (PostMessageCommand, error) {
	cmd := PostMessageCommand{
		text:  text,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setMessageID(messageID),
		cmd.setDonationID(donationID),
		cmd.setParticipant(participant),
	); err != nil {
		return PostMessageCommand{}, err
	}

	return cmd, nil
}

func (c PostMessageCommand) Validate() error {
	return c.guard.Validate(ErrPostMessageCommandIsNotConstructed)
}

func (c PostMessageCommand) Actor() kernel.Actor {
	return c.actor
}

func (c PostMessageCommand) MessageID() kernel.UUID {
	return c.messageID
}

func (c PostMessageCommand) DonationID() kernel.UUID {
	return c.donationID
}

func (c PostMessageCommand) Participant() *kernel.UUID {
	return c.participant
}

func (c PostMessageCommand) Text() string {
	return c.text
}

func (c *PostMessageCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *PostMessageCommand) setMessageID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.messageID = id
	return nil
}

func (c *PostMessageCommand) setDonationID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.donationID = id
	return nil
}

func (c *PostMessageCommand) setParticipant(id *kernel.UUID) error {
	if id == nil {
		return nil
	}
	if err := id.Validate(); err != nil {
		return err
	}

	c.participant = id
	return nil
}
