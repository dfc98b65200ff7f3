// Package message models the conversation between a donor and the people
// interested in one of their donations. Every message belongs to a donation
// and goes from one profile to another.
package message

import (
	"errors"
	"strings"
	"time"

	"reco/internal/core/domain/model/kernel"
	"reco/internal/pkg/errs"
)

const textMaxLength = 4000

var (
	ErrMessageIsNotConstructed = errors.New("Message must be created via NewMessage constructor")
	ErrTextIsRequired          = errs.NewValueIsRequiredError("text")
)

type Message struct {
	id          kernel.UUID
	donationID  kernel.UUID
	senderID    kernel.UUID
	recipientID kernel.UUID
	text        string
	imageRef    string
	read        bool
	createdAt   time.Time

	isConstructed bool
}

// NewMessage creates an unread message. Sender and recipient must differ.
func NewMessage(id, donationID, senderID, recipientID kernel.UUID, text, imageRef string, createdAt time.Time) (*Message, error) {
	return RestoreMessage(id, donationID, senderID, recipientID, text, imageRef, false, createdAt)
}

func RestoreMessage(
	id, donationID, senderID, recipientID kernel.UUID,
	text, imageRef string,
	read bool,
	createdAt time.Time,
) (*Message, error) {
	text = strings.TrimSpace(text)

	var errList []error
	switch {
	case text == "":
		errList = append(errList, ErrTextIsRequired)
	case len(text) > textMaxLength:
		errList = append(errList, errs.NewValueIsOutOfRangeError("text length", len(text), 1, textMaxLength))
	}
	errList = append(errList, id.Validate(), donationID.Validate(), senderID.Validate(), recipientID.Validate())
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}
	if senderID.IsEqual(recipientID) {
		return nil, errs.NewValueIsInvalidError("recipient")
	}

	return &Message{
		id:            id,
		donationID:    donationID,
		senderID:      senderID,
		recipientID:   recipientID,
		text:          text,
		imageRef:      strings.TrimSpace(imageRef),
		read:          read,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

func (m *Message) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMessageIsNotConstructed
	}
	return nil
}

func (m *Message) ID() kernel.UUID {
	return m.id
}

func (m *Message) DonationID() kernel.UUID {
	return m.donationID
}

func (m *Message) SenderID() kernel.UUID {
	return m.senderID
}

func (m *Message) RecipientID() kernel.UUID {
	return m.recipientID
}

func (m *Message) Text() string {
	return m.text
}

func (m *Message) ImageRef() string {
	return m.imageRef
}

func (m *Message) IsRead() bool {
	return m.read
}

func (m *Message) CreatedAt() time.Time {
	return m.createdAt
}
