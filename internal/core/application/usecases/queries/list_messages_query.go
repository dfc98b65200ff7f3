package queries

import (
	"errors"
	"time"

	"reco/internal/core/domain/model/kernel"
	"reco/internal/pkg/guard"
)

var ErrListMessagesQueryIsNotConstructed = errors.New(
	"ListMessagesQuery must be created via NewListMessagesQuery constructor",
)

// ListMessagesQuery reads one conversation about a donation. The donor and
// staff pick the participant; everyone else reads their thread with the
// donor.
type ListMessagesQuery struct {
	actor       kernel.Actor
	donationID  kernel.UUID
	participant *kernel.UUID
	guard       guard.ConstructorGuard
}

func NewListMessagesQuery(actor kernel.Actor, donationID kernel.UUID, participant *kernel.UUID) (ListMessagesQuery, error) {
	var participantErr error
	if participant != nil {
		participantErr = participant.Validate()
	}
	if err := errors.Join(actor.Validate(), donationID.Validate(), participantErr); err != nil {
		return ListMessagesQuery{}, err
	}
	return ListMessagesQuery{
		actor:       actor,
		donationID:  donationID,
		participant: participant,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (q ListMessagesQuery) Validate() error {
	return q.guard.Validate(ErrListMessagesQueryIsNotConstructed)
}

func (q ListMessagesQuery) DonationID() kernel.UUID {
	return q.donationID
}

func (q ListMessagesQuery) Participant() *kernel.UUID {
	return q.participant
}

type ChatParticipant struct {
	ProfileID kernel.UUID
	Username  string
}

type MessageView struct {
	ID          kernel.UUID
	SenderID    kernel.UUID
	RecipientID kernel.UUID
	Text        string
	ImageRef    string
	Read        bool
	CreatedAt   time.Time
}

// ListMessagesQueryResponse lists Participants only for the donor and
// staff. Messages are oldest first; the list is empty when the donor has
// not picked a participant yet.
type ListMessagesQueryResponse struct {
	DonationID    kernel.UUID
	DonationTitle string
	Participants  []ChatParticipant
	Messages      []MessageView
}
