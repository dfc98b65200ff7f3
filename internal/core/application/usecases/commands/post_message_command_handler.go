package commands

import (
	"context"
	"time"

	"reco/internal/core/domain/model/kernel"
	"reco/internal/core/domain/model/message"
	"reco/internal/core/domain/services"
)

type PostMessageCommandHandler struct {
	uowFactory ChatUoWFactory
	workflow   services.ChatWorkflow
}

func NewPostMessageCommandHandler(uowFactory ChatUoWFactory) *PostMessageCommandHandler {
	return &PostMessageCommandHandler{
		uowFactory: uowFactory,
		workflow:   services.NewChatWorkflow(),
	}
}

// Handle stores the message. The donor may only answer beneficiaries with
// an approved or delivered request and profiles that wrote first.
func (h *PostMessageCommandHandler) Handle(ctx context.Context, command PostMessageCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	d, err := uow.DonationRepository().Get(ctx, command.DonationID())
	if err != nil {
		return err
	}

	var participants []kernel.UUID
	if command.Actor().Is(d.DonorID()) {
		requests, err := uow.DonationRequestRepository().ListByDonation(ctx, d.ID())
		if err != nil {
			return err
		}
		partners, err := uow.MessageRepository().Participants(ctx, d.ID(), d.DonorID())
		if err != nil {
			return err
		}
		participants = h.workflow.Participants(requests, partners)
	}

	recipient, err := h.workflow.Counterpart(command.Actor(), d.DonorID(), command.Participant(), participants)
	if err != nil {
		return err
	}

	msg, err := message.NewMessage(
		command.MessageID(), d.ID(), command.Actor().ID(), recipient,
		command.Text(), "", time.Now().UTC(),
	)
	if err != nil {
		return err
	}
	if err = uow.MessageRepository().Add(ctx, msg); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
