package commands

import (
	"context"
	"time"

	"reco/internal/core/domain/services"
	"reco/internal/core/ports"
)

type RejectDonationRequestCommandHandler struct {
	uowFactory DonationUoWFactory
	notifier   ports.Notifier
	workflow   services.RequestWorkflow
}

func NewRejectDonationRequestCommandHandler(
	uowFactory DonationUoWFactory,
	notifier ports.Notifier,
) *RejectDonationRequestCommandHandler {
	return &RejectDonationRequestCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		workflow:   services.NewRequestWorkflow(),
	}
}

func (h *RejectDonationRequestCommandHandler) Handle(ctx context.Context, command RejectDonationRequestCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	requests := uow.DonationRequestRepository()
	r, err := requests.Get(ctx, command.RequestID())
	if err != nil {
		return err
	}
	d, err := uow.DonationRepository().Get(ctx, r.DonationID())
	if err != nil {
		return err
	}

	intents, err := h.workflow.Reject(command.Actor(), r, d, command.Reason(), time.Now().UTC())
	if err != nil {
		return err
	}
	if err = requests.Update(ctx, r); err != nil {
		return err
	}
	if err = uow.Commit(ctx); err != nil {
		return err
	}

	notifyAfterCommit(ctx, h.notifier, intents)
	return nil
}
