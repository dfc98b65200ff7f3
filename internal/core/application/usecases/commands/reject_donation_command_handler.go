package commands

import (
	"context"
	"time"

	"reco/internal/core/domain/services"
	"reco/internal/core/ports"
)

type RejectDonationCommandHandler struct {
	uowFactory DonationUoWFactory
	notifier   ports.Notifier
	workflow   services.DonationWorkflow
}

func NewRejectDonationCommandHandler(uowFactory DonationUoWFactory, notifier ports.Notifier) *RejectDonationCommandHandler {
	return &RejectDonationCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		workflow:   services.NewDonationWorkflow(),
	}
}

func (h *RejectDonationCommandHandler) Handle(ctx context.Context, command RejectDonationCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	repo := uow.DonationRepository()
	d, err := repo.Get(ctx, command.DonationID())
	if err != nil {
		return err
	}

	intents, err := h.workflow.Reject(command.Actor(), d, command.Reason(), time.Now().UTC())
	if err != nil {
		return err
	}
	if err = repo.Update(ctx, d); err != nil {
		return err
	}
	if err = uow.Commit(ctx); err != nil {
		return err
	}

	notifyAfterCommit(ctx, h.notifier, intents)
	return nil
}
