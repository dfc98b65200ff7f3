package commands

import (
	"context"
	"time"

	"reco/internal/core/domain/services"
	"reco/internal/core/ports"
)

type ApproveDonationCommandHandler struct {
	uowFactory DonationUoWFactory
	notifier   ports.Notifier
	workflow   services.DonationWorkflow
}

func NewApproveDonationCommandHandler(uowFactory DonationUoWFactory, notifier ports.Notifier) *ApproveDonationCommandHandler {
	return &ApproveDonationCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		workflow:   services.NewDonationWorkflow(),
	}
}

// Handle approves the donation under a row lock, so of two concurrent
// approvals the second one sees approved and fails.
func (h *ApproveDonationCommandHandler) Handle(ctx context.Context, command ApproveDonationCommand) error {
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

	intents, err := h.workflow.Approve(command.Actor(), d, time.Now().UTC())
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
