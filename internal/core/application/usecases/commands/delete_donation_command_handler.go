package commands

import (
	"context"

	"reco/internal/core/domain/services"
)

type DeleteDonationCommandHandler struct {
	uowFactory DonationUoWFactory
	workflow   services.DonationWorkflow
}

func NewDeleteDonationCommandHandler(uowFactory DonationUoWFactory) *DeleteDonationCommandHandler {
	return &DeleteDonationCommandHandler{
		uowFactory: uowFactory,
		workflow:   services.NewDonationWorkflow(),
	}
}

// Handle deletes the donation when no request references it yet.
func (h *DeleteDonationCommandHandler) Handle(ctx context.Context, command DeleteDonationCommand) error {
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

	requests, err := uow.DonationRequestRepository().CountByDonation(ctx, d.ID())
	if err != nil {
		return err
	}
	if err = h.workflow.CheckDeletion(command.Actor(), d, int(requests)); err != nil {
		return err
	}
	if err = repo.Delete(ctx, d.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
