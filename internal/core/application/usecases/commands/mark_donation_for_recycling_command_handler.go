package commands

import (
	"context"

	"reco/internal/core/domain/services"
)

type MarkDonationForRecyclingCommandHandler struct {
	uowFactory DonationUoWFactory
	workflow   services.DonationWorkflow
}

func NewMarkDonationForRecyclingCommandHandler(uowFactory DonationUoWFactory) *MarkDonationForRecyclingCommandHandler {
	return &MarkDonationForRecyclingCommandHandler{
		uowFactory: uowFactory,
		workflow:   services.NewDonationWorkflow(),
	}
}

func (h *MarkDonationForRecyclingCommandHandler) Handle(ctx context.Context, command MarkDonationForRecyclingCommand) error {
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
	if err = h.workflow.MarkForRecycling(command.Actor(), d); err != nil {
		return err
	}
	if err = repo.Update(ctx, d); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
