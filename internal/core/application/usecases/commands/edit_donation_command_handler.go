package commands

import (
	"context"

	"reco/internal/core/domain/services"
	"reco/internal/pkg/errs"
)

type EditDonationCommandHandler struct {
	uowFactory DonationUoWFactory
	workflow   services.DonationWorkflow
}

func NewEditDonationCommandHandler(uowFactory DonationUoWFactory) *EditDonationCommandHandler {
	return &EditDonationCommandHandler{
		uowFactory: uowFactory,
		workflow:   services.NewDonationWorkflow(),
	}
}

// Handle rewrites the donation's details. A newly chosen collection point
// must be active.
func (h *EditDonationCommandHandler) Handle(ctx context.Context, command EditDonationCommand) error {
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

	previous := d.CollectionPointID()
	if err = h.workflow.Edit(command.Actor(), d, command.Details()); err != nil {
		return err
	}

	if pointID := d.CollectionPointID(); pointID != nil && (previous == nil || !previous.IsEqual(*pointID)) {
		point, err := uow.CollectionPointRepository().Get(ctx, *pointID)
		if err != nil {
			return err
		}
		if !point.IsActive() {
			return errs.NewPreconditionFailedError("collection point", point.Details().Name+" is inactive")
		}
	}

	if err = repo.Update(ctx, d); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
