package commands

import (
	"context"
	"time"

	"reco/internal/core/domain/model/donation"
	"reco/internal/pkg/errs"
)

type CreateDonationCommandHandler struct {
	uowFactory DonationUoWFactory
}

func NewCreateDonationCommandHandler(uowFactory DonationUoWFactory) *CreateDonationCommandHandler {
	return &CreateDonationCommandHandler{uowFactory: uowFactory}
}

// Handle stores the donation. A referenced collection point must exist and
// be active.
func (h *CreateDonationCommandHandler) Handle(ctx context.Context, command CreateDonationCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	d, err := donation.NewDonation(command.DonationID(), command.Actor().ID(), command.Details(), time.Now().UTC())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	if pointID := d.CollectionPointID(); pointID != nil {
		point, err := uow.CollectionPointRepository().Get(ctx, *pointID)
		if err != nil {
			return err
		}
		if !point.IsActive() {
			return errs.NewPreconditionFailedError("collection point", point.Details().Name+" is inactive")
		}
	}

	if err = uow.DonationRepository().Add(ctx, d); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
