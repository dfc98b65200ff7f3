package commands

import (
	"context"
	"time"

	"reco/internal/core/domain/model/profile"
	"reco/internal/core/domain/services"
	"reco/internal/core/ports"
)

type CreateDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
	notifier   ports.Notifier
	workflow   services.DeliveryWorkflow
}

func NewCreateDeliveryCommandHandler(uowFactory DeliveryUoWFactory, notifier ports.Notifier) *CreateDeliveryCommandHandler {
	return &CreateDeliveryCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		workflow:   services.NewDeliveryWorkflow(),
	}
}

// Handle creates the delivery and puts the donation in route.
func (h *CreateDeliveryCommandHandler) Handle(ctx context.Context, command CreateDeliveryCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	donations := uow.DonationRepository()
	d, err := donations.Get(ctx, command.DonationID())
	if err != nil {
		return err
	}

	deliveries := uow.DeliveryRepository()
	existing, err := deliveries.FindByDonation(ctx, d.ID())
	if err != nil {
		return err
	}

	var driver *profile.Profile
	if driverID := command.DriverID(); driverID != nil {
		if driver, err = uow.ProfileRepository().Get(ctx, *driverID); err != nil {
			return err
		}
	}

	dl, intents, err := h.workflow.Create(command.Actor(), d, existing, driver, command.DeliveryID(), time.Now().UTC())
	if err != nil {
		return err
	}
	if err = deliveries.Add(ctx, dl); err != nil {
		return err
	}
	if err = donations.Update(ctx, d); err != nil {
		return err
	}
	if err = uow.Commit(ctx); err != nil {
		return err
	}

	notifyAfterCommit(ctx, h.notifier, intents)
	return nil
}
