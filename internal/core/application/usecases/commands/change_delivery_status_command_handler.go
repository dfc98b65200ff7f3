package commands

import (
	"context"
	"time"

	"reco/internal/core/domain/services"
	"reco/internal/core/ports"
)

type ChangeDeliveryStatusCommandHandler struct {
	uowFactory DeliveryUoWFactory
	notifier   ports.Notifier
	workflow   services.DeliveryWorkflow
}

func NewChangeDeliveryStatusCommandHandler(
	uowFactory DeliveryUoWFactory,
	notifier ports.Notifier,
) *ChangeDeliveryStatusCommandHandler {
	return &ChangeDeliveryStatusCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		workflow:   services.NewDeliveryWorkflow(),
	}
}

// Handle applies the transition. On delivered the donation and at most one
// request are delivered in the same transaction.
func (h *ChangeDeliveryStatusCommandHandler) Handle(ctx context.Context, command ChangeDeliveryStatusCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	deliveries := uow.DeliveryRepository()
	dl, err := deliveries.Get(ctx, command.DeliveryID())
	if err != nil {
		return err
	}

	donations := uow.DonationRepository()
	d, err := donations.Get(ctx, dl.DonationID())
	if err != nil {
		return err
	}

	requestRepo := uow.DonationRequestRepository()
	requests, err := requestRepo.ListByDonation(ctx, d.ID())
	if err != nil {
		return err
	}

	outcome, err := h.workflow.Transition(
		command.Actor(), dl, d, requests, command.Status(), command.Point(), time.Now().UTC(),
	)
	if err != nil {
		return err
	}
	if err = deliveries.Update(ctx, dl); err != nil {
		return err
	}
	if err = donations.Update(ctx, d); err != nil {
		return err
	}
	if outcome.Promoted != nil {
		if err = requestRepo.Update(ctx, outcome.Promoted); err != nil {
			return err
		}
	}
	if err = uow.Commit(ctx); err != nil {
		return err
	}

	notifyAfterCommit(ctx, h.notifier, outcome.Intents)
	return nil
}
