package commands

import (
	"context"
	"time"

	"reco/internal/core/domain/services"
	"reco/internal/core/ports"
)

type SubmitDonationRequestCommandHandler struct {
	uowFactory DonationUoWFactory
	notifier   ports.Notifier
	workflow   services.RequestWorkflow
}

func NewSubmitDonationRequestCommandHandler(
	uowFactory DonationUoWFactory,
	notifier ports.Notifier,
) *SubmitDonationRequestCommandHandler {
	return &SubmitDonationRequestCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		workflow:   services.NewRequestWorkflow(),
	}
}

// Handle stores the request and tells staff about it. The donation row is
// locked, so a concurrent duplicate waits and then sees the stored request.
func (h *SubmitDonationRequestCommandHandler) Handle(ctx context.Context, command SubmitDonationRequestCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	actor := command.Actor()
	d, err := uow.DonationRepository().Get(ctx, command.DonationID())
	if err != nil {
		return err
	}

	requests := uow.DonationRequestRepository()
	existing, err := requests.FindByPair(ctx, d.ID(), actor.ID())
	if err != nil {
		return err
	}
	staff, err := uow.ProfileRepository().ListStaff(ctx)
	if err != nil {
		return err
	}

	r, intents, err := h.workflow.Submit(actor, d, existing, command.Reason(), staff, command.RequestID(), time.Now().UTC())
	if err != nil {
		return err
	}
	if err = requests.Add(ctx, r); err != nil {
		return err
	}
	if err = uow.Commit(ctx); err != nil {
		return err
	}

	notifyAfterCommit(ctx, h.notifier, intents)
	return nil
}
