package commands

import (
	"context"
	"time"

	"reco/internal/core/domain/services"
	"reco/internal/core/ports"
)

type ChangeRecyclingBatchStatusCommandHandler struct {
	uowFactory RecyclingUoWFactory
	notifier   ports.Notifier
	workflow   services.RecyclingWorkflow
}

func NewChangeRecyclingBatchStatusCommandHandler(
	uowFactory RecyclingUoWFactory,
	notifier ports.Notifier,
) *ChangeRecyclingBatchStatusCommandHandler {
	return &ChangeRecyclingBatchStatusCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		workflow:   services.NewRecyclingWorkflow(),
	}
}

func (h *ChangeRecyclingBatchStatusCommandHandler) Handle(ctx context.Context, command ChangeRecyclingBatchStatusCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	return advanceBatch(ctx, h.uowFactory, h.notifier, h.workflow, command)
}

// advanceBatch runs one batch transition in its own unit of work.
func advanceBatch(
	ctx context.Context,
	uowFactory RecyclingUoWFactory,
	notifier ports.Notifier,
	workflow services.RecyclingWorkflow,
	command ChangeRecyclingBatchStatusCommand,
) error {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	batches := uow.RecyclingBatchRepository()
	batch, err := batches.Get(ctx, command.BatchID())
	if err != nil {
		return err
	}
	partner, err := uow.RecyclingPartnerRepository().Get(ctx, batch.PartnerID())
	if err != nil {
		return err
	}

	intents, err := workflow.Transition(
		command.Actor(), batch, partner, command.Status(), command.Payload(), time.Now().UTC(),
	)
	if err != nil {
		return err
	}
	if err = batches.Update(ctx, batch); err != nil {
		return err
	}
	if err = uow.Commit(ctx); err != nil {
		return err
	}

	notifyAfterCommit(ctx, notifier, intents)
	return nil
}
