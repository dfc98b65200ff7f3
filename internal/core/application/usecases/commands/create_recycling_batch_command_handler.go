package commands

import (
	"context"
	"time"

	"reco/internal/core/domain/model/recycling"
	"reco/internal/core/domain/services"
)

type CreateRecyclingBatchCommandHandler struct {
	uowFactory RecyclingUoWFactory
	workflow   services.RecyclingWorkflow
}

func NewCreateRecyclingBatchCommandHandler(uowFactory RecyclingUoWFactory) *CreateRecyclingBatchCommandHandler {
	return &CreateRecyclingBatchCommandHandler{
		uowFactory: uowFactory,
		workflow:   services.NewRecyclingWorkflow(),
	}
}

// Handle stores the batch, puts the claimed donations in route and returns
// the batch code. Two batches created at the same time may draw the same
// sequence number; the second one then fails with Conflict on the code.
func (h *CreateRecyclingBatchCommandHandler) Handle(
	ctx context.Context,
	command CreateRecyclingBatchCommand,
) (recycling.Code, error) {
	if err := command.Validate(); err != nil {
		return "", err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return "", err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	partner, err := uow.RecyclingPartnerRepository().Get(ctx, command.PartnerID())
	if err != nil {
		return "", err
	}

	donations := uow.DonationRepository()
	candidates, err := donations.ListByIDs(ctx, command.DonationIDs())
	if err != nil {
		return "", err
	}

	batches := uow.RecyclingBatchRepository()
	created, err := batches.Count(ctx)
	if err != nil {
		return "", err
	}

	batch, claimed, err := h.workflow.CreateBatch(
		command.Actor(), partner, candidates, int(created)+1, command.Notes(), command.BatchID(), time.Now().UTC(),
	)
	if err != nil {
		return "", err
	}
	if err = batches.Add(ctx, batch); err != nil {
		return "", err
	}
	for _, d := range claimed {
		if err = donations.Update(ctx, d); err != nil {
			return "", err
		}
	}
	if err = uow.Commit(ctx); err != nil {
		return "", err
	}

	return batch.Code(), nil
}
