package commands

import (
	"context"
	"path"

	"reco/internal/core/domain/model/delivery"
	"reco/internal/core/domain/services"
	"reco/internal/core/ports"
)

const deliveryProofFolder = "deliveries"

type AttachDeliveryProofCommandHandler struct {
	uowFactory DeliveryUoWFactory
	storage    ports.FileStorage
	workflow   services.DeliveryWorkflow
}

func NewAttachDeliveryProofCommandHandler(
	uowFactory DeliveryUoWFactory,
	storage ports.FileStorage,
) *AttachDeliveryProofCommandHandler {
	return &AttachDeliveryProofCommandHandler{
		uowFactory: uowFactory,
		storage:    storage,
		workflow:   services.NewDeliveryWorkflow(),
	}
}

// Handle checks that the actor may attach proof before anything is uploaded,
// then stores the file references under lock. The delivery is checked again
// inside the transaction, so a delivery completed in between is not touched;
// files of such an attempt stay in storage unreferenced.
func (h *AttachDeliveryProofCommandHandler) Handle(ctx context.Context, command AttachDeliveryProofCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()

	// Outside a transaction the read does not lock.
	current, err := uow.DeliveryRepository().Get(ctx, command.DeliveryID())
	if err != nil {
		return err
	}
	if err = h.workflow.CheckProof(command.Actor(), current); err != nil {
		return err
	}

	folder := path.Join(deliveryProofFolder, command.DeliveryID().String())
	imageRef, err := upload(ctx, h.storage, folder, command.Image())
	if err != nil {
		return err
	}
	signatureRef, err := upload(ctx, h.storage, folder, command.Signature())
	if err != nil {
		return err
	}

	if err = uow.Begin(ctx); err != nil {
		return err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	deliveries := uow.DeliveryRepository()
	dl, err := deliveries.Get(ctx, command.DeliveryID())
	if err != nil {
		return err
	}

	proof := delivery.Proof{ImageRef: imageRef, SignatureRef: signatureRef, Notes: command.Notes()}
	if err = h.workflow.AttachProof(command.Actor(), dl, proof); err != nil {
		return err
	}
	if err = deliveries.Update(ctx, dl); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
