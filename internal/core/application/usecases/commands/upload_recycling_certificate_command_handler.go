package commands

import (
	"context"
	"path"

	"reco/internal/core/domain/model/recycling"
	"reco/internal/core/domain/services"
	"reco/internal/core/ports"
)

const certificateFolder = "certificates"

type UploadRecyclingCertificateCommandHandler struct {
	uowFactory RecyclingUoWFactory
	notifier   ports.Notifier
	storage    ports.FileStorage
	workflow   services.RecyclingWorkflow
}

func NewUploadRecyclingCertificateCommandHandler(
	uowFactory RecyclingUoWFactory,
	notifier ports.Notifier,
	storage ports.FileStorage,
) *UploadRecyclingCertificateCommandHandler {
	return &UploadRecyclingCertificateCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		storage:    storage,
		workflow:   services.NewRecyclingWorkflow(),
	}
}

// Handle uploads the certificate file, when present, and moves the batch
// from processed to certified.
func (h *UploadRecyclingCertificateCommandHandler) Handle(
	ctx context.Context,
	command UploadRecyclingCertificateCommand,
) error {
	if err := command.Validate(); err != nil {
		return err
	}
	if err := command.Actor().RequireStaff("upload recycling certificate"); err != nil {
		return err
	}

	fileRef, err := upload(ctx, h.storage, path.Join(certificateFolder, command.BatchID().String()), command.File())
	if err != nil {
		return err
	}

	transition, err := NewChangeRecyclingBatchStatusCommand(
		command.Actor(),
		command.BatchID(),
		recycling.Certified,
		recycling.StagePayload{
			CertificateNumber:   command.Number(),
			CertificateFileRef:  fileRef,
			CertificateIssuedAt: command.IssuedAt(),
		},
	)
	if err != nil {
		return err
	}

	return advanceBatch(ctx, h.uowFactory, h.notifier, h.workflow, transition)
}
