package commands

import (
	"context"
	"time"

	"reco/internal/core/domain/model/collectionpoint"
)

type CreateCollectionPointCommandHandler struct {
	uowFactory ProfileUoWFactory
}

func NewCreateCollectionPointCommandHandler(uowFactory ProfileUoWFactory) *CreateCollectionPointCommandHandler {
	return &CreateCollectionPointCommandHandler{uowFactory: uowFactory}
}

func (h *CreateCollectionPointCommandHandler) Handle(ctx context.Context, command CreateCollectionPointCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	actor := command.Actor()
	if err := actor.RequireStaff("create collection point"); err != nil {
		return err
	}

	point, err := collectionpoint.NewCollectionPoint(command.PointID(), command.Details(), actor.ID(), time.Now().UTC())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	if err = uow.CollectionPointRepository().Add(ctx, point); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
