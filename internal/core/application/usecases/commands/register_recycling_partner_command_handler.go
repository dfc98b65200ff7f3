package commands

import (
	"context"
	"time"

	"reco/internal/core/domain/model/recycling"
)

type RegisterRecyclingPartnerCommandHandler struct {
	uowFactory RecyclingUoWFactory
}

func NewRegisterRecyclingPartnerCommandHandler(uowFactory RecyclingUoWFactory) *RegisterRecyclingPartnerCommandHandler {
	return &RegisterRecyclingPartnerCommandHandler{uowFactory: uowFactory}
}

// Handle stores the partner. A second partner with the same tax id fails
// with Conflict.
func (h *RegisterRecyclingPartnerCommandHandler) Handle(ctx context.Context, command RegisterRecyclingPartnerCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}
	if err := command.Actor().RequireStaff("register recycling partner"); err != nil {
		return err
	}

	partner, err := recycling.NewPartner(command.PartnerID(), command.Details(), time.Now().UTC())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	if err = uow.RecyclingPartnerRepository().Add(ctx, partner); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
