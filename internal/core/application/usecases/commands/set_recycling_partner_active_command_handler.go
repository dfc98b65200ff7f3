package commands

import "context"

type SetRecyclingPartnerActiveCommandHandler struct {
	uowFactory RecyclingUoWFactory
}

func NewSetRecyclingPartnerActiveCommandHandler(uowFactory RecyclingUoWFactory) *SetRecyclingPartnerActiveCommandHandler {
	return &SetRecyclingPartnerActiveCommandHandler{uowFactory: uowFactory}
}

func (h *SetRecyclingPartnerActiveCommandHandler) Handle(ctx context.Context, command SetRecyclingPartnerActiveCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}
	if err := command.Actor().RequireStaff("change recycling partner status"); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	repo := uow.RecyclingPartnerRepository()
	partner, err := repo.Get(ctx, command.PartnerID())
	if err != nil {
		return err
	}

	if command.Active() {
		partner.Activate()
	} else {
		partner.Deactivate()
	}
	if err = repo.Update(ctx, partner); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
