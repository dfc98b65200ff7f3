package commands

import "context"

type SetDriverAvailabilityCommandHandler struct {
	uowFactory ProfileUoWFactory
}

func NewSetDriverAvailabilityCommandHandler(uowFactory ProfileUoWFactory) *SetDriverAvailabilityCommandHandler {
	return &SetDriverAvailabilityCommandHandler{uowFactory: uowFactory}
}

func (h *SetDriverAvailabilityCommandHandler) Handle(ctx context.Context, command SetDriverAvailabilityCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}
	if err := command.Actor().RequireOwnerOrStaff("set driver availability", command.ProfileID()); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	repo := uow.ProfileRepository()
	p, err := repo.Get(ctx, command.ProfileID())
	if err != nil {
		return err
	}
	if err = p.SetAvailability(command.Available()); err != nil {
		return err
	}
	if err = repo.Update(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
