package commands

import (
	"context"
	"time"

	"reco/internal/core/domain/model/kernel"
	"reco/internal/core/domain/model/profile"
)

type CreateProfileCommandHandler struct {
	uowFactory ProfileUoWFactory
}

func NewCreateProfileCommandHandler(uowFactory ProfileUoWFactory) *CreateProfileCommandHandler {
	return &CreateProfileCommandHandler{uowFactory: uowFactory}
}

// Handle stores a new profile. A second registration for the same user fails
// with Conflict.
func (h *CreateProfileCommandHandler) Handle(ctx context.Context, command CreateProfileCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	actor := command.Actor()
	if err := actor.RequireOwnerOrStaff("create profile", command.ProfileID()); err != nil {
		return err
	}
	if command.Staff() || command.Role() == kernel.RoleAdmin {
		if err := actor.RequireStaff("grant staff access"); err != nil {
			return err
		}
	}

	p, err := profile.NewProfile(
		command.ProfileID(),
		command.Username(),
		command.Contact(),
		command.Role(),
		command.Staff(),
		command.Driver(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	if err = uow.ProfileRepository().Add(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
