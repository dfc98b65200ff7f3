package commands

import (
	"errors"

	"reco/internal/core/domain/model/collectionpoint"
	"reco/internal/core/domain/model/kernel"
	"reco/internal/pkg/guard"
)

var ErrCreateCollectionPointCommandIsNotConstructed = errors.New(
	"CreateCollectionPointCommand must be created via NewCreateCollectionPointCommand constructor",
)

// CreateCollectionPointCommand opens a drop-off location. Staff only.
type CreateCollectionPointCommand struct { //nolint:recvcheck //using for validation
	actor   kernel.Actor
	pointID kernel.UUID
	details collectionpoint.Details

	guard guard.ConstructorGuard
}

func NewCreateCollectionPointCommand(
	actor kernel.Actor,
	pointID kernel.UUID,
	details collectionpoint.Details,
) (CreateCollectionPointCommand, error) {
	cmd := CreateCollectionPointCommand{
		details: details,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setPointID(pointID),
	); err != nil {
		return CreateCollectionPointCommand{}, err
	}

	return cmd, nil
}

func (c CreateCollectionPointCommand) Validate() error {
	return c.guard.Validate(ErrCreateCollectionPointCommandIsNotConstructed)
}

func (c CreateCollectionPointCommand) Actor() kernel.Actor {
	return c.actor
}

func (c CreateCollectionPointCommand) PointID() kernel.UUID {
	return c.pointID
}

func (c CreateCollectionPointCommand) Details() collectionpoint.Details {
	return c.details
}

func (c *CreateCollectionPointCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *CreateCollectionPointCommand) setPointID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.pointID = id
	return nil
}
