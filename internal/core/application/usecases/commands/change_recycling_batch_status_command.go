package commands

import (
	"errors"

	"reco/internal/core/domain/model/kernel"
	"reco/internal/core/domain/model/recycling"
	"reco/internal/pkg/guard"
)

var ErrChangeRecyclingBatchStatusCommandIsNotConstructed = errors.New(
	"ChangeRecyclingBatchStatusCommand must be created via NewChangeRecyclingBatchStatusCommand constructor",
)

// ChangeRecyclingBatchStatusCommand advances a batch to its next stage with
// the data that stage records.
type ChangeRecyclingBatchStatusCommand struct { //nolint:recvcheck //using for validation
	actor   kernel.Actor
	batchID kernel.UUID
	status  recycling.BatchStatus
	payload recycling.StagePayload

	guard guard.ConstructorGuard
}

func NewChangeRecyclingBatchStatusCommand(
	actor kernel.Actor,
	batchID kernel.UUID,
	status recycling.BatchStatus,
	payload recycling.StagePayload,
) (ChangeRecyclingBatchStatusCommand, error) {
	cmd := ChangeRecyclingBatchStatusCommand{
		payload: payload,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setBatchID(batchID),
		cmd.setStatus(status),
	); err != nil {
		return ChangeRecyclingBatchStatusCommand{}, err
	}

	return cmd, nil
}

func (c ChangeRecyclingBatchStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeRecyclingBatchStatusCommandIsNotConstructed)
}

func (c ChangeRecyclingBatchStatusCommand) Actor() kernel.Actor {
	return c.actor
}

func (c ChangeRecyclingBatchStatusCommand) BatchID() kernel.UUID {
	return c.batchID
}

func (c ChangeRecyclingBatchStatusCommand) Status() recycling.BatchStatus {
	return c.status
}

func (c ChangeRecyclingBatchStatusCommand) Payload() recycling.StagePayload {
	return c.payload
}

func (c *ChangeRecyclingBatchStatusCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *ChangeRecyclingBatchStatusCommand) setBatchID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.batchID = id
	return nil
}

func (c *ChangeRecyclingBatchStatusCommand) setStatus(status recycling.BatchStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
