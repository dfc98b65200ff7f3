package commands

import (
	"errors"

	"reco/internal/core/domain/model/delivery"
	"reco/internal/core/domain/model/kernel"
	"reco/internal/pkg/guard"
)

var ErrChangeDeliveryStatusCommandIsNotConstructed = errors.New(
	"ChangeDeliveryStatusCommand must be created via NewChangeDeliveryStatusCommand constructor",
)

// ChangeDeliveryStatusCommand moves a delivery one step along its route.
// point is where the driver stands and may be nil.
type ChangeDeliveryStatusCommand struct { //nolint:recvcheck //using for validation
	actor      kernel.Actor
	deliveryID kernel.UUID
	status     delivery.Status
	point      *kernel.GeoPoint

	guard guard.ConstructorGuard
}

func NewChangeDeliveryStatusCommand(
	actor kernel.Actor,
	deliveryID kernel.UUID,
	status delivery.Status,
	point *kernel.GeoPoint,
) (ChangeDeliveryStatusCommand, error) {
	cmd := ChangeDeliveryStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setDeliveryID(deliveryID),
		cmd.setStatus(status),
		cmd.setPoint(point),
	); err != nil {
		return ChangeDeliveryStatusCommand{}, err
	}

	return cmd, nil
}

func (c ChangeDeliveryStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeDeliveryStatusCommandIsNotConstructed)
}

func (c ChangeDeliveryStatusCommand) Actor() kernel.Actor {
	return c.actor
}

func (c ChangeDeliveryStatusCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

func (c ChangeDeliveryStatusCommand) Status() delivery.Status {
	return c.status
}

func (c ChangeDeliveryStatusCommand) Point() *kernel.GeoPoint {
	return c.point
}

func (c *ChangeDeliveryStatusCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *ChangeDeliveryStatusCommand) setDeliveryID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.deliveryID = id
	return nil
}

func (c *ChangeDeliveryStatusCommand) setStatus(status delivery.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}

func (c *ChangeDeliveryStatusCommand) setPoint(point *kernel.GeoPoint) error {
	if point == nil {
		return nil
	}
	if err := point.Validate(); err != nil {
		return err
	}

	c.point = point
	return nil
}
