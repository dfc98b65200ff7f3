package commands

import (
	"errors"
	"strings"

	"reco/internal/core/domain/model/kernel"
	"reco/internal/pkg/errs"
	"reco/internal/pkg/guard"
)

var (
	ErrAttachDeliveryProofCommandIsNotConstructed = errors.New(
		"AttachDeliveryProofCommand must be created via NewAttachDeliveryProofCommand constructor",
	)
	ErrProofIsEmpty = errs.NewValueIsRequiredError("proof image, signature or notes")
)

// AttachDeliveryProofCommand carries a delivery photo, a signature image and
// notes. Any of them may be missing but not all.
type AttachDeliveryProofCommand struct { //nolint:recvcheck //using for validation
	actor      kernel.Actor
	deliveryID kernel.UUID
	image      *File
	signature  *File
	notes      string

	guard guard.ConstructorGuard
}

func NewAttachDeliveryProofCommand(
	actor kernel.Actor,
	deliveryID kernel.UUID,
	image *File,
	signature *File,
	notes string,
) (AttachDeliveryProofCommand, error) {
	cmd := AttachDeliveryProofCommand{
		notes: strings.TrimSpace(notes),
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setDeliveryID(deliveryID),
		cmd.setFiles(image, signature),
	); err != nil {
		return AttachDeliveryProofCommand{}, err
	}

	return cmd, nil
}

func (c AttachDeliveryProofCommand) Validate() error {
	return c.guard.Validate(ErrAttachDeliveryProofCommandIsNotConstructed)
}

func (c AttachDeliveryProofCommand) Actor() kernel.Actor {
	return c.actor
}

func (c AttachDeliveryProofCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

func (c AttachDeliveryProofCommand) Image() *File {
	return c.image
}

func (c AttachDeliveryProofCommand) Signature() *File {
	return c.signature
}

func (c AttachDeliveryProofCommand) Notes() string {
	return c.notes
}

func (c *AttachDeliveryProofCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *AttachDeliveryProofCommand) setDeliveryID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.deliveryID = id
	return nil
}

func (c *AttachDeliveryProofCommand) setFiles(image, signature *File) error {
	if image == nil && signature == nil && c.notes == "" {
		return ErrProofIsEmpty
	}
	if err := errors.Join(image.validate("proof image"), signature.validate("signature")); err != nil {
		return err
	}

	c.image = image
	c.signature = signature
	return nil
}
