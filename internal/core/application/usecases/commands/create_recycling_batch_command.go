package commands

import (
	"errors"
	"strings"

	"reco/internal/core/domain/model/kernel"
	"reco/internal/pkg/guard"
)

var ErrCreateRecyclingBatchCommandIsNotConstructed = errors.New(
	"CreateRecyclingBatchCommand must be created via NewCreateRecyclingBatchCommand constructor",
)

// CreateRecyclingBatchCommand groups donations marked for recycling into a
// batch for one partner. Donations that are not for_recycling are skipped.
//
// Example:
//
//	cmd, err := NewCreateRecyclingBatchCommand(actor, kernel.NewUUID(), partnerID, donationIDs, "monthly pickup")
//	if err != nil {
//	    return err
//	}
//	code, err := NewCreateRecyclingBatchCommandHandler(uowFactory).Handle(ctx, cmd)
//	// code is e.g. REC-20240301-0007
type CreateRecyclingBatchCommand struct { //nolint:recvcheck //using for validation
	actor       kernel.Actor
	batchID     kernel.UUID
	partnerID   kernel.UUID
	donationIDs []kernel.UUID
	notes       string

	guard guard.ConstructorGuard
}

func NewCreateRecyclingBatchCommand(
	actor kernel.Actor,
	batchID kernel.UUID,
	partnerID kernel.UUID,
	donationIDs []kernel.UUID,
	notes string,
) (CreateRecyclingBatchCommand, error) {
	cmd := CreateRecyclingBatchCommand{
		notes: strings.TrimSpace(notes),
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setBatchID(batchID),
		cmd.setPartnerID(partnerID),
		cmd.setDonationIDs(donationIDs),
	); err != nil {
		return CreateRecyclingBatchCommand{}, err
	}

	return cmd, nil
}

func (c CreateRecyclingBatchCommand) Validate() error {
	return c.guard.Validate(ErrCreateRecyclingBatchCommandIsNotConstructed)
}

func (c CreateRecyclingBatchCommand) Actor() kernel.Actor {
	return c.actor
}

func (c CreateRecyclingBatchCommand) BatchID() kernel.UUID {
	return c.batchID
}

func (c CreateRecyclingBatchCommand) PartnerID() kernel.UUID {
	return c.partnerID
}

func (c CreateRecyclingBatchCommand) DonationIDs() []kernel.UUID {
	return append([]kernel.UUID(nil), c.donationIDs...)
}

func (c CreateRecyclingBatchCommand) Notes() string {
	return c.notes
}

func (c *CreateRecyclingBatchCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *CreateRecyclingBatchCommand) setBatchID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.batchID = id
	return nil
}

func (c *CreateRecyclingBatchCommand) setPartnerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.partnerID = id
	return nil
}

func (c *CreateRecyclingBatchCommand) setDonationIDs(ids []kernel.UUID) error {
	errs := make([]error, 0, len(ids))
	for _, id := range ids {
		errs = append(errs, id.Validate())
	}
	if err := errors.Join(errs...); err != nil {
		return err
	}

	c.donationIDs = append([]kernel.UUID(nil), ids...)
	return nil
}
