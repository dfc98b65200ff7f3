package commands

import (
	"errors"

	"reco/internal/core/domain/model/kernel"
	"reco/internal/pkg/guard"
)

var ErrSelectBeneficiaryCommandIsNotConstructed = errors.New(
	"SelectBeneficiaryCommand must be created via NewSelectBeneficiaryCommand constructor",
)

// SelectBeneficiaryCommand hands a donation to one of the beneficiaries whose
// request was approved.
type SelectBeneficiaryCommand struct { //nolint:recvcheck //using for validation
	actor         kernel.Actor
	donationID    kernel.UUID
	beneficiaryID kernel.UUID

	guard guard.ConstructorGuard
}

func NewSelectBeneficiaryCommand(
	actor kernel.Actor,
	donationID kernel.UUID,
	beneficiaryID kernel.UUID,
) (SelectBeneficiaryCommand, error) {
	cmd := SelectBeneficiaryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setDonationID(donationID),
		cmd.setBeneficiaryID(beneficiaryID),
	); err != nil {
		return SelectBeneficiaryCommand{}, err
	}

	return cmd, nil
}

func (c SelectBeneficiaryCommand) Validate() error {
	return c.guard.Validate(ErrSelectBeneficiaryCommandIsNotConstructed)
}

func (c SelectBeneficiaryCommand) Actor() kernel.Actor {
	return c.actor
}

func (c SelectBeneficiaryCommand) DonationID() kernel.UUID {
	return c.donationID
}

func (c SelectBeneficiaryCommand) BeneficiaryID() kernel.UUID {
	return c.beneficiaryID
}

func (c *SelectBeneficiaryCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *SelectBeneficiaryCommand) setDonationID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.donationID = id
	return nil
}

func (c *SelectBeneficiaryCommand) setBeneficiaryID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.beneficiaryID = id
	return nil
}
