package commands

import (
	"context"
	"time"

	"reco/internal/core/domain/services"
)

type SelectBeneficiaryCommandHandler struct {
	uowFactory DonationUoWFactory
	workflow   services.DonationWorkflow
}

func NewSelectBeneficiaryCommandHandler(uowFactory DonationUoWFactory) *SelectBeneficiaryCommandHandler {
	return &SelectBeneficiaryCommandHandler{
		uowFactory: uowFactory,
		workflow:   services.NewDonationWorkflow(),
	}
}

// Handle puts the donation in route and delivers the matching request in one
// transaction.
func (h *SelectBeneficiaryCommandHandler) Handle(ctx context.Context, command SelectBeneficiaryCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	donations := uow.DonationRepository()
	d, err := donations.Get(ctx, command.DonationID())
	if err != nil {
		return err
	}

	requests := uow.DonationRequestRepository()
	candidates, err := requests.ListByDonation(ctx, d.ID())
	if err != nil {
		return err
	}

	selected, err := h.workflow.SelectBeneficiary(command.Actor(), d, command.BeneficiaryID(), candidates, time.Now().UTC())
	if err != nil {
		return err
	}
	if err = donations.Update(ctx, d); err != nil {
		return err
	}
	if err = requests.Update(ctx, selected); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
