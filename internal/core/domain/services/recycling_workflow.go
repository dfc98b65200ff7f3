package services

import (
	"time"

	"reco/internal/core/domain/model/donation"
	"reco/internal/core/domain/model/kernel"
	"reco/internal/core/domain/model/notification"
	"reco/internal/core/domain/model/recycling"
	"reco/internal/pkg/errs"
)

// RecyclingWorkflow creates recycling batches and moves them through their
// stages.
type RecyclingWorkflow struct{}

func NewRecyclingWorkflow() RecyclingWorkflow {
	return RecyclingWorkflow{}
}

// CreateBatch groups the candidates that are for_recycling into a new batch
// for an active partner. Other candidates are ignored. sequence is the
// number of batches ever created plus one. Claimed donations go in route and
// are returned so the caller persists them with the batch.
func (w RecyclingWorkflow) CreateBatch(
	actor kernel.Actor,
	partner *recycling.Partner,
	candidates []*donation.Donation,
	sequence int,
	notes string,
	id kernel.UUID,
	now time.Time,
) (*recycling.Batch, []*donation.Donation, error) {
	if err := actor.RequireStaff("create recycling batch"); err != nil {
		return nil, nil, err
	}
	if err := partner.Validate(); err != nil {
		return nil, nil, err
	}
	if !partner.IsActive() {
		return nil, nil, errs.NewPreconditionFailedError("partner", partner.CompanyName()+" is inactive")
	}

	code, err := recycling.NewCode(now, sequence)
	if err != nil {
		return nil, nil, err
	}

	claimed := make([]*donation.Donation, 0, len(candidates))
	items := make([]kernel.UUID, 0, len(candidates))
	seen := make(map[kernel.UUID]struct{}, len(candidates))
	for _, d := range candidates {
		if d.Validate() != nil || d.Status() != donation.ForRecycling {
			continue
		}
		if _, dup := seen[d.ID()]; dup {
			continue
		}
		seen[d.ID()] = struct{}{}
		claimed = append(claimed, d)
		items = append(items, d.ID())
	}

	batch, err := recycling.NewBatch(id, code, partner.ID(), items, actor.ID(), notes, now)
	if err != nil {
		return nil, nil, err
	}
	for _, d := range claimed {
		if err = d.ClaimForRecycling(); err != nil {
			return nil, nil, err
		}
	}
	return batch, claimed, nil
}

// Transition advances the batch to next, its unique successor, and tells
// the batch creator and the partner.
func (w RecyclingWorkflow) Transition(
	actor kernel.Actor,
	b *recycling.Batch,
	partner *recycling.Partner,
	next recycling.BatchStatus,
	payload recycling.StagePayload,
	now time.Time,
) ([]notification.Intent, error) {
	if err := actor.RequireStaff("update recycling batch"); err != nil {
		return nil, err
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	if err := partner.Validate(); err != nil {
		return nil, err
	}

	if err := b.Advance(next, payload, actor.ID(), now); err != nil {
		return nil, err
	}

	return notification.Broadcast(
		notification.KindRecyclingBatchUpdated,
		[]notification.Recipient{
			notification.ToProfile(b.CreatedBy()),
			notification.ToAddress(partner.ID(), partner.Email()),
		},
		map[string]string{
			notification.KeyBatchID:   b.ID().String(),
			notification.KeyBatchCode: b.Code().String(),
			notification.KeyStatus:    b.Status().String(),
		},
		now,
	), nil
}

// EnvironmentalImpact uses the actual weight when recorded, else the
// estimate.
func (w RecyclingWorkflow) EnvironmentalImpact(b *recycling.Batch) recycling.Impact {
	return b.Impact()
}
