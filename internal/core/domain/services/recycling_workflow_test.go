package services_test

import (
	"testing"

	"reco/internal/core/domain/model/donation"
	"reco/internal/core/domain/model/kernel"
	"reco/internal/core/domain/model/notification"
	"reco/internal/core/domain/model/recycling"
	"reco/internal/core/domain/services"
	"reco/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecyclingWorkflow_CreateBatch(t *testing.T) {
	wf := services.NewRecyclingWorkflow()

	t.Run("keeps only for_recycling items and claims them", func(t *testing.T) {
		partner := activePartner(t)
		a := donationIn(t, kernel.NewUUID(), donation.ForRecycling)
		b := donationIn(t, kernel.NewUUID(), donation.ForRecycling)
		approved := donationIn(t, kernel.NewUUID(), donation.Approved)

		batch, claimed, err := wf.CreateBatch(adminActor(t), partner, []*donation.Donation{a, approved, b, a}, 7, "weekly", kernel.NewUUID(), now)

		require.NoError(t, err)
		assert.Equal(t, "REC-20260510-0007", batch.Code().String())
		assert.Equal(t, recycling.Created, batch.Status())
		assert.Len(t, claimed, 2)
		assert.Equal(t, []kernel.UUID{a.ID(), b.ID()}, batch.Items())
		assert.InDelta(t, 6.0, batch.EstimatedWeightKg(), 1e-9)
		assert.Equal(t, donation.InRoute, a.Status())
		assert.Equal(t, donation.InRoute, b.Status())
		assert.Equal(t, donation.Approved, approved.Status())
	})

	t.Run("inactive partner fails precondition", func(t *testing.T) {
		partner := activePartner(t)
		partner.Deactivate()
		d := donationIn(t, kernel.NewUUID(), donation.ForRecycling)

		_, _, err := wf.CreateBatch(adminActor(t), partner, []*donation.Donation{d}, 1, "", kernel.NewUUID(), now)

		require.ErrorIs(t, err, errs.ErrPreconditionFailed)
		assert.Equal(t, donation.ForRecycling, d.Status())
	})

	t.Run("requires staff", func(t *testing.T) {
		_, _, err := wf.CreateBatch(actorWith(t, kernel.RoleRecycler, false), activePartner(t), nil, 1, "", kernel.NewUUID(), now)

		require.ErrorIs(t, err, errs.ErrPermissionDenied)
	})
}

func TestRecyclingWorkflow_Transition(t *testing.T) {
	wf := services.NewRecyclingWorkflow()
	partner := activePartner(t)
	creator := adminActor(t)

	newBatch := func(t *testing.T) *recycling.Batch {
		t.Helper()
		d := donationIn(t, kernel.NewUUID(), donation.ForRecycling)
		b, _, err := wf.CreateBatch(creator, partner, []*donation.Donation{d}, 1, "", kernel.NewUUID(), now)
		require.NoError(t, err)
		return b
	}

	t.Run("notifies creator and partner once each", func(t *testing.T) {
		b := newBatch(t)

		intents, err := wf.Transition(creator, b, partner, recycling.Collected, recycling.StagePayload{}, now)

		require.NoError(t, err)
		require.Len(t, intents, 2)
		assert.Equal(t, notification.KindRecyclingBatchUpdated, intents[0].Kind)
		assert.True(t, intents[0].Recipient.ID.IsEqual(creator.ID()))
		assert.Equal(t, partner.Email(), intents[1].Recipient.Email)
		assert.Equal(t, "collected", intents[1].Payload[notification.KeyStatus])
	})

	t.Run("skipping fails", func(t *testing.T) {
		b := newBatch(t)

		_, err := wf.Transition(creator, b, partner, recycling.Processed, recycling.StagePayload{}, now)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("reverse fails", func(t *testing.T) {
		b := newBatch(t)
		_, err := wf.Transition(creator, b, partner, recycling.Collected, recycling.StagePayload{}, now)
		require.NoError(t, err)

		_, err = wf.Transition(creator, b, partner, recycling.Created, recycling.StagePayload{}, now)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})
}

func TestRecyclingWorkflow_EnvironmentalImpact(t *testing.T) {
	wf := services.NewRecyclingWorkflow()
	admin := adminActor(t)
	partner := activePartner(t)
	d := donationIn(t, kernel.NewUUID(), donation.ForRecycling)
	b, _, err := wf.CreateBatch(admin, partner, []*donation.Donation{d}, 1, "", kernel.NewUUID(), now)
	require.NoError(t, err)

	weight := 10.0
	for _, step := range []struct {
		next    recycling.BatchStatus
		payload recycling.StagePayload
	}{
		{recycling.Collected, recycling.StagePayload{}},
		{recycling.Shipped, recycling.StagePayload{}},
		{recycling.Processed, recycling.StagePayload{ActualWeightKg: &weight}},
	} {
		_, err = wf.Transition(admin, b, partner, step.next, step.payload, now)
		require.NoError(t, err)
	}

	impact := wf.EnvironmentalImpact(b)

	assert.InDelta(t, 600.0, impact.CO2AvoidedKg, 1e-9)
	assert.InDelta(t, 150.0, impact.EnergySavedKWh, 1e-9)
	assert.InDelta(t, 5000.0, impact.WaterSavedL, 1e-9)
	assert.InDelta(t, 0.5, impact.TreesPreserved, 1e-9)
}
