package recycling_test

import (
	"testing"
	"time"

	"reco/internal/core/domain/model/kernel"
	"reco/internal/core/domain/model/recycling"
	"reco/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 5, 10, 14, 0, 0, 0, time.UTC)

func newBatch(t *testing.T, items int) *recycling.Batch {
	t.Helper()
	ids := make([]kernel.UUID, items)
	for i := range ids {
		ids[i] = kernel.NewUUID()
	}
	code, err := recycling.NewCode(now, 1)
	require.NoError(t, err)
	b, err := recycling.NewBatch(kernel.NewUUID(), code, kernel.NewUUID(), ids, kernel.NewUUID(), " fragile ", now)
	require.NoError(t, err)
	return b
}

func TestNewCode(t *testing.T) {
	code, err := recycling.NewCode(time.Date(2026, 1, 7, 23, 0, 0, 0, time.UTC), 12)

	require.NoError(t, err)
	assert.Equal(t, "REC-20260107-0012", code.String())

	_, err = recycling.ParseCode(code.String())
	require.NoError(t, err)

	_, err = recycling.NewCode(now, 0)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	_, err = recycling.ParseCode("REC-2026-1")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewBatch(t *testing.T) {
	b := newBatch(t, 4)

	require.NoError(t, b.Validate())
	assert.Equal(t, recycling.Created, b.Status())
	assert.Len(t, b.Items(), 4)
	assert.InDelta(t, 12.0, b.EstimatedWeightKg(), 1e-9)
	assert.Nil(t, b.ActualWeightKg())
	assert.Equal(t, "fragile", b.Record().Notes)
}

func TestNewBatch_AllowsEmptyItemSet(t *testing.T) {
	b := newBatch(t, 0)

	assert.Empty(t, b.Items())
	assert.Zero(t, b.EstimatedWeightKg())
}

func TestBatch_Advance(t *testing.T) {
	admin := kernel.NewUUID()
	weight := 10.0

	t.Run("walks every stage and records stage data", func(t *testing.T) {
		b := newBatch(t, 2)
		issued := now.Add(72 * time.Hour)

		require.NoError(t, b.Advance(recycling.Collected, recycling.StagePayload{}, admin, now))
		require.NoError(t, b.Advance(recycling.Shipped, recycling.StagePayload{}, admin, now))
		require.NoError(t, b.Advance(recycling.Processed, recycling.StagePayload{ActualWeightKg: &weight}, admin, now))
		require.NoError(t, b.Advance(recycling.Certified, recycling.StagePayload{
			CertificateNumber:   "CERT-001",
			CertificateIssuedAt: &issued,
		}, admin, now))

		rec := b.Record()
		assert.Equal(t, recycling.Certified, rec.Status)
		assert.NotNil(t, rec.CollectedAt)
		assert.NotNil(t, rec.ShippedAt)
		assert.NotNil(t, rec.ProcessedAt)
		assert.True(t, rec.ProcessedBy.IsEqual(admin))
		assert.InDelta(t, 10.0, *rec.ActualWeightKg, 1e-9)
		assert.Equal(t, "CERT-001", rec.Certificate.Number)
		assert.Equal(t, issued, *rec.Certificate.IssuedAt)
	})

	t.Run("no skipping", func(t *testing.T) {
		b := newBatch(t, 1)

		require.ErrorIs(t, b.Advance(recycling.Shipped, recycling.StagePayload{}, admin, now), errs.ErrInvalidTransition)
		assert.Equal(t, recycling.Created, b.Status())
	})

	t.Run("weight only while processing", func(t *testing.T) {
		b := newBatch(t, 1)

		err := b.Advance(recycling.Collected, recycling.StagePayload{ActualWeightKg: &weight}, admin, now)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, recycling.Created, b.Status())
	})

	t.Run("weight must be positive", func(t *testing.T) {
		b := newBatch(t, 1)
		require.NoError(t, b.Advance(recycling.Collected, recycling.StagePayload{}, admin, now))
		require.NoError(t, b.Advance(recycling.Shipped, recycling.StagePayload{}, admin, now))
		zero := 0.0

		err := b.Advance(recycling.Processed, recycling.StagePayload{ActualWeightKg: &zero}, admin, now)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("processing without weight keeps estimate", func(t *testing.T) {
		b := newBatch(t, 2)
		require.NoError(t, b.Advance(recycling.Collected, recycling.StagePayload{}, admin, now))
		require.NoError(t, b.Advance(recycling.Shipped, recycling.StagePayload{}, admin, now))
		require.NoError(t, b.Advance(recycling.Processed, recycling.StagePayload{}, admin, now))

		assert.InDelta(t, 6.0, b.EffectiveWeightKg(), 1e-9)
	})

	t.Run("certifying requires a number and defaults issue time", func(t *testing.T) {
		b := newBatch(t, 1)
		for _, s := range []recycling.BatchStatus{recycling.Collected, recycling.Shipped, recycling.Processed} {
			require.NoError(t, b.Advance(s, recycling.StagePayload{}, admin, now))
		}

		require.ErrorIs(t, b.Advance(recycling.Certified, recycling.StagePayload{}, admin, now), recycling.ErrCertificateNumberIsRequired)
		require.NoError(t, b.Advance(recycling.Certified, recycling.StagePayload{CertificateNumber: "C-9"}, admin, now))
		assert.Equal(t, now, *b.Certificate().IssuedAt)
	})

	t.Run("certificate data refused before certifying", func(t *testing.T) {
		b := newBatch(t, 1)

		err := b.Advance(recycling.Collected, recycling.StagePayload{CertificateNumber: "early"}, admin, now)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestImpactOf(t *testing.T) {
	impact := recycling.ImpactOf(10)

	assert.InDelta(t, 600.0, impact.CO2AvoidedKg, 1e-9)
	assert.InDelta(t, 150.0, impact.EnergySavedKWh, 1e-9)
	assert.InDelta(t, 5000.0, impact.WaterSavedL, 1e-9)
	assert.InDelta(t, 0.5, impact.TreesPreserved, 1e-9)
	assert.Equal(t, recycling.ImpactOf(10), impact)

	sum := impact.Add(recycling.ImpactOf(2))
	assert.InDelta(t, 12.0, sum.WeightKg, 1e-9)
	assert.InDelta(t, 720.0, sum.CO2AvoidedKg, 1e-9)
}

func TestBatch_ImpactUsesActualWeight(t *testing.T) {
	b := newBatch(t, 5)
	assert.InDelta(t, 900.0, b.Impact().CO2AvoidedKg, 1e-9)

	weight := 10.0
	admin := kernel.NewUUID()
	require.NoError(t, b.Advance(recycling.Collected, recycling.StagePayload{}, admin, now))
	require.NoError(t, b.Advance(recycling.Shipped, recycling.StagePayload{}, admin, now))
	require.NoError(t, b.Advance(recycling.Processed, recycling.StagePayload{ActualWeightKg: &weight}, admin, now))

	assert.InDelta(t, 600.0, b.Impact().CO2AvoidedKg, 1e-9)
}
