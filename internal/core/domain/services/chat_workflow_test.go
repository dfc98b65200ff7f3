package services_test

import (
	"testing"

	"reco/internal/core/domain/model/donation"
	"reco/internal/core/domain/model/donationrequest"
	"reco/internal/core/domain/model/kernel"
	"reco/internal/core/domain/services"
	"reco/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatWorkflow_Counterpart(t *testing.T) {
	wf := services.NewChatWorkflow()
	donorID := kernel.NewUUID()
	donor, err := kernel.NewActor(donorID, kernel.RoleDonor, false)
	require.NoError(t, err)
	interested := actorWith(t, kernel.RoleBeneficiary, false)
	approved := kernel.NewUUID()

	t.Run("interested profile writes to the donor", func(t *testing.T) {
		other, err := wf.Counterpart(interested, donorID, nil, nil)

		require.NoError(t, err)
		assert.True(t, other.IsEqual(donorID))
	})

	t.Run("interested profile cannot pick someone else", func(t *testing.T) {
		_, err := wf.Counterpart(interested, donorID, &approved, nil)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("donor must name the participant", func(t *testing.T) {
		_, err := wf.Counterpart(donor, donorID, nil, []kernel.UUID{approved})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("donor writes to a known participant", func(t *testing.T) {
		other, err := wf.Counterpart(donor, donorID, &approved, []kernel.UUID{kernel.NewUUID(), approved})

		require.NoError(t, err)
		assert.True(t, other.IsEqual(approved))
	})

	t.Run("donor cannot open a conversation", func(t *testing.T) {
		stranger := kernel.NewUUID()

		_, err := wf.Counterpart(donor, donorID, &stranger, []kernel.UUID{approved})

		require.ErrorIs(t, err, errs.ErrPreconditionFailed)
	})

	t.Run("donor cannot write to themselves", func(t *testing.T) {
		_, err := wf.Counterpart(donor, donorID, &donorID, []kernel.UUID{donorID})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestChatWorkflow_Thread(t *testing.T) {
	wf := services.NewChatWorkflow()
	donorID := kernel.NewUUID()
	participant := kernel.NewUUID()

	t.Run("staff reads the donor's thread with a participant", func(t *testing.T) {
		thread, err := wf.Thread(adminActor(t), donorID, &participant, nil)

		require.NoError(t, err)
		assert.True(t, thread.Self.IsEqual(donorID))
		assert.True(t, thread.Other.IsEqual(participant))
	})

	t.Run("staff without participant talks to the donor", func(t *testing.T) {
		admin := adminActor(t)

		thread, err := wf.Thread(admin, donorID, nil, nil)

		require.NoError(t, err)
		assert.True(t, thread.Self.IsEqual(admin.ID()))
		assert.True(t, thread.Other.IsEqual(donorID))
	})

	t.Run("participant reads their own thread", func(t *testing.T) {
		reader, err := kernel.NewActor(participant, kernel.RoleBeneficiary, false)
		require.NoError(t, err)

		thread, err := wf.Thread(reader, donorID, nil, nil)

		require.NoError(t, err)
		assert.True(t, thread.Self.IsEqual(participant))
		assert.True(t, thread.Other.IsEqual(donorID))
	})
}

func TestChatWorkflow_Participants(t *testing.T) {
	wf := services.NewChatWorkflow()
	d := donationIn(t, kernel.NewUUID(), donation.Approved)
	approved := requestIn(t, d, kernel.NewUUID(), donationrequest.Approved)
	delivered := requestIn(t, d, kernel.NewUUID(), donationrequest.Delivered)
	pending := requestIn(t, d, kernel.NewUUID(), donationrequest.Pending)
	rejected := requestIn(t, d, kernel.NewUUID(), donationrequest.Rejected)
	partner := kernel.NewUUID()

	got := wf.Participants(
		[]*donationrequest.Request{approved, pending, delivered, rejected},
		[]kernel.UUID{partner, approved.BeneficiaryID()},
	)

	assert.Equal(t, []kernel.UUID{approved.BeneficiaryID(), delivered.BeneficiaryID(), partner}, got)
}
