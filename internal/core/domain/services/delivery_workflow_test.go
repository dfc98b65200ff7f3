package services_test

import (
	"testing"

	"reco/internal/core/domain/model/delivery"
	"reco/internal/core/domain/model/donation"
	"reco/internal/core/domain/model/donationrequest"
	"reco/internal/core/domain/model/kernel"
	"reco/internal/core/domain/model/notification"
	"reco/internal/core/domain/services"
	"reco/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeliveryWorkflow_Create(t *testing.T) {
	wf := services.NewDeliveryWorkflow()
	driver := newProfile(t, "driver", kernel.RoleDriver, false, "")

	t.Run("assigns driver and puts approved donation in route", func(t *testing.T) {
		donor := kernel.NewUUID()
		d := donationIn(t, donor, donation.Approved)

		dl, intents, err := wf.Create(adminActor(t), d, nil, driver, kernel.NewUUID(), now)

		require.NoError(t, err)
		assert.Equal(t, delivery.Assigned, dl.Status())
		assert.True(t, dl.IsDrivenBy(driver.ID()))
		assert.Equal(t, donation.InRoute, d.Status())
		require.Len(t, intents, 1)
		assert.Equal(t, notification.KindDeliveryInProgress, intents[0].Kind)
		assert.True(t, intents[0].Recipient.ID.IsEqual(donor))
	})

	t.Run("donation already in route stays in route and beneficiary is told", func(t *testing.T) {
		d := donationIn(t, kernel.NewUUID(), donation.Approved)
		beneficiary := kernel.NewUUID()
		require.NoError(t, d.AssignBeneficiary(beneficiary))

		_, intents, err := wf.Create(adminActor(t), d, nil, nil, kernel.NewUUID(), now)

		require.NoError(t, err)
		assert.Equal(t, donation.InRoute, d.Status())
		require.Len(t, intents, 2)
		assert.True(t, intents[1].Recipient.ID.IsEqual(beneficiary))
	})

	t.Run("second delivery conflicts", func(t *testing.T) {
		d := donationIn(t, kernel.NewUUID(), donation.Approved)
		existing, _ := delivery.NewDelivery(kernel.NewUUID(), d.ID(), nil, now)

		_, _, err := wf.Create(adminActor(t), d, existing, driver, kernel.NewUUID(), now)

		require.ErrorIs(t, err, errs.ErrConflict)
		assert.Equal(t, donation.Approved, d.Status())
	})

	t.Run("driver must be a driver", func(t *testing.T) {
		d := donationIn(t, kernel.NewUUID(), donation.Approved)
		donorProfile := newProfile(t, "notdriver", kernel.RoleDonor, false, "")

		_, _, err := wf.Create(adminActor(t), d, nil, donorProfile, kernel.NewUUID(), now)

		require.ErrorIs(t, err, errs.ErrPreconditionFailed)
	})

	t.Run("pending donation cannot ship", func(t *testing.T) {
		d := donationIn(t, kernel.NewUUID(), donation.Pending)

		_, _, err := wf.Create(adminActor(t), d, nil, driver, kernel.NewUUID(), now)

		require.ErrorIs(t, err, errs.ErrPreconditionFailed)
	})

	t.Run("donation claimed by a recycling batch cannot ship", func(t *testing.T) {
		d := donationIn(t, kernel.NewUUID(), donation.Approved)
		require.NoError(t, d.MarkForRecycling())
		require.NoError(t, d.ClaimForRecycling())

		dl, _, err := wf.Create(adminActor(t), d, nil, driver, kernel.NewUUID(), now)

		require.ErrorIs(t, err, errs.ErrPreconditionFailed)
		assert.Nil(t, dl)
		assert.Equal(t, donation.InRoute, d.Status())
		assert.Nil(t, d.BeneficiaryID())
	})

	t.Run("requires staff", func(t *testing.T) {
		d := donationIn(t, kernel.NewUUID(), donation.Approved)

		_, _, err := wf.Create(actorFor(t, driver), d, nil, driver, kernel.NewUUID(), now)

		require.ErrorIs(t, err, errs.ErrPermissionDenied)
	})
}

func TestDeliveryWorkflow_Transition(t *testing.T) {
	wf := services.NewDeliveryWorkflow()
	driver := newProfile(t, "driver", kernel.RoleDriver, false, "")
	driverActor := actorFor(t, driver)
	point, _ := kernel.NewGeoPoint(-25.4, -49.2)

	setup := func(t *testing.T) (*delivery.Delivery, *donation.Donation) {
		t.Helper()
		d := donationIn(t, kernel.NewUUID(), donation.Approved)
		dl, _, err := wf.Create(adminActor(t), d, nil, driver, kernel.NewUUID(), now)
		require.NoError(t, err)
		return dl, d
	}

	drive := func(t *testing.T, dl *delivery.Delivery, d *donation.Donation, requests []*donationrequest.Request) services.DeliveryOutcome {
		t.Helper()
		var outcome services.DeliveryOutcome
		for _, next := range []delivery.Status{delivery.PickedUp, delivery.InTransit, delivery.Delivered} {
			var err error
			outcome, err = wf.Transition(driverActor, dl, d, requests, next, &point, now)
			require.NoError(t, err)
		}
		return outcome
	}

	t.Run("skip is refused", func(t *testing.T) {
		dl, d := setup(t)

		_, err := wf.Transition(driverActor, dl, d, nil, delivery.Delivered, &point, now)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, donation.InRoute, d.Status())
	})

	t.Run("other drivers are refused", func(t *testing.T) {
		dl, d := setup(t)

		_, err := wf.Transition(actorWith(t, kernel.RoleDriver, false), dl, d, nil, delivery.PickedUp, nil, now)

		require.ErrorIs(t, err, errs.ErrPermissionDenied)
	})

	t.Run("completion promotes first approved request when no beneficiary selected", func(t *testing.T) {
		dl, d := setup(t)
		rejected := requestIn(t, d, kernel.NewUUID(), donationrequest.Rejected)
		first := requestIn(t, d, kernel.NewUUID(), donationrequest.Approved)
		second := requestIn(t, d, kernel.NewUUID(), donationrequest.Approved)

		outcome := drive(t, dl, d, []*donationrequest.Request{rejected, first, second})

		assert.Equal(t, donation.Delivered, d.Status())
		assert.Same(t, first, outcome.Promoted)
		assert.Equal(t, donationrequest.Delivered, first.Status())
		assert.Equal(t, donationrequest.Approved, second.Status())
		require.Len(t, outcome.Intents, 2)
		assert.Equal(t, notification.KindDeliveryCompleted, outcome.Intents[0].Kind)
		assert.True(t, outcome.Intents[1].Recipient.ID.IsEqual(first.BeneficiaryID()))
	})

	t.Run("completion promotes the selected beneficiary's request", func(t *testing.T) {
		d := donationIn(t, kernel.NewUUID(), donation.Approved)
		beneficiary := kernel.NewUUID()
		other := requestIn(t, d, kernel.NewUUID(), donationrequest.Approved)
		chosen := requestIn(t, d, beneficiary, donationrequest.Approved)
		require.NoError(t, d.AssignBeneficiary(beneficiary))
		dl, _, err := wf.Create(adminActor(t), d, nil, driver, kernel.NewUUID(), now)
		require.NoError(t, err)

		outcome := drive(t, dl, d, []*donationrequest.Request{other, chosen})

		assert.Same(t, chosen, outcome.Promoted)
		assert.Equal(t, donationrequest.Approved, other.Status())
	})

	t.Run("nothing is promoted twice", func(t *testing.T) {
		dl, d := setup(t)
		delivered := requestIn(t, d, kernel.NewUUID(), donationrequest.Delivered)
		approved := requestIn(t, d, kernel.NewUUID(), donationrequest.Approved)

		outcome := drive(t, dl, d, []*donationrequest.Request{approved, delivered})

		assert.Nil(t, outcome.Promoted)
		assert.Equal(t, donationrequest.Approved, approved.Status())
		assert.Equal(t, donation.Delivered, d.Status())
	})

	t.Run("cancel leaves donation untouched", func(t *testing.T) {
		dl, d := setup(t)

		outcome, err := wf.Transition(adminActor(t), dl, d, nil, delivery.Canceled, nil, now)

		require.NoError(t, err)
		assert.Empty(t, outcome.Intents)
		assert.Equal(t, delivery.Canceled, dl.Status())
		assert.Equal(t, donation.InRoute, d.Status())
	})
}

func TestDeliveryWorkflow_AttachProof(t *testing.T) {
	wf := services.NewDeliveryWorkflow()
	driver := newProfile(t, "driver", kernel.RoleDriver, false, "")
	d := donationIn(t, kernel.NewUUID(), donation.Approved)
	dl, _, err := wf.Create(adminActor(t), d, nil, driver, kernel.NewUUID(), now)
	require.NoError(t, err)

	require.NoError(t, wf.AttachProof(actorFor(t, driver), dl, delivery.Proof{ImageRef: "proofs/x.jpg"}))
	assert.Equal(t, "proofs/x.jpg", dl.Proof().ImageRef)
	assert.Equal(t, delivery.Assigned, dl.Status())

	err = wf.AttachProof(actorWith(t, kernel.RoleBeneficiary, false), dl, delivery.Proof{Notes: "x"})
	require.ErrorIs(t, err, errs.ErrPermissionDenied)
}

func TestDeliveryWorkflow_CheckProof(t *testing.T) {
	wf := services.NewDeliveryWorkflow()
	driver := newProfile(t, "driver", kernel.RoleDriver, false, "")
	d := donationIn(t, kernel.NewUUID(), donation.Approved)
	dl, _, err := wf.Create(adminActor(t), d, nil, driver, kernel.NewUUID(), now)
	require.NoError(t, err)

	require.NoError(t, wf.CheckProof(actorFor(t, driver), dl))
	require.NoError(t, wf.CheckProof(adminActor(t), dl))
	require.ErrorIs(t, wf.CheckProof(actorWith(t, kernel.RoleDriver, false), dl), errs.ErrPermissionDenied)

	require.NoError(t, dl.TransitionTo(delivery.Canceled, nil, now))
	require.ErrorIs(t, wf.CheckProof(actorFor(t, driver), dl), errs.ErrPreconditionFailed)
}
