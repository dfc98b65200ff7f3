package services_test

import (
	"testing"
	"time"

	"reco/internal/core/domain/model/donation"
	"reco/internal/core/domain/model/donationrequest"
	"reco/internal/core/domain/model/kernel"
	"reco/internal/core/domain/model/profile"
	"reco/internal/core/domain/model/recycling"

	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 5, 10, 14, 0, 0, 0, time.UTC)

func actorWith(t *testing.T, role kernel.Role, staff bool) kernel.Actor {
	t.Helper()
	a, err := kernel.NewActor(kernel.NewUUID(), role, staff)
	require.NoError(t, err)
	return a
}

func adminActor(t *testing.T) kernel.Actor {
	return actorWith(t, kernel.RoleAdmin, false)
}

func actorFor(t *testing.T, p *profile.Profile) kernel.Actor {
	t.Helper()
	a, err := p.Actor()
	require.NoError(t, err)
	return a
}

func newProfile(t *testing.T, username string, role kernel.Role, staff bool, email string) *profile.Profile {
	t.Helper()
	p, err := profile.NewProfile(kernel.NewUUID(), username, profile.Contact{Email: email}, role, staff, profile.DriverInfo{}, now)
	require.NoError(t, err)
	return p
}

func donationIn(t *testing.T, donor kernel.UUID, status donation.Status) *donation.Donation {
	t.Helper()
	d, err := donation.RestoreDonation(kernel.NewUUID(), donor, donation.Details{
		Title:        "Desktop PC",
		Condition:    donation.ConditionGood,
		DeliveryType: donation.DeliveryTypeCollectionPoint,
	}, donation.State{Status: status, Available: true, CreatedAt: now})
	require.NoError(t, err)
	return d
}

func requestIn(
	t *testing.T,
	d *donation.Donation,
	beneficiary kernel.UUID,
	status donationrequest.Status,
) *donationrequest.Request {
	t.Helper()
	r, err := donationrequest.RestoreRequest(kernel.NewUUID(), d.ID(), beneficiary, "needed", status, "", nil, now, now)
	require.NoError(t, err)
	return r
}

func activePartner(t *testing.T) *recycling.Partner {
	t.Helper()
	p, err := recycling.NewPartner(kernel.NewUUID(), recycling.PartnerDetails{
		CompanyName: "Recicla PR",
		TaxID:       "11222333000144",
		Email:       "ops@recicla.example",
		Materials:   []recycling.Material{recycling.MaterialElectronics},
	}, now)
	require.NoError(t, err)
	return p
}
