package profile_test

import (
	"testing"
	"time"

	"reco/internal/core/domain/model/kernel"
	"reco/internal/core/domain/model/profile"
	"reco/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 5, 10, 14, 0, 0, 0, time.UTC)

func TestNewProfile(t *testing.T) {
	t.Run("driver keeps driver info", func(t *testing.T) {
		p, err := profile.NewProfile(kernel.NewUUID(), "joao", profile.Contact{FullName: "João Silva"},
			kernel.RoleDriver, false, profile.DriverInfo{Available: true, VehicleType: "van", MaxItems: 8}, now)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.True(t, p.IsDriver())
		assert.Equal(t, "van", p.Driver().VehicleType)
		assert.Equal(t, "João Silva", p.DisplayName())
	})

	t.Run("non drivers drop driver info", func(t *testing.T) {
		p, err := profile.NewProfile(kernel.NewUUID(), "maria", profile.Contact{},
			kernel.RoleDonor, false, profile.DriverInfo{Available: true, MaxItems: 3}, now)

		require.NoError(t, err)
		assert.Equal(t, profile.DriverInfo{}, p.Driver())
		assert.Equal(t, "maria", p.DisplayName())
	})

	t.Run("validation", func(t *testing.T) {
		_, err := profile.NewProfile(kernel.NewUUID(), " ", profile.Contact{},
			kernel.RoleUnknown, false, profile.DriverInfo{MaxItems: -1}, now)

		require.Error(t, err)
		assert.ErrorIs(t, err, profile.ErrUsernameIsRequired)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestProfile_IsStaff(t *testing.T) {
	admin, _ := profile.NewProfile(kernel.NewUUID(), "root", profile.Contact{}, kernel.RoleAdmin, false, profile.DriverInfo{}, now)
	staff, _ := profile.NewProfile(kernel.NewUUID(), "ops", profile.Contact{}, kernel.RoleOrganization, true, profile.DriverInfo{}, now)
	donor, _ := profile.NewProfile(kernel.NewUUID(), "ana", profile.Contact{}, kernel.RoleDonor, false, profile.DriverInfo{}, now)

	assert.True(t, admin.IsStaff())
	assert.True(t, staff.IsStaff())
	assert.False(t, donor.IsStaff())

	actor, err := staff.Actor()
	require.NoError(t, err)
	assert.True(t, actor.IsStaff())
	assert.True(t, actor.Is(staff.ID()))
}

func TestProfile_SetAvailability(t *testing.T) {
	driver, _ := profile.NewProfile(kernel.NewUUID(), "joao", profile.Contact{}, kernel.RoleDriver, false, profile.DriverInfo{}, now)
	donor, _ := profile.NewProfile(kernel.NewUUID(), "ana", profile.Contact{}, kernel.RoleDonor, false, profile.DriverInfo{}, now)

	require.NoError(t, driver.SetAvailability(true))
	assert.True(t, driver.Driver().Available)

	require.ErrorIs(t, donor.SetAvailability(true), errs.ErrPreconditionFailed)
}
