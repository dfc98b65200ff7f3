package guard_test

import (
	"errors"
	"testing"

	"reco/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errPledgeIsNotConstructed = errors.New("pledge must be created via newPledge")

type pledge struct {
	title string
	guard guard.ConstructorGuard
}

func newPledge(title string) (pledge, error) {
	if title == "" {
		return pledge{}, errors.New("title is required")
	}
	return pledge{title: title, guard: guard.NewConstructorGuard()}, nil
}

func (p pledge) Validate() error {
	return p.guard.Validate(errPledgeIsNotConstructed)
}

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard
		expected := errors.New("entity not constructed")

		err := g.Validate(expected)

		require.Error(t, err)
		assert.Equal(t, expected, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

func TestConstructorGuard_EmbeddedInValueObject(t *testing.T) {
	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		p, err := newPledge("laptop")

		require.NoError(t, err)
		require.NoError(t, p.Validate())
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var p pledge

		err := p.Validate()

		require.ErrorIs(t, err, errPledgeIsNotConstructed)
	})

	t.Run("constructor_rejects_invalid_input", func(t *testing.T) {
		_, err := newPledge("")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "title is required")
	})
}
