package pgutil_test

import (
	"errors"
	"fmt"
	"testing"

	"reco/internal/adapters/out/postgres/pgutil"
	"reco/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestWriteError(t *testing.T) {
	t.Run("unique violation is a conflict", func(t *testing.T) {
		cause := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505", ConstraintName: "idx_request_pair"})

		err := pgutil.WriteError("donation request", cause)

		require.ErrorIs(t, err, errs.ErrConflict)
		assert.Contains(t, err.Error(), "idx_request_pair")
	})

	t.Run("other driver errors pass through", func(t *testing.T) {
		cause := &pgconn.PgError{Code: "23503"}

		err := pgutil.WriteError("delivery", cause)

		assert.Same(t, cause, err)
	})

	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, pgutil.WriteError("delivery", nil))
	})
}

func TestReadError(t *testing.T) {
	err := pgutil.ReadError("donation", "42", gorm.ErrRecordNotFound)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	other := errors.New("timeout")
	assert.Equal(t, other, pgutil.ReadError("donation", "42", other))
}
