// Package pgutil holds the pieces every repository shares: row locking for
// reads inside a unit of work and translation of driver errors into the
// errs package.
package pgutil

import (
	"errors"

	"reco/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const uniqueViolation = "23505"

// Locked adds FOR UPDATE to the next statement when lock is set.
func Locked(db *gorm.DB, lock bool) *gorm.DB {
	if !lock {
		return db
	}
	return db.Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate})
}

// WriteError maps a unique violation to Conflict naming the entity.
func WriteError(entity string, err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return errs.NewConflictErrorWithCause(entity, pgErr.ConstraintName, err)
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errs.NewConflictErrorWithCause(entity, "duplicate key", err)
	}
	return err
}

// ReadError maps a missing row to ObjectNotFound.
func ReadError(entity string, id string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NewObjectNotFoundError(entity, id)
	}
	return err
}
