// internal/repository/repository.go
package repository

import (
	"database/sql"
	"errors"
	"log/slog"

	"gorm.io/gorm"
)

// Transaction interface for handling DB transactions.
type Transaction interface {
	Commit() error
	Rollback() error
}

// gormTransaction is a wrapper for a GORM DB transaction.
type gormTransaction struct {
	tx *gorm.DB
}

// Commit finalizes the transaction.
func (t *gormTransaction) Commit() error {
	return t.tx.Commit().Error
}

// Rollback reverts the transaction. Callers defer it unconditionally, so a
// rollback after a successful commit is silently a no-op.
func (t *gormTransaction) Rollback() error {
	err := t.tx.Rollback().Error
	if err == nil {
		slog.Warn("Rolling back transaction")
		return nil
	}
	if errors.Is(err, sql.ErrTxDone) {
		return nil
	}
	return err
}
