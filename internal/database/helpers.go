package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/thenoetrevino/worklog/internal/models"
)

// withTx executes a function within a database transaction.
// It automatically handles begin, rollback on error, and commit on success.
func withTx(ctx context.Context, db *sql.DB, fn func(*sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			slog.Error("failed to rollback transaction", "error", err)
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// isConstraintError reports whether err is a SQLite constraint violation of
// the given kind ("UNIQUE", "FOREIGN KEY", "CHECK", ...).
func isConstraintError(err error, kind string) bool {
	return err != nil && strings.Contains(err.Error(), kind+" constraint failed")
}

// NullTimeToTime converts sql.NullTime to time.Time.
// Returns zero time if the value is not valid.
func NullTimeToTime(nt sql.NullTime) time.Time {
	if nt.Valid {
		return nt.Time
	}
	return time.Time{}
}

// dateToNullString stores a zero date as NULL
func dateToNullString(t time.Time) sql.NullString {
	if t.IsZero() {
		return sql.NullString{}
	}
	return sql.NullString{String: t.Format(models.DateLayout), Valid: true}
}

// nullStringToDate coerces a stored date. NULL and unparseable text both come
// back as the zero date; unparseable text is logged rather than failing the
// whole read.
func nullStringToDate(ns sql.NullString, taskID int) time.Time {
	if !ns.Valid || ns.String == "" {
		return time.Time{}
	}
	d, err := models.ParseDate(ns.String)
	if err != nil {
		slog.Warn("unparseable task date", "task_id", taskID, "value", ns.String)
		return time.Time{}
	}
	return d
}
