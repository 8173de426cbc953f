package database

import (
	"context"
	"database/sql"
	"fmt"
)

// schema is applied statement by statement. Every statement is idempotent so
// Migrate can run on each start-up.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		username TEXT PRIMARY KEY,
		email TEXT NOT NULL DEFAULT '',
		contact_no TEXT NOT NULL DEFAULT '',
		password_hash TEXT NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,

	`CREATE TABLE IF NOT EXISTS tasks (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT NOT NULL,
		date TEXT,
		task_assigned_by TEXT NOT NULL DEFAULT '',
		work_assignment TEXT NOT NULL DEFAULT ''
			CHECK (work_assignment IN ('', 'self', 'other')),
		assigned_to_person TEXT NOT NULL DEFAULT '',
		task_description TEXT NOT NULL DEFAULT '',
		work_done_today TEXT NOT NULL DEFAULT '',
		task_status TEXT NOT NULL DEFAULT ''
			CHECK (task_status IN ('', 'pending', 'in_progress', 'completed')),
		work_plan_next_day TEXT NOT NULL DEFAULT '',
		expense_purpose TEXT NOT NULL DEFAULT 'none',
		other_purpose TEXT NOT NULL DEFAULT '',
		amount TEXT NOT NULL DEFAULT '0',
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (username) REFERENCES users(username)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_tasks_username_date
		ON tasks(username, date)`,

	`CREATE TABLE IF NOT EXISTS sessions (
		token TEXT PRIMARY KEY,
		username TEXT NOT NULL,
		expense_draft TEXT NOT NULL DEFAULT '{}',
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (username) REFERENCES users(username) ON DELETE CASCADE
	)`,
}

// Migrate creates the users, tasks and sessions tables if they are missing.
// Running it against an up-to-date database is a no-op.
func Migrate(ctx context.Context, db *sql.DB) error {
	return withTx(ctx, db, func(tx *sql.Tx) error {
		for i, stmt := range schema {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("migration step %d: %w", i, err)
			}
		}
		return nil
	})
}
