package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/thenoetrevino/worklog/internal/models"
)

// UserRepo handles all user-related database operations.
type UserRepo struct {
	db *sql.DB
}

const userColumns = `username, email, contact_no, password_hash, created_at`

// RegisterUser inserts a new account. The existence check and the insert
// share one transaction so two registrations of the same name cannot both
// succeed.
func (r *UserRepo) RegisterUser(ctx context.Context, username, email, contactNo, passwordHash string) (*models.User, error) {
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		return insertUser(ctx, tx, username, email, contactNo, passwordHash)
	})
	if err != nil {
		return nil, err
	}

	return r.GetUser(ctx, username)
}

func insertUser(ctx context.Context, tx *sql.Tx, username, email, contactNo, passwordHash string) error {
	var count int
	if err := tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM users WHERE username = ?`, username,
	).Scan(&count); err != nil {
		return fmt.Errorf("failed to check username '%s': %w", username, err)
	}
	if count > 0 {
		return ErrUsernameExists
	}

	_, err := tx.ExecContext(ctx,
		`INSERT INTO users (username, email, contact_no, password_hash) VALUES (?, ?, ?, ?)`,
		username, email, contactNo, passwordHash,
	)
	if isConstraintError(err, "UNIQUE") {
		return ErrUsernameExists
	}
	if err != nil {
		return fmt.Errorf("failed to insert user '%s': %w", username, err)
	}
	return nil
}

// GetUser retrieves a single user by username
func (r *UserRepo) GetUser(ctx context.Context, username string) (*models.User, error) {
	user, err := scanUser(r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE username = ?`, username,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user '%s': %w", username, err)
	}
	return user, nil
}

// UserExists reports whether an account with this username is registered
func (r *UserRepo) UserExists(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE username = ?)`, username,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check user '%s': %w", username, err)
	}
	return exists, nil
}

// LoadUsers reads every account ordered by username. An empty table yields an
// empty slice; a read failure is returned as an error.
func (r *UserRepo) LoadUsers(ctx context.Context) ([]*models.User, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+userColumns+` FROM users ORDER BY username`)
	if err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}
	defer rows.Close()

	users := make([]*models.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}

	return users, nil
}

// ImportUsers inserts users in one transaction, skipping usernames that are
// already registered. It returns how many rows were inserted and skipped.
func (r *UserRepo) ImportUsers(ctx context.Context, users []*models.User) (inserted, skipped int, err error) {
	err = withTx(ctx, r.db, func(tx *sql.Tx) error {
		inserted, skipped = 0, 0
		for _, u := range users {
			err := insertUser(ctx, tx, u.Username, u.Email, u.ContactNo, u.PasswordHash)
			if errors.Is(err, ErrUsernameExists) {
				skipped++
				continue
			}
			if err != nil {
				return err
			}
			inserted++
		}
		return nil
	})
	return inserted, skipped, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*models.User, error) {
	user := &models.User{}
	var createdAt sql.NullTime
	if err := row.Scan(
		&user.Username, &user.Email, &user.ContactNo, &user.PasswordHash, &createdAt,
	); err != nil {
		return nil, err
	}
	user.CreatedAt = NullTimeToTime(createdAt)
	return user, nil
}
