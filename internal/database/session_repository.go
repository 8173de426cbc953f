package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/thenoetrevino/worklog/internal/models"
)

// SessionRepo stores logged-in sessions keyed by an opaque token.
type SessionRepo struct {
	db *sql.DB
}

// CreateSession opens a session for username with an empty expense draft
func (r *SessionRepo) CreateSession(ctx context.Context, username string) (*models.Session, error) {
	token := uuid.NewString()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO sessions (token, username, expense_draft) VALUES (?, ?, '{}')`,
		token, username,
	)
	if isConstraintError(err, "FOREIGN KEY") {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create session for '%s': %w", username, err)
	}

	return r.GetSession(ctx, token)
}

// GetSession looks a session up by token
func (r *SessionRepo) GetSession(ctx context.Context, token string) (*models.Session, error) {
	session := &models.Session{}
	var (
		draft     string
		createdAt sql.NullTime
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT token, username, expense_draft, created_at FROM sessions WHERE token = ?`,
		token,
	).Scan(&session.Token, &session.Username, &draft, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	if err := json.Unmarshal([]byte(draft), &session.ExpenseDraft); err != nil {
		return nil, fmt.Errorf("failed to decode expense draft: %w", err)
	}
	session.CreatedAt = NullTimeToTime(createdAt)
	return session, nil
}

// UpdateSessionDraft replaces the in-progress expense form of a session
func (r *SessionRepo) UpdateSessionDraft(ctx context.Context, token string, draft models.ExpenseForm) error {
	data, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to encode expense draft: %w", err)
	}

	result, err := r.db.ExecContext(ctx,
		`UPDATE sessions SET expense_draft = ? WHERE token = ?`, string(data), token,
	)
	if err != nil {
		return fmt.Errorf("failed to update session draft: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update session draft: %w", err)
	}
	if n == 0 {
		return ErrSessionNotFound
	}
	return nil
}

// DeleteSession ends a session. Deleting an unknown token is not an error.
func (r *SessionRepo) DeleteSession(ctx context.Context, token string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE token = ?`, token)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
