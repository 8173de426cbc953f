package database

import (
	"database/sql"
)

// Repository provides a unified interface to all data operations.
// It composes domain-specific repositories using struct embedding.
type Repository struct {
	*UserRepo
	*TaskRepo
	*SessionRepo
}

// NewRepository creates a new Repository instance wrapping the given database connection.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		UserRepo:    &UserRepo{db: db},
		TaskRepo:    &TaskRepo{db: db},
		SessionRepo: &SessionRepo{db: db},
	}
}
