package database

import (
	"context"

	"github.com/thenoetrevino/worklog/internal/models"
)

// UserStore defines account persistence.
type UserStore interface {
	RegisterUser(ctx context.Context, username, email, contactNo, passwordHash string) (*models.User, error)
	GetUser(ctx context.Context, username string) (*models.User, error)
	UserExists(ctx context.Context, username string) (bool, error)
	LoadUsers(ctx context.Context) ([]*models.User, error)
	ImportUsers(ctx context.Context, users []*models.User) (inserted, skipped int, err error)
}

// TaskStore defines task persistence.
type TaskStore interface {
	AppendTask(ctx context.Context, task *models.TaskRecord) (*models.TaskRecord, error)
	LoadTasksFor(ctx context.Context, username string) ([]*models.TaskRecord, error)
	LoadAllTasks(ctx context.Context) ([]*models.TaskRecord, error)
	CountTasksFor(ctx context.Context, username string) (int, error)
	ImportTasks(ctx context.Context, tasks []*models.TaskRecord) (inserted, skipped int, err error)
}

// SessionStore defines session persistence.
type SessionStore interface {
	CreateSession(ctx context.Context, username string) (*models.Session, error)
	GetSession(ctx context.Context, token string) (*models.Session, error)
	UpdateSessionDraft(ctx context.Context, token string, draft models.ExpenseForm) error
	DeleteSession(ctx context.Context, token string) error
}

// DataStore defines the unified interface for all data operations.
// Consumers should depend on the smaller interfaces where they can.
type DataStore interface {
	UserStore
	TaskStore
	SessionStore
}

// Compile-time verification that *Repository implements DataStore
var _ DataStore = (*Repository)(nil)
