package app

import (
	"database/sql"
	"log/slog"

	"github.com/thenoetrevino/worklog/internal/config"
	"github.com/thenoetrevino/worklog/internal/database"
	authservice "github.com/thenoetrevino/worklog/internal/services/auth"
	taskservice "github.com/thenoetrevino/worklog/internal/services/task"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	db     *sql.DB
	repo   *database.Repository
	cfg    *config.Config
	logger *slog.Logger

	passwords *authservice.PasswordHasher

	// Service layer (business logic)
	AuthService authservice.Service
	TaskService taskservice.Service
}

// New creates a new App with all services initialized over an open database.
// A nil cfg uses config.Default().
func New(db *sql.DB, cfg *config.Config, opts ...Option) *App {
	if cfg == nil {
		cfg = config.Default()
	}

	options := &appConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(options)
	}

	passwords := options.passwords
	if passwords == nil {
		passwords = authservice.NewPasswordHasher(cfg.BcryptCost, cfg.PasswordMinLength)
	}

	repo := database.NewRepository(db)
	return &App{
		db:          db,
		repo:        repo,
		cfg:         cfg,
		logger:      options.logger,
		passwords:   passwords,
		AuthService: authservice.NewService(repo, passwords, options.logger),
		TaskService: taskservice.NewService(repo, cfg.RecentWindowDays, options.logger),
	}
}

// Repo returns the underlying repository for direct database access
func (a *App) Repo() database.DataStore {
	return a.repo
}

// Config returns the configuration the app was built with
func (a *App) Config() *config.Config {
	return a.cfg
}

// Close releases the database
func (a *App) Close() error {
	return a.db.Close()
}
