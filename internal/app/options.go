package app

import (
	"log/slog"

	authservice "github.com/thenoetrevino/worklog/internal/services/auth"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	logger    *slog.Logger
	passwords *authservice.PasswordHasher
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithPasswordHasher replaces the hasher built from the config, e.g. with a
// cheap bcrypt cost in tests
func WithPasswordHasher(h *authservice.PasswordHasher) Option {
	return func(cfg *appConfig) {
		cfg.passwords = h
	}
}
