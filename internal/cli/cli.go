package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/thenoetrevino/worklog/internal/app"
	"github.com/thenoetrevino/worklog/internal/cli/styles"
	"github.com/thenoetrevino/worklog/internal/config"
	"github.com/thenoetrevino/worklog/internal/database"
	"github.com/thenoetrevino/worklog/internal/logging"
)

// CLI represents the CLI application context
type CLI struct {
	App *app.App // Application container with services

	// owned is false when the app was injected (tests) and must outlive
	// the command
	owned   bool
	logFile io.Closer
}

// NewCLI loads the config, opens the log file and the database, and wires
// the application container.
func NewCLI(ctx context.Context) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logFile, err := logging.Init(cfg.LogDir())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logging: %w", err)
	}

	db, err := database.InitDB(ctx, cfg.DatabasePath)
	if err != nil {
		_ = logFile.Close()
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	styles.Init(cfg.ColorScheme)

	return &CLI{
		App:     app.New(db, cfg, app.WithLogger(slog.Default())),
		owned:   true,
		logFile: logFile,
	}, nil
}

// Config returns the configuration of the underlying app
func (c *CLI) Config() *config.Config {
	return c.App.Config()
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if !c.owned {
		return nil
	}
	err := c.App.Close()
	if c.logFile != nil {
		_ = c.logFile.Close()
	}
	return err
}
