package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"

	"github.com/thenoetrevino/worklog/internal/models"
)

// Environment variables that override the config file
const (
	EnvDatabase   = "WORKLOG_DB"
	EnvDataDir    = "WORKLOG_DATA_DIR"
	EnvRecentDays = "WORKLOG_RECENT_DAYS"
	EnvBcryptCost = "WORKLOG_BCRYPT_COST"
)

// DefaultPasswordMinLength is the shortest password registration accepts
const DefaultPasswordMinLength = 3

// Config represents the application configuration
type Config struct {
	DataDir           string      `yaml:"data_dir"`
	DatabasePath      string      `yaml:"database_path"`
	RecentWindowDays  int         `yaml:"recent_window_days"`
	Currency          string      `yaml:"currency"`
	BcryptCost        int         `yaml:"bcrypt_cost"`
	PasswordMinLength int         `yaml:"password_min_length"`
	ColorScheme       ColorScheme `yaml:"theme"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load loads config from the user's config directory, then applies a .env
// file from the working directory and WORKLOG_* environment overrides.
// Returns default config if the file doesn't exist.
func Load() (*Config, error) {
	loadDotEnv(".env")

	config := &Config{}
	configPath, err := getConfigPath()
	if err == nil {
		data, readErr := os.ReadFile(configPath)
		switch {
		case readErr == nil:
			if err := yaml.Unmarshal(data, config); err != nil {
				return nil, fmt.Errorf("failed to parse %s: %w", configPath, err)
			}
		case !errors.Is(readErr, fs.ErrNotExist):
			return nil, fmt.Errorf("failed to read %s: %w", configPath, readErr)
		}
	}

	if err := config.applyEnv(); err != nil {
		return nil, err
	}
	config.applyDefaults()
	return config, nil
}

// loadDotEnv reads KEY=VALUE pairs from path into the environment without
// overriding variables that are already set.
func loadDotEnv(path string) {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("failed to load env file", "path", path, "error", err)
	}
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "worklog", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "worklog", "config.yaml"), nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvDataDir); v != "" {
		c.DataDir = v
	}
	if v := os.Getenv(EnvDatabase); v != "" {
		c.DatabasePath = v
	}
	if v := os.Getenv(EnvRecentDays); v != "" {
		days, err := strconv.Atoi(v)
		if err != nil || days < 1 {
			return fmt.Errorf("invalid %s %q: must be a positive integer", EnvRecentDays, v)
		}
		c.RecentWindowDays = days
	}
	if v := os.Getenv(EnvBcryptCost); v != "" {
		cost, err := strconv.Atoi(v)
		if err != nil || cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
			return fmt.Errorf("invalid %s %q: must be between %d and %d", EnvBcryptCost, v, bcrypt.MinCost, bcrypt.MaxCost)
		}
		c.BcryptCost = cost
	}
	return nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.DataDir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			c.DataDir = filepath.Join(home, ".worklog")
		} else {
			c.DataDir = ".worklog"
		}
	}
	if c.DatabasePath == "" {
		c.DatabasePath = filepath.Join(c.DataDir, "worklog.db")
	}
	if c.RecentWindowDays < 1 {
		c.RecentWindowDays = models.DefaultRecentWindowDays
	}
	if c.Currency == "" {
		c.Currency = "₹"
	}
	if c.BcryptCost == 0 {
		c.BcryptCost = bcrypt.DefaultCost
	}
	if c.PasswordMinLength < 1 {
		c.PasswordMinLength = DefaultPasswordMinLength
	}
	c.ColorScheme.ApplyDefaults()
}

// SessionPath is where the CLI keeps the logged-in session token
func (c *Config) SessionPath() string {
	return filepath.Join(c.DataDir, "session.yaml")
}

// LogDir is where the log file is written
func (c *Config) LogDir() string {
	return filepath.Join(c.DataDir, "logs")
}
