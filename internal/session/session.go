// Package session keeps the logged-in session token on disk between CLI
// invocations.
package session

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrNoSession indicates nobody is logged in on this machine
var ErrNoSession = errors.New("no active session")

// File is the on-disk session record. The token is the only secret; the
// username is informational.
type File struct {
	Token      string    `yaml:"token"`
	Username   string    `yaml:"username"`
	LoggedInAt time.Time `yaml:"logged_in_at"`
}

// Load reads the session file. A missing or empty file is ErrNoSession.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNoSession
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse session file %s: %w", path, err)
	}
	if f.Token == "" {
		return nil, ErrNoSession
	}
	return &f, nil
}

// Save writes the session file readable by the owner only
func Save(path string, f *File) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}
	data, err := yaml.Marshal(f)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

// Clear removes the session file. Clearing twice is not an error.
func Clear(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove session file: %w", err)
	}
	return nil
}
