package cli

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/thenoetrevino/worklog/internal/app"
	"github.com/thenoetrevino/worklog/internal/config"
	"github.com/thenoetrevino/worklog/internal/logging"
	authservice "github.com/thenoetrevino/worklog/internal/services/auth"
	"github.com/thenoetrevino/worklog/internal/session"
	"github.com/thenoetrevino/worklog/internal/testutil"
)

// TestPassword is the password LoginTestUser registers accounts with
const TestPassword = "pw1"

// SetupCLITest creates an in-memory DB and returns both the DB and App instance.
// The session file lives in a per-test temp dir.
// This function is only for CLI tests and is isolated in a separate package
// to avoid import cycles when service tests import testutil
func SetupCLITest(t *testing.T) (*sql.DB, *app.App) {
	t.Helper()
	db := testutil.SetupTestDB(t)

	cfg := config.Default()
	cfg.DataDir = t.TempDir()
	cfg.DatabasePath = ":memory:"
	cfg.ColorScheme = config.MonochromeColorScheme()

	appInstance := app.New(db, cfg,
		app.WithLogger(logging.Discard()),
		app.WithPasswordHasher(authservice.NewPasswordHasher(testutil.TestBcryptCost, cfg.PasswordMinLength)),
	)

	return db, appInstance
}

// RegisterTestUser registers username with TestPassword through the auth service
func RegisterTestUser(t *testing.T, a *app.App, username string) {
	t.Helper()
	_, err := a.AuthService.Register(context.Background(), authservice.RegisterRequest{
		Username: username,
		Email:    username + "@example.com",
		Password: TestPassword,
	})
	if err != nil {
		t.Fatalf("Failed to register %s: %v", username, err)
	}
}

// LoginTestUser registers username and writes a session file for it, as
// 'worklog login' would
func LoginTestUser(t *testing.T, a *app.App, username string) string {
	t.Helper()
	RegisterTestUser(t, a, username)

	sess, err := a.AuthService.StartSession(context.Background(), username, TestPassword)
	if err != nil {
		t.Fatalf("Failed to log in %s: %v", username, err)
	}
	if err := session.Save(a.Config().SessionPath(), &session.File{
		Token:      sess.Token,
		Username:   username,
		LoggedInAt: time.Now(),
	}); err != nil {
		t.Fatalf("Failed to write session file: %v", err)
	}
	return sess.Token
}
