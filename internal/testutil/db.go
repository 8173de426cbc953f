package testutil

import (
	"context"
	"database/sql"
	"testing"

	"github.com/thenoetrevino/worklog/internal/database"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

const TestAppKey ContextKey = "testApp"

// TestBcryptCost keeps password hashing fast in tests
const TestBcryptCost = 4

// SetupTestDB creates an in-memory database with the full schema.
// The database is closed when the test finishes.
func SetupTestDB(tb testing.TB) *sql.DB {
	tb.Helper()
	db, err := database.Open(context.Background(), ":memory:")
	if err != nil {
		tb.Fatalf("Failed to create test database: %v", err)
	}
	tb.Cleanup(func() { _ = db.Close() })
	return db
}

// CreateTestUser registers username with a placeholder hash directly through
// the repository, bypassing validation and bcrypt.
func CreateTestUser(tb testing.TB, db *sql.DB, username string) {
	tb.Helper()
	repo := database.NewRepository(db)
	if _, err := repo.RegisterUser(context.Background(), username, username+"@example.com", "555", "not-a-real-hash"); err != nil {
		tb.Fatalf("Failed to create test user %s: %v", username, err)
	}
}
