package database

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/thenoetrevino/worklog/internal/models"
)

// ============================================================================
// DATABASE SETUP HELPERS
// ============================================================================

// setupTestDB creates an in-memory database and runs migrations
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// setupTestDBFile creates a file-based database for testing persistence across restarts
func setupTestDBFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "worklog-test.db")
}

// ============================================================================
// DATA HELPERS
// ============================================================================

func createTestUser(t *testing.T, repo *Repository, username string) *models.User {
	t.Helper()
	user, err := repo.RegisterUser(context.Background(), username, username+"@example.com", "555", "hash-"+username)
	if err != nil {
		t.Fatalf("Failed to create user %s: %v", username, err)
	}
	return user
}

func newTestTask(username string, date time.Time, amount string) *models.TaskRecord {
	return &models.TaskRecord{
		Username:        username,
		Date:            date,
		TaskAssignedBy:  "manager",
		WorkAssignment:  models.AssignmentSelf,
		TaskDescription: "write report",
		WorkDoneToday:   "first draft",
		TaskStatus:      models.StatusInProgress,
		WorkPlanNextDay: "review",
		ExpensePurpose:  models.ExpenseNone,
		Amount:          decimal.RequireFromString(amount),
	}
}

func day(s string) time.Time {
	d, err := models.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}
