package database

import (
	"context"
	"errors"
	"testing"

	"github.com/thenoetrevino/worklog/internal/models"
)

func TestRegisterUser(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(setupTestDB(t))

	user, err := repo.RegisterUser(ctx, "alice", "a@x.com", "555", "hash")
	if err != nil {
		t.Fatalf("RegisterUser failed: %v", err)
	}
	if user.Username != "alice" || user.Email != "a@x.com" || user.ContactNo != "555" {
		t.Errorf("Unexpected user: %+v", user)
	}
	if user.CreatedAt.IsZero() {
		t.Error("Expected created_at to be set")
	}
}

func TestRegisterUser_Duplicate(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(setupTestDB(t))

	if _, err := repo.RegisterUser(ctx, "alice", "a@x.com", "555", "hash1"); err != nil {
		t.Fatalf("First registration failed: %v", err)
	}

	_, err := repo.RegisterUser(ctx, "alice", "other@x.com", "777", "hash2")
	if !errors.Is(err, ErrUsernameExists) {
		t.Fatalf("Expected ErrUsernameExists, got %v", err)
	}

	users, err := repo.LoadUsers(ctx)
	if err != nil {
		t.Fatalf("LoadUsers failed: %v", err)
	}
	if len(users) != 1 {
		t.Fatalf("Expected exactly one record, got %d", len(users))
	}
	if users[0].Email != "a@x.com" {
		t.Errorf("Original record was overwritten: %+v", users[0])
	}
}

func TestLoadUsers_Empty(t *testing.T) {
	repo := NewRepository(setupTestDB(t))

	users, err := repo.LoadUsers(context.Background())
	if err != nil {
		t.Fatalf("LoadUsers on empty table failed: %v", err)
	}
	if users == nil || len(users) != 0 {
		t.Errorf("Expected empty non-nil slice, got %#v", users)
	}
}

func TestLoadUsers_ReadFailureIsAnError(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	if _, err := db.ExecContext(context.Background(), "DROP TABLE sessions"); err != nil {
		t.Fatalf("Failed to drop sessions: %v", err)
	}
	if _, err := db.ExecContext(context.Background(), "DROP TABLE tasks"); err != nil {
		t.Fatalf("Failed to drop tasks: %v", err)
	}
	if _, err := db.ExecContext(context.Background(), "DROP TABLE users"); err != nil {
		t.Fatalf("Failed to drop users: %v", err)
	}

	if _, err := repo.LoadUsers(context.Background()); err == nil {
		t.Error("Expected an error when the users table is unreadable")
	}
}

func TestGetUser_NotFound(t *testing.T) {
	repo := NewRepository(setupTestDB(t))

	_, err := repo.GetUser(context.Background(), "nobody")
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("Expected ErrUserNotFound, got %v", err)
	}

	exists, err := repo.UserExists(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("UserExists failed: %v", err)
	}
	if exists {
		t.Error("Expected nobody to not exist")
	}
}

func TestImportUsers_SkipsExisting(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(setupTestDB(t))
	alice := createTestUser(t, repo, "alice")

	bob := *alice
	bob.Username = "bob"

	inserted, skipped, err := repo.ImportUsers(ctx, []*models.User{alice, &bob})
	if err != nil {
		t.Fatalf("ImportUsers failed: %v", err)
	}
	if inserted != 1 || skipped != 1 {
		t.Errorf("Expected 1 inserted and 1 skipped, got %d and %d", inserted, skipped)
	}
}
