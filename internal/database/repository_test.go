package database

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestMigrate_Idempotent(t *testing.T) {
	db := setupTestDB(t)

	if err := Migrate(context.Background(), db); err != nil {
		t.Fatalf("Second migration failed: %v", err)
	}

	var count int
	err := db.QueryRowContext(context.Background(),
		`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name IN ('users', 'tasks', 'sessions')`,
	).Scan(&count)
	if err != nil {
		t.Fatalf("Failed to inspect schema: %v", err)
	}
	if count != 3 {
		t.Errorf("Expected 3 tables, got %d", count)
	}
}

func TestInitDB_PersistsAcrossRestarts(t *testing.T) {
	ctx := context.Background()
	path := setupTestDBFile(t)

	db, err := InitDB(ctx, path)
	if err != nil {
		t.Fatalf("InitDB failed: %v", err)
	}
	repo := NewRepository(db)
	createTestUser(t, repo, "alice")
	if _, err := repo.AppendTask(ctx, newTestTask("alice", day("2024-01-01"), "70.00")); err != nil {
		t.Fatalf("AppendTask failed: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	db, err = InitDB(ctx, path)
	if err != nil {
		t.Fatalf("Reopen failed: %v", err)
	}
	defer func() { _ = db.Close() }()
	repo = NewRepository(db)

	users, err := repo.LoadUsers(ctx)
	if err != nil {
		t.Fatalf("LoadUsers failed: %v", err)
	}
	if len(users) != 1 || users[0].Username != "alice" {
		t.Errorf("Expected alice after restart, got %+v", users)
	}

	tasks, err := repo.LoadTasksFor(ctx, "alice")
	if err != nil {
		t.Fatalf("LoadTasksFor failed: %v", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("Expected 1 task after restart, got %d", len(tasks))
	}
	if tasks[0].Amount.String() != "70" {
		t.Errorf("Expected amount 70, got %s", tasks[0].Amount)
	}
}

func TestSessions(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(setupTestDB(t))
	createTestUser(t, repo, "alice")

	session, err := repo.CreateSession(ctx, "alice")
	if err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}
	if session.Token == "" || session.Username != "alice" {
		t.Fatalf("Unexpected session: %+v", session)
	}
	if !session.ExpenseDraft.IsEmpty() {
		t.Error("New session should have an empty expense draft")
	}

	draft := session.ExpenseDraft
	draft.Food = true
	draft.FoodAmount = decimal.RequireFromString("12.50")
	if err := repo.UpdateSessionDraft(ctx, session.Token, draft); err != nil {
		t.Fatalf("UpdateSessionDraft failed: %v", err)
	}

	reloaded, err := repo.GetSession(ctx, session.Token)
	if err != nil {
		t.Fatalf("GetSession failed: %v", err)
	}
	if !reloaded.ExpenseDraft.Food || reloaded.ExpenseDraft.FoodAmount.String() != "12.5" {
		t.Errorf("Draft not persisted: %+v", reloaded.ExpenseDraft)
	}

	if err := repo.DeleteSession(ctx, session.Token); err != nil {
		t.Fatalf("DeleteSession failed: %v", err)
	}
	if _, err := repo.GetSession(ctx, session.Token); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Expected ErrSessionNotFound, got %v", err)
	}
	if err := repo.DeleteSession(ctx, session.Token); err != nil {
		t.Errorf("Deleting twice should be a no-op, got %v", err)
	}
	if err := repo.UpdateSessionDraft(ctx, session.Token, draft); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Expected ErrSessionNotFound on update, got %v", err)
	}
}

func TestCreateSession_UnknownUser(t *testing.T) {
	repo := NewRepository(setupTestDB(t))

	_, err := repo.CreateSession(context.Background(), "ghost")
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("Expected ErrUserNotFound, got %v", err)
	}
}
