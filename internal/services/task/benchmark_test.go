package task

import (
	"context"
	"testing"
	"time"

	"github.com/thenoetrevino/worklog/internal/database"
	"github.com/thenoetrevino/worklog/internal/models"
	"github.com/thenoetrevino/worklog/internal/testutil"
)

// BenchmarkSummarize measures the dashboard over a year of daily entries
func BenchmarkSummarize(b *testing.B) {
	db := testutil.SetupTestDB(b)
	testutil.CreateTestUser(b, db, "alice")
	svc := NewService(database.NewRepository(db), models.DefaultRecentWindowDays, nil)
	ctx := context.Background()
	asOf := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 365; i++ {
		req := baseRequest("alice", asOf.AddDate(0, 0, -i))
		req.Expense = models.ExpenseForm{}
		req.Expense.Select(models.CategoryFood, dec("12.5"))
		if _, err := svc.Submit(ctx, req); err != nil {
			b.Fatalf("Failed to seed task %d: %v", i, err)
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := svc.Summarize(ctx, "alice", asOf); err != nil {
			b.Fatalf("Summarize failed: %v", err)
		}
	}
}
