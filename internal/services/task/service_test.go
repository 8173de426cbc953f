package task

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/worklog/internal/database"
	"github.com/thenoetrevino/worklog/internal/models"
	"github.com/thenoetrevino/worklog/internal/testutil"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

func setupService(t *testing.T, users ...string) Service {
	t.Helper()
	db := testutil.SetupTestDB(t)
	for _, u := range users {
		testutil.CreateTestUser(t, db, u)
	}
	return NewService(database.NewRepository(db), models.DefaultRecentWindowDays, nil)
}

func mustDay(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := models.ParseDate(s)
	require.NoError(t, err)
	return d
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func baseRequest(username string, date time.Time) SubmitTaskRequest {
	return SubmitTaskRequest{
		Username:        username,
		Date:            date,
		TaskAssignedBy:  "manager",
		WorkAssignment:  models.AssignmentSelf,
		TaskDescription: "daily report",
		WorkDoneToday:   "drafted",
		TaskStatus:      models.StatusPending,
		WorkPlanNextDay: "finish",
		Expense:         models.ExpenseForm{None: true},
	}
}

// ============================================================================
// SUBMIT
// ============================================================================

func TestSubmit_ExpenseReduction(t *testing.T) {
	t.Parallel()
	svc := setupService(t, "alice")

	req := baseRequest("alice", mustDay(t, "2024-01-01"))
	req.Expense = models.ExpenseForm{}
	req.Expense.Select(models.CategoryTravelling, dec("50"))
	req.Expense.Select(models.CategoryFood, dec("20"))

	task, err := svc.Submit(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "travelling, food", task.ExpensePurpose)
	assert.Equal(t, "70.00", task.Amount.StringFixed(2))
	assert.Equal(t, "", task.OtherPurpose)
	assert.Equal(t, "2024-01-01", task.DateString())
}

func TestSubmit_NoneOverride(t *testing.T) {
	t.Parallel()
	svc := setupService(t, "alice")

	req := baseRequest("alice", mustDay(t, "2024-01-01"))
	req.Expense = models.ExpenseForm{}
	req.Expense.Select(models.CategoryMobileRecharge, dec("199"))
	req.Expense.Select(models.CategoryOther, dec("10"))
	req.Expense.OtherPurpose = "stationery"
	req.Expense.SetNone(true)

	task, err := svc.Submit(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, models.ExpenseNone, task.ExpensePurpose)
	assert.True(t, task.Amount.IsZero())
	assert.Equal(t, "", task.OtherPurpose)
}

func TestSubmit_NothingTickedStoresNone(t *testing.T) {
	t.Parallel()
	svc := setupService(t, "alice")

	req := baseRequest("alice", mustDay(t, "2024-01-01"))
	req.Expense = models.ExpenseForm{}

	task, err := svc.Submit(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, models.ExpenseNone, task.ExpensePurpose)
	assert.True(t, task.Amount.IsZero())
	assert.True(t, task.NoExpense())
}

func TestSubmit_OtherPurposeKeptOnlyWithOther(t *testing.T) {
	t.Parallel()
	svc := setupService(t, "alice")

	req := baseRequest("alice", mustDay(t, "2024-01-01"))
	req.Expense = models.ExpenseForm{OtherPurpose: "left over text"}
	req.Expense.Select(models.CategoryFood, dec("5"))

	task, err := svc.Submit(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "", task.OtherPurpose)

	req.Expense.Select(models.CategoryOther, dec("2.5"))
	req.Expense.OtherPurpose = "parking"
	task, err = svc.Submit(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "food, other", task.ExpensePurpose)
	assert.Equal(t, "parking", task.OtherPurpose)
	assert.Equal(t, "7.50", task.Amount.StringFixed(2))
}

func TestSubmit_AssignedToOnlyForOther(t *testing.T) {
	t.Parallel()
	svc := setupService(t, "alice")

	req := baseRequest("alice", mustDay(t, "2024-01-01"))
	req.AssignedToPerson = "bob"
	task, err := svc.Submit(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "", task.AssignedToPerson)

	req.WorkAssignment = models.AssignmentOther
	task, err = svc.Submit(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "bob", task.AssignedToPerson)
}

func TestSubmit_Validation(t *testing.T) {
	t.Parallel()
	svc := setupService(t, "alice")
	date := mustDay(t, "2024-01-01")

	tests := []struct {
		name   string
		mutate func(*SubmitTaskRequest)
		want   error
	}{
		{"missing owner", func(r *SubmitTaskRequest) { r.Username = "" }, ErrMissingUsername},
		{"missing date", func(r *SubmitTaskRequest) { r.Date = time.Time{} }, ErrMissingDate},
		{"bad assignment", func(r *SubmitTaskRequest) { r.WorkAssignment = "team" }, ErrInvalidAssignment},
		{"other without assignee", func(r *SubmitTaskRequest) { r.WorkAssignment = models.AssignmentOther }, ErrMissingAssignee},
		{"bad status", func(r *SubmitTaskRequest) { r.TaskStatus = "done" }, ErrInvalidStatus},
		{"negative amount", func(r *SubmitTaskRequest) {
			r.Expense = models.ExpenseForm{}
			r.Expense.Select(models.CategoryFood, dec("-1"))
		}, models.ErrNegativeAmount},
		{"other without purpose", func(r *SubmitTaskRequest) {
			r.Expense = models.ExpenseForm{}
			r.Expense.Select(models.CategoryOther, dec("1"))
		}, models.ErrMissingOtherPurpose},
		{"unknown user", func(r *SubmitTaskRequest) { r.Username = "ghost" }, ErrUnknownUser},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := baseRequest("alice", date)
			tt.mutate(&req)
			_, err := svc.Submit(context.Background(), req)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

// ============================================================================
// SUMMARIZE
// ============================================================================

func TestSummarize_TotalsMatchSubmissions(t *testing.T) {
	t.Parallel()
	svc := setupService(t, "alice", "bob")
	ctx := context.Background()
	asOf := mustDay(t, "2024-03-01")

	amounts := []string{"0.10", "0.20", "12.345", "100", "0"}
	want := decimal.Zero
	for i, a := range amounts {
		req := baseRequest("alice", asOf.AddDate(0, 0, -i*20))
		req.Expense = models.ExpenseForm{}
		req.Expense.Select(models.CategoryTravelling, dec(a))
		_, err := svc.Submit(ctx, req)
		require.NoError(t, err)
		want = want.Add(dec(a))
	}
	_, err := svc.Submit(ctx, baseRequest("bob", asOf))
	require.NoError(t, err)

	dash, err := svc.Summarize(ctx, "alice", asOf)
	require.NoError(t, err)
	assert.Equal(t, len(amounts), dash.TotalTaskCount)
	assert.True(t, want.Equal(dash.TotalExpenseAmount), "want %s got %s", want, dash.TotalExpenseAmount)
	assert.Equal(t, "112.645", dash.TotalExpenseAmount.String())
}

func TestSummarize_RecentWindow(t *testing.T) {
	t.Parallel()
	svc := setupService(t, "alice")
	ctx := context.Background()
	today := mustDay(t, "2024-06-30")

	for _, offset := range []int{31, 29, 0, 30, 5} {
		_, err := svc.Submit(ctx, baseRequest("alice", today.AddDate(0, 0, -offset)))
		require.NoError(t, err)
	}

	dash, err := svc.Summarize(ctx, "alice", today)
	require.NoError(t, err)
	assert.Equal(t, 5, dash.TotalTaskCount)
	require.Len(t, dash.RecentTasks, 4)

	var dates []string
	for _, task := range dash.RecentTasks {
		dates = append(dates, task.DateString())
	}
	assert.Equal(t, []string{"2024-06-30", "2024-06-25", "2024-06-01", "2024-05-31"}, dates)
	assert.NotContains(t, dates, "2024-05-30", "31 days back is outside the window")

	for i := 1; i < len(dash.RecentTasks); i++ {
		assert.False(t, dash.RecentTasks[i].Date.After(dash.RecentTasks[i-1].Date),
			"recent tasks must be non-increasing by date")
	}
}

func TestSummarize_NullDatesCountButAreNotRecent(t *testing.T) {
	t.Parallel()
	asOf := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	tasks := []*models.TaskRecord{
		{ID: 1, Date: time.Time{}, Amount: dec("5")},
		{ID: 2, Date: asOf.AddDate(0, 0, -1), Amount: dec("3")},
	}

	dash := summarize("alice", asOf, 30, tasks)
	assert.Equal(t, 2, dash.TotalTaskCount)
	assert.Equal(t, "8", dash.TotalExpenseAmount.String())
	require.Len(t, dash.RecentTasks, 1)
	assert.Equal(t, 2, dash.RecentTasks[0].ID)
}

func TestSummarize_Empty(t *testing.T) {
	t.Parallel()
	svc := setupService(t, "alice")

	dash, err := svc.Summarize(context.Background(), "alice", time.Now())
	require.NoError(t, err)
	assert.Equal(t, 0, dash.TotalTaskCount)
	assert.True(t, dash.TotalExpenseAmount.IsZero())
	assert.Empty(t, dash.RecentTasks)
}

// TestAliceScenario walks the whole flow for one user: a task dated
// 2024-01-01 with travelling and food expenses, summarized on 2024-01-15.
func TestAliceScenario(t *testing.T) {
	t.Parallel()
	svc := setupService(t, "alice")
	ctx := context.Background()

	req := baseRequest("alice", mustDay(t, "2024-01-01"))
	req.Expense = models.ExpenseForm{}
	req.Expense.Select(models.CategoryTravelling, dec("50"))
	req.Expense.Select(models.CategoryFood, dec("20"))
	task, err := svc.Submit(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "travelling, food", task.ExpensePurpose)
	assert.Equal(t, "70.00", task.Amount.StringFixed(2))

	dash, err := svc.Summarize(ctx, "alice", mustDay(t, "2024-01-15"))
	require.NoError(t, err)
	assert.Equal(t, 1, dash.TotalTaskCount)
	assert.Equal(t, "70.00", dash.TotalExpenseAmount.StringFixed(2))
	require.Len(t, dash.RecentTasks, 1, "14 days back is inside the window")

	dash, err = svc.Summarize(ctx, "alice", mustDay(t, "2024-02-15"))
	require.NoError(t, err)
	assert.Equal(t, 1, dash.TotalTaskCount)
	assert.Empty(t, dash.RecentTasks, "45 days back is outside the window")
}
