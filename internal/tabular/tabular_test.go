package tabular

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/worklog/internal/models"
)

func sampleTasks() []*models.TaskRecord {
	return []*models.TaskRecord{
		{
			Username:        "alice",
			Date:            time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			TaskAssignedBy:  "manager",
			WorkAssignment:  models.AssignmentSelf,
			TaskDescription: "report, with a comma",
			WorkDoneToday:   "drafted \"intro\"",
			TaskStatus:      models.StatusInProgress,
			WorkPlanNextDay: "review",
			ExpensePurpose:  "travelling, food",
			Amount:          decimal.RequireFromString("70.05"),
		},
		{
			Username:         "bob",
			WorkAssignment:   models.AssignmentOther,
			AssignedToPerson: "carol",
			TaskStatus:       models.StatusCompleted,
			ExpensePurpose:   "other",
			OtherPurpose:     "parking",
			Amount:           decimal.RequireFromString("3"),
		},
	}
}

func TestTasksRoundTrip(t *testing.T) {
	for _, ext := range []string{".csv", ".xlsx"} {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "tasks"+ext)
			want := sampleTasks()

			require.NoError(t, WriteTasks(path, want))
			got, err := ReadTasks(path)
			require.NoError(t, err)
			require.Len(t, got, len(want))

			for i := range want {
				assert.Equal(t, want[i].Username, got[i].Username)
				assert.Equal(t, want[i].DateString(), got[i].DateString())
				assert.Equal(t, want[i].TaskAssignedBy, got[i].TaskAssignedBy)
				assert.Equal(t, want[i].WorkAssignment, got[i].WorkAssignment)
				assert.Equal(t, want[i].AssignedToPerson, got[i].AssignedToPerson)
				assert.Equal(t, want[i].TaskDescription, got[i].TaskDescription)
				assert.Equal(t, want[i].WorkDoneToday, got[i].WorkDoneToday)
				assert.Equal(t, want[i].TaskStatus, got[i].TaskStatus)
				assert.Equal(t, want[i].WorkPlanNextDay, got[i].WorkPlanNextDay)
				assert.Equal(t, want[i].ExpensePurpose, got[i].ExpensePurpose)
				assert.Equal(t, want[i].OtherPurpose, got[i].OtherPurpose)
				assert.True(t, want[i].Amount.Equal(got[i].Amount), "amount %s != %s", want[i].Amount, got[i].Amount)
			}
		})
	}
}

func TestUsersRoundTrip(t *testing.T) {
	for _, ext := range []string{".csv", ".xlsx"} {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "nested", "users"+ext)
			want := []*models.User{
				{Username: "alice", Email: "a@example.com", ContactNo: "555-0100", PasswordHash: "$2a$04$abc"},
				{Username: "bob", Email: "b@example.com", PasswordHash: "legacy"},
			}

			require.NoError(t, WriteUsers(path, want))
			got, err := ReadUsers(path)
			require.NoError(t, err)
			require.Len(t, got, 2)
			assert.Equal(t, want[0].Username, got[0].Username)
			assert.Equal(t, want[0].ContactNo, got[0].ContactNo)
			assert.Equal(t, want[1].PasswordHash, got[1].PasswordHash)
			assert.Empty(t, got[1].ContactNo)
		})
	}
}

func TestRead_AbsentVersusEmpty(t *testing.T) {
	dir := t.TempDir()

	_, err := ReadTasks(filepath.Join(dir, "missing.csv"))
	assert.ErrorIs(t, err, ErrTableAbsent)

	headerOnly := filepath.Join(dir, "tasks.csv")
	require.NoError(t, WriteTasks(headerOnly, nil))
	tasks, err := ReadTasks(headerOnly)
	require.NoError(t, err)
	assert.NotNil(t, tasks)
	assert.Empty(t, tasks)
}

func TestRead_Corrupt(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		return path
	}

	tests := []struct {
		name string
		path string
	}{
		{"empty file", write("empty.csv", "")},
		{"wrong header", write("header.csv", "name,when\nalice,2024-01-01\n")},
		{"bad amount", write("amount.csv",
			"username,date,task_assigned_by,work_assignment,assigned_to_person,task_description,work_done_today,task_status,work_plan_next_day,expense_purpose,other_purpose,amount\n"+
				"alice,2024-01-01,,self,,,,pending,,food,,ten\n")},
		{"bad status", write("status.csv",
			"username,date,task_assigned_by,work_assignment,assigned_to_person,task_description,work_done_today,task_status,work_plan_next_day,expense_purpose,other_purpose,amount\n"+
				"alice,2024-01-01,,self,,,,done,,food,,1\n")},
		{"not a workbook", write("broken.xlsx", "this is not a zip archive")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadTasks(tt.path)
			assert.ErrorIs(t, err, ErrTableCorrupt)
		})
	}
}

func TestReadTasks_RejectsInvalidExpenses(t *testing.T) {
	dir := t.TempDir()
	header := strings.Join(TaskColumns, ",") + "\n"

	tests := []struct {
		name string
		row  string
	}{
		{"negative amount", "alice,2024-01-01,,self,,,,pending,,food,,-20"},
		{"none with an amount", "alice,2024-01-01,,self,,,,pending,,none,,50"},
		{"blank purpose with an amount", "alice,2024-01-01,,self,,,,pending,,,,5"},
		{"unknown purpose", "alice,2024-01-01,,self,,,,pending,,bogus,,5"},
		{"none mixed with a category", "alice,2024-01-01,,self,,,,pending,,\"food, none\",,5"},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, fmt.Sprintf("tasks%d.csv", i))
			require.NoError(t, os.WriteFile(path, []byte(header+"alice,2024-01-02,,self,,,,pending,,none,,0\n"+tt.row+"\n"), 0o644))

			_, err := ReadTasks(path)
			require.ErrorIs(t, err, ErrTableCorrupt)
			assert.Contains(t, err.Error(), "line 3")
		})
	}
}

func TestReadTasks_NormalizesExpenseCells(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.csv")
	content := strings.Join(TaskColumns, ",") + "\n" +
		"alice,2024-01-01,,self,Zed,,,pending,,none,taxi,0\n" +
		"alice,2024-01-02,,other,Zed,,,pending,,\"food,travelling\",taxi,70\n" +
		"alice,2024-01-03,,other,Zed,,,pending,,\"other, mobile\",taxi,9.5\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	tasks, err := ReadTasks(path)
	require.NoError(t, err)
	require.Len(t, tasks, 3)

	assert.Equal(t, models.ExpenseNone, tasks[0].ExpensePurpose)
	assert.Empty(t, tasks[0].AssignedToPerson, "assignee only kept for other")
	assert.Empty(t, tasks[0].OtherPurpose, "none carries no other purpose")

	assert.Equal(t, "travelling, food", tasks[1].ExpensePurpose)
	assert.Equal(t, "Zed", tasks[1].AssignedToPerson)
	assert.Empty(t, tasks[1].OtherPurpose, "other purpose only kept when other is selected")

	assert.Equal(t, "mobile_recharge, other", tasks[2].ExpensePurpose)
	assert.Equal(t, "taxi", tasks[2].OtherPurpose)
	assert.True(t, tasks[2].Amount.Equal(decimal.RequireFromString("9.5")))
}

func TestReadUsers_KeepsPasswordPadding(t *testing.T) {
	for _, ext := range []string{".csv", ".xlsx"} {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "users"+ext)
			require.NoError(t, WriteUsers(path, []*models.User{
				{Username: "bob", PasswordHash: " pw1 "},
			}))

			got, err := ReadUsers(path)
			require.NoError(t, err)
			require.Len(t, got, 1)
			assert.Equal(t, "bob", got[0].Username)
			assert.Equal(t, " pw1 ", got[0].PasswordHash)
		})
	}
}

func TestReadTasks_LenientRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "legacy.csv")
	content := "Username,Date,Task_Assigned_By,Work_Assignment,Assigned_To_Person,Task_Description,Work_Done_Today,Task_Status,Work_Plan_Next_Day,Expense_Purpose,Other_Purpose,Amount\n" +
		"alice,not-a-date,boss,self,,desc,done,pending,plan,none,,0\n" +
		",,,,,,,,,,,\n" +
		"alice,2024-02-03 00:00:00,boss\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	tasks, err := ReadTasks(path)
	require.NoError(t, err)
	require.Len(t, tasks, 2, "blank rows are skipped")

	assert.False(t, tasks[0].HasDate(), "unparseable date becomes null")
	assert.Equal(t, "2024-02-03", tasks[1].DateString())
	assert.Equal(t, models.ExpenseNone, tasks[1].ExpensePurpose, "short rows are padded")
	assert.True(t, tasks[1].Amount.IsZero())
}

func TestUnsupportedFormat(t *testing.T) {
	_, err := ReadUsers("users.json")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
	assert.ErrorIs(t, WriteUsers(filepath.Join(t.TempDir(), "users.txt"), nil), ErrUnsupportedFormat)
}
