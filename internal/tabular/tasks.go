package tabular

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/thenoetrevino/worklog/internal/models"
)

// TaskColumns is the header of the tasks table
var TaskColumns = []string{
	"username",
	"date",
	"task_assigned_by",
	"work_assignment",
	"assigned_to_person",
	"task_description",
	"work_done_today",
	"task_status",
	"work_plan_next_day",
	"expense_purpose",
	"other_purpose",
	"amount",
}

// ReadTasks loads the tasks table. Dates that do not parse become null dates.
// Expense cells must hold a stored expense: a non-negative amount, zero when
// the purpose is "none". The assignee and other-purpose cells are dropped
// unless the row's assignment and purpose call for them.
func ReadTasks(path string) ([]*models.TaskRecord, error) {
	records, err := readTable(path, TaskColumns)
	if err != nil {
		return nil, err
	}

	tasks := make([]*models.TaskRecord, 0, len(records))
	for _, rec := range records {
		task, err := taskFromRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("%w: %s line %d: %v", ErrTableCorrupt, path, rec.line, err)
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

func taskFromRecord(rec record) (*models.TaskRecord, error) {
	username := rec.get("username")
	if username == "" {
		return nil, fmt.Errorf("empty username")
	}

	assignment, err := models.ParseWorkAssignment(rec.get("work_assignment"))
	if err != nil {
		return nil, err
	}
	status, err := models.ParseTaskStatus(rec.get("task_status"))
	if err != nil {
		return nil, err
	}

	amount := decimal.Zero
	if s := rec.get("amount"); s != "" {
		amount, err = decimal.NewFromString(s)
		if err != nil {
			return nil, fmt.Errorf("invalid amount %q", s)
		}
	}
	if amount.IsNegative() {
		return nil, models.ErrNegativeAmount
	}

	purpose := models.ExpenseNone
	if s := rec.get("expense_purpose"); s != "" {
		purpose, err = models.ParseExpensePurpose(s)
		if err != nil {
			return nil, err
		}
	}
	if purpose == models.ExpenseNone && !amount.IsZero() {
		return nil, fmt.Errorf("expense purpose none with amount %s", amount)
	}

	task := &models.TaskRecord{
		Username:        username,
		TaskAssignedBy:  rec.get("task_assigned_by"),
		WorkAssignment:  assignment,
		TaskDescription: rec.get("task_description"),
		WorkDoneToday:   rec.get("work_done_today"),
		TaskStatus:      status,
		WorkPlanNextDay: rec.get("work_plan_next_day"),
		ExpensePurpose:  purpose,
		Amount:          amount,
	}
	if assignment == models.AssignmentOther {
		task.AssignedToPerson = rec.get("assigned_to_person")
	}
	if slices.Contains(strings.Split(purpose, models.ExpensePurposeSeparator), string(models.CategoryOther)) {
		task.OtherPurpose = rec.get("other_purpose")
	}

	if s := rec.get("date"); s != "" {
		date, err := models.ParseDate(s)
		if err != nil {
			slog.Warn("unparseable task date, importing as null", "line", rec.line, "date", s)
		} else {
			task.Date = date
		}
	}
	return task, nil
}

// WriteTasks writes tasks in the interchange layout
func WriteTasks(path string, tasks []*models.TaskRecord) error {
	t := table{sheet: "tasks", header: TaskColumns, rows: make([][]string, 0, len(tasks))}
	for _, task := range tasks {
		t.rows = append(t.rows, []string{
			task.Username,
			task.DateString(),
			task.TaskAssignedBy,
			string(task.WorkAssignment),
			task.AssignedToPerson,
			task.TaskDescription,
			task.WorkDoneToday,
			string(task.TaskStatus),
			task.WorkPlanNextDay,
			task.ExpensePurpose,
			task.OtherPurpose,
			task.Amount.String(),
		})
	}
	return writeTable(path, t)
}
