package cli

import (
	"github.com/thenoetrevino/worklog/internal/models"
)

// TaskJSON is the wire shape of a task in --json output. Amounts are
// strings so no precision is lost.
func TaskJSON(t *models.TaskRecord) map[string]interface{} {
	return map[string]interface{}{
		"id":                 t.ID,
		"username":           t.Username,
		"date":               t.DateString(),
		"task_assigned_by":   t.TaskAssignedBy,
		"work_assignment":    t.WorkAssignment,
		"assigned_to_person": t.AssignedToPerson,
		"task_description":   t.TaskDescription,
		"work_done_today":    t.WorkDoneToday,
		"task_status":        t.TaskStatus,
		"work_plan_next_day": t.WorkPlanNextDay,
		"expense_purpose":    t.ExpensePurpose,
		"other_purpose":      t.OtherPurpose,
		"amount":             t.Amount.StringFixed(2),
		"created_at":         t.CreatedAt,
	}
}

// TasksJSON converts a task list, never returning nil
func TasksJSON(tasks []*models.TaskRecord) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, TaskJSON(t))
	}
	return out
}

// ExpenseFormJSON is the wire shape of a session's expense draft
func ExpenseFormJSON(f models.ExpenseForm) map[string]interface{} {
	reduced := f.Reduce()
	selected := make([]string, 0, len(models.ExpenseCategories))
	amounts := make(map[string]string, len(models.ExpenseCategories))
	for _, c := range models.ExpenseCategories {
		if f.Selected(c) {
			selected = append(selected, string(c))
			amounts[string(c)] = f.AmountFor(c).StringFixed(2)
		}
	}
	return map[string]interface{}{
		"none":          f.None,
		"selected":      selected,
		"amounts":       amounts,
		"other_purpose": f.OtherPurpose,
		"purpose":       reduced.Purpose,
		"total":         reduced.Amount.StringFixed(2),
	}
}
