package forms

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"charm.land/huh/v2"
	"github.com/shopspring/decimal"
	"github.com/thenoetrevino/worklog/internal/models"
	taskservice "github.com/thenoetrevino/worklog/internal/services/task"
)

// noneOption is the extra multi-select entry for "no expense"
const noneOption = models.ExpenseNone

// TaskValues holds the raw answers of the task form. Amounts stay strings
// until ToRequest so a half-typed number never aborts the form.
type TaskValues struct {
	Date             string
	TaskAssignedBy   string
	WorkAssignment   string
	AssignedToPerson string
	TaskDescription  string
	WorkDoneToday    string
	TaskStatus       string
	WorkPlanNextDay  string

	Categories   []string
	Amounts      map[models.ExpenseCategory]*string
	OtherPurpose string
}

// NewTaskValues returns answers prefilled with today's date and the expense
// draft held on the session.
func NewTaskValues(today time.Time, draft models.ExpenseForm) *TaskValues {
	v := &TaskValues{
		Date:           today.Format(models.DateLayout),
		WorkAssignment: string(models.AssignmentSelf),
		TaskStatus:     string(models.StatusPending),
		Amounts:        make(map[models.ExpenseCategory]*string, len(models.ExpenseCategories)),
		OtherPurpose:   draft.OtherPurpose,
	}
	for _, c := range models.ExpenseCategories {
		amount := ""
		if draft.Selected(c) {
			v.Categories = append(v.Categories, string(c))
			if !draft.AmountFor(c).IsZero() {
				amount = draft.AmountFor(c).String()
			}
		}
		v.Amounts[c] = &amount
	}
	if draft.None {
		v.Categories = []string{noneOption}
	}
	return v
}

func (v *TaskValues) selected(c string) bool {
	return slices.Contains(v.Categories, c)
}

// Expense builds the expense form from the answers. Picking "none" wins
// over any category picked alongside it.
func (v *TaskValues) Expense() (models.ExpenseForm, error) {
	var form models.ExpenseForm
	if v.selected(noneOption) {
		form.SetNone(true)
		return form, nil
	}
	for _, c := range models.ExpenseCategories {
		if !v.selected(string(c)) {
			continue
		}
		amount := decimal.Zero
		if s := strings.TrimSpace(*v.Amounts[c]); s != "" {
			var err error
			amount, err = decimal.NewFromString(s)
			if err != nil {
				return form, fmt.Errorf("invalid %s amount %q", c, s)
			}
		}
		form.Select(c, amount)
	}
	form.OtherPurpose = strings.TrimSpace(v.OtherPurpose)
	return form, nil
}

// ToRequest converts the answers into a submit request for username
func (v *TaskValues) ToRequest(username string) (taskservice.SubmitTaskRequest, error) {
	date, err := models.ParseDate(strings.TrimSpace(v.Date))
	if err != nil {
		return taskservice.SubmitTaskRequest{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", v.Date)
	}
	expense, err := v.Expense()
	if err != nil {
		return taskservice.SubmitTaskRequest{}, err
	}
	return taskservice.SubmitTaskRequest{
		Username:         username,
		Date:             date,
		TaskAssignedBy:   v.TaskAssignedBy,
		WorkAssignment:   models.WorkAssignment(v.WorkAssignment),
		AssignedToPerson: v.AssignedToPerson,
		TaskDescription:  v.TaskDescription,
		WorkDoneToday:    v.WorkDoneToday,
		TaskStatus:       models.TaskStatus(v.TaskStatus),
		WorkPlanNextDay:  v.WorkPlanNextDay,
		Expense:          expense,
	}, nil
}

func validateDate(s string) error {
	if _, err := models.ParseDate(strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("use YYYY-MM-DD")
	}
	return nil
}

func validateAmount(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return fmt.Errorf("not a number")
	}
	if d.IsNegative() {
		return models.ErrNegativeAmount
	}
	return nil
}

// CreateTaskForm creates the daily task form. The amount inputs of a
// category only show once it is ticked.
func CreateTaskForm(v *TaskValues) *huh.Form {
	details := huh.NewGroup(
		huh.NewInput().
			Key("date").
			Title("Date").
			Placeholder(models.DateLayout).
			Value(&v.Date).
			Validate(validateDate),

		huh.NewInput().
			Key("assigned_by").
			Title("Task assigned by").
			Value(&v.TaskAssignedBy),

		huh.NewSelect[string]().
			Key("assignment").
			Title("Work assignment").
			Options(assignmentOptions()...).
			Value(&v.WorkAssignment),
	)

	assignee := huh.NewGroup(
		huh.NewInput().
			Key("assigned_to").
			Title("Assigned to").
			Value(&v.AssignedToPerson).
			Validate(required("assignee")),
	).WithHideFunc(func() bool {
		return v.WorkAssignment != string(models.AssignmentOther)
	})

	work := huh.NewGroup(
		huh.NewText().
			Key("description").
			Title("Task description").
			CharLimit(1000).
			Value(&v.TaskDescription),

		huh.NewText().
			Key("work_done").
			Title("Work done today").
			CharLimit(1000).
			Value(&v.WorkDoneToday),

		huh.NewSelect[string]().
			Key("status").
			Title("Task status").
			Options(statusOptions()...).
			Value(&v.TaskStatus),

		huh.NewText().
			Key("next_day").
			Title("Work plan for next day").
			CharLimit(1000).
			Value(&v.WorkPlanNextDay),
	)

	expenseOptions := make([]huh.Option[string], 0, len(models.ExpenseCategories)+1)
	for _, c := range models.ExpenseCategories {
		expenseOptions = append(expenseOptions, huh.NewOption(categoryTitle(c), string(c)))
	}
	expenseOptions = append(expenseOptions, huh.NewOption("None", noneOption))

	groups := []*huh.Group{
		details,
		assignee,
		work,
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Key("expenses").
				Title("Expense purpose").
				Description("Choosing None clears the other categories").
				Options(expenseOptions...).
				Value(&v.Categories),
		),
	}

	for _, c := range models.ExpenseCategories {
		fields := []huh.Field{
			huh.NewInput().
				Key(string(c) + "_amount").
				Title(categoryTitle(c) + " amount").
				Placeholder("0.00").
				Value(v.Amounts[c]).
				Validate(validateAmount),
		}
		if c == models.CategoryOther {
			fields = append(fields, huh.NewInput().
				Key("other_purpose").
				Title("Other expense purpose").
				Value(&v.OtherPurpose).
				Validate(required("purpose")))
		}
		groups = append(groups, huh.NewGroup(fields...).WithHideFunc(func() bool {
			return v.selected(noneOption) || !v.selected(string(c))
		}))
	}

	return huh.NewForm(groups...)
}

func assignmentOptions() []huh.Option[string] {
	return []huh.Option[string]{
		huh.NewOption("Unset", string(models.AssignmentUnset)),
		huh.NewOption("Self", string(models.AssignmentSelf)),
		huh.NewOption("Other", string(models.AssignmentOther)),
	}
}

func statusOptions() []huh.Option[string] {
	return []huh.Option[string]{
		huh.NewOption("Unset", string(models.StatusUnset)),
		huh.NewOption("Pending", string(models.StatusPending)),
		huh.NewOption("In progress", string(models.StatusInProgress)),
		huh.NewOption("Completed", string(models.StatusCompleted)),
	}
}

func categoryTitle(c models.ExpenseCategory) string {
	switch c {
	case models.CategoryTravelling:
		return "Travelling"
	case models.CategoryMobileRecharge:
		return "Mobile recharge"
	case models.CategoryFood:
		return "Food"
	case models.CategoryOther:
		return "Other"
	}
	return string(c)
}
