package forms

import (
	"testing"
	"time"

	"charm.land/huh/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/worklog/internal/config"
	"github.com/thenoetrevino/worklog/internal/models"
	authservice "github.com/thenoetrevino/worklog/internal/services/auth"
)

var today = time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

func TestNewTaskValues_PrefillsFromDraft(t *testing.T) {
	var draft models.ExpenseForm
	draft.Select(models.CategoryFood, decimal.RequireFromString("20"))
	draft.Select(models.CategoryOther, decimal.Zero)
	draft.OtherPurpose = "parking"

	v := NewTaskValues(today, draft)
	assert.Equal(t, "2024-01-15", v.Date)
	assert.Equal(t, []string{"food", "other"}, v.Categories)
	assert.Equal(t, "20", *v.Amounts[models.CategoryFood])
	assert.Equal(t, "", *v.Amounts[models.CategoryOther])
	assert.Equal(t, "parking", v.OtherPurpose)
}

func TestTaskValues_ToRequest(t *testing.T) {
	v := NewTaskValues(today, models.ExpenseForm{})
	v.Date = "2024-01-01"
	v.TaskStatus = string(models.StatusCompleted)
	v.Categories = []string{"travelling", "food"}
	*v.Amounts[models.CategoryTravelling] = "50"
	*v.Amounts[models.CategoryFood] = "20"
	*v.Amounts[models.CategoryMobileRecharge] = "999"

	req, err := v.ToRequest("alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", req.Username)
	assert.Equal(t, "2024-01-01", req.Date.Format(models.DateLayout))
	assert.Equal(t, models.StatusCompleted, req.TaskStatus)

	reduced := req.Expense.Reduce()
	assert.Equal(t, "travelling, food", reduced.Purpose)
	assert.Equal(t, "70.00", reduced.Amount.StringFixed(2))
}

func TestTaskValues_NoneWins(t *testing.T) {
	v := NewTaskValues(today, models.ExpenseForm{})
	v.Categories = []string{"food", noneOption}
	*v.Amounts[models.CategoryFood] = "20"

	form, err := v.Expense()
	require.NoError(t, err)
	assert.True(t, form.None)
	assert.False(t, form.Food)
	assert.Equal(t, models.ExpenseNone, form.Reduce().Purpose)
}

func TestTaskValues_NothingTickedIsNone(t *testing.T) {
	v := NewTaskValues(today, models.ExpenseForm{})
	*v.Amounts[models.CategoryFood] = "20"
	v.OtherPurpose = "parking"

	req, err := v.ToRequest("alice")
	require.NoError(t, err)

	reduced := req.Expense.Reduce()
	assert.Equal(t, models.ExpenseNone, reduced.Purpose)
	assert.True(t, reduced.Amount.IsZero())
	assert.Empty(t, reduced.OtherPurpose)
}

func TestTaskValues_UnsetSelections(t *testing.T) {
	v := NewTaskValues(today, models.ExpenseForm{})
	v.WorkAssignment = string(models.AssignmentUnset)
	v.TaskStatus = string(models.StatusUnset)

	req, err := v.ToRequest("alice")
	require.NoError(t, err)
	assert.Equal(t, models.AssignmentUnset, req.WorkAssignment)
	assert.Equal(t, models.StatusUnset, req.TaskStatus)
}

func TestSelectOptions_IncludeUnset(t *testing.T) {
	for name, options := range map[string][]huh.Option[string]{
		"assignment": assignmentOptions(),
		"status":     statusOptions(),
	} {
		values := make([]string, 0, len(options))
		for _, o := range options {
			values = append(values, o.Value)
		}
		assert.Contains(t, values, "", "%s select offers unset", name)
	}

	require.NotNil(t, CreateTaskForm(NewTaskValues(today, models.ExpenseForm{})))
}

func TestTaskValues_InvalidInput(t *testing.T) {
	v := NewTaskValues(today, models.ExpenseForm{})
	v.Date = "yesterday"
	_, err := v.ToRequest("alice")
	assert.Error(t, err)

	v.Date = "2024-01-01"
	v.Categories = []string{"food"}
	*v.Amounts[models.CategoryFood] = "lots"
	_, err = v.ToRequest("alice")
	assert.Error(t, err)
}

func TestValidators(t *testing.T) {
	assert.NoError(t, validateAmount(""))
	assert.NoError(t, validateAmount("12.50"))
	assert.ErrorIs(t, validateAmount("-1"), models.ErrNegativeAmount)
	assert.Error(t, validateAmount("abc"))
	assert.NoError(t, validateDate("2024-02-29"))
	assert.Error(t, validateDate("2024-02-30"))
}

func TestFormsBuild(t *testing.T) {
	theme := CreateTheme(config.DefaultColorScheme())
	assert.NotNil(t, theme)

	var req authservice.RegisterRequest
	assert.NotNil(t, CreateRegisterForm(&req).WithTheme(theme))

	var user, pass string
	assert.NotNil(t, CreateLoginForm(&user, &pass))

	assert.NotNil(t, CreateTaskForm(NewTaskValues(today, models.ExpenseForm{})))
}
