package models

import (
	"fmt"
	"strings"
)

// ============================================================================
// WORK ASSIGNMENT
// ============================================================================

// WorkAssignment says who a task was handed to. The zero value is "unset".
type WorkAssignment string

const (
	AssignmentUnset WorkAssignment = ""
	AssignmentSelf  WorkAssignment = "self"
	AssignmentOther WorkAssignment = "other"
)

// ParseWorkAssignment maps user input to a WorkAssignment
func ParseWorkAssignment(s string) (WorkAssignment, error) {
	switch WorkAssignment(s) {
	case AssignmentUnset, AssignmentSelf, AssignmentOther:
		return WorkAssignment(s), nil
	}
	return "", fmt.Errorf("invalid work assignment '%s' (must be: self, other)", s)
}

// ============================================================================
// TASK STATUS
// ============================================================================

// TaskStatus is the progress state of a task. The zero value is "unset".
type TaskStatus string

const (
	StatusUnset      TaskStatus = ""
	StatusPending    TaskStatus = "pending"
	StatusInProgress TaskStatus = "in_progress"
	StatusCompleted  TaskStatus = "completed"
)

// ParseTaskStatus maps user input to a TaskStatus
func ParseTaskStatus(s string) (TaskStatus, error) {
	switch TaskStatus(s) {
	case StatusUnset, StatusPending, StatusInProgress, StatusCompleted:
		return TaskStatus(s), nil
	}
	return "", fmt.Errorf("invalid status '%s' (must be: pending, in_progress, completed)", s)
}

// ============================================================================
// EXPENSE CATEGORIES
// ============================================================================

// ExpenseCategory is one selectable expense purpose
type ExpenseCategory string

const (
	CategoryTravelling     ExpenseCategory = "travelling"
	CategoryMobileRecharge ExpenseCategory = "mobile_recharge"
	CategoryFood           ExpenseCategory = "food"
	CategoryOther          ExpenseCategory = "other"
)

// ExpenseNone is the expense_purpose value stored when no expense was incurred
const ExpenseNone = "none"

// ExpensePurposeSeparator joins selected categories in expense_purpose
const ExpensePurposeSeparator = ", "

// ExpenseCategories lists every category in canonical order
var ExpenseCategories = []ExpenseCategory{
	CategoryTravelling,
	CategoryMobileRecharge,
	CategoryFood,
	CategoryOther,
}

// ParseExpenseCategory maps user input to an ExpenseCategory.
// "mobile" is accepted as shorthand for mobile_recharge.
func ParseExpenseCategory(s string) (ExpenseCategory, error) {
	if s == "mobile" {
		return CategoryMobileRecharge, nil
	}
	for _, c := range ExpenseCategories {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("invalid expense category '%s' (must be: travelling, mobile_recharge, food, other)", s)
}

// DefaultRecentWindowDays is how far back the dashboard looks for recent tasks
const DefaultRecentWindowDays = 30

// ParseExpensePurpose normalizes a stored expense_purpose value. It accepts
// "none" or a comma-separated set of categories and returns the set in
// canonical order, joined with ExpensePurposeSeparator.
func ParseExpensePurpose(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == ExpenseNone {
		return ExpenseNone, nil
	}

	seen := make(map[ExpenseCategory]bool, len(ExpenseCategories))
	for _, token := range strings.Split(s, ",") {
		c, err := ParseExpenseCategory(strings.TrimSpace(token))
		if err != nil {
			return "", fmt.Errorf("invalid expense purpose '%s'", s)
		}
		seen[c] = true
	}

	purposes := make([]string, 0, len(seen))
	for _, c := range ExpenseCategories {
		if seen[c] {
			purposes = append(purposes, string(c))
		}
	}
	return strings.Join(purposes, ExpensePurposeSeparator), nil
}
