package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the day-granular layout used for task dates everywhere they
// leave the process (database text, interchange files, CLI flags).
const DateLayout = "2006-01-02"

// TaskRecord is one submitted task with its expense summary.
// A zero Date means the stored date could not be parsed.
type TaskRecord struct {
	ID               int
	Username         string
	Date             time.Time
	TaskAssignedBy   string
	WorkAssignment   WorkAssignment
	AssignedToPerson string
	TaskDescription  string
	WorkDoneToday    string
	TaskStatus       TaskStatus
	WorkPlanNextDay  string
	ExpensePurpose   string
	OtherPurpose     string
	Amount           decimal.Decimal
	CreatedAt        time.Time
}

// HasDate reports whether the record carries a usable date
func (t *TaskRecord) HasDate() bool {
	return !t.Date.IsZero()
}

// DateString formats the date as YYYY-MM-DD, or "" for a null date
func (t *TaskRecord) DateString() string {
	if !t.HasDate() {
		return ""
	}
	return t.Date.Format(DateLayout)
}

// NoExpense reports whether the task was submitted with the "none" override
func (t *TaskRecord) NoExpense() bool {
	return t.ExpensePurpose == ExpenseNone
}

// ParseDate parses a YYYY-MM-DD date. A full timestamp with a zero clock
// (as written by spreadsheet tools) is accepted too.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, s)
	if err == nil {
		return d, nil
	}
	if ts, tsErr := time.Parse("2006-01-02 15:04:05", s); tsErr == nil {
		return Day(ts), nil
	}
	return time.Time{}, err
}

// Day truncates t to its calendar day in UTC
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
