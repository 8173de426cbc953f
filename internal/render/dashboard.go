// Package render turns dashboards and task lists into markdown and renders
// it for the terminal with glamour.
package render

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/thenoetrevino/worklog/internal/models"
)

// Money formats an amount with two decimals and the currency symbol
func Money(currency string, amount decimal.Decimal) string {
	return currency + amount.StringFixed(2)
}

// DashboardMarkdown renders the totals and one section per recent task
func DashboardMarkdown(d *models.Dashboard, currency string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Dashboard: %s\n\n", d.Username)
	fmt.Fprintf(&b, "As of %s\n\n", d.AsOf.Format(models.DateLayout))
	fmt.Fprintf(&b, "| Total tasks | Total expense |\n|---|---|\n| %d | %s |\n\n",
		d.TotalTaskCount, Money(currency, d.TotalExpenseAmount))

	fmt.Fprintf(&b, "## Recent tasks (last %d days)\n\n", d.WindowDays)
	if len(d.RecentTasks) == 0 {
		b.WriteString("_No recent tasks._\n")
		return b.String()
	}
	for _, t := range d.RecentTasks {
		b.WriteString(TaskMarkdown(t, currency))
		b.WriteString("\n")
	}
	return b.String()
}

// TaskMarkdown renders one task as a heading plus a field list
func TaskMarkdown(t *models.TaskRecord, currency string) string {
	var b strings.Builder

	date := t.DateString()
	if date == "" {
		date = "no date"
	}
	status := string(t.TaskStatus)
	if status == "" {
		status = "unset"
	}
	fmt.Fprintf(&b, "### %s · %s\n\n", date, status)

	field := func(label, value string) {
		if strings.TrimSpace(value) != "" {
			fmt.Fprintf(&b, "- **%s:** %s\n", label, oneLine(value))
		}
	}
	field("Assigned by", t.TaskAssignedBy)
	if t.WorkAssignment == models.AssignmentOther {
		field("Assigned to", t.AssignedToPerson)
	}
	field("Description", t.TaskDescription)
	field("Work done", t.WorkDoneToday)
	field("Plan for next day", t.WorkPlanNextDay)

	if t.NoExpense() {
		field("Expense", "none")
	} else {
		expense := fmt.Sprintf("%s (%s)", Money(currency, t.Amount), t.ExpensePurpose)
		if t.OtherPurpose != "" {
			expense += ", other: " + t.OtherPurpose
		}
		field("Expense", expense)
	}
	return b.String()
}

// oneLine keeps multi-line answers inside their list item
func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
