package task

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"charm.land/huh/v2"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/worklog/internal/cli"
	"github.com/thenoetrevino/worklog/internal/forms"
	"github.com/thenoetrevino/worklog/internal/models"
	taskservice "github.com/thenoetrevino/worklog/internal/services/task"
)

// AddCmd returns the task add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Submit a task for the logged-in user",
		Long: `Submit a daily task. The expense entry comes from --expense/--no-expense
when given, otherwise from the session's expense draft (see 'worklog expense draft').

Examples:
  # Minimal
  worklog task add --description="Site visit"

  # With expenses
  worklog task add --date=2024-01-10 --description="Client meeting" \
    --expense=travelling=50,food=20

  # Other expense needs a purpose
  worklog task add --expense=other=15 --other-purpose=parking

  # Interactive form
  worklog task add -i
`,
		RunE: runAdd,
	}

	// Task fields
	cmd.Flags().String("date", "", "Task date YYYY-MM-DD (default: today)")
	cmd.Flags().String("assigned-by", "", "Who assigned the task")
	cmd.Flags().String("assignment", string(models.AssignmentSelf), "Work assignment: self, other")
	cmd.Flags().String("assigned-to", "", "Assignee (required with --assignment=other)")
	cmd.Flags().String("description", "", "Task description")
	cmd.Flags().String("work-done", "", "Work done today")
	cmd.Flags().String("status", string(models.StatusPending), "Task status: pending, in_progress, completed")
	cmd.Flags().String("next-day", "", "Work plan for next day")

	// Expense fields
	cmd.Flags().String("expense", "", "Expenses as category=amount,... (travelling, mobile_recharge, food, other)")
	cmd.Flags().String("other-purpose", "", "Purpose of the 'other' expense")
	cmd.Flags().Bool("no-expense", false, "No expense incurred")

	cmd.Flags().BoolP("interactive", "i", false, "Fill in the form interactively")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	interactive, _ := cmd.Flags().GetBool("interactive")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		if fmtErr := formatter.Error("INITIALIZATION_ERROR", err.Error()); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		return cli.Exit(cli.ExitError, err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			log.Printf("Error closing CLI: %v", err)
		}
	}()

	sess, err := cliInstance.RequireSession(ctx)
	if err != nil {
		return formatter.FailClassified(err)
	}

	var (
		req       taskservice.SubmitTaskRequest
		usedDraft bool
	)
	if interactive {
		values := forms.NewTaskValues(time.Now(), sess.ExpenseDraft)
		form := forms.CreateTaskForm(values).WithTheme(forms.CreateTheme(cliInstance.Config().ColorScheme))
		if err := form.Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				fmt.Println("Cancelled")
				return nil
			}
			return formatter.Fail("FORM_ERROR", cli.ExitError, err, "")
		}
		req, err = values.ToRequest(sess.Username)
		usedDraft = true
		if err != nil {
			return formatter.Fail("VALIDATION_ERROR", cli.ExitValidation, err, "")
		}
	} else {
		req, usedDraft, err = requestFromFlags(cmd, sess)
		if err != nil {
			return formatter.Fail("USAGE_ERROR", cli.ExitUsage, err, "Run 'worklog task add --help' for the flag formats")
		}
	}

	task, err := cliInstance.App.TaskService.Submit(ctx, req)
	if err != nil {
		return formatter.FailClassified(err)
	}

	// The draft has been consumed by this submission
	if usedDraft && !sess.ExpenseDraft.IsEmpty() {
		if err := cliInstance.App.AuthService.SaveDraft(ctx, sess.Token, models.ExpenseForm{}); err != nil {
			log.Printf("Error clearing expense draft: %v", err)
		}
	}

	if quietMode {
		fmt.Printf("%d\n", task.ID)
		return nil
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"task":    cli.TaskJSON(task),
		})
	}

	fmt.Printf("✓ Task %d submitted for %s (%s)\n", task.ID, task.DateString(), expenseSummary(task, cliInstance.Config().Currency))
	return nil
}

// requestFromFlags builds the submit request from the command flags. When no
// expense flag is given the session's draft is used, and usedDraft reports it.
func requestFromFlags(cmd *cobra.Command, sess *models.Session) (req taskservice.SubmitTaskRequest, usedDraft bool, err error) {
	dateStr, _ := cmd.Flags().GetString("date")
	assignedBy, _ := cmd.Flags().GetString("assigned-by")
	assignment, _ := cmd.Flags().GetString("assignment")
	assignedTo, _ := cmd.Flags().GetString("assigned-to")
	description, _ := cmd.Flags().GetString("description")
	workDone, _ := cmd.Flags().GetString("work-done")
	status, _ := cmd.Flags().GetString("status")
	nextDay, _ := cmd.Flags().GetString("next-day")
	expenseStr, _ := cmd.Flags().GetString("expense")
	otherPurpose, _ := cmd.Flags().GetString("other-purpose")
	noExpense, _ := cmd.Flags().GetBool("no-expense")

	date, err := cli.ParseDateFlag(dateStr, time.Now())
	if err != nil {
		return req, false, err
	}

	if noExpense && strings.TrimSpace(expenseStr) != "" {
		return req, false, errors.New("--no-expense cannot be combined with --expense")
	}

	var expense models.ExpenseForm
	switch {
	case noExpense:
		expense.SetNone(true)
	case strings.TrimSpace(expenseStr) != "":
		expense, err = cli.ParseExpenseFlag(expenseStr)
		if err != nil {
			return req, false, err
		}
		expense.OtherPurpose = otherPurpose
	default:
		expense = sess.ExpenseDraft
		if otherPurpose != "" {
			expense.OtherPurpose = otherPurpose
		}
		usedDraft = true
	}

	return taskservice.SubmitTaskRequest{
		Username:         sess.Username,
		Date:             date,
		TaskAssignedBy:   assignedBy,
		WorkAssignment:   models.WorkAssignment(assignment),
		AssignedToPerson: assignedTo,
		TaskDescription:  description,
		WorkDoneToday:    workDone,
		TaskStatus:       models.TaskStatus(status),
		WorkPlanNextDay:  nextDay,
		Expense:          expense,
	}, usedDraft, nil
}

func expenseSummary(t *models.TaskRecord, currency string) string {
	if t.NoExpense() {
		return "no expense"
	}
	return fmt.Sprintf("%s: %s%s", t.ExpensePurpose, currency, t.Amount.StringFixed(2))
}
