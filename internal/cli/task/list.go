package task

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/worklog/internal/cli"
	"github.com/thenoetrevino/worklog/internal/cli/styles"
	"github.com/thenoetrevino/worklog/internal/models"
)

// ListCmd returns the task list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your tasks",
		Long:  "List every task of the logged-in user, newest first. Tasks without a date come last.",
		RunE:  runList,
	}

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

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

	tasks, err := cliInstance.App.TaskService.LoadFor(ctx, sess.Username)
	if err != nil {
		return formatter.Fail("TASK_FETCH_ERROR", cli.ExitError, err, "")
	}

	if quietMode {
		for _, t := range tasks {
			fmt.Printf("%d\n", t.ID)
		}
		return nil
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"tasks":   cli.TasksJSON(tasks),
		})
	}

	if len(tasks) == 0 {
		fmt.Println("No tasks found")
		return nil
	}

	fmt.Printf("Found %d tasks:\n\n", len(tasks))
	currency := cliInstance.Config().Currency
	for _, t := range tasks {
		fmt.Printf("  [%d] %s  %s  %s\n", t.ID, dateLabel(t), statusLabel(t.TaskStatus),
			styles.ValueStyle.Render(t.TaskDescription))
		if !t.NoExpense() {
			fmt.Printf("       %s %s\n", t.ExpensePurpose, styles.AmountStyle.Render(currency+t.Amount.StringFixed(2)))
		}
	}

	return nil
}

func dateLabel(t *models.TaskRecord) string {
	if !t.HasDate() {
		return "no date   "
	}
	return t.DateString()
}

func statusLabel(s models.TaskStatus) string {
	if s == models.StatusUnset {
		return styles.SubtitleStyle.Render("unset")
	}
	return styles.LabelStyle.Render(string(s))
}
