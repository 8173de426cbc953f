// Package dashboard holds the cli command that summarizes the logged-in
// user's tasks and expenses
package dashboard

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/worklog/internal/cli"
	"github.com/thenoetrevino/worklog/internal/models"
	"github.com/thenoetrevino/worklog/internal/render"
)

// DashboardCmd returns the dashboard command
func DashboardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show task and expense totals with recent tasks",
		Long: `Show the total number of tasks, the total expense amount and the tasks dated
inside the recent window (30 days unless configured otherwise), newest first.

Examples:
  worklog dashboard
  worklog dashboard --as-of=2024-01-15
  worklog dashboard --json
`,
		RunE: runDashboard,
	}

	cmd.Flags().String("as-of", "", "Reference date YYYY-MM-DD (default: today)")
	cmd.Flags().Int("width", 80, "Word wrap width for the rendered dashboard")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (task count and total)")

	return cmd
}

func runDashboard(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	asOfStr, _ := cmd.Flags().GetString("as-of")
	width, _ := cmd.Flags().GetInt("width")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	asOf, err := cli.ParseDateFlag(asOfStr, time.Now())
	if err != nil {
		return formatter.Fail("USAGE_ERROR", cli.ExitUsage, err, "")
	}

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

	dash, err := cliInstance.App.TaskService.Summarize(ctx, sess.Username, asOf)
	if err != nil {
		return formatter.FailClassified(err)
	}

	if quietMode {
		fmt.Printf("%d %s\n", dash.TotalTaskCount, dash.TotalExpenseAmount.StringFixed(2))
		return nil
	}

	if jsonOutput {
		return outputJSON(dash)
	}

	cfg := cliInstance.Config()
	fmt.Print(render.Markdown(render.DashboardMarkdown(dash, cfg.Currency), cfg.ColorScheme.Markdown, width))
	return nil
}

func outputJSON(dash *models.Dashboard) error {
	return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
		"success": true,
		"dashboard": map[string]interface{}{
			"username":             dash.Username,
			"as_of":                dash.AsOf.Format(models.DateLayout),
			"window_days":          dash.WindowDays,
			"total_task_count":     dash.TotalTaskCount,
			"total_expense_amount": dash.TotalExpenseAmount.StringFixed(2),
			"recent_tasks":         cli.TasksJSON(dash.RecentTasks),
		},
	})
}
