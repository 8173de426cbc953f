// Package data holds the cli commands that move users and tasks in and out
// of CSV or XLSX files
package data

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/worklog/internal/app"
	"github.com/thenoetrevino/worklog/internal/cli"
)

// DataCmd returns the data parent command
func DataCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "data",
		Short: "Export or import users and tasks as CSV or XLSX",
	}

	cmd.AddCommand(ExportCmd())
	cmd.AddCommand(ImportCmd())

	return cmd
}

func addFileFlags(cmd *cobra.Command) {
	cmd.Flags().String("users", "", "Users file (.csv or .xlsx)")
	cmd.Flags().String("tasks", "", "Tasks file (.csv or .xlsx)")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output")
}

type transferFunc func(a *app.App, ctx context.Context, usersPath, tasksPath string) (*app.TransferResult, error)

// runTransfer reads the file flags, runs fn and reports the counts
func runTransfer(cmd *cobra.Command, verb string, fn transferFunc) error {
	ctx := cmd.Context()

	usersPath, _ := cmd.Flags().GetString("users")
	tasksPath, _ := cmd.Flags().GetString("tasks")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	if usersPath == "" && tasksPath == "" {
		return formatter.Fail("USAGE_ERROR", cli.ExitUsage,
			errors.New("at least one of --users or --tasks is required"), "")
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

	result, err := fn(cliInstance.App, ctx, usersPath, tasksPath)
	if err != nil {
		return formatter.FailClassified(err)
	}

	if quietMode {
		return nil
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"result":  result,
		})
	}

	if usersPath != "" {
		fmt.Printf("✓ %s %d users (%s)", verb, result.UsersWritten, usersPath)
		if result.UsersSkipped > 0 {
			fmt.Printf(", %d skipped", result.UsersSkipped)
		}
		fmt.Println()
	}
	if tasksPath != "" {
		fmt.Printf("✓ %s %d tasks (%s)", verb, result.TasksWritten, tasksPath)
		if result.TasksSkipped > 0 {
			fmt.Printf(", %d skipped", result.TasksSkipped)
		}
		fmt.Println()
	}
	return nil
}

// ExportCmd returns the data export subcommand
func ExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write every user and task to files",
		Long: `Write every user and task to CSV or XLSX files, picked by extension.
Passwords are exported as bcrypt hashes.

Examples:
  worklog data export --users=users.xlsx --tasks=tasks.xlsx
  worklog data export --tasks=tasks.csv
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTransfer(cmd, "Exported", (*app.App).Export)
		},
	}
	addFileFlags(cmd)
	return cmd
}

// ImportCmd returns the data import subcommand
func ImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Load users and tasks from files",
		Long: `Load users, then tasks, from CSV or XLSX files. Existing usernames are
skipped, as are tasks owned by users that do not exist. Plaintext passwords
are hashed on the way in.

Examples:
  worklog data import --users=users.xlsx --tasks=tasks.xlsx
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTransfer(cmd, "Imported", (*app.App).Import)
		},
	}
	addFileFlags(cmd)
	return cmd
}
