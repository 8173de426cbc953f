package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/worklog/internal/cli"
	"github.com/thenoetrevino/worklog/internal/cli/account"
	"github.com/thenoetrevino/worklog/internal/cli/dashboard"
	"github.com/thenoetrevino/worklog/internal/cli/data"
	"github.com/thenoetrevino/worklog/internal/cli/expense"
	"github.com/thenoetrevino/worklog/internal/cli/task"
	"github.com/thenoetrevino/worklog/internal/cli/tutorial"
)

// NewRootCmd builds the worklog command tree
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "worklog",
		Short: "Worklog - daily tasks and expenses from the terminal",
		Long: `Worklog records what you worked on each day and what you spent doing it.
Register, log in, submit tasks with their expenses and check the dashboard.`,
		// Commands print their own errors through the output formatter
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		cmd.PrintErrf("Error: %v\n", err)
		cmd.PrintErrf("Run '%s --help' for usage.\n", cmd.CommandPath())
		return cli.Exit(cli.ExitUsage, err)
	})

	rootCmd.AddCommand(account.RegisterCmd())
	rootCmd.AddCommand(account.LoginCmd())
	rootCmd.AddCommand(account.LogoutCmd())
	rootCmd.AddCommand(account.WhoamiCmd())
	rootCmd.AddCommand(task.TaskCmd())
	rootCmd.AddCommand(expense.ExpenseCmd())
	rootCmd.AddCommand(dashboard.DashboardCmd())
	rootCmd.AddCommand(data.DataCmd())
	rootCmd.AddCommand(tutorial.TutorialCmd())

	return rootCmd
}

// Execute runs the command tree with ctx
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}
