package expense

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/worklog/internal/cli"
	"github.com/thenoetrevino/worklog/internal/models"
)

// ClearCmd returns the expense draft clear subcommand
func ClearCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Discard the expense draft",
		RunE:  runClear,
	}

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output")

	return cmd
}

func runClear(cmd *cobra.Command, args []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	return withSession(cmd, formatter, func(cliInstance *cli.CLI, sess *models.Session) error {
		var empty models.ExpenseForm
		if err := cliInstance.App.AuthService.SaveDraft(cmd.Context(), sess.Token, empty); err != nil {
			return formatter.FailClassified(err)
		}
		return outputDraft(formatter, empty, cliInstance.Config().Currency)
	})
}
