package expense

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/worklog/internal/cli"
	"github.com/thenoetrevino/worklog/internal/models"
)

// ShowCmd returns the expense draft show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the expense draft and its running total",
		RunE:  runShow,
	}

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (total only)")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	return withSession(cmd, formatter, func(cliInstance *cli.CLI, sess *models.Session) error {
		return outputDraft(formatter, sess.ExpenseDraft, cliInstance.Config().Currency)
	})
}
