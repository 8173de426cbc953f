package expense

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/worklog/internal/cli"
	"github.com/thenoetrevino/worklog/internal/models"
)

// SetCmd returns the expense draft set subcommand
func SetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Tick categories and enter amounts",
		Long: `Update the expense draft. Categories given with --expense are ticked with
their amounts; categories not mentioned keep their current state.

Examples:
  worklog expense draft set --expense=travelling=50
  worklog expense draft set --expense=food=20
  worklog expense draft set --expense=other=15 --other-purpose=parking
  worklog expense draft set --unset=food
  worklog expense draft set --none
`,
		RunE: runSet,
	}

	cmd.Flags().String("expense", "", "Categories as category=amount,...")
	cmd.Flags().String("other-purpose", "", "Purpose of the 'other' expense")
	cmd.Flags().StringSlice("unset", nil, "Categories to untick")
	cmd.Flags().Bool("none", false, "No expense (clears every category)")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (total only)")

	return cmd
}

func runSet(cmd *cobra.Command, args []string) error {
	expenseStr, _ := cmd.Flags().GetString("expense")
	otherPurpose, _ := cmd.Flags().GetString("other-purpose")
	unset, _ := cmd.Flags().GetStringSlice("unset")
	none, _ := cmd.Flags().GetBool("none")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	if none && (strings.TrimSpace(expenseStr) != "" || otherPurpose != "") {
		return formatter.Fail("USAGE_ERROR", cli.ExitUsage,
			errors.New("--none cannot be combined with --expense or --other-purpose"), "")
	}

	var changes models.ExpenseForm
	if expenseStr != "" {
		var err error
		changes, err = cli.ParseExpenseFlag(expenseStr)
		if err != nil {
			return formatter.Fail("USAGE_ERROR", cli.ExitUsage, err, "Use category=amount, e.g. --expense=travelling=50")
		}
	}
	var unticked []models.ExpenseCategory
	for _, name := range unset {
		c, err := models.ParseExpenseCategory(strings.ToLower(strings.TrimSpace(name)))
		if err != nil {
			return formatter.Fail("USAGE_ERROR", cli.ExitUsage, err, "")
		}
		unticked = append(unticked, c)
	}

	return withSession(cmd, formatter, func(cliInstance *cli.CLI, sess *models.Session) error {
		draft := sess.ExpenseDraft
		if none {
			draft.SetNone(true)
		}
		for _, c := range models.ExpenseCategories {
			if changes.Selected(c) {
				draft.Select(c, changes.AmountFor(c))
			}
		}
		for _, c := range unticked {
			draft.Deselect(c)
		}
		if otherPurpose != "" {
			draft.OtherPurpose = otherPurpose
		}

		for _, c := range models.ExpenseCategories {
			if draft.Selected(c) && draft.AmountFor(c).IsNegative() {
				return formatter.FailClassified(models.ErrNegativeAmount)
			}
		}

		if err := cliInstance.App.AuthService.SaveDraft(cmd.Context(), sess.Token, draft); err != nil {
			return formatter.FailClassified(err)
		}
		return outputDraft(formatter, draft, cliInstance.Config().Currency)
	})
}
