// Package expense holds the cli commands that edit the in-progress expense
// form kept on the session
//
// e.g., worklog expense draft set --expense=travelling=50
package expense

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

// ExpenseCmd returns the expense parent command
func ExpenseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "expense",
		Short: "Work with expense entries",
	}

	cmd.AddCommand(DraftCmd())

	return cmd
}

// DraftCmd returns the expense draft command
func DraftCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "draft",
		Short: "Edit the expense form used by the next 'task add'",
		Long: `The expense draft lives on your session. 'worklog task add' without
expense flags submits it and then clears it.`,
	}

	cmd.AddCommand(SetCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(ClearCmd())

	return cmd
}

// outputDraft prints the draft in the selected output mode
func outputDraft(formatter *cli.OutputFormatter, draft models.ExpenseForm, currency string) error {
	if formatter.Quiet {
		reduced := draft.Reduce()
		fmt.Println(reduced.Amount.StringFixed(2))
		return nil
	}

	if formatter.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"draft":   cli.ExpenseFormJSON(draft),
		})
	}

	fmt.Println(styles.RenderCard(draftCard(draft, currency)))
	return nil
}

func draftCard(draft models.ExpenseForm, currency string) string {
	title := styles.TitleStyle.Render("Expense draft")
	switch {
	case draft.None:
		return title + "\n" + styles.ValueStyle.Render("No expense")
	case draft.IsEmpty():
		return title + "\n" + styles.SubtitleStyle.Render("Nothing entered yet")
	}

	content := title
	for _, c := range models.ExpenseCategories {
		if !draft.Selected(c) {
			continue
		}
		content += "\n" + styles.LabelStyle.Render(string(c)+":") + " " +
			styles.AmountStyle.Render(currency+draft.AmountFor(c).StringFixed(2))
	}
	if draft.OtherPurpose != "" {
		content += "\n" + styles.Field("Other purpose", draft.OtherPurpose)
	}
	reduced := draft.Reduce()
	content += "\n\n" + styles.LabelStyle.Render("Total:") + " " +
		styles.AmountStyle.Render(currency+reduced.Amount.StringFixed(2))
	return content
}

// withSession runs fn with the CLI and the current session, reporting
// failures through formatter
func withSession(cmd *cobra.Command, formatter *cli.OutputFormatter, fn func(*cli.CLI, *models.Session) error) error {
	ctx := cmd.Context()

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
	return fn(cliInstance, sess)
}
