// Package tutorial holds the cli command that prints the quickstart guide
package tutorial

import (
	_ "embed"
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/worklog/internal/cli"
	"github.com/thenoetrevino/worklog/internal/config"
	"github.com/thenoetrevino/worklog/internal/render"
)

//go:embed tutorial.md
var tutorialContent string

// TutorialCmd returns the tutorial command
func TutorialCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tutorial",
		Short: "Show the quickstart guide",
		Long:  "Show a short guide to the daily workflow, rendered for the terminal.",
		RunE:  runTutorial,
	}

	cmd.Flags().Int("width", 80, "Word wrap width")
	cmd.Flags().Bool("raw", false, "Print the markdown source")

	return cmd
}

func runTutorial(cmd *cobra.Command, args []string) error {
	width, _ := cmd.Flags().GetInt("width")
	raw, _ := cmd.Flags().GetBool("raw")

	if raw {
		fmt.Print(tutorialContent)
		return nil
	}

	style := config.DefaultColorScheme().Markdown
	if cliInstance, err := cli.GetCLIFromContext(cmd.Context()); err == nil {
		style = cliInstance.Config().ColorScheme.Markdown
		if err := cliInstance.Close(); err != nil {
			log.Printf("Error closing CLI: %v", err)
		}
	}

	fmt.Print(render.Markdown(tutorialContent, style, width))
	return nil
}
