package account

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/worklog/internal/cli"
	"github.com/thenoetrevino/worklog/internal/cli/styles"
)

// WhoamiCmd returns the whoami command
func WhoamiCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in user",
		RunE:  runWhoami,
	}

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (username only)")

	return cmd
}

func runWhoami(cmd *cobra.Command, args []string) error {
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

	user, err := cliInstance.App.Repo().GetUser(ctx, sess.Username)
	if err != nil {
		return formatter.FailClassified(err)
	}

	if quietMode {
		fmt.Println(user.Username)
		return nil
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"user": map[string]interface{}{
				"username":   user.Username,
				"email":      user.Email,
				"contact_no": user.ContactNo,
			},
			"session_started": sess.CreatedAt,
		})
	}

	fmt.Println(styles.Field("User", user.Username))
	if user.Email != "" {
		fmt.Println(styles.Field("Email", user.Email))
	}
	if user.ContactNo != "" {
		fmt.Println(styles.Field("Contact", user.ContactNo))
	}
	return nil
}
