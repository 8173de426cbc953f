package account

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/worklog/internal/cli"
	"github.com/thenoetrevino/worklog/internal/session"
)

// LogoutCmd returns the logout command
func LogoutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logout",
		Short: "End the current session",
		Long:  "End the current session. Logging out when nobody is logged in is not an error.",
		RunE:  runLogout,
	}

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output")

	return cmd
}

func runLogout(cmd *cobra.Command, args []string) error {
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

	sessionPath := cliInstance.Config().SessionPath()
	file, err := session.Load(sessionPath)
	switch {
	case errors.Is(err, session.ErrNoSession):
		file = nil
	case err != nil:
		return formatter.Fail("SESSION_READ_ERROR", cli.ExitDataErr, err,
			fmt.Sprintf("Remove %s and log in again", sessionPath))
	}

	username := ""
	if file != nil {
		username = file.Username
		if err := cliInstance.App.AuthService.Logout(ctx, file.Token); err != nil {
			return formatter.FailClassified(err)
		}
	}
	if err := session.Clear(sessionPath); err != nil {
		return formatter.Fail("SESSION_WRITE_ERROR", cli.ExitError, err, "")
	}

	if quietMode {
		return nil
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success":  true,
			"username": username,
		})
	}

	if username == "" {
		fmt.Println("Not logged in")
		return nil
	}
	fmt.Printf("✓ Logged out '%s'\n", username)
	return nil
}
