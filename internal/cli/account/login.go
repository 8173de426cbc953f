package account

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"charm.land/huh/v2"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/worklog/internal/cli"
	"github.com/thenoetrevino/worklog/internal/forms"
	"github.com/thenoetrevino/worklog/internal/session"
	"github.com/thenoetrevino/worklog/internal/user"
)

// LoginCmd returns the login command
func LoginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and start a session",
		Long: `Check the credentials and keep a session token for later commands.

Examples:
  worklog login --username=alice --password=secret
  echo secret | worklog login --username=alice --password=-
  worklog login -i
`,
		RunE: runLogin,
	}

	cmd.Flags().String("username", "", "Username (required unless -i)")
	cmd.Flags().String("password", "", "Password (use - for stdin)")
	cmd.Flags().BoolP("interactive", "i", false, "Fill in the form interactively")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output")

	return cmd
}

func runLogin(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	username, _ := cmd.Flags().GetString("username")
	password, _ := cmd.Flags().GetString("password")
	interactive, _ := cmd.Flags().GetBool("interactive")
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

	password, err = cli.StdinValue(password)
	if err != nil {
		return formatter.Fail("STDIN_READ_ERROR", cli.ExitError, err, "")
	}

	if interactive {
		if username == "" {
			username = user.SuggestedUsername()
		}
		form := forms.CreateLoginForm(&username, &password).WithTheme(forms.CreateTheme(cliInstance.Config().ColorScheme))
		if err := form.Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				fmt.Println("Cancelled")
				return nil
			}
			return formatter.Fail("FORM_ERROR", cli.ExitError, err, "")
		}
	} else if username == "" {
		return formatter.Fail("USAGE_ERROR", cli.ExitUsage,
			errors.New("--username is required"), "Pass --username or use -i")
	}

	sess, err := cliInstance.App.AuthService.StartSession(ctx, username, password)
	if err != nil {
		return formatter.FailClassified(err)
	}

	sessionPath := cliInstance.Config().SessionPath()
	if previous, err := session.Load(sessionPath); err == nil {
		if err := cliInstance.App.AuthService.Logout(ctx, previous.Token); err != nil {
			log.Printf("Error ending previous session: %v", err)
		}
	}

	if err := session.Save(sessionPath, &session.File{
		Token:      sess.Token,
		Username:   sess.Username,
		LoggedInAt: time.Now(),
	}); err != nil {
		return formatter.Fail("SESSION_WRITE_ERROR", cli.ExitError, err, "")
	}

	if quietMode {
		return nil
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success":  true,
			"username": sess.Username,
		})
	}

	fmt.Printf("✓ Logged in as '%s'\n", sess.Username)
	return nil
}
