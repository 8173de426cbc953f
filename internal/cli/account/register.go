// Package account holds the cli commands that manage accounts and the
// logged-in session
//
// e.g., worklog register ..., worklog login ...
package account

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"

	"charm.land/huh/v2"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/worklog/internal/cli"
	"github.com/thenoetrevino/worklog/internal/forms"
	authservice "github.com/thenoetrevino/worklog/internal/services/auth"
	"github.com/thenoetrevino/worklog/internal/user"
)

// RegisterCmd returns the register command
func RegisterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new account",
		Long: `Create a new account. Usernames are unique.

Examples:
  # Flags
  worklog register --username=alice --email=alice@example.com --password=secret

  # Read the password from stdin
  echo secret | worklog register --username=alice --password=-

  # Interactive form
  worklog register -i
`,
		RunE: runRegister,
	}

	cmd.Flags().String("username", "", "Username (required unless -i)")
	cmd.Flags().String("email", "", "Email address")
	cmd.Flags().String("contact", "", "Contact number")
	cmd.Flags().String("password", "", "Password (use - for stdin)")
	cmd.Flags().BoolP("interactive", "i", false, "Fill in the form interactively")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (username only)")

	return cmd
}

func runRegister(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	username, _ := cmd.Flags().GetString("username")
	email, _ := cmd.Flags().GetString("email")
	contact, _ := cmd.Flags().GetString("contact")
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

	req := authservice.RegisterRequest{
		Username:  username,
		Email:     email,
		ContactNo: contact,
		Password:  password,
	}

	if interactive {
		if req.Username == "" {
			req.Username = user.SuggestedUsername()
		}
		form := forms.CreateRegisterForm(&req).WithTheme(forms.CreateTheme(cliInstance.Config().ColorScheme))
		if err := form.Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				fmt.Println("Cancelled")
				return nil
			}
			return formatter.Fail("FORM_ERROR", cli.ExitError, err, "")
		}
	} else if req.Username == "" || req.Password == "" {
		return formatter.Fail("USAGE_ERROR", cli.ExitUsage,
			errors.New("--username and --password are required"),
			"Pass both flags or use -i for the interactive form")
	}

	created, err := cliInstance.App.AuthService.Register(ctx, req)
	if err != nil {
		return formatter.FailClassified(err)
	}

	if quietMode {
		fmt.Println(created.Username)
		return nil
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"user": map[string]interface{}{
				"username":   created.Username,
				"email":      created.Email,
				"contact_no": created.ContactNo,
				"created_at": created.CreatedAt,
			},
		})
	}

	fmt.Printf("✓ Registered '%s'. Log in with 'worklog login --username=%s'\n", created.Username, created.Username)
	return nil
}
