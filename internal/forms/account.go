package forms

import (
	"errors"
	"strings"

	"charm.land/huh/v2"
	authservice "github.com/thenoetrevino/worklog/internal/services/auth"
)

func required(name string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errors.New(name + " is required")
		}
		return nil
	}
}

// CreateRegisterForm creates the sign-up form. Values are written through
// req as the user types.
func CreateRegisterForm(req *authservice.RegisterRequest) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("username").
				Title("Username").
				Value(&req.Username).
				Validate(required("username")),

			huh.NewInput().
				Key("email").
				Title("Email").
				Placeholder("name@example.com").
				Value(&req.Email),

			huh.NewInput().
				Key("contact").
				Title("Contact number").
				Value(&req.ContactNo),

			huh.NewInput().
				Key("password").
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&req.Password).
				Validate(required("password")),
		),
	)
}

// CreateLoginForm creates the log-in form
func CreateLoginForm(username, password *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("username").
				Title("Username").
				Value(username).
				Validate(required("username")),

			huh.NewInput().
				Key("password").
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(password),
		),
	)
}
