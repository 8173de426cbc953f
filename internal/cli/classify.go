package cli

import (
	"errors"

	"github.com/thenoetrevino/worklog/internal/models"
	"github.com/thenoetrevino/worklog/internal/services/auth"
	"github.com/thenoetrevino/worklog/internal/services/task"
	"github.com/thenoetrevino/worklog/internal/session"
	"github.com/thenoetrevino/worklog/internal/tabular"
)

// Classification is how a command error is reported
type Classification struct {
	Code       string
	Exit       int
	Suggestion string
}

type errorClass struct {
	targets []error
	Classification
}

var errorClasses = []errorClass{
	{
		targets: []error{auth.ErrNotLoggedIn, session.ErrNoSession},
		Classification: Classification{"NOT_LOGGED_IN", ExitAuth,
			"Log in first with 'worklog login --username <name>'"},
	},
	{
		targets:        []error{auth.ErrInvalidCredentials},
		Classification: Classification{"INVALID_CREDENTIALS", ExitAuth, ""},
	},
	{
		targets: []error{auth.ErrUsernameExists},
		Classification: Classification{"USERNAME_EXISTS", ExitValidation,
			"Pick another username or log in with the existing one"},
	},
	{
		targets: []error{task.ErrUnknownUser},
		Classification: Classification{"USER_NOT_FOUND", ExitNotFound,
			"Register the account with 'worklog register' first"},
	},
	{
		targets:        []error{tabular.ErrTableAbsent},
		Classification: Classification{"FILE_NOT_FOUND", ExitNotFound, ""},
	},
	{
		targets: []error{tabular.ErrTableCorrupt, tabular.ErrUnsupportedFormat},
		Classification: Classification{"DATA_ERROR", ExitDataErr,
			"Interchange files must be .csv or .xlsx with a header row"},
	},
	{
		targets: []error{
			auth.ErrEmptyUsername, auth.ErrUsernameTooLong, auth.ErrUsernameWhitespace,
			auth.ErrEmptyPassword, auth.ErrPasswordTooShort, auth.ErrPasswordTooLong,
			auth.ErrInvalidEmail, auth.ErrInvalidContact,
			task.ErrMissingUsername, task.ErrMissingDate, task.ErrInvalidAssignment,
			task.ErrMissingAssignee, task.ErrInvalidStatus, task.ErrInvalidExpense,
			models.ErrNegativeAmount, models.ErrMissingOtherPurpose,
		},
		Classification: Classification{"VALIDATION_ERROR", ExitValidation, ""},
	},
}

// Classify picks the error code and exit status for err
func Classify(err error) Classification {
	for _, class := range errorClasses {
		for _, target := range class.targets {
			if errors.Is(err, target) {
				return class.Classification
			}
		}
	}
	return Classification{Code: "ERROR", Exit: ExitError}
}
