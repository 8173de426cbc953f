package cli

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: Database errors, unexpected failures, or any error that
	// doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags, invalid flag combinations,
	// or when the user needs to provide different arguments.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: Unknown user, missing interchange file.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: Corrupt interchange files, unreadable session file.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: Invalid status or assignment, negative amounts, bad email,
	// or any case where input fails validation rules.
	ExitValidation = 5

	// ExitAuth indicates the user is not logged in or gave wrong credentials.
	ExitAuth = 6
)
