package task

import "errors"

// Task-related errors
var (
	// Validation errors
	ErrMissingUsername   = errors.New("task owner cannot be empty")
	ErrMissingDate       = errors.New("task date is required")
	ErrInvalidAssignment = errors.New("invalid work assignment")
	ErrMissingAssignee   = errors.New("assigned-to person is required when work is assigned to someone else")
	ErrInvalidStatus     = errors.New("invalid task status")
	ErrInvalidExpense    = errors.New("invalid expense entry")

	// Business logic errors
	ErrUnknownUser = errors.New("user does not exist")
)
