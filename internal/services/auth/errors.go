package auth

import "errors"

// Auth-related errors
var (
	// Validation errors
	ErrEmptyUsername      = errors.New("username cannot be empty")
	ErrUsernameTooLong    = errors.New("username cannot exceed 64 characters")
	ErrUsernameWhitespace = errors.New("username cannot start or end with whitespace")
	ErrEmptyPassword      = errors.New("password cannot be empty")
	ErrPasswordTooShort   = errors.New("password is too short")
	ErrPasswordTooLong    = errors.New("password cannot exceed 72 bytes")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrInvalidContact     = errors.New("contact number may only contain digits, spaces, +, - and parentheses")

	// Business logic errors
	ErrUsernameExists     = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid login details")
	ErrNotLoggedIn        = errors.New("not logged in")
)
