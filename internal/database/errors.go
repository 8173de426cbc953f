package database

import "errors"

// Store-level errors. Services translate these into their own sentinels.
var (
	ErrUsernameExists  = errors.New("username already exists")
	ErrUserNotFound    = errors.New("user not found")
	ErrUnknownUser     = errors.New("task references an unknown user")
	ErrSessionNotFound = errors.New("session not found")
)
