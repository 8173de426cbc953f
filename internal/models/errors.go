package models

import "errors"

// Domain errors shared by the store and service layers
var (
	// ErrNegativeAmount indicates an expense sub-amount below zero
	ErrNegativeAmount = errors.New("expense amount cannot be negative")

	// ErrMissingOtherPurpose indicates "other" was selected without a purpose
	ErrMissingOtherPurpose = errors.New("other expense requires a purpose")
)
