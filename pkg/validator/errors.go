package validator

import "errors"

var (
	// ErrValidationFailed is matched by every ValidationErrors value.
	ErrValidationFailed = errors.New("validation failed")

	// ErrInvalidRegistry is returned when a domain registry document cannot be parsed.
	ErrInvalidRegistry = errors.New("invalid domain registry")
)
