package email

import "errors"

var (
	// ErrInvalidConfig is returned by sender constructors for unusable settings.
	ErrInvalidConfig = errors.New("email: invalid sender configuration")
	// ErrInvalidParams is returned before any network call when a message is incomplete.
	ErrInvalidParams = errors.New("email: invalid message")
	// ErrFailedToSendEmail wraps transport and provider failures.
	ErrFailedToSendEmail = errors.New("email: delivery failed")
)
