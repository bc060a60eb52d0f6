package ratelimit

import "errors"

var (
	ErrInvalidLimit    = errors.New("ratelimit: limit must be positive")
	ErrInvalidInterval = errors.New("ratelimit: window must be positive")
	ErrKeyRequired     = errors.New("ratelimit: identity is empty")
	ErrStoreRequired   = errors.New("ratelimit: store is nil")
	// ErrStoreFailure wraps backend errors. Callers treat it as a denial.
	ErrStoreFailure = errors.New("ratelimit: store failure")
)
