package binder

import "errors"

var (
	ErrUnsupportedMediaType = errors.New("binder: unsupported content type")
	ErrFailedToParseJSON    = errors.New("binder: malformed json body")
	ErrFailedToParseForm    = errors.New("binder: malformed form body")
	ErrBodyTooLarge         = errors.New("binder: body exceeds size limit")
	// ErrInvalidTarget means v is not a non-nil pointer to a struct or map[string]any.
	ErrInvalidTarget = errors.New("binder: invalid bind target")
)
