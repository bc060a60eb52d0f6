package config

import "errors"

var (
	// ErrParsingConfig wraps env parse failures: missing required variables
	// and values of the wrong type.
	ErrParsingConfig = errors.New("config: cannot parse environment")
	// ErrInvalidConfig wraps failed `validate` tags.
	ErrInvalidConfig = errors.New("config: validation failed")
	// ErrLoadingEnvFile wraps dotenv read errors.
	ErrLoadingEnvFile = errors.New("config: cannot read env file")
	ErrNilPointer     = errors.New("config: nil target")
)
