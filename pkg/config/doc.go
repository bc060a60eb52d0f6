// Package config loads typed settings from environment variables.
//
// Each package owns a Config struct tagged for github.com/caarlos0/env/v11
// and github.com/go-playground/validator/v10:
//
//	type Config struct {
//	    MaxRequests int           `env:"RATE_LIMIT_MAX_REQUESTS" envDefault:"3" validate:"gte=1"`
//	    Window      time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"15m" validate:"gt=0"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
// Load parses a type once per process and serves copies afterwards. Dotenv
// files are read with github.com/joho/godotenv: ./.env implicitly, or an
// explicit list through LoadEnv before the first Load.
//
// Errors wrap ErrParsingConfig, ErrInvalidConfig, ErrLoadingEnvFile or
// ErrNilPointer. Tests that change the environment for an already loaded type
// call ResetCache.
package config
