package config

import (
	"errors"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

var (
	mu     sync.Mutex
	loaded = map[reflect.Type]any{}

	dotenvOnce sync.Once

	validate = validator.New(validator.WithRequiredStructEnabled())
)

// Load fills v from the process environment and checks its `validate` tags.
//
// The first successful Load of a type is cached and copied into later calls,
// so every package reading, say, ratelimit.Config sees the same values. A
// failed Load is not cached. The default ./.env file, if present, is read
// once before the first parse.
//
//	var cfg contact.Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	dotenvOnce.Do(func() { _ = godotenv.Load() })

	key := reflect.TypeFor[T]()

	mu.Lock()
	defer mu.Unlock()

	if cached, ok := loaded[key]; ok {
		*v = cached.(T)
		return nil
	}

	var fresh T
	if err := env.Parse(&fresh); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	if err := Validate(&fresh); err != nil {
		return err
	}

	loaded[key] = fresh
	*v = fresh
	return nil
}

// Validate checks the `validate` struct tags of v.
func Validate(v any) error {
	if err := validate.Struct(v); err != nil {
		return errors.Join(ErrInvalidConfig, err)
	}
	return nil
}

// LoadEnv reads dotenv files into the process environment. Later files win
// over earlier ones and over variables already set. Without arguments it
// reads ./.env and keeps existing variables.
func LoadEnv(paths ...string) error {
	var err error
	if len(paths) == 0 {
		err = godotenv.Load()
	} else {
		err = godotenv.Overload(paths...)
	}
	if err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// ResetCache drops every cached configuration.
func ResetCache() {
	mu.Lock()
	defer mu.Unlock()
	clear(loaded)
}
