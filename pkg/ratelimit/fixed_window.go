package ratelimit

import (
	"context"
	"fmt"
	"time"
)

// Default quota: three submissions per identity every fifteen minutes.
const (
	DefaultLimit  = 3
	DefaultWindow = 15 * time.Minute
)

// FixedWindow admits at most limit requests per key in a window that starts
// with the first request and resets once it has fully elapsed.
type FixedWindow struct {
	store  Store
	limit  int
	window time.Duration
	now    func() time.Time
}

// FixedWindowOption configures a FixedWindow.
type FixedWindowOption func(*FixedWindow)

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) FixedWindowOption {
	return func(fw *FixedWindow) {
		if now != nil {
			fw.now = now
		}
	}
}

// NewFixedWindow creates a new fixed window rate limiter.
func NewFixedWindow(store Store, limit int, window time.Duration, opts ...FixedWindowOption) (*FixedWindow, error) {
	if store == nil {
		return nil, ErrStoreRequired
	}
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}
	if window <= 0 {
		return nil, ErrInvalidInterval
	}

	fw := &FixedWindow{
		store:  store,
		limit:  limit,
		window: window,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(fw)
	}

	return fw, nil
}

// Allow records one request for key if the quota permits it.
func (fw *FixedWindow) Allow(ctx context.Context, key string) (*Result, error) {
	if key == "" {
		return nil, ErrKeyRequired
	}

	entry, admitted, err := fw.store.CheckAndRecord(ctx, StorageKey(key), fw.now(), fw.limit, fw.window)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStoreFailure, err)
	}

	return &Result{
		Allowed:   admitted,
		Limit:     fw.limit,
		Remaining: max(0, fw.limit-entry.Count),
		ResetAt:   entry.WindowStart.Add(fw.window),
	}, nil
}

// Status returns the current quota for key without recording a request.
func (fw *FixedWindow) Status(ctx context.Context, key string) (*Result, error) {
	if key == "" {
		return nil, ErrKeyRequired
	}

	now := fw.now()
	entry, found, err := fw.store.Get(ctx, StorageKey(key))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStoreFailure, err)
	}

	if !found || entry.Expired(now, fw.window) {
		return &Result{
			Allowed:   true,
			Limit:     fw.limit,
			Remaining: fw.limit,
			ResetAt:   now.Add(fw.window),
		}, nil
	}

	remaining := max(0, fw.limit-entry.Count)
	return &Result{
		Allowed:   remaining > 0,
		Limit:     fw.limit,
		Remaining: remaining,
		ResetAt:   entry.WindowStart.Add(fw.window),
	}, nil
}

// Reset resets the rate limit for the given key.
func (fw *FixedWindow) Reset(ctx context.Context, key string) error {
	if key == "" {
		return ErrKeyRequired
	}

	if err := fw.store.Delete(ctx, StorageKey(key)); err != nil {
		return fmt.Errorf("%w: %w", ErrStoreFailure, err)
	}
	return nil
}
