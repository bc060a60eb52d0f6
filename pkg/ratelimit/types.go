package ratelimit

import (
	"context"
	"time"
)

// Limiter admits or rejects requests per identity.
type Limiter interface {
	// Allow records one request for key when the quota permits it.
	Allow(ctx context.Context, key string) (*Result, error)
	// Status reports the quota for key without recording anything.
	Status(ctx context.Context, key string) (*Result, error)
	// Reset forgets key.
	Reset(ctx context.Context, key string) error
}

// Result is the outcome of one admission decision.
type Result struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetAt   time.Time // end of the current window
}

// RetryAfter is the wait until ResetAt for a rejected request, and zero for
// an admitted one or a window that has already ended.
func (r Result) RetryAfter() time.Duration {
	if r.Allowed {
		return 0
	}
	return max(0, time.Until(r.ResetAt))
}

// Store persists fixed-window entries. Implementations apply CheckAndRecord
// atomically per key.
type Store interface {
	// CheckAndRecord decides one request for key at now. A missing or expired
	// entry restarts as {1, now} and is admitted. An entry already at limit is
	// rejected unchanged. Anything else has its count incremented. The
	// returned entry reflects the decision.
	CheckAndRecord(ctx context.Context, key string, now time.Time, limit int, window time.Duration) (entry Entry, admitted bool, err error)
	// Get may return an expired entry; callers check Expired.
	Get(ctx context.Context, key string) (entry Entry, found bool, err error)
	Delete(ctx context.Context, key string) error
}

// Entry is the window state of one identity.
type Entry struct {
	Count       int
	WindowStart time.Time
}

// Expired reports whether the window has fully elapsed at now. A request
// exactly one window after WindowStart still falls inside it.
func (e Entry) Expired(now time.Time, window time.Duration) bool {
	return now.Sub(e.WindowStart) > window
}
