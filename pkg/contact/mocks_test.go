package contact_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dmitrymomot/formkit/pkg/contact"
	"github.com/dmitrymomot/formkit/pkg/ratelimit"
)

// MockDispatcher is a mock implementation of contact.Dispatcher.
type MockDispatcher struct {
	mock.Mock
}

func (m *MockDispatcher) Dispatch(ctx context.Context, s contact.Submission) (string, error) {
	args := m.Called(ctx, s)
	return args.String(0), args.Error(1)
}

// MockLimiter is a mock implementation of ratelimit.Limiter.
type MockLimiter struct {
	mock.Mock
}

func (m *MockLimiter) Allow(ctx context.Context, key string) (*ratelimit.Result, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ratelimit.Result), args.Error(1)
}

func (m *MockLimiter) Status(ctx context.Context, key string) (*ratelimit.Result, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ratelimit.Result), args.Error(1)
}

func (m *MockLimiter) Reset(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}
