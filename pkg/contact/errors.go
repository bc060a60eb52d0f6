package contact

import "errors"

var (
	ErrDispatch         = errors.New("contact: dispatch failed")
	ErrDispatchTimeout  = errors.New("contact: dispatch timed out")
	ErrLimiterRequired  = errors.New("contact: rate limiter is required")
	ErrDispatcherNeeded = errors.New("contact: dispatcher is required")
	ErrPanic            = errors.New("contact: recovered panic")
)
