package ratelimiter

import (
	"context"
	"errors"
	"time"
)

// ErrRateLimitExceeded reports a rejected request. It is not a store
// failure: callers answer it with 429, not 500.
var ErrRateLimitExceeded = errors.New("rate limit exceeded")

// Limit describes a fixed-window quota: at most Value requests within a
// window of the given duration. The window is anchored at the first request
// after a reset, not at calendar boundaries, so up to 2*Value requests can
// pass around a window rollover.
type Limit struct {
	Value  uint32
	Window time.Duration
}

type Result struct {
	IsAllowed bool
}

func Allowed() Result {
	return Result{IsAllowed: true}
}

func NotAllowed() Result {
	return Result{IsAllowed: false}
}

// RateLimiter gates requests against a shared counter store.
//
// CheckLimit returns a non-nil error only when the counter store itself
// failed (unreachable, timed out, returned garbage). Callers must treat that
// as an internal failure and deny the gated operation: the limiter fails
// closed, never open.
type RateLimiter interface {
	CheckLimit(ctx context.Context, key string, limit Limit) (Result, error)
}
