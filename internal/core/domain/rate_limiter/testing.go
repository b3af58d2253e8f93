package ratelimiter

import (
	"context"
	"sync"
)

type FakeRateLimiter struct {
	IsAllowed   bool
	Err         error
	CheckedKeys []string
	lock        sync.Mutex
}

func NewFakeRateLimiter(isAllowed bool) *FakeRateLimiter {
	return &FakeRateLimiter{IsAllowed: isAllowed}
}

func (rl *FakeRateLimiter) CheckLimit(ctx context.Context, key string, limit Limit) (Result, error) {
	rl.lock.Lock()
	rl.CheckedKeys = append(rl.CheckedKeys, key)
	rl.lock.Unlock()
	if rl.Err != nil {
		return NotAllowed(), rl.Err
	}
	if rl.IsAllowed {
		return Allowed(), nil
	}
	return NotAllowed(), nil
}
