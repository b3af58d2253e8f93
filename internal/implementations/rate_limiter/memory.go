package ratelimiter

import (
	"context"
	e "quicknotes/internal/core/domain/errors"
	drl "quicknotes/internal/core/domain/rate_limiter"
	"sync"
	"time"
)

type counter struct {
	count     uint32
	expiresAt time.Time
}

// Memory is an in-process fixed-window rate limiter with the same window
// semantics as the Redis implementation. Counters are lost on restart; it
// is meant for tests and single-instance development setups.
type Memory struct {
	now      func() time.Time
	lock     sync.Mutex
	counters map[string]*counter
}

func NewMemory(now func() time.Time) *Memory {
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &Memory{now: now, counters: make(map[string]*counter)}
}

func (m *Memory) CheckLimit(
	ctx context.Context,
	key string,
	limit drl.Limit,
) (drl.Result, error) {
	now := m.now()

	m.lock.Lock()
	defer m.lock.Unlock()

	c, ok := m.counters[key]
	if !ok || !now.Before(c.expiresAt) {
		m.counters[key] = &counter{count: 1, expiresAt: now.Add(limit.Window)}
		return drl.Allowed(), nil
	}
	if c.count >= limit.Value {
		return drl.NotAllowed(), nil
	}
	c.count++
	return drl.Allowed(), nil
}
