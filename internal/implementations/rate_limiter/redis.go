package ratelimiter

import (
	"context"
	"errors"
	"fmt"
	e "quicknotes/internal/core/domain/errors"
	"quicknotes/internal/core/domain/logging"
	drl "quicknotes/internal/core/domain/rate_limiter"

	"github.com/go-redis/redis/v9"
)

// Redis is a fixed-window rate limiter backed by a Redis-compatible counter
// store. The window is anchored at the first request after a reset: the
// counter is created with a TTL equal to the window and expires on its own.
//
// The read-then-increment sequence is not one atomic unit, so concurrent
// allowed requests may overshoot the limit by the number of checks in
// flight. The reject path performs no write, so rejected requests never
// grow the counter.
type Redis struct {
	redisClient *redis.Client
	log         logging.Logger
}

func NewRedis(redisClient *redis.Client, log logging.Logger) *Redis {
	if redisClient == nil {
		panic(e.NewNilArgumentError("redisClient"))
	}
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	return &Redis{redisClient: redisClient, log: log}
}

func (r *Redis) CheckLimit(
	ctx context.Context,
	key string,
	limit drl.Limit,
) (drl.Result, error) {
	count, err := r.redisClient.Get(ctx, key).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		r.log.Error(
			ctx,
			"Could not read rate limit counter.",
			logging.Entry("err", err),
			logging.Entry("key", key),
		)
		return drl.NotAllowed(), fmt.Errorf("read rate limit counter: %w", err)
	}

	if errors.Is(err, redis.Nil) {
		// First request of a new window.
		_, err := r.redisClient.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Incr(ctx, key)
			pipe.Expire(ctx, key, limit.Window)
			return nil
		})
		if err != nil {
			r.log.Error(
				ctx,
				"Could not create rate limit counter.",
				logging.Entry("err", err),
				logging.Entry("key", key),
			)
			return drl.NotAllowed(), fmt.Errorf("create rate limit counter: %w", err)
		}
		return drl.Allowed(), nil
	}

	if count >= int64(limit.Value) {
		return drl.NotAllowed(), nil
	}

	if err := r.redisClient.Incr(ctx, key).Err(); err != nil {
		r.log.Error(
			ctx,
			"Could not increment rate limit counter.",
			logging.Entry("err", err),
			logging.Entry("key", key),
		)
		return drl.NotAllowed(), fmt.Errorf("increment rate limit counter: %w", err)
	}
	return drl.Allowed(), nil
}
