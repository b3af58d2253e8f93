package middleware

import (
	"errors"
	"net/http"
	e "quicknotes/internal/core/domain/errors"
	"quicknotes/internal/core/domain/logging"
	ratelimiter "quicknotes/internal/core/domain/rate_limiter"
	"quicknotes/internal/http/handlers/response"
)

// KeyFunc decides which counter a request is charged against.
type KeyFunc func(r *http.Request) string

// ConstantKey charges every request to one shared counter, making the limit
// a single service-wide quota rather than a per-client one.
func ConstantKey(key string) KeyFunc {
	return func(*http.Request) string { return key }
}

// RateLimit gates every request through the limiter before routing. A
// rejected request is answered with 429 and never reaches the next handler.
// A limiter failure is answered with 500: the gate fails closed.
func RateLimit(
	log logging.Logger,
	limiter ratelimiter.RateLimiter,
	limit ratelimiter.Limit,
	key KeyFunc,
) func(http.Handler) http.Handler {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if limiter == nil {
		panic(e.NewNilArgumentError("limiter"))
	}
	if key == nil {
		panic(e.NewNilArgumentError("key"))
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
			rateLimitKey := key(r)

			result, err := limiter.CheckLimit(r.Context(), rateLimitKey, limit)
			if err == nil && !result.IsAllowed {
				err = ratelimiter.ErrRateLimitExceeded
			}
			if err != nil {
				switch {
				case errors.Is(err, ratelimiter.ErrRateLimitExceeded):
					log.Warning(r.Context(), "Rate limit exceeded.", logging.Entry("key", rateLimitKey))
					response.RenderRateLimitExceeded(rw)
				default:
					log.Error(
						r.Context(),
						"Could not check rate limit.",
						logging.Entry("err", err),
						logging.Entry("key", rateLimitKey),
					)
					response.RenderInternalError(rw)
				}
				return
			}

			next.ServeHTTP(rw, r)
		})
	}
}
