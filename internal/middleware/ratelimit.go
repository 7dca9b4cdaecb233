// File: internal/middleware/ratelimit.go
package middleware

import (
	"fmt"
	"log"
	"net/http"

	"github.com/nequibot/chat-message-api/internal/ratelimit"
)

// RateLimitMiddleware creates rate limiting middleware keyed on the
// caller's API key when present, otherwise the client IP. A nil limiter
// disables rate limiting.
func RateLimitMiddleware(limiter *ratelimit.MemoryRateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if limiter == nil {
				next.ServeHTTP(w, r)
				return
			}

			identifier := r.Header.Get(apiKeyHeader)
			if identifier == "" {
				identifier = ratelimit.GetClientIP(r)
			}

			allowed, info := limiter.Allow(identifier)

			w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
			w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))

			if !allowed {
				log.Printf("[RateLimit] Blocked request from %s", identifier)
				if info.RetryAfter > 0 {
					w.Header().Set("Retry-After", fmt.Sprintf("%.0f", info.RetryAfter.Seconds()))
				}
				writeEnvelopedError(w, http.StatusTooManyRequests, "RATE_LIMITED", "Rate limit exceeded")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
