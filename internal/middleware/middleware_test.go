// File: internal/middleware/middleware_test.go
package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nequibot/chat-message-api/internal/ratelimit"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAPIKeyMiddleware(t *testing.T) {
	t.Run("disabled when key is empty", func(t *testing.T) {
		handler := NewAPIKeyMiddleware("")(okHandler())
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest("POST", "/api/messages", nil))
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("rejects missing key", func(t *testing.T) {
		handler := NewAPIKeyMiddleware("secret")(okHandler())
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest("POST", "/api/messages", nil))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Contains(t, rec.Body.String(), `"status":"error"`)
	})

	t.Run("rejects wrong key", func(t *testing.T) {
		handler := NewAPIKeyMiddleware("secret")(okHandler())
		req := httptest.NewRequest("POST", "/api/messages", nil)
		req.Header.Set("X-API-Key", "wrong")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("accepts matching key", func(t *testing.T) {
		handler := NewAPIKeyMiddleware("secret")(okHandler())
		req := httptest.NewRequest("POST", "/api/messages", nil)
		req.Header.Set("X-API-Key", "secret")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestRateLimitMiddleware(t *testing.T) {
	t.Run("nil limiter disables limiting", func(t *testing.T) {
		handler := RateLimitMiddleware(nil)(okHandler())
		for i := 0; i < 10; i++ {
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest("POST", "/api/messages", nil))
			require.Equal(t, http.StatusOK, rec.Code)
		}
	})

	t.Run("blocks over-limit callers", func(t *testing.T) {
		limiter := ratelimit.NewMemoryRateLimiter(&ratelimit.Config{
			WindowSize:    time.Minute,
			MaxHits:       2,
			CleanupPeriod: time.Hour,
		})
		defer limiter.Close()
		handler := RateLimitMiddleware(limiter)(okHandler())

		newReq := func() *http.Request {
			req := httptest.NewRequest("POST", "/api/messages", nil)
			req.Header.Set("X-API-Key", "caller-1")
			return req
		}

		for i := 0; i < 2; i++ {
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, newReq())
			require.Equal(t, http.StatusOK, rec.Code)
		}

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, newReq())
		require.Equal(t, http.StatusTooManyRequests, rec.Code)
		require.NotEmpty(t, rec.Header().Get("Retry-After"))
		require.Contains(t, rec.Body.String(), "RATE_LIMITED")
	})
}

func TestRequestID(t *testing.T) {
	t.Run("generates an id", func(t *testing.T) {
		var seen string
		handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = GetRequestID(r.Context())
		}))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest("GET", "/health", nil))
		require.NotEmpty(t, seen)
		require.Equal(t, seen, rec.Header().Get("X-Request-ID"))
	})

	t.Run("honors inbound id", func(t *testing.T) {
		var seen string
		handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = GetRequestID(r.Context())
		}))
		req := httptest.NewRequest("GET", "/health", nil)
		req.Header.Set("X-Request-ID", "abc-123")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		require.Equal(t, "abc-123", seen)
	})
}

func TestRecoverPanic(t *testing.T) {
	handler := RecoverPanic(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/api/messages/s1", nil))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Contains(t, rec.Body.String(), "SERVER_ERROR")
	require.NotContains(t, rec.Body.String(), "boom")
}
