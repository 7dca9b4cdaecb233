// File: internal/middleware/auth.go
package middleware

import (
	"crypto/subtle"
	"log"
	"net/http"
)

const apiKeyHeader = "X-API-Key"

// NewAPIKeyMiddleware creates middleware that checks the static shared
// secret in the X-API-Key header. An empty configured key disables the
// check entirely.
func NewAPIKeyMiddleware(apiKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if apiKey == "" {
				next.ServeHTTP(w, r)
				return
			}

			provided := r.Header.Get(apiKeyHeader)
			if provided == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(apiKey)) != 1 {
				log.Printf("[AuthMiddleware] Rejected request with invalid or missing API key from %s", r.RemoteAddr)
				writeEnvelopedError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid or missing API key")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
