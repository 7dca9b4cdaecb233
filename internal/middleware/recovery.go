// File: internal/middleware/recovery.go
package middleware

import (
	"log"
	"net/http"
)

// RecoverPanic normalizes any panic in the handler chain to the
// SERVER_ERROR envelope, leaking no internal detail to the caller.
func RecoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				log.Printf("[PANIC] %v (request_id=%s)", err, GetRequestID(r.Context()))

				w.Header().Set("Connection", "close")
				writeEnvelopedError(w, http.StatusInternalServerError, "SERVER_ERROR", "Unexpected server error")
			}
		}()

		next.ServeHTTP(w, r)
	})
}
