// File: internal/middleware/respond.go
package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/nequibot/chat-message-api/internal/dtos"
)

// writeEnvelopedError sends the standard error envelope from middleware,
// keeping rejected requests in the same wire shape as handler failures.
func writeEnvelopedError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(dtos.NewErrorResponse(code, message, ""))
}
