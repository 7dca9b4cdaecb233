// File: internal/handlers/message_handler.go
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"github.com/nequibot/chat-message-api/internal/dtos"
	"github.com/nequibot/chat-message-api/internal/services"
	"github.com/nequibot/chat-message-api/internal/services/message"
)

// External error categories surfaced to callers.
const (
	CodeInvalidFormat      = "INVALID_FORMAT"
	CodeDuplicateMessageID = "DUPLICATE_MESSAGE_ID"
	CodeServerError        = "SERVER_ERROR"
)

// MessageHandler translates between the wire shapes and the message
// service. It performs no business logic of its own.
type MessageHandler struct {
	service  *message.Service
	validate *validator.Validate
	logger   services.Logger
}

func NewMessageHandler(svc *message.Service, logger services.Logger) (*MessageHandler, error) {
	if svc == nil {
		return nil, errors.New("message service is required")
	}
	if logger == nil {
		logger = services.NewProductionLogger("message_handler")
	}
	return &MessageHandler{
		service:  svc,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logger,
	}, nil
}

// CreateMessage handles POST /api/messages.
func (h *MessageHandler) CreateMessage(w http.ResponseWriter, r *http.Request) {
	var req dtos.CreateMessageRequest

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, CodeInvalidFormat, "Invalid message format", err.Error())
		return
	}

	if err := h.validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, CodeInvalidFormat, "Invalid message format", validationDetails(err))
		return
	}

	stored, err := h.service.ProcessAndStore(r.Context(), message.CreateMessageInput{
		MessageID: req.MessageID,
		SessionID: req.SessionID,
		Content:   req.Content,
		Timestamp: req.Timestamp.Time,
		Sender:    req.Sender,
	})
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dtos.NewSuccessResponse(dtos.NewMessageResponse(stored)))
}

// ListSessionMessages handles GET /api/messages/{session_id}.
func (h *MessageHandler) ListSessionMessages(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["session_id"]

	limit := h.service.DefaultLimit()
	offset := 0
	var err error

	query := r.URL.Query()
	if raw := query.Get("limit"); raw != "" {
		if limit, err = strconv.Atoi(raw); err != nil {
			writeError(w, http.StatusBadRequest, CodeInvalidFormat, "Invalid query parameters", "limit must be an integer")
			return
		}
	}
	if raw := query.Get("offset"); raw != "" {
		if offset, err = strconv.Atoi(raw); err != nil {
			writeError(w, http.StatusBadRequest, CodeInvalidFormat, "Invalid query parameters", "offset must be an integer")
			return
		}
	}
	sender := query.Get("sender")

	messages, err := h.service.ListBySession(r.Context(), sessionID, limit, offset, sender)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	items := make([]dtos.MessageResponse, 0, len(messages))
	for i := range messages {
		items = append(items, dtos.NewMessageResponse(&messages[i]))
	}
	writeJSON(w, http.StatusOK, dtos.NewSuccessResponse(items))
}

// writeServiceError maps service failures to external categories.
// Specific kinds are matched before the generic fallback so a
// duplicate or validation failure is never misreported as a server
// error.
func (h *MessageHandler) writeServiceError(w http.ResponseWriter, err error) {
	var procErr *message.ProcessingError
	if errors.As(err, &procErr) {
		switch procErr.Type {
		case message.ErrTypeDuplicate:
			writeError(w, http.StatusConflict, CodeDuplicateMessageID, "message_id already exists", "")
			return
		case message.ErrTypeValidation:
			writeError(w, http.StatusBadRequest, CodeInvalidFormat, "Invalid message format", procErr.Message)
			return
		}
	}

	// No internal detail is leaked to the caller.
	h.logger.Error("unexpected failure handling message request", "error", err.Error())
	writeError(w, http.StatusInternalServerError, CodeServerError, "Unexpected server error", "")
}

// validationDetails flattens validator errors into one readable string.
func validationDetails(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	details := ""
	for i, fe := range verrs {
		if i > 0 {
			details += "; "
		}
		details += fe.Field() + " failed on " + fe.Tag()
	}
	return details
}

// writeJSON is a helper for sending JSON responses.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError is a helper for sending enveloped JSON error responses.
func writeError(w http.ResponseWriter, status int, code, message, details string) {
	writeJSON(w, status, dtos.NewErrorResponse(code, message, details))
}
