// File: internal/dtos/message.go
package dtos

import (
	"fmt"
	"strings"
	"time"

	"github.com/nequibot/chat-message-api/internal/domain"
)

// APITime is a timestamp that accepts RFC 3339 input as well as naive
// ISO-8601 datetimes without a zone. Naive values are taken to be UTC;
// zoned values are converted to UTC. It always marshals as RFC 3339 UTC.
type APITime struct {
	time.Time
}

// naiveLayouts are tried after RFC 3339 parsing fails.
var naiveLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

func (t *APITime) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		return fmt.Errorf("timestamp is required")
	}
	if parsed, err := time.Parse(time.RFC3339Nano, s); err == nil {
		t.Time = parsed.UTC()
		return nil
	}
	for _, layout := range naiveLayouts {
		if parsed, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("invalid timestamp %q", s)
}

func (t APITime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.UTC().Format(time.RFC3339Nano) + `"`), nil
}

// CreateMessageRequest is the inbound shape for message creation.
type CreateMessageRequest struct {
	MessageID string  `json:"message_id" validate:"required,min=1,max=100"`
	SessionID string  `json:"session_id" validate:"required,min=1,max=100"`
	Content   string  `json:"content" validate:"required,min=1"`
	Timestamp APITime `json:"timestamp" validate:"required"`
	Sender    string  `json:"sender" validate:"required,oneof=user system"`
}

// MessageMetadata carries the processing-derived fields of a message.
type MessageMetadata struct {
	WordCount      int     `json:"word_count"`
	CharacterCount int     `json:"character_count"`
	ProcessedAt    APITime `json:"processed_at"`
}

// MessageResponse is the outbound shape of a stored message.
type MessageResponse struct {
	MessageID string          `json:"message_id"`
	SessionID string          `json:"session_id"`
	Content   string          `json:"content"`
	Timestamp APITime         `json:"timestamp"`
	Sender    string          `json:"sender"`
	Metadata  MessageMetadata `json:"metadata"`
}

// NewMessageResponse maps a stored entity to its wire shape.
func NewMessageResponse(m *domain.Message) MessageResponse {
	return MessageResponse{
		MessageID: m.MessageID,
		SessionID: m.SessionID,
		Content:   m.Content,
		Timestamp: APITime{m.Timestamp},
		Sender:    m.Sender,
		Metadata: MessageMetadata{
			WordCount:      m.WordCount,
			CharacterCount: m.CharacterCount,
			ProcessedAt:    APITime{m.ProcessedAt},
		},
	}
}

// ErrorDetail is the body of the error envelope.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// SuccessResponse wraps every successful API response.
type SuccessResponse struct {
	Status string      `json:"status"`
	Data   interface{} `json:"data"`
}

// ErrorResponse wraps every failed API response.
type ErrorResponse struct {
	Status string      `json:"status"`
	Error  ErrorDetail `json:"error"`
}

// NewSuccessResponse builds the {status:"success", data:...} envelope.
func NewSuccessResponse(data interface{}) SuccessResponse {
	return SuccessResponse{Status: "success", Data: data}
}

// NewErrorResponse builds the {status:"error", error:{...}} envelope.
func NewErrorResponse(code, message, details string) ErrorResponse {
	return ErrorResponse{
		Status: "error",
		Error:  ErrorDetail{Code: code, Message: message, Details: details},
	}
}
