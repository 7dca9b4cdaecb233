// File: internal/services/message/errors.go
package message

import "fmt"

type ErrorType string

const (
	ErrTypeValidation ErrorType = "VALIDATION"
	ErrTypeDuplicate  ErrorType = "DUPLICATE"
	ErrTypeStorage    ErrorType = "STORAGE"
)

// ProcessingError is the typed failure raised by the message service.
// Translation to externally visible categories happens only at the
// handler boundary.
type ProcessingError struct {
	Type      ErrorType
	Operation string
	Message   string
	Cause     error
}

func (e *ProcessingError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("message %s error in %s: %s (caused by: %v)",
			e.Type, e.Operation, e.Message, e.Cause)
	}
	return fmt.Sprintf("message %s error in %s: %s", e.Type, e.Operation, e.Message)
}

func (e *ProcessingError) Unwrap() error {
	return e.Cause
}

func NewValidationError(operation, msg string) *ProcessingError {
	return &ProcessingError{Type: ErrTypeValidation, Operation: operation, Message: msg}
}

func NewDuplicateError(operation string, cause error) *ProcessingError {
	return &ProcessingError{
		Type:      ErrTypeDuplicate,
		Operation: operation,
		Message:   "message_id already exists",
		Cause:     cause,
	}
}

func NewStorageError(operation, msg string, cause error) *ProcessingError {
	return &ProcessingError{Type: ErrTypeStorage, Operation: operation, Message: msg, Cause: cause}
}
