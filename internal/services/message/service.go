// File: internal/services/message/service.go
package message

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/nequibot/chat-message-api/internal/domain"
	repo "github.com/nequibot/chat-message-api/internal/repository/message"
	"github.com/nequibot/chat-message-api/internal/services"
)

// CreateMessageInput carries the already shape-validated fields of an
// inbound message into the processing pipeline.
type CreateMessageInput struct {
	MessageID string
	SessionID string
	Content   string
	Timestamp time.Time
	Sender    string
}

// Service is the message processing pipeline: semantic validation,
// banned-word masking, metadata derivation and persistence, plus the
// paginated read path. It holds no per-request state.
type Service struct {
	repo      repo.MessageRepository
	sanitizer *Sanitizer
	config    *Config
	logger    services.Logger
}

func NewService(r repo.MessageRepository, cfg *Config, logger services.Logger) (*Service, error) {
	if r == nil {
		return nil, fmt.Errorf("message repository is required")
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid message service config: %w", err)
	}
	if logger == nil {
		logger = services.NewProductionLogger("message_service")
	}
	return &Service{
		repo:      r,
		sanitizer: NewSanitizer(cfg.BannedWords),
		config:    cfg,
		logger:    logger,
	}, nil
}

// DefaultLimit returns the page size used when the caller supplies none.
func (s *Service) DefaultLimit() int {
	return s.config.DefaultPageSize
}

// ProcessAndStore validates, sanitizes and persists one message.
// The sender check is deliberately repeated here even though the
// boundary shape validation already constrains it; the processor never
// trusts upstream alone.
func (s *Service) ProcessAndStore(ctx context.Context, in CreateMessageInput) (*domain.Message, error) {
	if !domain.ValidSender(in.Sender) {
		return nil, NewValidationError("process", fmt.Sprintf("sender must be %q or %q", domain.SenderUser, domain.SenderSystem))
	}

	sanitized := s.sanitizer.Sanitize(in.Content)

	msg := &domain.Message{
		MessageID:      in.MessageID,
		SessionID:      in.SessionID,
		Content:        sanitized,
		Timestamp:      normalizeUTC(in.Timestamp),
		Sender:         in.Sender,
		WordCount:      len(strings.Fields(sanitized)),
		CharacterCount: utf8.RuneCountInString(sanitized),
		ProcessedAt:    time.Now().UTC(),
	}

	stored, err := s.repo.Create(ctx, msg)
	if err != nil {
		if errors.Is(err, repo.ErrDuplicateMessageID) {
			return nil, NewDuplicateError("store", err)
		}
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		return nil, NewStorageError("store", "could not persist message", err)
	}

	s.logger.Info("message stored",
		"message_id", stored.MessageID,
		"session_id", stored.SessionID,
		"word_count", stored.WordCount)
	return stored, nil
}

// ListBySession validates pagination and filter arguments, then
// delegates to the store. Ordering is newest-first with the surrogate
// id breaking timestamp ties.
func (s *Service) ListBySession(ctx context.Context, sessionID string, limit, offset int, sender string) ([]domain.Message, error) {
	if sessionID == "" {
		return nil, NewValidationError("list", "session_id is required")
	}
	if limit < 1 || limit > s.config.MaxPageSize {
		return nil, NewValidationError("list", fmt.Sprintf("limit must be between 1 and %d", s.config.MaxPageSize))
	}
	if offset < 0 {
		return nil, NewValidationError("list", "offset must be >= 0")
	}
	if sender != "" && !domain.ValidSender(sender) {
		return nil, NewValidationError("list", fmt.Sprintf("sender filter must be %q or %q", domain.SenderUser, domain.SenderSystem))
	}

	messages, err := s.repo.ListBySession(ctx, sessionID, limit, offset, sender)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		return nil, NewStorageError("list", "could not retrieve messages", err)
	}
	return messages, nil
}

// normalizeUTC converts any timestamp to UTC. The DTO layer already
// stamps naive inputs as UTC; this keeps the invariant independent of
// the caller.
func normalizeUTC(t time.Time) time.Time {
	return t.UTC()
}
