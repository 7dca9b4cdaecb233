// File: internal/repository/message/interface.go
package message

import (
	"context"

	"github.com/nequibot/chat-message-api/internal/domain"
)

type MessageRepository interface {
	// Create persists a new message. The unique index on message_id is
	// the single authority for duplicate detection; violations surface
	// as ErrDuplicateMessageID.
	Create(ctx context.Context, msg *domain.Message) (*domain.Message, error)

	// ListBySession returns the session's messages newest-first
	// (timestamp desc, surrogate id desc), optionally restricted to one
	// sender, with limit/offset paging. No matches yields an empty slice.
	ListBySession(ctx context.Context, sessionID string, limit, offset int, sender string) ([]domain.Message, error)

	// CountBySession reports how many messages a session holds.
	CountBySession(ctx context.Context, sessionID string) (int64, error)

	// ExistsByMessageID checks for a message_id without loading the row.
	ExistsByMessageID(ctx context.Context, messageID string) (bool, error)
}
