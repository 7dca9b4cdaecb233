// File: internal/repository/message/message_repository.go
package message

import (
	"context"
	"errors"
	"log"
	"strings"

	"gorm.io/gorm"

	"github.com/nequibot/chat-message-api/internal/domain"
)

var (
	ErrDuplicateMessageID = errors.New("message_id already exists")
	ErrStorage            = errors.New("database error")
)

type gormMessageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &gormMessageRepository{db: db}
}

// Create inserts the message inside a single implicit transaction.
// Duplicate detection rides on the unique index rather than a
// read-then-write check, so racing inserts with the same message_id
// can never both commit.
func (r *gormMessageRepository) Create(ctx context.Context, msg *domain.Message) (*domain.Message, error) {
	if msg == nil {
		return nil, errors.New("message cannot be nil")
	}

	if err := r.db.WithContext(ctx).Create(msg).Error; err != nil {
		if isUniqueViolation(err) {
			log.Printf("[MessageRepository] Duplicate message_id rejected for session %s", msg.SessionID)
			return nil, ErrDuplicateMessageID
		}
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		// Secure logging: no message content exposed
		log.Printf("[MessageRepository] Database error creating message for session %s: %v", msg.SessionID, err)
		return nil, ErrStorage
	}

	return msg, nil
}

func (r *gormMessageRepository) ListBySession(ctx context.Context, sessionID string, limit, offset int, sender string) ([]domain.Message, error) {
	if sessionID == "" {
		return nil, errors.New("session ID is required")
	}
	if limit <= 0 {
		return nil, errors.New("invalid limit: must be positive")
	}
	if offset < 0 {
		return nil, errors.New("invalid offset: must be >= 0")
	}

	query := r.db.WithContext(ctx).Where("session_id = ?", sessionID)
	if sender != "" {
		query = query.Where("sender = ?", sender)
	}

	messages := make([]domain.Message, 0, limit)
	err := query.
		Order("timestamp DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&messages).Error
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		log.Printf("[MessageRepository] Database error listing messages for session %s: %v", sessionID, err)
		return nil, ErrStorage
	}

	return messages, nil
}

func (r *gormMessageRepository) CountBySession(ctx context.Context, sessionID string) (int64, error) {
	if sessionID == "" {
		return 0, errors.New("session ID is required")
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Message{}).
		Where("session_id = ?", sessionID).
		Count(&count).Error
	if err != nil {
		log.Printf("[MessageRepository] Database error counting messages for session %s: %v", sessionID, err)
		return 0, ErrStorage
	}

	return count, nil
}

func (r *gormMessageRepository) ExistsByMessageID(ctx context.Context, messageID string) (bool, error) {
	if messageID == "" {
		return false, errors.New("message ID is required")
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Message{}).
		Where("message_id = ?", messageID).
		Count(&count).Error
	if err != nil {
		log.Printf("[MessageRepository] Database error checking message existence: %v", err)
		return false, ErrStorage
	}

	return count > 0, nil
}

// isUniqueViolation recognizes a unique-index failure both through
// gorm's translated error and the raw sqlite message.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
