// File: internal/domain/message.go
package domain

import "time"

// Sender values accepted for a message.
const (
	SenderUser   = "user"
	SenderSystem = "system"
)

// ValidSender reports whether s is one of the accepted sender values.
func ValidSender(s string) bool {
	return s == SenderUser || s == SenderSystem
}

// Message represents a single ingested chat message. Rows are
// insert-only: a message is created once at ingestion and never
// updated or deleted.
type Message struct {
	ID        uint      `gorm:"primarykey"` // storage tiebreak only, never business identity
	MessageID string    `gorm:"size:100;uniqueIndex;not null"`
	SessionID string    `gorm:"size:100;index:idx_messages_session_ts,priority:1;not null"`
	Content   string    `gorm:"not null"` // stored sanitized
	Timestamp time.Time `gorm:"index:idx_messages_session_ts,priority:2;not null"`
	Sender    string    `gorm:"size:16;index;not null"` // "user" or "system"

	WordCount      int
	CharacterCount int
	ProcessedAt    time.Time

	CreatedAt time.Time
}
