package domain

import (
	"time"

	"github.com/google/uuid"
)

// Flag records a single (content item, flagging user) pair.
// The composite unique index closes the check-then-insert race - duplicate
// flags must fail at the data layer, not double-count.
// No soft delete: the ledger must be countable with a plain COUNT(*).
type Flag struct {
	ID          uuid.UUID   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ContentID   uuid.UUID   `gorm:"type:uuid;not null;uniqueIndex:uq_flags_content_user,priority:1;index:idx_flags_content,priority:1" json:"content_id"`
	ContentType ContentType `gorm:"type:varchar(20);not null;uniqueIndex:uq_flags_content_user,priority:2;index:idx_flags_content,priority:2" json:"content_type"`
	UserID      uuid.UUID   `gorm:"type:uuid;not null;uniqueIndex:uq_flags_content_user,priority:3" json:"user_id"`
	CreatedAt   time.Time   `gorm:"type:timestamp;not null;default:now()" json:"created_at"`
}

// TableName specifies the table name for Flag
func (Flag) TableName() string {
	return "flags"
}

// QueueStatus represents the review state of a moderation queue entry
type QueueStatus string

const (
	QueueStatusPending  QueueStatus = "pending"
	QueueStatusDisputed QueueStatus = "disputed"
)

// ModerationQueueEntry is a snapshot of a flagged content item at the moment
// it was archived. The unique index on (content_id, content_type) guarantees
// at most one snapshot per content item; archival uses FirstOrCreate against
// it so concurrent threshold triggers collapse into a single entry.
// No soft delete: restore/purge must leave the slot genuinely free.
type ModerationQueueEntry struct {
	ID            uuid.UUID   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ContentID     uuid.UUID   `gorm:"type:uuid;not null;uniqueIndex:uq_moderation_queue_content,priority:1" json:"content_id"`
	ContentType   ContentType `gorm:"type:varchar(20);not null;uniqueIndex:uq_moderation_queue_content,priority:2" json:"content_type"`
	ContextID     uuid.UUID   `gorm:"type:uuid;not null" json:"context_id"` // discussion or product the comment belongs to
	ParentID      *uuid.UUID  `gorm:"type:uuid" json:"parent_id"`
	AuthorID      *uuid.UUID  `gorm:"type:uuid;index:idx_moderation_queue_author_id" json:"author_id"`
	GuestName     string      `gorm:"type:varchar(100)" json:"guest_name,omitempty"`
	Body          string      `gorm:"type:text;not null" json:"body"`
	FlagCount     int         `gorm:"not null;default:0;index:idx_moderation_queue_flag_count" json:"flag_count"`
	Status        QueueStatus `gorm:"type:varchar(20);not null;default:'pending';index:idx_moderation_queue_status" json:"status"`
	DisputeReason *string     `gorm:"type:text" json:"dispute_reason,omitempty"`
	ContentAt     time.Time   `gorm:"type:timestamp;not null" json:"content_at"` // original creation time of the content
	QueuedAt      time.Time   `gorm:"type:timestamp;not null;default:now()" json:"queued_at"`
}

// TableName specifies the table name for ModerationQueueEntry
func (ModerationQueueEntry) TableName() string {
	return "moderation_queue"
}
