package dto

import (
	"time"

	"github.com/google/uuid"

	"community-moderation-api/internal/domain"
)

// QueueEntryResponse represents a moderation queue entry in API responses
type QueueEntryResponse struct {
	QueueID       uuid.UUID          `json:"queueId"`
	ContentID     uuid.UUID          `json:"contentId"`
	ContentType   domain.ContentType `json:"contentType"`
	ContextID     uuid.UUID          `json:"contextId"`
	AuthorID      *uuid.UUID         `json:"authorId,omitempty"`
	GuestName     string             `json:"guestName,omitempty"`
	Body          string             `json:"body"`
	FlagCount     int                `json:"flagCount"`
	Status        domain.QueueStatus `json:"status"`
	DisputeReason *string            `json:"disputeReason,omitempty"`
	ContentAt     time.Time          `json:"contentAt"`
	QueuedAt      time.Time          `json:"queuedAt"`
}

// QueueListResponse is a page of moderation queue entries
type QueueListResponse struct {
	Entries []QueueEntryResponse `json:"entries"`
	Total   int64                `json:"total"`
	Limit   int                  `json:"limit"`
	Offset  int                  `json:"offset"`
}

// DisputeRequest represents an author's appeal against a queued item
type DisputeRequest struct {
	Reason string `json:"reason" binding:"required,min=1"`
}

// RestoreRequest carries the admin's reason for restoring a queued item
type RestoreRequest struct {
	Reason string `json:"reason,omitempty"`
}

// PurgeRequest carries the admin's reason for purging a queued item
type PurgeRequest struct {
	Reason string `json:"reason,omitempty"`
}

// FromQueueEntry maps a queue entry row to the response shape
func FromQueueEntry(e *domain.ModerationQueueEntry) QueueEntryResponse {
	return QueueEntryResponse{
		QueueID:       e.ID,
		ContentID:     e.ContentID,
		ContentType:   e.ContentType,
		ContextID:     e.ContextID,
		AuthorID:      e.AuthorID,
		GuestName:     e.GuestName,
		Body:          e.Body,
		FlagCount:     e.FlagCount,
		Status:        e.Status,
		DisputeReason: e.DisputeReason,
		ContentAt:     e.ContentAt,
		QueuedAt:      e.QueuedAt,
	}
}
