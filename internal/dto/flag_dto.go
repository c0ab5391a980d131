package dto

import (
	"github.com/google/uuid"

	"community-moderation-api/internal/domain"
)

// FlagContentRequest represents the request to flag a content item
type FlagContentRequest struct {
	ContentType domain.ContentType `json:"contentType" binding:"required"`
	ContentID   uuid.UUID          `json:"contentId" binding:"required"`
}

// FlagContentResponse reports the flag state after the flag was recorded
type FlagContentResponse struct {
	ContentID uuid.UUID `json:"contentId"`
	FlagCount int       `json:"flagCount"`
	Archived  bool      `json:"archived"`
}
