package dto

import (
	"time"

	"github.com/google/uuid"

	"community-moderation-api/internal/domain"
)

// CreateContentRequest represents the request to post a comment
// @Description Request body for creating a discussion or product comment.
// @Description contextId is the discussion or product the comment belongs to.
// @Description guestName is required for unauthenticated posts.
type CreateContentRequest struct {
	ContentType domain.ContentType `json:"contentType" binding:"required"`
	ContextID   uuid.UUID          `json:"contextId" binding:"required"`
	ParentID    *uuid.UUID         `json:"parentId,omitempty" binding:"omitempty"`
	Body        string             `json:"body" binding:"required,min=1"`
	GuestName   string             `json:"guestName,omitempty"`
}

// ContentResponse represents a comment in API responses
type ContentResponse struct {
	ContentID   uuid.UUID          `json:"contentId"`
	ContentType domain.ContentType `json:"contentType"`
	ContextID   uuid.UUID          `json:"contextId"`
	ParentID    *uuid.UUID         `json:"parentId,omitempty"`
	AuthorID    *uuid.UUID         `json:"authorId,omitempty"`
	GuestName   string             `json:"guestName,omitempty"`
	Body        string             `json:"body"`
	FlagCount   int                `json:"flagCount"`
	IsFlagged   bool               `json:"isFlagged"`
	CreatedAt   time.Time          `json:"createdAt"`
}

// FromDiscussionComment maps a discussion comment row to the response shape
func FromDiscussionComment(c *domain.DiscussionComment) *ContentResponse {
	return &ContentResponse{
		ContentID:   c.ID,
		ContentType: domain.ContentTypeDiscussion,
		ContextID:   c.DiscussionID,
		ParentID:    c.ParentID,
		AuthorID:    c.AuthorID,
		GuestName:   c.GuestName,
		Body:        c.Body,
		FlagCount:   c.FlagCount,
		IsFlagged:   c.IsFlagged,
		CreatedAt:   c.CreatedAt,
	}
}

// FromProductComment maps a product comment row to the response shape
func FromProductComment(c *domain.ProductComment) *ContentResponse {
	return &ContentResponse{
		ContentID:   c.ID,
		ContentType: domain.ContentTypeProduct,
		ContextID:   c.ProductID,
		ParentID:    c.ParentID,
		AuthorID:    c.AuthorID,
		GuestName:   c.GuestName,
		Body:        c.Body,
		FlagCount:   c.FlagCount,
		IsFlagged:   c.IsFlagged,
		CreatedAt:   c.CreatedAt,
	}
}
