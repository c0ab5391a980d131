package dto

import (
	"time"

	"github.com/google/uuid"

	"community-moderation-api/internal/domain"
)

// AddKeywordRequest represents the request to add a blacklist keyword
type AddKeywordRequest struct {
	Keyword string `json:"keyword" binding:"required,min=1"`
	Reason  string `json:"reason,omitempty"`
}

// KeywordResponse represents a blacklist keyword in API responses
type KeywordResponse struct {
	KeywordID uuid.UUID `json:"keywordId"`
	Keyword   string    `json:"keyword"`
	Reason    string    `json:"reason,omitempty"`
	CreatedBy uuid.UUID `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
}

// FromBlacklistKeyword maps a keyword row to the response shape
func FromBlacklistKeyword(k *domain.BlacklistKeyword) KeywordResponse {
	return KeywordResponse{
		KeywordID: k.ID,
		Keyword:   k.Keyword,
		Reason:    k.Reason,
		CreatedBy: k.CreatedBy,
		CreatedAt: k.CreatedAt,
	}
}
