package dto

import (
	"time"

	"github.com/google/uuid"

	"community-moderation-api/internal/domain"
)

// ToggleBanRequest represents the request to ban or unban a user
type ToggleBanRequest struct {
	Ban    bool   `json:"ban"`
	Reason string `json:"reason,omitempty"`
}

// UserBanResponse represents a user's ban state in API responses
type UserBanResponse struct {
	UserID    uuid.UUID  `json:"userId"`
	IsBanned  bool       `json:"isBanned"`
	BannedAt  *time.Time `json:"bannedAt,omitempty"`
	BanReason *string    `json:"banReason,omitempty"`
}

// FromUser maps a user row to the ban-state response shape
func FromUser(u *domain.User) *UserBanResponse {
	return &UserBanResponse{
		UserID:    u.ID,
		IsBanned:  u.IsBanned,
		BannedAt:  u.BannedAt,
		BanReason: u.BanReason,
	}
}
