package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"community-moderation-api/internal/domain"
)

// AdminActionResponse represents an audit record in API responses
type AdminActionResponse struct {
	ActionID   uuid.UUID              `json:"actionId"`
	ActorID    uuid.UUID              `json:"actorId"`
	ActionType domain.AdminActionType `json:"actionType"`
	TargetType string                 `json:"targetType"`
	TargetID   uuid.UUID              `json:"targetId"`
	Reason     string                 `json:"reason,omitempty"`
	Metadata   json.RawMessage        `json:"metadata,omitempty"`
	CreatedAt  time.Time              `json:"createdAt"`
}

// AdminActionListResponse is a page of audit records
type AdminActionListResponse struct {
	Actions []AdminActionResponse `json:"actions"`
	Total   int64                 `json:"total"`
	Limit   int                   `json:"limit"`
	Offset  int                   `json:"offset"`
}

// FromAdminAction maps an audit row to the response shape
func FromAdminAction(a *domain.AdminAction) AdminActionResponse {
	return AdminActionResponse{
		ActionID:   a.ID,
		ActorID:    a.ActorID,
		ActionType: a.ActionType,
		TargetType: a.TargetType,
		TargetID:   a.TargetID,
		Reason:     a.Reason,
		Metadata:   json.RawMessage(a.Metadata),
		CreatedAt:  a.CreatedAt,
	}
}
