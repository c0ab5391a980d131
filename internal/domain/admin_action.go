package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AdminActionType represents the kind of administrative action taken
type AdminActionType string

const (
	AdminActionRestore         AdminActionType = "restore"
	AdminActionPurge           AdminActionType = "purge"
	AdminActionAddBlacklist    AdminActionType = "add_blacklist"
	AdminActionRemoveBlacklist AdminActionType = "remove_blacklist"
	AdminActionBan             AdminActionType = "ban"
	AdminActionUnban           AdminActionType = "unban"
)

// AdminAction is the append-only audit record written after every
// admin-mutating operation. Never updated or deleted. Metadata holds an
// arbitrary JSON snapshot of the relevant before-state.
type AdminAction struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ActorID    uuid.UUID       `gorm:"type:uuid;not null;index:idx_admin_actions_actor_id" json:"actor_id"`
	ActionType AdminActionType `gorm:"type:varchar(50);not null;index:idx_admin_actions_action_type" json:"action_type"`
	TargetType string          `gorm:"type:varchar(50);not null" json:"target_type"`
	TargetID   uuid.UUID       `gorm:"type:uuid;not null" json:"target_id"`
	Reason     string          `gorm:"type:text" json:"reason,omitempty"`
	Metadata   datatypes.JSON  `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt  time.Time       `gorm:"type:timestamp;not null;default:now();index:idx_admin_actions_created_at" json:"created_at"`
}

// TableName specifies the table name for AdminAction
func (AdminAction) TableName() string {
	return "admin_actions"
}
