package domain

import "time"

// User carries the slice of the profile entity this service owns: the ban
// state. Identity and session handling live in the external auth provider;
// ban state is read by every content-creation path as a precondition gate.
type User struct {
	BaseModel
	DisplayName string     `gorm:"type:varchar(100);not null" json:"display_name"`
	IsBanned    bool       `gorm:"not null;default:false;index:idx_users_is_banned" json:"is_banned"`
	BannedAt    *time.Time `gorm:"type:timestamp" json:"banned_at,omitempty"`
	BanReason   *string    `gorm:"type:text" json:"ban_reason,omitempty"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}

// BanStateFor builds the update set for a ban toggle. Unban clears the
// timestamp and reason to null rather than leaving stale values behind.
func BanStateFor(ban bool, reason string, now time.Time) map[string]interface{} {
	if !ban {
		return map[string]interface{}{
			"is_banned":  false,
			"banned_at":  nil,
			"ban_reason": nil,
		}
	}
	fields := map[string]interface{}{
		"is_banned": true,
		"banned_at": now,
	}
	if reason != "" {
		fields["ban_reason"] = reason
	} else {
		fields["ban_reason"] = nil
	}
	return fields
}
