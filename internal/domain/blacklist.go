package domain

import (
	"time"

	"github.com/google/uuid"
)

// BlacklistKeyword is a case-normalized keyword matched as a substring
// against new content bodies. Rows are deactivated, never hard-deleted,
// so historical audit entries keep pointing at a real row.
// Duplicates are allowed - each add carries its own audit trail.
type BlacklistKeyword struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Keyword   string    `gorm:"type:varchar(255);not null;index:idx_blacklist_keywords_keyword" json:"keyword"`
	Reason    string    `gorm:"type:text" json:"reason,omitempty"`
	CreatedBy uuid.UUID `gorm:"type:uuid;not null" json:"created_by"`
	IsActive  bool      `gorm:"not null;default:true;index:idx_blacklist_keywords_is_active" json:"is_active"`
	CreatedAt time.Time `gorm:"type:timestamp;not null;default:now()" json:"created_at"`
}

// TableName specifies the table name for BlacklistKeyword
func (BlacklistKeyword) TableName() string {
	return "blacklist_keywords"
}
