package domain

import "github.com/google/uuid"

// ContentType identifies which home table a piece of user content lives in
type ContentType string

const (
	ContentTypeDiscussion ContentType = "discussion"
	ContentTypeProduct    ContentType = "product"
)

// Valid reports whether the content type is one of the known home tables
func (t ContentType) Valid() bool {
	return t == ContentTypeDiscussion || t == ContentTypeProduct
}

// DiscussionComment represents a comment on a community discussion.
// AuthorID is nullable - guest posts carry GuestName instead.
// ParentID is nullable and enables nested threading.
type DiscussionComment struct {
	BaseModel
	DiscussionID uuid.UUID  `gorm:"type:uuid;not null;index:idx_discussion_comments_discussion_id" json:"discussion_id"`
	AuthorID     *uuid.UUID `gorm:"type:uuid;index:idx_discussion_comments_author_id" json:"author_id"`
	GuestName    string     `gorm:"type:varchar(100)" json:"guest_name,omitempty"`
	ParentID     *uuid.UUID `gorm:"type:uuid;index:idx_discussion_comments_parent_id" json:"parent_id"`
	Body         string     `gorm:"type:text;not null" json:"body"`
	FlagCount    int        `gorm:"not null;default:0" json:"flag_count"`
	IsFlagged    bool       `gorm:"not null;default:false;index:idx_discussion_comments_is_flagged" json:"is_flagged"`
}

// TableName specifies the table name for DiscussionComment
func (DiscussionComment) TableName() string {
	return "discussion_comments"
}

// ProductComment represents a comment on a product dossier page.
// Carries the same flag columns as DiscussionComment so both content
// types move through the one moderation pipeline.
type ProductComment struct {
	BaseModel
	ProductID uuid.UUID  `gorm:"type:uuid;not null;index:idx_product_comments_product_id" json:"product_id"`
	AuthorID  *uuid.UUID `gorm:"type:uuid;index:idx_product_comments_author_id" json:"author_id"`
	GuestName string     `gorm:"type:varchar(100)" json:"guest_name,omitempty"`
	ParentID  *uuid.UUID `gorm:"type:uuid;index:idx_product_comments_parent_id" json:"parent_id"`
	Body      string     `gorm:"type:text;not null" json:"body"`
	FlagCount int        `gorm:"not null;default:0" json:"flag_count"`
	IsFlagged bool       `gorm:"not null;default:false;index:idx_product_comments_is_flagged" json:"is_flagged"`
}

// TableName specifies the table name for ProductComment
func (ProductComment) TableName() string {
	return "product_comments"
}
