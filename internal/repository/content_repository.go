package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"community-moderation-api/internal/domain"
)

// ContentRepository defines data access for the two content home tables.
// Discussion and product comments share the moderation columns, so the
// flag-related operations are keyed by ContentType instead of being
// duplicated per table.
type ContentRepository interface {
	CreateDiscussionComment(ctx context.Context, comment *domain.DiscussionComment, autoFlag bool) error
	CreateProductComment(ctx context.Context, comment *domain.ProductComment, autoFlag bool) error
	FindDiscussionComment(ctx context.Context, id uuid.UUID) (*domain.DiscussionComment, error)
	FindProductComment(ctx context.Context, id uuid.UUID) (*domain.ProductComment, error)
	ResetFlags(ctx context.Context, contentType domain.ContentType, id uuid.UUID) (int64, error)
	SetFlagCount(ctx context.Context, contentType domain.ContentType, id uuid.UUID, count int) error
}

// contentRepositoryImpl is the GORM implementation of ContentRepository
type contentRepositoryImpl struct {
	db *gorm.DB
}

// NewContentRepository creates a new instance of ContentRepository
func NewContentRepository(db *gorm.DB) ContentRepository {
	return &contentRepositoryImpl{db: db}
}

// tableFor maps a content type to its home table name
func tableFor(contentType domain.ContentType) string {
	if contentType == domain.ContentTypeProduct {
		return domain.ProductComment{}.TableName()
	}
	return domain.DiscussionComment{}.TableName()
}

// CreateDiscussionComment persists a discussion comment. When autoFlag is
// set (blacklist hit), the row is written with flag_count=1/is_flagged=true
// and mirrored into the moderation queue in the same transaction - the
// content must never be visible flagged without its queue entry.
func (r *contentRepositoryImpl) CreateDiscussionComment(ctx context.Context, comment *domain.DiscussionComment, autoFlag bool) error {
	if !autoFlag {
		return r.db.WithContext(ctx).Create(comment).Error
	}

	comment.FlagCount = 1
	comment.IsFlagged = true

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(comment).Error; err != nil {
			return err
		}
		entry := &domain.ModerationQueueEntry{
			ID:          uuid.New(),
			ContentID:   comment.ID,
			ContentType: domain.ContentTypeDiscussion,
			ContextID:   comment.DiscussionID,
			ParentID:    comment.ParentID,
			AuthorID:    comment.AuthorID,
			GuestName:   comment.GuestName,
			Body:        comment.Body,
			FlagCount:   comment.FlagCount,
			Status:      domain.QueueStatusPending,
			ContentAt:   comment.CreatedAt,
			QueuedAt:    time.Now().UTC(),
		}
		return archiveEntry(tx, entry)
	})
}

// CreateProductComment persists a product comment, with the same auto-flag
// semantics as CreateDiscussionComment.
func (r *contentRepositoryImpl) CreateProductComment(ctx context.Context, comment *domain.ProductComment, autoFlag bool) error {
	if !autoFlag {
		return r.db.WithContext(ctx).Create(comment).Error
	}

	comment.FlagCount = 1
	comment.IsFlagged = true

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(comment).Error; err != nil {
			return err
		}
		entry := &domain.ModerationQueueEntry{
			ID:          uuid.New(),
			ContentID:   comment.ID,
			ContentType: domain.ContentTypeProduct,
			ContextID:   comment.ProductID,
			ParentID:    comment.ParentID,
			AuthorID:    comment.AuthorID,
			GuestName:   comment.GuestName,
			Body:        comment.Body,
			FlagCount:   comment.FlagCount,
			Status:      domain.QueueStatusPending,
			ContentAt:   comment.CreatedAt,
			QueuedAt:    time.Now().UTC(),
		}
		return archiveEntry(tx, entry)
	})
}

// FindDiscussionComment finds a discussion comment by its ID
func (r *contentRepositoryImpl) FindDiscussionComment(ctx context.Context, id uuid.UUID) (*domain.DiscussionComment, error) {
	var comment domain.DiscussionComment
	if err := r.db.WithContext(ctx).First(&comment, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// FindProductComment finds a product comment by its ID
func (r *contentRepositoryImpl) FindProductComment(ctx context.Context, id uuid.UUID) (*domain.ProductComment, error) {
	var comment domain.ProductComment
	if err := r.db.WithContext(ctx).First(&comment, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// ResetFlags clears flag_count and is_flagged on a home-table row.
// Returns the number of rows affected so callers can tell the
// "row still present" restore path from the "row was removed" one.
func (r *contentRepositoryImpl) ResetFlags(ctx context.Context, contentType domain.ContentType, id uuid.UUID) (int64, error) {
	return resetFlags(r.db.WithContext(ctx), contentType, id)
}

// SetFlagCount overwrites the stored flag count with a freshly derived
// value, keeping is_flagged consistent with it. Used by reconciliation.
func (r *contentRepositoryImpl) SetFlagCount(ctx context.Context, contentType domain.ContentType, id uuid.UUID, count int) error {
	return r.db.WithContext(ctx).Table(tableFor(contentType)).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"flag_count": count,
			"is_flagged": count > 0,
		}).Error
}

func resetFlags(tx *gorm.DB, contentType domain.ContentType, id uuid.UUID) (int64, error) {
	result := tx.Table(tableFor(contentType)).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"flag_count": 0,
			"is_flagged": false,
		})
	return result.RowsAffected, result.Error
}

// archiveEntry inserts a queue entry unless one already exists for the
// content item. The (content_id, content_type) unique index closes the
// race between concurrent triggers - a losing insert is treated as done.
func archiveEntry(tx *gorm.DB, entry *domain.ModerationQueueEntry) error {
	var existing domain.ModerationQueueEntry
	err := tx.Where("content_id = ? AND content_type = ?", entry.ContentID, entry.ContentType).
		First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	if err := tx.Create(entry).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// 동시 아카이브 - 이미 큐에 들어감
			return nil
		}
		return err
	}
	return nil
}
