package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"community-moderation-api/internal/domain"
)

// QueueRepository defines data access for the moderation queue
type QueueRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.ModerationQueueEntry, error)
	FindByContent(ctx context.Context, contentType domain.ContentType, contentID uuid.UUID) (*domain.ModerationQueueEntry, error)
	List(ctx context.Context, limit, offset int) ([]domain.ModerationQueueEntry, int64, error)
	ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]domain.ModerationQueueEntry, error)
	UpdateDispute(ctx context.Context, id uuid.UUID, reason string) error
	RestoreContent(ctx context.Context, entry *domain.ModerationQueueEntry) error
	PurgeContent(ctx context.Context, contentType domain.ContentType, contentID uuid.UUID) (*domain.ModerationQueueEntry, error)
}

// queueRepositoryImpl is the GORM implementation of QueueRepository
type queueRepositoryImpl struct {
	db *gorm.DB
}

// NewQueueRepository creates a new instance of QueueRepository
func NewQueueRepository(db *gorm.DB) QueueRepository {
	return &queueRepositoryImpl{db: db}
}

// FindByID finds a queue entry by its ID
func (r *queueRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.ModerationQueueEntry, error) {
	var entry domain.ModerationQueueEntry
	if err := r.db.WithContext(ctx).First(&entry, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// FindByContent finds the queue entry for a content item, if any
func (r *queueRepositoryImpl) FindByContent(ctx context.Context, contentType domain.ContentType, contentID uuid.UUID) (*domain.ModerationQueueEntry, error) {
	var entry domain.ModerationQueueEntry
	err := r.db.WithContext(ctx).
		Where("content_id = ? AND content_type = ?", contentID, contentType).
		First(&entry).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// List returns queue entries ordered for review: most-flagged first, then
// most recently queued. Returns the total count for pagination.
func (r *queueRepositoryImpl) List(ctx context.Context, limit, offset int) ([]domain.ModerationQueueEntry, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&domain.ModerationQueueEntry{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var entries []domain.ModerationQueueEntry
	err := r.db.WithContext(ctx).
		Order("flag_count DESC, queued_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&entries).Error
	if err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}

// ListByAuthor returns the queue entries whose snapshot belongs to the
// given author, newest first
func (r *queueRepositoryImpl) ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]domain.ModerationQueueEntry, error) {
	var entries []domain.ModerationQueueEntry
	err := r.db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Order("queued_at DESC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// UpdateDispute marks an entry disputed and records the author's reason
func (r *queueRepositoryImpl) UpdateDispute(ctx context.Context, id uuid.UUID, reason string) error {
	result := r.db.WithContext(ctx).Model(&domain.ModerationQueueEntry{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":         domain.QueueStatusDisputed,
			"dispute_reason": reason,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// RestoreContent puts a queued item back into circulation in one
// transaction: the home row gets its flag state cleared (or is rebuilt from
// the snapshot when it no longer exists), the flag ledger for the item is
// wiped so the next flag starts from zero, and the queue entry is removed.
func (r *queueRepositoryImpl) RestoreContent(ctx context.Context, entry *domain.ModerationQueueEntry) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := restoreHomeRow(tx, entry); err != nil {
			return err
		}

		if err := tx.Where("content_id = ? AND content_type = ?", entry.ContentID, entry.ContentType).
			Delete(&domain.Flag{}).Error; err != nil {
			return err
		}

		return tx.Delete(&domain.ModerationQueueEntry{}, "id = ?", entry.ID).Error
	})
}

// PurgeContent permanently removes a flagged item: home row, flag ledger
// and queue entry all go in one transaction. Purging content that is not
// queued is a no-op and returns nil without error.
func (r *queueRepositoryImpl) PurgeContent(ctx context.Context, contentType domain.ContentType, contentID uuid.UUID) (*domain.ModerationQueueEntry, error) {
	var purged *domain.ModerationQueueEntry

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var entry domain.ModerationQueueEntry
		err := tx.Where("content_id = ? AND content_type = ?", contentID, contentType).
			First(&entry).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		// 홈 테이블에서 완전 삭제 (soft delete 아님)
		if err := deleteHomeRow(tx, contentType, contentID); err != nil {
			return err
		}

		if err := tx.Where("content_id = ? AND content_type = ?", contentID, contentType).
			Delete(&domain.Flag{}).Error; err != nil {
			return err
		}

		if err := tx.Delete(&domain.ModerationQueueEntry{}, "id = ?", entry.ID).Error; err != nil {
			return err
		}

		purged = &entry
		return nil
	})
	if err != nil {
		return nil, err
	}
	return purged, nil
}

func deleteHomeRow(tx *gorm.DB, contentType domain.ContentType, contentID uuid.UUID) error {
	if contentType == domain.ContentTypeProduct {
		return tx.Unscoped().Delete(&domain.ProductComment{}, "id = ?", contentID).Error
	}
	return tx.Unscoped().Delete(&domain.DiscussionComment{}, "id = ?", contentID).Error
}

// restoreHomeRow clears the flag state on the existing home row, or
// rebuilds the row from the queue snapshot when the original was deleted
// while the item sat in the queue.
func restoreHomeRow(tx *gorm.DB, entry *domain.ModerationQueueEntry) error {
	updates := map[string]interface{}{
		"flag_count": 0,
		"is_flagged": false,
		"deleted_at": nil,
	}
	result := tx.Table(tableFor(entry.ContentType)).
		Unscoped().
		Where("id = ?", entry.ContentID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		return nil
	}

	now := time.Now().UTC()
	base := domain.BaseModel{
		ID:        entry.ContentID,
		CreatedAt: entry.ContentAt,
		UpdatedAt: now,
	}
	if entry.ContentType == domain.ContentTypeProduct {
		return tx.Create(&domain.ProductComment{
			BaseModel: base,
			ProductID: entry.ContextID,
			AuthorID:  entry.AuthorID,
			GuestName: entry.GuestName,
			ParentID:  entry.ParentID,
			Body:      entry.Body,
		}).Error
	}
	return tx.Create(&domain.DiscussionComment{
		BaseModel:    base,
		DiscussionID: entry.ContextID,
		AuthorID:     entry.AuthorID,
		GuestName:    entry.GuestName,
		ParentID:     entry.ParentID,
		Body:         entry.Body,
	}).Error
}
