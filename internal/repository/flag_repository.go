package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"community-moderation-api/internal/domain"
)

// ErrDuplicateFlag is returned when a user flags the same content twice
var ErrDuplicateFlag = errors.New("duplicate flag")

// FlagResult reports the outcome of a flag insertion
type FlagResult struct {
	FlagCount int
	Archived  bool
}

// FlagRepository defines data access for the flag ledger
type FlagRepository interface {
	AddFlag(ctx context.Context, contentType domain.ContentType, contentID, userID uuid.UUID, threshold int) (*FlagResult, error)
	CountByContent(ctx context.Context, contentType domain.ContentType, contentID uuid.UUID) (int64, error)
	DistinctFlaggedContent(ctx context.Context) ([]domain.Flag, error)
}

// flagRepositoryImpl is the GORM implementation of FlagRepository
type flagRepositoryImpl struct {
	db *gorm.DB
}

// NewFlagRepository creates a new instance of FlagRepository
func NewFlagRepository(db *gorm.DB) FlagRepository {
	return &flagRepositoryImpl{db: db}
}

// AddFlag records one user's flag on a content item and keeps the derived
// state consistent in a single transaction: the ledger row is inserted, the
// home row's flag_count is refreshed from COUNT(*), and when the count
// reaches the threshold a snapshot is archived into the moderation queue.
// A second flag by the same user fails with ErrDuplicateFlag and changes
// nothing.
func (r *flagRepositoryImpl) AddFlag(ctx context.Context, contentType domain.ContentType, contentID, userID uuid.UUID, threshold int) (*FlagResult, error) {
	result := &FlagResult{}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		flag := &domain.Flag{
			ID:          uuid.New(),
			ContentID:   contentID,
			ContentType: contentType,
			UserID:      userID,
			CreatedAt:   time.Now().UTC(),
		}
		if err := tx.Create(flag).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrDuplicateFlag
			}
			return err
		}

		// 파생값은 항상 원장에서 다시 센다
		var count int64
		if err := tx.Model(&domain.Flag{}).
			Where("content_id = ? AND content_type = ?", contentID, contentType).
			Count(&count).Error; err != nil {
			return err
		}
		result.FlagCount = int(count)

		updates := map[string]interface{}{
			"flag_count": count,
			"is_flagged": true,
		}
		if err := tx.Table(tableFor(contentType)).Where("id = ?", contentID).Updates(updates).Error; err != nil {
			return err
		}

		if int(count) < threshold {
			return nil
		}

		entry, err := snapshotContent(tx, contentType, contentID, int(count))
		if err != nil {
			return err
		}
		if err := archiveEntry(tx, entry); err != nil {
			return err
		}
		result.Archived = true
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// CountByContent returns the live flag count for a content item
func (r *flagRepositoryImpl) CountByContent(ctx context.Context, contentType domain.ContentType, contentID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Flag{}).
		Where("content_id = ? AND content_type = ?", contentID, contentType).
		Count(&count).Error
	return count, err
}

// DistinctFlaggedContent returns one ledger row per flagged content item,
// used by the reconciliation job to re-derive home-row counts.
func (r *flagRepositoryImpl) DistinctFlaggedContent(ctx context.Context) ([]domain.Flag, error) {
	var flags []domain.Flag
	err := r.db.WithContext(ctx).Model(&domain.Flag{}).
		Distinct("content_id", "content_type").
		Find(&flags).Error
	return flags, err
}

// snapshotContent loads the home row inside the transaction and builds the
// queue entry for it
func snapshotContent(tx *gorm.DB, contentType domain.ContentType, contentID uuid.UUID, flagCount int) (*domain.ModerationQueueEntry, error) {
	entry := &domain.ModerationQueueEntry{
		ID:          uuid.New(),
		ContentID:   contentID,
		ContentType: contentType,
		FlagCount:   flagCount,
		Status:      domain.QueueStatusPending,
		QueuedAt:    time.Now().UTC(),
	}

	switch contentType {
	case domain.ContentTypeProduct:
		var comment domain.ProductComment
		if err := tx.First(&comment, "id = ?", contentID).Error; err != nil {
			return nil, err
		}
		entry.ContextID = comment.ProductID
		entry.ParentID = comment.ParentID
		entry.AuthorID = comment.AuthorID
		entry.GuestName = comment.GuestName
		entry.Body = comment.Body
		entry.ContentAt = comment.CreatedAt
	default:
		var comment domain.DiscussionComment
		if err := tx.First(&comment, "id = ?", contentID).Error; err != nil {
			return nil, err
		}
		entry.ContextID = comment.DiscussionID
		entry.ParentID = comment.ParentID
		entry.AuthorID = comment.AuthorID
		entry.GuestName = comment.GuestName
		entry.Body = comment.Body
		entry.ContentAt = comment.CreatedAt
	}

	return entry, nil
}
