package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"community-moderation-api/internal/domain"
)

// BlacklistRepository defines data access for blacklist keywords
type BlacklistRepository interface {
	Create(ctx context.Context, keyword *domain.BlacklistKeyword) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.BlacklistKeyword, error)
	ListActive(ctx context.Context) ([]domain.BlacklistKeyword, error)
	Deactivate(ctx context.Context, id uuid.UUID) (int64, error)
}

// blacklistRepositoryImpl is the GORM implementation of BlacklistRepository
type blacklistRepositoryImpl struct {
	db *gorm.DB
}

// NewBlacklistRepository creates a new instance of BlacklistRepository
func NewBlacklistRepository(db *gorm.DB) BlacklistRepository {
	return &blacklistRepositoryImpl{db: db}
}

// Create inserts a keyword row. Duplicate keywords are intentionally
// allowed - each add is its own row with its own creator.
func (r *blacklistRepositoryImpl) Create(ctx context.Context, keyword *domain.BlacklistKeyword) error {
	return r.db.WithContext(ctx).Create(keyword).Error
}

// FindByID finds a keyword row by its ID
func (r *blacklistRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.BlacklistKeyword, error) {
	var keyword domain.BlacklistKeyword
	if err := r.db.WithContext(ctx).First(&keyword, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &keyword, nil
}

// ListActive returns active keywords, newest first
func (r *blacklistRepositoryImpl) ListActive(ctx context.Context) ([]domain.BlacklistKeyword, error) {
	var keywords []domain.BlacklistKeyword
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at DESC").
		Find(&keywords).Error
	if err != nil {
		return nil, err
	}
	return keywords, nil
}

// Deactivate flips is_active off without deleting the row. Returns the
// affected row count so callers can distinguish a missing keyword.
func (r *blacklistRepositoryImpl) Deactivate(ctx context.Context, id uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Model(&domain.BlacklistKeyword{}).
		Where("id = ? AND is_active = ?", id, true).
		Update("is_active", false)
	return result.RowsAffected, result.Error
}
