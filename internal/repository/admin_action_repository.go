package repository

import (
	"context"

	"gorm.io/gorm"

	"community-moderation-api/internal/domain"
)

// AdminActionRepository defines data access for the append-only audit log
type AdminActionRepository interface {
	Create(ctx context.Context, action *domain.AdminAction) error
	List(ctx context.Context, limit, offset int) ([]domain.AdminAction, int64, error)
}

// adminActionRepositoryImpl is the GORM implementation of AdminActionRepository
type adminActionRepositoryImpl struct {
	db *gorm.DB
}

// NewAdminActionRepository creates a new instance of AdminActionRepository
func NewAdminActionRepository(db *gorm.DB) AdminActionRepository {
	return &adminActionRepositoryImpl{db: db}
}

// Create appends an audit record. There is no update or delete path.
func (r *adminActionRepositoryImpl) Create(ctx context.Context, action *domain.AdminAction) error {
	return r.db.WithContext(ctx).Create(action).Error
}

// List returns audit records newest first, with the total for pagination
func (r *adminActionRepositoryImpl) List(ctx context.Context, limit, offset int) ([]domain.AdminAction, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&domain.AdminAction{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var actions []domain.AdminAction
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&actions).Error
	if err != nil {
		return nil, 0, err
	}
	return actions, total, nil
}
