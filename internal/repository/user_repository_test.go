package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"community-moderation-api/internal/domain"
)

func TestUserRepository_UpdateBanState_Ban(t *testing.T) {
	db := setupModerationTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &domain.User{
		BaseModel:   domain.BaseModel{ID: uuid.New()},
		DisplayName: "trouble",
	}
	db.Create(user)

	banned, err := repo.UpdateBanState(ctx, user.ID, true, "repeated spam")
	if err != nil {
		t.Fatalf("UpdateBanState() error = %v", err)
	}
	if !banned.IsBanned {
		t.Error("expected is_banned true")
	}
	if banned.BannedAt == nil {
		t.Error("expected banned_at set")
	}
	if banned.BanReason == nil || *banned.BanReason != "repeated spam" {
		t.Errorf("expected ban reason recorded, got %v", banned.BanReason)
	}
}

func TestUserRepository_UpdateBanState_Unban(t *testing.T) {
	db := setupModerationTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &domain.User{
		BaseModel:   domain.BaseModel{ID: uuid.New()},
		DisplayName: "reformed",
	}
	db.Create(user)

	if _, err := repo.UpdateBanState(ctx, user.ID, true, "spam"); err != nil {
		t.Fatalf("UpdateBanState() ban error = %v", err)
	}

	// 해제 시 사유/시각도 함께 비운다
	unbanned, err := repo.UpdateBanState(ctx, user.ID, false, "")
	if err != nil {
		t.Fatalf("UpdateBanState() unban error = %v", err)
	}
	if unbanned.IsBanned {
		t.Error("expected is_banned false")
	}
	if unbanned.BannedAt != nil {
		t.Errorf("expected banned_at cleared, got %v", unbanned.BannedAt)
	}
	if unbanned.BanReason != nil {
		t.Errorf("expected ban_reason cleared, got %v", unbanned.BanReason)
	}
}

func TestUserRepository_UpdateBanState_NotFound(t *testing.T) {
	db := setupModerationTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	_, err := repo.UpdateBanState(ctx, uuid.New(), true, "no such user")
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}
