package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"community-moderation-api/internal/domain"
	"community-moderation-api/internal/dto"
	"community-moderation-api/internal/response"
)

func TestBlacklistService_AddKeyword(t *testing.T) {
	tests := []struct {
		name        string
		keyword     string
		wantErr     bool
		wantErrCode string
		wantStored  string
	}{
		{
			name:       "성공: 키워드는 소문자/trim으로 정규화",
			keyword:    "  SpamWord  ",
			wantStored: "spamword",
		},
		{
			name:       "성공: 이미 정규화된 키워드",
			keyword:    "slur",
			wantStored: "slur",
		},
		{
			name:        "실패: 공백뿐인 키워드",
			keyword:     "   ",
			wantErr:     true,
			wantErrCode: response.ErrCodeValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stored *domain.BlacklistKeyword
			blacklistRepo := &MockBlacklistRepository{
				CreateFunc: func(ctx context.Context, keyword *domain.BlacklistKeyword) error {
					stored = keyword
					return nil
				},
			}
			var audited *domain.AdminAction
			auditRepo := &MockAdminActionRepository{
				CreateFunc: func(ctx context.Context, action *domain.AdminAction) error {
					audited = action
					return nil
				},
			}

			actorID := uuid.New()
			svc := NewBlacklistService(blacklistRepo, auditRepo, testMetrics(), zap.NewNop())
			resp, err := svc.AddKeyword(context.Background(), actorID, &dto.AddKeywordRequest{Keyword: tt.keyword})

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				var appErr *response.AppError
				if !errors.As(err, &appErr) || appErr.Code != tt.wantErrCode {
					t.Fatalf("expected %s, got %v", tt.wantErrCode, err)
				}
				if audited != nil {
					t.Error("failed add must not write an audit record")
				}
				return
			}

			if err != nil {
				t.Fatalf("AddKeyword() error = %v", err)
			}
			if stored.Keyword != tt.wantStored {
				t.Errorf("expected stored keyword %q, got %q", tt.wantStored, stored.Keyword)
			}
			if !stored.IsActive {
				t.Error("expected new keyword active")
			}
			if stored.CreatedBy != actorID {
				t.Errorf("expected creator %v, got %v", actorID, stored.CreatedBy)
			}
			if resp.Keyword != tt.wantStored {
				t.Errorf("expected response keyword %q, got %q", tt.wantStored, resp.Keyword)
			}
			if audited == nil || audited.ActionType != domain.AdminActionAddBlacklist {
				t.Error("expected add_blacklist audit record")
			}
		})
	}
}

func TestBlacklistService_AddKeyword_DuplicateInsertsNewRow(t *testing.T) {
	created := 0
	blacklistRepo := &MockBlacklistRepository{
		CreateFunc: func(ctx context.Context, keyword *domain.BlacklistKeyword) error {
			created++
			return nil
		},
	}

	svc := NewBlacklistService(blacklistRepo, &MockAdminActionRepository{}, testMetrics(), zap.NewNop())
	for i := 0; i < 2; i++ {
		if _, err := svc.AddKeyword(context.Background(), uuid.New(), &dto.AddKeywordRequest{Keyword: "repeat"}); err != nil {
			t.Fatalf("AddKeyword() #%d error = %v", i+1, err)
		}
	}
	if created != 2 {
		t.Errorf("expected 2 inserts for repeated keyword, got %d", created)
	}
}

func TestBlacklistService_RemoveKeyword(t *testing.T) {
	keywordID := uuid.New()
	keyword := &domain.BlacklistKeyword{
		ID:        keywordID,
		Keyword:   "retired",
		CreatedBy: uuid.New(),
		IsActive:  true,
		CreatedAt: time.Now().UTC(),
	}

	blacklistRepo := &MockBlacklistRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.BlacklistKeyword, error) {
			return keyword, nil
		},
		DeactivateFunc: func(ctx context.Context, id uuid.UUID) (int64, error) {
			return 1, nil
		},
	}
	var audited *domain.AdminAction
	auditRepo := &MockAdminActionRepository{
		CreateFunc: func(ctx context.Context, action *domain.AdminAction) error {
			audited = action
			return nil
		},
	}

	svc := NewBlacklistService(blacklistRepo, auditRepo, testMetrics(), zap.NewNop())
	if err := svc.RemoveKeyword(context.Background(), uuid.New(), keywordID); err != nil {
		t.Fatalf("RemoveKeyword() error = %v", err)
	}

	if audited == nil {
		t.Fatal("expected remove_blacklist audit record")
	}
	if audited.ActionType != domain.AdminActionRemoveBlacklist {
		t.Errorf("expected action type remove_blacklist, got %v", audited.ActionType)
	}
	// 감사 메타데이터에 키워드 원문이 남는다
	if string(audited.Metadata) == "" {
		t.Error("expected keyword text in audit metadata")
	}
}

func TestBlacklistService_RemoveKeyword_AlreadyInactive(t *testing.T) {
	blacklistRepo := &MockBlacklistRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.BlacklistKeyword, error) {
			return &domain.BlacklistKeyword{ID: id, Keyword: "gone", IsActive: false}, nil
		},
		DeactivateFunc: func(ctx context.Context, id uuid.UUID) (int64, error) {
			return 0, nil
		},
	}
	audited := false
	auditRepo := &MockAdminActionRepository{
		CreateFunc: func(ctx context.Context, action *domain.AdminAction) error {
			audited = true
			return nil
		},
	}

	svc := NewBlacklistService(blacklistRepo, auditRepo, testMetrics(), zap.NewNop())
	if err := svc.RemoveKeyword(context.Background(), uuid.New(), uuid.New()); err != nil {
		t.Fatalf("expected no-op, got %v", err)
	}
	if audited {
		t.Error("no-op removal must not write an audit record")
	}
}

func TestBlacklistService_RemoveKeyword_NotFound(t *testing.T) {
	blacklistRepo := &MockBlacklistRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.BlacklistKeyword, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}

	svc := NewBlacklistService(blacklistRepo, &MockAdminActionRepository{}, testMetrics(), zap.NewNop())
	err := svc.RemoveKeyword(context.Background(), uuid.New(), uuid.New())

	var appErr *response.AppError
	if !errors.As(err, &appErr) || appErr.Code != response.ErrCodeNotFound {
		t.Fatalf("expected NOT_FOUND, got %v", err)
	}
}
