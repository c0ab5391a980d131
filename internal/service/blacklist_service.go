package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"community-moderation-api/internal/domain"
	"community-moderation-api/internal/dto"
	"community-moderation-api/internal/metrics"
	"community-moderation-api/internal/repository"
	"community-moderation-api/internal/response"
)

// BlacklistService defines the interface for blacklist keyword management
type BlacklistService interface {
	AddKeyword(ctx context.Context, actorID uuid.UUID, req *dto.AddKeywordRequest) (*dto.KeywordResponse, error)
	RemoveKeyword(ctx context.Context, actorID, keywordID uuid.UUID) error
	ListKeywords(ctx context.Context) ([]dto.KeywordResponse, error)
}

// blacklistServiceImpl is the implementation of BlacklistService
type blacklistServiceImpl struct {
	blacklistRepo repository.BlacklistRepository
	auditRepo     repository.AdminActionRepository
	metrics       *metrics.Metrics
	logger        *zap.Logger
}

// NewBlacklistService creates a new instance of BlacklistService
func NewBlacklistService(
	blacklistRepo repository.BlacklistRepository,
	auditRepo repository.AdminActionRepository,
	m *metrics.Metrics,
	logger *zap.Logger,
) BlacklistService {
	return &blacklistServiceImpl{
		blacklistRepo: blacklistRepo,
		auditRepo:     auditRepo,
		metrics:       m,
		logger:        logger,
	}
}

// AddKeyword normalizes and inserts a new active keyword. Re-adding an
// existing keyword inserts a fresh row - each add carries its own
// creator and audit trail.
func (s *blacklistServiceImpl) AddKeyword(ctx context.Context, actorID uuid.UUID, req *dto.AddKeywordRequest) (*dto.KeywordResponse, error) {
	normalized := NormalizeKeyword(req.Keyword)
	if normalized == "" {
		return nil, response.NewAppError(response.ErrCodeValidation, "Keyword must not be empty", "")
	}

	keyword := &domain.BlacklistKeyword{
		ID:        uuid.New(),
		Keyword:   normalized,
		Reason:    req.Reason,
		CreatedBy: actorID,
		IsActive:  true,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.blacklistRepo.Create(ctx, keyword); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to add keyword", err.Error())
	}

	recordAdminAction(ctx, s.auditRepo, s.metrics, s.logger, &domain.AdminAction{
		ID:         uuid.New(),
		ActorID:    actorID,
		ActionType: domain.AdminActionAddBlacklist,
		TargetType: "blacklist_keyword",
		TargetID:   keyword.ID,
		Reason:     req.Reason,
		Metadata: auditMetadata(s.logger, map[string]interface{}{
			"keyword": normalized,
		}),
	})

	resp := dto.FromBlacklistKeyword(keyword)
	return &resp, nil
}

// RemoveKeyword deactivates a keyword without deleting the row, so old
// audit records keep a valid target. Removing an already-inactive
// keyword is a no-op and writes no audit record.
func (s *blacklistServiceImpl) RemoveKeyword(ctx context.Context, actorID, keywordID uuid.UUID) error {
	keyword, err := s.blacklistRepo.FindByID(ctx, keywordID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewAppError(response.ErrCodeNotFound, "Keyword not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to fetch keyword", err.Error())
	}

	affected, err := s.blacklistRepo.Deactivate(ctx, keywordID)
	if err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to remove keyword", err.Error())
	}
	if affected == 0 {
		return nil
	}

	recordAdminAction(ctx, s.auditRepo, s.metrics, s.logger, &domain.AdminAction{
		ID:         uuid.New(),
		ActorID:    actorID,
		ActionType: domain.AdminActionRemoveBlacklist,
		TargetType: "blacklist_keyword",
		TargetID:   keywordID,
		Metadata: auditMetadata(s.logger, map[string]interface{}{
			"keyword": keyword.Keyword,
		}),
	})
	return nil
}

// ListKeywords returns the active keywords, newest first
func (s *blacklistServiceImpl) ListKeywords(ctx context.Context) ([]dto.KeywordResponse, error) {
	keywords, err := s.blacklistRepo.ListActive(ctx)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list keywords", err.Error())
	}

	result := make([]dto.KeywordResponse, 0, len(keywords))
	for i := range keywords {
		result = append(result, dto.FromBlacklistKeyword(&keywords[i]))
	}
	return result, nil
}
