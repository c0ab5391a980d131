package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"community-moderation-api/internal/domain"
	"community-moderation-api/internal/dto"
	"community-moderation-api/internal/metrics"
	"community-moderation-api/internal/repository"
	"community-moderation-api/internal/response"
)

// BanService defines the interface for user ban management
type BanService interface {
	ToggleBan(ctx context.Context, actorID, userID uuid.UUID, req *dto.ToggleBanRequest) (*dto.UserBanResponse, error)
	GetBanState(ctx context.Context, userID uuid.UUID) (*dto.UserBanResponse, error)
}

// banServiceImpl is the implementation of BanService
type banServiceImpl struct {
	userRepo  repository.UserRepository
	auditRepo repository.AdminActionRepository
	metrics   *metrics.Metrics
	logger    *zap.Logger
}

// NewBanService creates a new instance of BanService
func NewBanService(
	userRepo repository.UserRepository,
	auditRepo repository.AdminActionRepository,
	m *metrics.Metrics,
	logger *zap.Logger,
) BanService {
	return &banServiceImpl{
		userRepo:  userRepo,
		auditRepo: auditRepo,
		metrics:   m,
		logger:    logger,
	}
}

// ToggleBan sets or clears a user's ban. Unbanning clears the ban
// timestamp and reason. Enforcement happens at the content write
// boundary, so the toggle itself is just a state change plus audit.
func (s *banServiceImpl) ToggleBan(ctx context.Context, actorID, userID uuid.UUID, req *dto.ToggleBanRequest) (*dto.UserBanResponse, error) {
	user, err := s.userRepo.UpdateBanState(ctx, userID, req.Ban, req.Reason)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "User not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update ban state", err.Error())
	}

	actionType := domain.AdminActionBan
	if !req.Ban {
		actionType = domain.AdminActionUnban
	}
	recordAdminAction(ctx, s.auditRepo, s.metrics, s.logger, &domain.AdminAction{
		ID:         uuid.New(),
		ActorID:    actorID,
		ActionType: actionType,
		TargetType: "user",
		TargetID:   userID,
		Reason:     req.Reason,
	})

	s.logger.Info("User ban state changed",
		zap.String("user_id", userID.String()),
		zap.Bool("banned", req.Ban))

	return dto.FromUser(user), nil
}

// GetBanState returns a user's current ban state
func (s *banServiceImpl) GetBanState(ctx context.Context, userID uuid.UUID) (*dto.UserBanResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "User not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch user", err.Error())
	}
	return dto.FromUser(user), nil
}
