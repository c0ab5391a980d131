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

// FlagService defines the interface for user-initiated flagging
type FlagService interface {
	FlagContent(ctx context.Context, userID uuid.UUID, req *dto.FlagContentRequest) (*dto.FlagContentResponse, error)
}

// flagServiceImpl is the implementation of FlagService
type flagServiceImpl struct {
	flagRepo    repository.FlagRepository
	contentRepo repository.ContentRepository
	revalidator Revalidator
	threshold   int
	metrics     *metrics.Metrics
	logger      *zap.Logger
}

// NewFlagService creates a new instance of FlagService
func NewFlagService(
	flagRepo repository.FlagRepository,
	contentRepo repository.ContentRepository,
	revalidator Revalidator,
	threshold int,
	m *metrics.Metrics,
	logger *zap.Logger,
) FlagService {
	return &flagServiceImpl{
		flagRepo:    flagRepo,
		contentRepo: contentRepo,
		revalidator: revalidator,
		threshold:   threshold,
		metrics:     m,
		logger:      logger,
	}
}

// FlagContent records one user's flag on a content item. The ledger's
// unique constraint rejects a second flag from the same user; crossing
// the configured threshold archives the item into the moderation queue.
func (s *flagServiceImpl) FlagContent(ctx context.Context, userID uuid.UUID, req *dto.FlagContentRequest) (*dto.FlagContentResponse, error) {
	if !req.ContentType.Valid() {
		return nil, response.NewAppError(response.ErrCodeValidation, "Unknown content type", string(req.ContentType))
	}

	contextID, err := s.lookupContextID(ctx, req.ContentType, req.ContentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Content not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch content", err.Error())
	}

	result, err := s.flagRepo.AddFlag(ctx, req.ContentType, req.ContentID, userID, s.threshold)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateFlag) {
			return nil, response.NewAppError(response.ErrCodeDuplicateFlag, "You have already flagged this content", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to record flag", err.Error())
	}

	s.metrics.IncrementFlags()
	if result.Archived {
		s.logger.Info("Content archived into moderation queue",
			zap.String("content_id", req.ContentID.String()),
			zap.String("content_type", string(req.ContentType)),
			zap.Int("flag_count", result.FlagCount))
		if s.revalidator != nil {
			s.revalidator.ContentChanged(ctx, req.ContentType, contextID)
		}
	}

	return &dto.FlagContentResponse{
		ContentID: req.ContentID,
		FlagCount: result.FlagCount,
		Archived:  result.Archived,
	}, nil
}

func (s *flagServiceImpl) lookupContextID(ctx context.Context, contentType domain.ContentType, contentID uuid.UUID) (uuid.UUID, error) {
	if contentType == domain.ContentTypeProduct {
		comment, err := s.contentRepo.FindProductComment(ctx, contentID)
		if err != nil {
			return uuid.Nil, err
		}
		return comment.ProductID, nil
	}
	comment, err := s.contentRepo.FindDiscussionComment(ctx, contentID)
	if err != nil {
		return uuid.Nil, err
	}
	return comment.DiscussionID, nil
}
