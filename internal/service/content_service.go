package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"community-moderation-api/internal/domain"
	"community-moderation-api/internal/dto"
	"community-moderation-api/internal/metrics"
	"community-moderation-api/internal/repository"
	"community-moderation-api/internal/response"
)

// ContentService defines the interface for comment creation and retrieval
type ContentService interface {
	CreateContent(ctx context.Context, authorID *uuid.UUID, req *dto.CreateContentRequest) (*dto.ContentResponse, error)
	GetContent(ctx context.Context, contentType domain.ContentType, contentID uuid.UUID) (*dto.ContentResponse, error)
}

// contentServiceImpl is the implementation of ContentService
type contentServiceImpl struct {
	contentRepo   repository.ContentRepository
	userRepo      repository.UserRepository
	blacklistRepo repository.BlacklistRepository
	safety        SafetyChecker
	revalidator   Revalidator
	bodyMaxLength int
	metrics       *metrics.Metrics
	logger        *zap.Logger
}

// NewContentService creates a new instance of ContentService
func NewContentService(
	contentRepo repository.ContentRepository,
	userRepo repository.UserRepository,
	blacklistRepo repository.BlacklistRepository,
	safety SafetyChecker,
	revalidator Revalidator,
	bodyMaxLength int,
	m *metrics.Metrics,
	logger *zap.Logger,
) ContentService {
	return &contentServiceImpl{
		contentRepo:   contentRepo,
		userRepo:      userRepo,
		blacklistRepo: blacklistRepo,
		safety:        safety,
		revalidator:   revalidator,
		bodyMaxLength: bodyMaxLength,
		metrics:       m,
		logger:        logger,
	}
}

// CreateContent validates and persists a new comment. The order of the
// gates matters: ban check first, then input validation, then the AI
// safety check (guests only, hard reject), then the keyword blacklist
// (everyone, soft flag). A blacklist hit still persists the comment -
// flagged and archived - where a safety rejection persists nothing.
func (s *contentServiceImpl) CreateContent(ctx context.Context, authorID *uuid.UUID, req *dto.CreateContentRequest) (*dto.ContentResponse, error) {
	if !req.ContentType.Valid() {
		return nil, response.NewAppError(response.ErrCodeValidation, "Unknown content type", string(req.ContentType))
	}

	if authorID != nil {
		user, err := s.userRepo.FindByID(ctx, *authorID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, response.NewAppError(response.ErrCodeUnauthorized, "Unknown user", "")
			}
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to check user state", err.Error())
		}
		if user.IsBanned {
			return nil, response.NewAppError(response.ErrCodeUserBanned, "Banned users cannot post content", "")
		}
	}

	body := strings.TrimSpace(req.Body)
	if body == "" {
		return nil, response.NewAppError(response.ErrCodeValidation, "Body must not be empty", "")
	}
	if s.bodyMaxLength > 0 && len([]rune(body)) > s.bodyMaxLength {
		return nil, response.NewAppError(response.ErrCodeValidation, "Body exceeds maximum length", "")
	}

	guestName := strings.TrimSpace(req.GuestName)
	if authorID == nil {
		if guestName == "" {
			return nil, response.NewAppError(response.ErrCodeValidation, "Guest posts require a guest name", "")
		}

		// 게스트만 AI 안전성 검사를 거친다
		isSafe, reason, err := s.safety.Check(ctx, body)
		if err != nil {
			return nil, response.NewAppError(response.ErrCodeInternal, "Content safety check failed", err.Error())
		}
		if !isSafe {
			s.metrics.IncrementContentRejected()
			s.logger.Info("Guest content rejected by safety check",
				zap.String("content_type", string(req.ContentType)),
				zap.String("reason", reason))
			return nil, response.NewAppError(response.ErrCodeContentRejected, "Content rejected by safety check", reason)
		}
	}

	keywords, err := s.blacklistRepo.ListActive(ctx)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load blacklist", err.Error())
	}
	matched, autoFlag := matchBlacklist(body, keywords)

	var resp *dto.ContentResponse
	switch req.ContentType {
	case domain.ContentTypeProduct:
		comment := &domain.ProductComment{
			ProductID: req.ContextID,
			AuthorID:  authorID,
			GuestName: guestName,
			ParentID:  req.ParentID,
			Body:      body,
		}
		if err := s.contentRepo.CreateProductComment(ctx, comment, autoFlag); err != nil {
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create comment", err.Error())
		}
		resp = dto.FromProductComment(comment)
	default:
		comment := &domain.DiscussionComment{
			DiscussionID: req.ContextID,
			AuthorID:     authorID,
			GuestName:    guestName,
			ParentID:     req.ParentID,
			Body:         body,
		}
		if err := s.contentRepo.CreateDiscussionComment(ctx, comment, autoFlag); err != nil {
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create comment", err.Error())
		}
		resp = dto.FromDiscussionComment(comment)
	}

	s.metrics.IncrementContentCreated(string(req.ContentType))
	if autoFlag {
		s.metrics.IncrementContentAutoFlagged()
		s.logger.Info("Content auto-flagged by blacklist",
			zap.String("content_id", resp.ContentID.String()),
			zap.String("content_type", string(req.ContentType)),
			zap.String("keyword", matched))
	}

	if s.revalidator != nil {
		s.revalidator.ContentChanged(ctx, req.ContentType, req.ContextID)
	}

	return resp, nil
}

// GetContent returns a single comment by type and ID
func (s *contentServiceImpl) GetContent(ctx context.Context, contentType domain.ContentType, contentID uuid.UUID) (*dto.ContentResponse, error) {
	if !contentType.Valid() {
		return nil, response.NewAppError(response.ErrCodeValidation, "Unknown content type", string(contentType))
	}

	if contentType == domain.ContentTypeProduct {
		comment, err := s.contentRepo.FindProductComment(ctx, contentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, response.NewAppError(response.ErrCodeNotFound, "Comment not found", "")
			}
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch comment", err.Error())
		}
		return dto.FromProductComment(comment), nil
	}

	comment, err := s.contentRepo.FindDiscussionComment(ctx, contentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Comment not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch comment", err.Error())
	}
	return dto.FromDiscussionComment(comment), nil
}
