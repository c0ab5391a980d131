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

// previewLength bounds the content preview stored in audit metadata
const previewLength = 100

// ModerationService defines the interface for queue review operations
type ModerationService interface {
	ListQueue(ctx context.Context, limit, offset int) (*dto.QueueListResponse, error)
	ListQueueForUser(ctx context.Context, userID uuid.UUID) ([]dto.QueueEntryResponse, error)
	RestoreContent(ctx context.Context, actorID, queueID uuid.UUID, reason string) error
	PurgeContent(ctx context.Context, actorID uuid.UUID, contentType domain.ContentType, contentID uuid.UUID, reason string) error
	SubmitDispute(ctx context.Context, actorID, queueID uuid.UUID, reason string) (*dto.QueueEntryResponse, error)
	ListAdminActions(ctx context.Context, limit, offset int) (*dto.AdminActionListResponse, error)
}

// moderationServiceImpl is the implementation of ModerationService
type moderationServiceImpl struct {
	queueRepo   repository.QueueRepository
	auditRepo   repository.AdminActionRepository
	revalidator Revalidator
	metrics     *metrics.Metrics
	logger      *zap.Logger
}

// NewModerationService creates a new instance of ModerationService
func NewModerationService(
	queueRepo repository.QueueRepository,
	auditRepo repository.AdminActionRepository,
	revalidator Revalidator,
	m *metrics.Metrics,
	logger *zap.Logger,
) ModerationService {
	return &moderationServiceImpl{
		queueRepo:   queueRepo,
		auditRepo:   auditRepo,
		revalidator: revalidator,
		metrics:     m,
		logger:      logger,
	}
}

// ListQueue returns the moderation queue page for admin review, worst
// offenders first
func (s *moderationServiceImpl) ListQueue(ctx context.Context, limit, offset int) (*dto.QueueListResponse, error) {
	limit = normalizeLimit(limit)
	if offset < 0 {
		offset = 0
	}

	entries, total, err := s.queueRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list moderation queue", err.Error())
	}

	resp := &dto.QueueListResponse{
		Entries: make([]dto.QueueEntryResponse, 0, len(entries)),
		Total:   total,
		Limit:   limit,
		Offset:  offset,
	}
	for i := range entries {
		resp.Entries = append(resp.Entries, dto.FromQueueEntry(&entries[i]))
	}
	return resp, nil
}

// ListQueueForUser returns the caller's own queued items. Guest-authored
// items carry no author_id and are unreachable here.
func (s *moderationServiceImpl) ListQueueForUser(ctx context.Context, userID uuid.UUID) ([]dto.QueueEntryResponse, error) {
	entries, err := s.queueRepo.ListByAuthor(ctx, userID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list queued content", err.Error())
	}

	result := make([]dto.QueueEntryResponse, 0, len(entries))
	for i := range entries {
		result = append(result, dto.FromQueueEntry(&entries[i]))
	}
	return result, nil
}

// RestoreContent puts a queued item back into circulation and always
// writes an audit record with a preview of what was restored.
func (s *moderationServiceImpl) RestoreContent(ctx context.Context, actorID, queueID uuid.UUID, reason string) error {
	entry, err := s.queueRepo.FindByID(ctx, queueID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewAppError(response.ErrCodeNotFound, "Queue entry not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to fetch queue entry", err.Error())
	}

	if err := s.queueRepo.RestoreContent(ctx, entry); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to restore content", err.Error())
	}

	recordAdminAction(ctx, s.auditRepo, s.metrics, s.logger, &domain.AdminAction{
		ID:         uuid.New(),
		ActorID:    actorID,
		ActionType: domain.AdminActionRestore,
		TargetType: string(entry.ContentType),
		TargetID:   entry.ContentID,
		Reason:     reason,
		Metadata: auditMetadata(s.logger, map[string]interface{}{
			"preview":    contentPreview(entry.Body, previewLength),
			"flag_count": entry.FlagCount,
			"context_id": entry.ContextID.String(),
		}),
	})

	if s.revalidator != nil {
		s.revalidator.ContentChanged(ctx, entry.ContentType, entry.ContextID)
	}
	return nil
}

// PurgeContent permanently removes a queued item. Purging content that
// is not queued is an idempotent no-op and writes no audit record.
func (s *moderationServiceImpl) PurgeContent(ctx context.Context, actorID uuid.UUID, contentType domain.ContentType, contentID uuid.UUID, reason string) error {
	if !contentType.Valid() {
		return response.NewAppError(response.ErrCodeValidation, "Unknown content type", string(contentType))
	}

	purged, err := s.queueRepo.PurgeContent(ctx, contentType, contentID)
	if err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to purge content", err.Error())
	}
	if purged == nil {
		// 큐에 없는 콘텐츠: 아무 일도 안 일어났으므로 감사 기록도 없음
		return nil
	}

	recordAdminAction(ctx, s.auditRepo, s.metrics, s.logger, &domain.AdminAction{
		ID:         uuid.New(),
		ActorID:    actorID,
		ActionType: domain.AdminActionPurge,
		TargetType: string(contentType),
		TargetID:   contentID,
		Reason:     reason,
		Metadata: auditMetadata(s.logger, map[string]interface{}{
			"preview":    contentPreview(purged.Body, previewLength),
			"flag_count": purged.FlagCount,
			"context_id": purged.ContextID.String(),
		}),
	})

	if s.revalidator != nil {
		s.revalidator.ContentChanged(ctx, contentType, purged.ContextID)
	}
	return nil
}

// SubmitDispute lets the author of a queued item appeal it. Only the
// snapshot's author may dispute; guest items have no author and cannot
// be disputed. The item stays in the queue, marked disputed.
func (s *moderationServiceImpl) SubmitDispute(ctx context.Context, actorID, queueID uuid.UUID, reason string) (*dto.QueueEntryResponse, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, response.NewAppError(response.ErrCodeValidation, "Dispute reason must not be empty", "")
	}

	entry, err := s.queueRepo.FindByID(ctx, queueID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Queue entry not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch queue entry", err.Error())
	}

	if entry.AuthorID == nil || *entry.AuthorID != actorID {
		return nil, response.NewAppError(response.ErrCodeForbidden, "Only the author may dispute this content", "")
	}

	if err := s.queueRepo.UpdateDispute(ctx, queueID, reason); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to record dispute", err.Error())
	}

	entry.Status = domain.QueueStatusDisputed
	entry.DisputeReason = &reason
	resp := dto.FromQueueEntry(entry)
	return &resp, nil
}

// ListAdminActions returns the audit trail page, newest first
func (s *moderationServiceImpl) ListAdminActions(ctx context.Context, limit, offset int) (*dto.AdminActionListResponse, error) {
	limit = normalizeLimit(limit)
	if offset < 0 {
		offset = 0
	}

	actions, total, err := s.auditRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list admin actions", err.Error())
	}

	resp := &dto.AdminActionListResponse{
		Actions: make([]dto.AdminActionResponse, 0, len(actions)),
		Total:   total,
		Limit:   limit,
		Offset:  offset,
	}
	for i := range actions {
		resp.Actions = append(resp.Actions, dto.FromAdminAction(&actions[i]))
	}
	return resp, nil
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return 50
	}
	if limit > 200 {
		return 200
	}
	return limit
}
