package job

import (
	"context"

	"go.uber.org/zap"

	"community-moderation-api/internal/domain"
	"community-moderation-api/internal/repository"
)

// ReconcileJob repairs flag_count drift on the content home tables.
// The count stored on each row is derived state; the flag ledger is the
// source of truth. Manual DB surgery or partial failures can leave the
// two out of sync, and this job re-derives the count for every content
// item that has ledger rows.
type ReconcileJob struct {
	flagRepo    repository.FlagRepository
	contentRepo repository.ContentRepository
	logger      *zap.Logger
}

// NewReconcileJob creates a new ReconcileJob instance
func NewReconcileJob(
	flagRepo repository.FlagRepository,
	contentRepo repository.ContentRepository,
	logger *zap.Logger,
) *ReconcileJob {
	return &ReconcileJob{
		flagRepo:    flagRepo,
		contentRepo: contentRepo,
		logger:      logger,
	}
}

// Run executes one reconciliation pass
func (j *ReconcileJob) Run() {
	ctx := context.Background()

	j.logger.Info("Starting flag-count reconciliation")

	flagged, err := j.flagRepo.DistinctFlaggedContent(ctx)
	if err != nil {
		j.logger.Error("Failed to list flagged content", zap.Error(err))
		return
	}

	if len(flagged) == 0 {
		j.logger.Info("No flagged content to reconcile")
		return
	}

	repaired := 0
	failed := 0
	for _, flag := range flagged {
		if err := j.reconcileOne(ctx, flag.ContentType, flag); err != nil {
			j.logger.Error("Failed to reconcile flag count",
				zap.String("content_id", flag.ContentID.String()),
				zap.String("content_type", string(flag.ContentType)),
				zap.Error(err))
			failed++
			continue
		}
		repaired++
	}

	j.logger.Info("Flag-count reconciliation completed",
		zap.Int("content_items", len(flagged)),
		zap.Int("reconciled", repaired),
		zap.Int("failed", failed),
	)
}

func (j *ReconcileJob) reconcileOne(ctx context.Context, contentType domain.ContentType, flag domain.Flag) error {
	count, err := j.flagRepo.CountByContent(ctx, contentType, flag.ContentID)
	if err != nil {
		return err
	}
	return j.contentRepo.SetFlagCount(ctx, contentType, flag.ContentID, int(count))
}
