package service

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"
	"gorm.io/datatypes"

	"community-moderation-api/internal/domain"
	"community-moderation-api/internal/metrics"
	"community-moderation-api/internal/repository"
)

// recordAdminAction appends an audit row after a successful admin mutation.
// A failed audit write is logged and swallowed - the primary operation has
// already committed and must not be unwound. Callers must only invoke this
// after the mutation succeeded.
func recordAdminAction(
	ctx context.Context,
	repo repository.AdminActionRepository,
	m *metrics.Metrics,
	logger *zap.Logger,
	action *domain.AdminAction,
) {
	if err := repo.Create(ctx, action); err != nil {
		logger.Error("Failed to write admin audit record",
			zap.String("action_type", string(action.ActionType)),
			zap.String("target_id", action.TargetID.String()),
			zap.Error(err))
		return
	}
	if m != nil {
		m.IncrementAdminAction(string(action.ActionType))
	}
}

// auditMetadata marshals a metadata map for the audit row. Marshal errors
// degrade to empty metadata rather than blocking the audit write.
func auditMetadata(logger *zap.Logger, fields map[string]interface{}) datatypes.JSON {
	data, err := json.Marshal(fields)
	if err != nil {
		logger.Warn("Failed to marshal audit metadata", zap.Error(err))
		return nil
	}
	return datatypes.JSON(data)
}
