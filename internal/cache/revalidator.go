package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"community-moderation-api/internal/domain"
)

// revalidationChannel is where stale-page events are published. The web
// frontend subscribes and re-renders the affected discussion/product page.
const revalidationChannel = "moderation:revalidate"

// RevalidationEvent is the payload published on content changes
type RevalidationEvent struct {
	ContentType domain.ContentType `json:"contentType"`
	ContextID   uuid.UUID          `json:"contextId"`
	OccurredAt  time.Time          `json:"occurredAt"`
}

// RedisRevalidator publishes stale-page events over redis pub/sub.
// Publishing is fire-and-forget: failures are logged, never returned -
// a stale cached page is acceptable, a failed moderation action is not.
type RedisRevalidator struct {
	client *redis.Client
	logger *zap.Logger
}

// NewRedisRevalidator creates a new RedisRevalidator
func NewRedisRevalidator(client *redis.Client, logger *zap.Logger) *RedisRevalidator {
	return &RedisRevalidator{
		client: client,
		logger: logger,
	}
}

// ContentChanged publishes a stale-page event for the content's context page
func (r *RedisRevalidator) ContentChanged(ctx context.Context, contentType domain.ContentType, contextID uuid.UUID) {
	if r.client == nil {
		return
	}

	event := RevalidationEvent{
		ContentType: contentType,
		ContextID:   contextID,
		OccurredAt:  time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		r.logger.Warn("Failed to marshal revalidation event", zap.Error(err))
		return
	}

	if err := r.client.Publish(ctx, revalidationChannel, payload).Err(); err != nil {
		r.logger.Warn("Failed to publish revalidation event",
			zap.String("content_type", string(contentType)),
			zap.String("context_id", contextID.String()),
			zap.Error(err))
		return
	}

	r.logger.Debug("Revalidation event published",
		zap.String("content_type", string(contentType)),
		zap.String("context_id", contextID.String()))
}
