package metrics

import (
	"context"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// BusinessMetricsCollector periodically refreshes the queue and
// blacklist gauges from the database
type BusinessMetricsCollector struct {
	db      *gorm.DB
	metrics *Metrics
	logger  *zap.Logger
	ticker  *time.Ticker
	done    chan bool
}

// NewBusinessMetricsCollector creates a new collector
func NewBusinessMetricsCollector(db *gorm.DB, metrics *Metrics, logger *zap.Logger) *BusinessMetricsCollector {
	return &BusinessMetricsCollector{
		db:      db,
		metrics: metrics,
		logger:  logger,
		ticker:  time.NewTicker(60 * time.Second),
		done:    make(chan bool),
	}
}

// Start begins collecting metrics
func (c *BusinessMetricsCollector) Start() {
	go func() {
		// 즉시 한 번 수집
		c.collect()

		for {
			select {
			case <-c.ticker.C:
				c.collect()
			case <-c.done:
				return
			}
		}
	}()
}

// Stop stops the collector
func (c *BusinessMetricsCollector) Stop() {
	c.ticker.Stop()
	c.done <- true
}

type gaugeQuery struct {
	name  string
	table string
	where string
	arg   interface{}
	set   func(int64)
}

// collect refreshes each gauge from a count query. A failed query
// leaves the previous gauge value in place.
func (c *BusinessMetricsCollector) collect() {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("Panic in business metrics collection",
				zap.Any("panic", r),
			)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	queries := []gaugeQuery{
		{"queue_pending", "moderation_queue", "status = ?", "pending", c.metrics.SetQueuePendingTotal},
		{"queue_disputed", "moderation_queue", "status = ?", "disputed", c.metrics.SetQueueDisputedTotal},
		{"blacklist_active", "blacklist_keywords", "is_active = ?", true, c.metrics.SetBlacklistActiveTotal},
	}

	for _, q := range queries {
		var count int64
		err := c.db.WithContext(ctx).Table(q.table).Where(q.where, q.arg).Count(&count).Error
		if err != nil {
			c.logger.Error("Failed to collect business metric",
				zap.String("metric", q.name),
				zap.Error(err),
			)
			continue
		}
		q.set(count)
	}
}
