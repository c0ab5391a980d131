package database

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"community-moderation-api/internal/domain"
)

// moderationModels lists every table the service owns, in dependency
// order (users and content rows before the tables that reference them).
func moderationModels() []interface{} {
	return []interface{}{
		&domain.User{},
		&domain.DiscussionComment{},
		&domain.ProductComment{},
		&domain.Flag{},
		&domain.ModerationQueueEntry{},
		&domain.BlacklistKeyword{},
		&domain.AdminAction{},
	}
}

// AutoMigrate runs GORM auto-migration for all moderation models
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(moderationModels()...); err != nil {
		return fmt.Errorf("failed to run auto-migration: %w", err)
	}
	return nil
}

// SafeAutoMigrate migrates each model individually so a failure
// identifies the table, and logs whether each table was created or
// only had its schema updated
func SafeAutoMigrate(db *gorm.DB, logger *zap.Logger) error {
	migrator := db.Migrator()
	models := moderationModels()

	logger.Info("Starting auto-migration", zap.Int("models", len(models)))

	for _, model := range models {
		existed := migrator.HasTable(model)

		if err := db.AutoMigrate(model); err != nil {
			logger.Error("Failed to migrate table",
				zap.String("table", tableName(db, model)),
				zap.Bool("existed", existed),
				zap.Error(err),
			)
			return fmt.Errorf("failed to migrate table %s: %w", tableName(db, model), err)
		}

		logger.Info("Migrated table",
			zap.String("table", tableName(db, model)),
			zap.Bool("created", !existed),
		)
	}

	logger.Info("Auto-migration completed", zap.Int("tables", len(models)))
	return nil
}

func tableName(db *gorm.DB, model interface{}) string {
	stmt := &gorm.Statement{DB: db}
	if err := stmt.Parse(model); err != nil {
		return "unknown"
	}
	return stmt.Schema.Table
}

// SafeAutoMigrateWithRetry retries SafeAutoMigrate with linear backoff.
// Used at startup where the database may still be coming up.
func SafeAutoMigrateWithRetry(db *gorm.DB, logger *zap.Logger, maxRetries int) error {
	var err error

	for attempt := 1; attempt <= maxRetries; attempt++ {
		err = SafeAutoMigrate(db, logger)
		if err == nil {
			return nil
		}

		if attempt < maxRetries {
			backoff := time.Duration(attempt) * time.Second
			logger.Warn("Migration attempt failed, retrying",
				zap.Int("attempt", attempt),
				zap.Int("max_retries", maxRetries),
				zap.Duration("backoff", backoff),
				zap.Error(err),
			)
			time.Sleep(backoff)
		}
	}

	logger.Error("Migration failed after all retry attempts",
		zap.Int("attempts", maxRetries),
		zap.Error(err),
	)
	return fmt.Errorf("migration failed after %d attempts: %w", maxRetries, err)
}
