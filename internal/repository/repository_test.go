package repository

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupModerationTestDB opens an in-memory SQLite database with the
// moderation tables created by hand for SQLite compatibility.
// TranslateError is on, same as production, so unique-constraint hits
// surface as gorm.ErrDuplicatedKey.
func setupModerationTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
		TranslateError:                           true,
	})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}

	db.Exec(`CREATE TABLE discussion_comments (
		id TEXT PRIMARY KEY,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL,
		deleted_at DATETIME,
		discussion_id TEXT NOT NULL,
		author_id TEXT,
		guest_name TEXT,
		parent_id TEXT,
		body TEXT NOT NULL,
		flag_count INTEGER NOT NULL DEFAULT 0,
		is_flagged INTEGER NOT NULL DEFAULT 0
	)`)

	db.Exec(`CREATE TABLE product_comments (
		id TEXT PRIMARY KEY,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL,
		deleted_at DATETIME,
		product_id TEXT NOT NULL,
		author_id TEXT,
		guest_name TEXT,
		parent_id TEXT,
		body TEXT NOT NULL,
		flag_count INTEGER NOT NULL DEFAULT 0,
		is_flagged INTEGER NOT NULL DEFAULT 0
	)`)

	db.Exec(`CREATE TABLE flags (
		id TEXT PRIMARY KEY,
		content_id TEXT NOT NULL,
		content_type TEXT NOT NULL,
		user_id TEXT NOT NULL,
		created_at DATETIME NOT NULL,
		UNIQUE(content_id, content_type, user_id)
	)`)

	db.Exec(`CREATE TABLE moderation_queue (
		id TEXT PRIMARY KEY,
		content_id TEXT NOT NULL,
		content_type TEXT NOT NULL,
		context_id TEXT NOT NULL,
		parent_id TEXT,
		author_id TEXT,
		guest_name TEXT,
		body TEXT NOT NULL,
		flag_count INTEGER NOT NULL DEFAULT 0,
		status TEXT NOT NULL DEFAULT 'pending',
		dispute_reason TEXT,
		content_at DATETIME NOT NULL,
		queued_at DATETIME NOT NULL,
		UNIQUE(content_id, content_type)
	)`)

	db.Exec(`CREATE TABLE blacklist_keywords (
		id TEXT PRIMARY KEY,
		keyword TEXT NOT NULL,
		reason TEXT,
		created_by TEXT NOT NULL,
		is_active INTEGER NOT NULL DEFAULT 1,
		created_at DATETIME NOT NULL
	)`)

	db.Exec(`CREATE TABLE users (
		id TEXT PRIMARY KEY,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL,
		deleted_at DATETIME,
		display_name TEXT NOT NULL,
		is_banned INTEGER NOT NULL DEFAULT 0,
		banned_at DATETIME,
		ban_reason TEXT
	)`)

	db.Exec(`CREATE TABLE admin_actions (
		id TEXT PRIMARY KEY,
		actor_id TEXT NOT NULL,
		action_type TEXT NOT NULL,
		target_type TEXT NOT NULL,
		target_id TEXT NOT NULL,
		reason TEXT,
		metadata TEXT,
		created_at DATETIME NOT NULL
	)`)

	return db
}
