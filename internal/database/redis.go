package database

import (
	"context"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"community-moderation-api/internal/config"
)

var RedisClient *redis.Client

// InitRedis connects the client used to publish revalidation events.
// The service runs without Redis; callers treat a failure as non-fatal.
func InitRedis(cfg config.Config, log *zap.Logger) error {
	var client *redis.Client

	// redis:// 형식 URL 있으면 우선 사용
	if cfg.Redis.URL != "" {
		opts, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			return err
		}
		client = redis.NewClient(opts)
	} else {
		client = redis.NewClient(&redis.Options{
			Addr:     "redis:6379", // docker-compose 내 컨테이너 이름
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	}

	if err := client.Ping(context.Background()).Err(); err != nil {
		return err
	}

	RedisClient = client
	log.Info("Redis connection established", zap.Int("db", cfg.Redis.DB))
	return nil
}

// GetRedis returns nil when Redis is not configured, which disables
// revalidation publishing instead of panicking.
func GetRedis() *redis.Client {
	return RedisClient
}
