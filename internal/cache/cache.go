package cache

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Cache stores rendered read models. A miss returns ok=false and no error.
type Cache interface {
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

type Config struct {
	Enable   bool          `mapstructure:"enable"`
	Host     string        `mapstructure:"host"`
	Port     int           `mapstructure:"port"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	TTL      time.Duration `mapstructure:"ttl"`
}

// New returns a Redis backed cache when enabled and reachable, otherwise a
// process local one.
func New(cfg Config, logger *zap.Logger) Cache {
	if !cfg.Enable {
		logger.Info("Redis disabled, using in-memory cache")
		return NewInMemoryCache()
	}

	c, err := NewRedisCache(cfg)
	if err != nil {
		logger.Warn("Redis unavailable, falling back to in-memory cache", zap.Error(err))
		return NewInMemoryCache()
	}

	logger.Info("Using Redis cache", zap.String("addr", fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)))
	return c
}

func WallKey(onlyLive bool) string {
	if onlyLive {
		return "wall_only_live"
	}
	return "wall_all"
}

// KeywordWallKey is the wall of a single keyword.
func KeywordWallKey(keywordID int64, onlyLive bool) string {
	if onlyLive {
		return fmt.Sprintf("keyword_%d_only_live", keywordID)
	}
	return fmt.Sprintf("keyword_%d_all", keywordID)
}

func KeywordResponsesKey(keywordID int64, archived bool) string {
	if archived {
		return fmt.Sprintf("keyword_%d_responses_archived", keywordID)
	}
	return fmt.Sprintf("keyword_%d_responses", keywordID)
}
