package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Behyna/sms-services/campaign/internal/cache"
	"go.uber.org/zap"
)

// readThrough serves key from c, calling load and storing its result on a
// miss. Cache failures fall back to load.
func readThrough[T any](ctx context.Context, c cache.Cache, logger *zap.Logger, key string, ttl time.Duration,
	load func(ctx context.Context) (T, error)) (T, error) {
	if raw, ok, err := c.Get(ctx, key); err != nil {
		logger.Warn("Cache read failed", zap.String("key", key), zap.Error(err))
	} else if ok {
		var v T
		if err := json.Unmarshal(raw, &v); err == nil {
			return v, nil
		}
		logger.Warn("Discarding undecodable cache entry", zap.String("key", key))
	}

	v, err := load(ctx)
	if err != nil {
		return v, err
	}

	raw, err := json.Marshal(v)
	if err != nil {
		logger.Warn("Failed to encode cache entry", zap.String("key", key), zap.Error(err))
		return v, nil
	}

	if err := c.Set(ctx, key, raw, ttl); err != nil {
		logger.Warn("Cache write failed", zap.String("key", key), zap.Error(err))
	}

	return v, nil
}
