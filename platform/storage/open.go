package storage

import (
	"context"
	"fmt"
	"time"

	"survey_client/platform/config"
)

const pingTimeout = 3 * time.Second

// Open returns a RedisStorage when REDIS_URL is configured and a FileStorage
// otherwise. The returned close function releases the backend.
func Open(ctx context.Context, cfg config.StorageConfig) (Storage, func() error, error) {
	if cfg.GetRedisURL() == "" {
		fileStore, err := NewFileStorage(cfg.GetStorageDir(), cfg.GetStoragePrefix())
		if err != nil {
			return nil, nil, err
		}
		return fileStore, func() error { return nil }, nil
	}

	redisStore, err := NewRedisStorage(RedisConfig{
		URL:         cfg.GetRedisURL(),
		TLSInsecure: cfg.GetRedisTLSInsecure(),
		Prefix:      cfg.GetStoragePrefix(),
		TTL:         cfg.GetStorageTTL(),
	})
	if err != nil {
		return nil, nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := redisStore.Ping(pingCtx); err != nil {
		_ = redisStore.Close()
		return nil, nil, fmt.Errorf("connect to redis: %w", err)
	}
	return redisStore, redisStore.Close, nil
}
