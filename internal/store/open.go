package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"

	"github.com/nhle/teamboard/internal/credential"
	"github.com/nhle/teamboard/internal/model"
)

// redisPasswordKey is the keyring entry holding the Redis password.
const redisPasswordKey = "redis-password"

// Open returns the Store selected by cfg.Backend.
func Open(ctx context.Context, cfg model.StorageConfig) (Store, error) {
	switch cfg.Backend {
	case model.BackendSQLite, "":
		if dir := filepath.Dir(cfg.Path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("creating data directory %s: %w", dir, err)
			}
		}
		return NewSQLiteStore(cfg.Path)

	case model.BackendRedis:
		opts := &redis.Options{Addr: cfg.RedisAddr, DB: cfg.RedisDB}
		if pw, err := credential.Get(redisPasswordKey); err == nil {
			opts.Password = pw
		} else {
			log.WithError(err).Debug("no redis password in keyring")
		}
		client := redis.NewClient(opts)
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, fmt.Errorf("connecting to redis %s: %w", cfg.RedisAddr, err)
		}
		return NewRedisStore(client), nil

	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}
