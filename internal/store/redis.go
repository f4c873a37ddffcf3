package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "teamboard:"

// RedisStore implements Store on top of a Redis server.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore wraps an existing client.
func NewRedisStore(client *redis.Client) *RedisStore {
	if client == nil {
		panic("store.NewRedisStore: client is nil")
	}
	return &RedisStore{client: client}
}

func redisKey(key string) string {
	return redisKeyPrefix + key
}

// Get returns the snapshot stored under key.
func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.Get(ctx, redisKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting snapshot %s: %w", key, err)
	}
	return data, nil
}

// Put stores the snapshot under key with no expiry.
func (s *RedisStore) Put(ctx context.Context, key string, data []byte) error {
	if err := s.client.Set(ctx, redisKey(key), data, 0).Err(); err != nil {
		return fmt.Errorf("putting snapshot %s: %w", key, err)
	}
	return nil
}

// Delete removes the snapshot stored under key.
func (s *RedisStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, redisKey(key)).Err(); err != nil {
		return fmt.Errorf("deleting snapshot %s: %w", key, err)
	}
	return nil
}

// Close closes the underlying client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
