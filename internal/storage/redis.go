package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "toolshare:collection:"

// RedisStore keeps each collection under a single namespaced key.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects and verifies connectivity with a ping.
func NewRedisStore(ctx context.Context, addr, password string, db int) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &RedisStore{client: client}, nil
}

func (s *RedisStore) Get(ctx context.Context, collection string, dest interface{}) error {
	raw, err := s.client.Get(ctx, redisKeyPrefix+collection).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("loading collection %q: %w", collection, err)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("decoding collection %q: %w", collection, err)
	}
	return nil
}

func (s *RedisStore) Set(ctx context.Context, collection string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding collection %q: %w", collection, err)
	}
	if err := s.client.Set(ctx, redisKeyPrefix+collection, raw, 0).Err(); err != nil {
		return fmt.Errorf("saving collection %q: %w", collection, err)
	}
	return nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
