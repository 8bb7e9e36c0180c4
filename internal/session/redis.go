package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type redisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis returns a Store backed by Redis. Blobs expire after ttl of
// inactivity; every Set refreshes the expiry.
func NewRedis(client *redis.Client, ttl time.Duration) Store {
	return &redisStore{client: client, ttl: ttl}
}

func (s *redisStore) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("session get %s: %w", key, err)
	}
	return val, true, nil
}

func (s *redisStore) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, key, value, s.ttl).Err(); err != nil {
		return fmt.Errorf("session set %s: %w", key, err)
	}
	return nil
}

func (s *redisStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("session delete %s: %w", key, err)
	}
	return nil
}
