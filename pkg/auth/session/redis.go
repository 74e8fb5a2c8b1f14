package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	redislib "github.com/redis/go-redis/v9"

	"github.com/honeyshop/honeyshop-backend/pkg/redis"
)

// RedisStore keeps session slots in Redis under the shared session namespace.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore wraps a redis client as a session store.
func NewRedisStore(client *redis.Client) (*RedisStore, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client is required")
	}
	return &RedisStore{client: client}, nil
}

func (s *RedisStore) Set(ctx context.Context, accessID string, value string, ttl time.Duration) error {
	return s.client.Set(ctx, s.client.SessionKey(accessID), value, ttl)
}

func (s *RedisStore) Get(ctx context.Context, accessID string) (string, error) {
	raw, err := s.client.Get(ctx, s.client.SessionKey(accessID))
	if err != nil {
		if errors.Is(err, redislib.Nil) {
			return "", ErrNoSession
		}
		return "", err
	}
	return raw, nil
}

func (s *RedisStore) Del(ctx context.Context, accessID string) error {
	return s.client.Del(ctx, s.client.SessionKey(accessID))
}
