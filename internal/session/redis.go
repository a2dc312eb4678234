package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps sessions as JSON values so any instance can serve them.
type RedisStore[T any] struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisStore stores values under prefix:{id}, e.g. "session:exercise".
func NewRedisStore[T any](client *redis.Client, prefix string, ttl time.Duration) *RedisStore[T] {
	return &RedisStore[T]{client: client, prefix: prefix, ttl: ttl}
}

func (s *RedisStore[T]) Get(ctx context.Context, id string) (T, error) {
	var value T
	payload, err := s.client.Get(ctx, s.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return value, fmt.Errorf("%s: %w", id, ErrSessionNotFound)
	}
	if err != nil {
		return value, fmt.Errorf("load session %s: %w", id, err)
	}
	if err := json.Unmarshal(payload, &value); err != nil {
		return value, fmt.Errorf("decode session %s: %w", id, err)
	}
	return value, nil
}

func (s *RedisStore[T]) Save(ctx context.Context, id string, value T) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode session %s: %w", id, err)
	}
	return s.client.Set(ctx, s.key(id), payload, s.ttl).Err()
}

func (s *RedisStore[T]) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, s.key(id)).Err()
}

func (s *RedisStore[T]) key(id string) string {
	return s.prefix + ":" + id
}
