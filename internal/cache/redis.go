package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/lshigami/englishhub/internal/model"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"
)

// RedisTestCache shares test content between instances. Each test is stored
// as one JSON value under test:{id}:content.
type RedisTestCache struct {
	client *redis.Client
	loader TestLoader
	jitter *jitter
	sf     singleflight.Group
}

func NewRedisTestCache(client *redis.Client, loader TestLoader, ttl time.Duration) *RedisTestCache {
	return &RedisTestCache{
		client: client,
		loader: loader,
		jitter: newJitter(ttl),
	}
}

func (c *RedisTestCache) GetTest(ctx context.Context, testID uint) (*model.Test, error) {
	if test, ok := c.lookup(ctx, testID); ok {
		return test, nil
	}

	return share(ctx, &c.sf, testID, func(ctx context.Context) (*model.Test, error) {
		if test, ok := c.lookup(ctx, testID); ok {
			return test, nil
		}
		test, err := c.loader.LoadTest(ctx, testID)
		if err != nil {
			return nil, err
		}
		if ttl := c.jitter.next(); ttl > 0 {
			payload, err := json.Marshal(test)
			if err == nil {
				err = c.client.Set(ctx, c.key(testID), payload, ttl).Err()
			}
			if err != nil {
				log.Warn().Err(err).Uint("testID", testID).Msg("Failed to cache test content")
			}
		}
		return test, nil
	})
}

func (c *RedisTestCache) Invalidate(ctx context.Context, testID uint) error {
	return c.client.Del(ctx, c.key(testID)).Err()
}

// lookup treats redis failures as misses so content stays reachable.
func (c *RedisTestCache) lookup(ctx context.Context, testID uint) (*model.Test, bool) {
	payload, err := c.client.Get(ctx, c.key(testID)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Warn().Err(err).Uint("testID", testID).Msg("Test cache read failed")
		}
		return nil, false
	}
	var test model.Test
	if err := json.Unmarshal(payload, &test); err != nil {
		log.Warn().Err(err).Uint("testID", testID).Msg("Discarding undecodable cached test")
		return nil, false
	}
	return &test, true
}

func (c *RedisTestCache) key(testID uint) string {
	return "test:" + flightKey(testID) + ":content"
}
