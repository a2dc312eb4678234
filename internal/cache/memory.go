package cache

import (
	"context"
	"sync"
	"time"

	"github.com/lshigami/englishhub/internal/model"
	"golang.org/x/sync/singleflight"
)

// MemoryTestCache caches tests in process with a TTL.
type MemoryTestCache struct {
	loader TestLoader
	jitter *jitter
	clock  func() time.Time
	sf     singleflight.Group

	mu    sync.RWMutex
	cache map[uint]cachedTest
}

type cachedTest struct {
	test      *model.Test
	expiresAt time.Time
}

func NewMemoryTestCache(loader TestLoader, ttl time.Duration) *MemoryTestCache {
	return &MemoryTestCache{
		loader: loader,
		jitter: newJitter(ttl),
		clock:  time.Now,
		cache:  make(map[uint]cachedTest),
	}
}

func (c *MemoryTestCache) GetTest(ctx context.Context, testID uint) (*model.Test, error) {
	if test, ok := c.lookup(testID); ok {
		return test, nil
	}

	return share(ctx, &c.sf, testID, func(ctx context.Context) (*model.Test, error) {
		// another caller may have filled it while we waited
		if test, ok := c.lookup(testID); ok {
			return test, nil
		}
		test, err := c.loader.LoadTest(ctx, testID)
		if err != nil {
			return nil, err
		}
		if ttl := c.jitter.next(); ttl > 0 {
			c.mu.Lock()
			c.cache[testID] = cachedTest{test: test, expiresAt: c.clock().Add(ttl)}
			c.mu.Unlock()
		}
		return test, nil
	})
}

func (c *MemoryTestCache) Invalidate(_ context.Context, testID uint) error {
	c.mu.Lock()
	delete(c.cache, testID)
	c.mu.Unlock()
	return nil
}

func (c *MemoryTestCache) lookup(testID uint) (*model.Test, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.cache[testID]
	if !ok || !entry.expiresAt.After(c.clock()) {
		return nil, false
	}
	return entry.test, true
}
