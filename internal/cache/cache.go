// Package cache keeps test content close to the engine. Tests are read on
// every start and submit but change rarely.
package cache

import (
	"context"
	"math/rand"
	"strconv"
	"sync"
	"time"

	"github.com/lshigami/englishhub/internal/model"
	"golang.org/x/sync/singleflight"
)

// loadTimeout bounds a shared load once it no longer follows any caller.
const loadTimeout = 10 * time.Second

// TestLoader fetches a test with its question bank and lessons from the store.
type TestLoader interface {
	LoadTest(ctx context.Context, testID uint) (*model.Test, error)
}

type LoaderFunc func(ctx context.Context, testID uint) (*model.Test, error)

func (f LoaderFunc) LoadTest(ctx context.Context, testID uint) (*model.Test, error) {
	return f(ctx, testID)
}

// TestCache returns shared values; callers must not modify them.
type TestCache interface {
	GetTest(ctx context.Context, testID uint) (*model.Test, error)
	Invalidate(ctx context.Context, testID uint) error
}

type jitter struct {
	ttl time.Duration
	mu  sync.Mutex
	rnd *rand.Rand
}

func newJitter(ttl time.Duration) *jitter {
	return &jitter{ttl: ttl, rnd: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// next adds up to 10% to the ttl to spread expirations.
func (j *jitter) next() time.Duration {
	if j.ttl <= 0 {
		return 0
	}
	jitterMax := int64(j.ttl) / 10
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.ttl + time.Duration(j.rnd.Int63n(jitterMax+1))
}

func flightKey(testID uint) string {
	return strconv.FormatUint(uint64(testID), 10)
}

// share runs load once per test for all concurrent callers. The load runs on a
// context detached from the caller that started it. Each caller stops waiting
// when its own ctx ends.
func share(ctx context.Context, sf *singleflight.Group, testID uint, load func(ctx context.Context) (*model.Test, error)) (*model.Test, error) {
	ch := sf.DoChan(flightKey(testID), func() (interface{}, error) {
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), loadTimeout)
		defer cancel()
		return load(loadCtx)
	})
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*model.Test), nil
	}
}
