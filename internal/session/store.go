// Package session keeps in-flight exercise and test sessions between requests,
// keyed by an opaque handle.
package session

import (
	"context"
	"errors"
	"hash/fnv"
	"sync"

	"github.com/google/uuid"
)

var ErrSessionNotFound = errors.New("session not found")

// Store persists session values of one kind. Save refreshes the expiry.
type Store[T any] interface {
	Get(ctx context.Context, id string) (T, error)
	Save(ctx context.Context, id string, value T) error
	Delete(ctx context.Context, id string) error
}

func NewID() string {
	return uuid.NewString()
}

// Locks serializes work on the same session handle within one process.
type Locks struct {
	stripes [64]sync.Mutex
}

func (l *Locks) Lock(id string) func() {
	h := fnv.New32a()
	_, _ = h.Write([]byte(id))
	m := &l.stripes[h.Sum32()%uint32(len(l.stripes))]
	m.Lock()
	return m.Unlock
}
