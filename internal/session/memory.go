package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"
)

// MemoryStore keeps encoded sessions in process. Values are stored encoded
// so a caller's changes only land through Save.
type MemoryStore[T any] struct {
	ttl   time.Duration
	clock func() time.Time

	mu       sync.Mutex
	sessions map[string]memoryEntry
}

type memoryEntry struct {
	payload   []byte
	expiresAt time.Time
}

func NewMemoryStore[T any](ttl time.Duration) *MemoryStore[T] {
	return &MemoryStore[T]{
		ttl:      ttl,
		clock:    time.Now,
		sessions: make(map[string]memoryEntry),
	}
}

func (s *MemoryStore[T]) Get(_ context.Context, id string) (T, error) {
	var value T
	s.mu.Lock()
	entry, ok := s.sessions[id]
	if ok && s.expired(entry) {
		delete(s.sessions, id)
		ok = false
	}
	s.mu.Unlock()
	if !ok {
		return value, fmt.Errorf("%s: %w", id, ErrSessionNotFound)
	}
	if err := json.Unmarshal(entry.payload, &value); err != nil {
		return value, fmt.Errorf("decode session %s: %w", id, err)
	}
	return value, nil
}

func (s *MemoryStore[T]) Save(_ context.Context, id string, value T) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode session %s: %w", id, err)
	}
	entry := memoryEntry{payload: payload}
	if s.ttl > 0 {
		entry.expiresAt = s.clock().Add(s.ttl)
	}
	s.mu.Lock()
	s.sessions[id] = entry
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore[T]) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore[T]) expired(e memoryEntry) bool {
	return !e.expiresAt.IsZero() && !e.expiresAt.After(s.clock())
}
