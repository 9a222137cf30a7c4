package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// Store is an in-process TTL map. Reads slide the expiry forward, so an
// entry lives for ttl after its last use.
type Store[V any] struct {
	mu      sync.RWMutex
	entries map[string]entry[V]
	ttl     time.Duration
	flight  singleflight.Group
	now     func() time.Time
}

func NewStore[V any](ttl time.Duration) *Store[V] {
	return &Store[V]{
		entries: make(map[string]entry[V]),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (s *Store[V]) Get(_ context.Context, key string) (V, bool) {
	var zero V
	if key == "" {
		return zero, false
	}

	now := s.now()
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		return zero, false
	}
	if s.ttl > 0 && !e.expiresAt.After(now) {
		delete(s.entries, key)
		return zero, false
	}
	if s.ttl > 0 {
		e.expiresAt = now.Add(s.ttl)
		s.entries[key] = e
	}

	return e.value, true
}

func (s *Store[V]) Set(_ context.Context, key string, value V) {
	if key == "" {
		return
	}

	expiresAt := time.Time{}
	if s.ttl > 0 {
		expiresAt = s.now().Add(s.ttl)
	}

	s.mu.Lock()
	s.entries[key] = entry[V]{value: value, expiresAt: expiresAt}
	s.mu.Unlock()
}

func (s *Store[V]) Delete(_ context.Context, key string) {
	if key == "" {
		return
	}

	s.mu.Lock()
	delete(s.entries, key)
	s.mu.Unlock()
}

func (s *Store[V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Sweep drops expired entries and reports how many were removed.
func (s *Store[V]) Sweep() int {
	if s.ttl <= 0 {
		return 0
	}

	now := s.now()
	removed := 0
	s.mu.Lock()
	for key, e := range s.entries {
		if !e.expiresAt.After(now) {
			delete(s.entries, key)
			removed++
		}
	}
	s.mu.Unlock()

	return removed
}

// GetOrCreate returns the live entry for key or stores the value built by
// create. Concurrent callers for the same key share one create call.
func (s *Store[V]) GetOrCreate(ctx context.Context, key string, create func(context.Context) (V, error)) (V, bool, error) {
	var zero V
	if create == nil {
		return zero, false, fmt.Errorf("create func is required")
	}
	if key == "" {
		v, err := create(ctx)
		return v, err == nil, err
	}

	if value, ok := s.Get(ctx, key); ok {
		return value, false, nil
	}

	created := false
	out, err, _ := s.flight.Do(key, func() (any, error) {
		if existing, ok := s.Get(ctx, key); ok {
			return existing, nil
		}

		value, createErr := create(ctx)
		if createErr != nil {
			return nil, createErr
		}
		s.Set(ctx, key, value)
		created = true
		return value, nil
	})
	if err != nil {
		return zero, false, err
	}

	value, ok := out.(V)
	if !ok {
		return zero, false, fmt.Errorf("unexpected cached value type %T", out)
	}
	return value, created, nil
}

// RunJanitor sweeps expired entries every interval until ctx is done.
func (s *Store[V]) RunJanitor(ctx context.Context, interval time.Duration) {
	if interval <= 0 || s.ttl <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep()
		}
	}
}
