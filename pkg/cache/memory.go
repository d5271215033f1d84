package cache

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	// DefaultTTL matches the short staleness window the archive layer
	// has always used: long enough to absorb query bursts, short enough
	// that a republished archive is picked up quickly.
	DefaultTTL = 15 * time.Second

	DefaultSize = 128
)

// Memory is an in-process Store backed by an expiring LRU. The TTL is
// fixed at construction and applies to every entry.
type Memory struct {
	mu  sync.Mutex
	lru *expirable.LRU[string, any]
}

// NewMemory creates a Memory store holding up to size entries, each
// valid for ttl after being stored. Non-positive arguments fall back to
// the package defaults.
func NewMemory(size int, ttl time.Duration) *Memory {
	if size <= 0 {
		size = DefaultSize
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Memory{lru: expirable.NewLRU[string, any](size, nil, ttl)}
}

// GetOrAdd returns the live value under key, or runs compute and stores
// its result. compute runs outside the store lock, so concurrent
// callers on the same key may compute in parallel; the first writer
// wins and later writers discard their result in favor of the stored
// value.
func (m *Memory) GetOrAdd(key string, compute func() (any, error)) (any, error) {
	m.mu.Lock()
	if v, ok := m.lru.Get(key); ok {
		m.mu.Unlock()
		return v, nil
	}
	m.mu.Unlock()

	v, err := compute()
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.lru.Get(key); ok {
		return existing, nil
	}
	m.lru.Add(key, v)
	return v, nil
}

// Remove drops the entry under key. Missing keys are a no-op.
func (m *Memory) Remove(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lru.Remove(key)
}
