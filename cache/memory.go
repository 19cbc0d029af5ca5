package cache

import (
	"context"
	"time"

	"github.com/TwiN/gocache/v2"
)

// DefaultMaxEntries is the capacity of a Memory cache created with a
// non-positive size
const DefaultMaxEntries = 1024

// Memory is an in-process Cache backed by gocache with LRU eviction
type Memory struct {
	c *gocache.Cache
}

// NewMemory creates a Memory cache holding at most maxEntries entries and
// starts its janitor, which removes expired entries in the background.
func NewMemory(maxEntries int) *Memory {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	c := gocache.NewCache().WithMaxSize(maxEntries).WithEvictionPolicy(gocache.LeastRecentlyUsed)
	_ = c.StartJanitor()
	return &Memory{c: c}
}

// Close stops the janitor
func (m *Memory) Close() {
	m.c.StopJanitor()
}

// Get implements the Cache interface
func (m *Memory) Get(_ context.Context, key string, target any) (bool, error) {
	v, ok := m.c.Get(key)
	if !ok {
		return false, nil
	}
	data, ok := v.([]byte)
	if !ok {
		m.c.Delete(key)
		return false, nil
	}
	if err := decode(data, target); err != nil {
		return false, err
	}
	return true, nil
}

// Set implements the Cache interface
func (m *Memory) Set(_ context.Context, key string, value any, ttl time.Duration) error {
	data, err := encode(value)
	if err != nil {
		return err
	}
	if ttl <= 0 {
		ttl = gocache.NoExpiration
	}
	m.c.SetWithTTL(key, data, ttl)
	return nil
}

// Delete implements the Cache interface
func (m *Memory) Delete(_ context.Context, key string) error {
	m.c.Delete(key)
	return nil
}

// Clear implements the Cache interface. Keys must not contain '/' or glob
// meta characters for the prefix match to be exact.
func (m *Memory) Clear(_ context.Context, prefix string) error {
	m.c.DeleteKeysByPattern(prefix + "*")
	return nil
}
