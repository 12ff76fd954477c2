// Package cache provides bar cache implementations for the chart usecase.
package cache

import (
	"context"
	"sync"

	"chart_backend/internal/feature/chart/domain/entity"
	"chart_backend/internal/feature/chart/usecase"
)

// DefaultCapacity bounds the number of cached (symbol, range, interval)
// entries per process.
const DefaultCapacity = 100

// MemoryBarCache is a bounded in-memory bar cache. Entries carry no TTL;
// once the store exceeds its capacity the oldest-inserted key is evicted.
// Recency of use is not tracked, only recency of insertion. A single mutex
// guards the check-size/evict/insert sequence.
type MemoryBarCache struct {
	capacity int

	mu    sync.Mutex
	items map[string][]entity.Bar
	order []string // keys in insertion order, oldest first
}

// Compile-time check that MemoryBarCache implements BarCache.
var _ usecase.BarCache = (*MemoryBarCache)(nil)

// NewMemoryBarCache creates a MemoryBarCache holding at most capacity
// entries. Non-positive capacity falls back to DefaultCapacity.
func NewMemoryBarCache(capacity int) *MemoryBarCache {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &MemoryBarCache{
		capacity: capacity,
		items:    make(map[string][]entity.Bar, capacity),
	}
}

// Get returns a copy of the cached series for key, if present. The cache
// exclusively owns stored entries, so callers may mutate the result.
func (c *MemoryBarCache) Get(_ context.Context, key string) ([]entity.Bar, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	bars, ok := c.items[key]
	if !ok {
		return nil, false
	}
	out := make([]entity.Bar, len(bars))
	copy(out, bars)
	return out, true
}

// Put stores a copy of bars under key, overwriting any existing entry
// without refreshing its insertion position, then evicts oldest-inserted
// keys while over capacity.
func (c *MemoryBarCache) Put(_ context.Context, key string, bars []entity.Bar) {
	cp := make([]entity.Bar, len(bars))
	copy(cp, bars)

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.items[key]; !ok {
		c.order = append(c.order, key)
	}
	c.items[key] = cp

	for len(c.items) > c.capacity {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.items, oldest)
	}
}

// Len reports the number of cached entries.
func (c *MemoryBarCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}
