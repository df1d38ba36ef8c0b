package cache

import (
	"context"
	"sync"
	"time"

	"github.com/pensionunlock/policypilot/internal/models"
)

// MemoryCache provides an in-memory L1 cache for researched fund metrics.
// Entries expire after a TTL so stale fact-sheet figures eventually refresh.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[models.ISIN]metricsEntry
	ttl     time.Duration
}

type metricsEntry struct {
	metrics   models.FundMetrics
	fetchedAt time.Time
}

// NewMemoryCache creates a new in-memory cache
func NewMemoryCache(ttl time.Duration) *MemoryCache {
	return &MemoryCache{
		entries: make(map[models.ISIN]metricsEntry),
		ttl:     ttl,
	}
}

// Get retrieves cached metrics if still fresh. A miss is (nil, nil).
func (c *MemoryCache) Get(ctx context.Context, id models.ISIN) (*models.FundMetrics, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, exists := c.entries[id]
	if !exists {
		return nil, nil
	}
	if time.Since(entry.fetchedAt) > c.ttl {
		return nil, nil
	}
	out := entry.metrics
	return &out, nil
}

// Put caches metrics for a fund
func (c *MemoryCache) Put(ctx context.Context, m *models.FundMetrics) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[m.ISIN] = metricsEntry{
		metrics:   *m,
		fetchedAt: time.Now(),
	}
	return nil
}

// Invalidate removes a single fund from the cache
func (c *MemoryCache) Invalidate(id models.ISIN) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, id)
}

// Clear removes all cached data
func (c *MemoryCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[models.ISIN]metricsEntry)
}
