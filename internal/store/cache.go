package store

import (
	"sync"
	"time"

	"github.com/okbooks/posledger/internal/models"
)

// catalogCache holds the catalog listing with TTL-based expiry so repeated
// listings do not hit the database on every call. It is owned by the
// CatalogStore and invalidated explicitly after every replace or clear;
// there is no process-lifetime implicit state beyond it.
type catalogCache struct {
	mu        sync.RWMutex
	items     []models.CatalogItem
	expiresAt time.Time
	ttl       time.Duration
}

func newCatalogCache(ttl time.Duration) *catalogCache {
	return &catalogCache{ttl: ttl}
}

// get returns the cached listing if present and fresh. A non-positive TTL
// disables caching entirely. The result is a copy: callers that sort or
// mutate their listing must not corrupt later cache hits.
func (c *catalogCache) get() ([]models.CatalogItem, bool) {
	if c.ttl <= 0 {
		return nil, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.items == nil || time.Now().After(c.expiresAt) {
		return nil, false
	}
	items := make([]models.CatalogItem, len(c.items))
	copy(items, c.items)
	return items, true
}

// set stores its own copy of the listing, detached from whatever slice the
// caller keeps using.
func (c *catalogCache) set(items []models.CatalogItem) {
	if c.ttl <= 0 {
		return
	}
	copied := make([]models.CatalogItem, len(items))
	copy(copied, items)
	c.mu.Lock()
	c.items = copied
	c.expiresAt = time.Now().Add(c.ttl)
	c.mu.Unlock()
}

// invalidate drops the cached listing. Called after any catalog mutation.
func (c *catalogCache) invalidate() {
	c.mu.Lock()
	c.items = nil
	c.mu.Unlock()
}
