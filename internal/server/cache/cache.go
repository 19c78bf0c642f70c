// Package cache provides the in-memory TTL store behind per-client rate
// limiting. It uses patrickmn/go-cache so idle clients expire on their own.
package cache

import (
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Cache maps keys to values that expire after a period without use.
type Cache struct {
	store *gocache.Cache
	mu    sync.Mutex // serializes GetOrCreate
}

// New creates a cache whose entries expire after ttl. Expired entries are
// purged every cleanupInterval.
func New(ttl, cleanupInterval time.Duration) *Cache {
	return &Cache{
		store: gocache.New(ttl, cleanupInterval),
	}
}

// GetOrCreate returns the value for key, storing create() first if the key
// is absent or expired. The expiry is refreshed either way.
func (c *Cache) GetOrCreate(key string, create func() any) any {
	c.mu.Lock()
	defer c.mu.Unlock()

	v, ok := c.store.Get(key)
	if !ok {
		v = create()
	}
	c.store.Set(key, v, gocache.DefaultExpiration)
	return v
}

// Delete removes a value.
func (c *Cache) Delete(key string) {
	c.store.Delete(key)
}

// ItemCount returns the number of values, including expired ones not yet purged.
func (c *Cache) ItemCount() int {
	return c.store.ItemCount()
}
