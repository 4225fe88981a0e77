package guidance

import (
	"sync"
	"time"
)

// Cache is a time-expiring store for thematic collections, keyed by theme
// name. Expired entries are treated as absent and recomputed by the caller;
// concurrent recomputations for the same theme are not deduplicated, which is
// safe because the operation is idempotent and last-write-wins.
//
// Time is passed in by the caller so expiry is testable with a manual clock.
type Cache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]cacheEntry
}

type cacheEntry struct {
	collection *ThematicCollection
	expiry     time.Time
}

// NewCache creates a cache whose entries live for ttl after insertion.
func NewCache(ttl time.Duration) *Cache {
	return &Cache{
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
	}
}

// Get returns the cached collection for key if present and not expired.
func (c *Cache) Get(key string, now time.Time) (*ThematicCollection, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[key]
	if !ok || !now.Before(entry.expiry) {
		return nil, false
	}
	return entry.collection, true
}

// Put stores a collection under key with expiry now + TTL.
func (c *Cache) Put(key string, collection *ThematicCollection, now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = cacheEntry{
		collection: collection,
		expiry:     now.Add(c.ttl),
	}
}
