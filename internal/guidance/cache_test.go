package guidance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCachePutGet(t *testing.T) {
	cache := NewCache(5 * time.Minute)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	_, ok := cache.Get("patience", now)
	assert.False(t, ok)

	collection := &ThematicCollection{Theme: "patience"}
	cache.Put("patience", collection, now)

	got, ok := cache.Get("patience", now)
	require.True(t, ok)
	assert.Same(t, collection, got)
}

func TestCacheExpiry(t *testing.T) {
	cache := NewCache(5 * time.Minute)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	cache.Put("prayer", &ThematicCollection{Theme: "prayer"}, now)

	_, ok := cache.Get("prayer", now.Add(5*time.Minute-time.Second))
	assert.True(t, ok, "entry should live until the TTL elapses")

	// Expiry is exclusive: at exactly now+TTL the entry is gone.
	_, ok = cache.Get("prayer", now.Add(5*time.Minute))
	assert.False(t, ok)

	_, ok = cache.Get("prayer", now.Add(time.Hour))
	assert.False(t, ok)
}

func TestCachePutRefreshesExpiry(t *testing.T) {
	cache := NewCache(5 * time.Minute)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	cache.Put("health", &ThematicCollection{Theme: "health"}, now)
	later := now.Add(4 * time.Minute)
	refreshed := &ThematicCollection{Theme: "health", Description: "refreshed"}
	cache.Put("health", refreshed, later)

	got, ok := cache.Get("health", now.Add(8*time.Minute))
	require.True(t, ok)
	assert.Same(t, refreshed, got)
}

func TestCacheKeysIndependent(t *testing.T) {
	cache := NewCache(time.Minute)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	cache.Put("fitness", &ThematicCollection{Theme: "fitness"}, now)
	cache.Put("family", &ThematicCollection{Theme: "family"}, now.Add(30*time.Second))

	_, ok := cache.Get("fitness", now.Add(70*time.Second))
	assert.False(t, ok)
	_, ok = cache.Get("family", now.Add(70*time.Second))
	assert.True(t, ok)
}
