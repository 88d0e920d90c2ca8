package cache

import (
	"sync"
	"time"

	"github.com/weathercache/weather-cache-api/internal/model"
)

// DefaultExpiration is the TTL applied when the configured value is unusable.
const DefaultExpiration = 10 * time.Minute

// ResponseCache maps a Key to an expiring upstream response. Stale entries
// are evicted lazily, on the next mutating lookup that touches them; there is
// no background sweep. An expired entry that is never looked up again stays
// in the map, which is acceptable: key cardinality is bounded by the city
// table times the handful of unit/kind combinations.
type ResponseCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[Key]Entry[*model.APIResponse]
}

func NewResponseCache(ttl time.Duration) *ResponseCache {
	if ttl <= 0 {
		ttl = DefaultExpiration
	}
	return &ResponseCache{
		ttl:     ttl,
		entries: make(map[Key]Entry[*model.APIResponse]),
	}
}

// CacheResponse stores resp under key for the configured TTL. It refuses
// payloads without weather data (ErrInvalidPayload) and keys that already
// hold a live entry (ErrAlreadyCached). A stale entry under the key is
// evicted first, after which the insert goes through.
func (c *ResponseCache) CacheResponse(key Key, resp *model.APIResponse) error {
	if resp == nil || !resp.HasWeatherData() {
		return ErrInvalidPayload
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.checkAndClear(key) {
		return ErrAlreadyCached
	}
	c.entries[key] = NewEntry(resp, c.ttl)
	return nil
}

// GetCacheFor returns the stored response for key if it is still live. A
// stale entry is evicted on the way, so this lookup mutates the cache even
// though it reads.
func (c *ResponseCache) GetCacheFor(key Key) (*model.APIResponse, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.checkAndClear(key) {
		return nil, false
	}
	return c.entries[key].Value(), true
}

// HasValidCacheFor reports whether a live entry holds the key. Unlike
// GetCacheFor it never evicts, so it is safe as a cheap pre-check.
func (c *ResponseCache) HasValidCacheFor(key Key) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[key]
	return ok && !entry.HasExpired()
}

// checkAndClear reports whether a live entry holds the key, removing it first
// if it has expired. Single source of truth for liveness; caller must hold
// the write lock.
func (c *ResponseCache) checkAndClear(key Key) bool {
	entry, ok := c.entries[key]
	if !ok {
		return false
	}
	if entry.HasExpired() {
		delete(c.entries, key)
		return false
	}
	return true
}
