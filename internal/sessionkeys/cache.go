package sessionkeys

import (
	"sync"
	"time"
)

// OriginBundle identifies the server-side bundle a cache was built from.
type OriginBundle struct {
	ID       string
	Modified time.Time
}

// MemoryCache holds the merged session keys of the current user together
// with the origin bundles they were merged from.
type MemoryCache struct {
	mu              sync.RWMutex
	keys            map[Identifier]Model
	origin          map[string]time.Time
	initiallyEmpty  bool
	locallyModified bool
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		keys:           map[Identifier]Model{},
		origin:         map[string]time.Time{},
		initiallyEmpty: true,
	}
}

// Load replaces the cache content with a freshly fetched merge result and
// resets the modification tracking.
func (c *MemoryCache) Load(m MergedSessionKeys) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.keys = copyKeys(m.Keys)
	c.origin = copyOrigin(m.OriginMetadata)
	c.initiallyEmpty = len(c.origin) == 0
	c.locallyModified = false
}

// Replace swaps the cache content while keeping local changes pending.
// It is used after a local cache was reconciled with re-fetched bundles.
func (c *MemoryCache) Replace(m MergedSessionKeys) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.keys = copyKeys(m.Keys)
	c.origin = copyOrigin(m.OriginMetadata)
}

// Get returns the cached key for id.
func (c *MemoryCache) Get(id Identifier) (Model, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	m, ok := c.keys[id]
	return m, ok
}

// Put records a session key created or changed locally.
func (c *MemoryCache) Put(id Identifier, sessionKey string, modified time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if existing, ok := c.keys[id]; ok && existing.SessionKey == sessionKey && !existing.Modified.Before(modified) {
		return
	}
	c.keys[id] = Model{SessionKey: sessionKey, Modified: modified}
	c.locallyModified = true
}

// Snapshot returns a copy of the cache content.
func (c *MemoryCache) Snapshot() MergedSessionKeys {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return MergedSessionKeys{Keys: copyKeys(c.keys), OriginMetadata: copyOrigin(c.origin)}
}

func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.keys)
}

// LatestModifiedOrigin returns the origin bundle with the greatest modified
// date. Ties are broken by id so the choice is stable.
func (c *MemoryCache) LatestModifiedOrigin() (OriginBundle, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var latest OriginBundle
	found := false
	for id, modified := range c.origin {
		if !found || modified.After(latest.Modified) || (modified.Equal(latest.Modified) && id < latest.ID) {
			latest = OriginBundle{ID: id, Modified: modified}
			found = true
		}
	}
	return latest, found
}

// WasInitialCacheEmpty reports whether no origin bundle existed when the
// cache was loaded.
func (c *MemoryCache) WasInitialCacheEmpty() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.initiallyEmpty
}

func (c *MemoryCache) IsLocallyModified() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.locallyModified
}

// MarkSaved records that the cache content was pushed as bundle id with
// the given server modified date.
func (c *MemoryCache) MarkSaved(id string, modified time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.origin[id] = modified
	c.initiallyEmpty = false
	c.locallyModified = false
}

// Clear drops all keys and origin metadata, leaving an empty cache.
func (c *MemoryCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.keys = map[Identifier]Model{}
	c.origin = map[string]time.Time{}
	c.initiallyEmpty = true
	c.locallyModified = false
}

func copyKeys(in map[Identifier]Model) map[Identifier]Model {
	out := make(map[Identifier]Model, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func copyOrigin(in map[string]time.Time) map[string]time.Time {
	out := make(map[string]time.Time, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
