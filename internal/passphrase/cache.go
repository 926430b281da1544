// Package passphrase keeps the user's passphrase in memory for a limited time.
package passphrase

import (
	"sync"
	"time"

	"github.com/dmitrijs2005/teamkeeper/internal/common"
)

// MemoryCache holds a copy of the passphrase until its TTL expires or it is
// cleared. Stored bytes are wiped when dropped.
type MemoryCache struct {
	mu        sync.Mutex
	ttl       time.Duration
	now       func() time.Time
	value     []byte
	expiresAt time.Time
}

// NewMemoryCache returns an empty cache whose entries live for ttl.
func NewMemoryCache(ttl time.Duration) *MemoryCache {
	return &MemoryCache{ttl: ttl, now: time.Now}
}

// Set stores a copy of passphrase. A non-positive TTL keeps it until Clear.
func (c *MemoryCache) Set(passphrase []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.dropLocked()
	c.value = append([]byte(nil), passphrase...)
	if c.ttl > 0 {
		c.expiresAt = c.now().Add(c.ttl)
	}
}

// Get returns a copy of the cached passphrase, or
// common.ErrPassphraseNotInCache when there is none or it has expired.
func (c *MemoryCache) Get() ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.value == nil {
		return nil, common.ErrPassphraseNotInCache
	}
	if c.ttl > 0 && !c.now().Before(c.expiresAt) {
		c.dropLocked()
		return nil, common.ErrPassphraseNotInCache
	}
	return append([]byte(nil), c.value...), nil
}

// HasValid reports whether an unexpired passphrase is cached.
func (c *MemoryCache) HasValid() bool {
	p, err := c.Get()
	if err != nil {
		return false
	}
	common.WipeByteArray(p)
	return true
}

// Clear wipes the cached passphrase.
func (c *MemoryCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dropLocked()
}

func (c *MemoryCache) dropLocked() {
	if c.value != nil {
		common.WipeByteArray(c.value)
	}
	c.value = nil
	c.expiresAt = time.Time{}
}
