package cache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/jonwraymond/styleops/stylesheet"
)

// DefaultCleanupInterval is how often expired handles are purged.
const DefaultCleanupInterval = 10 * time.Minute

// MemoryCache is an in-memory Cache backed by go-cache.
type MemoryCache struct {
	items  *gocache.Cache
	policy Policy
}

// NewMemoryCache creates a new in-memory cache with the given policy.
func NewMemoryCache(policy Policy) *MemoryCache {
	return &MemoryCache{
		items:  gocache.New(gocache.NoExpiration, DefaultCleanupInterval),
		policy: policy,
	}
}

// Get retrieves a handle. Returns (nil, false) on miss or expiry.
func (c *MemoryCache) Get(_ context.Context, key string) (stylesheet.Handle, bool) {
	v, found := c.items.Get(key)
	if !found {
		return nil, false
	}
	return v, true
}

// Set stores a handle. The TTL is clamped by the policy's MaxTTL; a
// non-positive TTL or a nil handle stores nothing.
func (c *MemoryCache) Set(_ context.Context, key string, handle stylesheet.Handle, ttl time.Duration) error {
	if ttl <= 0 || handle == nil {
		return nil
	}
	if err := ValidateKey(key); err != nil {
		return err
	}
	if c.policy.MaxTTL > 0 && ttl > c.policy.MaxTTL {
		ttl = c.policy.MaxTTL
	}

	c.items.Set(key, handle, ttl)
	return nil
}

// Delete removes a handle. Idempotent - no error on miss.
func (c *MemoryCache) Delete(_ context.Context, key string) error {
	c.items.Delete(key)
	return nil
}

// Clear removes every handle.
func (c *MemoryCache) Clear(_ context.Context) error {
	c.items.Flush()
	return nil
}

// Len returns the number of stored handles, including expired ones not
// yet purged.
func (c *MemoryCache) Len() int {
	return c.items.ItemCount()
}

var _ Cache = (*MemoryCache)(nil)
