package cache

import (
	"context"
	"time"
)

// ttlCache overrides the lifetime of every write.
type ttlCache struct {
	Cache
	ttl time.Duration
}

// WithTTL returns c with the TTL of every Set replaced by ttl.
func WithTTL(c Cache, ttl time.Duration) Cache {
	return &ttlCache{Cache: c, ttl: ttl}
}

func (c *ttlCache) Set(ctx context.Context, key string, data []byte, _ time.Duration) error {
	return c.Cache.Set(ctx, key, data, c.ttl)
}

// Unwrap returns the backend beneath a [WithTTL] wrapper, or c itself.
func Unwrap(c Cache) Cache {
	if t, ok := c.(*ttlCache); ok {
		return t.Cache
	}
	return c
}
