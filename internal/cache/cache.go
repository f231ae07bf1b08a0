// Package cache defines the cache abstraction used by request handlers.
// Caches are constructed once at process start and injected, never held
// as package-level state.
package cache

import (
	"context"
	"time"
)

// Cache is a TTL key/value store for computed responses. Implementations
// must be safe for concurrent use.
type Cache interface {
	// Get returns the stored value and whether it was present and fresh.
	Get(ctx context.Context, key string) ([]byte, bool)
	// Set stores a value under key for ttl. A non-positive ttl stores
	// the value without expiry.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
	// Delete removes a key. Deleting an absent key is a no-op.
	Delete(ctx context.Context, key string)
}
