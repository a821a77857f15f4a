package cache

import (
	"context"
	"time"
)

// Cache is a byte cache for read-side data. The market service uses it
// for listing snapshots, deleting keys whenever a transactional
// mutation touches the listing. Swapping memory for Redis is a config
// change, not a code change.
type Cache interface {
	// Get retrieves a value by key. Returns ErrCacheMiss if not found.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value with the given TTL.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a value by key.
	Delete(ctx context.Context, key string) error
}

// CacheError is a sentinel-friendly error string type.
type CacheError string

func (e CacheError) Error() string { return string(e) }

// ErrCacheMiss indicates the key was not found in cache.
const ErrCacheMiss CacheError = "cache miss"
