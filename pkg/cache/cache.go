// Package cache provides content-addressed caching for rendered circuit
// artifacts. Implementations store opaque byte blobs with optional TTL
// expiration; keys are derived from SHA-256 hashes of the inputs.
package cache

import (
	"context"
	"time"
)

// Cache is the storage interface shared by the CLI and the render server.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get retrieves a value. The bool reports whether the key was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with the given TTL. A zero TTL means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}
