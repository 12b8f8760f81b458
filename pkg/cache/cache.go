// Package cache provides content-addressed caching for deck pipelines.
//
// # Overview
//
// Pipeline stages are deterministic, so results are cached by content
// hash: a slide hash keys its generated layout, a layout hash plus render
// format keys the artifact. Backends:
//
//   - [FileCache]: on-disk cache for CLI usage
//   - [RedisCache]: shared cache for the API server
//   - [NullCache]: disabled caching
//
// Keys are built through a [Keyer] so multi-tenant deployments can isolate
// namespaces with [ScopedKeyer] without touching call sites.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key-value store with per-entry TTLs.
// A TTL of zero means the entry never expires.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key
	// was present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with the given TTL.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Default TTLs per key class. Layouts are content-addressed and never go
// stale; artifacts and upstream HTTP responses get bounded lifetimes.
const (
	TTLLayout   = time.Duration(0)
	TTLArtifact = 7 * 24 * time.Hour
	TTLHTTP     = 24 * time.Hour
)
