// Package cache stores rendered plot artifacts so re-plotting an unchanged
// profile is free.
//
// Backends implement [Cache]: [FileCache] for the CLI (one JSON file per
// entry under the user cache directory), [RedisCache] for sharing artifacts
// between machines, and [NullCache] when caching is disabled. Keys come from
// a [Keyer], which hashes the input CSV together with every option that
// changes the output.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with per-entry expiry.
type Cache interface {
	// Get returns the stored bytes and true on a hit. Misses are not errors.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. ttl <= 0 means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases backend resources.
	Close() error
}

// TTLArtifact is how long rendered plots are kept.
const TTLArtifact = 7 * 24 * time.Hour
