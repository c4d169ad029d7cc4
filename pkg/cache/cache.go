// Package cache stores rendered bracket artifacts between CLI runs.
//
// Rendering an SVG through Graphviz (and converting it to PDF or PNG) is the
// slowest thing the CLI does, and the output depends only on the DOT source
// and the target format. Artifacts are therefore keyed by a hash of the DOT
// source plus the output options, so re-rendering an unchanged bracket is a
// file read.
//
// # Implementations
//
//   - [FileCache]: one JSON file per entry under a directory, with optional TTL
//   - [RedisCache]: a shared Redis server, expiry via key TTLs
//   - [NullCache]: never stores anything; used for --no-cache
//
// # Keys
//
// A [Keyer] builds keys. [NewDefaultKeyer] hashes its inputs and
// [NewScopedKeyer] prefixes another keyer, which the CLI uses to separate
// entries written by different releases.
package cache

import (
	"context"
	"strings"
	"time"
)

// Cache is a byte store with optional expiry.
type Cache interface {
	// Get returns the value for key and whether it was found.
	// Expired and unreadable entries are reported as misses.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}

// Keyer builds cache keys.
type Keyer interface {
	// ArtifactKey returns the key of a rendered artifact of a DOT source
	// whose hash (see [Hash]) is dotHash.
	ArtifactKey(dotHash string, opts ArtifactKeyOpts) string
}

// ArtifactKeyOpts are the output options an artifact depends on.
type ArtifactKeyOpts struct {
	Format string  `json:"format"`
	Scale  float64 `json:"scale,omitempty"`
}

// DefaultKeyer is the standard [Keyer].
type DefaultKeyer struct{}

// NewDefaultKeyer creates a keyer producing "artifact:<sha256>" keys.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// ArtifactKey implements [Keyer].
func (DefaultKeyer) ArtifactKey(dotHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", dotHash, opts)
}

// keyType returns the segment before the hash of key, so both
// "artifact:<hash>" and "v1.2.0:artifact:<hash>" report "artifact".
func keyType(key string) string {
	i := strings.LastIndexByte(key, ':')
	if i < 0 {
		return key
	}
	rest := key[:i]
	if j := strings.LastIndexByte(rest, ':'); j >= 0 {
		return rest[j+1:]
	}
	return rest
}
