// Package cache provides the query-result cache used by the lexigraph
// server.
//
// Distance and ancestor queries are deterministic for a frozen dataset, so
// their answers can be cached indefinitely as long as the cache namespace is
// tied to the dataset contents. [Keyer] builds the keys, [ScopedKeyer]
// prefixes them with a dataset fingerprint so a new dataset silently starts
// from a cold cache, and [Cache] abstracts the storage backend (file for
// single-host CLI serving, Redis for shared deployments, null to disable).
package cache

import (
	"context"
	"strings"
	"time"
)

// DefaultTTL is the default lifetime for cached query results. Results only
// go stale when the dataset changes, which the scoped key prefix already
// handles, so this mainly bounds disk usage.
const DefaultTTL = 24 * time.Hour

// Cache is a byte-oriented key-value store with per-entry expiration.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get retrieves a value. The second return is false on a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with a time-to-live. A non-positive ttl stores the
	// entry without expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the backend.
	Close() error
}

// Keyer generates cache keys for the different cached value types.
type Keyer interface {
	// QueryKey generates a key for a query result. kind names the operation
	// ("distance", "sca", "outcast") and terms are its word arguments.
	QueryKey(kind string, terms ...string) string

	// GraphKey generates a key for a serialized graph snapshot.
	GraphKey(datasetHash string) string
}

// DefaultKeyer is the standard key scheme: a type prefix plus a hash of the
// arguments, so arbitrary words never leak unescaped into backend keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer { return &DefaultKeyer{} }

// QueryKey generates a key for a query result.
func (k *DefaultKeyer) QueryKey(kind string, terms ...string) string {
	return hashKey("query:"+kind, strings.Join(terms, "\x00"))
}

// GraphKey generates a key for a serialized graph snapshot.
func (k *DefaultKeyer) GraphKey(datasetHash string) string {
	return "graph:" + datasetHash
}
