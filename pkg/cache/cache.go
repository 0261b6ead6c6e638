// Package cache provides result caching for search runs.
//
// The [Cache] interface abstracts the backend; three implementations are
// provided:
//
//   - [FileCache]: hash-sharded JSON files, used by the CLI
//   - [RedisCache]: shared cache for server deployments
//   - [NullCache]: disables caching
//
// Keys are derived with [ResultKey] from the graph's serialized form and
// the search parameters, so any change to the graph, endpoints, or
// strategy produces a distinct key.
package cache

import (
	"context"
	"time"
)

// TTLResult is how long cached search results stay valid. Results are a
// pure function of their key, so the TTL only bounds disk usage.
const TTLResult = 30 * 24 * time.Hour

// Cache stores opaque byte values under string keys with optional TTL.
type Cache interface {
	// Get retrieves a value. The second return is false on a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A ttl of zero means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// ResultKey builds the cache key for one search invocation.
// graphData is the graph's canonical serialized form.
func ResultKey(graphData []byte, start, goal, strategy string) string {
	return hashKey("result", Hash(graphData), start, goal, strategy)
}
