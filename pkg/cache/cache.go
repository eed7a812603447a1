// Package cache stores computed scenes and rendered artifacts.
//
// Every backend implements [Cache], a byte-oriented key/value store with
// per-entry TTL. Keys come from a [Keyer] so that the CLI, the HTTP server
// and tests agree on how a layout or an artifact is addressed:
//
//	layout:<hash(figure, layout options)>
//	artifact:<hash(scene, format options)>
//	scene:<id>
//
// Backends:
//   - [FileCache]: one JSON file per entry, for the CLI
//   - [RedisCache]: shared cache for the HTTP server
//   - [MongoCache]: documents with a TTL index
//   - [SQLiteCache]: single-file database through modernc.org/sqlite
//   - [NullCache]: disables caching
package cache

import (
	"context"
	"time"
)

// Cache is a key/value store with expiring entries.
type Cache interface {
	// Get returns the value for key. A missing or expired entry is a miss
	// (false, nil), not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A ttl of zero keeps the entry forever.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Backend names accepted by [Open].
const (
	BackendFile   = "file"
	BackendRedis  = "redis"
	BackendMongo  = "mongo"
	BackendSQLite = "sqlite"
	BackendNone   = "none"
)

// TTLs used by the pipeline.
const (
	LayoutTTL   = 7 * 24 * time.Hour
	ArtifactTTL = 7 * 24 * time.Hour
	SceneTTL    = 24 * time.Hour
)
