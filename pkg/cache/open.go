package cache

import (
	"context"
	"path/filepath"
	"time"

	"github.com/matzehuels/circos/pkg/errors"
)

// Config selects and configures a backend.
type Config struct {
	Backend string `toml:"backend" json:"backend"`
	Dir     string `toml:"dir" json:"dir,omitempty"`
	// TTL, when set, replaces the pipeline's per-kind entry lifetimes.
	TTL    time.Duration `toml:"ttl" json:"ttl,omitempty"`
	Redis  RedisConfig   `toml:"redis" json:"redis"`
	Mongo  MongoConfig   `toml:"mongo" json:"mongo"`
	SQLite struct {
		Path string `toml:"path" json:"path,omitempty"`
	} `toml:"sqlite" json:"sqlite"`
}

// Open returns the backend named by cfg.Backend. An empty backend means
// the file cache under cfg.Dir.
func Open(ctx context.Context, cfg Config) (Cache, error) {
	c, err := open(ctx, cfg)
	if err != nil || cfg.TTL <= 0 {
		return c, err
	}
	return WithTTL(c, cfg.TTL), nil
}

func open(ctx context.Context, cfg Config) (Cache, error) {
	switch cfg.Backend {
	case "", BackendFile:
		if cfg.Dir == "" {
			return nil, errors.New(errors.ErrCodeInvalidInput, "file cache needs a directory")
		}
		return wrap(NewFileCache(cfg.Dir))
	case BackendNone:
		return NewNullCache(), nil
	case BackendRedis:
		if cfg.Redis.Addr == "" {
			return nil, errors.New(errors.ErrCodeInvalidInput, "redis cache needs an address")
		}
		return wrap(NewRedisCache(ctx, cfg.Redis))
	case BackendMongo:
		if cfg.Mongo.URI == "" {
			return nil, errors.New(errors.ErrCodeInvalidInput, "mongo cache needs a uri")
		}
		return wrap(NewMongoCache(ctx, cfg.Mongo))
	case BackendSQLite:
		path := cfg.SQLite.Path
		if path == "" {
			if cfg.Dir == "" {
				return nil, errors.New(errors.ErrCodeInvalidInput, "sqlite cache needs a path")
			}
			path = filepath.Join(cfg.Dir, "cache.db")
		}
		return wrap(NewSQLiteCache(ctx, path))
	}
	return nil, errors.New(errors.ErrCodeUnsupported, "unknown cache backend %q", cfg.Backend)
}

// wrap keeps a failed constructor's typed nil out of the interface.
func wrap[C Cache](c C, err error) (Cache, error) {
	if err != nil {
		return nil, err
	}
	return c, nil
}
