package cli

import (
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/circos/pkg/cache"
	"github.com/matzehuels/circos/pkg/errors"
	"github.com/matzehuels/circos/pkg/pipeline"
)

// Config is the CLI configuration file.
//
//	[cache]
//	backend = "sqlite"
//	ttl = "72h"
//
//	[cache.sqlite]
//	path = "/var/cache/circos/cache.db"
//
//	[render]
//	formats = ["svg", "png"]
//	size = 800
//
//	[serve]
//	addr = ":8080"
type Config struct {
	Cache  cache.Config `toml:"cache"`
	Render RenderConfig `toml:"render"`
	Serve  ServeConfig  `toml:"serve"`
}

// RenderConfig holds render defaults.
type RenderConfig struct {
	Formats []string `toml:"formats"`
	// Size overrides the figure canvas size when set.
	Size  float64 `toml:"size"`
	Scale float64 `toml:"scale"`
	// Native selects the in-process PNG rasterizer.
	Native bool `toml:"native"`
}

// ServeConfig holds HTTP server settings.
type ServeConfig struct {
	Addr string `toml:"addr"`
}

// DefaultConfig returns the configuration used without a config file.
func DefaultConfig() Config {
	return Config{
		Cache: cache.Config{Backend: cache.BackendFile},
		Render: RenderConfig{
			Formats: []string{pipeline.FormatSVG},
			Scale:   pipeline.DefaultScale,
			Native:  true,
		},
		Serve: ServeConfig{Addr: ":8080"},
	}
}

// LoadConfig reads path over the defaults. A missing file yields the
// defaults unless required is set.
func LoadConfig(path string, required bool) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) && !required {
		return cfg, nil
	}
	if os.IsNotExist(err) {
		return cfg, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
	}
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInternal, err, "read config %s", path)
	}

	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse config %s", path)
	}
	if und := md.Undecoded(); len(und) > 0 {
		keys := make([]string, len(und))
		for i, k := range und {
			keys[i] = k.String()
		}
		return cfg, errors.New(errors.ErrCodeInvalidFormat, "config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := pipeline.ValidateFormats(cfg.Render.Formats); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidFormat, err, "config %s", path)
	}
	return cfg, nil
}
