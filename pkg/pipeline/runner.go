package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/circos/pkg/cache"
	"github.com/matzehuels/circos/pkg/figure"
	"github.com/matzehuels/circos/pkg/observability"
	"github.com/matzehuels/circos/pkg/scene"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API use it so that scenes and artifacts are keyed the same way.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete layout → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, fig *figure.Figure, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForLayout(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	if err := opts.ValidateForRender(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{}

	// Stage 1: Layout
	layoutStart := time.Now()
	s, layoutHit, err := r.GenerateLayoutWithCacheInfo(ctx, fig, opts)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Scene = s
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.Stats.SectorCount = len(s.Sectors)
	result.Stats.LinkCount = len(s.Links)
	result.Stats.ItemCount = len(s.Items)
	result.CacheInfo.LayoutHit = layoutHit

	r.Logger.Info("computed layout",
		"sectors", result.Stats.SectorCount,
		"links", result.Stats.LinkCount,
		"cached", layoutHit,
		"duration", result.Stats.LayoutTime)

	// Stage 2: Render
	renderStart := time.Now()
	artifacts, hash, renderHit, err := r.render(ctx, s, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.SceneHash = hash
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", renderHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// GenerateLayoutWithCacheInfo builds a scene with caching and returns cache hit info.
// Scenes are keyed by the figure's content hash and the canvas options.
func (r *Runner) GenerateLayoutWithCacheInfo(ctx context.Context, fig *figure.Figure, opts Options) (scene.Scene, bool, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForLayout(); err != nil {
		return scene.Scene{}, false, err
	}

	hooks := observability.Pipeline()
	hooks.OnLayoutStart(ctx, len(fig.Sectors))
	start := time.Now()

	figHash, err := cache.HashJSON(fig)
	if err != nil {
		return scene.Scene{}, false, err
	}
	cacheKey := r.Keyer.LayoutKey(figHash, opts.LayoutKeyOpts())

	// Try cache first
	if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
		if cached, err := scene.UnmarshalScene(data); err == nil {
			observability.Cache().OnCacheHit(ctx, "layout")
			hooks.OnLayoutComplete(ctx, len(cached.Sectors), len(cached.Links), time.Since(start), nil)
			return cached, true, nil
		}
		// If deserialization fails, fall through to recompute
	}
	observability.Cache().OnCacheMiss(ctx, "layout")

	s, err := GenerateLayout(fig, opts)
	hooks.OnLayoutComplete(ctx, len(s.Sectors), len(s.Links), time.Since(start), err)
	if err != nil {
		return scene.Scene{}, false, err
	}

	if data, err := scene.MarshalScene(s); err == nil {
		if err := r.Cache.Set(ctx, cacheKey, data, cache.LayoutTTL); err != nil {
			opts.Logger.Warn("cache write failed", "key", cacheKey, "error", err)
		} else {
			observability.Cache().OnCacheSet(ctx, "layout", len(data))
		}
	}

	return s, false, nil
}

// GenerateLayout is a convenience wrapper that calls GenerateLayoutWithCacheInfo and discards the cache hit info.
func (r *Runner) GenerateLayout(ctx context.Context, fig *figure.Figure, opts Options) (scene.Scene, error) {
	s, _, err := r.GenerateLayoutWithCacheInfo(ctx, fig, opts)
	return s, err
}

// RenderWithCacheInfo generates artifacts with caching and returns cache hit info.
// Artifacts are keyed by the scene's content hash and the format's options.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, s scene.Scene, opts Options) (map[string][]byte, bool, error) {
	r.applyLogger(&opts)
	artifacts, _, hit, err := r.render(ctx, s, opts)
	return artifacts, hit, err
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and discards the cache hit info.
func (r *Runner) Render(ctx context.Context, s scene.Scene, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, s, opts)
	return artifacts, err
}

func (r *Runner) render(ctx context.Context, s scene.Scene, opts Options) (map[string][]byte, string, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, "", false, err
	}

	sceneData, err := scene.MarshalScene(s)
	if err != nil {
		return nil, "", false, fmt.Errorf("serialize scene for cache key: %w", err)
	}
	sceneHash := cache.Hash(sceneData)

	// Try to get all formats from cache
	artifacts := make(map[string][]byte)
	for _, format := range opts.Formats {
		cacheKey := r.Keyer.ArtifactKey(sceneHash, opts.ArtifactKeyOpts(format))
		data, hit, err := r.Cache.Get(ctx, cacheKey)
		if err != nil || !hit {
			break
		}
		artifacts[format] = data
	}
	if len(artifacts) == len(opts.Formats) {
		observability.Cache().OnCacheHit(ctx, "artifact")
		return artifacts, sceneHash, true, nil
	}
	observability.Cache().OnCacheMiss(ctx, "artifact")

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()
	rendered, err := Render(ctx, s, opts)
	hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	if err != nil {
		return nil, "", false, err
	}

	for format, data := range rendered {
		cacheKey := r.Keyer.ArtifactKey(sceneHash, opts.ArtifactKeyOpts(format))
		if err := r.Cache.Set(ctx, cacheKey, data, cache.ArtifactTTL); err != nil {
			opts.Logger.Warn("cache write failed", "format", format, "error", err)
			continue
		}
		observability.Cache().OnCacheSet(ctx, "artifact", len(data))
	}

	return rendered, sceneHash, false, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
