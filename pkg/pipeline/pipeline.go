// Package pipeline provides the layout and render pipeline for circos.
//
// This package implements the figure → scene → artifacts pipeline shared by
// the CLI and the HTTP API, so both apply the same defaults, cache keys and
// output formats.
//
// # Architecture
//
// The pipeline consists of two stages:
//
//  1. Layout: Register and solve the sectors of a figure, then draw sectors,
//     spines, tracks and chords into a [scene.Scene]
//  2. Render: Turn a scene into output artifacts (SVG, PNG, PDF, JSON, DOT,
//     connectivity diagram)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	fig, _ := figure.ReadFile("genome.toml")
//	result, err := runner.Execute(ctx, fig, pipeline.Options{
//	    Formats: []string{"svg", "png"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Run individual stages:
//
//	s, err := runner.GenerateLayout(ctx, fig, opts)
//	artifacts, err := runner.Render(ctx, s, opts)
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/circos/pkg/cache"
	"github.com/matzehuels/circos/pkg/core/palette"
	"github.com/matzehuels/circos/pkg/errors"
	"github.com/matzehuels/circos/pkg/scene"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultScale is the PNG scale factor.
	DefaultScale = 2.0

	// MaxScale bounds the PNG scale factor; a 576px figure at scale 16 is
	// already 9216px square.
	MaxScale = 16.0
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
	// FormatDOT is the Graphviz source of the sector connectivity graph.
	FormatDOT = "dot"
	// FormatLinks is the connectivity graph drawn by Graphviz, as SVG.
	FormatLinks = "links"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:   true,
	FormatPNG:   true,
	FormatPDF:   true,
	FormatJSON:  true,
	FormatDOT:   true,
	FormatLinks: true,
}

// Extensions maps formats to output file extensions.
var Extensions = map[string]string{
	FormatSVG:   ".svg",
	FormatPNG:   ".png",
	FormatPDF:   ".pdf",
	FormatJSON:  ".json",
	FormatDOT:   ".dot",
	FormatLinks: ".links.svg",
}

// ContentTypes maps formats to HTTP content types.
var ContentTypes = map[string]string{
	FormatSVG:   "image/svg+xml",
	FormatPNG:   "image/png",
	FormatPDF:   "application/pdf",
	FormatJSON:  "application/json",
	FormatDOT:   "text/vnd.graphviz",
	FormatLinks: "image/svg+xml",
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the pipeline.
// This struct supports JSON serialization for API requests.
//
// Zero canvas fields fall back to the figure's [canvas] table and then to the
// renderer defaults.
type Options struct {
	// Layout options
	Width    float64  `json:"width,omitempty"`
	Margin   float64  `json:"margin,omitempty"`
	RMax     float64  `json:"rmax,omitempty"`
	StartDeg *float64 `json:"start_deg,omitempty"`
	EndDeg   *float64 `json:"end_deg,omitempty"`

	// Render options
	Formats    []string `json:"formats,omitempty"`
	Background string   `json:"background,omitempty"`
	Scale      float64  `json:"scale,omitempty"`
	// Native rasterizes PNG in-process even when rsvg-convert is installed.
	Native bool `json:"native,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Scene is the solved figure.
	Scene scene.Scene

	// SceneHash is the content hash of the scene.
	SceneHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	SectorCount int
	LinkCount   int
	ItemCount   int
	LayoutTime  time.Duration
	RenderTime  time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LayoutHit bool // Whether the scene came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: svg, png, pdf, json, dot, links)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateForLayout checks the canvas options and sets defaults for layout.
func (o *Options) ValidateForLayout() error {
	o.SetLayoutDefaults()
	if o.Width < 0 || o.Margin < 0 || o.RMax < 0 {
		return errors.New(errors.ErrCodeInvalidRange, "width, margin and rmax must not be negative")
	}
	if o.Width > 0 && 2*o.Margin >= o.Width {
		return errors.New(errors.ErrCodeInvalidRange, "margin %g leaves no room on a %g canvas", o.Margin, o.Width)
	}
	return nil
}

// SetLayoutDefaults sets default values for layout computation.
func (o *Options) SetLayoutDefaults() {
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.Scale < 0 || o.Scale > MaxScale {
		return errors.New(errors.ErrCodeInvalidRange, "scale %g outside (0, %g]", o.Scale, MaxScale)
	}
	return palette.Validate(o.Background)
}

// LayoutKeyOpts returns cache key options for layout computation.
func (o *Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{
		Width:    o.Width,
		Margin:   o.Margin,
		RMax:     o.RMax,
		StartDeg: o.StartDeg,
		EndDeg:   o.EndDeg,
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	k := cache.ArtifactKeyOpts{Format: format, Background: o.Background}
	if format == FormatPNG {
		k.Scale = o.Scale
		k.Native = o.Native
	}
	return k
}
