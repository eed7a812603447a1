// Package figure reads figure descriptions and builds them into drawable
// primitives.
//
// A figure lists sectors, the data tracks drawn on them and the chords
// joining them. Descriptions are TOML or JSON:
//
//	title = "genome"
//
//	[canvas]
//	size = 576
//	background = "white"
//
//	[[sectors]]
//	id = "chr1"
//	size = 248956
//	label = { visible = true }
//
//	[[tracks]]
//	kind = "tick"
//	sector = "chr1"
//	interval = 50000
//
//	[[chords]]
//	a = { sector = "chr1", start = 0, end = 1000, height = 500 }
//	b = { sector = "chr2", start = 0, end = 1000, height = 500 }
//
// Angles in a figure are degrees; the engine works in radians.
package figure

import (
	"math"

	"github.com/matzehuels/circos/pkg/core/circle"
	"github.com/matzehuels/circos/pkg/core/density"
	"github.com/matzehuels/circos/pkg/core/render/chord"
	"github.com/matzehuels/circos/pkg/core/render/track"
)

// Sector defaults applied when a figure leaves a field out.
const (
	DefaultSectorSize = 1000
	// DefaultInterspace is the gap after each sector, in degrees.
	DefaultInterspace = 3.0
	DefaultEdge       = "#303030"
	DefaultLineWidth  = 0.75
	DefaultLabelSize  = 10.0
)

// DefaultBand is the radial range of a sector without one.
var DefaultBand = [2]float64{500, 550}

// Figure is a parsed figure description.
type Figure struct {
	Title   string   `json:"title,omitempty" toml:"title"`
	Canvas  Canvas   `json:"canvas" toml:"canvas"`
	Layout  Layout   `json:"layout" toml:"layout"`
	Sectors []Sector `json:"sectors" toml:"sectors"`
	Spines  []Spine  `json:"spines,omitempty" toml:"spines"`
	Tracks  []Track  `json:"tracks,omitempty" toml:"tracks"`
	Chords  []Chord  `json:"chords,omitempty" toml:"chords"`
}

// Canvas describes the output surface.
type Canvas struct {
	// Size is the canvas edge in pixels; 0 uses the renderer default.
	Size       float64 `json:"size,omitempty" toml:"size"`
	Margin     float64 `json:"margin,omitempty" toml:"margin"`
	RMax       float64 `json:"rmax,omitempty" toml:"rmax"`
	Background string  `json:"background,omitempty" toml:"background"`
}

// Layout is the angular budget in degrees. Unset bounds use 0 and
// 360 minus the sum of interspaces.
type Layout struct {
	Start *float64 `json:"start,omitempty" toml:"start"`
	End   *float64 `json:"end,omitempty" toml:"end"`
}

// Sector is one sector entry.
type Sector struct {
	ID   string `json:"id,omitempty" toml:"id"`
	// Size defaults to DefaultSectorSize when absent; an explicit 0 is
	// rejected by the registry.
	Size *int `json:"size,omitempty" toml:"size"`
	// Interspace is the gap after the sector in degrees.
	Interspace *float64    `json:"interspace,omitempty" toml:"interspace"`
	Band       *[2]float64 `json:"band,omitempty" toml:"band"`
	Fill       string      `json:"fill,omitempty" toml:"fill"`
	Edge       string      `json:"edge,omitempty" toml:"edge"`
	LineWidth  *float64    `json:"line_width,omitempty" toml:"line_width"`
	Label      Label       `json:"label" toml:"label"`
	// Data holds named series for tracks to reference by key.
	Data map[string][]float64 `json:"data,omitempty" toml:"data"`
}

// Label configures a sector label.
type Label struct {
	Text    string  `json:"text,omitempty" toml:"text"`
	Visible bool    `json:"visible,omitempty" toml:"visible"`
	Offset  float64 `json:"offset,omitempty" toml:"offset"`
	Size    float64 `json:"size,omitempty" toml:"size"`
}

// Spine is a background band drawn under a sector, or under every sector
// when Sector is empty.
type Spine struct {
	Sector    string     `json:"sector,omitempty" toml:"sector"`
	Band      [2]float64 `json:"band" toml:"band"`
	Fill      string     `json:"fill,omitempty" toml:"fill"`
	Edge      string     `json:"edge,omitempty" toml:"edge"`
	LineWidth float64    `json:"line_width,omitempty" toml:"line_width"`
}

// Track is a data track. With Density set, the values are computed by
// windowing the given features over the sector instead of read from
// Values or Data.
type Track struct {
	track.Spec
	Density *Density `json:"density,omitempty" toml:"density"`
}

// Density is a windowed feature count.
type Density struct {
	Points    []int              `json:"points,omitempty" toml:"points"`
	Intervals []density.Interval `json:"intervals,omitempty" toml:"intervals"`
	Window    int                `json:"window,omitempty" toml:"window"`
}

// Chord joins two sector ranges.
type Chord struct {
	A         chord.Anchor `json:"a" toml:"a"`
	B         chord.Anchor `json:"b" toml:"b"`
	Fill      string       `json:"fill,omitempty" toml:"fill"`
	Edge      string       `json:"edge,omitempty" toml:"edge"`
	LineWidth float64      `json:"line_width,omitempty" toml:"line_width"`
}

// sector converts the entry into a registry sector with figure defaults.
func (s Sector) sector() circle.Sector {
	size := DefaultSectorSize
	if s.Size != nil {
		size = *s.Size
	}
	space := DefaultInterspace
	if s.Interspace != nil {
		space = *s.Interspace
	}
	band := circle.Band(DefaultBand)
	if s.Band != nil {
		band = circle.Band(*s.Band)
	}
	edge := s.Edge
	if edge == "" {
		edge = DefaultEdge
	}
	lw := DefaultLineWidth
	if s.LineWidth != nil {
		lw = *s.LineWidth
	}
	labelSize := s.Label.Size
	if labelSize == 0 {
		labelSize = DefaultLabelSize
	}
	return circle.Sector{
		ID:         s.ID,
		Size:       size,
		Interspace: space * math.Pi / 180,
		Band:       band,
		Style:      circle.Style{Fill: s.Fill, Edge: edge, LineWidth: lw},
		Label: circle.Label{
			Text:    s.Label.Text,
			Visible: s.Label.Visible,
			Offset:  s.Label.Offset,
			Size:    labelSize,
		},
		Data: s.Data,
	}
}

// Pairs returns the chord endpoints in figure order.
func (f *Figure) Pairs() []chord.Pair {
	pairs := make([]chord.Pair, len(f.Chords))
	for i, c := range f.Chords {
		pairs[i] = chord.Pair{A: c.A, B: c.B}
	}
	return pairs
}
