// Package track draws data tracks on solved sectors: lines, filled areas,
// scatter dots, bars, heatmaps, feature spans and ticks.
//
// Every track maps data positions to angles through [circle.Project] and
// values to radii inside a radial band. Values outside the value range split
// a series into independent segments instead of being clamped.
package track

import (
	"math"

	"github.com/matzehuels/circos/pkg/core/circle"
	"github.com/matzehuels/circos/pkg/core/palette"
	"github.com/matzehuels/circos/pkg/core/render/arc"
	"github.com/matzehuels/circos/pkg/core/render/canvas"
	"github.com/matzehuels/circos/pkg/errors"
)

// Kind names a track type.
type Kind string

const (
	KindLine    Kind = "line"
	KindFill    Kind = "fill"
	KindScatter Kind = "scatter"
	KindBar     Kind = "bar"
	KindHeatmap Kind = "heatmap"
	KindFeature Kind = "feature"
	KindTick    Kind = "tick"
)

// Kinds lists every track type.
var Kinds = []Kind{KindLine, KindFill, KindScatter, KindBar, KindHeatmap, KindFeature, KindTick}

// Defaults.
var DefaultBand = circle.Band{550, 600}

const (
	DefaultEdge         = "#303030"
	DefaultLineWidth    = 1.0
	DefaultMarkerSize   = 5.0
	DefaultTickInterval = 1000
	DefaultTickLength   = 5.0
	// MaxTicks bounds the ticks a single tick track may draw.
	MaxTicks            = 10000
	DirectionOuter      = "outer"
	DirectionInner      = "inner"
)

// Feature is an annotated span on a sector. Reverse-strand features may list
// their ends in either order.
type Feature struct {
	Start  float64 `json:"start" toml:"start" bson:"start"`
	End    float64 `json:"end" toml:"end" bson:"end"`
	Strand int     `json:"strand,omitempty" toml:"strand" bson:"strand,omitempty"`
	Type   string  `json:"type,omitempty" toml:"type" bson:"type,omitempty"`
}

// Spec describes one track. Fields that do not apply to Kind are ignored.
type Spec struct {
	Kind   Kind   `json:"kind" toml:"kind"`
	Sector string `json:"sector" toml:"sector"`

	// Values is the series; Data names a series attached to the sector
	// instead.
	Values []float64 `json:"values,omitempty" toml:"values"`
	Data   string    `json:"data,omitempty" toml:"data"`
	// Positions are data coordinates of each value; empty spreads the values
	// evenly over the sector.
	Positions []float64 `json:"positions,omitempty" toml:"positions"`

	Band *circle.Band `json:"band,omitempty" toml:"band"`
	// RLim is the value range mapped onto the band.
	RLim *[2]float64 `json:"rlim,omitempty" toml:"rlim"`
	// Base is the value fills and bars grow from; defaults to the range low.
	Base *float64 `json:"base,omitempty" toml:"base"`
	// Widths are bar/heatmap widths in data units: one value for all bars
	// or one per value.
	Widths []float64 `json:"widths,omitempty" toml:"widths"`

	Color     string   `json:"color,omitempty" toml:"color"`
	Edge      string   `json:"edge,omitempty" toml:"edge"`
	LineWidth *float64 `json:"line_width,omitempty" toml:"line_width"`
	// MarkerSize is the scatter dot area in points squared.
	MarkerSize float64 `json:"marker_size,omitempty" toml:"marker_size"`

	Colormap string   `json:"colormap,omitempty" toml:"colormap"`
	VMin     *float64 `json:"vmin,omitempty" toml:"vmin"`
	VMax     *float64 `json:"vmax,omitempty" toml:"vmax"`

	Features    []Feature `json:"features,omitempty" toml:"features"`
	FeatureType string    `json:"feature_type,omitempty" toml:"feature_type"`

	Interval  float64 `json:"interval,omitempty" toml:"interval"`
	Length    float64 `json:"length,omitempty" toml:"length"`
	Direction string  `json:"direction,omitempty" toml:"direction"`
	Labels    bool    `json:"labels,omitempty" toml:"labels"`
	LabelSize float64 `json:"label_size,omitempty" toml:"label_size"`

	// Spine draws a background band behind the track.
	Spine bool `json:"spine,omitempty" toml:"spine"`
}

// Plotter draws tracks against a solved registry.
type Plotter struct {
	registry *circle.Registry
	backend  canvas.Backend
	colors   *palette.Cycle
	cmaps    int
}

// New returns a plotter drawing into b. Default colors come from c, which the
// figure shares with its chords; nil gives the plotter its own cycle.
func New(r *circle.Registry, b canvas.Backend, c *palette.Cycle) *Plotter {
	if c == nil {
		c = &palette.Cycle{}
	}
	return &Plotter{registry: r, backend: b, colors: c}
}

// Plot draws spec.
func (p *Plotter) Plot(spec Spec) error {
	s, err := p.registry.SolvedSector(spec.Sector)
	if err != nil {
		return err
	}
	band := DefaultBand
	if spec.Band != nil {
		band = *spec.Band
	}
	if err := band.Validate(); err != nil {
		return err
	}
	band = band.Normalize()

	if spec.Data != "" && len(spec.Values) == 0 {
		v, err := p.registry.Data(spec.Sector, spec.Data)
		if err != nil {
			return err
		}
		spec.Values = v
	}
	if spec.LineWidth != nil && (*spec.LineWidth < 0 || math.IsNaN(*spec.LineWidth)) {
		return errors.New(errors.ErrCodeInvalidRange, "%s track: line width must be non-negative", spec.Kind)
	}

	switch spec.Kind {
	case KindLine:
		err = p.line(s, band, spec)
	case KindFill:
		err = p.fill(s, band, spec)
	case KindScatter:
		err = p.scatter(s, band, spec)
	case KindBar:
		err = p.bar(s, band, spec)
	case KindHeatmap:
		err = p.heatmap(s, band, spec)
	case KindFeature:
		err = p.feature(s, band, spec)
	case KindTick:
		err = p.tick(s, band, spec)
	default:
		return errors.New(errors.ErrCodeInvalidInput, "unknown track kind %q", spec.Kind)
	}
	if err != nil {
		return err
	}
	if spec.Spine {
		return arc.New(p.backend).EmitSpine(s, band, canvas.Style{})
	}
	return nil
}

// =============================================================================
// Shared helpers
// =============================================================================

// point is one projected sample.
type point struct {
	theta float64
	value float64
}

// samples projects values onto s. Without positions the values are spread
// evenly from the sector's start to its end.
func samples(s circle.Sector, values, positions []float64) ([]point, error) {
	if len(values) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "track on sector %q has no values", s.ID)
	}
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, errors.New(errors.ErrCodeInvalidInput, "track on sector %q has non-finite values", s.ID)
		}
	}
	out := make([]point, len(values))
	if len(positions) == 0 {
		for i, theta := range circle.Spread(s, len(values)) {
			out[i] = point{theta: theta, value: values[i]}
		}
		return out, nil
	}
	if len(positions) != len(values) {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"track on sector %q: %d positions for %d values", s.ID, len(positions), len(values))
	}
	for i, pos := range positions {
		theta, err := circle.Project(s, pos)
		if err != nil {
			return nil, err
		}
		out[i] = point{theta: theta, value: values[i]}
	}
	return out, nil
}

// valueRange returns rlim or the padded data range.
func valueRange(values []float64, rlim *[2]float64) (lo, hi float64, err error) {
	if rlim != nil {
		lo, hi = rlim[0], rlim[1]
		if math.IsNaN(lo) || math.IsNaN(hi) || hi < lo {
			return 0, 0, errors.New(errors.ErrCodeInvalidRange, "value range [%g, %g] is invalid", lo, hi)
		}
		return lo, hi, nil
	}
	lo, hi = minMax(values)
	return lo - 0.05*math.Abs(lo), hi + 0.05*math.Abs(hi), nil
}

func minMax(values []float64) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi
}

// radius maps v in [lo, hi] onto band. A collapsed range maps to the band's
// middle.
func radius(v, lo, hi float64, band circle.Band) float64 {
	if hi == lo {
		return band.Mid()
	}
	return band.Bottom() + (v-lo)*band.Height()/(hi-lo)
}

// split cuts pts into runs of consecutive samples within [lo, hi]. It
// returns index ranges [from, to).
func split(pts []point, lo, hi float64) [][2]int {
	var runs [][2]int
	from := -1
	for i, pt := range pts {
		if pt.value < lo || pt.value > hi {
			if from >= 0 {
				runs = append(runs, [2]int{from, i})
				from = -1
			}
			continue
		}
		if from < 0 {
			from = i
		}
	}
	if from >= 0 {
		runs = append(runs, [2]int{from, len(pts)})
	}
	return runs
}

// color returns c, or the next default color.
func (p *Plotter) color(c string) string {
	if c != "" {
		return c
	}
	return p.colors.Next(palette.Chords)
}

func lineWidth(w *float64, def float64) float64 {
	if w == nil {
		return def
	}
	return *w
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
