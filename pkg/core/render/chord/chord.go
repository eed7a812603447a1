// Package chord builds the ribbons that connect two sector sub-ranges
// through the interior of the circle.
//
// A ribbon is a closed path of nine knots in polar space: a move to the first
// anchor followed by four quadratic Bezier segments. Two of them dip to the
// center, the other two bulge outward across each anchor's own span so that
// wide anchors get a round cap and point anchors a spike:
//
//	M (s0, h1)
//	Q (s0, 0)            (o1, h2)
//	Q ((o0+o1)/2, h2+z2) (o0, h2)
//	Q (o0, 0)            (s1, h1)
//	Q ((s0+s1)/2, h1+z1) (s0, h1)
//	Z
//
// where s0/s1 and o0/o1 are the absolute start/end angles of the anchors, h1
// and h2 their radial heights and z = h - h*cos(|Δ|/2) the bulge of each
// anchor. The knot order is fixed; any other order makes the fill
// self-intersect.
package chord

import (
	"math"

	"github.com/matzehuels/circos/pkg/core/circle"
	"github.com/matzehuels/circos/pkg/core/palette"
	"github.com/matzehuels/circos/pkg/core/render/canvas"
	"github.com/matzehuels/circos/pkg/errors"
)

// Anchor is one end of a ribbon: a sub-range [Start, End] in the data
// coordinates of Sector and the radius the ribbon attaches at.
type Anchor struct {
	Sector string  `json:"sector" toml:"sector" bson:"sector"`
	Start  float64 `json:"start" toml:"start" bson:"start"`
	End    float64 `json:"end" toml:"end" bson:"end"`
	Height float64 `json:"height" toml:"height" bson:"height"`
}

// Generator builds ribbons against one solved registry. Ribbons without an
// explicit fill take colors from a palette cycle, so default colors depend on
// call order only.
type Generator struct {
	registry *circle.Registry
	colors   *palette.Cycle
}

// NewGenerator returns a generator reading coordinates from r with a color
// cycle of its own.
func NewGenerator(r *circle.Registry) *Generator {
	return NewGeneratorWithCycle(r, &palette.Cycle{})
}

// NewGeneratorWithCycle returns a generator that draws default colors from
// c, shared with the figure's data tracks.
func NewGeneratorWithCycle(r *circle.Registry, c *palette.Cycle) *Generator {
	if c == nil {
		c = &palette.Cycle{}
	}
	return &Generator{registry: r, colors: c}
}

// Calls returns how many default colors have been handed out.
func (g *Generator) Calls() int { return g.colors.Count() }

// Build returns the ribbon joining a and b. The boolean is false, with a nil
// error, when both anchors start at the same absolute angle: such a ribbon
// has zero width and nothing is drawn.
//
// An empty style.Fill takes the next chord palette color with
// [palette.ChordAlpha] appended. The cycle advances even when the ribbon
// turns out to be empty.
func (g *Generator) Build(a, b Anchor, style canvas.Style) (canvas.Path, bool, error) {
	s0, s1, err := g.project(a)
	if err != nil {
		return canvas.Path{}, false, err
	}
	o0, o1, err := g.project(b)
	if err != nil {
		return canvas.Path{}, false, err
	}
	for _, h := range []float64{a.Height, b.Height} {
		if math.IsNaN(h) || math.IsInf(h, 0) {
			return canvas.Path{}, false, errors.New(errors.ErrCodeInvalidRange, "chord height must be finite, got %g", h)
		}
	}

	if style.Fill == "" {
		style.Fill = g.colors.Next(palette.Chords) + palette.ChordAlpha
	}

	if s0 == o0 {
		return canvas.Path{}, false, nil
	}

	path := Ribbon(s0, s1, a.Height, o0, o1, b.Height)
	path.Style = style
	path.Layer = canvas.LayerChord
	path.ID = a.Sector + "-" + b.Sector
	return path, true, nil
}

// Emit builds the ribbon joining a and b and draws it into dst. It reports
// whether anything was drawn.
func (g *Generator) Emit(dst canvas.Backend, a, b Anchor, style canvas.Style) (bool, error) {
	path, ok, err := g.Build(a, b, style)
	if err != nil || !ok {
		return false, err
	}
	if err := dst.Path(path); err != nil {
		return false, err
	}
	return true, nil
}

// project maps the anchor's sub-range to absolute angles.
func (g *Generator) project(a Anchor) (start, end float64, err error) {
	s, err := g.registry.SolvedSector(a.Sector)
	if err != nil {
		return 0, 0, err
	}
	limit := float64(s.Size - 1)
	for _, p := range []float64{a.Start, a.End} {
		if math.IsNaN(p) || p < 0 || (s.Size > 1 && p > limit) {
			return 0, 0, errors.New(errors.ErrCodeInvalidRange,
				"chord anchor [%g, %g] outside sector %q (0..%d)", a.Start, a.End, a.Sector, s.Size-1)
		}
	}
	if start, err = circle.Project(s, a.Start); err != nil {
		return 0, 0, err
	}
	if end, err = circle.Project(s, a.End); err != nil {
		return 0, 0, err
	}
	return start, end, nil
}

// Bulge returns the outward displacement of the control point over an
// anchor spanning width radians at radius h.
func Bulge(h, width float64) float64 {
	return h - h*math.Cos(math.Abs(width)*0.5)
}

// Ribbon returns the closed nine-knot path between the absolute spans
// [s0, s1] at radius h1 and [o0, o1] at radius h2. It carries no style.
func Ribbon(s0, s1, h1, o0, o1, h2 float64) canvas.Path {
	const center = 0.0
	z1 := Bulge(h1, s1-s0)
	z2 := Bulge(h2, o1-o0)

	var p canvas.Path
	p.MoveTo(canvas.P(s0, h1))
	p.QuadTo(canvas.P(s0, center), canvas.P(o1, h2))
	p.QuadTo(canvas.P((o0+o1)*0.5, h2+z2), canvas.P(o0, h2))
	p.QuadTo(canvas.P(o0, center), canvas.P(s1, h1))
	p.QuadTo(canvas.P((s0+s1)*0.5, h1+z1), canvas.P(s0, h1))
	p.Close()
	return p
}
