package canvas

import (
	"math"

	"honnef.co/go/curve"
)

// Figure defaults. A figure is an 8 inch square at 72 points per inch and
// radial units run from 0 at the center to RMax at the edge of the plot area.
const (
	DefaultSize   = 576.0
	DefaultRMax   = 1000.0
	DefaultMargin = 0.0
	figurePoints  = 576.0
	// maxArcStep bounds the angular step used to trace polar straight
	// segments.
	maxArcStep = math.Pi / 180
	// DefaultTolerance is the flattening accuracy in pixels.
	DefaultTolerance = 0.1
)

// Projector maps polar figure coordinates onto a y-down pixel canvas with
// twelve o'clock at angle 0 and angles growing clockwise.
type Projector struct {
	Center curve.Point
	// Scale converts radial units to pixels.
	Scale float64
	// PointScale converts points (font sizes, line widths) to pixels.
	PointScale float64
	Tolerance  float64
}

// NewProjector returns a projector for a square canvas of the given pixel
// size. The plot area leaves margin pixels on every side and maps radius
// rmax to its edge.
func NewProjector(size, margin, rmax float64) Projector {
	if size <= 0 {
		size = DefaultSize
	}
	if rmax <= 0 {
		rmax = DefaultRMax
	}
	radius := size/2 - margin
	if radius <= 0 {
		radius = size / 2
	}
	return Projector{
		Center:     curve.Pt(size/2, size/2),
		Scale:      radius / rmax,
		PointScale: size / figurePoints,
		Tolerance:  DefaultTolerance,
	}
}

// Point maps a polar point to the canvas.
func (pr Projector) Point(p Polar) curve.Point {
	sin, cos := math.Sincos(p.Theta)
	r := p.R * pr.Scale
	return curve.Pt(pr.Center.X+r*sin, pr.Center.Y-r*cos)
}

// screenAngle converts a figure angle to curve's convention, where 0 points
// along +x and positive angles turn toward +y.
func screenAngle(theta float64) float64 { return theta - math.Pi/2 }

// Wedge returns the outline of w.
func (pr Projector) Wedge(w Wedge) curve.BezPath {
	inner := math.Min(w.Bottom, w.Bottom+w.Height) * pr.Scale
	outer := math.Max(w.Bottom, w.Bottom+w.Height) * pr.Scale
	seg := curve.CircleSegment{
		Center:      pr.Center,
		OuterRadius: outer,
		InnerRadius: math.Max(inner, 0),
		StartAngle:  screenAngle(w.Theta),
		SweepAngle:  w.Width,
	}
	path := seg.Path(pr.tolerance())
	path.ClosePath()
	return path
}

// Path returns the Cartesian outline of p.
func (pr Projector) Path(p Path) curve.BezPath {
	var (
		out        curve.BezPath
		cur, first Polar
	)
	for _, k := range p.Knots {
		switch k.Op {
		case OpMove:
			out.MoveTo(pr.Point(k.To))
			cur, first = k.To, k.To
		case OpLine:
			pr.traceLine(&out, cur, k.To)
			cur = k.To
		case OpQuad:
			ctrl := k.To
			if k.Ctrl != nil {
				ctrl = *k.Ctrl
			}
			out.QuadTo(pr.Point(ctrl), pr.Point(k.To))
			cur = k.To
		case OpClose:
			out.ClosePath()
			cur = first
		}
	}
	return out
}

// traceLine appends the polar interpolation from a to b.
func (pr Projector) traceLine(out *curve.BezPath, a, b Polar) {
	d := b.Theta - a.Theta
	n := int(math.Ceil(math.Abs(d) / maxArcStep))
	if n <= 1 {
		out.LineTo(pr.Point(b))
		return
	}
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		out.LineTo(pr.Point(Polar{
			Theta: a.Theta + d*t,
			R:     a.R + (b.R-a.R)*t,
		}))
	}
}

// Marker returns the outline of m's dot.
func (pr Projector) Marker(m Marker) curve.BezPath {
	return curve.Circle{
		Center: pr.Point(Polar{Theta: m.Theta, R: m.R}),
		Radius: pr.MarkerRadius(m),
	}.Path(pr.tolerance())
}

// MarkerRadius returns the pixel radius of a marker whose Size is an area in
// points squared.
func (pr Projector) MarkerRadius(m Marker) float64 {
	if m.Size <= 0 {
		return 0
	}
	return math.Sqrt(m.Size/math.Pi) * pr.PointScale
}

// StrokeWidth converts a line width in points to pixels.
func (pr Projector) StrokeWidth(pt float64) float64 { return pt * pr.PointScale }

func (pr Projector) tolerance() float64 {
	if pr.Tolerance <= 0 {
		return DefaultTolerance
	}
	return pr.Tolerance
}

// FontSize converts a font size in points to pixels.
func (pr Projector) FontSize(pt float64) float64 { return pt * pr.PointScale }

// Stroke expands the outline of path for a line of width pt points.
func (pr Projector) Stroke(path curve.BezPath, pt float64) curve.BezPath {
	style := curve.DefaultStroke.WithWidth(pr.StrokeWidth(pt)).WithJoin(curve.MiterJoin).WithCaps(curve.ButtCap)
	var out curve.BezPath
	for el := range curve.StrokePath(path.Elements(), style, curve.StrokeOpts{}, pr.tolerance()) {
		out.Push(el)
	}
	return out
}

// TextTransform returns the transform placing glyph outlines laid out at the
// origin (baseline along +x, y down) at t's anchor with t's rotation.
func (pr Projector) TextTransform(t Text) curve.Affine {
	anchor := pr.Point(Polar{Theta: t.Theta, R: t.R})
	return curve.Rotate(-t.Rotation * math.Pi / 180).ThenTranslate(curve.Vec2(anchor))
}
