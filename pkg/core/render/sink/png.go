package sink

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
	"honnef.co/go/curve"

	"github.com/matzehuels/circos/pkg/core/palette"
	"github.com/matzehuels/circos/pkg/core/render/canvas"
	"github.com/matzehuels/circos/pkg/errors"
	"github.com/matzehuels/circos/pkg/fonts"
)

// RenderPNG rasterizes f at the given scale and encodes it as PNG.
func RenderPNG(f Frame, scale float64) ([]byte, error) {
	img, err := Rasterize(f, scale)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode png")
	}
	return buf.Bytes(), nil
}

// Rasterize draws f into a new image. A scale of 2 doubles the pixel size.
func Rasterize(f Frame, scale float64) (*image.RGBA, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	f = f.withDefaults()
	if scale <= 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		scale = 1
	}
	side := int(math.Ceil(f.Size * scale))
	img := image.NewRGBA(image.Rect(0, 0, side, side))
	if f.Background != "" {
		bg, err := palette.Parse(f.Background)
		if err != nil {
			return nil, err
		}
		draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	}

	face, err := fonts.Regular()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "load font")
	}
	b := &rasterBackend{
		dst:  img,
		pr:   f.Projector(scale),
		face: face,
		rast: vector.NewRasterizer(0, 0),
	}
	if err := canvas.Replay(f.Items, b); err != nil {
		return nil, err
	}
	return img, nil
}

// rasterBackend fills outlines with x/image/vector.
type rasterBackend struct {
	dst  *image.RGBA
	pr   canvas.Projector
	face *sfnt.Font
	buf  sfnt.Buffer
	rast *vector.Rasterizer
}

func (b *rasterBackend) Wedge(w canvas.Wedge) error {
	return b.paint(b.pr.Wedge(w), w.Style)
}

func (b *rasterBackend) Path(p canvas.Path) error {
	if len(p.Knots) == 0 {
		return nil
	}
	return b.paint(b.pr.Path(p), p.Style)
}

func (b *rasterBackend) Marker(m canvas.Marker) error {
	if b.pr.MarkerRadius(m) == 0 {
		return nil
	}
	return b.paint(b.pr.Marker(m), m.Style)
}

func (b *rasterBackend) Text(t canvas.Text) error {
	if t.Text == "" {
		return nil
	}
	col := t.Color
	if col == "" {
		col = "#000000"
	}
	c, err := palette.Parse(col)
	if err != nil {
		return err
	}
	outline, err := b.layout(t)
	if err != nil {
		return err
	}
	b.fill(outline.Transform(b.pr.TextTransform(t)), c)
	return nil
}

// paint fills then strokes path with s.
func (b *rasterBackend) paint(path curve.BezPath, s canvas.Style) error {
	if s.Filled() {
		c, err := palette.Parse(s.Fill)
		if err != nil {
			return err
		}
		b.fill(path, c)
	}
	if s.Stroked() {
		c, err := palette.Parse(s.Edge)
		if err != nil {
			return err
		}
		b.fill(b.pr.Stroke(path, s.LineWidth), c)
	}
	return nil
}

// fill composites path over dst. The rasterizer only covers the path's
// bounding box.
func (b *rasterBackend) fill(path curve.BezPath, c color.NRGBA) {
	if c.A == 0 || len(path) == 0 {
		return
	}
	bb := path.BoundingBox()
	if math.IsNaN(bb.X0) || math.IsNaN(bb.Y0) || math.IsNaN(bb.X1) || math.IsNaN(bb.Y1) {
		return
	}
	area := image.Rect(
		int(math.Floor(bb.X0)), int(math.Floor(bb.Y0)),
		int(math.Ceil(bb.X1))+1, int(math.Ceil(bb.Y1))+1,
	).Intersect(b.dst.Bounds())
	if area.Empty() {
		return
	}

	ox, oy := float64(area.Min.X), float64(area.Min.Y)
	pt := func(p curve.Point) (float32, float32) {
		return float32(p.X - ox), float32(p.Y - oy)
	}

	r := b.rast
	r.Reset(area.Dx(), area.Dy())
	r.DrawOp = draw.Over
	open := false
	for _, el := range path {
		switch el.Kind {
		case curve.MoveToKind:
			if open {
				r.ClosePath()
			}
			r.MoveTo(pt(el.P0))
			open = true
		case curve.LineToKind:
			r.LineTo(pt(el.P0))
		case curve.QuadToKind:
			x1, y1 := pt(el.P0)
			x2, y2 := pt(el.P1)
			r.QuadTo(x1, y1, x2, y2)
		case curve.CubicToKind:
			x1, y1 := pt(el.P0)
			x2, y2 := pt(el.P1)
			x3, y3 := pt(el.P2)
			r.CubeTo(x1, y1, x2, y2, x3, y3)
		case curve.ClosePathKind:
			if open {
				r.ClosePath()
			}
			open = false
		}
	}
	if open {
		r.ClosePath()
	}
	r.Draw(b.dst, area, image.NewUniform(c), image.Point{})
}

// layout returns the glyph outlines of t set at the origin, aligned per
// t's HAlign and VAlign.
func (b *rasterBackend) layout(t canvas.Text) (curve.BezPath, error) {
	px := b.pr.FontSize(t.Size)
	if px <= 0 {
		return nil, nil
	}
	ppem := fixed.Int26_6(math.Round(px * 64))

	var (
		out  curve.BezPath
		x    fixed.Int26_6
		prev sfnt.GlyphIndex
	)
	for i, ch := range t.Text {
		idx, err := b.face.GlyphIndex(&b.buf, ch)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "glyph %q", ch)
		}
		if i > 0 {
			if k, err := b.face.Kern(&b.buf, prev, idx, ppem, font.HintingNone); err == nil {
				x += k
			}
		}
		segs, err := b.face.LoadGlyph(&b.buf, idx, ppem, nil)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "glyph %q", ch)
		}
		dx := fix(x)
		p := func(a fixed.Point26_6) curve.Point { return curve.Pt(dx+fix(a.X), fix(a.Y)) }
		for _, seg := range segs {
			switch seg.Op {
			case sfnt.SegmentOpMoveTo:
				out.MoveTo(p(seg.Args[0]))
			case sfnt.SegmentOpLineTo:
				out.LineTo(p(seg.Args[0]))
			case sfnt.SegmentOpQuadTo:
				out.QuadTo(p(seg.Args[0]), p(seg.Args[1]))
			case sfnt.SegmentOpCubeTo:
				out.CubicTo(p(seg.Args[0]), p(seg.Args[1]), p(seg.Args[2]))
			}
		}
		adv, err := b.face.GlyphAdvance(&b.buf, idx, ppem, font.HintingNone)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "glyph %q", ch)
		}
		x += adv
		prev = idx
	}

	m, err := b.face.Metrics(&b.buf, ppem, font.HintingNone)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "font metrics")
	}
	width := fix(x)
	var dx, dy float64
	switch t.HAlign {
	case canvas.AlignLeft:
	case canvas.AlignRight:
		dx = -width
	default:
		dx = -width / 2
	}
	switch t.VAlign {
	case canvas.AlignTop:
		dy = fix(m.Ascent)
	case canvas.AlignBottom:
		dy = -fix(m.Descent)
	default:
		dy = (fix(m.Ascent) - fix(m.Descent)) / 2
	}
	return out.Transform(curve.Translate(curve.Vec(dx, dy))), nil
}

func fix(v fixed.Int26_6) float64 { return float64(v) / 64 }
