package sink

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strconv"

	"honnef.co/go/curve"

	"github.com/matzehuels/circos/pkg/core/palette"
	"github.com/matzehuels/circos/pkg/core/render/canvas"
	"github.com/matzehuels/circos/pkg/fonts"
)

// pathPrecision is the number of decimals written for path coordinates.
const pathPrecision = 3

type SVGOption func(*svgRenderer)

type svgRenderer struct {
	embedFont bool
	title     string
	ids       bool
}

// WithEmbeddedFont embeds the label font as an @font-face data URL.
func WithEmbeddedFont() SVGOption { return func(r *svgRenderer) { r.embedFont = true } }

// WithTitle sets the document title.
func WithTitle(title string) SVGOption { return func(r *svgRenderer) { r.title = title } }

// WithIDs tags sector wedges with data-sector attributes.
func WithIDs() SVGOption { return func(r *svgRenderer) { r.ids = true } }

// RenderSVG draws f as a standalone SVG document.
func RenderSVG(f Frame, opts ...SVGOption) ([]byte, error) {
	r := svgRenderer{}
	for _, opt := range opts {
		opt(&r)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	f = f.withDefaults()

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %s %s" width="%s" height="%s">`+"\n",
		num(f.Size), num(f.Size), num(f.Size), num(f.Size))
	if r.title != "" {
		buf.WriteString("  <title>")
		xml.EscapeText(&buf, []byte(r.title))
		buf.WriteString("</title>\n")
	}
	if r.embedFont {
		fmt.Fprintf(&buf, "  <defs><style>@font-face { font-family: '%s'; src: url(data:font/ttf;base64,%s) format('truetype'); }</style></defs>\n",
			fonts.FontFamily, fonts.RegularTTFBase64())
	}
	if f.Background != "" && f.Background != palette.None {
		attr, err := paintAttr("fill", f.Background)
		if err != nil {
			return nil, err
		}
		fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%"%s/>`+"\n", attr)
	}

	b := &svgBackend{buf: &buf, pr: f.Projector(1), ids: r.ids}
	if err := canvas.Replay(f.Items, b); err != nil {
		return nil, err
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes(), nil
}

// svgBackend writes one element per primitive.
type svgBackend struct {
	buf *bytes.Buffer
	pr  canvas.Projector
	ids bool
}

func (b *svgBackend) Wedge(w canvas.Wedge) error {
	style, err := styleAttrs(w.Style, b.pr)
	if err != nil {
		return err
	}
	id := ""
	if b.ids && w.ID != "" && w.Layer == canvas.LayerSector {
		id = ` data-sector="` + escape(w.ID) + `"`
	}
	fmt.Fprintf(b.buf, `  <path d="%s"%s%s/>`+"\n", pathData(b.pr.Wedge(w)), style, id)
	return nil
}

func (b *svgBackend) Path(p canvas.Path) error {
	if len(p.Knots) == 0 {
		return nil
	}
	style, err := styleAttrs(p.Style, b.pr)
	if err != nil {
		return err
	}
	fmt.Fprintf(b.buf, `  <path d="%s"%s/>`+"\n", pathData(b.pr.Path(p)), style)
	return nil
}

func (b *svgBackend) Marker(m canvas.Marker) error {
	style, err := styleAttrs(m.Style, b.pr)
	if err != nil {
		return err
	}
	c := b.pr.Point(canvas.P(m.Theta, m.R))
	fmt.Fprintf(b.buf, `  <circle cx="%s" cy="%s" r="%s"%s/>`+"\n",
		num(c.X), num(c.Y), num(b.pr.MarkerRadius(m)), style)
	return nil
}

func (b *svgBackend) Text(t canvas.Text) error {
	col := t.Color
	if col == "" {
		col = "#000000"
	}
	fill, err := paintAttr("fill", col)
	if err != nil {
		return err
	}
	at := b.pr.Point(canvas.P(t.Theta, t.R))
	x, y := num(at.X), num(at.Y)
	fmt.Fprintf(b.buf, `  <text x="%s" y="%s" transform="rotate(%s %s %s)" font-family="%s, %s" font-size="%s" text-anchor="%s" dominant-baseline="%s"%s>`,
		x, y, num(-t.Rotation), x, y, fonts.FontFamily, fonts.FallbackFontFamily,
		num(b.pr.FontSize(t.Size)), textAnchor(t.HAlign), baseline(t.VAlign), fill)
	xml.EscapeText(b.buf, []byte(t.Text))
	b.buf.WriteString("</text>\n")
	return nil
}

// styleAttrs renders fill and stroke attributes.
func styleAttrs(s canvas.Style, pr canvas.Projector) (string, error) {
	fill := palette.None
	if s.Filled() {
		fill = s.Fill
	}
	out, err := paintAttr("fill", fill)
	if err != nil {
		return "", err
	}
	if !s.Stroked() {
		return out, nil
	}
	stroke, err := paintAttr("stroke", s.Edge)
	if err != nil {
		return "", err
	}
	return out + stroke + ` stroke-width="` + num(pr.StrokeWidth(s.LineWidth)) + `" stroke-linejoin="miter"`, nil
}

// paintAttr renders a paint attribute, splitting alpha into the matching
// opacity attribute.
func paintAttr(name, spec string) (string, error) {
	c, err := palette.Parse(spec)
	if err != nil {
		return "", err
	}
	hex, opacity := palette.Paint(c)
	if hex == palette.None {
		return fmt.Sprintf(` %s="none"`, name), nil
	}
	if opacity < 1 {
		return fmt.Sprintf(` %s="%s" %s-opacity="%s"`, name, hex, name, strconv.FormatFloat(opacity, 'f', 3, 64)), nil
	}
	return fmt.Sprintf(` %s="%s"`, name, hex), nil
}

func pathData(p curve.BezPath) string {
	return p.SVG(curve.SVGOptions{MaxPrecision: pathPrecision})
}

func textAnchor(align string) string {
	switch align {
	case canvas.AlignLeft:
		return "start"
	case canvas.AlignRight:
		return "end"
	}
	return "middle"
}

func baseline(align string) string {
	switch align {
	case canvas.AlignTop:
		return "hanging"
	case canvas.AlignBottom:
		return "alphabetic"
	}
	return "central"
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func escape(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
