package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/circos/pkg/core/palette"
	"github.com/matzehuels/circos/pkg/core/render"
	"github.com/matzehuels/circos/pkg/errors"
)

// Layout engines. circo places nodes on a circle, matching the figure.
const (
	EngineCirco = "circo"
	EngineNeato = "neato"
	EngineFDP   = "fdp"
)

// maxPenWidth is the edge width of the most connected pair.
const maxPenWidth = 8.0

// Options configures connectivity diagram rendering.
type Options struct {
	// Engine is the Graphviz layout engine; empty means circo.
	Engine string
	// Detailed adds sector size and angular width to node labels.
	Detailed bool
}

// ToDOT converts a connectivity graph to Graphviz DOT. Nodes are filled
// with their sector color, edges are labeled with chord counts and their
// pen width grows with the count.
func ToDOT(g Graph, opts Options) string {
	engine := opts.Engine
	if engine == "" {
		engine = EngineCirco
	}

	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	fmt.Fprintf(&buf, "  layout=%s;\n", engine)
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=14, fontname=\"Helvetica\"];\n")
	buf.WriteString("  edge [color=\"#30303080\"];\n")
	buf.WriteString("\n")

	for _, n := range g.Nodes {
		fmt.Fprintf(&buf, "  %q [%s];\n", n.ID, strings.Join(fmtAttrs(n, fmtLabel(n, opts.Detailed)), ", "))
	}

	buf.WriteString("\n")
	top := g.MaxCount()
	for _, e := range g.Edges {
		fmt.Fprintf(&buf, "  %q -- %q [label=\"%d\", penwidth=%s];\n",
			e.From, e.To, e.Count, strconv.FormatFloat(penWidth(e.Count, top), 'f', 2, 64))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(n Node, detailed bool) string {
	if !detailed {
		return n.Label
	}
	return fmt.Sprintf("%s\nsize: %d\n%.1f°", n.Label, n.Size, n.Degrees)
}

func fmtAttrs(n Node, label string) []string {
	attrs := []string{fmt.Sprintf("label=%q", label)}
	if n.Fill == "" {
		return attrs
	}
	c, err := palette.Parse(n.Fill)
	if err != nil || c.A == 0 {
		return attrs
	}
	hex, _ := palette.Paint(c)
	return append(attrs, fmt.Sprintf("fillcolor=%q", hex))
}

func penWidth(count, top int) float64 {
	if top <= 0 {
		return 1
	}
	return 1 + (maxPenWidth-1)*float64(count)/float64(top)
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render DOT")
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(ctx context.Context, dot string) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(ctx, svg)
}
