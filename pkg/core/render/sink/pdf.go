package sink

import (
	"context"

	"github.com/matzehuels/circos/pkg/core/render"
)

// RenderPDF draws f as SVG with the label font embedded and converts it with
// rsvg-convert.
func RenderPDF(ctx context.Context, f Frame, opts ...SVGOption) ([]byte, error) {
	svg, err := RenderSVG(f, append(opts, WithEmbeddedFont())...)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(ctx, svg)
}
