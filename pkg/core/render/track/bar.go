package track

import (
	"math"

	"github.com/matzehuels/circos/pkg/core/circle"
	"github.com/matzehuels/circos/pkg/core/palette"
	"github.com/matzehuels/circos/pkg/core/render/canvas"
	"github.com/matzehuels/circos/pkg/errors"
)

// widths returns the angular width of every bar. Without explicit widths
// every bar is as wide as the spacing of the first two samples.
func widths(s circle.Sector, pts []point, data []float64) ([]float64, error) {
	out := make([]float64, len(pts))
	switch {
	case len(data) == 0:
		w := s.Coord.Width()
		if len(pts) > 1 {
			w = pts[1].theta - pts[0].theta
		}
		for i := range out {
			out[i] = w
		}
	case len(data) == 1 || len(data) == len(pts):
		for i := range out {
			d := data[0]
			if len(data) > 1 {
				d = data[i]
			}
			w, err := circle.Scale(s, d)
			if err != nil {
				return nil, err
			}
			out[i] = w
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"track on sector %q: %d widths for %d values", s.ID, len(data), len(pts))
	}
	return out, nil
}

func (p *Plotter) bar(s circle.Sector, band circle.Band, spec Spec) error {
	pts, err := samples(s, spec.Values, spec.Positions)
	if err != nil {
		return err
	}
	ws, err := widths(s, pts, spec.Widths)
	if err != nil {
		return err
	}

	var lo, hi float64
	if spec.RLim != nil {
		if lo, hi, err = valueRange(spec.Values, spec.RLim); err != nil {
			return err
		}
	} else if lo, hi = minMax(spec.Values); lo != hi {
		lo, hi = lo-0.05*math.Abs(lo), hi+0.05*math.Abs(hi)
	}
	base := lo
	if spec.Base != nil {
		base = *spec.Base
	}
	baseR := band.Bottom()
	if lo != hi {
		baseR = radius(base, lo, hi, band)
	}

	style := canvas.Style{
		Fill:      p.color(spec.Color),
		Edge:      orDefault(spec.Edge, DefaultEdge),
		LineWidth: lineWidth(spec.LineWidth, 0),
	}
	for _, run := range split(pts, lo, hi) {
		for i := run[0]; i < run[1]; i++ {
			top := band.Top()
			if lo != hi {
				top = radius(pts[i].value, lo, hi, band)
			}
			err := p.backend.Wedge(canvas.Wedge{
				Theta:  pts[i].theta,
				Width:  ws[i],
				Bottom: baseR,
				Height: top - baseR,
				Style:  style,
				Layer:  canvas.LayerTrack,
				ID:     s.ID,
			})
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func (p *Plotter) heatmap(s circle.Sector, band circle.Band, spec Spec) error {
	pts, err := samples(s, spec.Values, spec.Positions)
	if err != nil {
		return err
	}
	ws, err := widths(s, pts, spec.Widths)
	if err != nil {
		return err
	}

	var cmap palette.Colormap
	if spec.Colormap != "" {
		if cmap, err = palette.LookupColormap(spec.Colormap); err != nil {
			return err
		}
	} else {
		cmap = palette.Colormaps[p.cmaps%len(palette.Colormaps)]
		p.cmaps++
	}

	vmin, vmax := minMax(spec.Values)
	if spec.VMin != nil {
		vmin = *spec.VMin
	}
	if spec.VMax != nil {
		vmax = *spec.VMax
	}

	for i, pt := range pts {
		t := 0.0
		if vmax != vmin {
			t = (pt.value - vmin) / (vmax - vmin)
		}
		err := p.backend.Wedge(canvas.Wedge{
			Theta:  pt.theta,
			Width:  ws[i],
			Bottom: band.Bottom(),
			Height: band.Height(),
			Style: canvas.Style{
				Fill:      cmap.At(t),
				Edge:      orDefault(spec.Edge, DefaultEdge),
				LineWidth: lineWidth(spec.LineWidth, 0),
			},
			Layer: canvas.LayerTrack,
			ID:    s.ID,
		})
		if err != nil {
			return err
		}
	}
	return nil
}
