package track

import (
	"github.com/matzehuels/circos/pkg/core/circle"
	"github.com/matzehuels/circos/pkg/core/render/canvas"
)

func (p *Plotter) line(s circle.Sector, band circle.Band, spec Spec) error {
	pts, err := samples(s, spec.Values, spec.Positions)
	if err != nil {
		return err
	}
	lo, hi, err := valueRange(spec.Values, spec.RLim)
	if err != nil {
		return err
	}
	style := canvas.Style{
		Fill:      "none",
		Edge:      p.color(spec.Color),
		LineWidth: lineWidth(spec.LineWidth, DefaultLineWidth),
	}
	for _, run := range split(pts, lo, hi) {
		path := canvas.Path{Style: style, Layer: canvas.LayerTrack, ID: s.ID}
		for i, pt := range pts[run[0]:run[1]] {
			at := canvas.P(pt.theta, radius(pt.value, lo, hi, band))
			if i == 0 {
				path.MoveTo(at)
			} else {
				path.LineTo(at)
			}
		}
		if err := p.backend.Path(path); err != nil {
			return err
		}
	}
	return nil
}

func (p *Plotter) fill(s circle.Sector, band circle.Band, spec Spec) error {
	pts, err := samples(s, spec.Values, spec.Positions)
	if err != nil {
		return err
	}
	lo, hi, err := valueRange(spec.Values, spec.RLim)
	if err != nil {
		return err
	}
	base := lo
	if spec.Base != nil {
		base = *spec.Base
	}
	baseR := radius(base, lo, hi, band)
	style := canvas.Style{
		Fill:      p.color(spec.Color),
		Edge:      orDefault(spec.Edge, DefaultEdge),
		LineWidth: lineWidth(spec.LineWidth, 0),
	}
	for _, run := range split(pts, lo, hi) {
		seg := pts[run[0]:run[1]]
		path := canvas.Path{Style: style, Layer: canvas.LayerTrack, ID: s.ID}
		for i, pt := range seg {
			at := canvas.P(pt.theta, radius(pt.value, lo, hi, band))
			if i == 0 {
				path.MoveTo(at)
			} else {
				path.LineTo(at)
			}
		}
		path.LineTo(canvas.P(seg[len(seg)-1].theta, baseR))
		path.LineTo(canvas.P(seg[0].theta, baseR))
		path.Close()
		if err := p.backend.Path(path); err != nil {
			return err
		}
	}
	return nil
}

func (p *Plotter) scatter(s circle.Sector, band circle.Band, spec Spec) error {
	pts, err := samples(s, spec.Values, spec.Positions)
	if err != nil {
		return err
	}
	lo, hi, err := valueRange(spec.Values, spec.RLim)
	if err != nil {
		return err
	}
	size := spec.MarkerSize
	if size <= 0 {
		size = DefaultMarkerSize
	}
	style := canvas.Style{
		Fill:      p.color(spec.Color),
		Edge:      orDefault(spec.Edge, DefaultEdge),
		LineWidth: lineWidth(spec.LineWidth, 0),
	}
	for _, run := range split(pts, lo, hi) {
		for _, pt := range pts[run[0]:run[1]] {
			err := p.backend.Marker(canvas.Marker{
				Theta: pt.theta,
				R:     radius(pt.value, lo, hi, band),
				Size:  size,
				Style: style,
				Layer: canvas.LayerTrack,
			})
			if err != nil {
				return err
			}
		}
	}
	return nil
}
