package track

import (
	"math"
	"strconv"

	"github.com/matzehuels/circos/pkg/core/circle"
	"github.com/matzehuels/circos/pkg/core/render/arc"
	"github.com/matzehuels/circos/pkg/core/render/canvas"
	"github.com/matzehuels/circos/pkg/errors"
)

func (p *Plotter) feature(s circle.Sector, band circle.Band, spec Spec) error {
	style := canvas.Style{
		Fill:      p.color(spec.Color),
		Edge:      orDefault(spec.Edge, DefaultEdge),
		LineWidth: lineWidth(spec.LineWidth, 0),
	}
	for _, f := range spec.Features {
		if spec.FeatureType != "" && f.Type != spec.FeatureType {
			continue
		}
		// Reverse-strand features list their ends swapped.
		lo, hi := math.Min(f.Start, f.End), math.Max(f.Start, f.End)
		start, err := circle.Project(s, lo)
		if err != nil {
			return err
		}
		end, err := circle.Project(s, hi)
		if err != nil {
			return err
		}
		err = p.backend.Wedge(canvas.Wedge{
			Theta:  start,
			Width:  end - start,
			Bottom: band.Bottom(),
			Height: band.Height(),
			Style:  style,
			Layer:  canvas.LayerTrack,
			ID:     s.ID,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// tick draws radial ticks every Interval data units from position 0 up to
// size-1, growing outward from the band's bottom or inward below it.
func (p *Plotter) tick(s circle.Sector, band circle.Band, spec Spec) error {
	interval := spec.Interval
	if interval == 0 {
		interval = DefaultTickInterval
	}
	if interval <= 0 || math.IsNaN(interval) {
		return errors.New(errors.ErrCodeInvalidRange, "tick interval must be positive, got %g", interval)
	}
	length := spec.Length
	if length == 0 {
		length = DefaultTickLength
	}
	dir := orDefault(spec.Direction, DirectionOuter)
	var sign float64
	switch dir {
	case DirectionOuter:
		sign = 1
	case DirectionInner:
		sign = -1
	default:
		return errors.New(errors.ErrCodeInvalidInput, "tick direction must be %q or %q, got %q", DirectionOuter, DirectionInner, dir)
	}

	style := canvas.Style{
		Fill:      "none",
		Edge:      orDefault(spec.Color, DefaultEdge),
		LineWidth: lineWidth(spec.LineWidth, DefaultLineWidth),
	}
	from := band.Bottom()
	to := from + sign*length
	labelSize := spec.LabelSize
	if labelSize <= 0 {
		labelSize = circle.DefaultLabelSize * 0.6
	}

	last := float64(s.Size - 1)
	n := int(math.Floor(last / interval))
	if n > MaxTicks {
		return errors.New(errors.ErrCodeInvalidRange,
			"tick interval %g gives %d ticks on sector %q (max %d)", interval, n+1, s.ID, MaxTicks)
	}
	for k := 0; k <= n; k++ {
		i := float64(k) * interval
		theta, err := circle.Project(s, i)
		if err != nil {
			return err
		}
		var path canvas.Path
		path.MoveTo(canvas.P(theta, from))
		path.LineTo(canvas.P(theta, to))
		path.Style = style
		path.Layer = canvas.LayerTrack
		path.ID = s.ID
		if err := p.backend.Path(path); err != nil {
			return err
		}
		if !spec.Labels {
			continue
		}
		err = p.backend.Text(canvas.Text{
			Theta:    theta,
			R:        to + sign*length,
			Text:     strconv.FormatFloat(i, 'f', -1, 64),
			Rotation: arc.LabelRotation(theta),
			Size:     labelSize,
			HAlign:   canvas.AlignCenter,
			VAlign:   canvas.AlignCenter,
			Color:    style.Edge,
			Layer:    canvas.LayerLabel,
		})
		if err != nil {
			return err
		}
	}
	return nil
}
