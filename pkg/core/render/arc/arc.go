// Package arc draws solved sectors: one wedge per sector, an optional
// right-side-up label at the sector midpoint and optional background spines.
//
// The adapter performs no layout. It reads the coordinates written by
// [circle.Registry.Solve] and forwards draw requests to any [canvas.Backend].
package arc

import (
	"math"

	"github.com/matzehuels/circos/pkg/core/circle"
	"github.com/matzehuels/circos/pkg/core/render/canvas"
	"github.com/matzehuels/circos/pkg/errors"
)

// Spine defaults.
const (
	SpineFill      = "#30303000"
	SpineEdge      = "#303030"
	SpineLineWidth = 0.75
)

// Adapter emits sector primitives into a backend.
type Adapter struct {
	backend canvas.Backend
}

// New returns an adapter drawing into b.
func New(b canvas.Backend) *Adapter {
	return &Adapter{backend: b}
}

// Emit draws s as a single wedge, followed by its label when visible.
func (a *Adapter) Emit(s circle.Sector) error {
	if !s.Coord.Solved {
		return errors.New(errors.ErrCodeLayoutNotSolved, "sector %q has no solved coordinates", s.ID)
	}
	if err := a.backend.Wedge(Wedge(s)); err != nil {
		return err
	}
	if !s.Label.Visible {
		return nil
	}
	return a.backend.Text(Label(s))
}

// EmitAll draws every sector of r in registration order.
func (a *Adapter) EmitAll(r *circle.Registry) error {
	if !r.Solved() {
		return errors.New(errors.ErrCodeLayoutNotSolved, "layout not solved")
	}
	for _, s := range r.Sectors() {
		if err := a.Emit(s); err != nil {
			return err
		}
	}
	return nil
}

// EmitSpine draws a background band behind everything else across the full
// angular span of s. Empty style fields take the spine defaults.
func (a *Adapter) EmitSpine(s circle.Sector, band circle.Band, style canvas.Style) error {
	if !s.Coord.Solved {
		return errors.New(errors.ErrCodeLayoutNotSolved, "sector %q has no solved coordinates", s.ID)
	}
	if err := band.Validate(); err != nil {
		return err
	}
	if style.Fill == "" {
		style.Fill = SpineFill
	}
	if style.Edge == "" {
		style.Edge = SpineEdge
	}
	if style.LineWidth == 0 {
		style.LineWidth = SpineLineWidth
	}
	return a.backend.Wedge(canvas.Wedge{
		Theta:  s.Coord.Start,
		Width:  s.Coord.Width(),
		Bottom: band.Bottom(),
		Height: band.Height(),
		Style:  style,
		Layer:  canvas.LayerSpine,
		ID:     s.ID,
	})
}

// Wedge returns the polar bar for a solved sector.
func Wedge(s circle.Sector) canvas.Wedge {
	return canvas.Wedge{
		Theta:  s.Coord.Start,
		Width:  s.Coord.Width(),
		Bottom: s.Band.Bottom(),
		Height: s.Band.Height(),
		Style: canvas.Style{
			Fill:      s.Style.Fill,
			Edge:      s.Style.Edge,
			LineWidth: s.Style.LineWidth,
		},
		Layer: canvas.LayerSector,
		ID:    s.ID,
	}
}

// Label returns the centered label for a solved sector, placed at the band's
// radial midpoint plus the label offset.
func Label(s circle.Sector) canvas.Text {
	mid := s.Coord.Mid()
	return canvas.Text{
		Theta:    mid,
		R:        s.Band.Mid() + s.Label.Offset,
		Text:     s.Label.Text,
		Rotation: LabelRotation(mid),
		Size:     s.Label.Size,
		HAlign:   canvas.AlignCenter,
		VAlign:   canvas.AlignCenter,
		Layer:    canvas.LayerLabel,
	}
}

// LabelRotation returns the text rotation in degrees for a label centered at
// angle theta (radians) so that it never reads upside down: -m normally,
// 180-m on the lower half (90 < m < 270), where m is theta in degrees.
func LabelRotation(theta float64) float64 {
	m := math.Mod(theta*180/math.Pi, 360)
	if m < 0 {
		m += 360
	}
	if m > 90 && m < 270 {
		return 180 - m
	}
	return -m
}
