// Package sink turns recorded primitives into output files: SVG documents,
// PNG images rasterized in-process, and PDF through rsvg-convert.
//
// Every sink draws a [Frame]: a square canvas, the radius that maps to its
// edge and the primitives in draw order (ascending layer, then call order).
package sink

import (
	"github.com/matzehuels/circos/pkg/core/palette"
	"github.com/matzehuels/circos/pkg/core/render/canvas"
	"github.com/matzehuels/circos/pkg/errors"
)

// Frame is everything a sink needs to draw one figure.
type Frame struct {
	// Size is the canvas edge length in pixels at scale 1.
	Size float64
	// Margin is left free on every side, in pixels at scale 1.
	Margin float64
	// RMax is the radius mapped to the edge of the plot area.
	RMax float64
	// Background fills the canvas; empty or "none" leaves it transparent.
	Background string
	Items      []canvas.Item
}

// withDefaults fills zero fields.
func (f Frame) withDefaults() Frame {
	if f.Size <= 0 {
		f.Size = canvas.DefaultSize
	}
	if f.RMax <= 0 {
		f.RMax = canvas.DefaultRMax
	}
	return f
}

// Validate checks the frame's colors and primitives.
func (f Frame) Validate() error {
	if err := palette.Validate(f.Background); err != nil {
		return err
	}
	for i, it := range f.Items {
		if err := it.Validate(); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidInput, err, "primitive %d", i)
		}
	}
	return nil
}

// Projector returns the polar projector for the frame drawn at scale.
func (f Frame) Projector(scale float64) canvas.Projector {
	f = f.withDefaults()
	if scale <= 0 {
		scale = 1
	}
	pr := canvas.NewProjector(f.Size*scale, f.Margin*scale, f.RMax)
	return pr
}
