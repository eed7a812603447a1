package figure

import (
	"fmt"
	"math"

	"github.com/matzehuels/circos/pkg/core/circle"
	"github.com/matzehuels/circos/pkg/core/density"
	"github.com/matzehuels/circos/pkg/core/palette"
	"github.com/matzehuels/circos/pkg/core/render/arc"
	"github.com/matzehuels/circos/pkg/core/render/canvas"
	"github.com/matzehuels/circos/pkg/core/render/chord"
	"github.com/matzehuels/circos/pkg/core/render/track"
	"github.com/matzehuels/circos/pkg/errors"
)

// Bounds overrides the figure's angular budget, in degrees.
type Bounds struct {
	StartDeg *float64
	EndDeg   *float64
}

// Result is a built figure.
type Result struct {
	Registry *circle.Registry
	// Items are the primitives in call order.
	Items []canvas.Item
	Links []chord.Link
	// Chords counts drawn ribbons; Skipped counts zero-width ones.
	Chords  int
	Skipped int
}

// Build registers the figure's sectors, solves the layout and draws sectors,
// spines, tracks and chords, in that order. Tracks and chords share one
// default color cycle, so a track without a color shifts the colors of the
// chords after it.
func Build(f *Figure, b Bounds) (*Result, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	r := circle.NewRegistry()
	for i, s := range f.Sectors {
		if _, err := r.Register(s.sector()); err != nil {
			return nil, stageErr(err, "sector %d", i)
		}
	}

	start, end := r.DefaultBounds()
	if f.Layout.Start != nil {
		start = radians(*f.Layout.Start)
	}
	if f.Layout.End != nil {
		end = radians(*f.Layout.End)
	}
	if b.StartDeg != nil {
		start = radians(*b.StartDeg)
	}
	if b.EndDeg != nil {
		end = radians(*b.EndDeg)
	}
	if err := r.Solve(start, end); err != nil {
		return nil, err
	}

	rec := canvas.NewRecorder()
	arcs := arc.New(rec)
	if err := arcs.EmitAll(r); err != nil {
		return nil, err
	}

	for i, sp := range f.Spines {
		if err := emitSpine(r, arcs, sp); err != nil {
			return nil, stageErr(err, "spine %d", i)
		}
	}

	colors := &palette.Cycle{}
	plotter := track.New(r, rec, colors)
	for i, t := range f.Tracks {
		spec := t.Spec
		if t.Density != nil {
			s, err := r.SolvedSector(spec.Sector)
			if err != nil {
				return nil, stageErr(err, "track %d", i)
			}
			window := t.Density.Window
			if window == 0 {
				window = density.DefaultWindow
			}
			res, err := density.Compute(s.Size, density.Input{
				Points:    t.Density.Points,
				Intervals: t.Density.Intervals,
			}, window)
			if err != nil {
				return nil, stageErr(err, "track %d", i)
			}
			spec.Values = res.Values()
			spec.Positions = res.Positions()
		}
		if err := plotter.Plot(spec); err != nil {
			return nil, stageErr(err, "track %d (%s)", i, spec.Kind)
		}
	}

	res := &Result{Registry: r, Links: chord.Tally(f.Pairs())}
	gen := chord.NewGeneratorWithCycle(r, colors)
	for i, c := range f.Chords {
		style := canvas.Style{Fill: c.Fill, Edge: c.Edge, LineWidth: c.LineWidth}
		drawn, err := gen.Emit(rec, c.A, c.B, style)
		if err != nil {
			return nil, stageErr(err, "chord %d", i)
		}
		if drawn {
			res.Chords++
		} else {
			res.Skipped++
		}
	}

	res.Items = rec.Items()
	return res, nil
}

func emitSpine(r *circle.Registry, arcs *arc.Adapter, sp Spine) error {
	style := canvas.Style{Fill: sp.Fill, Edge: sp.Edge, LineWidth: sp.LineWidth}
	if sp.Sector != "" {
		s, err := r.SolvedSector(sp.Sector)
		if err != nil {
			return err
		}
		return arcs.EmitSpine(s, circle.Band(sp.Band), style)
	}
	for _, s := range r.Sectors() {
		if err := arcs.EmitSpine(s, circle.Band(sp.Band), style); err != nil {
			return err
		}
	}
	return nil
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }

// stageErr prefixes err with the figure element it came from, keeping its
// code.
func stageErr(err error, format string, args ...any) error {
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	return errors.Wrap(code, err, "%s", fmt.Sprintf(format, args...))
}
