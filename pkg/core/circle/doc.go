// Package circle implements the circular layout engine: an ordered registry
// of sectors and the solver that assigns each sector an angular span.
//
// # Overview
//
// A circular diagram is a ring of named arcs ("sectors") whose angular widths
// are proportional to their sizes, separated by per-sector gaps
// ("interspace"). Registration order is load-bearing: it fixes the order of
// sectors around the circle.
//
//	r := circle.NewRegistry()
//	r.Register(circle.Sector{ID: "chr1", Size: 248, Interspace: 0.05, Band: circle.Band{500, 550}})
//	r.Register(circle.Sector{ID: "chr2", Size: 242, Interspace: 0.05, Band: circle.Band{500, 550}})
//	if err := r.SolveDefault(); err != nil {
//	    return err
//	}
//	theta, err := r.Project("chr2", 120) // angle of data position 120 on chr2
//
// # Angles
//
// Angles are radians measured clockwise from twelve o'clock. [Registry.Solve]
// places sector i at
//
//	start_i = g_i + S + (E-S) * s_i / total
//	end_i   = g_i + S + (E-S) * (s_i + size_i) / total
//
// where s_i is the cumulative size and g_i the cumulative interspace of the
// sectors registered before i. The default bounds are S = 0 and
// E = 2π - Σ interspace.
//
// # Projection
//
// Data positions inside a sector run from 0 to size-1 inclusive, so
// [Registry.Project] divides by size-1. Every renderer that places data on a
// sector (chords, tracks, ticks) goes through it.
package circle
