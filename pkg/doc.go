// Package pkg provides the core libraries for circos circular figures.
//
// # Overview
//
// A circos figure places named sectors around a circle, each taking an
// angular width proportional to its size, and draws data tracks on the
// sectors and ribbons (chords) between sector ranges. The pkg directory is
// organized into these areas:
//
//  1. [core] - Geometry and drawing (sector registry, arcs, tracks, chords)
//  2. [figure] - Figure descriptions (TOML/JSON) and the build step
//  3. [scene] - The solved, serializable scene
//  4. [pipeline] - Orchestration (figure → scene → artifacts) with caching
//  5. [cache] - File, Redis, MongoDB and SQLite cache backends
//
// # Architecture
//
//	figure.toml / figure.json
//	         ↓
//	    [figure] package (parse, register sectors, solve, draw)
//	         ↓
//	    [scene] package (sector table + recorded primitives)
//	         ↓
//	    [core/render/sink] package (SVG, PNG, PDF)
//
// # Quick Start
//
//	r := circle.NewRegistry()
//	r.Register(circle.Sector{ID: "chr1", Size: 2400})
//	r.Register(circle.Sector{ID: "chr2", Size: 1800})
//	if err := r.SolveDefault(); err != nil {
//	    return err
//	}
//
//	rec := canvas.NewRecorder()
//	arc.New(rec).EmitAll(r)
//	chord.NewGenerator(r).Emit(rec,
//	    chord.Anchor{Sector: "chr1", Start: 0, End: 100, Height: 500},
//	    chord.Anchor{Sector: "chr2", Start: 0, End: 100, Height: 500},
//	    canvas.Style{})
//
// # Main Packages
//
// [core/circle] - The sector registry and layout solver. Angles are radians
// measured clockwise from north.
//
// [core/render/arc] - Sector wedges, spines and labels.
//
// [core/render/track] - Line, fill, scatter, bar, heatmap, feature and tick
// tracks on a sector's radial band.
//
// [core/render/chord] - Ribbons joining two sector ranges, and link counts.
//
// [core/render/canvas] - The drawing backend interface and the recorder that
// captures primitives for later rendering.
//
// [core/render/sink] - SVG, native PNG and PDF output.
//
// [core/render/nodelink] - Sector connectivity as a Graphviz graph.
//
// [core/density] - Windowed feature counts for density tracks.
//
// [core/palette] - Named colors, the default color cycle and heatmap
// colormaps.
//
// [core]: https://pkg.go.dev/github.com/matzehuels/circos/pkg/core
// [core/circle]: https://pkg.go.dev/github.com/matzehuels/circos/pkg/core/circle
// [core/render/arc]: https://pkg.go.dev/github.com/matzehuels/circos/pkg/core/render/arc
// [core/render/track]: https://pkg.go.dev/github.com/matzehuels/circos/pkg/core/render/track
// [core/render/chord]: https://pkg.go.dev/github.com/matzehuels/circos/pkg/core/render/chord
// [core/render/canvas]: https://pkg.go.dev/github.com/matzehuels/circos/pkg/core/render/canvas
// [core/render/sink]: https://pkg.go.dev/github.com/matzehuels/circos/pkg/core/render/sink
// [core/render/nodelink]: https://pkg.go.dev/github.com/matzehuels/circos/pkg/core/render/nodelink
// [core/density]: https://pkg.go.dev/github.com/matzehuels/circos/pkg/core/density
// [core/palette]: https://pkg.go.dev/github.com/matzehuels/circos/pkg/core/palette
// [figure]: https://pkg.go.dev/github.com/matzehuels/circos/pkg/figure
// [scene]: https://pkg.go.dev/github.com/matzehuels/circos/pkg/scene
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/circos/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/circos/pkg/cache
package pkg
