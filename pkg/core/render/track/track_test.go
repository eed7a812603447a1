package track

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/circos/pkg/core/circle"
	"github.com/matzehuels/circos/pkg/core/palette"
	"github.com/matzehuels/circos/pkg/core/render/canvas"
	"github.com/matzehuels/circos/pkg/errors"
)

// setup returns a plotter over one sector "A" of size 101 spanning the
// whole circle, so position p sits at p*2π/100.
func setup(t *testing.T) (*Plotter, *canvas.Recorder, *palette.Cycle) {
	t.Helper()
	r := circle.NewRegistry()
	_, err := r.Register(circle.Sector{ID: "A", Size: 101, Band: circle.Band{500, 550}})
	require.NoError(t, err)
	require.NoError(t, r.Solve(0, 2*math.Pi))
	rec := canvas.NewRecorder()
	colors := &palette.Cycle{}
	return New(r, rec, colors), rec, colors
}

func ptr[T any](v T) *T { return &v }

func TestLineSplitsOutOfRange(t *testing.T) {
	p, rec, colors := setup(t)
	err := p.Plot(Spec{
		Kind:   KindLine,
		Sector: "A",
		Values: []float64{1, 2, 10, 3, 4, 5},
		RLim:   &[2]float64{0, 5},
	})
	require.NoError(t, err)

	items := rec.Items()
	require.Len(t, items, 2)
	first, second := items[0].Path, items[1].Path
	assert.Len(t, first.Knots, 2)
	assert.Len(t, second.Knots, 3)
	assert.Equal(t, canvas.OpMove, second.Knots[0].Op)

	// Value 1 of 0..5 over band 550..600.
	assert.InDelta(t, 560, first.Knots[0].To.R, 1e-9)
	// Value 5 reaches the top.
	assert.InDelta(t, 600, second.Knots[2].To.R, 1e-9)
	assert.Equal(t, palette.Chords[0], first.Style.Edge)
	assert.Equal(t, "none", first.Style.Fill)
	assert.Equal(t, 1, colors.Count())
}

func TestLineDefaultRange(t *testing.T) {
	p, rec, _ := setup(t)
	require.NoError(t, p.Plot(Spec{Kind: KindLine, Sector: "A", Values: []float64{10, 20}, Color: "#000000"}))

	path := rec.Items()[0].Path
	lo, hi := 10-0.5, 20+1.0
	assert.InDelta(t, 550+50*(10-lo)/(hi-lo), path.Knots[0].To.R, 1e-9)
	assert.InDelta(t, 550+50*(20-lo)/(hi-lo), path.Knots[1].To.R, 1e-9)
	// Two values spread over the whole sector.
	assert.InDelta(t, 0, path.Knots[0].To.Theta, 1e-12)
	assert.InDelta(t, 2*math.Pi, path.Knots[1].To.Theta, 1e-12)
}

func TestLineConstantSeries(t *testing.T) {
	p, rec, _ := setup(t)
	require.NoError(t, p.Plot(Spec{Kind: KindLine, Sector: "A", Values: []float64{0, 0, 0}}))
	for _, k := range rec.Items()[0].Path.Knots {
		assert.Equal(t, 575.0, k.To.R)
	}
}

func TestFillClosesOnBase(t *testing.T) {
	p, rec, _ := setup(t)
	err := p.Plot(Spec{
		Kind:      KindFill,
		Sector:    "A",
		Values:    []float64{2, 4},
		Positions: []float64{0, 50},
		RLim:      &[2]float64{0, 4},
		Base:      ptr(1.0),
	})
	require.NoError(t, err)

	path := rec.Items()[0].Path
	require.Len(t, path.Knots, 5)
	assert.InDelta(t, math.Pi, path.Knots[2].To.Theta, 1e-12)
	assert.Equal(t, 562.5, path.Knots[2].To.R)
	assert.InDelta(t, 0, path.Knots[3].To.Theta, 1e-12)
	assert.Equal(t, 562.5, path.Knots[3].To.R)
	assert.Equal(t, canvas.OpClose, path.Knots[4].Op)
	assert.Equal(t, DefaultEdge, path.Style.Edge)
	assert.Zero(t, path.Style.LineWidth)
}

func TestScatter(t *testing.T) {
	p, rec, _ := setup(t)
	require.NoError(t, p.Plot(Spec{Kind: KindScatter, Sector: "A", Values: []float64{1, 2, 3}, RLim: &[2]float64{1, 2}}))

	items := rec.Items()
	require.Len(t, items, 2, "3 is outside the range")
	for _, it := range items {
		assert.Equal(t, DefaultMarkerSize, it.Marker.Size)
	}
}

func TestBar(t *testing.T) {
	p, rec, _ := setup(t)
	require.NoError(t, p.Plot(Spec{
		Kind:      KindBar,
		Sector:    "A",
		Values:    []float64{0, 5, 10},
		Positions: []float64{0, 10, 20},
		RLim:      &[2]float64{0, 10},
	}))

	items := rec.Items()
	require.Len(t, items, 3)
	step := 2 * math.Pi / 10
	for i, it := range items {
		w := it.Wedge
		assert.InDelta(t, step*float64(i), w.Theta, 1e-12)
		assert.InDelta(t, step, w.Width, 1e-12)
		assert.Equal(t, 550.0, w.Bottom)
	}
	assert.InDelta(t, 0, items[0].Wedge.Height, 1e-12)
	assert.InDelta(t, 25, items[1].Wedge.Height, 1e-12)
	assert.InDelta(t, 50, items[2].Wedge.Height, 1e-12)
}

func TestBarExplicitWidths(t *testing.T) {
	p, rec, _ := setup(t)
	require.NoError(t, p.Plot(Spec{
		Kind:   KindBar,
		Sector: "A",
		Values: []float64{1, 2},
		Widths: []float64{5},
	}))
	for _, it := range rec.Items() {
		assert.InDelta(t, 2*math.Pi*5/100, it.Wedge.Width, 1e-12)
	}

	err := p.Plot(Spec{Kind: KindBar, Sector: "A", Values: []float64{1, 2, 3}, Widths: []float64{1, 2}})
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput))
}

func TestBarConstantFillsBand(t *testing.T) {
	p, rec, _ := setup(t)
	require.NoError(t, p.Plot(Spec{Kind: KindBar, Sector: "A", Values: []float64{3, 3}}))
	for _, it := range rec.Items() {
		assert.Equal(t, 550.0, it.Wedge.Bottom)
		assert.Equal(t, 50.0, it.Wedge.Height)
	}
}

func TestHeatmap(t *testing.T) {
	p, rec, _ := setup(t)
	require.NoError(t, p.Plot(Spec{Kind: KindHeatmap, Sector: "A", Values: []float64{0, 5, 10}}))
	require.NoError(t, p.Plot(Spec{Kind: KindHeatmap, Sector: "A", Values: []float64{0, 10}, Colormap: "Greys", VMax: ptr(20.0)}))

	items := rec.Items()
	require.Len(t, items, 5)
	reds := palette.Colormaps[0]
	assert.Equal(t, reds.At(0), items[0].Wedge.Style.Fill)
	assert.Equal(t, reds.At(0.5), items[1].Wedge.Style.Fill)
	assert.Equal(t, reds.At(1), items[2].Wedge.Style.Fill)
	for _, it := range items {
		assert.Equal(t, 550.0, it.Wedge.Bottom)
		assert.Equal(t, 50.0, it.Wedge.Height)
	}

	greys, err := palette.LookupColormap("Greys")
	require.NoError(t, err)
	assert.Equal(t, greys.At(0.5), items[4].Wedge.Style.Fill)

	err = p.Plot(Spec{Kind: KindHeatmap, Sector: "A", Values: []float64{1}, Colormap: "Rainbow"})
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput))
}

func TestFeatureReverseStrand(t *testing.T) {
	p, rec, _ := setup(t)
	require.NoError(t, p.Plot(Spec{
		Kind:   KindFeature,
		Sector: "A",
		Features: []Feature{
			{Start: 10, End: 20, Strand: 1, Type: "CDS"},
			{Start: 40, End: 30, Strand: -1, Type: "CDS"},
			{Start: 60, End: 70, Type: "tRNA"},
		},
		FeatureType: "CDS",
	}))

	items := rec.Items()
	require.Len(t, items, 2)
	step := 2 * math.Pi / 100
	assert.InDelta(t, 30*step, items[1].Wedge.Theta, 1e-12)
	assert.InDelta(t, 10*step, items[1].Wedge.Width, 1e-12)
	assert.Equal(t, items[0].Wedge.Style.Fill, items[1].Wedge.Style.Fill)
}

func TestTick(t *testing.T) {
	p, rec, _ := setup(t)
	require.NoError(t, p.Plot(Spec{Kind: KindTick, Sector: "A", Interval: 25, Direction: DirectionInner, Labels: true}))

	var paths, texts int
	for _, it := range rec.Items() {
		switch it.Kind {
		case canvas.KindPath:
			paths++
			assert.Equal(t, 550.0, it.Path.Knots[0].To.R)
			assert.Equal(t, 545.0, it.Path.Knots[1].To.R)
		case canvas.KindText:
			texts++
			assert.Equal(t, 540.0, it.Text.R)
		}
	}
	assert.Equal(t, 5, paths, "ticks at 0, 25, 50, 75, 100")
	assert.Equal(t, 5, texts)

	err := p.Plot(Spec{Kind: KindTick, Sector: "A", Direction: "sideways"})
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput))
}

func TestTickIntervals(t *testing.T) {
	tests := []struct {
		name     string
		interval float64
		ticks    int
		code     errors.Code
	}{
		{"fractional", 2.5, 41, ""},
		{"uneven", 30, 4, ""},
		{"wider than sector", 500, 1, ""},
		{"tiny", 1e-300, 0, errors.ErrCodeInvalidRange},
		{"over cap", 0.001, 0, errors.ErrCodeInvalidRange},
		{"negative", -5, 0, errors.ErrCodeInvalidRange},
		{"nan", math.NaN(), 0, errors.ErrCodeInvalidRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, rec, _ := setup(t)
			err := p.Plot(Spec{Kind: KindTick, Sector: "A", Interval: tt.interval})
			if tt.code != "" {
				assert.True(t, errors.Is(err, tt.code), "got %v", err)
				assert.Empty(t, rec.Items())
				return
			}
			require.NoError(t, err)
			assert.Len(t, rec.Items(), tt.ticks)
		})
	}
}

func TestSpine(t *testing.T) {
	p, rec, _ := setup(t)
	require.NoError(t, p.Plot(Spec{Kind: KindScatter, Sector: "A", Values: []float64{1}, Spine: true}))
	items := canvas.Sorted(rec.Items())
	require.Equal(t, canvas.KindWedge, items[0].Kind)
	assert.Equal(t, canvas.LayerSpine, items[0].Wedge.Layer)
	assert.Equal(t, 550.0, items[0].Wedge.Bottom)
}

func TestAttachedData(t *testing.T) {
	r := circle.NewRegistry()
	_, err := r.Register(circle.Sector{ID: "A", Size: 10, Band: circle.Band{1, 2}})
	require.NoError(t, err)
	require.NoError(t, r.Attach("A", "gc", []float64{0.4, 0.5, 0.6}))
	require.NoError(t, r.SolveDefault())

	rec := canvas.NewRecorder()
	require.NoError(t, New(r, rec, nil).Plot(Spec{Kind: KindLine, Sector: "A", Data: "gc"}))
	assert.Len(t, rec.Items()[0].Path.Knots, 3)
}

func TestPlotErrors(t *testing.T) {
	p, _, _ := setup(t)
	tests := []struct {
		name string
		spec Spec
		code errors.Code
	}{
		{"unknown kind", Spec{Kind: "pie", Sector: "A", Values: []float64{1}}, errors.ErrCodeInvalidInput},
		{"unknown sector", Spec{Kind: KindLine, Sector: "B", Values: []float64{1}}, errors.ErrCodeUnknownSector},
		{"no values", Spec{Kind: KindLine, Sector: "A"}, errors.ErrCodeInvalidInput},
		{"position mismatch", Spec{Kind: KindLine, Sector: "A", Values: []float64{1, 2}, Positions: []float64{1}}, errors.ErrCodeInvalidInput},
		{"missing data", Spec{Kind: KindLine, Sector: "A", Data: "skew"}, errors.ErrCodeNotFound},
		{"bad band", Spec{Kind: KindLine, Sector: "A", Values: []float64{1}, Band: &circle.Band{5, 5}}, errors.ErrCodeInvalidRange},
		{"bad rlim", Spec{Kind: KindLine, Sector: "A", Values: []float64{1}, RLim: &[2]float64{2, 1}}, errors.ErrCodeInvalidRange},
		{"nan value", Spec{Kind: KindLine, Sector: "A", Values: []float64{math.NaN()}}, errors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := p.Plot(tt.spec)
			assert.True(t, errors.Is(err, tt.code), "got %v, want %s", err, tt.code)
		})
	}
}

func TestPlotUnsolved(t *testing.T) {
	r := circle.NewRegistry()
	_, err := r.Register(circle.Sector{ID: "A", Size: 10, Band: circle.Band{1, 2}})
	require.NoError(t, err)
	err = New(r, canvas.NewRecorder(), nil).Plot(Spec{Kind: KindLine, Sector: "A", Values: []float64{1}})
	assert.True(t, errors.Is(err, errors.ErrCodeLayoutNotSolved))
}
