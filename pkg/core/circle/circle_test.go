package circle

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/circos/pkg/core/palette"
	"github.com/matzehuels/circos/pkg/errors"
)

const eps = 1e-9

var band = Band{500, 550}

func newRegistry(t *testing.T, sectors ...Sector) *Registry {
	t.Helper()
	r := NewRegistry()
	for _, s := range sectors {
		if s.Band == (Band{}) {
			s.Band = band
		}
		_, err := r.Register(s)
		require.NoError(t, err)
	}
	return r
}

func TestSolvePartition(t *testing.T) {
	r := newRegistry(t,
		Sector{ID: "A", Size: 100},
		Sector{ID: "B", Size: 200},
		Sector{ID: "C", Size: 100},
	)
	require.NoError(t, r.Solve(0, FullCircle))

	want := map[string][2]float64{
		"A": {0, math.Pi / 2},
		"B": {math.Pi / 2, 3 * math.Pi / 2},
		"C": {3 * math.Pi / 2, 2 * math.Pi},
	}
	for id, span := range want {
		s, ok := r.Sector(id)
		require.True(t, ok, id)
		assert.InDelta(t, span[0], s.Coord.Start, eps, "%s start", id)
		assert.InDelta(t, span[1], s.Coord.End, eps, "%s end", id)
		assert.True(t, s.Coord.Solved)
	}
}

func TestSolveInterspace(t *testing.T) {
	r := newRegistry(t,
		Sector{ID: "A", Size: 10, Interspace: 0.1},
		Sector{ID: "B", Size: 10, Interspace: 0.1},
	)
	start, end := r.DefaultBounds()
	assert.Equal(t, 0.0, start)
	assert.InDelta(t, FullCircle-0.2, end, eps)
	require.NoError(t, r.SolveDefault())

	a, _ := r.Sector("A")
	b, _ := r.Sector("B")
	assert.Equal(t, 0.0, a.Coord.Start)
	assert.InDelta(t, 0.1+(FullCircle-0.2)/2, b.Coord.Start, eps)
	assert.LessOrEqual(t, a.Coord.End, b.Coord.Start)
	assert.InDelta(t, 0.1, b.Coord.Start-a.Coord.End, eps)
}

func TestSolveWidthsSumToBudget(t *testing.T) {
	r := newRegistry(t,
		Sector{ID: "a", Size: 7, Interspace: 0.02},
		Sector{ID: "b", Size: 13, Interspace: 0.05},
		Sector{ID: "c", Size: 1, Interspace: 0.01},
		Sector{ID: "d", Size: 42, Interspace: 0.03},
	)
	require.NoError(t, r.Solve(0.3, 5.1))

	sum := 0.0
	prevEnd := math.Inf(-1)
	for _, s := range r.Sectors() {
		sum += s.Coord.Width()
		assert.GreaterOrEqual(t, s.Coord.Start, prevEnd, "sector %s overlaps its predecessor", s.ID)
		prevEnd = s.Coord.End
	}
	assert.InDelta(t, 5.1-0.3, sum, eps)

	first, _ := r.Sector("a")
	assert.Equal(t, 0.3, first.Coord.Start)
}

func TestSolveDoublingSize(t *testing.T) {
	solve := func(sizeB int) map[string]float64 {
		r := newRegistry(t,
			Sector{ID: "A", Size: 50},
			Sector{ID: "B", Size: sizeB},
			Sector{ID: "C", Size: 150},
		)
		require.NoError(t, r.Solve(0, FullCircle))
		w := make(map[string]float64)
		for _, s := range r.Sectors() {
			w[s.ID] = s.Coord.Width()
		}
		return w
	}

	before, after := solve(100), solve(200)
	assert.Greater(t, after["B"], before["B"])
	assert.Less(t, after["A"], before["A"])
	assert.Less(t, after["C"], before["C"])
	// A and C shrink by the same factor.
	assert.InDelta(t, before["A"]/before["C"], after["A"]/after["C"], eps)
	assert.InDelta(t, before["A"]+before["B"]+before["C"], after["A"]+after["B"]+after["C"], eps)
}

func TestSolveIdempotent(t *testing.T) {
	r := newRegistry(t,
		Sector{ID: "x", Size: 3, Interspace: 0.2},
		Sector{ID: "y", Size: 5, Interspace: 0.2},
	)
	require.NoError(t, r.SolveDefault())
	first := r.Sectors()
	require.NoError(t, r.SolveDefault())
	assert.Equal(t, first, r.Sectors())
}

func TestSolveErrors(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		err := NewRegistry().SolveDefault()
		assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput), "got %v", err)
	})
	t.Run("overflow", func(t *testing.T) {
		r := newRegistry(t,
			Sector{ID: "a", Size: 1, Interspace: math.Pi},
			Sector{ID: "b", Size: 1, Interspace: math.Pi},
		)
		err := r.SolveDefault()
		assert.True(t, errors.Is(err, errors.ErrCodeLayoutOverflow), "got %v", err)
	})
	t.Run("reversed bounds", func(t *testing.T) {
		r := newRegistry(t, Sector{ID: "a", Size: 1})
		err := r.Solve(2, 1)
		assert.True(t, errors.Is(err, errors.ErrCodeInvalidRange), "got %v", err)
	})
	t.Run("nan bounds", func(t *testing.T) {
		r := newRegistry(t, Sector{ID: "a", Size: 1})
		err := r.Solve(0, math.NaN())
		assert.True(t, errors.Is(err, errors.ErrCodeInvalidRange), "got %v", err)
	})
}

func TestRegisterErrors(t *testing.T) {
	tests := []struct {
		name   string
		sector Sector
		code   errors.Code
	}{
		{"zero size", Sector{ID: "a", Size: 0, Band: band}, errors.ErrCodeInvalidRange},
		{"negative size", Sector{ID: "a", Size: -1, Band: band}, errors.ErrCodeInvalidRange},
		{"negative interspace", Sector{ID: "a", Size: 1, Interspace: -0.1, Band: band}, errors.ErrCodeInvalidRange},
		{"empty band", Sector{ID: "a", Size: 1, Band: Band{500, 500}}, errors.ErrCodeInvalidRange},
		{"negative radius", Sector{ID: "a", Size: 1, Band: Band{-1, 500}}, errors.ErrCodeInvalidRange},
		{"bad id", Sector{ID: "a\nb", Size: 1, Band: band}, errors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry()
			_, err := r.Register(tt.sector)
			assert.True(t, errors.Is(err, tt.code), "got %v, want code %s", err, tt.code)
			assert.Equal(t, 0, r.Len())
		})
	}
}

func TestRegisterDuplicate(t *testing.T) {
	r := newRegistry(t, Sector{ID: "chr1", Size: 10})
	_, err := r.Register(Sector{ID: "chr1", Size: 20, Band: band})
	assert.True(t, errors.Is(err, errors.ErrCodeDuplicateID), "got %v", err)
	assert.Equal(t, 1, r.Len())
	assert.Equal(t, 10, r.TotalSize())
}

func TestRegisterDefaults(t *testing.T) {
	r := NewRegistry()
	first, err := r.Register(Sector{Size: 5, Band: Band{550, 500}})
	require.NoError(t, err)
	second, err := r.Register(Sector{Size: 5, Band: band, Style: Style{Fill: "#ff0000"}})
	require.NoError(t, err)

	assert.Equal(t, "0", first.ID)
	assert.Equal(t, "1", second.ID)
	assert.Equal(t, palette.Sectors[0], first.Style.Fill)
	assert.Equal(t, "#ff0000", second.Style.Fill)
	assert.Equal(t, DefaultEdge, first.Style.Edge)
	assert.Equal(t, "0", first.Label.Text)
	assert.Equal(t, DefaultLabelSize, first.Label.Size)
	assert.Equal(t, Band{500, 550}, first.Band)
	assert.Equal(t, []string{"0", "1"}, r.IDs())
}

func TestRegisterDefaultIDSkipsTaken(t *testing.T) {
	r := NewRegistry()
	_, err := r.Register(Sector{ID: "1", Size: 5, Band: band})
	require.NoError(t, err)
	_, err = r.Register(Sector{ID: "2", Size: 5, Band: band})
	require.NoError(t, err)

	s, err := r.Register(Sector{Size: 5, Band: band})
	require.NoError(t, err)
	assert.Equal(t, "3", s.ID, "counter 2 collides with 2, so the next free id is used")
	assert.Equal(t, palette.Sectors[2], s.Style.Fill, "fill still follows the counter")
	assert.Equal(t, []string{"1", "2", "3"}, r.IDs())
}

func TestRegisterCounterSkipsFailures(t *testing.T) {
	r := NewRegistry()
	_, err := r.Register(Sector{Size: 0, Band: band})
	require.Error(t, err)
	s, err := r.Register(Sector{Size: 1, Band: band})
	require.NoError(t, err)
	assert.Equal(t, "0", s.ID)
	assert.Equal(t, palette.Sectors[0], s.Style.Fill)
}

func TestRegisterInvalidatesSolve(t *testing.T) {
	r := newRegistry(t, Sector{ID: "a", Size: 10})
	require.NoError(t, r.SolveDefault())
	require.True(t, r.Solved())

	_, err := r.Register(Sector{ID: "b", Size: 10, Band: band})
	require.NoError(t, err)
	assert.False(t, r.Solved())
	_, err = r.Project("a", 1)
	assert.True(t, errors.Is(err, errors.ErrCodeLayoutNotSolved), "got %v", err)
}

func TestTotals(t *testing.T) {
	r := newRegistry(t,
		Sector{ID: "a", Size: 4, Interspace: 0.25},
		Sector{ID: "b", Size: 6, Interspace: 0.5},
	)
	assert.Equal(t, 10, r.TotalSize())
	assert.InDelta(t, 0.75, r.TotalInterspace(), eps)
}

func TestProject(t *testing.T) {
	r := newRegistry(t,
		Sector{ID: "A", Size: 101},
		Sector{ID: "B", Size: 101},
	)
	require.NoError(t, r.Solve(0, FullCircle))

	tests := []struct {
		id   string
		pos  float64
		want float64
	}{
		{"A", 0, 0},
		{"A", 100, math.Pi},
		{"A", 50, math.Pi / 2},
		{"B", 0, math.Pi},
		{"B", 100, 2 * math.Pi},
	}
	for _, tt := range tests {
		got, err := r.Project(tt.id, tt.pos)
		require.NoError(t, err)
		assert.InDelta(t, tt.want, got, eps, "Project(%s, %g)", tt.id, tt.pos)
	}

	start, end, err := r.ProjectSpan("A", 25, 75)
	require.NoError(t, err)
	assert.InDelta(t, math.Pi/4, start, eps)
	assert.InDelta(t, 3*math.Pi/4, end, eps)
}

func TestProjectErrors(t *testing.T) {
	r := newRegistry(t,
		Sector{ID: "one", Size: 1},
		Sector{ID: "many", Size: 10},
	)
	_, err := r.Project("many", 1)
	assert.True(t, errors.Is(err, errors.ErrCodeLayoutNotSolved), "got %v", err)

	require.NoError(t, r.SolveDefault())
	_, err = r.Project("one", 0)
	assert.True(t, errors.Is(err, errors.ErrCodeDegenerateSector), "got %v", err)
	_, err = r.Project("missing", 0)
	assert.True(t, errors.Is(err, errors.ErrCodeUnknownSector), "got %v", err)
}

func TestAttach(t *testing.T) {
	r := newRegistry(t, Sector{ID: "a", Size: 3})
	values := []float64{1, 2, 3}
	require.NoError(t, r.Attach("a", "gc", values))
	values[0] = 99

	got, err := r.Data("a", "gc")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, got)

	_, err = r.Data("a", "skew")
	assert.True(t, errors.Is(err, errors.ErrCodeNotFound))
	err = r.Attach("b", "gc", nil)
	assert.True(t, errors.Is(err, errors.ErrCodeUnknownSector))
}

func TestSpread(t *testing.T) {
	s := Sector{Size: 10, Coord: Coord{Start: 1, End: 2, Solved: true}}
	assert.Equal(t, []float64{1}, Spread(s, 1))
	got := Spread(s, 5)
	require.Len(t, got, 5)
	assert.InDelta(t, 1, got[0], eps)
	assert.InDelta(t, 1.5, got[2], eps)
	assert.InDelta(t, 2, got[4], eps)
}

func TestBand(t *testing.T) {
	b := Band{550, 500}
	assert.Equal(t, 500.0, b.Bottom())
	assert.Equal(t, 550.0, b.Top())
	assert.Equal(t, 50.0, b.Height())
	assert.Equal(t, 525.0, b.Mid())
	assert.Equal(t, Band{500, 550}, b.Normalize())
}
