// Package density counts features in fixed-width windows along a sector's
// coordinate space.
//
// Features are either single positions or closed intervals. Windows start at
// 0, w, 2w, ... below the sector size. After the regular windows one more
// bucket covering [last window start, size) is appended and its count is
// scaled by the fraction of a full window it covers. That trailing bucket
// overlaps the last regular window; consumers plotting the result should use
// [Result.Positions] rather than assuming a uniform grid.
package density

import (
	"sort"

	"github.com/matzehuels/circos/pkg/errors"
)

// DefaultWindow is the window width used when the caller passes none.
const DefaultWindow = 1000

// Interval is a closed feature span [Start, End] in sector coordinates.
type Interval struct {
	Start int `json:"start" toml:"start"`
	End   int `json:"end" toml:"end"`
}

// overlaps reports whether the interval touches [lo, hi].
func (iv Interval) overlaps(lo, hi int) bool {
	return iv.Start <= hi && iv.End >= lo
}

// Input is the feature set for one sector.
type Input struct {
	Points    []int
	Intervals []Interval
}

// Bin is one density bucket.
type Bin struct {
	// Start is the first position covered by the bucket.
	Start int `json:"start"`
	// End is one past the last position covered by the bucket.
	End   int     `json:"end"`
	Value float64 `json:"value"`
}

// Result holds the buckets in order, the trailing bucket last.
type Result struct {
	Window int   `json:"window"`
	Bins   []Bin `json:"bins"`
}

// Values returns bucket values in order.
func (r Result) Values() []float64 {
	out := make([]float64, len(r.Bins))
	for i, b := range r.Bins {
		out[i] = b.Value
	}
	return out
}

// Positions returns the start position of every bucket.
func (r Result) Positions() []float64 {
	out := make([]float64, len(r.Bins))
	for i, b := range r.Bins {
		out[i] = float64(b.Start)
	}
	return out
}

// Compute counts in into windows of width window over a sector of the given
// size.
func Compute(size int, in Input, window int) (Result, error) {
	if size <= 0 {
		return Result{}, errors.New(errors.ErrCodeInvalidRange, "density: size must be positive, got %d", size)
	}
	if window <= 0 {
		return Result{}, errors.New(errors.ErrCodeInvalidRange, "density: window must be positive, got %d", window)
	}
	for _, iv := range in.Intervals {
		if iv.End < iv.Start {
			return Result{}, errors.New(errors.ErrCodeInvalidRange, "density: interval [%d, %d] is reversed", iv.Start, iv.End)
		}
	}

	points := append([]int(nil), in.Points...)
	sort.Ints(points)

	res := Result{Window: window}
	last := 0
	for i := 0; i < size; i += window {
		res.Bins = append(res.Bins, Bin{
			Start: i,
			End:   i + window,
			Value: float64(count(points, in.Intervals, i, i+window)),
		})
		last = i
	}

	n := count(points, in.Intervals, last, size)
	res.Bins = append(res.Bins, Bin{
		Start: last,
		End:   size,
		Value: float64(n) * float64(size-last) / float64(window),
	})
	return res, nil
}

// count returns the number of points in [lo, hi) plus the number of
// intervals touching [lo, hi-1]. points must be sorted.
func count(points []int, intervals []Interval, lo, hi int) int {
	a := sort.SearchInts(points, lo)
	b := sort.SearchInts(points, hi)
	n := b - a
	for _, iv := range intervals {
		if iv.overlaps(lo, hi-1) {
			n++
		}
	}
	return n
}
