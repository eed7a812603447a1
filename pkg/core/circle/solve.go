package circle

import (
	"math"

	"github.com/matzehuels/circos/pkg/errors"
)

// FullCircle is 2π.
const FullCircle = 2 * math.Pi

// DefaultBounds returns the solve bounds used when the caller gives none:
// 0 and 2π minus the registry's total interspace.
func (r *Registry) DefaultBounds() (start, end float64) {
	return 0, FullCircle - r.TotalInterspace()
}

// SolveDefault solves over [DefaultBounds].
func (r *Registry) SolveDefault() error {
	start, end := r.DefaultBounds()
	return r.Solve(start, end)
}

// Solve assigns every sector its angular span over the gap-free budget
// [start, end]. Gaps are inserted as an additive offset equal to the
// interspace of all previously placed sectors.
//
// Solve is deterministic: calling it twice on the same registry state yields
// identical coordinates.
func (r *Registry) Solve(start, end float64) error {
	if len(r.sectors) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "no sectors registered")
	}
	if gaps := r.TotalInterspace(); gaps >= FullCircle {
		return errors.New(errors.ErrCodeLayoutOverflow, "total interspace %.4f rad fills the circle", gaps)
	}
	if math.IsNaN(start) || math.IsNaN(end) || math.IsInf(start, 0) || math.IsInf(end, 0) {
		return errors.New(errors.ErrCodeInvalidRange, "solve bounds must be finite")
	}
	if end <= start {
		return errors.New(errors.ErrCodeInvalidRange, "end angle %g must exceed start angle %g", end, start)
	}

	total := float64(r.TotalSize())
	budget := end - start
	s, g := 0.0, 0.0
	for _, sec := range r.sectors {
		size := float64(sec.Size)
		sec.Coord = Coord{
			Start:  g + start + budget*s/total,
			End:    g + start + budget*(s+size)/total,
			Solved: true,
		}
		s += size
		g += sec.Interspace
	}

	r.solved = true
	r.start, r.end = start, end
	return nil
}
