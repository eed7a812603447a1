package circle

import (
	"github.com/matzehuels/circos/pkg/errors"
)

// Project maps data position pos of sector s to an absolute angle:
//
//	start + (end - start) * pos / (size - 1)
//
// Positions are discrete indices spanning the sector inclusive of both ends,
// so a sector of size 1 has no defined mapping.
func Project(s Sector, pos float64) (float64, error) {
	if !s.Coord.Solved {
		return 0, errors.New(errors.ErrCodeLayoutNotSolved, "sector %q has no solved coordinates", s.ID)
	}
	if s.Size <= 1 {
		return 0, errors.New(errors.ErrCodeDegenerateSector, "sector %q has size %d; positions need size > 1", s.ID, s.Size)
	}
	return s.Coord.Start + s.Coord.Width()*pos/float64(s.Size-1), nil
}

// Scale converts a length in data units of sector s to an angular width.
func Scale(s Sector, length float64) (float64, error) {
	if !s.Coord.Solved {
		return 0, errors.New(errors.ErrCodeLayoutNotSolved, "sector %q has no solved coordinates", s.ID)
	}
	if s.Size <= 1 {
		return 0, errors.New(errors.ErrCodeDegenerateSector, "sector %q has size %d; positions need size > 1", s.ID, s.Size)
	}
	return s.Coord.Width() * length / float64(s.Size-1), nil
}

// Project maps data position pos of sector id to an absolute angle. See the
// package-level [Project].
func (r *Registry) Project(id string, pos float64) (float64, error) {
	s, err := r.solvedSector(id)
	if err != nil {
		return 0, err
	}
	return Project(*s, pos)
}

// ProjectSpan maps the data range [from, to] of sector id to absolute angles.
func (r *Registry) ProjectSpan(id string, from, to float64) (start, end float64, err error) {
	s, err := r.solvedSector(id)
	if err != nil {
		return 0, 0, err
	}
	if start, err = Project(*s, from); err != nil {
		return 0, 0, err
	}
	if end, err = Project(*s, to); err != nil {
		return 0, 0, err
	}
	return start, end, nil
}

// Spread returns n angles evenly spaced from the sector's start to its end
// inclusive. A single value sits at the start.
func Spread(s Sector, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = s.Coord.Start
		return out
	}
	for i := range out {
		out[i] = s.Coord.Start + s.Coord.Width()*float64(i)/float64(n-1)
	}
	return out
}

// SolvedSector returns a copy of sector id, failing if it is unknown or the
// registry has not been solved since the last change.
func (r *Registry) SolvedSector(id string) (Sector, error) {
	s, err := r.solvedSector(id)
	if err != nil {
		return Sector{}, err
	}
	return s.clone(), nil
}

func (r *Registry) solvedSector(id string) (*Sector, error) {
	s, err := r.lookup(id)
	if err != nil {
		return nil, err
	}
	if !r.solved {
		return nil, errors.New(errors.ErrCodeLayoutNotSolved, "layout not solved; call Solve after registering sectors")
	}
	return s, nil
}
