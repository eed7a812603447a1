package circle

import (
	"math"

	"github.com/matzehuels/circos/pkg/errors"
)

// Band is a radial range (inner, outer). Either order is accepted; the pair
// is normalized on registration.
type Band [2]float64

// Bottom returns the smaller radius.
func (b Band) Bottom() float64 { return math.Min(b[0], b[1]) }

// Top returns the larger radius.
func (b Band) Top() float64 { return math.Max(b[0], b[1]) }

// Height returns the radial thickness of the band.
func (b Band) Height() float64 { return math.Abs(b[1] - b[0]) }

// Mid returns the radius halfway through the band.
func (b Band) Mid() float64 { return b.Bottom() + b.Height()/2 }

// Normalize returns the band ordered inner first.
func (b Band) Normalize() Band { return Band{b.Bottom(), b.Top()} }

// Validate checks that the band has non-negative, finite and distinct radii.
func (b Band) Validate() error {
	for _, r := range b {
		if math.IsNaN(r) || math.IsInf(r, 0) || r < 0 {
			return errors.New(errors.ErrCodeInvalidRange, "radial range [%g, %g] must be finite and non-negative", b[0], b[1])
		}
	}
	if b[0] == b[1] {
		return errors.New(errors.ErrCodeInvalidRange, "radial range [%g, %g] is empty", b[0], b[1])
	}
	return nil
}

// Style carries the visual attributes of a sector. The engine does not
// interpret them beyond filling defaults.
type Style struct {
	Fill      string
	Edge      string
	LineWidth float64
}

// Label describes the optional text drawn at a sector's midpoint.
type Label struct {
	Text    string
	Visible bool
	// Offset is added to the band's radial midpoint.
	Offset float64
	// Size is the font size in points.
	Size float64
}

// Coord is the angular span assigned by the solver.
type Coord struct {
	Start  float64
	End    float64
	Solved bool
}

// Width returns End - Start.
func (c Coord) Width() float64 { return c.End - c.Start }

// Mid returns the angular midpoint.
func (c Coord) Mid() float64 { return (c.Start + c.End) / 2 }

// Sector is one named arc of the layout.
type Sector struct {
	ID   string
	Size int
	// Interspace is the gap in radians inserted after this sector.
	Interspace float64
	Band       Band
	Style      Style
	Label      Label
	// Data holds caller-attached numeric tracks (densities, ratios, ...),
	// indexed against the sector's 0..Size-1 coordinate space.
	Data map[string][]float64

	// Coord is written by the solver only.
	Coord Coord
}

// validate checks the invariants a sector must satisfy before registration.
func (s Sector) validate() error {
	if err := errors.ValidateSectorID(s.ID); err != nil {
		return err
	}
	if s.Size <= 0 {
		return errors.New(errors.ErrCodeInvalidRange, "sector %q: size must be positive, got %d", s.ID, s.Size)
	}
	if math.IsNaN(s.Interspace) || math.IsInf(s.Interspace, 0) || s.Interspace < 0 {
		return errors.New(errors.ErrCodeInvalidRange, "sector %q: interspace must be finite and non-negative, got %g", s.ID, s.Interspace)
	}
	if err := s.Band.Validate(); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidRange, err, "sector %q", s.ID)
	}
	return nil
}

// clone returns a copy whose Data map can be mutated independently.
func (s Sector) clone() Sector {
	if s.Data != nil {
		data := make(map[string][]float64, len(s.Data))
		for k, v := range s.Data {
			data[k] = append([]float64(nil), v...)
		}
		s.Data = data
	}
	return s
}
