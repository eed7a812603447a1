package circle

import (
	"strconv"

	"github.com/matzehuels/circos/pkg/core/palette"
	"github.com/matzehuels/circos/pkg/errors"
)

// Defaults applied to sectors that leave a field empty.
const (
	DefaultEdge      = "#303030"
	DefaultLabelSize = 10.0
)

// Registry is an insertion-ordered collection of sectors keyed by id.
//
// A Registry is not safe for concurrent use; callers serialize Register,
// Solve and projection calls.
type Registry struct {
	sectors []*Sector
	index   map[string]int
	// counter numbers registrations for default ids and fills.
	counter int
	solved  bool
	start   float64
	end     float64
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{index: make(map[string]int)}
}

// Register validates s, fills defaults and appends it to the registry. It
// returns the stored sector.
//
// Defaults: an empty ID becomes the registration counter in decimal,
// advanced past ids already taken. An empty fill is taken from
// [palette.Sectors] by the counter itself, and an empty label text
// becomes the id. The band is normalized inner first.
//
// Registering invalidates any previous solve.
func (r *Registry) Register(s Sector) (Sector, error) {
	if s.ID == "" {
		s.ID = r.defaultID()
	}
	if _, dup := r.index[s.ID]; dup {
		return Sector{}, errors.New(errors.ErrCodeDuplicateID, "sector %q already registered", s.ID)
	}
	if err := s.validate(); err != nil {
		return Sector{}, err
	}
	for k := range s.Data {
		if err := errors.ValidateDataKey(k); err != nil {
			return Sector{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "sector %q", s.ID)
		}
	}

	s = s.clone()
	s.Band = s.Band.Normalize()
	if s.Style.Fill == "" {
		s.Style.Fill = palette.At(palette.Sectors, r.counter)
	}
	if s.Style.Edge == "" {
		s.Style.Edge = DefaultEdge
	}
	if s.Label.Text == "" {
		s.Label.Text = s.ID
	}
	if s.Label.Size == 0 {
		s.Label.Size = DefaultLabelSize
	}
	s.Coord = Coord{}

	r.index[s.ID] = len(r.sectors)
	r.sectors = append(r.sectors, &s)
	r.counter++
	r.invalidate()
	return s, nil
}

// defaultID returns the first unused decimal id at or after the counter.
func (r *Registry) defaultID() string {
	for n := r.counter; ; n++ {
		id := strconv.Itoa(n)
		if _, taken := r.index[id]; !taken {
			return id
		}
	}
}

// Attach stores a numeric track on sector id under key, replacing any
// previous values.
func (r *Registry) Attach(id, key string, values []float64) error {
	s, err := r.lookup(id)
	if err != nil {
		return err
	}
	if err := errors.ValidateDataKey(key); err != nil {
		return err
	}
	if s.Data == nil {
		s.Data = make(map[string][]float64)
	}
	s.Data[key] = append([]float64(nil), values...)
	return nil
}

// Data returns the track stored on sector id under key.
func (r *Registry) Data(id, key string) ([]float64, error) {
	s, err := r.lookup(id)
	if err != nil {
		return nil, err
	}
	v, ok := s.Data[key]
	if !ok {
		return nil, errors.New(errors.ErrCodeNotFound, "sector %q has no data %q", id, key)
	}
	return v, nil
}

// Len returns the number of registered sectors.
func (r *Registry) Len() int { return len(r.sectors) }

// TotalSize returns the sum of all sector sizes.
func (r *Registry) TotalSize() int {
	total := 0
	for _, s := range r.sectors {
		total += s.Size
	}
	return total
}

// TotalInterspace returns the sum of all sector gaps in radians.
func (r *Registry) TotalInterspace() float64 {
	total := 0.0
	for _, s := range r.sectors {
		total += s.Interspace
	}
	return total
}

// Sector returns a copy of the sector with the given id.
func (r *Registry) Sector(id string) (Sector, bool) {
	i, ok := r.index[id]
	if !ok {
		return Sector{}, false
	}
	return r.sectors[i].clone(), true
}

// Sectors returns copies of all sectors in registration order.
func (r *Registry) Sectors() []Sector {
	out := make([]Sector, len(r.sectors))
	for i, s := range r.sectors {
		out[i] = s.clone()
	}
	return out
}

// IDs returns sector ids in registration order.
func (r *Registry) IDs() []string {
	ids := make([]string, len(r.sectors))
	for i, s := range r.sectors {
		ids[i] = s.ID
	}
	return ids
}

// Solved reports whether the current registry state has been solved.
func (r *Registry) Solved() bool { return r.solved }

// Bounds returns the global start and end angles of the last solve.
func (r *Registry) Bounds() (start, end float64) { return r.start, r.end }

func (r *Registry) lookup(id string) (*Sector, error) {
	i, ok := r.index[id]
	if !ok {
		return nil, errors.New(errors.ErrCodeUnknownSector, "unknown sector %q", id)
	}
	return r.sectors[i], nil
}

func (r *Registry) invalidate() {
	r.solved = false
	for _, s := range r.sectors {
		s.Coord = Coord{}
	}
}
