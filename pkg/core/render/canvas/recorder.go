package canvas

import (
	"fmt"
	"sort"
)

// Kind discriminates the primitive stored in an [Item].
type Kind string

const (
	KindWedge  Kind = "wedge"
	KindText   Kind = "text"
	KindPath   Kind = "path"
	KindMarker Kind = "marker"
)

// Item is one recorded primitive. Exactly one pointer field matching Kind is
// set.
type Item struct {
	Kind   Kind    `json:"kind" bson:"kind"`
	Wedge  *Wedge  `json:"wedge,omitempty" bson:"wedge,omitempty"`
	Text   *Text   `json:"text,omitempty" bson:"text,omitempty"`
	Path   *Path   `json:"path,omitempty" bson:"path,omitempty"`
	Marker *Marker `json:"marker,omitempty" bson:"marker,omitempty"`
}

// Layer returns the draw layer of the primitive.
func (it Item) Layer() int {
	switch it.Kind {
	case KindWedge:
		return it.Wedge.Layer
	case KindText:
		return it.Text.Layer
	case KindPath:
		return it.Path.Layer
	case KindMarker:
		return it.Marker.Layer
	}
	return 0
}

// Validate checks that the pointer matching Kind is set.
func (it Item) Validate() error {
	ok := false
	switch it.Kind {
	case KindWedge:
		ok = it.Wedge != nil
	case KindText:
		ok = it.Text != nil
	case KindPath:
		ok = it.Path != nil
	case KindMarker:
		ok = it.Marker != nil
	default:
		return fmt.Errorf("unknown primitive kind %q", it.Kind)
	}
	if !ok {
		return fmt.Errorf("%s primitive has no payload", it.Kind)
	}
	return nil
}

// Recorder is a Backend that keeps every primitive in call order.
type Recorder struct {
	items []Item
}

var _ Backend = (*Recorder)(nil)

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder { return &Recorder{} }

func (r *Recorder) Wedge(w Wedge) error {
	r.items = append(r.items, Item{Kind: KindWedge, Wedge: &w})
	return nil
}

func (r *Recorder) Text(t Text) error {
	r.items = append(r.items, Item{Kind: KindText, Text: &t})
	return nil
}

func (r *Recorder) Path(p Path) error {
	p.Knots = append([]Knot(nil), p.Knots...)
	r.items = append(r.items, Item{Kind: KindPath, Path: &p})
	return nil
}

func (r *Recorder) Marker(m Marker) error {
	r.items = append(r.items, Item{Kind: KindMarker, Marker: &m})
	return nil
}

// Len returns the number of recorded primitives.
func (r *Recorder) Len() int { return len(r.items) }

// Items returns the recorded primitives in call order.
func (r *Recorder) Items() []Item { return append([]Item(nil), r.items...) }

// Sorted returns items ordered by ascending layer, call order within a layer.
func Sorted(items []Item) []Item {
	out := append([]Item(nil), items...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Layer() < out[j].Layer() })
	return out
}

// Replay sends items to b in draw order (see [Sorted]).
func Replay(items []Item, b Backend) error {
	for _, it := range Sorted(items) {
		if err := it.Validate(); err != nil {
			return err
		}
		var err error
		switch it.Kind {
		case KindWedge:
			err = b.Wedge(*it.Wedge)
		case KindText:
			err = b.Text(*it.Text)
		case KindPath:
			err = b.Path(*it.Path)
		case KindMarker:
			err = b.Marker(*it.Marker)
		}
		if err != nil {
			return fmt.Errorf("replay %s: %w", it.Kind, err)
		}
	}
	return nil
}
