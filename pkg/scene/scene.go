// Package scene is the serializable result of laying out a figure.
//
// A [Scene] is the wire format shared by layout files, API responses and the
// cache. It holds everything the sinks need to draw without re-running the
// layout: the canvas, the solved sector table, per-sector-pair chord counts
// and the recorded primitives in call order.
//
//	{
//	  "size": 576,
//	  "rmax": 1000,
//	  "sectors": [{"id": "chr1", "size": 1000, "start": 0.0, "end": 2.9, ...}],
//	  "links": [{"from": "chr1", "to": "chr2", "count": 4}],
//	  "items": [{"kind": "wedge", "wedge": {...}}, ...]
//	}
package scene

import (
	"encoding/json"
	"os"

	"github.com/matzehuels/circos/pkg/core/circle"
	"github.com/matzehuels/circos/pkg/core/render/canvas"
	"github.com/matzehuels/circos/pkg/core/render/chord"
	"github.com/matzehuels/circos/pkg/core/render/sink"
	"github.com/matzehuels/circos/pkg/errors"
)

// =============================================================================
// Scene
// =============================================================================

// Scene is a solved, drawable figure.
type Scene struct {
	// Canvas
	Size       float64 `json:"size" bson:"size"`
	Margin     float64 `json:"margin,omitempty" bson:"margin,omitempty"`
	RMax       float64 `json:"rmax" bson:"rmax"`
	Background string  `json:"background,omitempty" bson:"background,omitempty"`

	// Angular budget the sectors were solved into, in radians.
	Start float64 `json:"start" bson:"start"`
	End   float64 `json:"end" bson:"end"`

	Sectors []Sector      `json:"sectors" bson:"sectors"`
	Links   []chord.Link  `json:"links,omitempty" bson:"links,omitempty"`
	Items   []canvas.Item `json:"items,omitempty" bson:"items,omitempty"`
}

// Sector is one row of the solved sector table.
type Sector struct {
	ID    string      `json:"id" bson:"id"`
	Label string      `json:"label,omitempty" bson:"label,omitempty"`
	Size  int         `json:"size" bson:"size"`
	Start float64     `json:"start" bson:"start"`
	End   float64     `json:"end" bson:"end"`
	Band  circle.Band `json:"band" bson:"band"`
	Fill  string      `json:"fill,omitempty" bson:"fill,omitempty"`
}

// Width returns the angular width of the sector.
func (s Sector) Width() float64 { return s.End - s.Start }

// Sector returns the table row for id.
func (s *Scene) Sector(id string) (Sector, bool) {
	for _, sec := range s.Sectors {
		if sec.ID == id {
			return sec, true
		}
	}
	return Sector{}, false
}

// Frame returns the drawable part of the scene.
func (s *Scene) Frame() sink.Frame {
	return sink.Frame{
		Size:       s.Size,
		Margin:     s.Margin,
		RMax:       s.RMax,
		Background: s.Background,
		Items:      s.Items,
	}
}

// SectorTable converts a solved registry into table rows in registration
// order.
func SectorTable(r *circle.Registry) ([]Sector, error) {
	if !r.Solved() {
		return nil, errors.New(errors.ErrCodeLayoutNotSolved, "sector table needs a solved layout")
	}
	sectors := r.Sectors()
	out := make([]Sector, len(sectors))
	for i, s := range sectors {
		out[i] = Sector{
			ID:    s.ID,
			Label: s.Label.Text,
			Size:  s.Size,
			Start: s.Coord.Start,
			End:   s.Coord.End,
			Band:  s.Band,
			Fill:  s.Style.Fill,
		}
	}
	return out, nil
}

// =============================================================================
// Serialization API
// =============================================================================

// MarshalScene serializes a Scene to pretty-printed JSON bytes.
func MarshalScene(s Scene) ([]byte, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "marshal scene")
	}
	return data, nil
}

// UnmarshalScene deserializes JSON bytes into a Scene and validates it.
func UnmarshalScene(data []byte) (Scene, error) {
	var s Scene
	if err := json.Unmarshal(data, &s); err != nil {
		return Scene{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "unmarshal scene")
	}
	if err := s.Validate(); err != nil {
		return Scene{}, err
	}
	return s, nil
}

// Validate checks that the scene has sectors and well-formed primitives.
func (s *Scene) Validate() error {
	if len(s.Sectors) == 0 {
		return errors.New(errors.ErrCodeInvalidFormat, "scene must contain sectors")
	}
	seen := make(map[string]bool, len(s.Sectors))
	for _, sec := range s.Sectors {
		if seen[sec.ID] {
			return errors.New(errors.ErrCodeDuplicateID, "sector %q listed twice", sec.ID)
		}
		seen[sec.ID] = true
	}
	for _, l := range s.Links {
		if !seen[l.From] || !seen[l.To] {
			return errors.New(errors.ErrCodeUnknownSector, "link %s-%s references an unknown sector", l.From, l.To)
		}
	}
	f := s.Frame()
	return f.Validate()
}

// WriteSceneFile writes a Scene to a JSON file.
func WriteSceneFile(s Scene, path string) error {
	if err := errors.ValidateOutputPath(path); err != nil {
		return err
	}
	data, err := MarshalScene(s)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write %s", path)
	}
	return nil
}

// ReadSceneFile reads a Scene from a JSON file.
func ReadSceneFile(path string) (Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Scene{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "read %s", path)
		}
		return Scene{}, errors.Wrap(errors.ErrCodeInternal, err, "read %s", path)
	}
	return UnmarshalScene(data)
}
