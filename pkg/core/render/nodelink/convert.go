package nodelink

import (
	"math"

	"github.com/matzehuels/circos/pkg/errors"
	"github.com/matzehuels/circos/pkg/scene"
)

// Graph is the connectivity view of a scene: one node per sector, one edge
// per sector pair joined by at least one chord.
type Graph struct {
	Nodes []Node
	Edges []Edge
}

// Node is a sector.
type Node struct {
	ID    string
	Label string
	Size  int
	// Degrees is the sector's angular width.
	Degrees float64
	Fill    string
}

// Edge aggregates the chords between two sectors.
type Edge struct {
	From  string
	To    string
	Count int
}

// FromScene extracts the connectivity graph of s. Links must reference
// sectors of s.
func FromScene(s *scene.Scene) (Graph, error) {
	if len(s.Sectors) == 0 {
		return Graph{}, errors.New(errors.ErrCodeInvalidInput, "scene has no sectors")
	}
	g := Graph{Nodes: make([]Node, 0, len(s.Sectors))}
	known := make(map[string]bool, len(s.Sectors))
	for _, sec := range s.Sectors {
		known[sec.ID] = true
		label := sec.Label
		if label == "" {
			label = sec.ID
		}
		g.Nodes = append(g.Nodes, Node{
			ID:      sec.ID,
			Label:   label,
			Size:    sec.Size,
			Degrees: sec.Width() * 180 / math.Pi,
			Fill:    sec.Fill,
		})
	}
	for _, l := range s.Links {
		if !known[l.From] {
			return Graph{}, errors.New(errors.ErrCodeUnknownSector, "link references unknown sector %q", l.From)
		}
		if !known[l.To] {
			return Graph{}, errors.New(errors.ErrCodeUnknownSector, "link references unknown sector %q", l.To)
		}
		if l.Count <= 0 {
			continue
		}
		g.Edges = append(g.Edges, Edge{From: l.From, To: l.To, Count: l.Count})
	}
	return g, nil
}

// MaxCount returns the largest edge count, or 0 without edges.
func (g Graph) MaxCount() int {
	n := 0
	for _, e := range g.Edges {
		n = max(n, e.Count)
	}
	return n
}
