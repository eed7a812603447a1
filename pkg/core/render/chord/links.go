package chord

import (
	"cmp"
	"slices"
)

// Link counts the ribbons joining two sectors. From and To are ordered so
// that From <= To; a ribbon within one sector has From == To.
type Link struct {
	From  string `json:"from" bson:"from"`
	To    string `json:"to" bson:"to"`
	Count int    `json:"count" bson:"count"`
}

// Pair is one ribbon request, as kept by a figure.
type Pair struct {
	A Anchor `json:"a" toml:"a" bson:"a"`
	B Anchor `json:"b" toml:"b" bson:"b"`
}

// Tally aggregates pairs into per-sector-pair counts, sorted by From then To.
func Tally(pairs []Pair) []Link {
	counts := make(map[[2]string]int)
	for _, p := range pairs {
		a, b := p.A.Sector, p.B.Sector
		if b < a {
			a, b = b, a
		}
		counts[[2]string{a, b}]++
	}
	links := make([]Link, 0, len(counts))
	for k, n := range counts {
		links = append(links, Link{From: k[0], To: k[1], Count: n})
	}
	slices.SortFunc(links, func(x, y Link) int {
		if c := cmp.Compare(x.From, y.From); c != 0 {
			return c
		}
		return cmp.Compare(x.To, y.To)
	})
	return links
}
