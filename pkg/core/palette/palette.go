// Package palette holds the color tables used for default sector, chord and
// track colors, a registry-scoped color cycle, named colors and sequential
// colormaps for heatmaps.
package palette

// Sectors is the 36-entry table sector fills are drawn from when no fill is
// given. Light material tones first, then their saturated accents.
var Sectors = []string{
	"#ff8a80", "#ff80ab", "#ea80fc", "#b388ff", "#8c9eff", "#82b1ff", "#84ffff", "#a7ffeb", "#b9f6ca",
	"#ccff90", "#f4ff81", "#ffff8d", "#ffe57f", "#ffd180", "#ff9e80", "#bcaaa4", "#eeeeee", "#b0bec5",
	"#ff5252", "#ff4081", "#e040fb", "#7c4dff", "#536dfe", "#448aff", "#18ffff", "#64ffda", "#69f0ae",
	"#b2ff59", "#eeff41", "#ffff00", "#ffd740", "#ffab40", "#ff6e40", "#a1887f", "#e0e0e0", "#90a4ae",
}

// Chords is the 18-entry table chords and tracks cycle through when no color
// is given.
var Chords = []string{
	"#f44336", "#e91e63", "#9c27b0", "#673ab7", "#3f51b5", "#2196f3", "#00bcd4", "#009688", "#4caf50",
	"#8bc34a", "#cddc39", "#ffeb3b", "#ffc107", "#ff9800", "#ff5722", "#795548", "#9e9e9e", "#607d8b",
}

// ChordAlpha is appended to a cycled chord color to make ribbons translucent.
const ChordAlpha = "80"

// Cycle hands out colors from a table in call order. It is owned by a single
// figure; two figures never share a cycle.
//
// The zero value starts at the first color.
type Cycle struct {
	n int
}

// Next returns the color at the current position of the cycle in table and
// advances the cycle.
func (c *Cycle) Next(table []string) string {
	if len(table) == 0 {
		return ""
	}
	col := table[c.n%len(table)]
	c.n++
	return col
}

// Count returns how many colors have been handed out.
func (c *Cycle) Count() int { return c.n }

// Reset rewinds the cycle to the first color.
func (c *Cycle) Reset() { c.n = 0 }

// At returns table[i % len(table)].
func At(table []string, i int) string {
	if len(table) == 0 {
		return ""
	}
	if i < 0 {
		i = -i
	}
	return table[i%len(table)]
}
