package palette

import (
	"math"
	"sort"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/circos/pkg/errors"
)

// Colormap maps a normalized value in [0, 1] to a color by blending evenly
// spaced stops in CIE L*a*b* space.
type Colormap struct {
	Name  string
	stops []colorful.Color
}

// Sequential colormaps, ColorBrewer ramps from light to dark.
var (
	Reds   = newColormap("reds", "#fff5f0", "#fcbba1", "#fb6a4a", "#cb181d", "#67000d")
	Blues  = newColormap("blues", "#f7fbff", "#c6dbef", "#6baed6", "#2171b5", "#08306b")
	Greens = newColormap("greens", "#f7fcf5", "#c7e9c0", "#74c476", "#238b45", "#00441b")
	Greys  = newColormap("greys", "#ffffff", "#d9d9d9", "#969696", "#525252", "#000000")
)

// Colormaps lists the built-in colormaps in cycling order.
var Colormaps = []Colormap{Reds, Blues, Greens, Greys}

func newColormap(name string, hexes ...string) Colormap {
	stops := make([]colorful.Color, len(hexes))
	for i, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			panic(err)
		}
		stops[i] = c
	}
	return Colormap{Name: name, stops: stops}
}

// LookupColormap returns the colormap with the given name.
func LookupColormap(name string) (Colormap, error) {
	for _, m := range Colormaps {
		if m.Name == name {
			return m, nil
		}
	}
	names := make([]string, len(Colormaps))
	for i, m := range Colormaps {
		names[i] = m.Name
	}
	sort.Strings(names)
	return Colormap{}, errors.New(errors.ErrCodeInvalidInput, "unknown colormap %q (one of %v)", name, names)
}

// At returns the hex color for t. Values outside [0, 1] are clamped; NaN maps
// to the first stop.
func (m Colormap) At(t float64) string {
	if len(m.stops) == 0 {
		return "#000000"
	}
	if math.IsNaN(t) || t <= 0 {
		return m.stops[0].Hex()
	}
	if t >= 1 {
		return m.stops[len(m.stops)-1].Hex()
	}
	seg := t * float64(len(m.stops)-1)
	i := int(seg)
	return m.stops[i].BlendLab(m.stops[i+1], seg-float64(i)).Clamped().Hex()
}
