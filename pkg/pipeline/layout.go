package pipeline

import (
	"github.com/matzehuels/circos/pkg/core/render/canvas"
	"github.com/matzehuels/circos/pkg/figure"
	"github.com/matzehuels/circos/pkg/scene"
)

// =============================================================================
// Layout Generation
// =============================================================================

// GenerateLayout builds fig into a scene.
//
// The scene carries the solved sector table, the chord link table and every
// primitive in draw order, so rendering never needs the figure again.
func GenerateLayout(fig *figure.Figure, opts Options) (scene.Scene, error) {
	res, err := figure.Build(fig, figure.Bounds{StartDeg: opts.StartDeg, EndDeg: opts.EndDeg})
	if err != nil {
		return scene.Scene{}, err
	}
	sectors, err := scene.SectorTable(res.Registry)
	if err != nil {
		return scene.Scene{}, err
	}
	start, end := res.Registry.Bounds()

	s := scene.Scene{
		Size:       pick(opts.Width, fig.Canvas.Size, canvas.DefaultSize),
		Margin:     pick(opts.Margin, fig.Canvas.Margin, canvas.DefaultMargin),
		RMax:       pick(opts.RMax, fig.Canvas.RMax, canvas.DefaultRMax),
		Background: fig.Canvas.Background,
		Start:      start,
		End:        end,
		Sectors:    sectors,
		Links:      res.Links,
		Items:      res.Items,
	}
	if err := s.Validate(); err != nil {
		return scene.Scene{}, err
	}

	opts.Logger.Debug("built scene",
		"sectors", len(s.Sectors),
		"chords", res.Chords,
		"skipped", res.Skipped,
		"items", len(s.Items))
	return s, nil
}

// pick returns the first positive value.
func pick(vals ...float64) float64 {
	for _, v := range vals {
		if v > 0 {
			return v
		}
	}
	return 0
}
