package pipeline

import (
	"context"
	"fmt"

	"github.com/matzehuels/circos/pkg/core/render"
	"github.com/matzehuels/circos/pkg/core/render/nodelink"
	"github.com/matzehuels/circos/pkg/core/render/sink"
	"github.com/matzehuels/circos/pkg/scene"
)

// Render generates output artifacts in the requested formats.
func Render(ctx context.Context, s scene.Scene, opts Options) (map[string][]byte, error) {
	frame := s.Frame()
	if opts.Background != "" {
		frame.Background = opts.Background
	}

	artifacts := make(map[string][]byte)
	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data, err = sink.RenderSVG(frame, sink.WithIDs())
		case FormatPNG:
			data, err = renderPNG(ctx, frame, opts)
		case FormatPDF:
			data, err = sink.RenderPDF(ctx, frame)
		case FormatJSON:
			data, err = scene.MarshalScene(s)
		case FormatDOT:
			var dot string
			dot, err = connectivity(&s)
			data = []byte(dot)
		case FormatLinks:
			var dot string
			if dot, err = connectivity(&s); err == nil {
				data, err = nodelink.RenderSVG(ctx, dot)
			}
		default:
			err = ValidateFormat(format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

// renderPNG rasterizes in-process unless rsvg-convert is wanted and present.
func renderPNG(ctx context.Context, frame sink.Frame, opts Options) ([]byte, error) {
	if opts.Native || !render.ConverterAvailable() {
		return sink.RenderPNG(frame, opts.Scale)
	}
	svg, err := sink.RenderSVG(frame, sink.WithEmbeddedFont())
	if err != nil {
		return nil, err
	}
	return render.ToPNG(ctx, svg, opts.Scale)
}

// connectivity returns the DOT source of the scene's sector graph.
func connectivity(s *scene.Scene) (string, error) {
	g, err := nodelink.FromScene(s)
	if err != nil {
		return "", err
	}
	return nodelink.ToDOT(g, nodelink.Options{Detailed: true}), nil
}
