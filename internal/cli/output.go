package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/circos/pkg/errors"
	"github.com/matzehuels/circos/pkg/pipeline"
)

// nopCloser wraps an io.Writer with a no-op Close method.
type nopCloser struct{ io.Writer }

// Close implements io.Closer with a no-op.
func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path.
// If path is "-", it returns os.Stdout wrapped in nopCloser.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "-" {
		return nopCloser{os.Stdout}, nil
	}
	if err := errors.ValidateOutputPath(path); err != nil {
		return nil, err
	}
	return os.Create(path)
}

// knownExts are stripped from output base paths, longest first.
var knownExts = []string{".links.svg", ".layout.json", ".svg", ".png", ".pdf", ".json", ".dot"}

// basePath derives the base output path from the output and input file paths.
// Known output extensions are stripped from output; an empty output strips the
// input's extension (and a trailing ".layout" from scene files).
func basePath(output, input string) string {
	if output == "" {
		base := strings.TrimSuffix(input, filepath.Ext(input))
		return strings.TrimSuffix(base, ".layout")
	}
	for _, ext := range knownExts {
		if strings.HasSuffix(output, ext) {
			return strings.TrimSuffix(output, ext)
		}
	}
	return output
}

// outputPaths maps each format to its file. A single format with an explicit
// output is written exactly there.
func outputPaths(formats []string, input, output string) map[string]string {
	paths := make(map[string]string, len(formats))
	if len(formats) == 1 && output != "" {
		paths[formats[0]] = output
		return paths
	}
	base := basePath(output, input)
	for _, f := range formats {
		paths[f] = base + pipeline.Extensions[f]
	}
	return paths
}

type artifactWriteParams struct {
	artifacts map[string][]byte
	formats   []string
	input     string
	output    string
	cacheHit  bool
	sectors   int
	links     int
}

// writeArtifacts writes every rendered format and prints a summary.
func writeArtifacts(p artifactWriteParams) error {
	paths := outputPaths(p.formats, p.input, p.output)
	for _, format := range p.formats {
		path := paths[format]
		if err := writeFile(path, p.artifacts[format]); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}

	printSuccess("Render complete")
	for _, format := range p.formats {
		if paths[format] != "-" {
			printFile(paths[format])
		}
	}
	printStats(p.sectors, p.links, p.cacheHit)
	return nil
}

func writeFile(path string, data []byte) error {
	out, err := openOutput(path)
	if err != nil {
		return err
	}
	if _, err := out.Write(data); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
