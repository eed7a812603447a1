package figure

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/circos/pkg/errors"
)

// Description formats.
const (
	FormatTOML = "toml"
	FormatJSON = "json"
)

// FormatFromPath picks the description format from a file extension.
func FormatFromPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unknown figure extension %q (want .toml or .json)", filepath.Ext(path))
}

// FormatFromContentType maps an HTTP content type to a description format.
// Anything that is not TOML is treated as JSON.
func FormatFromContentType(ct string) string {
	ct = strings.ToLower(ct)
	if strings.Contains(ct, "toml") {
		return FormatTOML
	}
	return FormatJSON
}

// Parse decodes a figure description. Unknown keys are rejected so typos do
// not silently fall back to defaults.
func Parse(data []byte, format string) (*Figure, error) {
	var f Figure
	switch format {
	case FormatTOML:
		md, err := toml.Decode(string(data), &f)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFigure, err, "parse toml")
		}
		if und := md.Undecoded(); len(und) > 0 {
			keys := make([]string, len(und))
			for i, k := range und {
				keys[i] = k.String()
			}
			return nil, errors.New(errors.ErrCodeInvalidFigure, "unknown keys: %s", strings.Join(keys, ", "))
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&f); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFigure, err, "parse json")
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown figure format %q", format)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// ReadFile reads and parses a figure file, choosing the format by extension.
func ReadFile(path string) (*Figure, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "read %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "read %s", path)
	}
	return Parse(data, format)
}

// Validate checks the figure's structure. Geometry errors (overflowing
// interspaces, anchors past a sector end) surface from [Build].
func (f *Figure) Validate() error {
	if len(f.Sectors) == 0 {
		return errors.New(errors.ErrCodeInvalidFigure, "figure must contain at least one sector")
	}
	if f.Canvas.Size < 0 || f.Canvas.Margin < 0 || f.Canvas.RMax < 0 {
		return errors.New(errors.ErrCodeInvalidRange, "canvas size, margin and rmax must be non-negative")
	}
	for i, t := range f.Tracks {
		if t.Kind == "" {
			return errors.New(errors.ErrCodeInvalidFigure, "track %d: kind is required", i)
		}
		if t.Sector == "" {
			return errors.New(errors.ErrCodeInvalidFigure, "track %d: sector is required", i)
		}
	}
	for i, c := range f.Chords {
		if c.A.Sector == "" || c.B.Sector == "" {
			return errors.New(errors.ErrCodeInvalidFigure, "chord %d: both ends need a sector", i)
		}
	}
	return nil
}
