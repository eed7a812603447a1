package palette

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/circos/pkg/errors"
)

// None is the keyword for "no paint".
const None = "none"

// Parse converts a color specification into a non-premultiplied RGBA value.
//
// Accepted forms are named colors (see [Named]), "#rgb", "#rrggbb",
// "#rrggbbaa" and "none". The trailing byte of the 8-digit form is alpha.
func Parse(s string) (color.NRGBA, error) {
	spec := strings.ToLower(strings.TrimSpace(Resolve(s)))
	if spec == None {
		return color.NRGBA{}, nil
	}
	if !strings.HasPrefix(spec, "#") {
		return color.NRGBA{}, errors.New(errors.ErrCodeInvalidColor, "unknown color %q", s)
	}

	alpha := uint8(255)
	switch len(spec) {
	case 4, 7:
	case 9:
		a, err := strconv.ParseUint(spec[7:], 16, 8)
		if err != nil {
			return color.NRGBA{}, errors.Wrap(errors.ErrCodeInvalidColor, err, "invalid alpha in %q", s)
		}
		alpha = uint8(a)
		spec = spec[:7]
	default:
		return color.NRGBA{}, errors.New(errors.ErrCodeInvalidColor, "invalid hex color %q", s)
	}

	c, err := colorful.Hex(spec)
	if err != nil {
		return color.NRGBA{}, errors.Wrap(errors.ErrCodeInvalidColor, err, "invalid hex color %q", s)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alpha}, nil
}

// MustParse is like [Parse] but panics on error. Intended for package-level
// tables of known-good colors.
func MustParse(s string) color.NRGBA {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Validate reports whether s is an acceptable color. Empty strings are
// accepted and mean "use the default".
func Validate(s string) error {
	if s == "" {
		return nil
	}
	_, err := Parse(s)
	return err
}

// Paint splits c into an SVG paint value and opacity. Fully transparent
// colors render as "none".
func Paint(c color.NRGBA) (string, float64) {
	if c.A == 0 {
		return None, 0
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B), float64(c.A) / 255
}

// WithAlpha appends a two-digit alpha suffix to a 6-digit hex color. Colors
// that already carry alpha, or are not 6-digit hex, are returned unchanged.
func WithAlpha(hex, alpha string) string {
	if len(hex) == 7 && strings.HasPrefix(hex, "#") {
		return hex + alpha
	}
	return hex
}
