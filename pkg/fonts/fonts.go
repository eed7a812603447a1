// Package fonts provides the font used for figure labels.
//
// Labels are set in Go Regular, which ships with golang.org/x/image and so is
// available without system fonts. SVG output embeds it as an @font-face data
// URL; the native PNG sink draws its glyph outlines directly.
package fonts

import (
	"encoding/base64"
	"sync"

	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
)

// FontFamily is the CSS font-family name used for the embedded font.
const FontFamily = "Go Regular"

// FallbackFontFamily provides fallback fonts for viewers that ignore the
// embedded face.
const FallbackFontFamily = "Helvetica, Arial, sans-serif"

// RegularTTF returns the TrueType font data.
func RegularTTF() []byte {
	return goregular.TTF
}

var (
	ttfBase64     string
	ttfBase64Once sync.Once

	regular     *sfnt.Font
	regularErr  error
	regularOnce sync.Once
)

// RegularTTFBase64 returns the TrueType data as a base64 string. The result
// is cached after first computation.
func RegularTTFBase64() string {
	ttfBase64Once.Do(func() {
		ttfBase64 = base64.StdEncoding.EncodeToString(goregular.TTF)
	})
	return ttfBase64
}

// Regular returns the parsed font. The font is parsed once; an *sfnt.Font is
// safe for concurrent use but glyph loading needs a per-goroutine
// sfnt.Buffer.
func Regular() (*sfnt.Font, error) {
	regularOnce.Do(func() {
		regular, regularErr = sfnt.Parse(goregular.TTF)
	})
	return regular, regularErr
}
