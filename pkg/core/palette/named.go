package palette

import "strings"

// Named maps human-friendly color names to hex values.
var Named = map[string]string{
	"light red":      "#ff8a80",
	"light pink":     "#ff80ab",
	"soft magenta":   "#ea80fc",
	"light violet":   "#b388ff",
	"light blue":     "#82b1ff",
	"light cyan":     "#84ffff",
	"pale cyan":      "#a7ffeb",
	"lime green":     "#b9f6ca",
	"light green":    "#ccff90",
	"light yellow":   "#ffe57f",
	"light orange":   "#ffd180",
	"grayish red":    "#bcaaa4",
	"light gray":     "#eeeeee",
	"grayish blue":   "#b0bec5",
	"red":            "#ff5252",
	"neon pink":      "#ff4081",
	"bright magenta": "#e040fb",
	"purple":         "#7c4dff",
	"soft blue":      "#536dfe",
	"blue":           "#448aff",
	"cyan":           "#18ffff",
	"aquamarine":     "#64ffda",
	"green yellow":   "#b2ff59",
	"yellow":         "#ffff00",
	"sunglow":        "#ffcc33",
	"sandy brown":    "#f4a460",
	"cinereous":      "#98817b",
	"gainsboro":      "#e0e0e0",
	"gray":           "#90a4ae",
	"black":          "#000000",
	"white":          "#ffffff",
}

// Resolve returns the hex value for a named color, or s unchanged when it is
// not a known name. Lookups ignore case and surrounding whitespace.
func Resolve(s string) string {
	if hex, ok := Named[strings.ToLower(strings.TrimSpace(s))]; ok {
		return hex
	}
	return s
}
