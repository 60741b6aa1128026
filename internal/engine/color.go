package engine

import (
	"fmt"
	"strings"
)

// Color identifies an anchor pair and the pipe connecting it.
type Color uint8

const (
	ColorRed Color = iota
	ColorOrange
	ColorBlue
	ColorGreen
	ColorYellow
	ColorTurquoise
	ColorPink
	ColorViolet
	ColorMaroon
	ColorCount // Sentinel value for iteration
)

var colorNames = [ColorCount]string{
	"red", "orange", "blue", "green", "yellow",
	"turquoise", "pink", "violet", "maroon",
}

// String returns the string representation of a color.
func (c Color) String() string {
	if c < ColorCount {
		return colorNames[c]
	}
	return fmt.Sprintf("color(%d)", uint8(c))
}

// Char returns a single character representation of the color for ASCII rendering.
func (c Color) Char() rune {
	switch c {
	case ColorRed:
		return 'R'
	case ColorOrange:
		return 'O'
	case ColorBlue:
		return 'B'
	case ColorGreen:
		return 'G'
	case ColorYellow:
		return 'Y'
	case ColorTurquoise:
		return 'T'
	case ColorPink:
		return 'P'
	case ColorViolet:
		return 'V'
	case ColorMaroon:
		return 'M'
	default:
		return '?'
	}
}

// ParseColor converts a name, a one-letter code or a legacy French level
// file name (ROUGE, BLEU, ...) to a Color.
// Returns ColorRed and false if the string is not recognized.
func ParseColor(s string) (Color, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "red", "r", "rouge":
		return ColorRed, true
	case "orange", "o":
		return ColorOrange, true
	case "blue", "b", "bleu":
		return ColorBlue, true
	case "green", "g", "vert":
		return ColorGreen, true
	case "yellow", "y", "jaune":
		return ColorYellow, true
	case "turquoise", "cyan", "t":
		return ColorTurquoise, true
	case "pink", "p", "rose":
		return ColorPink, true
	case "violet", "purple", "v":
		return ColorViolet, true
	case "maroon", "m", "bordeaux":
		return ColorMaroon, true
	default:
		return ColorRed, false
	}
}

// AllColors returns a slice of all named colors.
func AllColors() []Color {
	out := make([]Color, 0, ColorCount)
	for c := Color(0); c < ColorCount; c++ {
		out = append(out, c)
	}
	return out
}
