package draw

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gogpu/gg"
)

// ErrInvalidColor is returned by ParseColor for malformed hex strings.
var ErrInvalidColor = errors.New("draw: invalid color")

// Style controls how circles are painted.
type Style struct {
	Background gg.RGBA
	Stroke     gg.RGBA

	// Fill paints the inside of every non-bounding circle. A zero alpha
	// skips the fill pass.
	Fill gg.RGBA

	// LineWidth is the stroke width in pixels.
	LineWidth float64

	// Labels prints the normalised curvature inside circles whose pixel
	// radius is at least LabelMinRadius.
	Labels         bool
	LabelMinRadius float64
	FontSize       float64
	LabelColor     gg.RGBA
}

// DefaultStyle returns black 1px outlines on white, no fill and no labels.
func DefaultStyle() Style {
	return Style{
		Background:     gg.White,
		Stroke:         gg.Black,
		Fill:           gg.Transparent,
		LineWidth:      1,
		LabelMinRadius: 12,
		FontSize:       12,
		LabelColor:     gg.Black,
	}
}

// ParseColor parses "#rgb", "#rgba", "#rrggbb" or "#rrggbbaa"; the leading
// '#' is optional.
//
// Unlike gg.Hex it rejects malformed input instead of defaulting to black.
func ParseColor(s string) (gg.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	switch len(hex) {
	case 3, 4, 6, 8:
	default:
		return gg.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	for _, r := range hex {
		if !isHexDigit(r) {
			return gg.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
	}
	return gg.Hex(hex), nil
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}
