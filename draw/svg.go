// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package draw

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/gogpu/gasket"
	"github.com/gogpu/gg"
)

// WriteSVG writes circles as a width×height SVG document, one <circle>
// element per circle, outlined with the style's stroke colour and width.
// Labels are not emitted.
func WriteSVG(w io.Writer, width, height int, frame Frame, style Style, circles []gasket.Circle) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	if !frame.valid() {
		return fmt.Errorf("%w: frame span %v", ErrInvalidSize, frame.Span)
	}

	bw := bufio.NewWriter(w)
	scale := frame.scale(width, height)

	fmt.Fprintf(bw, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" version="1.1" width="%d" height="%d" viewBox="0 0 %d %d">
`, width, height, width, height)
	fmt.Fprintf(bw, `<rect width="100%%" height="100%%" fill="%s"/>
`, svgColor(style.Background))

	fill := "none"
	if style.Fill.A > 0 {
		fill = svgColor(style.Fill)
	}
	fmt.Fprintf(bw, `<g stroke="%s" stroke-width="%g" fill="none">
`, svgColor(style.Stroke), style.LineWidth)
	for _, c := range circles {
		x, y, r := frame.project(c, scale)
		if c.IsBounding() || fill == "none" {
			fmt.Fprintf(bw, `<circle cx="%.3f" cy="%.3f" r="%.3f"/>
`, x, y, r)
			continue
		}
		fmt.Fprintf(bw, `<circle cx="%.3f" cy="%.3f" r="%.3f" fill="%s"/>
`, x, y, r, fill)
	}
	fmt.Fprint(bw, "</g>\n</svg>\n")

	// bufio keeps the first write error and reports it here.
	return bw.Flush()
}

// svgColor formats c as #rrggbb, or #rrggbbaa when it is not opaque.
func svgColor(c gg.RGBA) string {
	r, g, b, a := channel(c.R), channel(c.G), channel(c.B), channel(c.A)
	if a == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", r, g, b)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", r, g, b, a)
}

func channel(x float64) uint8 {
	return uint8(math.Round(max(0, min(1, x)) * 255))
}
