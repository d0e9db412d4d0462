package draw

import (
	"math"

	"github.com/gogpu/gasket"
)

// Frame maps gasket coordinates to pixels. Origin lands on pixel (0, 0)
// and a distance of Span covers the shorter side of the target.
type Frame struct {
	Origin gasket.Point
	Span   float64
}

// FrameOf returns the frame that fits the bounding box of p's outer circle.
func FrameOf(p *gasket.Packing) Frame {
	origin, span := p.Bounds()
	return Frame{Origin: origin, Span: span}
}

// scale returns pixels per gasket unit for a width×height target.
func (f Frame) scale(width, height int) float64 {
	return float64(min(width, height)) / f.Span
}

// project maps a circle to pixel center and radius.
func (f Frame) project(c gasket.Circle, scale float64) (x, y, r float64) {
	p := c.Point().Sub(f.Origin).Mul(scale)
	return p.X, p.Y, c.Radius() * scale
}

func (f Frame) valid() bool {
	return f.Span > 0 && !math.IsInf(f.Span, 0) && f.Origin.IsFinite()
}
