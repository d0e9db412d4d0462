package gasket

import (
	"errors"
	"fmt"
)

// ErrInvalidSeed is returned when seed parameters cannot describe three
// mutually tangent circles.
var ErrInvalidSeed = errors.New("gasket: invalid seed")

// CanvasSeed returns the classic seed for a square canvas of the given size:
// an outer circle of radius size/2 centered on the canvas, enclosing two
// equal circles of radius size/4 on its horizontal diameter.
//
// The normalised curvatures are (-1, 2, 2), so every circle of the packing
// has an integer curvature multiple of 2/size.
func CanvasSeed(size float64) (Triplet, error) {
	if !(size > 0) || !isFinite(size) {
		return Triplet{}, fmt.Errorf("%w: canvas size %v", ErrInvalidSeed, size)
	}
	return NewSeed(Pt(size/2, size/2), size/2, 0.5)
}

// NewSeed returns a seed bounded by a circle of the given radius around
// center. The two inner circles sit on the horizontal diameter with radii
// split·radius (left) and (1-split)·radius (right), so they touch each other
// and the outer circle.
//
// split must lie strictly between 0 and 1.
func NewSeed(center Point, radius, split float64) (Triplet, error) {
	if !(radius > 0) || !isFinite(radius) {
		return Triplet{}, fmt.Errorf("%w: radius %v", ErrInvalidSeed, radius)
	}
	if !(split > 0 && split < 1) {
		return Triplet{}, fmt.Errorf("%w: split %v not in (0, 1)", ErrInvalidSeed, split)
	}
	if !center.IsFinite() {
		return Triplet{}, fmt.Errorf("%w: center (%v, %v)", ErrInvalidSeed, center.X, center.Y)
	}

	left := split * radius
	right := radius - left

	outer, err := NewCircle(-1/radius, center.X, center.Y)
	if err != nil {
		return Triplet{}, fmt.Errorf("%w: %w", ErrInvalidSeed, err)
	}
	a, err := NewCircle(1/left, center.X-radius+left, center.Y)
	if err != nil {
		return Triplet{}, fmt.Errorf("%w: %w", ErrInvalidSeed, err)
	}
	b, err := NewCircle(1/right, center.X+radius-right, center.Y)
	if err != nil {
		return Triplet{}, fmt.Errorf("%w: %w", ErrInvalidSeed, err)
	}
	return NewTriplet(outer, a, b), nil
}
