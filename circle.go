package gasket

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
)

// Construction errors.
var (
	// ErrZeroCurvature is returned when a circle would have zero curvature
	// (an infinite radius). Lines are not supported.
	ErrZeroCurvature = errors.New("gasket: zero curvature")

	// ErrNonFinite is returned when a curvature or coordinate is NaN or Inf.
	ErrNonFinite = errors.New("gasket: non-finite value")
)

// Circle is an immutable circle described by its signed curvature and its
// center in the complex plane.
//
// A negative curvature marks a bounding circle: its interior contains the
// circles tangent to it. The radius is always |1/k|.
//
// The zero Circle is invalid; use NewCircle.
type Circle struct {
	k      float64
	r      float64
	center complex128
}

// NewCircle creates a circle with curvature k centered at (x, y).
//
// Returns ErrZeroCurvature if k is zero and ErrNonFinite if any argument
// is NaN or infinite.
func NewCircle(k, x, y float64) (Circle, error) {
	if k == 0 {
		return Circle{}, ErrZeroCurvature
	}
	if !isFinite(k) || !isFinite(x) || !isFinite(y) {
		return Circle{}, fmt.Errorf("%w: k=%v center=(%v, %v)", ErrNonFinite, k, x, y)
	}
	return newCircle(k, complex(x, y)), nil
}

// MustCircle is like NewCircle but panics on error.
// Use only with constant arguments.
func MustCircle(k, x, y float64) Circle {
	c, err := NewCircle(k, x, y)
	if err != nil {
		panic(err)
	}
	return c
}

// newCircle builds a circle without validation. Callers guarantee k != 0.
func newCircle(k float64, center complex128) Circle {
	return Circle{k: k, r: math.Abs(1 / k), center: center}
}

// Curvature returns the signed curvature.
func (c Circle) Curvature() float64 {
	return c.k
}

// Radius returns the radius, always positive for a valid circle.
func (c Circle) Radius() float64 {
	return c.r
}

// Center returns the center as a complex number.
func (c Circle) Center() complex128 {
	return c.center
}

// Point returns the center as a Point.
func (c Circle) Point() Point {
	return PointOf(c.center)
}

// IsBounding reports whether the circle encloses its neighbours (k < 0).
func (c Circle) IsBounding() bool {
	return c.k < 0
}

// IsValid reports whether the circle has a finite non-zero curvature and a
// finite center.
func (c Circle) IsValid() bool {
	return c.k != 0 && isFinite(c.k) && c.Point().IsFinite()
}

// String implements fmt.Stringer.
func (c Circle) String() string {
	return fmt.Sprintf("Circle(k=%g, c=(%g, %g), r=%g)", c.k, real(c.center), imag(c.center), c.r)
}

// Distance returns the distance between the centers of a and b.
func Distance(a, b Circle) float64 {
	return cmplx.Abs(a.center - b.center)
}

// TangencyKind describes how two circles touch.
type TangencyKind int

const (
	// NotTangent means the circles do not touch within the tolerance.
	NotTangent TangencyKind = iota

	// External means the circles touch side by side: d = r1 + r2.
	External

	// Internal means one circle touches the other from inside: d = |r1 - r2|.
	Internal
)

// String implements fmt.Stringer.
func (t TangencyKind) String() string {
	switch t {
	case External:
		return "External"
	case Internal:
		return "Internal"
	default:
		return "NotTangent"
	}
}

// Tangency classifies the contact between a and b with tolerance eps.
// External tangency is checked first.
func Tangency(a, b Circle, eps float64) TangencyKind {
	d := Distance(a, b)
	if math.Abs(d-(a.r+b.r)) < eps {
		return External
	}
	if math.Abs(d-math.Abs(a.r-b.r)) < eps {
		return Internal
	}
	return NotTangent
}

// Tangent reports whether a and b touch externally or internally within eps.
func Tangent(a, b Circle, eps float64) bool {
	return Tangency(a, b, eps) != NotTangent
}
