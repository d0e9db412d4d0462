package gasket

import (
	"errors"
	"fmt"
)

// ErrInvalidOption is returned by New when an option value is out of range.
var ErrInvalidOption = errors.New("gasket: invalid option")

// Default tolerances, as fractions of the packing span.
const (
	// DefaultToleranceRatio makes epsilon 0.1% of the span.
	DefaultToleranceRatio = 1.0 / 1000

	// DefaultMinRadiusRatio rejects circles smaller than twice epsilon.
	DefaultMinRadiusRatio = 2.0 / 1000
)

// Option configures a Packing during creation.
//
// Example:
//
//	// Default tolerances relative to the seed's outer circle
//	p, err := gasket.New(seed)
//
//	// Coarser packing that stops earlier
//	p, err := gasket.New(seed, gasket.WithMinRadiusRatio(0.01))
type Option func(*options)

// options holds optional configuration for Packing creation.
type options struct {
	toleranceRatio float64
	minRadiusRatio float64
	span           float64
	maxCircles     int
	onAccept       func(Circle, Triplet)
}

// defaultOptions returns the default packing options.
func defaultOptions() options {
	return options{
		toleranceRatio: DefaultToleranceRatio,
		minRadiusRatio: DefaultMinRadiusRatio,
		span:           0, // derived from the seed if zero
	}
}

// validate checks option ranges.
func (o options) validate() error {
	if !(o.toleranceRatio > 0) || !isFinite(o.toleranceRatio) {
		return fmt.Errorf("%w: tolerance ratio %v", ErrInvalidOption, o.toleranceRatio)
	}
	if !(o.minRadiusRatio > 0) || !isFinite(o.minRadiusRatio) {
		return fmt.Errorf("%w: min radius ratio %v", ErrInvalidOption, o.minRadiusRatio)
	}
	if o.span < 0 || !isFinite(o.span) {
		return fmt.Errorf("%w: span %v", ErrInvalidOption, o.span)
	}
	if o.maxCircles < 0 {
		return fmt.Errorf("%w: max circles %d", ErrInvalidOption, o.maxCircles)
	}
	return nil
}

// WithToleranceRatio sets epsilon, the tolerance of the duplicate and
// tangency rules, as a fraction of the span. Rescaling the seed then keeps
// the same set of accepted circles.
func WithToleranceRatio(r float64) Option {
	return func(o *options) {
		o.toleranceRatio = r
	}
}

// WithMinRadiusRatio sets the degenerate-size threshold as a fraction of
// the span. Smaller values produce deeper packings.
func WithMinRadiusRatio(r float64) Option {
	return func(o *options) {
		o.minRadiusRatio = r
	}
}

// WithSpan overrides the coordinate span the ratios apply to. By default
// it is the diameter of the largest seed circle.
func WithSpan(span float64) Option {
	return func(o *options) {
		o.span = span
	}
}

// WithMaxCircles caps the size of the circle set. Once the cap is reached
// no further candidates are examined and the frontier drains.
// Zero means no cap.
func WithMaxCircles(n int) Option {
	return func(o *options) {
		o.maxCircles = n
	}
}

// WithOnAccept registers a hook called after each accepted circle with the
// circle and the triplet that produced it.
//
// Calling Step from the hook returns ErrReentrantStep.
func WithOnAccept(fn func(c Circle, parents Triplet)) Option {
	return func(o *options) {
		o.onAccept = fn
	}
}
