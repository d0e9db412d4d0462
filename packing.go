// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gasket

import (
	"errors"
	"fmt"
)

// ErrReentrantStep is returned when Step is called while a step is running,
// which can only happen from an OnAccept hook.
var ErrReentrantStep = errors.New("gasket: step called during expansion")

// State is the driver state of a Packing.
type State int

const (
	// Idle means the packing waits for the next Step.
	Idle State = iota

	// Expanding means a Step is in progress.
	Expanding
)

// String implements fmt.Stringer.
func (s State) String() string {
	if s == Expanding {
		return "Expanding"
	}
	return "Idle"
}

// Packing drives the breadth-first construction of an Apollonian gasket.
//
// A Packing owns the ordered set of accepted circles and the frontier of
// triplets that may still be subdivided. Each Step expands every frontier
// triplet and replaces the frontier with the children of the circles it
// accepted. Circles are only ever appended.
//
// Packing is NOT safe for concurrent use. Rendering must read Circles
// between steps, never during one.
type Packing struct {
	validator Validator
	origin    Point
	span      float64

	circles  []Circle
	index    *gridIndex
	frontier []Triplet
	depth    int
	state    State

	maxCircles int
	onAccept   func(Circle, Triplet)
}

// New creates a packing from a seed triplet.
//
// The initial circle set is the three seed circles and the frontier holds
// the seed itself. Tolerances are derived from the span (by default the
// diameter of the largest seed circle) and the ratios set by opts.
//
// Returns ErrZeroCurvature or ErrNonFinite for an invalid seed circle and
// ErrInvalidOption for out-of-range options.
func New(seed Triplet, opts ...Option) (*Packing, error) {
	for i, c := range seed {
		if c.k == 0 {
			return nil, fmt.Errorf("gasket: seed circle %d: %w", i, ErrZeroCurvature)
		}
		if !c.IsValid() {
			return nil, fmt.Errorf("gasket: seed circle %d: %w", i, ErrNonFinite)
		}
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}

	outer := seed.Outer()
	span := 2 * outer.r
	if o.span > 0 {
		span = o.span
	}
	eps := o.toleranceRatio * span

	p := &Packing{
		validator: Validator{
			Epsilon:   eps,
			MinRadius: o.minRadiusRatio * span,
		},
		origin:     outer.Point().Sub(Pt(outer.r, outer.r)),
		span:       span,
		index:      newGridIndex(eps),
		frontier:   []Triplet{seed},
		maxCircles: o.maxCircles,
		onAccept:   o.onAccept,
	}
	for _, c := range seed {
		p.add(c)
	}

	Logger().Info("gasket: packing created",
		"span", span,
		"epsilon", eps,
		"min_radius", p.validator.MinRadius)

	return p, nil
}

// Step runs one subdivision step: Idle -> Expanding -> Idle.
//
// Every frontier triplet goes through Descartes, ComplexDescartes,
// GenerateCircles and the Validator. Accepted circles are appended at once,
// so later candidates of the same step see them as duplicates. Each accepted
// circle adds its three child triplets to the next frontier, which replaces
// the current one when the step ends. A triplet with no accepted candidate
// ends its branch.
//
// Step on a finished packing (empty frontier) does nothing.
//
// If a triplet yields a zero curvature the step is rolled back, the packing
// keeps its previous circles and frontier, and the error wraps
// ErrZeroCurvature. OnAccept hooks may already have seen rolled back circles.
func (p *Packing) Step() (StepStats, error) {
	if p.state == Expanding {
		return StepStats{}, ErrReentrantStep
	}
	if len(p.frontier) == 0 {
		return StepStats{Depth: p.depth, Circles: len(p.circles)}, nil
	}

	p.state = Expanding
	defer func() { p.state = Idle }()

	stats := StepStats{Depth: p.depth + 1}
	mark := len(p.circles)
	next := make([]Triplet, 0, 3*len(p.frontier))

expand:
	for i, t := range p.frontier {
		if p.full() {
			stats.Capped = true
			break
		}
		stats.Triplets++

		candidates, err := Candidates(t)
		if err != nil {
			p.rollback(mark)
			Logger().Warn("gasket: step aborted", "depth", stats.Depth, "triplet", i, "err", err)
			return StepStats{}, fmt.Errorf("step %d, triplet %d: %w", stats.Depth, i, err)
		}

		for _, c := range candidates {
			if p.full() {
				stats.Capped = true
				break expand
			}
			stats.Candidates++

			v := p.validator.Validate(c, p.index, t)
			stats.record(v)
			if v != Accepted {
				continue
			}

			p.add(c)
			children := t.Children(c)
			next = append(next, children[:]...)
			if p.onAccept != nil {
				p.onAccept(c, t)
			}
		}
	}

	p.frontier = next
	p.depth++

	stats.Frontier = len(next)
	stats.Circles = len(p.circles)

	Logger().Debug("gasket: step", "stats", stats)
	if len(next) == 0 {
		Logger().Info("gasket: packing complete", "depth", p.depth, "circles", len(p.circles))
	}

	return stats, nil
}

// Steps runs up to n steps, stopping early once the packing is done.
// It returns the stats of every step that ran.
func (p *Packing) Steps(n int) ([]StepStats, error) {
	all := make([]StepStats, 0, n)
	for i := 0; i < n && !p.Done(); i++ {
		s, err := p.Step()
		if err != nil {
			return all, err
		}
		all = append(all, s)
	}
	return all, nil
}

// add appends c to the ordered set and the duplicate index.
func (p *Packing) add(c Circle) {
	p.circles = append(p.circles, c)
	p.index.add(c)
}

// rollback drops circles appended after mark, newest first.
func (p *Packing) rollback(mark int) {
	for i := len(p.circles) - 1; i >= mark; i-- {
		p.index.pop(p.circles[i])
	}
	p.circles = p.circles[:mark]
}

// full reports whether the circle cap has been reached.
func (p *Packing) full() bool {
	return p.maxCircles > 0 && len(p.circles) >= p.maxCircles
}

// Circles returns the accepted circles in acceptance order, seeds first.
//
// The returned slice is a read-only view: its capacity is capped so an
// append by the caller copies instead of writing into the packing. It stays
// valid after later steps but does not grow with them.
func (p *Packing) Circles() []Circle {
	return p.circles[:len(p.circles):len(p.circles)]
}

// Frontier returns a copy of the triplets awaiting the next step.
func (p *Packing) Frontier() []Triplet {
	out := make([]Triplet, len(p.frontier))
	copy(out, p.frontier)
	return out
}

// Len returns the number of circles in the packing.
func (p *Packing) Len() int {
	return len(p.circles)
}

// Depth returns the number of completed steps.
func (p *Packing) Depth() int {
	return p.depth
}

// Done reports whether the frontier is empty, so further steps add nothing.
func (p *Packing) Done() bool {
	return len(p.frontier) == 0
}

// State returns the driver state.
func (p *Packing) State() State {
	return p.state
}

// Epsilon returns the absolute tolerance of the duplicate and tangency rules.
func (p *Packing) Epsilon() float64 {
	return p.validator.Epsilon
}

// Validator returns the validator used by Step.
func (p *Packing) Validator() Validator {
	return p.validator
}

// Bounds returns the top-left corner of the outer seed circle's bounding
// box and the span the tolerances are relative to. Without WithSpan the
// span is the side of that box.
func (p *Packing) Bounds() (origin Point, span float64) {
	return p.origin, p.span
}
