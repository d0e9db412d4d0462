package gasket

import (
	"fmt"
	"log/slog"
)

// StepStats summarises one subdivision step.
type StepStats struct {
	Depth      int  // depth reached by the step (1 for the first step)
	Triplets   int  // frontier triplets expanded
	Candidates int  // candidates generated (4 per expanded triplet)
	Accepted   int  // candidates added to the packing
	Degenerate int  // rejected: radius below the minimum
	Duplicate  int  // rejected: already present
	NotTangent int  // rejected: wrong center branch
	Frontier   int  // size of the next frontier
	Circles    int  // total circles after the step
	Capped     bool // the circle cap cut the step short
}

// Rejected returns the number of rejected candidates.
func (s StepStats) Rejected() int {
	return s.Degenerate + s.Duplicate + s.NotTangent
}

// record counts one verdict.
func (s *StepStats) record(v Verdict) {
	switch v {
	case Accepted:
		s.Accepted++
	case RejectedDegenerate:
		s.Degenerate++
	case RejectedDuplicate:
		s.Duplicate++
	case RejectedNotTangent:
		s.NotTangent++
	}
}

// String implements fmt.Stringer.
func (s StepStats) String() string {
	return fmt.Sprintf("depth=%d triplets=%d accepted=%d rejected=%d (degenerate=%d duplicate=%d not-tangent=%d) frontier=%d circles=%d",
		s.Depth, s.Triplets, s.Accepted, s.Rejected(), s.Degenerate, s.Duplicate, s.NotTangent, s.Frontier, s.Circles)
}

// LogValue implements slog.LogValuer.
func (s StepStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("depth", s.Depth),
		slog.Int("triplets", s.Triplets),
		slog.Int("accepted", s.Accepted),
		slog.Int("degenerate", s.Degenerate),
		slog.Int("duplicate", s.Duplicate),
		slog.Int("not_tangent", s.NotTangent),
		slog.Int("frontier", s.Frontier),
		slog.Int("circles", s.Circles),
		slog.Bool("capped", s.Capped),
	)
}
