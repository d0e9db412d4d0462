package gasket

// Verdict is the outcome of validating one candidate circle.
type Verdict int

const (
	// Accepted means the candidate joins the packing.
	Accepted Verdict = iota

	// RejectedDegenerate means the radius is below the minimum. This is the
	// trivial root that reproduces a vanishing or infinite circle.
	RejectedDegenerate

	// RejectedDuplicate means an equal circle is already in the set.
	RejectedDuplicate

	// RejectedNotTangent means the candidate misses at least one circle of
	// the generating triplet (the wrong center branch).
	RejectedNotTangent
)

// String implements fmt.Stringer.
func (v Verdict) String() string {
	switch v {
	case Accepted:
		return "Accepted"
	case RejectedDegenerate:
		return "RejectedDegenerate"
	case RejectedDuplicate:
		return "RejectedDuplicate"
	case RejectedNotTangent:
		return "RejectedNotTangent"
	default:
		return "Verdict(?)"
	}
}

// Validator filters candidate circles.
//
// Rules are applied in order and the first failure decides:
//  1. radius < MinRadius                      -> RejectedDegenerate
//  2. set contains an equal circle (Epsilon)  -> RejectedDuplicate
//  3. not tangent to every triplet circle     -> RejectedNotTangent
//
// Validate has no side effects; adding accepted circles is the caller's job.
type Validator struct {
	// Epsilon is the absolute tolerance for the duplicate and tangency rules.
	Epsilon float64

	// MinRadius is the smallest radius a candidate may have.
	MinRadius float64
}

// Validate classifies candidate c produced from triplet t against set.
// A nil set skips the duplicate rule.
func (v Validator) Validate(c Circle, set Index, t Triplet) Verdict {
	// NaN radii fail this comparison and are treated as degenerate.
	if !(c.r >= v.MinRadius) {
		return RejectedDegenerate
	}
	if set != nil && set.Contains(c, v.Epsilon) {
		return RejectedDuplicate
	}
	for _, parent := range t {
		if !Tangent(c, parent, v.Epsilon) {
			return RejectedNotTangent
		}
	}
	return Accepted
}

// Accept reports whether Validate returns Accepted.
func (v Validator) Accept(c Circle, set Index, t Triplet) bool {
	return v.Validate(c, set, t) == Accepted
}
