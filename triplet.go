package gasket

// Triplet is three mutually tangent circles that seed one expansion.
// Order carries no meaning.
type Triplet [3]Circle

// NewTriplet groups three circles. Tangency is not verified.
func NewTriplet(a, b, c Circle) Triplet {
	return Triplet{a, b, c}
}

// Children returns the triplets formed by c and each pair of t's circles:
// {t0, t1, c}, {t0, t2, c} and {t1, t2, c}.
func (t Triplet) Children(c Circle) [3]Triplet {
	return [3]Triplet{
		{t[0], t[1], c},
		{t[0], t[2], c},
		{t[1], t[2], c},
	}
}

// Outer returns the circle with the largest radius.
func (t Triplet) Outer() Circle {
	outer := t[0]
	for _, c := range t[1:] {
		if c.r > outer.r {
			outer = c
		}
	}
	return outer
}
