// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gasket

import (
	"fmt"
	"math"
	"math/cmplx"
)

// Curvatures holds the two real solutions of Descartes' Circle Theorem for
// a triplet: k1 + k2 + k3 ± 2·sqrt(k1k2 + k2k3 + k1k3).
type Curvatures struct {
	Positive float64 // root taken with +2·sqrt
	Negative float64 // root taken with -2·sqrt
}

// Descartes returns the curvatures of the two circles tangent to c1, c2
// and c3.
//
// The radicand is non-negative for tangent input; a negative value can only
// come from rounding and is clamped to zero.
func Descartes(c1, c2, c3 Circle) Curvatures {
	k1, k2, k3 := c1.k, c2.k, c3.k

	sum := k1 + k2 + k3
	radicand := k1*k2 + k2*k3 + k1*k3
	if radicand < 0 {
		radicand = 0
	}
	root := 2 * math.Sqrt(radicand)

	return Curvatures{Positive: sum + root, Negative: sum - root}
}

// Centers holds the candidate centers from the Complex Descartes Theorem:
// for each curvature solution, both square-root branches.
type Centers struct {
	Positive [2]complex128 // centers for Curvatures.Positive
	Negative [2]complex128 // centers for Curvatures.Negative
}

// ComplexDescartes returns the candidate centers of the circles tangent to
// c1, c2 and c3 with curvatures k.
//
// With S = k1z1 + k2z2 + k3z3 and R = 2·sqrt(k1z1·k2z2 + k2z2·k3z3 + k1z1·k3z3)
// (principal branch), the centers are (S+R)/k4 and (S-R)/k4 for each k4.
// Which branch belongs to which curvature is not decided here; all four
// combinations are returned and the Validator filters them.
//
// Returns ErrZeroCurvature if either curvature in k is exactly zero.
func ComplexDescartes(c1, c2, c3 Circle, k Curvatures) (Centers, error) {
	if k.Positive == 0 || k.Negative == 0 {
		return Centers{}, fmt.Errorf("%w: k4 = (%g, %g)", ErrZeroCurvature, k.Positive, k.Negative)
	}

	zk1 := complex(c1.k, 0) * c1.center
	zk2 := complex(c2.k, 0) * c2.center
	zk3 := complex(c3.k, 0) * c3.center

	sum := zk1 + zk2 + zk3
	root := 2 * cmplx.Sqrt(zk1*zk2+zk2*zk3+zk1*zk3)

	kp := complex(k.Positive, 0)
	kn := complex(k.Negative, 0)

	return Centers{
		Positive: [2]complex128{(sum + root) / kp, (sum - root) / kp},
		Negative: [2]complex128{(sum + root) / kn, (sum - root) / kn},
	}, nil
}

// GenerateCircles pairs curvatures with centers into the four candidate
// circles, in order: (k+, Positive[0]), (k+, Positive[1]),
// (k-, Negative[0]), (k-, Negative[1]).
//
// No validation is performed. k must come from Descartes and z from
// ComplexDescartes with the same k, which guarantees non-zero curvatures.
func GenerateCircles(k Curvatures, z Centers) [4]Circle {
	return [4]Circle{
		newCircle(k.Positive, z.Positive[0]),
		newCircle(k.Positive, z.Positive[1]),
		newCircle(k.Negative, z.Negative[0]),
		newCircle(k.Negative, z.Negative[1]),
	}
}

// Candidates runs the Descartes, Complex Descartes and generator stages for
// t and returns the four unvalidated candidates.
func Candidates(t Triplet) ([4]Circle, error) {
	k := Descartes(t[0], t[1], t[2])
	z, err := ComplexDescartes(t[0], t[1], t[2], k)
	if err != nil {
		return [4]Circle{}, err
	}
	return GenerateCircles(k, z), nil
}

// DescartesResidual returns the relative error of Descartes' theorem
// (k1+k2+k3+k4)^2 = 2(k1^2+k2^2+k3^2+k4^2) for four circles.
// Mutually tangent quadruples give a value near zero.
func DescartesResidual(a, b, c, d Circle) float64 {
	sum := a.k + b.k + c.k + d.k
	squares := a.k*a.k + b.k*b.k + c.k*c.k + d.k*d.k

	lhs := sum * sum
	rhs := 2 * squares
	scale := math.Max(math.Abs(lhs), math.Abs(rhs))
	if scale == 0 {
		return 0
	}
	return math.Abs(lhs-rhs) / scale
}
