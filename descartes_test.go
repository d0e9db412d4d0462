package gasket

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"
)

// scenarioSeed is the 400×400 canvas seed: outer k=-1/200 at (200, 200),
// inner k=1/100 at (100, 200) and (300, 200).
func scenarioSeed() Triplet {
	return NewTriplet(
		MustCircle(-1.0/200, 200, 200),
		MustCircle(1.0/100, 100, 200),
		MustCircle(1.0/100, 300, 200),
	)
}

func TestDescartes(t *testing.T) {
	tests := []struct {
		name       string
		k1, k2, k3 float64
		pos, neg   float64
	}{
		// (-1, 2, 2) has a zero radicand: both solutions are 3.
		{"symmetric seed", -1, 2, 2, 3, 3},
		{"(-1, 2, 3)", -1, 2, 3, 6, 2},
		{"(2, 2, 3)", 2, 2, 3, 15, -1},
		{"equal unit circles", 1, 1, 1, 3 + 2*math.Sqrt(3), 3 - 2*math.Sqrt(3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Descartes(
				MustCircle(tt.k1, 0, 0),
				MustCircle(tt.k2, 0, 0),
				MustCircle(tt.k3, 0, 0),
			)
			if !almostEqual(got.Positive, tt.pos, 1e-12) || !almostEqual(got.Negative, tt.neg, 1e-12) {
				t.Errorf("Descartes = %+v, want {%v %v}", got, tt.pos, tt.neg)
			}
		})
	}
}

func TestDescartesClampsNegativeRadicand(t *testing.T) {
	// k1k2 + k2k3 + k1k3 is slightly negative: rounding on a tangent triplet.
	got := Descartes(
		MustCircle(-1, 0, 0),
		MustCircle(2, 0, 0),
		MustCircle(2-1e-12, 0, 0),
	)
	if math.IsNaN(got.Positive) || math.IsNaN(got.Negative) {
		t.Fatalf("Descartes produced NaN: %+v", got)
	}
	if got.Positive != got.Negative {
		t.Errorf("clamped radicand should give equal roots, got %+v", got)
	}
}

func TestComplexDescartesScenario(t *testing.T) {
	seed := scenarioSeed()
	k := Descartes(seed[0], seed[1], seed[2])
	if !almostEqual(k.Positive, 3.0/200, 1e-15) {
		t.Fatalf("k+ = %v, want 3/200", k.Positive)
	}

	z, err := ComplexDescartes(seed[0], seed[1], seed[2], k)
	if err != nil {
		t.Fatalf("ComplexDescartes: %v", err)
	}

	// The principal branch decides the order; only the pair is fixed.
	want := []complex128{complex(200, 200+400.0/3), complex(200, 200-400.0/3)}
	for _, w := range want {
		if !containsCenter(z.Positive[:], w, 1e-9) {
			t.Errorf("Positive = %v, missing %v", z.Positive, w)
		}
	}
}

func containsCenter(zs []complex128, want complex128, tol float64) bool {
	for _, z := range zs {
		if cmplx.Abs(z-want) < tol {
			return true
		}
	}
	return false
}

func TestComplexDescartesZeroCurvature(t *testing.T) {
	seed := scenarioSeed()
	_, err := ComplexDescartes(seed[0], seed[1], seed[2], Curvatures{Positive: 1, Negative: 0})
	if !errors.Is(err, ErrZeroCurvature) {
		t.Errorf("error = %v, want ErrZeroCurvature", err)
	}
}

func TestGenerateCirclesOrder(t *testing.T) {
	k := Curvatures{Positive: 2, Negative: -4}
	z := Centers{
		Positive: [2]complex128{1, 2},
		Negative: [2]complex128{3, 4},
	}
	got := GenerateCircles(k, z)

	want := []struct {
		k float64
		z complex128
	}{
		{2, 1}, {2, 2}, {-4, 3}, {-4, 4},
	}
	for i, c := range got {
		if c.Curvature() != want[i].k || c.Center() != want[i].z {
			t.Errorf("candidate %d = %v, want k=%v z=%v", i, c, want[i].k, want[i].z)
		}
	}
	if got[2].Radius() != 0.25 {
		t.Errorf("negative curvature radius = %v, want 0.25", got[2].Radius())
	}
}

// TestCandidatesTangencyLaw checks that for every triplet of a few levels at
// least one center branch per curvature is tangent to all three parents.
func TestCandidatesTangencyLaw(t *testing.T) {
	seed, err := CanvasSeed(960)
	if err != nil {
		t.Fatal(err)
	}
	p, err := New(seed)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := p.Steps(3); err != nil {
		t.Fatal(err)
	}

	eps := p.Epsilon()
	for _, tr := range p.Frontier() {
		candidates, err := Candidates(tr)
		if err != nil {
			t.Fatalf("Candidates: %v", err)
		}
		for pair := 0; pair < 2; pair++ {
			ok := false
			for _, c := range candidates[2*pair : 2*pair+2] {
				if Tangent(c, tr[0], eps) && Tangent(c, tr[1], eps) && Tangent(c, tr[2], eps) {
					ok = true
				}
			}
			if !ok {
				t.Errorf("no tangent branch for curvature pair %d of %v", pair, tr)
			}
		}
	}
}

func TestDescartesResidual(t *testing.T) {
	quad := []Circle{
		MustCircle(-1, 0, 0),
		MustCircle(2, 0, 0),
		MustCircle(2, 0, 0),
		MustCircle(3, 0, 0),
	}
	if r := DescartesResidual(quad[0], quad[1], quad[2], quad[3]); r > 1e-15 {
		t.Errorf("residual of (-1, 2, 2, 3) = %v, want 0", r)
	}

	// (Σk)² = 49 against 2Σk² = 50.
	near := MustCircle(4, 0, 0)
	if r := DescartesResidual(quad[0], quad[1], quad[2], near); !almostEqual(r, 0.02, 1e-12) {
		t.Errorf("residual of (-1, 2, 2, 4) = %v, want 0.02", r)
	}

	// (Σk)² = 169 against 2Σk² = 218.
	far := MustCircle(10, 0, 0)
	if r := DescartesResidual(quad[0], quad[1], quad[2], far); !almostEqual(r, 49.0/218, 1e-12) {
		t.Errorf("residual of (-1, 2, 2, 10) = %v, want 49/218", r)
	}
}
