package gasket

import (
	"errors"
	"math"
	"testing"
)

func almostEqual(a, b, epsilon float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestNewCircle(t *testing.T) {
	tests := []struct {
		name    string
		k, x, y float64
		radius  float64
		wantErr error
	}{
		{name: "positive", k: 0.25, x: 1, y: 2, radius: 4},
		{name: "bounding", k: -0.5, x: 0, y: 0, radius: 2},
		{name: "zero curvature", k: 0, wantErr: ErrZeroCurvature},
		{name: "NaN curvature", k: math.NaN(), wantErr: ErrNonFinite},
		{name: "infinite curvature", k: math.Inf(1), wantErr: ErrNonFinite},
		{name: "NaN center", k: 1, x: math.NaN(), wantErr: ErrNonFinite},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewCircle(tt.k, tt.x, tt.y)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("NewCircle error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewCircle: %v", err)
			}
			if c.Radius() != tt.radius {
				t.Errorf("Radius() = %v, want %v", c.Radius(), tt.radius)
			}
			if got := c.Radius() * math.Abs(c.Curvature()); !almostEqual(got, 1, 1e-12) {
				t.Errorf("r·|k| = %v, want 1", got)
			}
			if c.Point() != Pt(tt.x, tt.y) {
				t.Errorf("Point() = %v, want (%v, %v)", c.Point(), tt.x, tt.y)
			}
			if c.IsBounding() != (tt.k < 0) {
				t.Errorf("IsBounding() = %v for k=%v", c.IsBounding(), tt.k)
			}
			if !c.IsValid() {
				t.Error("IsValid() = false for a constructed circle")
			}
		})
	}
}

func TestMustCirclePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustCircle(0, ...) did not panic")
		}
	}()
	MustCircle(0, 0, 0)
}

func TestZeroCircleInvalid(t *testing.T) {
	var c Circle
	if c.IsValid() {
		t.Error("zero Circle reports valid")
	}
}

func TestTangency(t *testing.T) {
	const eps = 1e-9

	outer := MustCircle(-1.0/2, 0, 0) // r = 2
	left := MustCircle(1, -1, 0)      // r = 1, touches outer inside
	right := MustCircle(1, 1, 0)      // r = 1, touches left outside
	apart := MustCircle(4, 5, 5)      // far away

	tests := []struct {
		name string
		a, b Circle
		want TangencyKind
	}{
		{"external", left, right, External},
		{"internal", outer, left, Internal},
		{"internal reversed", right, outer, Internal},
		{"disjoint", left, apart, NotTangent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Tangency(tt.a, tt.b, eps); got != tt.want {
				t.Errorf("Tangency = %v, want %v", got, tt.want)
			}
			if got := Tangent(tt.a, tt.b, eps); got != (tt.want != NotTangent) {
				t.Errorf("Tangent = %v", got)
			}
		})
	}
}

func TestTangencyTolerance(t *testing.T) {
	a := MustCircle(1, 0, 0)
	b := MustCircle(1, 2.01, 0) // gap of 0.01

	if Tangent(a, b, 0.001) {
		t.Error("gap of 0.01 accepted with eps 0.001")
	}
	if !Tangent(a, b, 0.1) {
		t.Error("gap of 0.01 rejected with eps 0.1")
	}
}

func TestDistance(t *testing.T) {
	a := MustCircle(1, 0, 0)
	b := MustCircle(1, 3, 4)
	if got := Distance(a, b); !almostEqual(got, 5, 1e-12) {
		t.Errorf("Distance = %v, want 5", got)
	}
}
