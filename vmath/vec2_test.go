package vmath

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestVec2Basics(t *testing.T) {
	a := V(3, 4)
	if a.Len() != 5 {
		t.Errorf("Expected length 5, got %f", a.Len())
	}
	n := a.Normalize()
	if math.Abs(n.Len()-1) > eps {
		t.Errorf("Expected unit length, got %f", n.Len())
	}
	if !(Vec2{}).Normalize().IsZero() {
		t.Error("Normalize of zero vector should stay zero")
	}
	if got := a.Dist(V(0, 0)); got != 5 {
		t.Errorf("Expected distance 5, got %f", got)
	}
}

func TestSmoothstep(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{-1, 0},
		{0, 0},
		{0.5, 0.5},
		{1, 1},
		{2, 1},
	}
	for _, tt := range tests {
		if got := Smoothstep(tt.in); math.Abs(got-tt.want) > eps {
			t.Errorf("Smoothstep(%f): expected %f, got %f", tt.in, tt.want, got)
		}
	}
}

func TestDistanceToSegment(t *testing.T) {
	a, b := V(0, 0), V(10, 0)
	tests := []struct {
		p    Vec2
		want float64
	}{
		{V(5, 3), 3},
		{V(-4, 3), 5},
		{V(13, 4), 5},
		{V(5, 0), 0},
	}
	for _, tt := range tests {
		if got := DistanceToSegment(tt.p, a, b); math.Abs(got-tt.want) > eps {
			t.Errorf("DistanceToSegment(%v): expected %f, got %f", tt.p, tt.want, got)
		}
	}

	if got := DistanceToSegment(V(3, 4), V(0, 0), V(0, 0)); math.Abs(got-5) > eps {
		t.Errorf("Degenerate segment: expected 5, got %f", got)
	}
}

func TestClampBox(t *testing.T) {
	got := V(-5, 50).Clamp(V(0, 0), V(10, 10))
	if got.X != 0 || got.Y != 10 {
		t.Errorf("Expected (0,10), got %v", got)
	}
}
