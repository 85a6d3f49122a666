package vmath

import (
	"math"
	"testing"
)

func TestNormalize2DZeroSafe(t *testing.T) {
	nx, ny := Normalize2D(0, 0)
	if nx != 0 || ny != 0 {
		t.Fatalf("zero vector normalized to (%v, %v)", nx, ny)
	}
	if math.IsNaN(nx) || math.IsNaN(ny) {
		t.Fatal("zero vector produced NaN")
	}
}

func TestWithMagnitude(t *testing.T) {
	tests := []struct {
		x, y float64
	}{
		{5, 0},
		{-5, 2.4},
		{0.001, -2.5},
		{-3, -4},
	}
	for _, tc := range tests {
		sx, sy := WithMagnitude(tc.x, tc.y, 5)
		if got := Magnitude(sx, sy); math.Abs(got-5) > 1e-9 {
			t.Errorf("WithMagnitude(%v, %v) length = %v, want 5", tc.x, tc.y, got)
		}
		if (sx > 0) != (tc.x > 0) || (sy > 0) != (tc.y > 0) {
			t.Errorf("WithMagnitude(%v, %v) changed direction to (%v, %v)", tc.x, tc.y, sx, sy)
		}
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(-1, 0, 10); got != 0 {
		t.Errorf("Clamp below = %v", got)
	}
	if got := Clamp(11, 0, 10); got != 10 {
		t.Errorf("Clamp above = %v", got)
	}
	if got := Clamp(5, 0, 10); got != 5 {
		t.Errorf("Clamp inside = %v", got)
	}
	// Inverted range collapses to lo
	if got := Clamp(5, 3, 0); got != 3 {
		t.Errorf("Clamp inverted = %v", got)
	}
}

func TestCircleHitsRect(t *testing.T) {
	paddle := Rect{X: 10, Y: 100, W: 15, H: 80}

	if !CircleHitsRect(33, 140, 10, paddle) {
		t.Error("expected overlap at paddle face")
	}
	if CircleHitsRect(35, 140, 10, paddle) {
		t.Error("touching edge must not count as overlap")
	}
	if CircleHitsRect(20, 100, 10, paddle) {
		t.Error("center on top edge must not count as overlap")
	}
	if CircleHitsRect(20, 100, 10, Rect{X: 10, Y: 100, W: 15, H: 0}) {
		t.Error("zero-height rect must never be hit")
	}
}

func TestFastRandFloat64Range(t *testing.T) {
	r := NewFastRand(42)
	for i := 0; i < 10000; i++ {
		f := r.Float64()
		if f < 0 || f >= 1 {
			t.Fatalf("Float64 out of range: %v", f)
		}
	}
}

func TestFastRandZeroSeed(t *testing.T) {
	r := NewFastRand(0)
	if r.Next() == 0 {
		t.Fatal("zero seed must not lock the generator at zero")
	}
}

func TestRectEdges(t *testing.T) {
	r := Rect{X: 10, Y: 100, W: 15, H: 80}
	if r.Right() != 25 || r.Bottom() != 180 || r.CenterY() != 140 {
		t.Errorf("edges right=%v bottom=%v centerY=%v", r.Right(), r.Bottom(), r.CenterY())
	}
}
