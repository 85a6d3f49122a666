package vmath

import "math"

// Vec2 is a point or displacement in surface pixels
type Vec2 struct {
	X, Y float64
}

// Normalize2D returns the unit vector, zero-safe
func Normalize2D(x, y float64) (nx, ny float64) {
	mag := Magnitude(x, y)
	if mag == 0 {
		return 0, 0
	}
	return x / mag, y / mag
}

// Magnitude returns vector length
func Magnitude(x, y float64) float64 {
	return math.Hypot(x, y)
}

// WithMagnitude rescales (x, y) to length m; a zero vector stays zero
func WithMagnitude(x, y, m float64) (sx, sy float64) {
	nx, ny := Normalize2D(x, y)
	return nx * m, ny * m
}
