package vmath

// Rect is an axis-aligned rectangle anchored at its top-left corner
type Rect struct {
	X, Y, W, H float64
}

// Right returns the x coordinate of the right edge
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y coordinate of the bottom edge
func (r Rect) Bottom() float64 { return r.Y + r.H }

// CenterY returns the vertical center
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// CircleHitsRect reports whether a circle's horizontal extent overlaps r while its center
// lies strictly inside r vertically. Edges are exclusive, so a zero-height rect never hits.
func CircleHitsRect(cx, cy, radius float64, r Rect) bool {
	return cx-radius < r.Right() &&
		cx+radius > r.X &&
		cy > r.Y &&
		cy < r.Bottom()
}
