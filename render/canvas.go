// Package render draws the backdrop scene onto a Canvas and presents rasters on a terminal.
package render

import "image/color"

// Canvas is the immediate-mode drawing surface the renderer targets
// Coordinates are surface pixels with the origin at the top-left
type Canvas interface {
	// Size returns the logical surface size in pixels
	Size() (w, h int)

	// Resize changes the logical size; non-positive sizes must degrade, not fail
	Resize(w, h int) error

	// Clear resets every pixel to transparent
	Clear()

	StrokeDashedLine(x1, y1, x2, y2, width float64, dash []float64, c color.NRGBA)
	FillCircle(x, y, r float64, c color.NRGBA)
	FillRect(x, y, w, h float64, c color.NRGBA)
}
