// Package surface owns the overlay layer the backdrop draws on and tracks the host viewport.
package surface

import (
	"errors"

	"github.com/lixenwraith/pixel-portfolio/render"
)

// ErrDetached reports an operation against a layer no longer in a host
var ErrDetached = errors.New("surface detached")

// Host is the document the overlay lives in
type Host interface {
	// Viewport returns the current size in surface pixels
	Viewport() (w, h int)

	// Attach inserts the layer beneath all existing content
	Attach(l *Layer) error

	// Detach removes the layer; detaching an absent layer is a no-op
	Detach(l *Layer)

	// OnResize subscribes to viewport changes
	OnResize(fn func(w, h int)) (remove func())
}

// Layer is the full-viewport, click-through overlay holding the canvas
type Layer struct {
	ID            string
	ZIndex        int
	Opacity       float64
	PointerEvents bool
	Canvas        render.Canvas
}
