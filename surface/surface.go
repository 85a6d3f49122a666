package surface

import (
	"fmt"
	"sync"

	"github.com/lixenwraith/pixel-portfolio/constants"
	"github.com/lixenwraith/pixel-portfolio/render"
)

// Surface manages the overlay lifecycle: initialize, resize, destroy
type Surface struct {
	mu sync.Mutex

	host  Host
	layer *Layer

	width, height int

	onResize     func()
	removeResize func()

	attached  bool
	destroyed bool
}

// New creates an unattached surface drawing to canvas
// onResize runs after every host resize event, once the surface has new dimensions
func New(host Host, canvas render.Canvas, onResize func()) *Surface {
	return &Surface{
		host: host,
		layer: &Layer{
			ID:            constants.OverlayID,
			ZIndex:        constants.OverlayZIndex,
			Opacity:       constants.OverlayOpacity,
			PointerEvents: false,
			Canvas:        canvas,
		},
		onResize: onResize,
	}
}

// Initialize sizes the canvas to the viewport, attaches the layer and subscribes to resizes
func (s *Surface) Initialize() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.destroyed {
		return ErrDetached
	}
	if s.attached {
		return nil
	}

	s.refreshLocked()
	if err := s.host.Attach(s.layer); err != nil {
		return fmt.Errorf("attach overlay: %w", err)
	}
	s.attached = true
	s.removeResize = s.host.OnResize(func(int, int) {
		if s.onResize != nil {
			s.onResize()
		}
	})
	return nil
}

// Resize re-reads the viewport and resizes the canvas; safe after Destroy
func (s *Surface) Resize() (w, h int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.destroyed {
		s.refreshLocked()
	}
	return s.width, s.height
}

func (s *Surface) refreshLocked() {
	w, h := s.host.Viewport()
	s.width, s.height = max(w, 0), max(h, 0)
	// Canvas resize degrades on empty sizes and never blocks geometry updates
	_ = s.layer.Canvas.Resize(s.width, s.height)
}

// Destroy unsubscribes and detaches; repeated calls are no-ops
func (s *Surface) Destroy() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.destroyed {
		return
	}
	s.destroyed = true
	if s.removeResize != nil {
		s.removeResize()
		s.removeResize = nil
	}
	if s.attached {
		s.host.Detach(s.layer)
		s.attached = false
	}
}

// Size returns the last known dimensions
func (s *Surface) Size() (w, h int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.width, s.height
}

// Canvas returns the drawing target; it stays usable after Destroy
func (s *Surface) Canvas() render.Canvas {
	return s.layer.Canvas
}

// Layer returns the overlay descriptor
func (s *Surface) Layer() *Layer {
	return s.layer
}

// Attached reports whether the layer is in the host
func (s *Surface) Attached() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.attached
}
