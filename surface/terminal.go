package surface

import (
	"image"
	"image/color"
	"slices"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/pixel-portfolio/constants"
	"github.com/lixenwraith/pixel-portfolio/render"
)

// imager is satisfied by canvases that can expose their pixels
type imager interface {
	Image() image.Image
}

// Terminal hosts layers on a tcell screen
// Not safe for concurrent use; drive it from the loop goroutine
type Terminal struct {
	screen    tcell.Screen
	presenter *render.TerminalRenderer
	backdrop  color.NRGBA

	layers    []*Layer
	listeners map[int]func(w, h int)
	nextID    int
}

// NewTerminal wraps an initialized screen
func NewTerminal(screen tcell.Screen) *Terminal {
	return &Terminal{
		screen:    screen,
		presenter: render.NewTerminalRenderer(screen),
		listeners: make(map[int]func(w, h int)),
	}
}

// Viewport maps cells to surface pixels
func (t *Terminal) Viewport() (int, int) {
	cols, rows := t.screen.Size()
	return cols * constants.CellWidthPx, rows * constants.CellHeightPx
}

func (t *Terminal) Attach(l *Layer) error {
	if slices.Contains(t.layers, l) {
		return nil
	}
	t.layers = slices.Insert(t.layers, 0, l)
	return nil
}

func (t *Terminal) Detach(l *Layer) {
	if i := slices.Index(t.layers, l); i >= 0 {
		t.layers = slices.Delete(t.layers, i, i+1)
	}
	t.screen.Clear()
}

func (t *Terminal) OnResize(fn func(w, h int)) (remove func()) {
	id := t.nextID
	t.nextID++
	t.listeners[id] = fn
	return func() { delete(t.listeners, id) }
}

// HandleEvent consumes resize events and reports whether ev was one
func (t *Terminal) HandleEvent(ev tcell.Event) bool {
	if _, ok := ev.(*tcell.EventResize); !ok {
		return false
	}
	t.screen.Sync()
	w, h := t.Viewport()
	for i := 0; i < t.nextID; i++ {
		if fn, ok := t.listeners[i]; ok {
			fn(w, h)
		}
	}
	return true
}

// SetBackdrop sets the opaque color layers are composited over
func (t *Terminal) SetBackdrop(c color.NRGBA) {
	t.backdrop = c
}

// Present shows the bottom-most layer that exposes pixels
func (t *Terminal) Present() {
	for _, l := range t.layers {
		if im, ok := l.Canvas.(imager); ok {
			t.presenter.Present(im.Image(), t.backdrop, l.Opacity)
			return
		}
	}
	t.screen.Show()
}

// DotSize returns the surface pixels covered by one raster dot
func DotSize() (w, h float64) {
	return constants.CellWidthPx, constants.CellHeightPx / constants.DotsPerCell
}
