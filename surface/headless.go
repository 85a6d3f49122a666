package surface

import (
	"slices"
	"sync"
)

// Headless is an in-memory host with a settable viewport
type Headless struct {
	mu        sync.Mutex
	w, h      int
	layers    []*Layer
	listeners map[int]func(w, h int)
	nextID    int
}

// NewHeadless creates a host with the given viewport
func NewHeadless(w, h int) *Headless {
	return &Headless{
		w:         w,
		h:         h,
		listeners: make(map[int]func(w, h int)),
	}
}

func (hh *Headless) Viewport() (int, int) {
	hh.mu.Lock()
	defer hh.mu.Unlock()
	return hh.w, hh.h
}

// Attach inserts l as the first layer
func (hh *Headless) Attach(l *Layer) error {
	hh.mu.Lock()
	defer hh.mu.Unlock()

	if slices.Contains(hh.layers, l) {
		return nil
	}
	hh.layers = slices.Insert(hh.layers, 0, l)
	return nil
}

func (hh *Headless) Detach(l *Layer) {
	hh.mu.Lock()
	defer hh.mu.Unlock()

	if i := slices.Index(hh.layers, l); i >= 0 {
		hh.layers = slices.Delete(hh.layers, i, i+1)
	}
}

func (hh *Headless) OnResize(fn func(w, h int)) (remove func()) {
	hh.mu.Lock()
	defer hh.mu.Unlock()

	id := hh.nextID
	hh.nextID++
	hh.listeners[id] = fn
	return func() {
		hh.mu.Lock()
		defer hh.mu.Unlock()
		delete(hh.listeners, id)
	}
}

// SetViewport changes the size and dispatches resize listeners synchronously
func (hh *Headless) SetViewport(w, h int) {
	hh.mu.Lock()
	hh.w, hh.h = w, h
	fns := make([]func(int, int), 0, len(hh.listeners))
	for i := 0; i < hh.nextID; i++ {
		if fn, ok := hh.listeners[i]; ok {
			fns = append(fns, fn)
		}
	}
	hh.mu.Unlock()

	for _, fn := range fns {
		fn(w, h)
	}
}

// Layers returns the attached layers, bottom first
func (hh *Headless) Layers() []*Layer {
	hh.mu.Lock()
	defer hh.mu.Unlock()
	return slices.Clone(hh.layers)
}

// Listeners returns the number of resize subscriptions
func (hh *Headless) Listeners() int {
	hh.mu.Lock()
	defer hh.mu.Unlock()
	return len(hh.listeners)
}
