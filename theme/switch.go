package theme

import "sync"

// Switch is the dark/light flag shared by the page and the backdrop
// Listeners run synchronously after the flag changes, outside the lock
type Switch struct {
	mu        sync.RWMutex
	dark      bool
	listeners map[int]func(Mode)
	nextID    int
}

// NewSwitch creates a switch in the given mode
func NewSwitch(mode Mode) *Switch {
	return &Switch{
		dark:      mode == ModeDark,
		listeners: make(map[int]func(Mode)),
	}
}

// Dark reports whether the dark theme is active
func (s *Switch) Dark() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dark
}

// Mode returns the active mode
func (s *Switch) Mode() Mode {
	if s.Dark() {
		return ModeDark
	}
	return ModeLight
}

// Palette implements Provider
func (s *Switch) Palette() Palette {
	return For(s.Dark())
}

// Set changes the mode; listeners fire only on an actual change
func (s *Switch) Set(mode Mode) {
	s.mu.Lock()
	isDark := mode == ModeDark
	if s.dark == isDark {
		s.mu.Unlock()
		return
	}
	s.dark = isDark
	fns := s.snapshotLocked()
	s.mu.Unlock()

	for _, fn := range fns {
		fn(mode)
	}
}

// Toggle flips the mode and returns the new one
func (s *Switch) Toggle() Mode {
	s.mu.Lock()
	s.dark = !s.dark
	mode := ModeLight
	if s.dark {
		mode = ModeDark
	}
	fns := s.snapshotLocked()
	s.mu.Unlock()

	for _, fn := range fns {
		fn(mode)
	}
	return mode
}

// OnChange subscribes fn to mode changes and returns the unsubscribe func
func (s *Switch) OnChange(fn func(Mode)) (remove func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

func (s *Switch) snapshotLocked() []func(Mode) {
	fns := make([]func(Mode), 0, len(s.listeners))
	for i := 0; i < s.nextID; i++ {
		if fn, ok := s.listeners[i]; ok {
			fns = append(fns, fn)
		}
	}
	return fns
}
