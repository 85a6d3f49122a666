package engine

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"
)

// ErrSchedulerRunning is returned when Run is called on a scheduler that is already running
var ErrSchedulerRunning = errors.New("frame scheduler already running")

// FrameHandler receives one call per host frame with the sampled timestamp
type FrameHandler interface {
	Frame(ts time.Time)
}

// FrameFunc adapts a function to FrameHandler
type FrameFunc func(ts time.Time)

func (f FrameFunc) Frame(ts time.Time) { f(ts) }

type frameEntry struct {
	id      uint64
	handler FrameHandler
}

// FrameScheduler stands in for the host's per-frame animation callback
// Tick is the single entry point: sample the clock, run every handler once
// Work submitted through Do is serialized with Tick, so it only ever lands between frames
type FrameScheduler struct {
	frameMu sync.Mutex

	handlersMu sync.Mutex
	handlers   []frameEntry
	nextID     uint64

	provider TimeProvider
	interval time.Duration

	frames  atomic.Uint64
	running atomic.Bool
}

// NewFrameScheduler creates a scheduler sampling provider every interval when run
func NewFrameScheduler(provider TimeProvider, interval time.Duration) *FrameScheduler {
	if provider == nil {
		provider = NewMonotonicTimeProvider()
	}
	return &FrameScheduler{
		provider: provider,
		interval: interval,
	}
}

// Register adds a handler and returns its removal func
// Removal is safe from inside a frame; the handler is skipped from the next frame on
func (s *FrameScheduler) Register(h FrameHandler) (remove func()) {
	s.handlersMu.Lock()
	s.nextID++
	id := s.nextID
	s.handlers = append(s.handlers, frameEntry{id: id, handler: h})
	s.handlersMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.handlersMu.Lock()
			defer s.handlersMu.Unlock()
			for i, e := range s.handlers {
				if e.id == id {
					s.handlers = append(s.handlers[:i:i], s.handlers[i+1:]...)
					return
				}
			}
		})
	}
}

// Tick runs one frame and returns the timestamp handed to handlers
func (s *FrameScheduler) Tick() time.Time {
	s.frameMu.Lock()
	defer s.frameMu.Unlock()

	s.handlersMu.Lock()
	snapshot := make([]frameEntry, len(s.handlers))
	copy(snapshot, s.handlers)
	s.handlersMu.Unlock()

	ts := s.provider.Now()
	for _, e := range snapshot {
		e.handler.Frame(ts)
	}
	s.frames.Add(1)
	return ts
}

// Do runs fn between frames
// fn must not call Tick or Do
func (s *FrameScheduler) Do(fn func()) {
	s.frameMu.Lock()
	defer s.frameMu.Unlock()
	fn()
}

// Run ticks every interval until ctx is done
func (s *FrameScheduler) Run(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return ErrSchedulerRunning
	}
	defer s.running.Store(false)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.Tick()
		}
	}
}

// Frames returns the number of completed ticks
func (s *FrameScheduler) Frames() uint64 {
	return s.frames.Load()
}

// Interval returns the configured tick period
func (s *FrameScheduler) Interval() time.Duration {
	return s.interval
}
