package engine

import (
	"sync"
	"time"
)

// PausableClock tracks how long the animation has run and been paused
// Time is read from the injected provider so tests can drive it
type PausableClock struct {
	mu sync.RWMutex

	provider  TimeProvider
	startTime time.Time

	isPaused        bool
	pauseStartTime  time.Time
	totalPausedTime time.Duration
}

// NewPausableClock creates a running clock anchored at provider.Now()
func NewPausableClock(provider TimeProvider) *PausableClock {
	if provider == nil {
		provider = NewMonotonicTimeProvider()
	}
	return &PausableClock{
		provider:  provider,
		startTime: provider.Now(),
	}
}

// Now returns the provider's current time
func (pc *PausableClock) Now() time.Time {
	return pc.provider.Now()
}

// Elapsed returns running time excluding pauses
func (pc *PausableClock) Elapsed() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	end := pc.provider.Now()
	if pc.isPaused {
		end = pc.pauseStartTime
	}
	return end.Sub(pc.startTime) - pc.totalPausedTime
}

// Pause freezes Elapsed; returns false if already paused
func (pc *PausableClock) Pause() bool {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if pc.isPaused {
		return false
	}
	pc.isPaused = true
	pc.pauseStartTime = pc.provider.Now()
	return true
}

// Resume continues Elapsed and returns the resume instant; ok is false if not paused
func (pc *PausableClock) Resume() (resumedAt time.Time, ok bool) {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	now := pc.provider.Now()
	if !pc.isPaused {
		return now, false
	}
	pc.totalPausedTime += now.Sub(pc.pauseStartTime)
	pc.pauseStartTime = time.Time{}
	pc.isPaused = false
	return now, true
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	return pc.isPaused
}

// TotalPauseDuration returns cumulative pause time including an ongoing pause
func (pc *PausableClock) TotalPauseDuration() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	total := pc.totalPausedTime
	if pc.isPaused {
		total += pc.provider.Now().Sub(pc.pauseStartTime)
	}
	return total
}
