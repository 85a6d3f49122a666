package engine

import (
	"sync"

	"github.com/lixenwraith/pixel-portfolio/vmath"
)

// RandSource supplies uniform values in [0, 1)
type RandSource interface {
	Float64() float64
}

// NewRand returns a xorshift source; seed 0 is remapped to a fixed non-zero state
func NewRand(seed uint64) RandSource {
	return vmath.NewFastRand(seed)
}

// SequenceRand replays a fixed list of values, wrapping around at the end
// An empty sequence always yields 0
type SequenceRand struct {
	mu     sync.Mutex
	values []float64
	pos    int
	drawn  int
}

// NewSequenceRand creates a replaying source over values
func NewSequenceRand(values ...float64) *SequenceRand {
	return &SequenceRand{values: values}
}

func (s *SequenceRand) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.drawn++
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.pos]
	s.pos = (s.pos + 1) % len(s.values)
	return v
}

// Drawn reports how many values were consumed
func (s *SequenceRand) Drawn() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.drawn
}
