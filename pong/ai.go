package pong

import (
	"github.com/lixenwraith/pixel-portfolio/constants"
	"github.com/lixenwraith/pixel-portfolio/engine"
)

// MoveAI steers both paddles toward a noisy reading of the ball's height
// Left draws its jitter first; the draws are independent so the paddles drift apart
func (s *State) MoveAI(rng engine.RandSource) {
	for _, p := range []*Paddle{&s.Left, &s.Right} {
		jitter := rng.Float64()*2*constants.AIJitter - constants.AIJitter
		p.DY = trackVelocity(s.Ball.Y+jitter, p.CenterY())
		p.Y += p.DY
		p.clampY(s.Height)
	}
}

// trackVelocity is the reactive controller: full speed outside the dead zone, still inside it
func trackVelocity(target, center float64) float64 {
	switch {
	case target < center-constants.AIDeadZone:
		return -constants.PaddleSpeed
	case target > center+constants.AIDeadZone:
		return constants.PaddleSpeed
	}
	return 0
}
