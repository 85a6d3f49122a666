package pong

import (
	"math"

	"github.com/lixenwraith/pixel-portfolio/constants"
	"github.com/lixenwraith/pixel-portfolio/engine"
	"github.com/lixenwraith/pixel-portfolio/vmath"
)

// ResolveCollisions applies walls, paddles and scoring in that order
func (s *State) ResolveCollisions(rng engine.RandSource) Outcome {
	var out Outcome
	b := &s.Ball

	// Walls: flip dy and pin to the boundary so the ball cannot tunnel or stick
	if b.Y-b.Radius < 0 || b.Y+b.Radius > s.Height {
		b.DY = -b.DY
		if b.Y-b.Radius < 0 {
			b.Y = b.Radius
		} else {
			b.Y = s.Height - b.Radius
		}
		out.Wall = true
	}

	if vmath.CircleHitsRect(b.X, b.Y, b.Radius, s.Left.Rect()) {
		b.DX = math.Abs(b.DX)
		b.DY = spin(b.Y, s.Left)
		b.X = s.Left.X + s.Left.Width + b.Radius
		out.Hit = SideLeft
	}

	if vmath.CircleHitsRect(b.X, b.Y, b.Radius, s.Right.Rect()) {
		b.DX = -math.Abs(b.DX)
		b.DY = spin(b.Y, s.Right)
		b.X = s.Right.X - b.Radius
		out.Hit = SideRight
	}

	switch {
	case b.X-b.Radius < 0:
		s.Right.Score++
		out.Scorer = SideRight
		s.ResetBall(rng)
	case b.X+b.Radius > s.Width:
		s.Left.Score++
		out.Scorer = SideLeft
		s.ResetBall(rng)
	}

	return out
}

// spin maps the strike offset from paddle center to a new dy
// A hit above center sends the ball up; only reachable with Height > 0
func spin(ballY float64, p Paddle) float64 {
	offset := (p.CenterY() - ballY) / (p.Height / 2)
	return -offset * constants.PaddleSpinFactor
}
