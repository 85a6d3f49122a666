package pong

import (
	"github.com/lixenwraith/pixel-portfolio/constants"
	"github.com/lixenwraith/pixel-portfolio/engine"
	"github.com/lixenwraith/pixel-portfolio/render"
	"github.com/lixenwraith/pixel-portfolio/vmath"
)

// State is the whole simulation; every method is a pure step over it
type State struct {
	Width, Height float64

	Left, Right Paddle
	Ball        Ball
	Trail       Trail

	Paused bool
}

// Outcome reports what the last step collided with
type Outcome struct {
	Wall   bool
	Hit    Side
	Scorer Side
}

// NewState creates paddles and ball for a surface; call ResetBall before stepping
func NewState(w, h int) State {
	s := State{
		Left:  Paddle{Width: constants.PaddleWidth},
		Right: Paddle{Width: constants.PaddleWidth},
		Ball:  Ball{Radius: constants.BallRadius},
	}
	s.Layout(w, h)
	return s
}

// Layout re-derives geometry for a new surface size
// Paddles re-center vertically, the ball is pulled back inside and the trail is dropped
func (s *State) Layout(w, h int) {
	s.Width, s.Height = float64(max(w, 0)), float64(max(h, 0))

	ph := s.Height / constants.PaddleHeightDivisor
	for _, p := range []*Paddle{&s.Left, &s.Right} {
		p.Height = ph
		p.Y = s.Height/2 - ph/2
	}
	s.Left.X = constants.PaddleEdgeMargin
	s.Right.X = s.Width - constants.PaddleWidth - constants.PaddleEdgeMargin

	if s.Ball.X > s.Width {
		s.Ball.X = s.Width / 2
	}
	if s.Ball.Y > s.Height {
		s.Ball.Y = s.Height / 2
	}

	s.Trail.Clear()
}

// ResetBall respawns at the center with a random direction at BallSpeed
// Draws two values: horizontal direction, then launch angle
func (s *State) ResetBall(rng engine.RandSource) {
	s.Trail.Clear()

	dir := -1.0
	if rng.Float64() > 0.5 {
		dir = 1
	}
	dx := dir * constants.BallSpeed
	dy := rng.Float64()*2*constants.BallLaunchVertical - constants.BallLaunchVertical

	s.Ball.X = s.Width / 2
	s.Ball.Y = s.Height / 2
	s.Ball.DX, s.Ball.DY = vmath.WithMagnitude(dx, dy, constants.BallSpeed)
}

// Step advances one frame: trail, integrate, AI, collisions
// A paused state is left untouched
func (s *State) Step(rng engine.RandSource) Outcome {
	if s.Paused {
		return Outcome{}
	}

	s.Trail.Push(vmath.Vec2{X: s.Ball.X, Y: s.Ball.Y})

	s.Ball.X += s.Ball.DX
	s.Ball.Y += s.Ball.DY

	s.MoveAI(rng)

	return s.ResolveCollisions(rng)
}

// Scene exposes the state to the renderer
func (s *State) Scene() render.Scene {
	return render.Scene{
		Width:      s.Width,
		Height:     s.Height,
		Ball:       vmath.Vec2{X: s.Ball.X, Y: s.Ball.Y},
		BallRadius: s.Ball.Radius,
		Left:       s.Left.Rect(),
		Right:      s.Right.Rect(),
		Trail:      s.Trail.Points(),
	}
}
