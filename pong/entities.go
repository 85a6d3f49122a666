package pong

import (
	"github.com/lixenwraith/pixel-portfolio/constants"
	"github.com/lixenwraith/pixel-portfolio/vmath"
)

// Side identifies a paddle
type Side int

const (
	SideNone Side = iota
	SideLeft
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	}
	return "none"
}

// Paddle is an AI-driven bat; X is fixed per side, Y moves
type Paddle struct {
	X, Y          float64
	Width, Height float64
	DY            float64
	Score         int
}

// Rect returns the paddle's bounds
func (p Paddle) Rect() vmath.Rect {
	return vmath.Rect{X: p.X, Y: p.Y, W: p.Width, H: p.Height}
}

// CenterY returns the vertical center
func (p Paddle) CenterY() float64 {
	return p.Rect().CenterY()
}

// clampY keeps the paddle inside [0, surfaceHeight - Height]
func (p *Paddle) clampY(surfaceHeight float64) {
	p.Y = vmath.Clamp(p.Y, 0, surfaceHeight-p.Height)
}

// Ball is the puck; speed is normalized on reset and otherwise only rewritten per axis by collisions
type Ball struct {
	X, Y   float64
	DX, DY float64
	Radius float64
}

// Speed returns the velocity magnitude
func (b Ball) Speed() float64 {
	return vmath.Magnitude(b.DX, b.DY)
}

// Trail is a fixed-capacity FIFO of recent ball positions, oldest first
type Trail struct {
	points [constants.TrailCapacity]vmath.Vec2
	start  int
	n      int
}

// Push appends p, evicting the oldest point when full
func (t *Trail) Push(p vmath.Vec2) {
	if t.n < len(t.points) {
		t.points[(t.start+t.n)%len(t.points)] = p
		t.n++
		return
	}
	t.points[t.start] = p
	t.start = (t.start + 1) % len(t.points)
}

// Clear drops all points
func (t *Trail) Clear() {
	t.start, t.n = 0, 0
}

// Len returns the number of stored points
func (t *Trail) Len() int {
	return t.n
}

// Points returns a copy, oldest first
func (t *Trail) Points() []vmath.Vec2 {
	out := make([]vmath.Vec2, t.n)
	for i := range out {
		out[i] = t.points[(t.start+i)%len(t.points)]
	}
	return out
}
