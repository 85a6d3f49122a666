package render

import "github.com/lixenwraith/pixel-portfolio/vmath"

// Scene is the read-only view of simulation state needed for one frame
// Trail is ordered oldest first
type Scene struct {
	Width, Height float64

	Ball       vmath.Vec2
	BallRadius float64

	Left, Right vmath.Rect

	Trail []vmath.Vec2
}
