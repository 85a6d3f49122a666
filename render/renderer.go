package render

import (
	"image/color"

	"github.com/lixenwraith/pixel-portfolio/constants"
	"github.com/lixenwraith/pixel-portfolio/theme"
)

// Renderer draws a Scene; it holds only the dash pattern and no simulation state
type Renderer struct {
	dash []float64
}

// NewRenderer creates a renderer with the standard center line pattern
func NewRenderer() *Renderer {
	return &Renderer{
		dash: []float64{constants.CenterLineDash, constants.CenterLineGap},
	}
}

// Draw renders one full frame in back-to-front order
func (r *Renderer) Draw(c Canvas, s Scene, p theme.Palette) {
	c.Clear()

	cx := s.Width / 2
	c.StrokeDashedLine(cx, 0, cx, s.Height, constants.CenterLineWidth, r.dash, p.Paddle)

	n := len(s.Trail)
	for i, pt := range s.Trail {
		radius, col := TrailDot(i, n, s.BallRadius, p.Trail)
		c.FillCircle(pt.X, pt.Y, radius, col)
	}

	c.FillCircle(s.Ball.X, s.Ball.Y, s.BallRadius, p.Ball)

	c.FillRect(s.Left.X, s.Left.Y, s.Left.W, s.Left.H, p.Paddle)
	c.FillRect(s.Right.X, s.Right.Y, s.Right.W, s.Right.H, p.Paddle)
}

// TrailDot returns radius and color for trail point i of n, oldest first
// Both scale from TrailMinScale at the oldest point toward full size at the newest
func TrailDot(i, n int, ballRadius float64, trail color.NRGBA) (float64, color.NRGBA) {
	recency := 0.0
	if n > 0 {
		recency = float64(i) / float64(n)
	}
	scale := constants.TrailMinScale + (1-constants.TrailMinScale)*recency

	col := trail
	col.A = uint8(float64(trail.A)*scale + 0.5)
	return ballRadius * scale, col
}
