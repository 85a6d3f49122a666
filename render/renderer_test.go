package render

import (
	"testing"

	"github.com/lixenwraith/pixel-portfolio/constants"
	"github.com/lixenwraith/pixel-portfolio/theme"
	"github.com/lixenwraith/pixel-portfolio/vmath"
)

func testScene() Scene {
	return Scene{
		Width:      800,
		Height:     600,
		Ball:       vmath.Vec2{X: 400, Y: 300},
		BallRadius: constants.BallRadius,
		Left:       vmath.Rect{X: 10, Y: 262.5, W: 15, H: 75},
		Right:      vmath.Rect{X: 775, Y: 262.5, W: 15, H: 75},
		Trail: []vmath.Vec2{
			{X: 380, Y: 300}, {X: 385, Y: 300}, {X: 390, Y: 300}, {X: 395, Y: 300},
		},
	}
}

func TestRendererDrawOrder(t *testing.T) {
	rec := NewRecorder(800, 600)
	p := theme.Dark()

	NewRenderer().Draw(rec, testScene(), p)

	wantKinds := []OpKind{OpClear, OpDashedLine, OpCircle, OpCircle, OpCircle, OpCircle, OpCircle, OpRect, OpRect}
	if len(rec.Ops) != len(wantKinds) {
		t.Fatalf("recorded %d ops, want %d", len(rec.Ops), len(wantKinds))
	}
	for i, k := range wantKinds {
		if rec.Ops[i].Kind != k {
			t.Errorf("op %d kind = %v, want %v", i, rec.Ops[i].Kind, k)
		}
	}

	line := rec.Ops[1]
	if line.X != 400 || line.X2 != 400 || line.Y != 0 || line.Y2 != 600 {
		t.Errorf("center line at (%v,%v)-(%v,%v)", line.X, line.Y, line.X2, line.Y2)
	}
	if line.Color != p.Paddle || line.LineWidth != constants.CenterLineWidth {
		t.Errorf("center line styled %+v", line)
	}
	if len(line.Dash) != 2 || line.Dash[0] != 10 || line.Dash[1] != 15 {
		t.Errorf("dash = %v, want [10 15]", line.Dash)
	}

	ball := rec.Ops[6]
	if ball.X != 400 || ball.R != constants.BallRadius || ball.Color != p.Ball {
		t.Errorf("ball drawn as %+v", ball)
	}

	left, right := rec.Ops[7], rec.Ops[8]
	if left.X != 10 || right.X != 775 || left.Color != p.Paddle || right.Color != p.Paddle {
		t.Errorf("paddles drawn as %+v / %+v", left, right)
	}
}

func TestTrailFadesTowardOldest(t *testing.T) {
	rec := NewRecorder(800, 600)
	p := theme.Light()
	NewRenderer().Draw(rec, testScene(), p)

	trail := rec.Ops[2:6]
	for i := 1; i < len(trail); i++ {
		if trail[i].R <= trail[i-1].R {
			t.Errorf("trail radius not increasing with recency: %v then %v", trail[i-1].R, trail[i].R)
		}
		if trail[i].Color.A < trail[i-1].Color.A {
			t.Errorf("trail alpha not increasing with recency: %d then %d", trail[i-1].Color.A, trail[i].Color.A)
		}
	}
	if trail[0].R != constants.BallRadius*constants.TrailMinScale {
		t.Errorf("oldest trail radius = %v, want %v", trail[0].R, constants.BallRadius*constants.TrailMinScale)
	}
	for _, op := range trail {
		if op.R >= constants.BallRadius {
			t.Errorf("trail dot %v not smaller than the ball", op.R)
		}
		if op.Color.R != p.Trail.R || op.Color.G != p.Trail.G || op.Color.B != p.Trail.B {
			t.Errorf("trail dot hue changed: %+v", op.Color)
		}
	}
}

func TestTrailDotEmpty(t *testing.T) {
	r, c := TrailDot(0, 0, 10, theme.Dark().Trail)
	if r != 5 {
		t.Errorf("radius = %v, want 5", r)
	}
	if c.A != 51 {
		t.Errorf("alpha = %d, want 51", c.A)
	}
}
