package pong

// Events receives collision notifications after each frame's update
type Events interface {
	PaddleHit(side Side)
	WallBounce()
	Scored(side Side)
}

type nopEvents struct{}

func (nopEvents) PaddleHit(Side) {}
func (nopEvents) WallBounce()    {}
func (nopEvents) Scored(Side)    {}

func dispatch(e Events, out Outcome) {
	if out.Wall {
		e.WallBounce()
	}
	if out.Hit != SideNone {
		e.PaddleHit(out.Hit)
	}
	if out.Scorer != SideNone {
		e.Scored(out.Scorer)
	}
}
