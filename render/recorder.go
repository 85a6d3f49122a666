package render

import "image/color"

// OpKind names a recorded drawing call
type OpKind int

const (
	OpClear OpKind = iota
	OpDashedLine
	OpCircle
	OpRect
)

// Op is one recorded drawing call; unused fields stay zero
type Op struct {
	Kind       OpKind
	X, Y, W, H float64
	X2, Y2     float64
	R          float64
	LineWidth  float64
	Dash       []float64
	Color      color.NRGBA
}

// Recorder is a Canvas that keeps the calls of the last frame
// Clear starts a new frame
type Recorder struct {
	w, h int
	Ops  []Op
}

// NewRecorder creates a recorder with a logical size
func NewRecorder(w, h int) *Recorder {
	return &Recorder{w: w, h: h}
}

func (r *Recorder) Size() (int, int) { return r.w, r.h }

func (r *Recorder) Resize(w, h int) error {
	r.w, r.h = max(w, 0), max(h, 0)
	return nil
}

func (r *Recorder) Clear() {
	r.Ops = append(r.Ops[:0], Op{Kind: OpClear})
}

func (r *Recorder) StrokeDashedLine(x1, y1, x2, y2, width float64, dash []float64, c color.NRGBA) {
	r.Ops = append(r.Ops, Op{
		Kind: OpDashedLine, X: x1, Y: y1, X2: x2, Y2: y2,
		LineWidth: width, Dash: append([]float64(nil), dash...), Color: c,
	})
}

func (r *Recorder) FillCircle(x, y, radius float64, c color.NRGBA) {
	r.Ops = append(r.Ops, Op{Kind: OpCircle, X: x, Y: y, R: radius, Color: c})
}

func (r *Recorder) FillRect(x, y, w, h float64, c color.NRGBA) {
	r.Ops = append(r.Ops, Op{Kind: OpRect, X: x, Y: y, W: w, H: h, Color: c})
}

// Count returns how many ops of kind were recorded
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}
