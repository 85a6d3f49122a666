package render

import (
	"image"
	"image/color"
	"io"
	"math"

	"github.com/gogpu/gg"
)

// Raster is a Canvas backed by the gg software rasterizer
// The pixel buffer may be coarser than the logical surface: one dot covers dotW x dotH pixels
type Raster struct {
	dc         *gg.Context
	w, h       int
	dotW, dotH float64
}

// NewRaster creates a full-resolution raster canvas
func NewRaster(w, h int) *Raster {
	return NewScaledRaster(w, h, 1, 1)
}

// NewScaledRaster creates a raster whose dots each cover dotW x dotH surface pixels
func NewScaledRaster(w, h int, dotW, dotH float64) *Raster {
	if dotW <= 0 {
		dotW = 1
	}
	if dotH <= 0 {
		dotH = 1
	}
	r := &Raster{dotW: dotW, dotH: dotH}
	r.w, r.h = max(w, 0), max(h, 0)
	bw, bh := r.bufferSize()
	r.dc = gg.NewContext(bw, bh)
	return r
}

// bufferSize maps the logical size to dots, never below 1x1
func (r *Raster) bufferSize() (int, int) {
	bw := int(math.Ceil(float64(r.w) / r.dotW))
	bh := int(math.Ceil(float64(r.h) / r.dotH))
	return max(bw, 1), max(bh, 1)
}

func (r *Raster) Size() (int, int) { return r.w, r.h }

// Resize keeps a 1x1 buffer for empty surfaces so drawing stays harmless
func (r *Raster) Resize(w, h int) error {
	r.w, r.h = max(w, 0), max(h, 0)
	bw, bh := r.bufferSize()
	return r.dc.Resize(bw, bh)
}

func (r *Raster) Clear() {
	r.dc.Clear()
}

func (r *Raster) StrokeDashedLine(x1, y1, x2, y2, width float64, dash []float64, c color.NRGBA) {
	r.begin(c)
	defer r.dc.Pop()

	r.dc.SetLineWidth(width)
	r.dc.SetDash(dash...)
	r.dc.DrawLine(x1, y1, x2, y2)
	_ = r.dc.Stroke()
	r.dc.ClearDash()
}

func (r *Raster) FillCircle(x, y, radius float64, c color.NRGBA) {
	if radius <= 0 {
		return
	}
	r.begin(c)
	defer r.dc.Pop()

	r.dc.DrawCircle(x, y, radius)
	_ = r.dc.Fill()
}

func (r *Raster) FillRect(x, y, w, h float64, c color.NRGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	r.begin(c)
	defer r.dc.Pop()

	r.dc.DrawRectangle(x, y, w, h)
	_ = r.dc.Fill()
}

// begin pushes the surface-to-dot transform and sets a straight-alpha color
func (r *Raster) begin(c color.NRGBA) {
	r.dc.Push()
	r.dc.Scale(1/r.dotW, 1/r.dotH)
	r.dc.SetRGBA(float64(c.R)/255, float64(c.G)/255, float64(c.B)/255, float64(c.A)/255)
}

// Image returns the current dots
func (r *Raster) Image() image.Image {
	return r.dc.Image()
}

// EncodePNG writes the current dots as PNG
func (r *Raster) EncodePNG(w io.Writer) error {
	return r.dc.EncodePNG(w)
}

// Close releases the gg context
func (r *Raster) Close() error {
	return r.dc.Close()
}
