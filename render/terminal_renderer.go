package render

import (
	"image"
	"image/color"

	"github.com/gdamore/tcell/v2"
)

// upperHalf draws the top dot in foreground and the bottom dot in background
const upperHalf = '▀'

// TerminalRenderer presents a raster on a tcell screen, two dots per cell
type TerminalRenderer struct {
	screen tcell.Screen
}

// NewTerminalRenderer creates a presenter for screen
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	return &TerminalRenderer{screen: screen}
}

// Present composites img over backdrop at layer opacity and shows the screen
// backdrop alpha is ignored, the terminal has nothing underneath
func (r *TerminalRenderer) Present(img image.Image, backdrop color.NRGBA, opacity float64) {
	cols, rows := r.screen.Size()
	b := img.Bounds()

	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < cols; cx++ {
			top := Composite(dotAt(img, b, cx, cy*2), backdrop, opacity)
			bottom := Composite(dotAt(img, b, cx, cy*2+1), backdrop, opacity)
			style := tcell.StyleDefault.Foreground(toTcell(top)).Background(toTcell(bottom))
			r.screen.SetContent(cx, cy, upperHalf, nil, style)
		}
	}
	r.screen.Show()
}

func dotAt(img image.Image, b image.Rectangle, x, y int) color.Color {
	p := image.Pt(b.Min.X+x, b.Min.Y+y)
	if !p.In(b) {
		return color.Transparent
	}
	return img.At(p.X, p.Y)
}

// Composite blends src over an opaque backdrop with extra opacity
func Composite(src color.Color, backdrop color.NRGBA, opacity float64) color.NRGBA {
	// RGBA returns alpha-premultiplied 16-bit channels
	sr, sg, sb, sa := src.RGBA()
	a := float64(sa) / 0xffff * opacity

	ch := func(s uint32, d uint8) uint8 {
		v := float64(s)/0xffff*opacity*255 + float64(d)*(1-a)
		if v > 255 {
			v = 255
		}
		if v < 0 {
			v = 0
		}
		return uint8(v + 0.5)
	}
	return color.NRGBA{
		R: ch(sr, backdrop.R),
		G: ch(sg, backdrop.G),
		B: ch(sb, backdrop.B),
		A: 255,
	}
}

func toTcell(c color.NRGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
