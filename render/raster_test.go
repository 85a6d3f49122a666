package render

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"
)

func TestRasterFillCircle(t *testing.T) {
	r := NewRaster(100, 100)
	defer r.Close()

	r.Clear()
	r.FillCircle(50, 50, 10, color.NRGBA{R: 255, G: 221, A: 230})

	img := r.Image()
	if _, _, _, a := img.At(50, 50).RGBA(); a == 0 {
		t.Error("circle center is transparent")
	}
	if _, _, _, a := img.At(2, 2).RGBA(); a != 0 {
		t.Error("corner should stay transparent")
	}

	r.Clear()
	if _, _, _, a := r.Image().At(50, 50).RGBA(); a != 0 {
		t.Error("Clear left pixels behind")
	}
}

func TestScaledRasterBuffer(t *testing.T) {
	r := NewScaledRaster(81, 48, 8, 8)
	defer r.Close()

	if w, h := r.Size(); w != 81 || h != 48 {
		t.Errorf("logical size = %dx%d, want 81x48", w, h)
	}
	b := r.Image().Bounds()
	if b.Dx() != 11 || b.Dy() != 6 {
		t.Errorf("dot buffer = %dx%d, want 11x6", b.Dx(), b.Dy())
	}

	// Filling the whole surface covers every dot
	r.FillRect(0, 0, 81, 48, color.NRGBA{R: 255, A: 255})
	if _, _, _, a := r.Image().At(10, 5).RGBA(); a == 0 {
		t.Error("last dot not covered by full-surface rect")
	}
}

func TestRasterResizeToZeroDegrades(t *testing.T) {
	r := NewRaster(10, 10)
	defer r.Close()

	if err := r.Resize(0, 0); err != nil {
		t.Fatalf("Resize(0,0) = %v", err)
	}
	if w, h := r.Size(); w != 0 || h != 0 {
		t.Errorf("size = %dx%d", w, h)
	}

	// Degenerate shapes are skipped, not rasterized
	r.FillRect(0, 0, 10, 0, color.NRGBA{A: 255})
	r.FillCircle(0, 0, 0, color.NRGBA{A: 255})
	r.StrokeDashedLine(0, 0, 0, 0, 2, []float64{10, 15}, color.NRGBA{A: 255})
}

func TestRasterEncodePNG(t *testing.T) {
	r := NewRaster(32, 16)
	defer r.Close()
	r.FillRect(0, 0, 8, 8, color.NRGBA{B: 255, A: 255})

	var buf bytes.Buffer
	if err := r.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 32 || b.Dy() != 16 {
		t.Errorf("decoded %v", b)
	}
}
