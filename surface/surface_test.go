package surface

import (
	"testing"

	"github.com/lixenwraith/pixel-portfolio/constants"
	"github.com/lixenwraith/pixel-portfolio/render"
)

func TestInitializeAttachesBeneathContent(t *testing.T) {
	host := NewHeadless(800, 600)
	content := &Layer{ID: "content", Canvas: render.NewRecorder(0, 0)}
	if err := host.Attach(content); err != nil {
		t.Fatal(err)
	}

	rec := render.NewRecorder(0, 0)
	s := New(host, rec, nil)
	if err := s.Initialize(); err != nil {
		t.Fatalf("Initialize: %v", err)
	}

	layers := host.Layers()
	if len(layers) != 2 || layers[0] != s.Layer() {
		t.Fatalf("overlay not first layer: %v", layers)
	}
	l := s.Layer()
	if l.ID != constants.OverlayID || l.ZIndex != constants.OverlayZIndex ||
		l.Opacity != constants.OverlayOpacity || l.PointerEvents {
		t.Errorf("unexpected layer %+v", l)
	}
	if w, h := rec.Size(); w != 800 || h != 600 {
		t.Errorf("canvas sized %dx%d, want 800x600", w, h)
	}

	// Second initialize is a no-op
	if err := s.Initialize(); err != nil {
		t.Fatal(err)
	}
	if len(host.Layers()) != 2 || host.Listeners() != 1 {
		t.Error("repeated Initialize attached or subscribed twice")
	}
}

func TestResizeEventNotifiesOwner(t *testing.T) {
	host := NewHeadless(800, 600)
	rec := render.NewRecorder(0, 0)

	var s *Surface
	var seenW, seenH int
	s = New(host, rec, func() { seenW, seenH = s.Resize() })
	if err := s.Initialize(); err != nil {
		t.Fatal(err)
	}

	host.SetViewport(1024, 768)
	if seenW != 1024 || seenH != 768 {
		t.Errorf("owner saw %dx%d, want 1024x768", seenW, seenH)
	}
	if w, h := rec.Size(); w != 1024 || h != 768 {
		t.Errorf("canvas %dx%d after resize", w, h)
	}
}

func TestDestroyIdempotent(t *testing.T) {
	host := NewHeadless(640, 480)
	calls := 0
	s := New(host, render.NewRecorder(0, 0), func() { calls++ })
	if err := s.Initialize(); err != nil {
		t.Fatal(err)
	}

	s.Destroy()
	s.Destroy()

	if s.Attached() || len(host.Layers()) != 0 {
		t.Error("layer still attached after Destroy")
	}
	if host.Listeners() != 0 {
		t.Error("resize listener still registered after Destroy")
	}

	host.SetViewport(100, 100)
	if calls != 0 {
		t.Error("owner notified after Destroy")
	}

	// Resize after destroy keeps the last dimensions and does not panic
	if w, h := s.Resize(); w != 640 || h != 480 {
		t.Errorf("Resize after Destroy = %dx%d", w, h)
	}
	if err := s.Initialize(); err != ErrDetached {
		t.Errorf("Initialize after Destroy = %v, want ErrDetached", err)
	}
}

func TestNegativeViewportClamped(t *testing.T) {
	host := NewHeadless(-5, 0)
	s := New(host, render.NewRecorder(0, 0), nil)
	if err := s.Initialize(); err != nil {
		t.Fatal(err)
	}
	if w, h := s.Size(); w != 0 || h != 0 {
		t.Errorf("size = %dx%d, want 0x0", w, h)
	}
}
