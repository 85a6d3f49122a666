// Package theme holds the light/dark palettes of the backdrop and the switch that selects one.
package theme

import (
	"fmt"
	"image/color"
	"strings"
)

// Mode names the active site theme
type Mode string

const (
	ModeDark  Mode = "dark"
	ModeLight Mode = "light"
)

// ParseMode accepts "dark" or "light", case-insensitive
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeDark:
		return ModeDark, nil
	case ModeLight:
		return ModeLight, nil
	}
	return "", fmt.Errorf("unknown theme %q", s)
}

// Palette is the four-color set the renderer draws with
type Palette struct {
	Background color.NRGBA
	Paddle     color.NRGBA
	Ball       color.NRGBA
	Trail      color.NRGBA
}

// Provider returns the palette currently in effect
type Provider interface {
	Palette() Palette
}

// alpha converts a 0..1 opacity to an 8-bit channel
func alpha(a float64) uint8 {
	return uint8(a*255 + 0.5)
}

var (
	dark = Palette{
		Background: color.NRGBA{R: 34, G: 38, B: 57, A: 0},
		Paddle:     color.NRGBA{R: 126, G: 87, B: 194, A: alpha(0.9)},
		Ball:       color.NRGBA{R: 255, G: 221, B: 0, A: alpha(0.9)},
		Trail:      color.NRGBA{R: 255, G: 221, B: 0, A: alpha(0.4)},
	}
	light = Palette{
		Background: color.NRGBA{R: 240, G: 240, B: 240, A: 0},
		Paddle:     color.NRGBA{R: 93, G: 52, B: 175, A: alpha(0.9)},
		Ball:       color.NRGBA{R: 255, G: 204, B: 0, A: alpha(0.9)},
		Trail:      color.NRGBA{R: 255, G: 204, B: 0, A: alpha(0.4)},
	}
)

// Dark returns the dark palette
func Dark() Palette { return dark }

// Light returns the light palette
func Light() Palette { return light }

// For selects the palette of a dark flag
func For(isDark bool) Palette {
	if isDark {
		return dark
	}
	return light
}

// Static is a Provider pinned to one palette
type Static Palette

func (s Static) Palette() Palette { return Palette(s) }
