package constants

// Overlay layer presentation
const (
	OverlayID      = "ping-pong-canvas"
	OverlayZIndex  = -5
	OverlayOpacity = 0.3
)

// Terminal cell to surface pixel mapping
// Each cell renders two vertical dots with a half-block glyph
const (
	CellWidthPx  = 8
	CellHeightPx = 16
	DotsPerCell  = 2
)

// Headless host defaults
const (
	DefaultViewportWidth  = 1280
	DefaultViewportHeight = 720
)
