package constants

import "time"

// Loop Timing
const (
	// FrameInterval is the host frame primitive period (~60 FPS)
	FrameInterval = 16 * time.Millisecond

	// ThemeSettleDelay lets the host finish its own theme switch before palette refresh
	ThemeSettleDelay = 50 * time.Millisecond
)

// Logging
const (
	// MaxLogSize triggers rotation of the debug log
	MaxLogSize = 10 * 1024 * 1024

	// DefaultLogDir is relative to the working directory
	DefaultLogDir = "logs"
)
