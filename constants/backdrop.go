package constants

// Paddle geometry and motion, in surface pixels
const (
	PaddleWidth      = 15.0
	PaddleEdgeMargin = 10.0

	// PaddleHeightDivisor yields paddle height as surfaceHeight / 8
	PaddleHeightDivisor = 8.0

	// PaddleSpeed is the per-frame vertical step of an AI paddle
	PaddleSpeed = 8.0
)

// AI controller
const (
	// AIDeadZone is the distance from paddle center within which the paddle holds still
	AIDeadZone = 30.0

	// AIJitter bounds the per-frame noise added to the tracked ball position: [-AIJitter, AIJitter)
	AIJitter = 10.0
)

// Ball
const (
	BallRadius = 10.0

	// BallSpeed is the velocity magnitude after every reset
	BallSpeed = 5.0

	// BallLaunchVertical bounds the launch dy before normalization: [-2.5, 2.5)
	BallLaunchVertical = 2.5

	// PaddleSpinFactor scales the normalized strike offset into the new dy
	PaddleSpinFactor = 5.0

	// TrailCapacity is the number of past ball positions kept for rendering
	TrailCapacity = 5
)

// Center line
const (
	CenterLineWidth = 2.0
	CenterLineDash  = 10.0
	CenterLineGap   = 15.0
)

// Trail fade: older points scale toward this floor of full radius/alpha
const TrailMinScale = 0.5
