package core

import "time"

// Arena
const (
	ArenaWidth    = 1024.0
	ArenaHeight   = 768.0
	WallThickness = 15
)

// Paddles
const (
	PaddleThickness = 15
	PaddleWidth     = 100   // 球拍長度
	PaddleSpeed     = 300.0 // units per second
	PaddleInset     = 10.0  // distance from the side wall to the paddle centre
)

// Ball
const (
	BallSize             = 15
	InitialBallVelocityX = -200.0
	InitialBallVelocityY = 235.0
)

// Paddle bounce band, measured from the paddle's own side wall.
const (
	BounceBandNear = 20.0
	BounceBandFar  = 25.0
)

// Timing
const (
	TickInterval = 16 * time.Millisecond
	MaxDelta     = 0.05
)

const (
	paddleMinY = PaddleWidth/2.0 + WallThickness
	paddleMaxY = ArenaHeight - PaddleWidth/2.0 - WallThickness
)
