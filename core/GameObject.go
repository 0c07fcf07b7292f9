package core

// Vector2 is a position or velocity in arena units.
type Vector2 struct {
	X, Y float64
}

// Rect is an axis-aligned box in screen space, top-left anchored.
type Rect struct {
	X, Y int
	W, H int
}

type PlayerID int

const (
	Player1 PlayerID = iota
	Player2
	PlayerCount
)

type Side int

const (
	SideLeft Side = iota
	SideRight
)

type Ball struct {
	Position Vector2
	Velocity Vector2
}

// Paddle only ever moves along Y; X is pinned to its side at creation.
type Paddle struct {
	Side      Side
	Position  Vector2
	Direction int
}

func NewPaddle(side Side) Paddle {
	x := PaddleInset
	if side == SideRight {
		x = ArenaWidth - PaddleInset
	}
	return Paddle{
		Side:     side,
		Position: Vector2{X: x, Y: ArenaHeight / 2},
	}
}

// NewBall returns a ball served from the arena centre.
func NewBall() Ball {
	return Ball{
		Position: Vector2{X: ArenaWidth / 2, Y: ArenaHeight / 2},
		Velocity: Vector2{X: InitialBallVelocityX, Y: InitialBallVelocityY},
	}
}

// Steer records the direction for the next update. Anything outside {-1, 0, 1}
// is reduced to its sign.
func (p *Paddle) Steer(dir int) {
	switch {
	case dir < 0:
		p.Direction = -1
	case dir > 0:
		p.Direction = 1
	default:
		p.Direction = 0
	}
}
