package core

type Role int

const (
	RoleWall Role = iota
	RolePaddle
	RoleBall
)

// Primitive is one filled rectangle for a renderer to draw.
type Primitive struct {
	Role Role
	Rect Rect
}

// Project lays the state out as primitives: both walls, then the paddles,
// then every ball in slice order. The returned slice belongs to the caller.
func Project(state *State) []Primitive {
	frame := make([]Primitive, 0, 2+len(state.Paddles)+len(state.Balls))

	wall := Rect{X: 0, Y: 0, W: int(ArenaWidth), H: WallThickness}
	frame = append(frame, Primitive{Role: RoleWall, Rect: wall})
	wall.Y = int(ArenaHeight) - WallThickness
	frame = append(frame, Primitive{Role: RoleWall, Rect: wall})

	for _, paddle := range state.Paddles {
		frame = append(frame, Primitive{Role: RolePaddle, Rect: Rect{
			X: int(paddle.Position.X - PaddleThickness/2),
			Y: int(paddle.Position.Y - PaddleWidth/2),
			W: PaddleThickness,
			H: PaddleWidth,
		}})
	}

	for _, ball := range state.Balls {
		frame = append(frame, Primitive{Role: RoleBall, Rect: Rect{
			X: int(ball.Position.X - BallSize/2),
			Y: int(ball.Position.Y - BallSize/2),
			W: BallSize,
			H: BallSize,
		}})
	}

	return frame
}
