package core

// State is everything the simulation mutates between ticks. It is owned by a
// single Loop and never shared across goroutines.
type State struct {
	Paddles [PlayerCount]Paddle
	Balls   []Ball
}

// NewState sets up both paddles centred on their walls and serves one ball.
func NewState() *State {
	return &State{
		Paddles: [PlayerCount]Paddle{
			Player1: NewPaddle(SideLeft),
			Player2: NewPaddle(SideRight),
		},
		Balls: []Ball{NewBall()},
	}
}

// SpawnBall appends a freshly served ball and returns the new ball count.
func (s *State) SpawnBall() int {
	s.Balls = append(s.Balls, NewBall())
	return len(s.Balls)
}
