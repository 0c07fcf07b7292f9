package core

import (
	"math"
	"math/rand"
	"testing"
)

func stateWithBall(ball Ball) *State {
	s := NewState()
	s.Balls = []Ball{ball}
	return s
}

func TestPaddleStaysInsideWalls(t *testing.T) {
	s := NewState()
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 5000; i++ {
		dirs := [PlayerCount]int{rng.Intn(3) - 1, rng.Intn(3) - 1}
		dt := rng.Float64() * MaxDelta
		Update(s, dirs, dt)

		for p, paddle := range s.Paddles {
			y := paddle.Position.Y
			if y < paddleMinY || y > paddleMaxY {
				t.Fatalf("tick %d: paddle %d y = %v, want within [%v, %v]", i, p, y, paddleMinY, paddleMaxY)
			}
		}
	}
}

func TestPaddleClampsHard(t *testing.T) {
	s := NewState()
	for i := 0; i < 200; i++ {
		Update(s, [PlayerCount]int{-1, 1}, MaxDelta)
	}
	if got := s.Paddles[Player1].Position.Y; got != 65 {
		t.Errorf("player1 y = %v, want 65", got)
	}
	if got := s.Paddles[Player2].Position.Y; got != 703 {
		t.Errorf("player2 y = %v, want 703", got)
	}
}

func TestPaddleXNeverMoves(t *testing.T) {
	s := NewState()
	for i := 0; i < 50; i++ {
		Update(s, [PlayerCount]int{1, -1}, 0.016)
	}
	if s.Paddles[Player1].Position.X != PaddleInset {
		t.Errorf("player1 x = %v", s.Paddles[Player1].Position.X)
	}
	if s.Paddles[Player2].Position.X != ArenaWidth-PaddleInset {
		t.Errorf("player2 x = %v", s.Paddles[Player2].Position.X)
	}
}

func TestIdlePaddleIsNotClamped(t *testing.T) {
	s := NewState()
	s.Paddles[Player1].Position.Y = 10
	Update(s, [PlayerCount]int{0, 0}, 0.016)
	if got := s.Paddles[Player1].Position.Y; got != 10 {
		t.Errorf("idle paddle y = %v, want untouched 10", got)
	}
}

func TestWallBounceFlipsOnce(t *testing.T) {
	s := stateWithBall(Ball{
		Position: Vector2{X: 512, Y: WallThickness},
		Velocity: Vector2{X: 0, Y: -5},
	})

	r := Update(s, [PlayerCount]int{}, 0.016)
	if got := s.Balls[0].Velocity.Y; got != 5 {
		t.Fatalf("vy after first tick = %v, want 5", got)
	}
	if r.WallBounces != 1 {
		t.Errorf("wall bounces = %d, want 1", r.WallBounces)
	}

	// Still inside the wall strip but already separating.
	r = Update(s, [PlayerCount]int{}, 0.016)
	if got := s.Balls[0].Velocity.Y; got != 5 {
		t.Fatalf("vy after second tick = %v, want 5", got)
	}
	if r.WallBounces != 0 {
		t.Errorf("wall bounces on second tick = %d, want 0", r.WallBounces)
	}
}

func TestBottomWallBounce(t *testing.T) {
	s := stateWithBall(Ball{
		Position: Vector2{X: 512, Y: ArenaHeight - WallThickness - 1},
		Velocity: Vector2{X: 0, Y: 235},
	})
	Update(s, [PlayerCount]int{}, 0.016)
	if got := s.Balls[0].Velocity.Y; got != -235 {
		t.Fatalf("vy = %v, want -235", got)
	}
}

func TestLeftPaddleBounce(t *testing.T) {
	s := NewState()
	paddleY := s.Paddles[Player1].Position.Y
	s.Balls = []Ball{{
		Position: Vector2{X: 22, Y: paddleY},
		Velocity: Vector2{X: -200, Y: 0},
	}}

	// A small step keeps the integrated x inside the [20, 25] band.
	r := Update(s, [PlayerCount]int{}, 0.005)
	if got := s.Balls[0].Velocity.X; got != 200 {
		t.Fatalf("vx = %v, want 200", got)
	}
	if r.PaddleBounces != 1 {
		t.Errorf("paddle bounces = %d, want 1", r.PaddleBounces)
	}
}

func TestRightPaddleBounce(t *testing.T) {
	s := NewState()
	paddleY := s.Paddles[Player2].Position.Y
	s.Balls = []Ball{{
		Position: Vector2{X: ArenaWidth - 22, Y: paddleY + 40},
		Velocity: Vector2{X: 200, Y: 0},
	}}
	Update(s, [PlayerCount]int{}, 0.005)
	if got := s.Balls[0].Velocity.X; got != -200 {
		t.Fatalf("vx = %v, want -200", got)
	}
}

func TestNoBounceOutsideBand(t *testing.T) {
	s := NewState()
	paddleY := s.Paddles[Player1].Position.Y
	s.Balls = []Ball{{
		Position: Vector2{X: 22, Y: paddleY + 1000},
		Velocity: Vector2{X: -200, Y: 0},
	}}
	Update(s, [PlayerCount]int{}, 0.005)
	if got := s.Balls[0].Velocity.X; got != -200 {
		t.Fatalf("vx = %v, want -200", got)
	}
}

func TestNoBounceWhenMovingAway(t *testing.T) {
	s := NewState()
	paddleY := s.Paddles[Player1].Position.Y
	s.Balls = []Ball{{
		Position: Vector2{X: 22, Y: paddleY},
		Velocity: Vector2{X: 200, Y: 0},
	}}
	Update(s, [PlayerCount]int{}, 0.005)
	if got := s.Balls[0].Velocity.X; got != 200 {
		t.Fatalf("vx = %v, want 200", got)
	}
}

func TestPaddleEdgeIsInclusive(t *testing.T) {
	s := NewState()
	paddleY := s.Paddles[Player1].Position.Y
	s.Balls = []Ball{{
		Position: Vector2{X: 22, Y: paddleY + PaddleWidth/2},
		Velocity: Vector2{X: -200, Y: 0},
	}}
	Update(s, [PlayerCount]int{}, 0.005)
	if got := s.Balls[0].Velocity.X; got != 200 {
		t.Fatalf("vx at paddle edge = %v, want 200", got)
	}
}

func TestOutOfBoundsRespawns(t *testing.T) {
	s := stateWithBall(Ball{
		Position: Vector2{X: 1, Y: 300},
		Velocity: Vector2{X: -200, Y: 50},
	})
	s.SpawnBall()

	r := Update(s, [PlayerCount]int{}, 0.016)
	if r.Respawns != 1 {
		t.Fatalf("respawns = %d, want 1", r.Respawns)
	}
	if len(s.Balls) != 2 {
		t.Fatalf("ball count = %d, want 2", len(s.Balls))
	}
	if s.Balls[0] != NewBall() {
		t.Errorf("respawned ball = %+v, want %+v", s.Balls[0], NewBall())
	}
}

func TestBallLeavingRightEdgeRespawns(t *testing.T) {
	s := stateWithBall(Ball{
		Position: Vector2{X: ArenaWidth - 1, Y: 100},
		Velocity: Vector2{X: 200, Y: 0},
	})
	r := Update(s, [PlayerCount]int{}, 0.016)
	if r.Respawns != 1 || s.Balls[0] != NewBall() {
		t.Fatalf("ball = %+v respawns = %d", s.Balls[0], r.Respawns)
	}
}

func TestStraightRunMatchesOracle(t *testing.T) {
	s := NewState()
	mt := newTestTime()
	clock := NewClock(mt)

	const ticks = 62 // 62 * 16ms = 0.992s; the partial tick is dropped
	elapsed := 0.0
	for i := 0; i < ticks; i++ {
		dt := clock.Tick()
		elapsed += dt
		r := Update(s, [PlayerCount]int{}, dt)
		if r.WallBounces+r.PaddleBounces+r.Respawns != 0 {
			t.Fatalf("tick %d: unexpected collision %+v", i, r)
		}
	}

	wantX := ArenaWidth/2 + InitialBallVelocityX*elapsed
	wantY := ArenaHeight/2 + InitialBallVelocityY*elapsed
	got := s.Balls[0].Position
	if math.Abs(got.X-wantX) > 1e-6 || math.Abs(got.Y-wantY) > 1e-6 {
		t.Fatalf("position = %+v, want (%v, %v)", got, wantX, wantY)
	}
	if math.Abs(elapsed-0.992) > 1e-9 {
		t.Errorf("elapsed = %v, want 0.992", elapsed)
	}
	if math.Abs((got.X-ArenaWidth/2)-(-198.4)) > 1e-6 {
		t.Errorf("net x travel = %v, want -198.4", got.X-ArenaWidth/2)
	}
}
