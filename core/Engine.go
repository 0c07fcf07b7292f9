package core

import "math"

// TickReport counts what happened during a single Update.
type TickReport struct {
	WallBounces   int
	PaddleBounces int
	Respawns      int
}

// Update advances the simulation by dt seconds. Paddles move first, then every
// ball is integrated and tested against the walls, the arena edges and both
// paddles, in that order.
func Update(state *State, directions [PlayerCount]int, dt float64) TickReport {
	var report TickReport

	//兩個球拍
	for i := range state.Paddles {
		state.Paddles[i].Steer(directions[i])
		movePaddle(&state.Paddles[i], dt)
	}

	//球
	for i := range state.Balls {
		ball := &state.Balls[i]
		ball.Position.X += ball.Velocity.X * dt
		ball.Position.Y += ball.Velocity.Y * dt

		//檢查有沒有撞到上下牆壁
		if isCollidesWithWall(ball) {
			ball.Velocity.Y = -ball.Velocity.Y
			report.WallBounces++
		}

		if isBallOutSide(ball) {
			resetNewRound(ball)
			report.Respawns++
			continue
		}

		//檢查是否有碰到球拍
		for j := range state.Paddles {
			if isTouchPaddle(ball, &state.Paddles[j]) {
				ball.Velocity.X = -ball.Velocity.X
				report.PaddleBounces++
			}
		}
	}

	return report
}

func movePaddle(paddle *Paddle, dt float64) {
	if paddle.Direction == 0 {
		return
	}
	paddle.Position.Y += float64(paddle.Direction) * PaddleSpeed * dt
	if paddle.Position.Y < paddleMinY {
		paddle.Position.Y = paddleMinY
	} else if paddle.Position.Y > paddleMaxY {
		paddle.Position.Y = paddleMaxY
	}
}

// isCollidesWithWall only reports a hit while the ball is still heading into
// the wall, so a ball already moving away is never flipped twice.
func isCollidesWithWall(ball *Ball) bool {
	if ball.Position.Y <= WallThickness && ball.Velocity.Y < 0 {
		return true
	}
	return ball.Position.Y >= ArenaHeight-WallThickness && ball.Velocity.Y > 0
}

func isBallOutSide(ball *Ball) bool {
	return ball.Position.X < 0 || ball.Position.X > ArenaWidth
}

func resetNewRound(ball *Ball) {
	*ball = NewBall()
}

// isTouchPaddle treats the paddle as a reflective line: the ball has to sit in
// the thin band in front of the paddle, within half a paddle of its centre,
// and be travelling towards it.
func isTouchPaddle(ball *Ball, paddle *Paddle) bool {
	if math.Abs(paddle.Position.Y-ball.Position.Y) > PaddleWidth/2.0 {
		return false
	}
	lo, hi := bounceBand(paddle.Side)
	if ball.Position.X < lo || ball.Position.X > hi {
		return false
	}
	if paddle.Side == SideLeft {
		return ball.Velocity.X < 0
	}
	return ball.Velocity.X > 0
}

func bounceBand(side Side) (float64, float64) {
	if side == SideRight {
		return ArenaWidth - BounceBandFar, ArenaWidth - BounceBandNear
	}
	return BounceBandNear, BounceBandFar
}
