package core

import (
	"PongArena/logger"
	"fmt"
)

// Renderer receives one frame of primitives per iteration.
type Renderer interface {
	Render(frame []Primitive)
}

// Loop ties input, clock, engine and renderer together. All of them are only
// touched from the goroutine that calls Step or Run.
type Loop struct {
	state    *State
	input    Input
	clock    *Clock
	renderer Renderer
	ticks    uint64
}

func NewLoop(state *State, input Input, clock *Clock, renderer Renderer) *Loop {
	return &Loop{
		state:    state,
		input:    input,
		clock:    clock,
		renderer: renderer,
	}
}

// Run iterates until the input reports quit. Shutting down the frontend is
// left to the caller.
func (l *Loop) Run() {
	logger.Log.Info(logger.LoopStartMsg)
	for l.Step() {
	}
	logger.Log.Info(fmt.Sprintf(logger.LoopStopMsg, l.ticks, len(l.state.Balls)))
}

// Step runs one iteration and reports whether the loop should keep going.
func (l *Loop) Step() bool {
	intent := l.input.Poll()
	if intent.Quit {
		return false
	}

	if intent.SpawnBall {
		n := l.state.SpawnBall()
		logger.Log.Debug(fmt.Sprintf(logger.BallSpawnedMsg, n))
	}

	dt := l.clock.Tick()
	report := Update(l.state, intent.Directions, dt)
	l.ticks++
	if report.Respawns > 0 {
		logger.Log.Debug(fmt.Sprintf(logger.BallRespawnedMsg, report.Respawns, l.ticks))
	}

	l.renderer.Render(Project(l.state))
	return true
}

func (l *Loop) Ticks() uint64 {
	return l.ticks
}

func (l *Loop) State() *State {
	return l.state
}
