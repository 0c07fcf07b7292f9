package headless

import (
	"PongArena/core"
	"PongArena/logger"
	"context"
	"fmt"
)

// Config controls a run without any display.
type Config struct {
	Ticks      uint64 // stop after this many ticks, 0 = until ctx is done
	SpawnEvery uint64 // press spawn once every N ticks, 0 = never
}

// Script is an Input that plays a fixed schedule: spawn presses at a fixed
// cadence, no paddle movement, and quit once the tick budget is spent or
// the context is cancelled.
type Script struct {
	ctx    context.Context
	cfg    Config
	polls  uint64
	mapper core.InputMapper
}

func NewScript(ctx context.Context, cfg Config) *Script {
	return &Script{ctx: ctx, cfg: cfg}
}

func (s *Script) Poll() core.Intent {
	var keys core.KeySnapshot
	select {
	case <-s.ctx.Done():
		keys.Closed = true
	default:
	}
	if s.cfg.Ticks > 0 && s.polls >= s.cfg.Ticks {
		keys.Closed = true
	}
	s.polls++
	if s.cfg.SpawnEvery > 0 && s.polls%s.cfg.SpawnEvery == 0 {
		keys.Spawn = true
	}
	return s.mapper.Map(keys)
}

// Recorder is a Renderer that keeps only frame statistics.
type Recorder struct {
	Frames uint64
	Last   []core.Primitive
}

func (r *Recorder) Render(frame []core.Primitive) {
	r.Frames++
	r.Last = frame
}

// Run plays with the given time source until the script quits and returns
// the recorder and final state for inspection.
func Run(ctx context.Context, cfg Config, clock core.TimeSource) (*Recorder, *core.State) {
	state := core.NewState()
	rec := &Recorder{}
	core.NewLoop(state, NewScript(ctx, cfg), core.NewClock(clock), rec).Run()
	logger.Log.Info(fmt.Sprintf(logger.HeadlessSummaryMsg, rec.Frames, len(state.Balls)))
	return rec, state
}
