package window

import (
	"PongArena/config"
	"PongArena/core"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Options configures the desktop window.
type Options struct {
	Title string
	Scale float64
}

// RunWindow opens a desktop window and drives the loop from ebiten's update
// callback. It blocks until the game quits or the window closes.
func RunWindow(keys config.Keymap, opts Options) error {
	bindings, err := bind(keys)
	if err != nil {
		return err
	}

	g := &game{
		keyboard: &keyboard{keys: bindings},
		frame:    &frameBuffer{},
	}
	g.loop = core.NewLoop(core.NewState(), g.keyboard, core.NewClock(core.SystemTime{}), g.frame)

	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowSize(int(core.ArenaWidth*opts.Scale), int(core.ArenaHeight*opts.Scale))
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(60)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}

type game struct {
	loop     *core.Loop
	keyboard *keyboard
	frame    *frameBuffer
}

func (g *game) Update() error {
	if !g.loop.Step() {
		return ebiten.Termination
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	for _, p := range g.frame.last {
		vector.DrawFilledRect(screen,
			float32(p.Rect.X), float32(p.Rect.Y), float32(p.Rect.W), float32(p.Rect.H),
			color.White, false)
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("balls: %d", len(g.loop.State().Balls)), 8, core.WallThickness+4)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(core.ArenaWidth), int(core.ArenaHeight)
}

// frameBuffer keeps the most recent frame for Draw. Update and Draw run on
// the same goroutine, so no locking is needed.
type frameBuffer struct {
	last []core.Primitive
}

func (f *frameBuffer) Render(frame []core.Primitive) {
	f.last = frame
}
