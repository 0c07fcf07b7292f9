package terminal

import (
	"PongArena/config"
	"PongArena/core"
	"fmt"
	"time"
	"unicode"

	"github.com/gdamore/tcell"
)

const BallSymbol = 0x25CF   // 球符號
const PaddleSymbol = 0x2588 // 球拍符號
const WallSymbol = 0x2580   // 牆壁符號

// Terminals start auto-repeat only after a delay, so a held spawn key goes
// quiet for longer than the movement hold. This keeps one press, one ball.
const spawnHold = 600 * time.Millisecond

// Terminal is both the input device and the renderer for a tcell screen.
// Terminals never report key releases; a key counts as held until no event
// for it has arrived within the hold window.
type Terminal struct {
	screen tcell.Screen
	keys   config.Keymap
	hold   time.Duration
	clock  core.TimeSource

	events   chan *tcell.EventKey
	lastSeen map[rune]time.Time
	escapeAt time.Time
	closed   bool
	mapper   core.InputMapper

	styles map[core.Role]tcell.Style
}

func New(screen tcell.Screen, keys config.Keymap, hold time.Duration, clock core.TimeSource) *Terminal {
	return &Terminal{
		screen:   screen,
		keys:     keys,
		hold:     hold,
		clock:    clock,
		events:   make(chan *tcell.EventKey, 64),
		lastSeen: make(map[rune]time.Time),
		styles: map[core.Role]tcell.Style{
			core.RoleWall:   tcell.StyleDefault.Foreground(tcell.ColorGray),
			core.RolePaddle: tcell.StyleDefault.Foreground(tcell.ColorWhite),
			core.RoleBall:   tcell.StyleDefault.Foreground(tcell.ColorYellow),
		},
	}
}

// Start forwards key events from the screen to Poll. The goroutine exits
// once the screen is finalized.
func (t *Terminal) Start() {
	//建立一個goroutine去監聽鍵盤的事件
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				close(t.events)
				return
			}
			if key, ok := ev.(*tcell.EventKey); ok {
				t.events <- key
			}
		}
	}()
}

// Poll drains pending key events without blocking and maps the resulting
// held state to an intent.
func (t *Terminal) Poll() core.Intent {
	now := t.clock.Now()
	for drained := false; !drained; {
		select {
		case ev, ok := <-t.events:
			if !ok {
				t.closed = true
				drained = true
				break
			}
			t.handle(ev, now)
		default:
			drained = true
		}
	}
	return t.mapper.Map(t.snapshot(now))
}

func (t *Terminal) handle(ev *tcell.EventKey, now time.Time) {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		t.closed = true
	case tcell.KeyEscape:
		t.escapeAt = now
	case tcell.KeyRune:
		t.lastSeen[unicode.ToLower(ev.Rune())] = now
	}
}

func (t *Terminal) held(r rune, now time.Time, window time.Duration) bool {
	at, ok := t.lastSeen[r]
	return ok && now.Sub(at) < window
}

func (t *Terminal) snapshot(now time.Time) core.KeySnapshot {
	k := t.keys
	var s core.KeySnapshot
	s.Up[core.Player1] = t.held(config.Rune(k.Player1.Up), now, t.hold)
	s.Down[core.Player1] = t.held(config.Rune(k.Player1.Down), now, t.hold)
	s.Up[core.Player2] = t.held(config.Rune(k.Player2.Up), now, t.hold)
	s.Down[core.Player2] = t.held(config.Rune(k.Player2.Down), now, t.hold)
	s.Quit = t.held(config.Rune(k.Quit), now, t.hold)
	s.Spawn = t.held(config.Rune(k.Spawn), now, spawnHold)
	s.Cancel = !t.escapeAt.IsZero() && now.Sub(t.escapeAt) < t.hold
	s.Closed = t.closed
	return s
}

// Render scales the logical arena onto the current cell grid.
func (t *Terminal) Render(frame []core.Primitive) {
	t.screen.Clear()
	cols, rows := t.screen.Size()
	for _, p := range frame {
		x0, x1 := cellSpan(p.Rect.X, p.Rect.W, int(core.ArenaWidth), cols)
		y0, y1 := cellSpan(p.Rect.Y, p.Rect.H, int(core.ArenaHeight), rows)
		Print(t.screen, y0, x0, x1-x0, y1-y0, symbolFor(p.Role), t.styles[p.Role])
	}
	t.screen.Show()
}

// cellSpan maps [pos, pos+size) in logical units to a half-open cell range
// that is at least one cell wide.
func cellSpan(pos, size, logical, cells int) (int, int) {
	start := pos * cells / logical
	end := (pos + size) * cells / logical
	if end <= start {
		end = start + 1
	}
	return start, end
}

func symbolFor(role core.Role) rune {
	switch role {
	case core.RoleBall:
		return BallSymbol
	case core.RolePaddle:
		return PaddleSymbol
	}
	return WallSymbol
}

func Print(screen tcell.Screen, row, col, width, height int, ch rune, style tcell.Style) {
	for r := 0; r < height; r++ {
		for c := 0; c < width; c++ {
			screen.SetContent(col+c, row+r, ch, nil, style)
		}
	}
}

func initScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}

	defaultStyle := tcell.StyleDefault.
		Background(tcell.ColorBlack).
		Foreground(tcell.ColorWhite)
	screen.SetStyle(defaultStyle)
	return screen, nil
}

// Run opens the terminal screen and plays until quit.
func Run(keys config.Keymap, hold time.Duration) error {
	screen, err := initScreen()
	if err != nil {
		return err
	}
	defer screen.Fini()

	t := New(screen, keys, hold, core.SystemTime{})
	t.Start()
	core.NewLoop(core.NewState(), t, core.NewClock(core.SystemTime{}), t).Run()
	return nil
}
