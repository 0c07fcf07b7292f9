package window

import (
	"PongArena/config"
	"PongArena/core"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

var keyByChar = map[byte]ebiten.Key{
	'a': ebiten.KeyA, 'b': ebiten.KeyB, 'c': ebiten.KeyC, 'd': ebiten.KeyD,
	'e': ebiten.KeyE, 'f': ebiten.KeyF, 'g': ebiten.KeyG, 'h': ebiten.KeyH,
	'i': ebiten.KeyI, 'j': ebiten.KeyJ, 'k': ebiten.KeyK, 'l': ebiten.KeyL,
	'm': ebiten.KeyM, 'n': ebiten.KeyN, 'o': ebiten.KeyO, 'p': ebiten.KeyP,
	'q': ebiten.KeyQ, 'r': ebiten.KeyR, 's': ebiten.KeyS, 't': ebiten.KeyT,
	'u': ebiten.KeyU, 'v': ebiten.KeyV, 'w': ebiten.KeyW, 'x': ebiten.KeyX,
	'y': ebiten.KeyY, 'z': ebiten.KeyZ,
	'0': ebiten.KeyDigit0, '1': ebiten.KeyDigit1, '2': ebiten.KeyDigit2, '3': ebiten.KeyDigit3,
	'4': ebiten.KeyDigit4, '5': ebiten.KeyDigit5, '6': ebiten.KeyDigit6, '7': ebiten.KeyDigit7,
	'8': ebiten.KeyDigit8, '9': ebiten.KeyDigit9,
}

type bindings struct {
	up, down    [core.PlayerCount]ebiten.Key
	quit, spawn ebiten.Key
}

func bind(km config.Keymap) (bindings, error) {
	var b bindings
	lookup := func(name, v string, dst *ebiten.Key) error {
		if len(v) != 1 {
			return fmt.Errorf("keymap %s: %q is not a single key", name, v)
		}
		k, ok := keyByChar[v[0]]
		if !ok {
			return fmt.Errorf("keymap %s: no window key for %q", name, v)
		}
		*dst = k
		return nil
	}
	for _, e := range []struct {
		name string
		v    string
		dst  *ebiten.Key
	}{
		{"player1.up", km.Player1.Up, &b.up[core.Player1]},
		{"player1.down", km.Player1.Down, &b.down[core.Player1]},
		{"player2.up", km.Player2.Up, &b.up[core.Player2]},
		{"player2.down", km.Player2.Down, &b.down[core.Player2]},
		{"quit", km.Quit, &b.quit},
		{"spawn", km.Spawn, &b.spawn},
	} {
		if err := lookup(e.name, e.v, e.dst); err != nil {
			return bindings{}, err
		}
	}
	return b, nil
}

// keyboard samples ebiten's live key state once per Poll.
type keyboard struct {
	keys   bindings
	mapper core.InputMapper
}

func (k *keyboard) Poll() core.Intent {
	var s core.KeySnapshot
	for i := range s.Up {
		s.Up[i] = ebiten.IsKeyPressed(k.keys.up[i])
		s.Down[i] = ebiten.IsKeyPressed(k.keys.down[i])
	}
	s.Quit = ebiten.IsKeyPressed(k.keys.quit)
	s.Spawn = ebiten.IsKeyPressed(k.keys.spawn)
	s.Cancel = ebiten.IsKeyPressed(ebiten.KeyEscape)
	s.Closed = ebiten.IsWindowBeingClosed()
	return k.mapper.Map(s)
}
