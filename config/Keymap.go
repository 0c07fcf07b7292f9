package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

type PlayerKeys struct {
	Up   string `toml:"up"`
	Down string `toml:"down"`
}

// Keymap binds the game actions to single-character keys. Escape and the
// window close button always quit and are not configurable.
type Keymap struct {
	Quit    string     `toml:"quit"`
	Spawn   string     `toml:"spawn"`
	Player1 PlayerKeys `toml:"player1"`
	Player2 PlayerKeys `toml:"player2"`
}

func DefaultKeymap() Keymap {
	return Keymap{
		Quit:    "q",
		Spawn:   "b",
		Player1: PlayerKeys{Up: "w", Down: "s"},
		Player2: PlayerKeys{Up: "i", Down: "k"},
	}
}

// LoadKeymap decodes path over the defaults, so a file only needs the keys
// it changes. A missing file yields the defaults.
func LoadKeymap(path string) (Keymap, error) {
	km := DefaultKeymap()
	if path == "" {
		return km, nil
	}
	if _, err := toml.DecodeFile(path, &km); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultKeymap(), nil
		}
		return Keymap{}, fmt.Errorf("decode keymap %s: %w", path, err)
	}
	km.normalize()
	if err := km.Validate(); err != nil {
		return Keymap{}, fmt.Errorf("keymap %s: %w", path, err)
	}
	return km, nil
}

func (k *Keymap) normalize() {
	for _, key := range k.bindings() {
		*key.value = strings.ToLower(strings.TrimSpace(*key.value))
	}
}

type binding struct {
	name  string
	value *string
}

func (k *Keymap) bindings() []binding {
	return []binding{
		{"quit", &k.Quit},
		{"spawn", &k.Spawn},
		{"player1.up", &k.Player1.Up},
		{"player1.down", &k.Player1.Down},
		{"player2.up", &k.Player2.Up},
		{"player2.down", &k.Player2.Down},
	}
}

// Validate requires every binding to be one ASCII letter or digit and no
// two actions to share a key.
func (k *Keymap) Validate() error {
	seen := make(map[string]string)
	for _, b := range k.bindings() {
		v := *b.value
		if len(v) != 1 || !isKeyChar(v[0]) {
			return fmt.Errorf("%s: %q is not a single letter or digit", b.name, v)
		}
		if other, ok := seen[v]; ok {
			return fmt.Errorf("%s and %s are both bound to %q", other, b.name, v)
		}
		seen[v] = b.name
	}
	return nil
}

func isKeyChar(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9')
}

// Rune returns the bound character, assuming the keymap validated.
func Rune(key string) rune {
	if key == "" {
		return 0
	}
	return rune(key[0])
}
