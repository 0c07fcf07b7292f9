package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	FrontendWindow   = "window"
	FrontendTerminal = "terminal"
	FrontendHeadless = "headless"
)

const DefaultEnv = "dev"

// Settings is the resolved configuration for one run.
type Settings struct {
	Env        string
	ConfigFile string

	Frontend    string
	WindowTitle string
	WindowScale float64

	TerminalHold time.Duration

	HeadlessTicks      uint64
	HeadlessSpawnEvery uint64

	KeymapFile string
	LogDir     string
}

// NewFlagSet declares the command-line overrides. Flag names match the
// lowercased property keys so viper can bind them directly.
func NewFlagSet(name string) *pflag.FlagSet {
	flags := pflag.NewFlagSet(name, pflag.ContinueOnError)
	flags.String("env", "", "properties file to load from properties/ (overrides PONG_ENV)")
	flags.String("frontend", "", "window, terminal or headless")
	flags.Uint64("ticks", 0, "stop a headless run after this many ticks (0 = until interrupted)")
	flags.String("keymap", "", "path to the keymap TOML file")
	return flags
}

// LoadEnv reads .env into the process environment if one exists.
func LoadEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// ReadProperties loads <dir>/<env>.properties, layering flags over the file
// and the file over the built-in defaults. A missing file is not an error.
func ReadProperties(dir string, flags *pflag.FlagSet) (*Settings, error) {
	env := os.Getenv("PONG_ENV")
	if flags != nil {
		if f := flags.Lookup("env"); f != nil && f.Changed {
			env = f.Value.String()
		}
	}
	if env == "" {
		env = DefaultEnv
	}

	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("properties")
	v.AddConfigPath(dir)

	v.SetDefault("FRONTEND", FrontendWindow)
	v.SetDefault("WINDOW_TITLE", "Pong")
	v.SetDefault("WINDOW_SCALE", 1.0)
	v.SetDefault("TERMINAL_HOLD_MS", 120)
	v.SetDefault("HEADLESS_TICKS", 0)
	v.SetDefault("HEADLESS_SPAWN_EVERY", 0)
	v.SetDefault("KEYMAP_FILE", "keymap.toml")
	v.SetDefault("LOG_DIR", "./")

	if flags != nil {
		bindings := map[string]string{
			"FRONTEND":       "frontend",
			"HEADLESS_TICKS": "ticks",
			"KEYMAP_FILE":    "keymap",
		}
		for key, name := range bindings {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read properties %s: %w", env, err)
		}
	}

	s := &Settings{
		Env:                env,
		ConfigFile:         v.ConfigFileUsed(),
		Frontend:           cast.ToString(v.Get("FRONTEND")),
		WindowTitle:        cast.ToString(v.Get("WINDOW_TITLE")),
		WindowScale:        cast.ToFloat64(v.Get("WINDOW_SCALE")),
		TerminalHold:       time.Duration(cast.ToInt64(v.Get("TERMINAL_HOLD_MS"))) * time.Millisecond,
		HeadlessTicks:      cast.ToUint64(v.Get("HEADLESS_TICKS")),
		HeadlessSpawnEvery: cast.ToUint64(v.Get("HEADLESS_SPAWN_EVERY")),
		KeymapFile:         cast.ToString(v.Get("KEYMAP_FILE")),
		LogDir:             cast.ToString(v.Get("LOG_DIR")),
	}
	return s, s.validate()
}

func (s *Settings) validate() error {
	switch s.Frontend {
	case FrontendWindow, FrontendTerminal, FrontendHeadless:
	default:
		return fmt.Errorf("unknown frontend %q", s.Frontend)
	}
	if s.WindowScale <= 0 {
		return fmt.Errorf("WINDOW_SCALE must be positive, got %v", s.WindowScale)
	}
	if s.TerminalHold <= 0 {
		return fmt.Errorf("TERMINAL_HOLD_MS must be positive, got %v", s.TerminalHold)
	}
	return nil
}
