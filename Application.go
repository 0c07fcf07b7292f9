package main

import (
	"PongArena/config"
	"PongArena/core"
	"PongArena/headless"
	"PongArena/logger"
	"PongArena/terminal"
	"PongArena/window"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/pflag"
)

func main() {
	if err := start(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func start(args []string) error {
	if err := config.LoadEnv(".env"); err != nil {
		return err
	}

	flags := config.NewFlagSet("pong")
	if err := flags.Parse(args); err != nil {
		return err
	}

	settings, err := config.ReadProperties("./properties", flags)
	if err != nil {
		return err
	}

	if err := logger.Log.Init(settings.LogDir); err != nil {
		return err
	}
	logger.Log.Info(fmt.Sprintf(logger.ConfigLoadedMsg, settings.Env, settings.ConfigFile))

	keys, err := config.LoadKeymap(settings.KeymapFile)
	if err != nil {
		return err
	}
	logger.Log.Info(fmt.Sprintf(logger.KeymapLoadedMsg, settings.KeymapFile))

	logger.Log.Info(fmt.Sprintf(logger.FrontendStartMsg, settings.Frontend, settings.Env))
	if err := runFrontend(settings, keys); err != nil {
		logger.Log.Error(fmt.Sprintf(logger.FrontendInitFailMsg, settings.Frontend, err))
		return err
	}
	return nil
}

func runFrontend(settings *config.Settings, keys config.Keymap) error {
	switch settings.Frontend {
	case config.FrontendTerminal:
		logger.Log.SetConsole(false)
		return terminal.Run(keys, settings.TerminalHold)

	case config.FrontendHeadless:
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		headless.Run(ctx, headless.Config{
			Ticks:      settings.HeadlessTicks,
			SpawnEvery: settings.HeadlessSpawnEvery,
		}, core.SystemTime{})
		return nil

	default:
		return window.RunWindow(keys, window.Options{
			Title: settings.WindowTitle,
			Scale: settings.WindowScale,
		})
	}
}
