package main

import (
	"fmt"
	"image/color"
	"os"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tint-arena/audio"
	"github.com/lixenwraith/tint-arena/config"
	"github.com/lixenwraith/tint-arena/core"
	"github.com/lixenwraith/tint-arena/game"
	"github.com/lixenwraith/tint-arena/input"
	"github.com/lixenwraith/tint-arena/parameter"
	"github.com/lixenwraith/tint-arena/render"
	"github.com/lixenwraith/tint-arena/render/tui"
)

func main() {
	// Panic Recovery: ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "tint-arena-tui: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load("tint-arena-tui", os.Args[1:], config.DefaultEnvFile)
	if err != nil {
		return err
	}

	logCloser, err := core.SetupLogging(cfg.Debug, cfg.LogDir)
	if err != nil {
		return err
	}
	if logCloser != nil {
		defer logCloser.Close()
	}
	log.Info("starting", "frontend", "terminal", "color", cfg.ColorMode)

	// tcell reads these at screen creation
	switch cfg.ColorMode {
	case config.Color256:
		os.Setenv("TCELL_TRUECOLOR", "disable")
	case config.ColorTrueColor:
		os.Setenv("COLORTERM", "truecolor")
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initialize terminal: %w", err)
	}
	core.SetCrashReset(screen.Fini)
	// Normal exit terminal cleanup
	defer screen.Fini()

	hold := input.NewHoldTracker(cfg.HoldWindow, nil)
	opts := game.Options{Input: hold}

	if player := startAudio(cfg); player != nil {
		defer player.Close()
		opts.Audio = player
	}

	session, err := game.NewSession(opts)
	if err != nil {
		return err
	}

	bg := color.RGBA{A: 255}
	if a, ok := session.Catalog.Lookup(session.Assets.Background); ok {
		bg = a.Color
	}
	viewport := render.NewViewport(parameter.ArenaSize, parameter.ArenaSize, tui.CellAspect)
	orchestrator := render.NewOrchestrator(session.Catalog, viewport, bg)

	if err := tui.New(session, hold, screen, orchestrator).Run(); err != nil {
		return err
	}

	log.Info("shutdown", "ticks", session.World.TickNumber())
	return nil
}

func startAudio(cfg config.Config) *audio.Player {
	if cfg.Mute {
		return nil
	}
	ac := audio.DefaultAudioConfig()
	ac.MasterVolume = cfg.Volume

	p := audio.NewPlayer(ac)
	if err := p.Start(); err != nil {
		log.Warn("audio start failed, continuing without audio", "err", err)
		return nil
	}
	return p
}
