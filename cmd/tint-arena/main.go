package main

import (
	"fmt"
	"image/color"
	"os"

	"github.com/charmbracelet/log"

	"github.com/lixenwraith/tint-arena/audio"
	"github.com/lixenwraith/tint-arena/config"
	"github.com/lixenwraith/tint-arena/core"
	"github.com/lixenwraith/tint-arena/game"
	"github.com/lixenwraith/tint-arena/input"
	"github.com/lixenwraith/tint-arena/parameter"
	"github.com/lixenwraith/tint-arena/render"
	"github.com/lixenwraith/tint-arena/render/window"
)

func main() {
	// Panic Recovery: print the stack after the window is gone
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "tint-arena: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load("tint-arena", os.Args[1:], config.DefaultEnvFile)
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
	log.Info("starting", "frontend", "window", "fullscreen", cfg.Fullscreen)

	keys := &input.KeySet{}
	opts := game.Options{Input: keys}

	// Initialize audio engine, failures only cost the chime
	if player := startAudio(cfg); player != nil {
		defer player.Close()
		opts.Audio = player
	}

	session, err := game.NewSession(opts)
	if err != nil {
		return err
	}

	viewport := render.NewViewport(parameter.ArenaSize, parameter.ArenaSize, 1)
	orchestrator := render.NewOrchestrator(session.Catalog, viewport, backgroundColor(session))

	g := window.New(session, keys, orchestrator)
	if err := window.Run(g, window.Config{Title: "tint-arena", Fullscreen: cfg.Fullscreen}); err != nil {
		return fmt.Errorf("window: %w", err)
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

func backgroundColor(s *game.Session) color.RGBA {
	if a, ok := s.Catalog.Lookup(s.Assets.Background); ok {
		return a.Color
	}
	return color.RGBA{A: 255}
}
