// Package tui is the terminal front-end: tcell input and cell rendering around a fixed-step clock
package tui

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tint-arena/core"
	"github.com/lixenwraith/tint-arena/engine"
	"github.com/lixenwraith/tint-arena/game"
	"github.com/lixenwraith/tint-arena/input"
	"github.com/lixenwraith/tint-arena/parameter"
	"github.com/lixenwraith/tint-arena/render"
)

// CellAspect is the height-to-width ratio of a typical terminal cell
const CellAspect = 2.0

// App runs a session inside a tcell screen
type App struct {
	session *game.Session
	hold    *input.HoldTracker
	screen  tcell.Screen
	orch    *render.Orchestrator
	target  *screenTarget
	clock   *engine.ClockScheduler
}

// New creates the terminal app; hold must be the session's input state
func New(session *game.Session, hold *input.HoldTracker, screen tcell.Screen, orch *render.Orchestrator) *App {
	w, h := screen.Size()
	orch.Viewport().Resize(w, h)

	return &App{
		session: session,
		hold:    hold,
		screen:  screen,
		orch:    orch,
		target:  &screenTarget{screen: screen},
		clock:   engine.NewClockScheduler(engine.NewMonotonicTimeProvider(), parameter.TickInterval, parameter.MaxCatchUpTicks),
	}
}

// Run blocks until quit; the caller owns screen Init and Fini
func (a *App) Run() error {
	events := make(chan tcell.Event, 64)
	done := make(chan struct{})
	defer close(done)

	core.Go(func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	})

	frameTicker := time.NewTicker(parameter.FrameUpdateInterval)
	defer frameTicker.Stop()

	a.clock.Start()
	lastFrame := time.Now()

	for {
		select {
		case ev := <-events:
			a.HandleEvent(ev)

		case now := <-frameTicker.C:
			ticks, _ := a.clock.Advance()
			for i := 0; i < ticks; i++ {
				if a.session.Tick() {
					log.Info("terminal quit", "dropped_ticks", a.clock.DroppedTicks())
					return nil
				}
			}
			a.session.Frame(now.Sub(lastFrame))
			lastFrame = now
			a.Draw()
		}

		if a.session.QuitRequested() {
			return nil
		}
	}
}

// HandleEvent applies one terminal event: key presses feed the hold tracker, resizes the viewport
func (a *App) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			a.session.RequestQuit()
			return
		}
		if k := translateKey(ev.Key(), ev.Rune()); k != input.KeyNone {
			a.hold.Press(k)
		}

	case *tcell.EventResize:
		w, h := ev.Size()
		if a.orch.Viewport().Resize(w, h) {
			a.hold.ReleaseAll()
			a.screen.Sync()
			log.Debug("terminal resized", "cols", w, "rows", h)
		}

	case *tcell.EventFocus:
		if !ev.Focused {
			a.hold.ReleaseAll()
		}
	}
}

// Draw renders the current world state and shows it
func (a *App) Draw() {
	a.orch.RenderFrame(a.session.World, a.target)
	a.screen.Show()
}
