// Package window is the desktop front-end: an ebiten game loop running the simulation at a fixed TPS
package window

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/tint-arena/game"
	"github.com/lixenwraith/tint-arena/input"
	"github.com/lixenwraith/tint-arena/parameter"
	"github.com/lixenwraith/tint-arena/render"
)

// Initial windowed size before any resize
const (
	defaultWidth  = 1024
	defaultHeight = 1024
)

// keyMap binds ebiten keys to the device-independent keys
var keyMap = map[ebiten.Key]input.Key{
	ebiten.KeyArrowLeft:  input.KeyLeft,
	ebiten.KeyArrowRight: input.KeyRight,
	ebiten.KeyArrowUp:    input.KeyUp,
	ebiten.KeyArrowDown:  input.KeyDown,
	ebiten.KeyA:          input.KeyA,
	ebiten.KeyD:          input.KeyD,
	ebiten.KeyW:          input.KeyW,
	ebiten.KeyS:          input.KeyS,
	ebiten.KeyEscape:     input.KeyEscape,
}

// Config controls window presentation
type Config struct {
	Title      string
	Fullscreen bool
}

// Game adapts a session to ebiten: Update is the fixed tick, Draw is the frame
type Game struct {
	session *game.Session
	keys    *input.KeySet
	orch    *render.Orchestrator

	lastFrame time.Time
}

// New creates the window game; keys must be the session's input state
func New(session *game.Session, keys *input.KeySet, orch *render.Orchestrator) *Game {
	return &Game{
		session: session,
		keys:    keys,
		orch:    orch,
	}
}

// Update samples held keys and runs one simulation tick
func (g *Game) Update() error {
	for ek, k := range keyMap {
		g.keys.Set(k, ebiten.IsKeyPressed(ek))
	}
	if g.session.Tick() {
		return ebiten.Termination
	}
	return nil
}

// Draw runs the frame systems then renders the arena
func (g *Game) Draw(screen *ebiten.Image) {
	now := time.Now()
	dt := parameter.TickInterval
	if !g.lastFrame.IsZero() {
		dt = now.Sub(g.lastFrame)
	}
	g.lastFrame = now

	g.session.Frame(dt)
	g.orch.RenderFrame(g.session.World, screenTarget{dst: screen})
}

// Layout tracks the window size as the logical resolution
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.orch.Viewport().Resize(outsideWidth, outsideHeight) {
		log.Debug("window resized", "width", outsideWidth, "height", outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// Run opens the window and blocks until quit or close
func Run(g *Game, cfg Config) error {
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(defaultWidth, defaultHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(cfg.Fullscreen)
	ebiten.SetTPS(parameter.TickRate)

	log.Info("window starting", "fullscreen", cfg.Fullscreen, "tps", parameter.TickRate)
	return ebiten.RunGame(g)
}
