// Package basitaebiten runs a basita scheduler as an ebiten game.
package basitaebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/oliverbestmann/basita"
	"github.com/oliverbestmann/basita/gm"
	"github.com/oliverbestmann/basita/scene"
)

// SceneState is implemented by states that draw a scene.World.
type SceneState interface {
	basita.Runnable
	Scene() *scene.World
}

type Drawer[S any] interface {
	Draw(screen *ebiten.Image, state S)
}

type DrawerFunc[S any] func(screen *ebiten.Image, state S)

func (f DrawerFunc[S]) Draw(screen *ebiten.Image, state S) {
	f(screen, state)
}

type WindowConfig struct {
	Title         string
	Width         int
	Height        int
	DisableResize bool

	// updates per second, zero keeps the ebiten default
	TPS int
}

// Game implements ebiten.Game. Every ebiten update runs one frame of the scheduler.
type Game[S basita.Runnable] struct {
	Scheduler *basita.Scheduler[S]
	State     S

	drawers    []Drawer[S]
	screenSize gm.Vec
}

func NewGame[S basita.Runnable](scheduler *basita.Scheduler[S], state S, drawers ...Drawer[S]) *Game[S] {
	return &Game[S]{
		Scheduler: scheduler,
		State:     state,
		drawers:   drawers,
	}
}

func (g *Game[S]) AddDrawer(drawer Drawer[S]) {
	g.drawers = append(g.drawers, drawer)
}

func (g *Game[S]) Update() error {
	if g.Scheduler.Phase() == basita.PhaseInitializing {
		g.Scheduler.Init(g.State)
	}

	if !g.Scheduler.Step(g.State) {
		return ebiten.Termination
	}

	return nil
}

func (g *Game[S]) Draw(screen *ebiten.Image) {
	for _, drawer := range g.drawers {
		drawer.Draw(screen, g.State)
	}
}

func (g *Game[S]) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	g.screenSize = gm.Vec{X: float64(outsideWidth), Y: float64(outsideHeight)}
	return outsideWidth, outsideHeight
}

// ScreenSize returns the size of the screen as of the last layout.
func (g *Game[S]) ScreenSize() gm.Vec {
	return g.screenSize
}

// Run opens the window and blocks until the scheduler stops or the window is closed.
func Run[S basita.Runnable](win WindowConfig, game *Game[S]) error {
	ebiten.SetWindowTitle(win.Title)
	ebiten.SetWindowSize(win.Width, win.Height)

	if !win.DisableResize {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	if win.TPS > 0 {
		ebiten.SetTPS(win.TPS)
	}

	var options ebiten.RunGameOptions
	options.SingleThread = true

	return ebiten.RunGameWithOptions(game, &options)
}
