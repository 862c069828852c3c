//go:build ebiten

package app

import (
	"log"

	"species-life/internal/render"
	"species-life/internal/ui"
	"species-life/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 240

// Game adapts a core simulation to the ebiten.Game interface. Ebiten calls
// Update and Draw from the same goroutine, so Update doubles as the tick
// driver while key and mouse input go through the simulation's control and
// edit queue.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD

	cells []uint8
	scale int
	seed  int64
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, scale int, seed int64, showHUD bool) *Game {
	if scale <= 0 {
		scale = 1
	}
	size := sim.Size()
	g := &Game{
		sim:     sim,
		painter: render.NewGridPainter(size.W, size.H, sim.View().Species()),
		overlay: ui.NewOverlay(sim, scale),
		scale:   scale,
		seed:    seed,
	}
	if showHUD {
		g.hud = ui.NewHUD(sim, hudWidth)
	}
	return g
}

// Reset reseeds the simulation and refills the grid on the next tick.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
}

// Update handles input and advances the simulation by one tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.sim.ToggleRunning()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.sim.SetRunning(true)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) || inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.sim.RequestStep()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.sim.RequestReset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.sim.RequestRandomize()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyX) {
		g.Reset(g.seed)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.handleClick(ebiten.CursorPosition())
	}

	g.overlay.Update()
	if g.hud != nil {
		g.hud.Update(g.gridWidth())
	}

	g.sim.Tick()
	return nil
}

func (g *Game) handleClick(mx, my int) {
	size := g.sim.Size()
	if mx < 0 || my < 0 || mx >= g.gridWidth() || my >= size.H*g.scale {
		return
	}
	x, y := mx/g.scale, my/g.scale
	view := g.sim.View()
	next := view.Get(x, y).Next(view.Species())
	if err := g.sim.SubmitEdit(x, y, next); err != nil {
		log.Printf("edit (%d,%d): %v", x, y, err)
	}
}

func (g *Game) gridWidth() int { return g.sim.Size().W * g.scale }

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	view := g.sim.View()
	g.cells = view.Fill(g.cells)
	g.painter.Blit(screen, g.cells, g.scale)
	g.overlay.Draw(screen)
	if g.hud != nil {
		g.hud.Draw(screen, g.gridWidth(), g.scale)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	w := s.W * g.scale
	if g.hud != nil {
		w += hudWidth
	}
	return w, s.H * g.scale
}
