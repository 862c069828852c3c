//go:build ebiten

package ui

import (
	"image/color"

	"species-life/internal/render"
	"species-life/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Overlay draws cell outlines and a hover marker on top of the grid.
type Overlay struct {
	sim       core.Sim
	scale     int
	showLines bool
	palette   []color.RGBA

	hoverX, hoverY int
	hovering       bool
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	if scale <= 0 {
		scale = 1
	}
	return &Overlay{
		sim:       sim,
		scale:     scale,
		showLines: scale >= 4,
		palette:   render.Palette(sim.View().Species()),
	}
}

// Update toggles grid lines and tracks the hovered cell.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		o.showLines = !o.showLines
	}
	size := o.sim.Size()
	mx, my := ebiten.CursorPosition()
	o.hoverX, o.hoverY = mx/o.scale, my/o.scale
	o.hovering = mx >= 0 && my >= 0 && o.hoverX < size.W && o.hoverY < size.H
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	size := o.sim.Size()
	if size.W <= 0 || size.H <= 0 {
		return
	}
	s := float32(o.scale)
	if o.showLines {
		view := o.sim.View()
		for y := 0; y < size.H; y++ {
			for x := 0; x < size.W; x++ {
				c := int(view.Get(x, y))
				if c >= len(o.palette) {
					c = len(o.palette) - 1
				}
				edge := render.Darker(o.palette[c])
				vector.StrokeRect(screen, float32(x)*s+0.5, float32(y)*s+0.5, s-1, s-1, 1, edge, false)
			}
		}
	}
	if o.hovering {
		vector.StrokeRect(screen, float32(o.hoverX)*s, float32(o.hoverY)*s, s, s, 2, color.RGBA{R: 240, G: 60, B: 60, A: 255}, false)
	}
}
