// Package term drives a simulation in a terminal using tcell.
//
// Input is read on its own goroutine and only ever reaches the simulation
// through its control and edit queue; the render loop is the single goroutine
// that calls Tick.
package term

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	icore "species-life/internal/core"
	"species-life/internal/render"
	"species-life/pkg/core"

	"github.com/gdamore/tcell/v2"
)

// frameInterval is how often the screen is redrawn; ticks are paced separately.
const frameInterval = 16 * time.Millisecond

// Frontend renders a simulation to a tcell screen and forwards input to it.
type Frontend struct {
	screen  tcell.Screen
	sim     core.Sim
	palette []tcell.Color
	pacer   *icore.FixedStep
	speed   chan int

	quit     chan struct{}
	quitOnce sync.Once

	// touched only by the input goroutine
	mouseDown bool
}

// New wires a frontend for sim onto an initialized screen, ticking at tps.
func New(screen tcell.Screen, sim core.Sim, tps int) *Frontend {
	colors := render.Palette(sim.View().Species())
	palette := make([]tcell.Color, len(colors))
	for i, c := range colors {
		palette[i] = tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	}
	return &Frontend{
		screen:  screen,
		sim:     sim,
		palette: palette,
		pacer:   icore.NewFixedStep(tps),
		speed:   make(chan int, 8),
		quit:    make(chan struct{}),
	}
}

// Run draws and ticks until ctx is cancelled or the user quits. The caller
// owns the screen and should Fini it afterwards.
func (f *Frontend) Run(ctx context.Context) error {
	f.screen.EnableMouse()
	go f.readInput()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-f.quit:
			return nil
		case <-ticker.C:
		}
		f.frame()
	}
}

// frame applies speed changes, ticks when due and redraws.
func (f *Frontend) frame() {
	for drained := false; !drained; {
		select {
		case delta := <-f.speed:
			f.pacer.SetTPS(clampTPS(f.pacer.TPS() + delta))
		default:
			drained = true
		}
	}
	if f.pacer.ShouldStep() {
		f.sim.Tick()
	}
	f.draw()
}

func clampTPS(tps int) int {
	if tps < 1 {
		return 1
	}
	if tps > 120 {
		return 120
	}
	return tps
}

func (f *Frontend) readInput() {
	for {
		ev := f.screen.PollEvent()
		if ev == nil {
			return
		}
		f.handleEvent(ev)
	}
}

func (f *Frontend) stop() {
	f.quitOnce.Do(func() { close(f.quit) })
}

func (f *Frontend) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		f.handleKey(ev)
	case *tcell.EventMouse:
		f.handleMouse(ev)
	case *tcell.EventResize:
		f.screen.Sync()
	}
}

func (f *Frontend) handleKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		f.stop()
		return
	case tcell.KeyEnter:
		f.sim.SetRunning(true)
		return
	case tcell.KeyRune:
	default:
		return
	}
	switch ev.Rune() {
	case 'q':
		f.stop()
	case ' ':
		f.sim.ToggleRunning()
	case 's', 'n':
		f.sim.RequestStep()
	case 'r':
		f.sim.RequestReset()
	case 'f':
		f.sim.RequestRandomize()
	case '+', '=':
		f.nudgeSpeed(1)
	case '-':
		f.nudgeSpeed(-1)
	}
}

func (f *Frontend) nudgeSpeed(delta int) {
	select {
	case f.speed <- delta:
	default:
	}
}

// Cells are two columns wide so they render roughly square.
func (f *Frontend) handleMouse(ev *tcell.EventMouse) {
	pressed := ev.Buttons()&tcell.Button1 != 0
	wasDown := f.mouseDown
	f.mouseDown = pressed
	if !pressed || wasDown {
		return
	}
	mx, my := ev.Position()
	size := f.sim.Size()
	x, y := mx/2, my
	if x >= size.W || y >= size.H {
		return
	}
	view := f.sim.View()
	if err := f.sim.SubmitEdit(x, y, view.Get(x, y).Next(view.Species())); err != nil {
		log.Printf("edit (%d,%d): %v", x, y, err)
	}
}

func (f *Frontend) draw() {
	view := f.sim.View()
	n := view.Size()
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			c := int(view.Get(x, y))
			if c >= len(f.palette) {
				c = len(f.palette) - 1
			}
			style := tcell.StyleDefault.Background(f.palette[c])
			f.screen.SetContent(2*x, y, ' ', nil, style)
			f.screen.SetContent(2*x+1, y, ' ', nil, style)
		}
	}

	state := "paused"
	if f.sim.Running() {
		state = "running"
	}
	census := view.Census()
	pop := 0
	for _, c := range census[1:] {
		pop += c
	}
	f.putLine(n, fmt.Sprintf("gen %d  pop %d  %s  %d tps", view.Generation(), pop, state, f.pacer.TPS()))
	f.putLine(n+1, "space run/pause  s step  r reset  f fill  +/- speed  click edit  q quit")
	f.screen.Show()
}

func (f *Frontend) putLine(y int, s string) {
	w, _ := f.screen.Size()
	x := 0
	for _, r := range s {
		f.screen.SetContent(x, y, r, nil, tcell.StyleDefault)
		x++
	}
	for ; x < w; x++ {
		f.screen.SetContent(x, y, ' ', nil, tcell.StyleDefault)
	}
}
