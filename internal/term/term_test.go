package term

import (
	"bytes"
	"context"
	"log"
	"os"
	"strings"
	"testing"
	"time"

	"species-life/pkg/core"
	"species-life/pkg/sims/life"

	"github.com/gdamore/tcell/v2"
)

func newTestFrontend(t *testing.T, size, species int) (*Frontend, *life.Simulation, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	screen.SetSize(2*size+80, size+2)
	t.Cleanup(screen.Fini)

	sim, err := life.New(size, species)
	if err != nil {
		t.Fatal(err)
	}
	return New(screen, sim, 10), sim, screen
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestKeysDriveControls(t *testing.T) {
	f, sim, _ := newTestFrontend(t, 5, 1)

	f.handleEvent(key(' '))
	if !sim.Running() {
		t.Fatal("space should start the simulation")
	}
	f.handleEvent(key(' '))
	if sim.Running() {
		t.Fatal("space should pause the simulation")
	}

	f.handleEvent(key('f'))
	sim.Tick()
	if sim.Snapshot().Population() == 0 {
		t.Fatal("f should randomize the grid")
	}
	f.handleEvent(key('r'))
	sim.Tick()
	if sim.Snapshot().Population() != 0 {
		t.Fatal("r should reset the grid")
	}
	f.handleEvent(key('s'))
	sim.Tick()
	if sim.Snapshot().Generation() != 1 {
		t.Fatal("s should request a single step")
	}
}

func TestMouseClickCyclesCell(t *testing.T) {
	f, sim, _ := newTestFrontend(t, 6, 2)

	click := func(x, y int) {
		f.handleEvent(tcell.NewEventMouse(x, y, tcell.Button1, tcell.ModNone))
		f.handleEvent(tcell.NewEventMouse(x, y, tcell.ButtonNone, tcell.ModNone))
		sim.Tick()
	}

	// Terminal column 7 is the second half of cell 3.
	click(7, 2)
	if got := sim.Snapshot().Get(3, 2); got != core.SpeciesA {
		t.Fatalf("first click should place A, got %v", got)
	}
	click(6, 2)
	if got := sim.Snapshot().Get(3, 2); got != core.SpeciesB {
		t.Fatalf("second click should place B, got %v", got)
	}
	click(6, 2)
	if got := sim.Snapshot().Get(3, 2); got != core.Empty {
		t.Fatalf("third click should clear the cell, got %v", got)
	}

	// Holding the button must not keep cycling.
	f.handleEvent(tcell.NewEventMouse(0, 0, tcell.Button1, tcell.ModNone))
	f.handleEvent(tcell.NewEventMouse(0, 0, tcell.Button1, tcell.ModNone))
	sim.Tick()
	if got := sim.Snapshot().Get(0, 0); got != core.SpeciesA {
		t.Fatalf("drag should only edit once, got %v", got)
	}

	// Clicks on the status line are ignored.
	f.handleEvent(tcell.NewEventMouse(0, 6, tcell.ButtonNone, tcell.ModNone))
	f.handleEvent(tcell.NewEventMouse(0, 6, tcell.Button1, tcell.ModNone))
	if sim.PendingEdits() != 0 {
		t.Fatal("click outside the grid should not queue an edit")
	}
}

func TestSpeedKeysAdjustPacer(t *testing.T) {
	f, _, _ := newTestFrontend(t, 4, 1)
	f.handleEvent(key('+'))
	f.handleEvent(key('+'))
	f.handleEvent(key('-'))
	f.frame()
	if got := f.pacer.TPS(); got != 11 {
		t.Fatalf("expected 11 tps, got %d", got)
	}
	if clampTPS(0) != 1 || clampTPS(500) != 120 {
		t.Fatal("tps should clamp to [1, 120]")
	}
}

func TestDrawWritesStatusLine(t *testing.T) {
	f, sim, screen := newTestFrontend(t, 4, 1)
	if err := sim.SubmitEdit(1, 1, core.Alive); err != nil {
		t.Fatal(err)
	}
	sim.Tick()
	f.draw()

	cells, w, _ := screen.GetContents()
	var line strings.Builder
	for x := 0; x < w; x++ {
		if runes := cells[4*w+x].Runes; len(runes) > 0 {
			line.WriteRune(runes[0])
		}
	}
	if got := line.String(); !strings.HasPrefix(got, "gen 0  pop 1  paused") {
		t.Fatalf("unexpected status line %q", got)
	}
}

func TestRunStopsOnQuitKey(t *testing.T) {
	f, sim, screen := newTestFrontend(t, 5, 1)
	sim.SetRunning(true)

	done := make(chan error, 1)
	go func() { done <- f.Run(context.Background()) }()

	time.Sleep(5 * frameInterval)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("quit should end Run cleanly, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop after q")
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	f, _, _ := newTestFrontend(t, 5, 1)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- f.Run(ctx) }()
	cancel()
	select {
	case err := <-done:
		if err != context.Canceled {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop after cancel")
	}
}

type rejectingSim struct {
	*life.Simulation
}

func (rejectingSim) SubmitEdit(x, y int, c core.Cell) error { return core.ErrInvalidCell }

func TestRejectedEditIsLogged(t *testing.T) {
	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	sim, err := life.New(4, 1)
	if err != nil {
		t.Fatal(err)
	}
	f := New(screen, rejectingSim{sim}, 10)

	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	f.handleEvent(tcell.NewEventMouse(2, 1, tcell.Button1, tcell.ModNone))
	if !strings.Contains(buf.String(), "edit (1,1)") {
		t.Fatalf("rejected edit should be logged, got %q", buf.String())
	}
}
