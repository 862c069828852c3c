package core

import (
	"fmt"
	"sort"
)

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// View is a read-only look at one published generation of a simulation.
type View interface {
	Get(x, y int) Cell
	Size() int
	Species() int
	Generation() uint64
	Census() []int
	Fill(dst []uint8) []uint8
}

// Controls are the signals a frontend may send from any goroutine.
type Controls interface {
	SetRunning(running bool)
	ToggleRunning()
	Running() bool
	RequestStep()
	RequestReset()
	RequestRandomize()
	SubmitEdit(x, y int, c Cell) error
}

// Sim defines the contract a frontend drives. Tick must only be called from a
// single driver goroutine.
type Sim interface {
	Controls
	Name() string
	Size() Size
	Reset(seed int64)
	Tick()
	View() View
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) (Sim, error)

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Lookup builds the named simulation from the registry.
func Lookup(name string, cfg map[string]string) (Sim, error) {
	f, ok := sims[name]
	if !ok {
		return nil, fmt.Errorf("unknown sim %q (available: %v)", name, Names())
	}
	return f(cfg)
}

// Names lists the registered simulations in sorted order.
func Names() []string {
	names := make([]string, 0, len(sims))
	for name := range sims {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
