package life

import (
	"fmt"
	"sync"
	"sync/atomic"

	"species-life/pkg/core"
)

// Simulation runs the multi-species Game of Life on a toroidal grid.
//
// Tick must be driven from a single goroutine. Edits and control requests may
// arrive from any goroutine; they are buffered under mu and only reach the
// grid through the merge at the end of the next Tick. Every change publishes a
// fresh grid, so a Snapshot is never mutated once handed out.
type Simulation struct {
	size    int
	species int

	tickMu sync.Mutex
	rng    *core.RNG

	mu        sync.Mutex
	running   bool
	step      bool
	reset     bool
	randomize bool
	reseed    bool
	seed      int64
	density   float64
	tieBreak  core.TieBreak
	pending   map[core.Point]core.Cell

	frame atomic.Pointer[frame]
}

// New returns a paused simulation with an empty grid of side size holding the
// given number of species.
func New(size, species int) (*Simulation, error) {
	cfg := DefaultConfig()
	cfg.Size = size
	cfg.Species = species
	return NewWithConfig(cfg)
}

// NewWithConfig returns a paused simulation configured from the provided options.
func NewWithConfig(cfg Config) (*Simulation, error) {
	grid, err := core.NewGrid(cfg.Size, cfg.Species)
	if err != nil {
		return nil, fmt.Errorf("life: %w", err)
	}
	s := &Simulation{
		size:     cfg.Size,
		species:  cfg.Species,
		rng:      core.NewRNG(cfg.Seed),
		seed:     cfg.Seed,
		density:  cfg.Density,
		tieBreak: cfg.TieBreak,
		pending:  make(map[core.Point]core.Cell),
	}
	s.frame.Store(newFrame(grid, 0))
	return s, nil
}

// Name returns the simulation identifier.
func (s *Simulation) Name() string {
	if s.species == 1 {
		return "life"
	}
	return "species"
}

// Size returns the grid dimensions.
func (s *Simulation) Size() core.Size { return core.Size{W: s.size, H: s.size} }

// Species returns the number of live species.
func (s *Simulation) Species() int { return s.species }

// Snapshot returns the most recently published generation.
func (s *Simulation) Snapshot() Snapshot { return Snapshot{f: s.frame.Load()} }

// View implements core.Sim.
func (s *Simulation) View() core.View { return s.Snapshot() }

// SetRunning turns continuous simulation on or off.
func (s *Simulation) SetRunning(running bool) {
	s.mu.Lock()
	s.running = running
	s.mu.Unlock()
}

// ToggleRunning flips between running and paused.
func (s *Simulation) ToggleRunning() {
	s.mu.Lock()
	s.running = !s.running
	s.mu.Unlock()
}

// Running reports whether generations advance on every tick.
func (s *Simulation) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// RequestStep asks the next tick to compute one generation even when paused.
func (s *Simulation) RequestStep() {
	s.mu.Lock()
	s.step = true
	s.mu.Unlock()
}

// RequestReset asks the next tick to clear the grid.
func (s *Simulation) RequestReset() {
	s.mu.Lock()
	s.reset = true
	s.mu.Unlock()
}

// RequestRandomize asks the next tick to refill the grid randomly.
func (s *Simulation) RequestRandomize() {
	s.mu.Lock()
	s.randomize = true
	s.mu.Unlock()
}

// Reset reseeds the random source and requests a randomized grid on the next
// tick.
func (s *Simulation) Reset(seed int64) {
	s.mu.Lock()
	s.seed = seed
	s.reseed = true
	s.randomize = true
	s.mu.Unlock()
}

// SubmitEdit queues c for (x, y). The last edit per cell before a tick wins.
func (s *Simulation) SubmitEdit(x, y int, c core.Cell) error {
	if !c.Valid(s.species) {
		return fmt.Errorf("life: edit (%d,%d) to %d with %d species: %w", x, y, c, s.species, core.ErrInvalidCell)
	}
	x, y = s.frame.Load().grid.Wrap(x, y)
	s.mu.Lock()
	s.pending[core.Point{X: x, Y: y}] = c
	s.mu.Unlock()
	return nil
}

// PendingEdits reports how many cells are waiting for the next merge.
func (s *Simulation) PendingEdits() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

type tickPlan struct {
	reset     bool
	randomize bool
	step      bool
	density   float64
	tieBreak  core.TieBreak
	edits     map[core.Point]core.Cell
}

// takePlan consumes the one-shot requests and pending edits for one tick.
func (s *Simulation) takePlan() tickPlan {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := tickPlan{density: s.density, tieBreak: s.tieBreak}
	switch {
	case s.reset:
		p.reset = true
		s.reset = false
	case s.randomize:
		p.randomize = true
		s.randomize = false
	case s.running || s.step:
		p.step = true
		s.step = false
	}
	if s.reseed {
		s.rng = core.NewRNG(s.seed)
		s.reseed = false
	}
	// The tick owns the handed-off map; SubmitEdit only ever sees the fresh one.
	if len(s.pending) > 0 {
		p.edits = s.pending
		s.pending = make(map[core.Point]core.Cell)
	}
	return p
}

// Tick advances the simulation once: a reset or randomize if requested,
// otherwise a generation if running or stepping, then the pending edits are
// merged on top.
func (s *Simulation) Tick() {
	s.tickMu.Lock()
	defer s.tickMu.Unlock()

	plan := s.takePlan()
	cur := s.frame.Load()
	grid, gen := cur.grid, cur.generation

	switch {
	case plan.reset:
		grid, gen = grid.Blank(), 0
	case plan.randomize:
		grid, gen = grid.Blank(), 0
		grid.Randomize(s.rng, plan.density)
	case plan.step:
		grid = nextGeneration(grid, s.rng, plan.tieBreak)
		gen++
	}

	if len(plan.edits) > 0 {
		if grid == cur.grid {
			grid = grid.Clone()
		}
		for p, c := range plan.edits {
			grid.Set(p.X, p.Y, c)
		}
	}

	if grid != cur.grid {
		s.frame.Store(newFrame(grid, gen))
	}
}

func factory(species int) core.Factory {
	return func(cfg map[string]string) (core.Sim, error) {
		c := FromMap(cfg)
		if species > 0 {
			c.Species = species
		}
		sim, err := NewWithConfig(c)
		if err != nil {
			return nil, err
		}
		return sim, nil
	}
}

func init() {
	core.Register("life", factory(1))
	core.Register("species", factory(0))
}
