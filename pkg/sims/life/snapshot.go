package life

import "species-life/pkg/core"

type frame struct {
	grid       *core.Grid
	generation uint64
	census     []int
}

func newFrame(grid *core.Grid, generation uint64) *frame {
	return &frame{grid: grid, generation: generation, census: grid.Census()}
}

// Snapshot is an immutable view of one published generation. It stays valid
// after later ticks replace the current grid.
type Snapshot struct {
	f *frame
}

// Get returns the cell at the wrapped coordinate.
func (s Snapshot) Get(x, y int) core.Cell { return s.f.grid.Get(x, y) }

// Size returns the grid side length.
func (s Snapshot) Size() int { return s.f.grid.Size() }

// Species returns the number of live species.
func (s Snapshot) Species() int { return s.f.grid.Species() }

// Generation counts generations computed since the last reset or randomize.
func (s Snapshot) Generation() uint64 { return s.f.generation }

// Census returns per-state cell counts; index 0 holds Empty.
func (s Snapshot) Census() []int {
	return append([]int(nil), s.f.census...)
}

// Population counts live cells of every species.
func (s Snapshot) Population() int {
	n := 0
	for _, c := range s.f.census[1:] {
		n += c
	}
	return n
}

// Fill copies the cells into dst as row-major bytes.
func (s Snapshot) Fill(dst []uint8) []uint8 { return s.f.grid.Fill(dst) }

// Grid returns a private copy of the snapshot's grid.
func (s Snapshot) Grid() *core.Grid { return s.f.grid.Clone() }

func (s Snapshot) String() string { return s.f.grid.String() }
