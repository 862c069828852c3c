package core

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSize is returned when a grid side length is below 1.
	ErrInvalidSize = errors.New("grid size must be at least 1")
	// ErrInvalidSpecies is returned when the species count is outside 1..MaxSpecies.
	ErrInvalidSpecies = errors.New("species count out of range")
	// ErrInvalidCell is returned for a cell state the grid's species count does not allow.
	ErrInvalidCell = errors.New("cell state out of range")
)

// TieBreak selects how MajorityNeighbor resolves equal neighbor counts.
type TieBreak uint8

const (
	// TieBreakSequential flips a fair coin each time a later species ties the
	// current leader, so later species win ties more often.
	TieBreakSequential TieBreak = iota
	// TieBreakUniform picks uniformly among all tied species.
	TieBreakUniform
)

func (t TieBreak) String() string {
	if t == TieBreakUniform {
		return "uniform"
	}
	return "sequential"
}

// ParseTieBreak maps a tie-break name to its value.
func ParseTieBreak(s string) (TieBreak, bool) {
	switch s {
	case "sequential":
		return TieBreakSequential, true
	case "uniform":
		return TieBreakUniform, true
	}
	return TieBreakSequential, false
}

// Grid stores a square toroidal grid of cells in row-major order.
type Grid struct {
	size    int
	species int
	data    []Cell
}

// NewGrid allocates an all-Empty grid with the given side length and number of
// live species.
func NewGrid(size, species int) (*Grid, error) {
	if size < 1 {
		return nil, fmt.Errorf("new grid of size %d: %w", size, ErrInvalidSize)
	}
	if species < 1 || species > MaxSpecies {
		return nil, fmt.Errorf("new grid with %d species: %w", species, ErrInvalidSpecies)
	}
	return &Grid{size: size, species: species, data: make([]Cell, size*size)}, nil
}

// Size returns the side length.
func (g *Grid) Size() int { return g.size }

// Species returns the number of live species the grid holds.
func (g *Grid) Species() int { return g.species }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) Wrap(x, y int) (int, int) {
	x = (x%g.size + g.size) % g.size
	y = (y%g.size + g.size) % g.size
	return x, y
}

func (g *Grid) index(x, y int) int {
	x, y = g.Wrap(x, y)
	return y*g.size + x
}

// Get returns the cell at the wrapped coordinate.
func (g *Grid) Get(x, y int) Cell { return g.data[g.index(x, y)] }

// Set overwrites the cell at the wrapped coordinate.
func (g *Grid) Set(x, y int, c Cell) { g.data[g.index(x, y)] = c }

// Reset fills the grid with Empty.
func (g *Grid) Reset() {
	for i := range g.data {
		g.data[i] = Empty
	}
}

// Randomize occupies each cell independently with probability density, picking
// the species uniformly.
func (g *Grid) Randomize(rng *RNG, density float64) {
	for i := range g.data {
		if rng.Float64() < density {
			g.data[i] = rng.Species(g.species)
			continue
		}
		g.data[i] = Empty
	}
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	out := &Grid{size: g.size, species: g.species, data: make([]Cell, len(g.data))}
	copy(out.data, g.data)
	return out
}

// Blank returns an all-Empty grid with the same shape.
func (g *Grid) Blank() *Grid {
	return &Grid{size: g.size, species: g.species, data: make([]Cell, len(g.data))}
}

// Equal reports whether both grids have the same shape and contents.
func (g *Grid) Equal(o *Grid) bool {
	if o == nil || g.size != o.size || g.species != o.species {
		return false
	}
	for i, c := range g.data {
		if o.data[i] != c {
			return false
		}
	}
	return true
}

// CountNeighborsOf counts the Moore neighbors of (x, y) in state c.
func (g *Grid) CountNeighborsOf(x, y int, c Cell) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if g.Get(x+dx, y+dy) == c {
				n++
			}
		}
	}
	return n
}

// CountOccupiedNeighbors counts the live neighbors of (x, y) of any species.
func (g *Grid) CountOccupiedNeighbors(x, y int) int {
	return 8 - g.CountNeighborsOf(x, y, Empty)
}

// MajorityNeighbor returns the species with the most neighbors around (x, y).
// The result is never Empty; with no live neighbors it is decided purely by
// the tie-break.
func (g *Grid) MajorityNeighbor(x, y int, rng *RNG, tb TieBreak) Cell {
	best := Empty
	bestN := -1
	ties := 0
	for s := 1; s <= g.species; s++ {
		c := Cell(s)
		n := g.CountNeighborsOf(x, y, c)
		switch {
		case n > bestN:
			best, bestN, ties = c, n, 1
		case n == bestN:
			ties++
			if tb == TieBreakUniform {
				if rng.IntN(ties) == 0 {
					best = c
				}
			} else if rng.Bool() {
				best = c
			}
		}
	}
	return best
}

// Population counts the live cells.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.data {
		if c != Empty {
			n++
		}
	}
	return n
}

// Census counts cells per state; index 0 holds Empty.
func (g *Grid) Census() []int {
	counts := make([]int, g.species+1)
	for _, c := range g.data {
		if int(c) < len(counts) {
			counts[c]++
		}
	}
	return counts
}

// Fill copies the cells into dst as row-major bytes, growing it if needed.
func (g *Grid) Fill(dst []uint8) []uint8 {
	if cap(dst) < len(g.data) {
		dst = make([]uint8, len(g.data))
	}
	dst = dst[:len(g.data)]
	for i, c := range g.data {
		dst[i] = uint8(c)
	}
	return dst
}

// String renders the grid one row per line using Cell.String.
func (g *Grid) String() string {
	buf := make([]byte, 0, (g.size+1)*g.size)
	for y := 0; y < g.size; y++ {
		for x := 0; x < g.size; x++ {
			buf = append(buf, g.data[y*g.size+x].String()...)
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
