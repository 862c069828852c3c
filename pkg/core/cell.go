package core

// Cell is the state of a single grid position: Empty or one of the live
// species. Species are numbered from 1 so the zero value is Empty.
type Cell uint8

const (
	// Empty marks an unoccupied cell. It is never counted as a species.
	Empty Cell = iota
	SpeciesA
	SpeciesB
	SpeciesC
	SpeciesD
	SpeciesE
)

// MaxSpecies is the largest supported number of live species.
const MaxSpecies = int(SpeciesE)

// Alive is the single live state used by binary (classic Life) grids.
const Alive = SpeciesA

// Point addresses a cell on the grid.
type Point struct {
	X, Y int
}

// Valid reports whether c is a legal state for a grid with the given number
// of species.
func (c Cell) Valid(species int) bool {
	return int(c) <= species
}

// Next cycles through Empty, the live species in order, and back to Empty.
func (c Cell) Next(species int) Cell {
	if int(c) >= species {
		return Empty
	}
	return c + 1
}

func (c Cell) String() string {
	if c == Empty {
		return "."
	}
	return string(rune('A' + c - 1))
}
