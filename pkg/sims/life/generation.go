package life

import "species-life/pkg/core"

// nextGeneration applies the transition rule to every cell of cur and returns
// the result as a new grid; cur is left untouched.
//
// A live cell survives with two or three neighbors of its own species. An
// empty cell with exactly three live neighbors of any species is born as the
// majority neighbor species. With a single species this is Conway's B3/S23.
func nextGeneration(cur *core.Grid, rng *core.RNG, tb core.TieBreak) *core.Grid {
	next := cur.Blank()
	n := cur.Size()
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			c := cur.Get(x, y)
			if c != core.Empty {
				same := cur.CountNeighborsOf(x, y, c)
				if same == 2 || same == 3 {
					next.Set(x, y, c)
				}
				continue
			}
			if cur.CountOccupiedNeighbors(x, y) == 3 {
				next.Set(x, y, cur.MajorityNeighbor(x, y, rng, tb))
			}
		}
	}
	return next
}
