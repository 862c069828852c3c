package core

import (
	"errors"
	"testing"
)

func mustGrid(t *testing.T, size, species int) *Grid {
	t.Helper()
	g, err := NewGrid(size, species)
	if err != nil {
		t.Fatalf("NewGrid(%d, %d): %v", size, species, err)
	}
	return g
}

func TestNewGridRejectsInvalidShape(t *testing.T) {
	if _, err := NewGrid(0, 1); !errors.Is(err, ErrInvalidSize) {
		t.Fatalf("size 0: expected ErrInvalidSize, got %v", err)
	}
	if _, err := NewGrid(-3, 1); !errors.Is(err, ErrInvalidSize) {
		t.Fatalf("size -3: expected ErrInvalidSize, got %v", err)
	}
	if _, err := NewGrid(4, 0); !errors.Is(err, ErrInvalidSpecies) {
		t.Fatalf("species 0: expected ErrInvalidSpecies, got %v", err)
	}
	if _, err := NewGrid(4, MaxSpecies+1); !errors.Is(err, ErrInvalidSpecies) {
		t.Fatalf("species %d: expected ErrInvalidSpecies, got %v", MaxSpecies+1, err)
	}
}

func TestNewGridStartsEmpty(t *testing.T) {
	g := mustGrid(t, 7, 3)
	if g.Population() != 0 {
		t.Fatalf("expected empty grid, population %d", g.Population())
	}
	if census := g.Census(); len(census) != 4 || census[0] != 49 {
		t.Fatalf("unexpected census %v", census)
	}
}

func TestWraparound(t *testing.T) {
	for size := 1; size <= 6; size++ {
		g := mustGrid(t, size, MaxSpecies)
		rng := NewRNG(int64(size))
		g.Randomize(rng, 0.5)
		for y := 0; y < size; y++ {
			if g.Get(-1, y) != g.Get(size-1, y) {
				t.Fatalf("size %d: Get(-1,%d) != Get(%d,%d)", size, y, size-1, y)
			}
			if g.Get(size, y) != g.Get(0, y) {
				t.Fatalf("size %d: Get(%d,%d) != Get(0,%d)", size, size, y, y)
			}
			if g.Get(y, -1) != g.Get(y, size-1) {
				t.Fatalf("size %d: Get(%d,-1) != Get(%d,%d)", size, y, y, size-1)
			}
			if g.Get(-3*size, y) != g.Get(0, y) {
				t.Fatalf("size %d: large negative offset did not wrap", size)
			}
		}
	}
}

func TestSetWrapsCoordinates(t *testing.T) {
	g := mustGrid(t, 5, 2)
	g.Set(-1, 7, SpeciesB)
	if got := g.Get(4, 2); got != SpeciesB {
		t.Fatalf("expected B at (4,2), got %v", got)
	}
	if g.Population() != 1 {
		t.Fatalf("expected single live cell, got %d", g.Population())
	}
}

func TestResetClearsInPlace(t *testing.T) {
	g := mustGrid(t, 8, MaxSpecies)
	g.Randomize(NewRNG(3), 0.9)
	if g.Population() == 0 {
		t.Fatal("randomize should occupy some cells")
	}
	g.Reset()
	if g.Population() != 0 {
		t.Fatalf("expected empty grid after reset, population %d", g.Population())
	}
}

func TestRandomizeUsesOnlyConfiguredSpecies(t *testing.T) {
	g := mustGrid(t, 32, 3)
	g.Randomize(NewRNG(11), 0.5)
	census := g.Census()
	if len(census) != 4 {
		t.Fatalf("census length %d, expected 4", len(census))
	}
	total := 0
	for sp, n := range census {
		total += n
		if sp > 0 && n == 0 {
			t.Fatalf("species %d never chosen in 1024 cells", sp)
		}
	}
	if total != 32*32 {
		t.Fatalf("census covers %d cells, expected %d", total, 32*32)
	}
	empty := float64(census[0]) / float64(total)
	if empty < 0.4 || empty > 0.6 {
		t.Fatalf("empty fraction %.2f far from 0.5", empty)
	}
}

func TestRandomizeBinaryMode(t *testing.T) {
	g := mustGrid(t, 16, 1)
	g.Randomize(NewRNG(5), 0.5)
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			if c := g.Get(x, y); c != Empty && c != Alive {
				t.Fatalf("binary grid holds %v at (%d,%d)", c, x, y)
			}
		}
	}
}

func TestNeighborCountsSumToEight(t *testing.T) {
	g := mustGrid(t, 6, MaxSpecies)
	g.Randomize(NewRNG(42), 0.6)
	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			sum := 0
			for s := 0; s <= MaxSpecies; s++ {
				sum += g.CountNeighborsOf(x, y, Cell(s))
			}
			if sum != 8 {
				t.Fatalf("(%d,%d): neighbor counts sum to %d", x, y, sum)
			}
			if n := g.CountOccupiedNeighbors(x, y); n < 0 || n > 8 {
				t.Fatalf("(%d,%d): occupied neighbors %d out of range", x, y, n)
			}
		}
	}
}

func TestCountNeighborsAcrossEdges(t *testing.T) {
	g := mustGrid(t, 5, 2)
	g.Set(4, 4, SpeciesA)
	g.Set(0, 4, SpeciesB)
	g.Set(4, 0, SpeciesA)
	g.Set(2, 2, SpeciesA)

	if n := g.CountNeighborsOf(0, 0, SpeciesA); n != 2 {
		t.Fatalf("expected 2 A neighbors of (0,0) across corners, got %d", n)
	}
	if n := g.CountNeighborsOf(0, 0, SpeciesB); n != 1 {
		t.Fatalf("expected 1 B neighbor of (0,0), got %d", n)
	}
	if n := g.CountOccupiedNeighbors(0, 0); n != 3 {
		t.Fatalf("expected 3 occupied neighbors of (0,0), got %d", n)
	}
}

func TestNeighborsOnTinyGridCountSelfCopies(t *testing.T) {
	g := mustGrid(t, 1, 1)
	g.Set(0, 0, Alive)
	if n := g.CountOccupiedNeighbors(0, 0); n != 8 {
		t.Fatalf("1x1 torus should see itself 8 times, got %d", n)
	}
}

func TestMajorityNeighborStrictWinner(t *testing.T) {
	g := mustGrid(t, 5, MaxSpecies)
	g.Set(1, 1, SpeciesC)
	g.Set(2, 1, SpeciesC)
	g.Set(3, 1, SpeciesA)
	rng := NewRNG(1)
	for i := 0; i < 50; i++ {
		if got := g.MajorityNeighbor(2, 2, rng, TieBreakSequential); got != SpeciesC {
			t.Fatalf("expected C to win outright, got %v", got)
		}
	}
}

func TestMajorityNeighborSingleSpecies(t *testing.T) {
	g := mustGrid(t, 5, 1)
	g.Set(1, 1, Alive)
	if got := g.MajorityNeighbor(2, 2, NewRNG(1), TieBreakSequential); got != Alive {
		t.Fatalf("binary majority should be Alive, got %v", got)
	}
}

func TestMajorityNeighborNeverEmpty(t *testing.T) {
	g := mustGrid(t, 5, 3)
	rng := NewRNG(9)
	for i := 0; i < 100; i++ {
		if got := g.MajorityNeighbor(0, 0, rng, TieBreakSequential); got == Empty {
			t.Fatal("majority neighbor returned Empty")
		}
		if got := g.MajorityNeighbor(0, 0, rng, TieBreakUniform); got == Empty {
			t.Fatal("uniform majority neighbor returned Empty")
		}
	}
}

// Three species tied at one neighbor each. Sequential coin flips give A 1/4,
// B 1/4, C 1/2; the uniform policy gives each 1/3.
func TestMajorityNeighborTieBreakDistribution(t *testing.T) {
	g := mustGrid(t, 5, 3)
	g.Set(1, 1, SpeciesA)
	g.Set(2, 1, SpeciesB)
	g.Set(3, 1, SpeciesC)

	const trials = 20000
	tally := func(tb TieBreak) [4]float64 {
		rng := NewRNG(2024)
		var counts [4]float64
		for i := 0; i < trials; i++ {
			counts[g.MajorityNeighbor(2, 2, rng, tb)]++
		}
		for i := range counts {
			counts[i] /= trials
		}
		return counts
	}

	seq := tally(TieBreakSequential)
	want := [4]float64{0, 0.25, 0.25, 0.5}
	for i := 1; i <= 3; i++ {
		if d := seq[i] - want[i]; d > 0.02 || d < -0.02 {
			t.Fatalf("sequential: species %d frequency %.3f, expected %.3f", i, seq[i], want[i])
		}
	}

	uni := tally(TieBreakUniform)
	for i := 1; i <= 3; i++ {
		if d := uni[i] - 1.0/3; d > 0.02 || d < -0.02 {
			t.Fatalf("uniform: species %d frequency %.3f, expected 0.333", i, uni[i])
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g := mustGrid(t, 4, 2)
	g.Set(1, 1, SpeciesB)
	c := g.Clone()
	if !g.Equal(c) {
		t.Fatal("clone should equal source")
	}
	c.Set(1, 1, Empty)
	if g.Get(1, 1) != SpeciesB {
		t.Fatal("mutating clone changed source")
	}
	if g.Equal(c) {
		t.Fatal("grids should differ after mutation")
	}
	if b := g.Blank(); b.Population() != 0 || b.Size() != 4 || b.Species() != 2 {
		t.Fatal("blank grid should be empty with the same shape")
	}
}

func TestFillAndString(t *testing.T) {
	g := mustGrid(t, 3, 2)
	g.Set(0, 0, SpeciesA)
	g.Set(2, 1, SpeciesB)
	buf := g.Fill(nil)
	want := []uint8{1, 0, 0, 0, 0, 2, 0, 0, 0}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("Fill()[%d] = %d, expected %d", i, buf[i], want[i])
		}
	}
	if s := g.String(); s != "A..\n..B\n...\n" {
		t.Fatalf("unexpected String():\n%s", s)
	}
}

func TestCellNextCycles(t *testing.T) {
	c := Empty
	seen := []Cell{}
	for i := 0; i < 4; i++ {
		c = c.Next(3)
		seen = append(seen, c)
	}
	want := []Cell{SpeciesA, SpeciesB, SpeciesC, Empty}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("cycle step %d: got %v, expected %v", i, seen[i], want[i])
		}
	}
	if Alive.Next(1) != Empty || Empty.Next(1) != Alive {
		t.Fatal("binary cycle should toggle Alive/Empty")
	}
	if SpeciesD.Valid(3) || !SpeciesC.Valid(3) || !Empty.Valid(1) {
		t.Fatal("Valid reports wrong range")
	}
}

func TestParseTieBreak(t *testing.T) {
	if tb, ok := ParseTieBreak("uniform"); !ok || tb != TieBreakUniform {
		t.Fatal("expected uniform")
	}
	if tb, ok := ParseTieBreak("sequential"); !ok || tb != TieBreakSequential {
		t.Fatal("expected sequential")
	}
	if _, ok := ParseTieBreak("coin"); ok {
		t.Fatal("unknown name should not parse")
	}
}
