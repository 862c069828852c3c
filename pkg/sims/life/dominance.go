package life

import (
	"sync"

	"species-life/pkg/core"
)

// RunResult summarizes one seeded run of the simulation.
type RunResult struct {
	Seed        int64
	Generations uint64
	Census      []int
	// Winner is the species with the largest final population, or Empty when
	// the grid died out or the top count is shared.
	Winner core.Cell
}

// DominanceResult aggregates a batch of runs.
type DominanceResult struct {
	Runs []RunResult
	// Wins counts runs won per species; index 0 counts extinct or drawn runs.
	Wins []int
	// MeanPopulation is the average final population per species.
	MeanPopulation []float64
}

// RunSeeded randomizes a fresh simulation with the given seed and runs it for
// steps generations.
func RunSeeded(cfg Config, seed int64, steps int) (RunResult, error) {
	cfg.Seed = seed
	sim, err := NewWithConfig(cfg)
	if err != nil {
		return RunResult{}, err
	}
	sim.RequestRandomize()
	sim.Tick()
	sim.SetRunning(true)
	for i := 0; i < steps; i++ {
		sim.Tick()
	}
	snap := sim.Snapshot()
	census := snap.Census()
	return RunResult{
		Seed:        seed,
		Generations: snap.Generation(),
		Census:      census,
		Winner:      winner(census),
	}, nil
}

// DominanceSweep runs the configuration once per seed in [cfg.Seed,
// cfg.Seed+runs) on up to workers goroutines and tallies which species ends
// with the largest population.
func DominanceSweep(cfg Config, runs, steps, workers int) (DominanceResult, error) {
	if runs < 0 {
		runs = 0
	}
	if workers <= 0 {
		workers = 1
	}

	results := make([]RunResult, runs)
	errs := make([]error, runs)
	var wg sync.WaitGroup
	sem := make(chan struct{}, workers)
	for i := 0; i < runs; i++ {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = RunSeeded(cfg, cfg.Seed+int64(i), steps)
			<-sem
		}(i)
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return DominanceResult{}, err
		}
	}

	out := DominanceResult{
		Runs:           results,
		Wins:           make([]int, cfg.Species+1),
		MeanPopulation: make([]float64, cfg.Species+1),
	}
	for _, res := range results {
		out.Wins[res.Winner]++
		for sp := 1; sp < len(res.Census); sp++ {
			out.MeanPopulation[sp] += float64(res.Census[sp])
		}
	}
	if runs > 0 {
		for sp := range out.MeanPopulation {
			out.MeanPopulation[sp] /= float64(runs)
		}
	}
	return out, nil
}

func winner(census []int) core.Cell {
	best, bestN, shared := core.Empty, 0, false
	for sp := 1; sp < len(census); sp++ {
		switch {
		case census[sp] > bestN:
			best, bestN, shared = core.Cell(sp), census[sp], false
		case census[sp] == bestN && bestN > 0:
			shared = true
		}
	}
	if shared {
		return core.Empty
	}
	return best
}
