package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"

	"species-life/pkg/core"
	"species-life/pkg/sims/life"
)

func main() {
	def := life.DefaultConfig()
	size := flag.Int("size", 48, "grid side length for each run")
	species := flag.Int("species", core.MaxSpecies, "number of competing species")
	runs := flag.Int("runs", 64, "number of seeded runs")
	steps := flag.Int("steps", 500, "generations per run")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel runs")
	seed := flag.Int64("seed", def.Seed, "seed of the first run; later runs count up from it")
	density := flag.Float64("density", def.Density, "initial fill density")
	tieBreak := flag.String("tie-break", def.TieBreak.String(), "majority tie-break policy (sequential, uniform)")
	verbose := flag.Bool("v", false, "print every run")
	flag.Parse()

	tb, ok := core.ParseTieBreak(*tieBreak)
	if !ok {
		log.Fatalf("unknown tie-break %q", *tieBreak)
	}
	cfg := life.Config{
		Size:     *size,
		Species:  *species,
		Seed:     *seed,
		Density:  *density,
		TieBreak: tb,
	}

	res, err := life.DominanceSweep(cfg, *runs, *steps, *workers)
	if err != nil {
		log.Fatal(err)
	}

	if *verbose {
		for _, run := range res.Runs {
			fmt.Printf("seed %d: winner %s census %v\n", run.Seed, run.Winner, run.Census[1:])
		}
		fmt.Println()
	}

	fmt.Printf("%d runs of %d generations on %dx%d, %d species, %s ties\n",
		*runs, *steps, cfg.Size, cfg.Size, cfg.Species, tb)
	for sp := 1; sp <= cfg.Species; sp++ {
		share := 0.0
		if *runs > 0 {
			share = 100 * float64(res.Wins[sp]) / float64(*runs)
		}
		fmt.Printf("  species %s: %3d wins (%5.1f%%), mean population %.1f\n",
			core.Cell(sp), res.Wins[sp], share, res.MeanPopulation[sp])
	}
	fmt.Printf("  extinct or drawn: %d\n", res.Wins[0])
}
