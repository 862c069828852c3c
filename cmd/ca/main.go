//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"species-life/internal/app"
	"species-life/pkg/core"
	_ "species-life/pkg/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	sim, err := core.Lookup(cfg.Sim, cfg.SimConfig())
	if err != nil {
		log.Fatal(err)
	}
	sim.Reset(cfg.Seed)
	sim.SetRunning(true)

	game := app.New(sim, cfg.Scale, cfg.Seed, cfg.HUD)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("species-life - " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
