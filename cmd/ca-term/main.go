package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	"species-life/internal/app"
	"species-life/internal/term"
	"species-life/pkg/core"
	_ "species-life/pkg/sims/life"

	"github.com/gdamore/tcell/v2"
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

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("creating screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("initializing screen: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	runErr := term.New(screen, sim, cfg.TPS).Run(ctx)
	stop()
	screen.Fini()
	if runErr != nil && ctx.Err() == nil {
		log.Fatal(runErr)
	}
}
