package app

import (
	"flag"
	"strconv"
	"strings"

	"species-life/pkg/core"
)

// DefaultSeed matches the seed of the simulation package defaults.
const DefaultSeed int64 = 1337

// Config represents the command-line parameters for the application.
type Config struct {
	Sim      string
	Size     int
	Species  int
	Scale    int
	TPS      int
	Seed     int64
	Density  float64
	TieBreak string
	HUD      bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:      "species",
		Size:     24,
		Species:  5,
		Scale:    21,
		TPS:      13,
		Seed:     DefaultSeed,
		Density:  0.5,
		TieBreak: "sequential",
		HUD:      true,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation preset to run ("+strings.Join(core.Names(), ", ")+")")
	fs.IntVar(&c.Size, "size", c.Size, "grid side length in cells")
	fs.IntVar(&c.Species, "species", c.Species, "number of competing species (1-5)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for randomized fills")
	fs.Float64Var(&c.Density, "density", c.Density, "fraction of cells occupied by a random fill")
	fs.StringVar(&c.TieBreak, "tie-break", c.TieBreak, "majority tie-break policy (sequential, uniform)")
	fs.BoolVar(&c.HUD, "hud", c.HUD, "show the parameter panel")
}

// SimConfig converts the flags into the key/value map consumed by sim factories.
func (c *Config) SimConfig() map[string]string {
	return map[string]string{
		"size":      strconv.Itoa(c.Size),
		"species":   strconv.Itoa(c.Species),
		"seed":      strconv.FormatInt(c.Seed, 10),
		"density":   strconv.FormatFloat(c.Density, 'f', -1, 64),
		"tie_break": c.TieBreak,
	}
}
