package life

import (
	"strconv"

	"species-life/pkg/core"
)

// Config controls the simulation dimensions and rule variants.
type Config struct {
	Size    int
	Species int

	Seed int64

	// Density is the probability that Randomize occupies a cell.
	Density  float64
	TieBreak core.TieBreak
}

// DefaultConfig returns the standard five-species configuration.
func DefaultConfig() Config {
	return Config{
		Size:     24,
		Species:  core.MaxSpecies,
		Seed:     1337,
		Density:  0.5,
		TieBreak: core.TieBreakSequential,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Malformed values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Size = parsed
		}
	}
	if v, ok := cfg["species"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 1 && parsed <= core.MaxSpecies {
			c.Species = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Density = parsed
		}
	}
	if v, ok := cfg["tie_break"]; ok {
		if parsed, ok := core.ParseTieBreak(v); ok {
			c.TieBreak = parsed
		}
	}
	return c
}
