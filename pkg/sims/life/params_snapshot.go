package life

import (
	"strconv"

	"species-life/pkg/core"
)

// Parameters reports configuration and population statistics for the HUD.
func (s *Simulation) Parameters() core.ParameterSnapshot {
	s.mu.Lock()
	seed, density, tb, running, pending := s.seed, s.density, s.tieBreak, s.running, len(s.pending)
	s.mu.Unlock()
	snap := s.Snapshot()

	state := "paused"
	if running {
		state = "running"
	}
	stats := []core.Parameter{
		textParam("state", "State", state),
		intParam("generation", "Generation", int(snap.Generation())),
		intParam("population", "Population", snap.Population()),
		intParam("pending", "Pending edits", pending),
	}
	census := snap.Census()
	for sp := 1; sp < len(census); sp++ {
		c := core.Cell(sp)
		stats = append(stats, intParam("species_"+c.String(), "Species "+c.String(), census[sp]))
	}

	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("size", "Size", s.size),
				intParam("species", "Species", s.species),
				textParam("seed", "Seed", strconv.FormatInt(seed, 10)),
			},
		},
		{
			Name: "Rules",
			Params: []core.Parameter{
				floatParam("density", "Fill density", density),
				intParam("tie_break", "Uniform ties", int(tb)),
			},
		},
		{Name: "Stats", Params: stats},
	}}
}

// ParameterControls lists the values adjustable from the HUD.
func (s *Simulation) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "density", Label: "Fill density", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1},
		{Key: "tie_break", Label: "Uniform ties", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: 1},
	}
}

// SetFloatParameter updates a float tunable, clamping to its bounds.
func (s *Simulation) SetFloatParameter(key string, value float64) bool {
	if key != "density" {
		return false
	}
	if value < 0 {
		value = 0
	}
	if value > 1 {
		value = 1
	}
	s.mu.Lock()
	s.density = value
	s.mu.Unlock()
	return true
}

// SetIntParameter updates an integer tunable.
func (s *Simulation) SetIntParameter(key string, value int) bool {
	if key != "tie_break" {
		return false
	}
	tb := core.TieBreakSequential
	if value > 0 {
		tb = core.TieBreakUniform
	}
	s.mu.Lock()
	s.tieBreak = tb
	s.mu.Unlock()
	return true
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}

func textParam(key, label, value string) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeText,
		Value: value,
	}
}
