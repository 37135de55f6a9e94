package config

import "sort"

var Presets = map[string]*Config{
	// The reference discretization: s = 1e-5 * 20 / 0.025^2 = 0.32.
	"classic": {
		DomainStart: 0, DomainEnd: 1, Nodes: 39,
		Duration: 12000, Steps: 600, Diffusivity: 1e-5,
		Profile: ProfileConfig{Name: "half_sine", Params: map[string]float64{"amplitude": 100}},
		Left:    BoundaryConfig{Kind: "dirichlet", Drive: "constant"},
		Right:   BoundaryConfig{Kind: "dirichlet", Drive: "constant"},
	},
	// Insulated right end: zero-flux neumann condition.
	"insulated": {
		DomainStart: 0, DomainEnd: 1, Nodes: 39,
		Duration: 12000, Steps: 600, Diffusivity: 1e-5,
		Profile: ProfileConfig{Name: "half_sine", Params: map[string]float64{"amplitude": 100}},
		Left:    BoundaryConfig{Kind: "dirichlet", Drive: "constant"},
		Right:   BoundaryConfig{Kind: "neumann", Drive: "constant"},
	},
	// Cold bar heated from the left wall; relaxes to a linear ramp.
	"driven": {
		DomainStart: 0, DomainEnd: 1, Nodes: 39,
		Duration: 120000, Steps: 6000, Diffusivity: 1e-5,
		Profile: ProfileConfig{Name: "flat"},
		Left:    BoundaryConfig{Kind: "dirichlet", Drive: "constant", Params: map[string]float64{"value": 100}},
		Right:   BoundaryConfig{Kind: "dirichlet", Drive: "constant"},
	},
	// Localized pulse spreading out.
	"pulse": {
		DomainStart: 0, DomainEnd: 1, Nodes: 79,
		Duration: 3000, Steps: 600, Diffusivity: 1e-5,
		Profile: ProfileConfig{Name: "gaussian", Params: map[string]float64{"amplitude": 100}},
		Left:    BoundaryConfig{Kind: "dirichlet", Drive: "constant"},
		Right:   BoundaryConfig{Kind: "dirichlet", Drive: "constant"},
	},
	// s = 0.8: demonstrates FTCS divergence past the 0.5 bound.
	"unstable": {
		DomainStart: 0, DomainEnd: 1, Nodes: 39,
		Duration: 12000, Steps: 600, Diffusivity: 2.5e-5,
		Profile: ProfileConfig{Name: "half_sine", Params: map[string]float64{"amplitude": 100}},
		Left:    BoundaryConfig{Kind: "dirichlet", Drive: "constant"},
		Right:   BoundaryConfig{Kind: "dirichlet", Drive: "constant"},
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
