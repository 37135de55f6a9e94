package scenario

import (
	"fmt"
	"sort"

	"github.com/san-kum/heatsim/internal/thermo"
)

// Registry maps scenario names to factories so configuration files and CLI
// flags can select physics by name.
type Registry struct {
	profiles map[string]func(g thermo.Grid, params map[string]float64) thermo.InitialFunc
	drives   map[string]func(params map[string]float64) thermo.BoundaryFunc
}

// Recognized parameter keys: amplitude, center, width, value, rate,
// frequency. Missing keys read as zero; amplitude defaults to 1.
func NewRegistry() *Registry {
	r := &Registry{
		profiles: make(map[string]func(thermo.Grid, map[string]float64) thermo.InitialFunc),
		drives:   make(map[string]func(map[string]float64) thermo.BoundaryFunc),
	}

	r.profiles["half_sine"] = func(g thermo.Grid, p map[string]float64) thermo.InitialFunc {
		return HalfSine(amplitude(p), g.Start, g.Length())
	}
	r.profiles["gaussian"] = func(g thermo.Grid, p map[string]float64) thermo.InitialFunc {
		center := p["center"]
		if center == 0 {
			center = g.Start + g.Length()/2
		}
		width := p["width"]
		if width == 0 {
			width = g.Length() / 10
		}
		return Gaussian(amplitude(p), center, width)
	}
	r.profiles["flat"] = func(_ thermo.Grid, p map[string]float64) thermo.InitialFunc {
		return Flat(p["value"])
	}
	r.profiles["triangle"] = func(g thermo.Grid, p map[string]float64) thermo.InitialFunc {
		return Triangle(amplitude(p), g.Start, g.Length())
	}

	r.drives["constant"] = func(p map[string]float64) thermo.BoundaryFunc {
		return Constant(p["value"])
	}
	r.drives["ramp"] = func(p map[string]float64) thermo.BoundaryFunc {
		return Ramp(p["rate"])
	}
	r.drives["sinusoid"] = func(p map[string]float64) thermo.BoundaryFunc {
		return Sinusoid(amplitude(p), p["frequency"])
	}

	return r
}

func amplitude(p map[string]float64) float64 {
	if a, ok := p["amplitude"]; ok {
		return a
	}
	return 1
}

func (r *Registry) GetProfile(name string, g thermo.Grid, params map[string]float64) (thermo.InitialFunc, error) {
	fn, ok := r.profiles[name]
	if !ok {
		return nil, fmt.Errorf("unknown profile: %s", name)
	}
	return fn(g, params), nil
}

func (r *Registry) GetDrive(name string, params map[string]float64) (thermo.BoundaryFunc, error) {
	fn, ok := r.drives[name]
	if !ok {
		return nil, fmt.Errorf("unknown drive: %s", name)
	}
	return fn(params), nil
}

func (r *Registry) ListProfiles() []string {
	names := make([]string, 0, len(r.profiles))
	for name := range r.profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) ListDrives() []string {
	names := make([]string, 0, len(r.drives))
	for name := range r.drives {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
