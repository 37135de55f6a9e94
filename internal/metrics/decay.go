package metrics

import "github.com/san-kum/heatsim/internal/thermo"

// DecayRatio reports final peak amplitude over initial peak amplitude.
// Pure diffusion with zero boundary forcing keeps this at or below 1; a
// divergent run pushes it above 1.
type DecayRatio struct {
	name    string
	initial float64
	last    float64
	samples int
}

func NewDecayRatio() *DecayRatio {
	return &DecayRatio{name: "decay_ratio"}
}

func (d *DecayRatio) Name() string { return d.name }

func (d *DecayRatio) Observe(x thermo.Profile, t float64) {
	peak := x.MaxAbs()
	if d.samples == 0 {
		d.initial = peak
	}
	d.last = peak
	d.samples++
}

func (d *DecayRatio) Value() float64 {
	if d.samples == 0 || d.initial == 0 {
		return 0
	}
	return d.last / d.initial
}

func (d *DecayRatio) Reset() {
	d.initial = 0
	d.last = 0
	d.samples = 0
}
