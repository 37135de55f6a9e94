package metrics

import "github.com/san-kum/heatsim/internal/thermo"

// Peak tracks the largest absolute temperature seen across the run.
type Peak struct {
	name string
	max  float64
}

func NewPeak() *Peak {
	return &Peak{name: "peak"}
}

func (p *Peak) Name() string { return p.name }

func (p *Peak) Observe(x thermo.Profile, t float64) {
	if m := x.MaxAbs(); m > p.max {
		p.max = m
	}
}

func (p *Peak) Value() float64 { return p.max }

func (p *Peak) Reset() { p.max = 0 }
