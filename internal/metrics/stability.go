package metrics

import "github.com/san-kum/heatsim/internal/thermo"

// Stability watches for amplitude growth between consecutive profiles.
// The stepper never aborts an unstable run, so this is how a caller learns
// a run diverged.
type Stability struct {
	name       string
	prev       float64
	violations int
	samples    int
}

func NewStability() *Stability {
	return &Stability{name: "stability"}
}

func (s *Stability) Name() string { return s.name }

func (s *Stability) Observe(x thermo.Profile, t float64) {
	peak := x.MaxAbs()
	if s.samples > 0 && (peak > s.prev || !x.IsValid()) {
		s.violations++
	}
	s.prev = peak
	s.samples++
}

// Value is the fraction of steps with no amplitude growth: 1.0 for a clean
// decaying run, approaching 0 as divergence takes over.
func (s *Stability) Value() float64 {
	if s.samples <= 1 {
		return 1.0
	}
	return 1.0 - float64(s.violations)/float64(s.samples-1)
}

func (s *Stability) Reset() {
	s.prev = 0
	s.violations = 0
	s.samples = 0
}
