package scenario

import (
	"math"

	"github.com/san-kum/heatsim/internal/thermo"
)

// Constant holds a boundary at a fixed value (or flux) for the whole run.
func Constant(value float64) thermo.BoundaryFunc {
	return func(float64) float64 { return value }
}

// Ramp increases linearly from zero at the given rate per unit time.
func Ramp(rate float64) thermo.BoundaryFunc {
	return func(t float64) float64 { return rate * t }
}

// Sinusoid oscillates with the given amplitude and frequency (cycles per
// unit time).
func Sinusoid(amp, freq float64) thermo.BoundaryFunc {
	return func(t float64) float64 {
		return amp * math.Sin(2*math.Pi*freq*t)
	}
}
