// Package scenario provides the pluggable physics of a run: initial
// temperature profiles and time-dependent boundary drives. Everything here
// is a pure function of position or time, so swapping a scenario never
// touches the stepping algorithm.
package scenario

import (
	"math"

	"github.com/san-kum/heatsim/internal/thermo"
)

// HalfSine is the classic single-mode profile amp*sin(pi*(x-start)/length).
func HalfSine(amp, start, length float64) thermo.InitialFunc {
	return func(x float64) float64 {
		return amp * math.Sin(math.Pi*(x-start)/length)
	}
}

// Gaussian is a heat pulse centered at center with the given width.
func Gaussian(amp, center, width float64) thermo.InitialFunc {
	return func(x float64) float64 {
		d := (x - center) / width
		return amp * math.Exp(-d*d)
	}
}

// Flat is a uniform initial temperature.
func Flat(value float64) thermo.InitialFunc {
	return func(float64) float64 { return value }
}

// Triangle is a piecewise-linear ridge peaking mid-domain.
func Triangle(amp, start, length float64) thermo.InitialFunc {
	mid := start + length/2
	return func(x float64) float64 {
		if x <= mid {
			return amp * (x - start) / (length / 2)
		}
		return amp * (start + length - x) / (length / 2)
	}
}
