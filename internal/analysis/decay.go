// Package analysis provides post-run numeric diagnostics for diffusion
// results.
package analysis

import (
	"math"

	"github.com/san-kum/heatsim/internal/thermo"
)

// EstimateDecayRate fits ln(peak amplitude) against time by least squares
// and returns the decay rate (positive for a decaying run). Rows with a
// non-positive or non-finite peak are skipped; fewer than two usable rows
// yield zero.
func EstimateDecayRate(times []float64, profiles []thermo.Profile) float64 {
	var n int
	var sumT, sumY, sumTT, sumTY float64
	for k, p := range profiles {
		peak := p.MaxAbs()
		if peak <= 0 || math.IsInf(peak, 0) || math.IsNaN(peak) {
			continue
		}
		t := times[k]
		y := math.Log(peak)
		sumT += t
		sumY += y
		sumTT += t * t
		sumTY += t * y
		n++
	}
	if n < 2 {
		return 0
	}
	fn := float64(n)
	denom := fn*sumTT - sumT*sumT
	if denom == 0 {
		return 0
	}
	slope := (fn*sumTY - sumT*sumY) / denom
	return -slope
}

// FundamentalRate is the analytic decay rate kappa*pi^2/L^2 of the slowest
// mode under homogeneous Dirichlet conditions. A well-resolved half-sine
// run's estimated rate converges to this value.
func FundamentalRate(kappa, length float64) float64 {
	return kappa * math.Pi * math.Pi / (length * length)
}
