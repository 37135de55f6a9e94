// Package viz renders diffusion profiles in the terminal.
package viz

import (
	"fmt"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/heatsim/internal/thermo"
)

// ProfileChart draws one temperature profile across the domain.
func ProfileChart(p thermo.Profile, caption string, height int) string {
	if len(p) == 0 {
		return "(empty profile)"
	}
	return asciigraph.Plot(p,
		asciigraph.Height(height),
		asciigraph.Caption(caption),
		asciigraph.Precision(2),
	)
}

// PeakHistory draws the peak amplitude of every stored row over time —
// flat for s=0, decaying for a stable run, exploding past the 0.5 bound.
func PeakHistory(result *thermo.Result, height int) string {
	if len(result.Profiles) == 0 {
		return "(empty result)"
	}
	peaks := make([]float64, len(result.Profiles))
	for k, p := range result.Profiles {
		peaks[k] = p.MaxAbs()
	}
	caption := fmt.Sprintf("peak |T| over %d steps (s=%.3f)", result.StepsTaken, result.Stepping)
	return asciigraph.Plot(peaks,
		asciigraph.Height(height),
		asciigraph.Caption(caption),
		asciigraph.Precision(2),
	)
}
