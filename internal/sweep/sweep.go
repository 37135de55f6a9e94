// Package sweep runs several diffusion configurations concurrently. Each
// run owns its stepper and buffers, so runs never share mutable state; the
// sequential dependency between steps inside a single run is untouched.
package sweep

import (
	"context"
	"sync"

	"github.com/san-kum/heatsim/internal/ftcs"
	"github.com/san-kum/heatsim/internal/metrics"
	"github.com/san-kum/heatsim/internal/thermo"
)

// Item is one named configuration in a sweep.
type Item struct {
	Name string
	Cfg  thermo.Config
}

type Sweep struct {
	items []Item
}

func New(items []Item) *Sweep {
	return &Sweep{items: items}
}

// Run executes every item on its own goroutine and returns results in item
// order. The first error wins; the standard decay and stability metrics are
// attached to each run.
func (sw *Sweep) Run(ctx context.Context) ([]*thermo.Result, error) {
	results := make([]*thermo.Result, len(sw.items))
	errs := make([]error, len(sw.items))

	var wg sync.WaitGroup
	for i := range sw.items {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			st := ftcs.New(sw.items[idx].Cfg)
			st.AddMetric(metrics.NewPeak())
			st.AddMetric(metrics.NewDecayRatio())
			st.AddMetric(metrics.NewStability())

			results[idx], errs[idx] = st.Run(ctx)
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}

// Diffusivities derives one sweep item per diffusivity value from a base
// configuration.
func Diffusivities(base thermo.Config, names []string, kappas []float64) []Item {
	items := make([]Item, len(kappas))
	for i, k := range kappas {
		cfg := base
		cfg.Diffusivity = k
		items[i] = Item{Name: names[i], Cfg: cfg}
	}
	return items
}
