package ftcs

import (
	"context"

	"github.com/san-kum/heatsim/internal/thermo"
)

// Stepper marches the FTCS recurrence U_{k+1} = A*U_k + B for a fixed
// number of steps. The matrix is assembled once; the injection vector is
// re-evaluated each step so time-varying boundary drives are honored.
type Stepper struct {
	cfg       thermo.Config
	metrics   []thermo.Metric
	observers []thermo.Observer
}

func New(cfg thermo.Config) *Stepper {
	return &Stepper{
		cfg:       cfg,
		metrics:   make([]thermo.Metric, 0),
		observers: make([]thermo.Observer, 0),
	}
}

func (st *Stepper) AddMetric(m thermo.Metric)     { st.metrics = append(st.metrics, m) }
func (st *Stepper) AddObserver(o thermo.Observer) { st.observers = append(st.observers, o) }

// Run validates the configuration, assembles the update matrix, and takes
// exactly cfg.Time.Steps steps. There is no convergence check and no early
// exit: an unstable stepping number diverges rather than erroring, which is
// the documented FTCS behavior. Cancellation is checked between steps.
func (st *Stepper) Run(ctx context.Context) (*thermo.Result, error) {
	cfg := st.cfg
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	n := cfg.Grid.Nodes
	steps := cfg.Time.Steps
	dx := cfg.Grid.Spacing()
	dt := cfg.Time.Dt()
	s := cfg.Stepping()

	mat, err := Assemble(n, s, cfg.Right.Kind)
	if err != nil {
		return nil, err
	}

	for _, m := range st.metrics {
		m.Reset()
	}

	points := cfg.Grid.Points()
	cur := make(thermo.Profile, n)
	for i, x := range points {
		cur[i] = cfg.Initial(x)
	}

	result := &thermo.Result{
		Profiles: make([]thermo.Profile, 0, steps+1),
		Times:    make([]float64, 0, steps+1),
		Points:   points,
		Metrics:  make(map[string]float64),
		Stepping: s,
	}

	t := 0.0
	st.record(result, cur, 0, t)

	next := make(thermo.Profile, n)
	b := make([]float64, n)

	for k := 1; k <= steps; k++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		// Boundary values are taken at the level being advanced from,
		// matching the forward-Euler time discretization.
		Injection(b, s, dx, t, cfg.Left, cfg.Right)
		mat.MulVecAdd(next, cur, b)
		cur, next = next, cur

		t += dt
		result.StepsTaken++
		st.record(result, cur, k, t)
	}

	for _, m := range st.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
	return result, nil
}

func (st *Stepper) record(result *thermo.Result, p thermo.Profile, step int, t float64) {
	row := p.Clone()
	result.Profiles = append(result.Profiles, row)
	result.Times = append(result.Times, t)
	for _, m := range st.metrics {
		m.Observe(row, t)
	}
	for _, obs := range st.observers {
		obs.OnStep(row, step, t)
	}
}
