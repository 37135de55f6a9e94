package thermo

import (
	"fmt"
	"math"
)

// Profile holds temperature values at the interior nodes at one time level.
type Profile []float64

func (p Profile) Clone() Profile {
	c := make(Profile, len(p))
	copy(c, p)
	return c
}

func (p Profile) IsValid() bool {
	for _, v := range p {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// MaxAbs returns the largest absolute temperature in the profile.
func (p Profile) MaxAbs() float64 {
	max := 0.0
	for _, v := range p {
		if a := math.Abs(v); a > max {
			max = a
		}
	}
	return max
}

func (p Profile) Norm() float64 {
	sum := 0.0
	for _, v := range p {
		sum += v * v
	}
	return math.Sqrt(sum)
}

// InitialFunc samples the initial temperature at position x.
type InitialFunc func(x float64) float64

// BoundaryFunc evaluates a boundary value (or flux) at time t.
type BoundaryFunc func(t float64) float64

// BoundaryKind selects how a domain end constrains the solution.
type BoundaryKind int

const (
	// DirichletKind fixes the temperature at the boundary.
	DirichletKind BoundaryKind = iota
	// NeumannKind fixes the heat flux through the boundary.
	NeumannKind
)

func (k BoundaryKind) String() string {
	switch k {
	case DirichletKind:
		return "dirichlet"
	case NeumannKind:
		return "neumann"
	default:
		return fmt.Sprintf("boundary(%d)", int(k))
	}
}

// Boundary is one end's condition: a kind plus its time-dependent value.
type Boundary struct {
	Kind  BoundaryKind
	Value BoundaryFunc
}

func Dirichlet(v BoundaryFunc) Boundary { return Boundary{Kind: DirichletKind, Value: v} }
func Neumann(v BoundaryFunc) Boundary   { return Boundary{Kind: NeumannKind, Value: v} }

// At evaluates the boundary value at time t, treating a nil func as zero.
func (b Boundary) At(t float64) float64 {
	if b.Value == nil {
		return 0
	}
	return b.Value(t)
}

// Grid is the spatial discretization: Nodes interior points strictly
// between Start and End.
type Grid struct {
	Start float64
	End   float64
	Nodes int
}

func (g Grid) Length() float64 { return g.End - g.Start }

// Spacing is the distance between adjacent nodes, End and Start included.
func (g Grid) Spacing() float64 { return g.Length() / float64(g.Nodes+1) }

// Points returns the interior node positions in order.
func (g Grid) Points() []float64 {
	dx := g.Spacing()
	pts := make([]float64, g.Nodes)
	for i := range pts {
		pts[i] = g.Start + float64(i+1)*dx
	}
	return pts
}

func (g Grid) Validate() error {
	if g.Nodes < 1 {
		return fmt.Errorf("%w: need at least 1 interior node, got %d", ErrInvalidGrid, g.Nodes)
	}
	if !(g.End > g.Start) {
		return fmt.Errorf("%w: domain [%g, %g] has non-positive length", ErrInvalidGrid, g.Start, g.End)
	}
	return nil
}

// TimeGrid is the fixed-step time discretization.
type TimeGrid struct {
	Duration float64
	Steps    int
}

func (tg TimeGrid) Dt() float64 { return tg.Duration / float64(tg.Steps) }

// Times returns the Steps+1 time stamps, the initial instant included.
func (tg TimeGrid) Times() []float64 {
	dt := tg.Dt()
	ts := make([]float64, tg.Steps+1)
	for k := range ts {
		ts[k] = float64(k) * dt
	}
	return ts
}

func (tg TimeGrid) Validate() error {
	if tg.Steps < 1 {
		return fmt.Errorf("%w: need at least 1 step, got %d", ErrInvalidTimeGrid, tg.Steps)
	}
	if !(tg.Duration > 0) {
		return fmt.Errorf("%w: duration must be positive, got %g", ErrInvalidTimeGrid, tg.Duration)
	}
	return nil
}

// Config describes one diffusion run.
type Config struct {
	Grid        Grid
	Time        TimeGrid
	Diffusivity float64
	Initial     InitialFunc
	Left        Boundary
	Right       Boundary
}

// Stepping returns the dimensionless number s = kappa*dt/dx^2 that
// populates the update matrix. The FTCS scheme is stable for s <= 0.5;
// Stepping reports the value without enforcing the bound.
func (c Config) Stepping() float64 {
	dx := c.Grid.Spacing()
	return c.Diffusivity * c.Time.Dt() / (dx * dx)
}

// StableLimit is the largest stepping number for which FTCS does not
// amplify errors. Exceeding it is legal but divergent.
const StableLimit = 0.5

func (c Config) Validate() error {
	if err := c.Grid.Validate(); err != nil {
		return err
	}
	if err := c.Time.Validate(); err != nil {
		return err
	}
	if c.Diffusivity < 0 {
		return fmt.Errorf("%w: diffusivity must be non-negative, got %g", ErrBadConfig, c.Diffusivity)
	}
	if c.Initial == nil {
		return fmt.Errorf("%w: initial condition is required", ErrBadConfig)
	}
	if s := c.Stepping(); math.IsNaN(s) || math.IsInf(s, 0) {
		return fmt.Errorf("%w: stepping number is not finite", ErrBadConfig)
	}
	if c.Left.Kind == NeumannKind {
		return fmt.Errorf("%w: neumann condition is only supported at the right end", ErrBadConfig)
	}
	return nil
}

// Metric accumulates a scalar over the profiles of a run.
type Metric interface {
	Name() string
	Observe(p Profile, t float64)
	Value() float64
	Reset()
}

// Observer receives each profile as it is produced.
type Observer interface {
	OnStep(p Profile, step int, t float64)
}

// Result is the accumulated output of a run: Steps+1 profile rows, the
// matching time stamps, and the node positions. Rows are append-only
// during the run and read-only afterward.
type Result struct {
	Profiles   []Profile
	Times      []float64
	Points     []float64
	Metrics    map[string]float64
	Stepping   float64
	StepsTaken int
}

// Final returns the last profile row, or nil for an empty result.
func (r *Result) Final() Profile {
	if len(r.Profiles) == 0 {
		return nil
	}
	return r.Profiles[len(r.Profiles)-1]
}
