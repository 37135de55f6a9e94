// Package thermo provides core primitives for 1D heat-diffusion runs.
//
// The package defines the fundamental types shared by the solver and its
// outer surfaces:
//
//   - [Profile]: temperature values at the interior nodes
//   - [Grid]: spatial discretization of the domain
//   - [TimeGrid]: fixed-step time discretization
//   - [Boundary]: Dirichlet or Neumann condition at a domain end
//   - [Config]: a complete run description
//   - [Result]: the accumulated space-time temperature grid
//
// # Example
//
//	cfg := thermo.Config{
//		Grid:        thermo.Grid{Start: 0, End: 1, Nodes: 39},
//		Time:        thermo.TimeGrid{Duration: 12000, Steps: 600},
//		Diffusivity: 1e-5,
//		Initial:     scenario.HalfSine(100, 0, 1),
//		Left:        thermo.Dirichlet(scenario.Constant(0)),
//		Right:       thermo.Dirichlet(scenario.Constant(0)),
//	}
//	result, _ := ftcs.New(cfg).Run(ctx)
//
// # Thread Safety
//
// Profiles and Results are not synchronized. A single run is strictly
// sequential; for concurrent runs use the sweep package, which gives each
// run its own stepper and buffers.
package thermo
