package thermo

import "errors"

// Domain errors for run configuration and stepping.
var (
	// ErrInvalidGrid indicates a spatial grid with no interior nodes or
	// non-positive length.
	ErrInvalidGrid = errors.New("thermo: invalid spatial grid")

	// ErrInvalidTimeGrid indicates a non-positive duration or step count.
	ErrInvalidTimeGrid = errors.New("thermo: invalid time grid")

	// ErrBadConfig indicates a run configuration rejected before assembly.
	ErrBadConfig = errors.New("thermo: invalid configuration")

	// ErrDimensionMismatch indicates a profile whose length does not match
	// the grid it is applied to.
	ErrDimensionMismatch = errors.New("thermo: dimension mismatch between profile and grid")
)
