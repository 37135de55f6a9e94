package ftcs

import (
	"fmt"
	"math"

	"github.com/san-kum/heatsim/internal/thermo"
)

// Assemble builds the FTCS update matrix for n interior nodes and stepping
// number s. Interior rows carry 1-2s on the diagonal and s on both
// neighbors; a Neumann right boundary overrides the last diagonal entry to
// 1-s. The construction is pure: identical inputs produce identical
// matrices.
func Assemble(n int, s float64, right thermo.BoundaryKind) (*Tridiag, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: need at least 1 interior node, got %d", thermo.ErrInvalidGrid, n)
	}
	if math.IsNaN(s) || math.IsInf(s, 0) {
		return nil, fmt.Errorf("%w: stepping number is not finite", thermo.ErrBadConfig)
	}

	m := newTridiag(n)
	for i := 0; i < n; i++ {
		m.diag[i] = 1 - 2*s
	}
	for i := 0; i < n-1; i++ {
		m.sub[i] = s
		m.super[i] = s
	}
	if right == thermo.NeumannKind {
		m.diag[n-1] = 1 - s
	}
	return m, nil
}

// Injection fills dst with the boundary contribution vector B at time t:
// zero everywhere except the first and last entries. A Dirichlet end
// contributes s*g(t); a Neumann right end contributes s*dx*g(t). With a
// single node both ends accumulate into the one entry.
func Injection(dst []float64, s, dx, t float64, left, right thermo.Boundary) {
	n := len(dst)
	for i := range dst {
		dst[i] = 0
	}
	dst[0] += s * left.At(t)
	if right.Kind == thermo.NeumannKind {
		dst[n-1] += s * dx * right.At(t)
	} else {
		dst[n-1] += s * right.At(t)
	}
}
