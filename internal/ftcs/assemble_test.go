package ftcs

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/heatsim/internal/thermo"
)

func TestAssembleTridiagonal(t *testing.T) {
	const n, s = 7, 0.32
	m, err := Assemble(n, s, thermo.DirichletKind)
	if err != nil {
		t.Fatalf("assemble failed: %v", err)
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			got := m.At(i, j)
			switch {
			case i == j:
				if got != 1-2*s {
					t.Errorf("A[%d][%d] = %g, want %g", i, j, got, 1-2*s)
				}
			case j == i-1 || j == i+1:
				if got != s {
					t.Errorf("A[%d][%d] = %g, want %g", i, j, got, s)
				}
			default:
				if got != 0 {
					t.Errorf("A[%d][%d] = %g, want exactly 0", i, j, got)
				}
			}
		}
	}
}

func TestAssembleRowSums(t *testing.T) {
	// Interior rows satisfy (1-2s) + s + s = 1 for any s.
	for _, s := range []float64{0, 0.1, 0.32, 0.5, 0.9} {
		m, err := Assemble(9, s, thermo.DirichletKind)
		if err != nil {
			t.Fatalf("assemble failed: %v", err)
		}
		for i := 1; i < m.N()-1; i++ {
			sum := m.At(i, i-1) + m.At(i, i) + m.At(i, i+1)
			if math.Abs(sum-1) > 1e-15 {
				t.Errorf("s=%g row %d sums to %g, want 1", s, i, sum)
			}
		}
	}
}

func TestAssembleNeumannOverride(t *testing.T) {
	const n, s = 5, 0.25
	m, err := Assemble(n, s, thermo.NeumannKind)
	if err != nil {
		t.Fatalf("assemble failed: %v", err)
	}
	if got := m.At(n-1, n-1); got != 1-s {
		t.Errorf("neumann last diagonal = %g, want %g", got, 1-s)
	}
	// Only the last diagonal entry differs from the Dirichlet build.
	d, _ := Assemble(n, s, thermo.DirichletKind)
	for i := 0; i < n-1; i++ {
		if m.At(i, i) != d.At(i, i) {
			t.Errorf("row %d diagonal differs between modes", i)
		}
	}
}

func TestAssembleDeterministic(t *testing.T) {
	a, err := Assemble(39, 0.32, thermo.DirichletKind)
	if err != nil {
		t.Fatalf("assemble failed: %v", err)
	}
	b, err := Assemble(39, 0.32, thermo.DirichletKind)
	if err != nil {
		t.Fatalf("assemble failed: %v", err)
	}
	if !a.Equal(b) {
		t.Error("identical configurations must assemble bit-identical matrices")
	}
}

func TestAssembleRejects(t *testing.T) {
	tests := []struct {
		name string
		n    int
		s    float64
		want error
	}{
		{"zero nodes", 0, 0.1, thermo.ErrInvalidGrid},
		{"negative nodes", -2, 0.1, thermo.ErrInvalidGrid},
		{"nan stepping", 5, math.NaN(), thermo.ErrBadConfig},
		{"inf stepping", 5, math.Inf(1), thermo.ErrBadConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Assemble(tt.n, tt.s, thermo.DirichletKind)
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestAssembleSingleNode(t *testing.T) {
	m, err := Assemble(1, 0.3, thermo.DirichletKind)
	if err != nil {
		t.Fatalf("assemble failed: %v", err)
	}
	if m.N() != 1 || m.At(0, 0) != 1-2*0.3 {
		t.Errorf("1x1 matrix entry = %g, want %g", m.At(0, 0), 1-2*0.3)
	}
}

func TestInjectionDirichlet(t *testing.T) {
	b := make([]float64, 4)
	left := thermo.Dirichlet(func(float64) float64 { return 100 })
	right := thermo.Dirichlet(func(float64) float64 { return 50 })

	Injection(b, 0.32, 0.025, 0, left, right)

	if math.Abs(b[0]-32) > 1e-12 {
		t.Errorf("b[0] = %g, want 32", b[0])
	}
	if math.Abs(b[3]-16) > 1e-12 {
		t.Errorf("b[3] = %g, want 16", b[3])
	}
	for i := 1; i < 3; i++ {
		if b[i] != 0 {
			t.Errorf("b[%d] = %g, want 0", i, b[i])
		}
	}
}

func TestInjectionNeumannFlux(t *testing.T) {
	b := make([]float64, 3)
	right := thermo.Neumann(func(float64) float64 { return 2 })

	Injection(b, 0.4, 0.1, 0, thermo.Boundary{}, right)

	// s*dx*g2 = 0.4 * 0.1 * 2
	if math.Abs(b[2]-0.08) > 1e-15 {
		t.Errorf("b[2] = %g, want 0.08", b[2])
	}
}

func TestInjectionNeumannZeroFluxMatchesZeroDirichlet(t *testing.T) {
	// With g2 == 0 the injection vectors are identical; only the diagonal
	// override distinguishes the two modes.
	zero := func(float64) float64 { return 0 }
	bn := make([]float64, 5)
	bd := make([]float64, 5)
	Injection(bn, 0.32, 0.025, 3, thermo.Dirichlet(zero), thermo.Neumann(zero))
	Injection(bd, 0.32, 0.025, 3, thermo.Dirichlet(zero), thermo.Dirichlet(zero))
	for i := range bn {
		if bn[i] != bd[i] {
			t.Errorf("b[%d]: neumann %g vs dirichlet %g", i, bn[i], bd[i])
		}
		if bn[i] != 0 {
			t.Errorf("b[%d] = %g, want 0 for homogeneous conditions", i, bn[i])
		}
	}
}

func TestInjectionSingleNode(t *testing.T) {
	// Both boundary contributions accumulate into the one entry.
	b := make([]float64, 1)
	left := thermo.Dirichlet(func(float64) float64 { return 10 })
	right := thermo.Dirichlet(func(float64) float64 { return 20 })

	Injection(b, 0.5, 0.5, 0, left, right)

	if math.Abs(b[0]-15) > 1e-12 {
		t.Errorf("b[0] = %g, want 15", b[0])
	}
}

func TestInjectionTimeVarying(t *testing.T) {
	b := make([]float64, 2)
	left := thermo.Dirichlet(func(t float64) float64 { return t })

	Injection(b, 0.1, 1, 4, left, thermo.Boundary{})
	if math.Abs(b[0]-0.4) > 1e-15 {
		t.Errorf("b[0] at t=4 is %g, want 0.4", b[0])
	}

	Injection(b, 0.1, 1, 8, left, thermo.Boundary{})
	if math.Abs(b[0]-0.8) > 1e-15 {
		t.Errorf("b[0] at t=8 is %g, want 0.8", b[0])
	}
}
