package ftcs

// Tridiag is an n x n tridiagonal matrix stored as three parallel bands.
// Only the main diagonal and its two neighbors are ever populated, so the
// dense representation is never materialized.
type Tridiag struct {
	sub   []float64 // len n-1, entries (i, i-1)
	diag  []float64 // len n,   entries (i, i)
	super []float64 // len n-1, entries (i, i+1)
}

func newTridiag(n int) *Tridiag {
	return &Tridiag{
		sub:   make([]float64, n-1),
		diag:  make([]float64, n),
		super: make([]float64, n-1),
	}
}

func (m *Tridiag) N() int { return len(m.diag) }

// At returns the entry at (i, j). Entries outside the three bands are zero.
func (m *Tridiag) At(i, j int) float64 {
	switch {
	case i == j:
		return m.diag[i]
	case j == i-1:
		return m.sub[j]
	case j == i+1:
		return m.super[i]
	default:
		return 0
	}
}

// MulVecAdd computes dst = m*x + b against the banded storage.
// dst must not alias x.
func (m *Tridiag) MulVecAdd(dst, x, b []float64) {
	n := len(m.diag)
	for i := 0; i < n; i++ {
		v := m.diag[i] * x[i]
		if i > 0 {
			v += m.sub[i-1] * x[i-1]
		}
		if i < n-1 {
			v += m.super[i] * x[i+1]
		}
		dst[i] = v + b[i]
	}
}

// Equal reports whether two matrices have identical bands. Assembly is a
// pure function, so identical configurations must compare equal.
func (m *Tridiag) Equal(o *Tridiag) bool {
	if m.N() != o.N() {
		return false
	}
	for i := range m.diag {
		if m.diag[i] != o.diag[i] {
			return false
		}
	}
	for i := range m.sub {
		if m.sub[i] != o.sub[i] || m.super[i] != o.super[i] {
			return false
		}
	}
	return true
}
