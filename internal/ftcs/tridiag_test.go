package ftcs

import (
	"math"
	"testing"
)

func TestMulVecAdd(t *testing.T) {
	// | 2 1 0 |   | 1 |   | 1 |   |  5 |
	// | 3 2 1 | * | 2 | + | 0 | = | 10 |
	// | 0 3 2 |   | 3 |   | 1 |   | 13 |
	m := newTridiag(3)
	m.diag[0], m.diag[1], m.diag[2] = 2, 2, 2
	m.sub[0], m.sub[1] = 3, 3
	m.super[0], m.super[1] = 1, 1

	dst := make([]float64, 3)
	m.MulVecAdd(dst, []float64{1, 2, 3}, []float64{1, 0, 1})

	want := []float64{5, 10, 13}
	for i := range want {
		if math.Abs(dst[i]-want[i]) > 1e-15 {
			t.Errorf("dst[%d] = %g, want %g", i, dst[i], want[i])
		}
	}
}

func TestMulVecAddSingle(t *testing.T) {
	m := newTridiag(1)
	m.diag[0] = 0.4

	dst := make([]float64, 1)
	m.MulVecAdd(dst, []float64{5}, []float64{1})
	if math.Abs(dst[0]-3) > 1e-15 {
		t.Errorf("dst[0] = %g, want 3", dst[0])
	}
}

func TestTridiagEqual(t *testing.T) {
	a := newTridiag(3)
	b := newTridiag(3)
	a.diag[1], b.diag[1] = 0.5, 0.5
	if !a.Equal(b) {
		t.Error("identical matrices reported unequal")
	}
	b.sub[0] = 1
	if a.Equal(b) {
		t.Error("differing matrices reported equal")
	}
	if a.Equal(newTridiag(4)) {
		t.Error("different sizes reported equal")
	}
}

func BenchmarkMulVecAdd(b *testing.B) {
	const n = 1024
	m := newTridiag(n)
	for i := 0; i < n; i++ {
		m.diag[i] = 0.36
	}
	for i := 0; i < n-1; i++ {
		m.sub[i] = 0.32
		m.super[i] = 0.32
	}
	x := make([]float64, n)
	bias := make([]float64, n)
	dst := make([]float64, n)
	for i := range x {
		x[i] = float64(i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.MulVecAdd(dst, x, bias)
		dst, x = x, dst
	}
}
