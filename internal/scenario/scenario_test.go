package scenario

import (
	"math"
	"testing"

	"github.com/san-kum/heatsim/internal/thermo"
)

func TestHalfSine(t *testing.T) {
	f := HalfSine(100, 0, 1)
	if got := f(0.5); math.Abs(got-100) > 1e-12 {
		t.Errorf("peak = %g, want 100", got)
	}
	if got := f(0); math.Abs(got) > 1e-12 {
		t.Errorf("f(0) = %g, want 0", got)
	}
	if got := f(1); math.Abs(got) > 1e-12 {
		t.Errorf("f(1) = %g, want 0", got)
	}
}

func TestGaussian(t *testing.T) {
	f := Gaussian(10, 0.5, 0.1)
	if got := f(0.5); math.Abs(got-10) > 1e-12 {
		t.Errorf("center = %g, want 10", got)
	}
	if f(0.4) >= f(0.5) || f(0.6) >= f(0.5) {
		t.Error("gaussian must peak at the center")
	}
	if math.Abs(f(0.4)-f(0.6)) > 1e-12 {
		t.Error("gaussian must be symmetric about the center")
	}
}

func TestTriangle(t *testing.T) {
	f := Triangle(8, 0, 2)
	if got := f(1); math.Abs(got-8) > 1e-12 {
		t.Errorf("apex = %g, want 8", got)
	}
	if got := f(0); math.Abs(got) > 1e-12 {
		t.Errorf("f(0) = %g, want 0", got)
	}
	if got := f(2); math.Abs(got) > 1e-12 {
		t.Errorf("f(2) = %g, want 0", got)
	}
}

func TestDrives(t *testing.T) {
	if got := Constant(7)(123); got != 7 {
		t.Errorf("constant drive = %g, want 7", got)
	}
	if got := Ramp(2)(3); math.Abs(got-6) > 1e-12 {
		t.Errorf("ramp(3) = %g, want 6", got)
	}
	s := Sinusoid(5, 1)
	if got := s(0.25); math.Abs(got-5) > 1e-9 {
		t.Errorf("sinusoid quarter period = %g, want 5", got)
	}
}

func TestRegistryProfiles(t *testing.T) {
	r := NewRegistry()
	g := thermo.Grid{Start: 0, End: 1, Nodes: 9}

	for _, name := range r.ListProfiles() {
		t.Run(name, func(t *testing.T) {
			f, err := r.GetProfile(name, g, map[string]float64{"amplitude": 2})
			if err != nil {
				t.Fatalf("lookup failed: %v", err)
			}
			if f == nil {
				t.Fatal("nil profile")
			}
			v := f(0.5)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Errorf("profile %s produced %g", name, v)
			}
		})
	}

	if _, err := r.GetProfile("plasma", g, nil); err == nil {
		t.Error("expected error for unknown profile")
	}
}

func TestRegistryDrives(t *testing.T) {
	r := NewRegistry()

	f, err := r.GetDrive("sinusoid", map[string]float64{"amplitude": 3, "frequency": 0.5})
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if got := f(0.5); math.Abs(got-3) > 1e-9 {
		t.Errorf("sinusoid drive = %g, want 3", got)
	}

	if _, err := r.GetDrive("square", nil); err == nil {
		t.Error("expected error for unknown drive")
	}
}

func TestRegistryGaussianDefaults(t *testing.T) {
	r := NewRegistry()
	g := thermo.Grid{Start: 0, End: 2, Nodes: 9}

	f, err := r.GetProfile("gaussian", g, map[string]float64{"amplitude": 1})
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	// Default center is mid-domain.
	if f(1.0) <= f(0.5) {
		t.Error("default gaussian should peak mid-domain")
	}
}
