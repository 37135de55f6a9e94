package viz

import (
	"context"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/san-kum/heatsim/internal/ftcs"
	"github.com/san-kum/heatsim/internal/thermo"
)

func testConfig() thermo.Config {
	return thermo.Config{
		Grid:        thermo.Grid{Start: 0, End: 1, Nodes: 19},
		Time:        thermo.TimeGrid{Duration: 200, Steps: 10},
		Diffusivity: 1e-5,
		Initial:     func(x float64) float64 { return 100 * math.Sin(math.Pi*x) },
		Left:        thermo.Dirichlet(func(float64) float64 { return 0 }),
		Right:       thermo.Dirichlet(func(float64) float64 { return 0 }),
	}
}

func TestProfileChart(t *testing.T) {
	out := ProfileChart(thermo.Profile{0, 1, 2, 1, 0}, "bump", 5)
	if !strings.Contains(out, "bump") {
		t.Error("caption missing from chart")
	}
	if out == "" {
		t.Error("empty chart output")
	}
	if got := ProfileChart(nil, "x", 5); !strings.Contains(got, "empty") {
		t.Errorf("nil profile chart = %q", got)
	}
}

func TestPeakHistory(t *testing.T) {
	result, err := ftcs.New(testConfig()).Run(context.Background())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	out := PeakHistory(result, 6)
	if !strings.Contains(out, "s=0.") {
		t.Errorf("caption should carry the stepping number, got %q", out)
	}
}

func TestLiveModelMatchesStepper(t *testing.T) {
	cfg := testConfig()

	m, err := NewLive("test", cfg)
	if err != nil {
		t.Fatalf("new live model: %v", err)
	}

	// Drive the model one tick per step and compare against the batch run.
	result, err := ftcs.New(cfg).Run(context.Background())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	var model = m
	for k := 1; k <= cfg.Time.Steps; k++ {
		next, _ := model.Update(TickMsg(time.Now()))
		model = next.(LiveModel)
		want := result.Profiles[k]
		for i := range want {
			if model.cur[i] != want[i] {
				t.Fatalf("step %d node %d: live %g vs batch %g", k, i, model.cur[i], want[i])
			}
		}
	}

	// Past the final step the profile is frozen.
	frozen := model.cur.Clone()
	next, _ := model.Update(TickMsg(time.Now()))
	model = next.(LiveModel)
	for i := range frozen {
		if model.cur[i] != frozen[i] {
			t.Fatal("model advanced past the configured step count")
		}
	}
}

func TestLiveModelView(t *testing.T) {
	m, err := NewLive("classic", testConfig())
	if err != nil {
		t.Fatalf("new live model: %v", err)
	}
	out := m.View()
	if !strings.Contains(out, "classic") {
		t.Error("view missing run name")
	}
	if !strings.Contains(out, "stepping") {
		t.Error("view missing stepping readout")
	}
}
