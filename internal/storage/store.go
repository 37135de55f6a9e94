package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/heatsim/internal/thermo"
)

// Store persists runs under a base directory, one subdirectory per run
// with metadata.json and grid.csv.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID          string             `json:"id"`
	Scenario    string             `json:"scenario"`
	Timestamp   time.Time          `json:"timestamp"`
	Nodes       int                `json:"nodes"`
	Steps       int                `json:"steps"`
	Dt          float64            `json:"dt"`
	Dx          float64            `json:"dx"`
	Diffusivity float64            `json:"diffusivity"`
	Stepping    float64            `json:"stepping"`
	Stable      bool               `json:"stable"`
	Metrics     map[string]float64 `json:"metrics"`
}

// Save writes one run and returns its generated id.
func (s *Store) Save(scenario string, cfg thermo.Config, result *thermo.Result) (string, error) {
	runID := fmt.Sprintf("%s_%d", scenario, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:          runID,
		Scenario:    scenario,
		Timestamp:   time.Now(),
		Nodes:       cfg.Grid.Nodes,
		Steps:       result.StepsTaken,
		Dt:          cfg.Time.Dt(),
		Dx:          cfg.Grid.Spacing(),
		Diffusivity: cfg.Diffusivity,
		Stepping:    result.Stepping,
		Stable:      result.Stepping <= thermo.StableLimit,
		Metrics:     result.Metrics,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	gridFile, err := os.Create(filepath.Join(runDir, "grid.csv"))
	if err != nil {
		return "", err
	}
	defer gridFile.Close()

	w := csv.NewWriter(gridFile)
	defer w.Flush()

	if len(result.Profiles) == 0 {
		return runID, nil
	}

	header := []string{"time"}
	for i := range result.Profiles[0] {
		header = append(header, fmt.Sprintf("x%d", i))
	}
	if err := w.Write(header); err != nil {
		return "", err
	}

	for k := range result.Profiles {
		row := []string{strconv.FormatFloat(result.Times[k], 'g', -1, 64)}
		for _, val := range result.Profiles[k] {
			row = append(row, strconv.FormatFloat(val, 'g', -1, 64))
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadGrid reads back the stored space-time grid and its time stamps.
func (s *Store) LoadGrid(runID string) ([]thermo.Profile, []float64, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "grid.csv"))
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(records) < 2 {
		return []thermo.Profile{}, []float64{}, nil
	}

	times := make([]float64, 0, len(records)-1)
	profiles := make([]thermo.Profile, 0, len(records)-1)

	for _, record := range records[1:] {
		if len(record) < 2 {
			continue
		}
		t, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			continue
		}
		p := make(thermo.Profile, 0, len(record)-1)
		for _, field := range record[1:] {
			val, err := strconv.ParseFloat(field, 64)
			if err != nil {
				continue
			}
			p = append(p, val)
		}
		times = append(times, t)
		profiles = append(profiles, p)
	}

	return profiles, times, nil
}
