// Package store persists simulation runs. Each run gets its own
// directory under the base dir holding metadata.json and
// concentrations.csv.
package store

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/crnsim/internal/sim"
)

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
	ID          string    `json:"id"`
	Network     string    `json:"network"`
	Timestamp   time.Time `json:"timestamp"`
	Stepper     string    `json:"stepper"`
	Species     []string  `json:"species"`
	Reactions   []string  `json:"reactions"`
	Points      int       `json:"points"`
	Diagnostics []string  `json:"diagnostics,omitempty"`
}

// Save writes one run and returns its id.
func (s *Store) Save(network, stepper string, reactions []string, traj *sim.Trajectory) (string, error) {
	runID := fmt.Sprintf("%s_%d", network, time.Now().UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	var diagLines []string
	for _, d := range traj.Diagnostics {
		diagLines = append(diagLines, d.String())
	}

	meta := RunMetadata{
		ID:          runID,
		Network:     network,
		Timestamp:   time.Now(),
		Stepper:     stepper,
		Species:     traj.Species,
		Reactions:   reactions,
		Points:      len(traj.Times),
		Diagnostics: diagLines,
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

	csvFile, err := os.Create(filepath.Join(runDir, "concentrations.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write(traj.Header()); err != nil {
		return "", err
	}
	for i := range traj.Times {
		row := make([]string, 0, 1+len(traj.Species))
		row = append(row, strconv.FormatFloat(traj.Times[i], 'g', -1, 64))
		for _, v := range traj.Conc[i] {
			row = append(row, strconv.FormatFloat(v, 'g', -1, 64))
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	return runID, nil
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

// LoadTrajectory reads a saved run back into trajectory form.
func (s *Store) LoadTrajectory(runID string) (*sim.Trajectory, error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, "concentrations.csv"))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("store: run %s has no data", runID)
	}

	header := records[0]
	traj := &sim.Trajectory{Species: header[1:]}
	for _, rec := range records[1:] {
		t, err := strconv.ParseFloat(rec[0], 64)
		if err != nil {
			return nil, err
		}
		row := make([]float64, len(rec)-1)
		for j, field := range rec[1:] {
			if row[j], err = strconv.ParseFloat(field, 64); err != nil {
				return nil, err
			}
		}
		traj.Times = append(traj.Times, t)
		traj.Conc = append(traj.Conc, row)
	}
	return traj, nil
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
	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })
	return runs, nil
}
