package store

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/crnsim/internal/sim"
)

type ExportData struct {
	Network     string      `json:"network"`
	Stepper     string      `json:"stepper"`
	Species     []string    `json:"species"`
	Reactions   []string    `json:"reactions"`
	Times       []float64   `json:"times"`
	Conc        [][]float64 `json:"concentrations"`
	Diagnostics []string    `json:"diagnostics,omitempty"`
}

func exportData(meta *RunMetadata, traj *sim.Trajectory) ExportData {
	return ExportData{
		Network:     meta.Network,
		Stepper:     meta.Stepper,
		Species:     traj.Species,
		Reactions:   meta.Reactions,
		Times:       traj.Times,
		Conc:        traj.Conc,
		Diagnostics: meta.Diagnostics,
	}
}

func ExportJSON(w io.Writer, meta *RunMetadata, traj *sim.Trajectory) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(exportData(meta, traj))
}

func ExportJSONFile(path string, meta *RunMetadata, traj *sim.Trajectory) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return ExportJSON(f, meta, traj)
}
