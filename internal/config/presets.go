package config

import "sort"

// Presets are ready-to-run example networks.
var Presets = map[string]*Config{
	"assoc": {
		Name:      "assoc",
		Species:   []string{"A", "B", "C"},
		Init:      []float64{1e3, 1e3, 0},
		Reactions: []string{"A + B -> C"},
		Rates:     []float64{1e-7},
		Times:     TimeGrid{Start: 0, Stop: 1e4, Step: 10},
	},
	"dimer": {
		Name:      "dimer",
		Species:   []string{"M", "D"},
		Init:      []float64{100, 0},
		Reactions: []string{"2M -> D", "D -> 2M"},
		Rates:     []float64{0.001, 0.1},
		Times:     TimeGrid{Start: 0, Stop: 50, Step: 0.1},
	},
	"birthdeath": {
		Name:      "birthdeath",
		Species:   []string{"A"},
		Init:      []float64{0},
		Reactions: []string{"0 -> A", "A -> 0"},
		Rates:     []float64{1.0, 0.1},
		Times:     TimeGrid{Start: 0, Stop: 60, Step: 0.1},
	},
	"lotka": {
		Name:      "lotka",
		Species:   []string{"X", "Y"},
		Init:      []float64{100, 50},
		Reactions: []string{"X -> 2X", "X + Y -> 2Y", "Y -> 0"},
		Rates:     []float64{1.0, 0.01, 1.0},
		Times:     TimeGrid{Start: 0, Stop: 30, Step: 0.01},
	},
	"enzyme": {
		Name:      "enzyme",
		Species:   []string{"E", "S", "ES", "P"},
		Init:      []float64{1, 10, 0, 0},
		Reactions: []string{"E + S -> ES", "ES -> E + S", "ES -> E + P"},
		Rates:     []float64{100, 600, 150},
		Times:     TimeGrid{Start: 0, Stop: 0.5, Step: 0.001},
	},
}

func GetPreset(name string) *Config {
	return Presets[name]
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
