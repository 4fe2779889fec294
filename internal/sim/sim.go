// Package sim wires the pipeline together: normalize the network,
// build the stoichiometry matrices, assemble the mass-action ODE and
// integrate it over the requested time grid.
package sim

import (
	"context"

	"github.com/san-kum/crnsim/internal/crn"
	"github.com/san-kum/crnsim/internal/kinetics"
	"github.com/san-kum/crnsim/internal/parse"
	"github.com/san-kum/crnsim/internal/solver"
	"github.com/san-kum/crnsim/internal/stoich"
)

type Options struct {
	// Stepper selects the integrator: "euler", "rk4" or "rk45"
	// (default).
	Stepper string
	Solver  solver.Options
}

func DefaultOptions() Options {
	return Options{Stepper: "rk45", Solver: solver.DefaultOptions()}
}

// Trajectory is the tabular simulation result: one row per requested
// time point, one concentration column per species in network order.
// Values are not clamped; solver error may leave them slightly
// negative.
type Trajectory struct {
	Species     []string
	Times       []float64
	Conc        [][]float64
	Diagnostics crn.Diagnostics
}

// Header is the column labels: "time" followed by the species names.
func (tr *Trajectory) Header() []string {
	return append([]string{"time"}, tr.Species...)
}

// Column returns the concentration series of one species.
func (tr *Trajectory) Column(species string) ([]float64, bool) {
	for j, s := range tr.Species {
		if s != species {
			continue
		}
		out := make([]float64, len(tr.Conc))
		for i, row := range tr.Conc {
			out[i] = row[j]
		}
		return out, true
	}
	return nil, false
}

// Simulate runs the full pipeline. Every fatal condition (grammar,
// validation, degenerate reaction) surfaces before the integrator is
// invoked; non-fatal findings are collected on the returned trajectory.
func Simulate(ctx context.Context, net crn.Network, opts Options) (*Trajectory, error) {
	normalized, diags, err := parse.Normalize(net)
	if err != nil {
		return nil, err
	}

	matrices, mdiags, err := stoich.Build(net.Species, normalized)
	if err != nil {
		return nil, err
	}
	// Normalize already reported token-level findings; only the
	// unknown-species check is new information here.
	diags = append(diags, mdiags.Filter(crn.DiagUnknownSpecies)...)

	st, err := solver.NewStepper(opts.Stepper)
	if err != nil {
		return nil, err
	}

	sys := kinetics.New(net, matrices)
	states, err := solver.Solve(ctx, sys, net.Init, net.Times, st, opts.Solver)
	if err != nil {
		return nil, err
	}

	times := make([]float64, len(net.Times))
	copy(times, net.Times)

	return &Trajectory{
		Species:     net.Species,
		Times:       times,
		Conc:        states,
		Diagnostics: diags,
	}, nil
}
