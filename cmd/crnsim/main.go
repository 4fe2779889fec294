package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/crnsim/internal/config"
	"github.com/san-kum/crnsim/internal/crn"
	"github.com/san-kum/crnsim/internal/kinetics"
	"github.com/san-kum/crnsim/internal/parse"
	"github.com/san-kum/crnsim/internal/sim"
	"github.com/san-kum/crnsim/internal/solver"
	"github.com/san-kum/crnsim/internal/stoich"
	"github.com/san-kum/crnsim/internal/store"
	"github.com/san-kum/crnsim/internal/viz"
)

var (
	dataDir    string
	preset     string
	showPlot   bool
	plotWidth  int
	plotHeight int
	outFile    string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "crnsim",
		Short: "chemical reaction network simulation lab",
	}
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".crnsim", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [config.yaml]",
		Short: "simulate a network and store the trajectory",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSimulation,
	}
	runCmd.Flags().StringVar(&preset, "preset", "", "use a preset network")
	runCmd.Flags().BoolVar(&showPlot, "plot", false, "plot the trajectory after the run")
	runCmd.Flags().IntVar(&plotWidth, "width", 80, "plot width")
	runCmd.Flags().IntVar(&plotHeight, "height", 15, "plot height")

	validateCmd := &cobra.Command{
		Use:   "validate [config.yaml]",
		Short: "check a network without simulating",
		Args:  cobra.MaximumNArgs(1),
		RunE:  validateNetwork,
	}
	validateCmd.Flags().StringVar(&preset, "preset", "", "use a preset network")

	watchCmd := &cobra.Command{
		Use:   "watch [config.yaml]",
		Short: "live terminal view of a running simulation",
		Args:  cobra.MaximumNArgs(1),
		RunE:  watchSimulation,
	}
	watchCmd.Flags().StringVar(&preset, "preset", "", "use a preset network")

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().IntVar(&plotWidth, "width", 80, "plot width")
	plotCmd.Flags().IntVar(&plotHeight, "height", 15, "plot height")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export a stored run as json",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}
	exportCmd.Flags().StringVar(&outFile, "out", "", "output file (default stdout)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list preset networks",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Printf("%-12s %d species, %d reactions\n", name, len(p.Species), len(p.Reactions))
			}
		},
	}

	combineCmd := &cobra.Command{
		Use:   "combine [config.yaml...]",
		Short: "merge networks into one config",
		Args:  cobra.MinimumNArgs(2),
		RunE:  combineNetworks,
	}
	combineCmd.Flags().StringVar(&outFile, "out", "combined.yaml", "output config file")

	rootCmd.AddCommand(runCmd, validateCmd, watchCmd, plotCmd, listCmd, exportCmd, presetsCmd, combineCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig(args []string) (*config.Config, error) {
	if preset != "" {
		cfg := config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset %q (see: crnsim presets)", preset)
		}
		return cfg, nil
	}
	if len(args) == 0 {
		return nil, fmt.Errorf("need a config file or --preset")
	}
	return config.Load(args[0])
}

func printDiagnostics(diags crn.Diagnostics) {
	for _, d := range diags {
		fmt.Fprintln(os.Stderr, "warning:", d)
	}
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}

	net := cfg.Network()
	opts := cfg.SimOptions()

	traj, err := sim.Simulate(context.Background(), net, opts)
	if err != nil {
		return err
	}
	printDiagnostics(traj.Diagnostics)

	st := store.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	name := cfg.Name
	if name == "" {
		name = "network"
	}
	runID, err := st.Save(name, opts.Stepper, net.Reactions, traj)
	if err != nil {
		return err
	}

	last := traj.Conc[len(traj.Conc)-1]
	fmt.Printf("run %s: %d points, t = %g .. %g\n", runID, len(traj.Times), traj.Times[0], traj.Times[len(traj.Times)-1])
	for j, s := range traj.Species {
		fmt.Printf("  %-12s %.6g -> %.6g\n", s, net.Init[j], last[j])
	}

	if showPlot {
		fmt.Println(viz.Plot(name, traj, plotWidth, plotHeight))
	}
	return nil
}

func validateNetwork(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}
	net := cfg.Network()

	normalized, diags, err := parse.Normalize(net)
	if err != nil {
		return err
	}
	_, mdiags, err := stoich.Build(net.Species, normalized)
	if err != nil {
		return err
	}
	printDiagnostics(append(diags, mdiags.Filter(crn.DiagUnknownSpecies)...))

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "reaction\tclass")
	for _, r := range normalized {
		fmt.Fprintf(w, "%s\t%s\n", r, classify(r))
	}
	w.Flush()
	fmt.Printf("ok: %d species, %d reactions\n", net.NumSpecies(), net.NumReactions())
	return nil
}

func classify(reaction string) string {
	switch {
	case parse.IsFormation(reaction):
		return "formation"
	case parse.IsDegradation(reaction) && parse.IsUnimolecular(reaction):
		return "degradation"
	case parse.IsBimolecular(reaction):
		return "bimolecular"
	case parse.IsUnimolecular(reaction):
		return "unimolecular"
	default:
		return "other"
	}
}

func watchSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}
	net := cfg.Network()

	normalized, diags, err := parse.Normalize(net)
	if err != nil {
		return err
	}
	matrices, mdiags, err := stoich.Build(net.Species, normalized)
	if err != nil {
		return err
	}
	printDiagnostics(append(diags, mdiags.Filter(crn.DiagUnknownSpecies)...))

	stepper, err := solver.NewStepper(cfg.Solver.Method)
	if err != nil {
		return err
	}

	dt := cfg.Times.Step
	if dt <= 0 {
		dt = config.DefaultStep
	}

	sys := kinetics.New(net, matrices)
	name := cfg.Name
	if name == "" {
		name = "network"
	}
	return viz.Watch(viz.NewWatch(name, sys, stepper, net.Species, net.Init, dt))
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	traj, err := st.LoadTrajectory(args[0])
	if err != nil {
		return err
	}
	fmt.Println(viz.Plot(args[0], traj, plotWidth, plotHeight))
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs")
		return nil
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "id\tnetwork\tstepper\tpoints\ttimestamp")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n", r.ID, r.Network, r.Stepper, r.Points, r.Timestamp.Format("2006-01-02 15:04:05"))
	}
	return w.Flush()
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	traj, err := st.LoadTrajectory(args[0])
	if err != nil {
		return err
	}
	if outFile == "" {
		return store.ExportJSON(os.Stdout, meta, traj)
	}
	return store.ExportJSONFile(outFile, meta, traj)
}

func combineNetworks(cmd *cobra.Command, args []string) error {
	nets := make([]crn.Network, 0, len(args))
	names := ""
	for i, path := range args {
		cfg, err := config.Load(path)
		if err != nil {
			return err
		}
		nets = append(nets, cfg.Network())
		if i > 0 {
			names += "+"
		}
		name := cfg.Name
		if name == "" {
			name = filepath.Base(path)
		}
		names += name
	}

	merged := crn.Combine(nets...)

	// Surface duplicate-species conflicts now rather than at first run.
	_, diags, err := parse.Normalize(merged)
	if err != nil {
		return fmt.Errorf("combined network is invalid: %w", err)
	}
	printDiagnostics(diags)

	out := &config.Config{
		Name:      names,
		Species:   merged.Species,
		Init:      merged.Init,
		Reactions: merged.Reactions,
		Rates:     merged.Rates,
		Times:     config.TimeGrid{Points: merged.Times},
	}
	if err := config.Save(outFile, out); err != nil {
		return err
	}
	fmt.Printf("wrote %s: %d species, %d reactions\n", outFile, merged.NumSpecies(), merged.NumReactions())
	return nil
}
