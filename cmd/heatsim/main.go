package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/heatsim/internal/analysis"
	"github.com/san-kum/heatsim/internal/config"
	"github.com/san-kum/heatsim/internal/export"
	"github.com/san-kum/heatsim/internal/ftcs"
	"github.com/san-kum/heatsim/internal/metrics"
	"github.com/san-kum/heatsim/internal/scenario"
	"github.com/san-kum/heatsim/internal/storage"
	"github.com/san-kum/heatsim/internal/sweep"
	"github.com/san-kum/heatsim/internal/thermo"
	"github.com/san-kum/heatsim/internal/viz"
)

var (
	dataDir     string
	configFile  string
	nodes       int
	steps       int
	duration    float64
	diffusivity float64
	profile     string
	amplitude   float64
	leftValue   float64
	rightKind   string
	rightValue  float64
	kappaList   string
	outFile     string
	snapshots   int
	noChart     bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "heatsim",
		Short: "1D heat diffusion lab (FTCS)",
	}
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".heatsim", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [preset]",
		Short: "run a diffusion simulation",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSimulation,
	}
	addRunFlags(runCmd)
	runCmd.Flags().BoolVar(&noChart, "no-chart", false, "skip the terminal chart")

	liveCmd := &cobra.Command{
		Use:   "live [preset]",
		Short: "march the solution with a live terminal view",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	addRunFlags(liveCmd)

	sweepCmd := &cobra.Command{
		Use:   "sweep [preset]",
		Short: "run one preset across several diffusivities",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSweep,
	}
	addRunFlags(sweepCmd)
	sweepCmd.Flags().StringVar(&kappaList, "kappas", "5e-6,1e-5,2e-5", "comma-separated diffusivities")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored run in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export a stored run as an image",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}
	exportCmd.Flags().StringVar(&outFile, "out", "run.png", "output file (.png/.svg/.pdf)")
	exportCmd.Flags().IntVar(&snapshots, "snapshots", 5, "number of profile snapshots")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list presets and scenarios",
		RunE:  listPresets,
	}

	rootCmd.AddCommand(runCmd, liveCmd, sweepCmd, listCmd, plotCmd, exportCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().IntVar(&nodes, "nodes", 0, "interior node count")
	cmd.Flags().IntVar(&steps, "steps", 0, "time step count")
	cmd.Flags().Float64Var(&duration, "time", 0, "total simulated time")
	cmd.Flags().Float64Var(&diffusivity, "kappa", 0, "diffusivity")
	cmd.Flags().StringVar(&profile, "profile", "", "initial profile name")
	cmd.Flags().Float64Var(&amplitude, "amplitude", 0, "initial profile amplitude")
	cmd.Flags().Float64Var(&leftValue, "left-value", 0, "left dirichlet value")
	cmd.Flags().StringVar(&rightKind, "right-kind", "", "right boundary kind (dirichlet|neumann)")
	cmd.Flags().Float64Var(&rightValue, "right-value", 0, "right boundary value or flux")
}

// resolveConfig layers flag overrides on top of a preset or config file.
func resolveConfig(cmd *cobra.Command, args []string) (*config.Config, string, error) {
	name := "classic"
	if len(args) == 1 {
		name = args[0]
	}

	var doc *config.Config
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, "", err
		}
		doc = loaded
		base := filepath.Base(configFile)
		name = strings.TrimSuffix(strings.TrimSuffix(base, ".yaml"), ".yml")
	} else {
		preset := config.GetPreset(name)
		if preset == nil {
			return nil, "", fmt.Errorf("unknown preset: %s (try 'heatsim presets')", name)
		}
		copied := *preset
		doc = &copied
	}

	if cmd.Flags().Changed("nodes") {
		doc.Nodes = nodes
	}
	if cmd.Flags().Changed("steps") {
		doc.Steps = steps
	}
	if cmd.Flags().Changed("time") {
		doc.Duration = duration
	}
	if cmd.Flags().Changed("kappa") {
		doc.Diffusivity = diffusivity
	}
	if cmd.Flags().Changed("profile") {
		doc.Profile = config.ProfileConfig{Name: profile, Params: map[string]float64{}}
	}
	if cmd.Flags().Changed("amplitude") {
		doc.Profile.Params = withParam(doc.Profile.Params, "amplitude", amplitude)
	}
	if cmd.Flags().Changed("left-value") {
		doc.Left.Params = withParam(doc.Left.Params, "value", leftValue)
	}
	if cmd.Flags().Changed("right-kind") {
		doc.Right.Kind = rightKind
	}
	if cmd.Flags().Changed("right-value") {
		doc.Right.Params = withParam(doc.Right.Params, "value", rightValue)
	}

	return doc, name, nil
}

func withParam(params map[string]float64, key string, val float64) map[string]float64 {
	out := make(map[string]float64, len(params)+1)
	for k, v := range params {
		out[k] = v
	}
	out[key] = val
	return out
}

func runSimulation(cmd *cobra.Command, args []string) error {
	doc, name, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	cfg, err := doc.Build(scenario.NewRegistry())
	if err != nil {
		return err
	}

	if s := cfg.Stepping(); s > thermo.StableLimit {
		fmt.Fprintf(os.Stderr, "warning: s = %.4f exceeds the FTCS stability bound %.1f; the run may diverge\n",
			s, thermo.StableLimit)
	}

	st := ftcs.New(cfg)
	st.AddMetric(metrics.NewPeak())
	st.AddMetric(metrics.NewDecayRatio())
	st.AddMetric(metrics.NewStability())

	result, err := st.Run(context.Background())
	if err != nil {
		return err
	}

	store := storage.New(dataDir)
	if err := store.Init(); err != nil {
		return err
	}
	runID, err := store.Save(name, cfg, result)
	if err != nil {
		return err
	}

	fmt.Printf("run %s: %d steps, s = %.4f\n\n", runID, result.StepsTaken, result.Stepping)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, m := range []string{"peak", "decay_ratio", "stability"} {
		fmt.Fprintf(w, "%s\t%.6f\n", m, result.Metrics[m])
	}
	rate := analysis.EstimateDecayRate(result.Times, result.Profiles)
	fmt.Fprintf(w, "decay_rate\t%.6g\n", rate)
	fmt.Fprintf(w, "analytic_rate\t%.6g\n", analysis.FundamentalRate(cfg.Diffusivity, cfg.Grid.Length()))
	w.Flush()

	if !noChart {
		fmt.Println()
		fmt.Println(viz.ProfileChart(result.Final(), "final temperature profile", 12))
	}
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	doc, name, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	cfg, err := doc.Build(scenario.NewRegistry())
	if err != nil {
		return err
	}
	return viz.RunLive(name, cfg)
}

func runSweep(cmd *cobra.Command, args []string) error {
	doc, _, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	base, err := doc.Build(scenario.NewRegistry())
	if err != nil {
		return err
	}

	fields := strings.Split(kappaList, ",")
	kappas := make([]float64, 0, len(fields))
	names := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		k, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return fmt.Errorf("bad diffusivity %q: %w", f, err)
		}
		kappas = append(kappas, k)
		names = append(names, f)
	}

	items := sweep.Diffusivities(base, names, kappas)
	results, err := sweep.New(items).Run(context.Background())
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "kappa\ts\tdecay_ratio\tstability")
	for i, r := range results {
		fmt.Fprintf(w, "%s\t%.4f\t%.6f\t%.4f\n",
			items[i].Name, r.Stepping, r.Metrics["decay_ratio"], r.Metrics["stability"])
	}
	return w.Flush()
}

func listRuns(cmd *cobra.Command, args []string) error {
	store := storage.New(dataDir)
	runs, err := store.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs stored")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "id\tscenario\tnodes\tsteps\ts\tstable\ttimestamp")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%.4f\t%v\t%s\n",
			r.ID, r.Scenario, r.Nodes, r.Steps, r.Stepping, r.Stable,
			r.Timestamp.Format("2006-01-02 15:04:05"))
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	store := storage.New(dataDir)
	result, err := loadResult(store, args[0])
	if err != nil {
		return err
	}

	fmt.Println(viz.ProfileChart(result.Profiles[0], "initial profile", 10))
	fmt.Println()
	fmt.Println(viz.ProfileChart(result.Final(), "final profile", 10))
	fmt.Println()
	fmt.Println(viz.PeakHistory(result, 8))
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	store := storage.New(dataDir)
	result, err := loadResult(store, args[0])
	if err != nil {
		return err
	}

	rows := export.DefaultRows(len(result.Profiles), snapshots)
	if err := export.Snapshots(outFile, args[0], result, rows); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", outFile)
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	reg := scenario.NewRegistry()

	fmt.Println("presets:")
	for _, name := range config.ListPresets() {
		fmt.Printf("  %s\n", name)
	}
	fmt.Println("profiles:")
	for _, name := range reg.ListProfiles() {
		fmt.Printf("  %s\n", name)
	}
	fmt.Println("boundary drives:")
	for _, name := range reg.ListDrives() {
		fmt.Printf("  %s\n", name)
	}
	return nil
}

func loadResult(store *storage.Store, runID string) (*thermo.Result, error) {
	meta, err := store.Load(runID)
	if err != nil {
		return nil, err
	}
	profiles, times, err := store.LoadGrid(runID)
	if err != nil {
		return nil, err
	}
	if len(profiles) == 0 {
		return nil, fmt.Errorf("run %s has no stored grid", runID)
	}

	points := make([]float64, meta.Nodes)
	for i := range points {
		points[i] = float64(i+1) * meta.Dx
	}
	return &thermo.Result{
		Profiles:   profiles,
		Times:      times,
		Points:     points,
		Metrics:    meta.Metrics,
		Stepping:   meta.Stepping,
		StepsTaken: meta.Steps,
	}, nil
}
