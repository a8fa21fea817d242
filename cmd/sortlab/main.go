package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/avelis/sortlab/internal/algorithms"
	"github.com/avelis/sortlab/internal/config"
	"github.com/avelis/sortlab/internal/engine"
	"github.com/avelis/sortlab/internal/storage"
	"github.com/avelis/sortlab/internal/trace"
	"github.com/avelis/sortlab/internal/viz"
)

var (
	dataDir    string
	size       int
	minVal     int
	maxVal     int
	seed       int64
	order      string
	inputList  string
	delayMs    int
	configFile string
	preset     string
)

// main registers the sortlab commands and launches the interactive shell
// when no subcommand is given.
func main() {
	rootCmd := &cobra.Command{
		Use:   "sortlab",
		Short: "sorting algorithm visualization lab",
		RunE: func(cmd *cobra.Command, args []string) error {
			return viz.RunInteractive(loadBaseConfig())
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".sortlab", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [algorithm]",
		Short: "generate and store a trace",
		Args:  cobra.ExactArgs(1),
		RunE:  runTrace,
	}
	addGenFlags(runCmd)

	liveCmd := &cobra.Command{
		Use:   "live [algorithm]",
		Short: "generate a trace and play it in the TUI",
		Args:  cobra.ExactArgs(1),
		RunE:  runLive,
	}
	addGenFlags(liveCmd)
	liveCmd.Flags().IntVar(&delayMs, "delay", config.DefaultDelayMs, "milliseconds per step")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "interactive menu shell",
		RunE: func(cmd *cobra.Command, args []string) error {
			return viz.RunInteractive(loadBaseConfig())
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot counter growth for a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	compareCmd := &cobra.Command{
		Use:   "compare [algorithms...]",
		Short: "run several algorithms over the same input",
		RunE:  compareAlgorithms,
	}
	addGenFlags(compareCmd)

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export step data to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [algorithm]",
		Short: "list available presets for an algorithm",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for algorithm: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, liveCmd, tuiCmd, listCmd, plotCmd, compareCmd, exportCSVCmd, exportJSONCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addGenFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&size, "size", config.DefaultSize, "sequence length")
	cmd.Flags().IntVar(&minVal, "min", config.DefaultMin, "minimum value")
	cmd.Flags().IntVar(&maxVal, "max", config.DefaultMax, "maximum value")
	cmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	cmd.Flags().StringVar(&order, "order", config.DefaultOrder, "input order (random|sorted|reversed|nearly-sorted)")
	cmd.Flags().StringVar(&inputList, "input", "", "explicit input, comma separated (overrides size/order)")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

// resolveConfig merges preset, config file, and CLI flags, in that order of
// increasing precedence.
func resolveConfig(cmd *cobra.Command, algorithm string) (engine.Config, error) {
	cfg := engine.Config{
		Algorithm: algorithm,
		Size:      size,
		Min:       minVal,
		Max:       maxVal,
		Seed:      seed,
		Order:     order,
	}

	if preset != "" {
		pc := config.GetPreset(algorithm, preset)
		if pc == nil {
			return cfg, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(algorithm))
		}
		cfg.Size, cfg.Min, cfg.Max, cfg.Order = pc.Size, pc.Min, pc.Max, pc.Order
		// delay only applies where the flag exists, and never over an
		// explicit --delay
		if f := cmd.Flags().Lookup("delay"); f != nil && !f.Changed {
			delayMs = pc.DelayMs
		}
	}

	if configFile != "" {
		fc, err := config.Load(configFile)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		if !cmd.Flags().Changed("size") {
			cfg.Size = fc.Size
		}
		if !cmd.Flags().Changed("min") {
			cfg.Min = fc.Min
		}
		if !cmd.Flags().Changed("max") {
			cfg.Max = fc.Max
		}
		if !cmd.Flags().Changed("order") {
			cfg.Order = fc.Order
		}
		if fc.Seed != 0 && !cmd.Flags().Changed("seed") {
			cfg.Seed = fc.Seed
		}
	}

	if cmd.Flags().Changed("size") {
		cfg.Size = size
	}
	if cmd.Flags().Changed("order") {
		cfg.Order = order
	}
	return cfg, nil
}

func parseInput(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		v, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not an integer", trace.ErrInvalidInput, p)
		}
		out = append(out, v)
	}
	return out, nil
}

func generate(cmd *cobra.Command, algorithm string) (*trace.Trace, engine.Config, error) {
	cfg, err := resolveConfig(cmd, algorithm)
	if err != nil {
		return nil, cfg, err
	}

	if inputList != "" {
		seq, err := parseInput(inputList)
		if err != nil {
			return nil, cfg, err
		}
		tr, err := engine.Generate(seq, algorithm)
		return tr, cfg, err
	}

	_, tr, err := engine.Run(cfg)
	return tr, cfg, err
}

func runTrace(cmd *cobra.Command, args []string) error {
	algorithm := args[0]

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	fmt.Printf("generating %s trace...\n", algorithm)
	start := time.Now()

	tr, cfg, err := generate(cmd, algorithm)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	runID, err := st.Save(cfg.Seed, tr)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("elements: %d\n", len(tr.Input))
	fmt.Printf("steps: %d\n", tr.Len())
	fmt.Printf("comparisons: %d\n", tr.Comparisons)
	fmt.Printf("swaps: %d\n", tr.Swaps)
	if !algorithms.Stable(algorithm) {
		fmt.Println("note: this algorithm does not preserve the order of equal elements")
	}
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	tr, cfg, err := generate(cmd, args[0])
	if err != nil {
		return err
	}

	m := viz.NewModelFromTrace(tr, cfg, time.Duration(delayMs)*time.Millisecond)
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tALGORITHM\tTIME\tSIZE\tSTEPS\tCOMPARES\tSWAPS")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%d\t%d\n",
			run.ID,
			run.Algorithm,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Size,
			run.Steps,
			run.Comparisons,
			run.Swaps,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	steps, err := st.LoadSteps(runID)
	if err != nil {
		return err
	}
	if len(steps) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("algorithm: %s\n", meta.Algorithm)
	fmt.Printf("steps: %d\n\n", len(steps))

	compares := make([]float64, len(steps))
	swaps := make([]float64, len(steps))
	c, s := 0, 0
	for i, step := range steps {
		switch step.Kind {
		case trace.Compare:
			c++
		case trace.Swap:
			s++
		}
		compares[i] = float64(c)
		swaps[i] = float64(s)
	}

	fmt.Println(asciigraph.Plot(compares,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("cumulative comparisons"),
	))
	fmt.Println()
	fmt.Println(asciigraph.Plot(swaps,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("cumulative swaps"),
	))

	return nil
}

func compareAlgorithms(cmd *cobra.Command, args []string) error {
	names := args
	if len(names) == 0 {
		names = algorithms.Names()
	}

	var seq []int
	var err error
	if inputList != "" {
		seq, err = parseInput(inputList)
	} else {
		seq, err = engine.Sequence(order, size, minVal, maxVal, seed)
	}
	if err != nil {
		return err
	}

	fmt.Printf("comparing %d algorithms over %d elements (order=%s, seed=%d)\n\n",
		len(names), len(seq), order, seed)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ALGORITHM\tSTEPS\tCOMPARES\tSWAPS\tSTABLE")

	for _, name := range names {
		tr, err := engine.Generate(seq, name)
		if err != nil {
			fmt.Fprintf(w, "%s\terror: %v\n", name, err)
			continue
		}
		stable := "no"
		if algorithms.Stable(name) {
			stable = "yes"
		}
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%s\n",
			name, tr.Len(), tr.Comparisons, tr.Swaps, stable)
	}

	return w.Flush()
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	steps, err := st.LoadSteps(args[0])
	if err != nil {
		return err
	}
	if len(steps) == 0 {
		return fmt.Errorf("no data to export")
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write([]string{"step", "kind", "i", "j", "snapshot"}); err != nil {
		return err
	}
	for i, step := range steps {
		parts := make([]string, len(step.Snapshot))
		for k, v := range step.Snapshot {
			parts[k] = strconv.Itoa(v)
		}
		row := []string{
			strconv.Itoa(i),
			string(step.Kind),
			strconv.Itoa(step.I),
			strconv.Itoa(step.J),
			strings.Join(parts, " "),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	steps, err := st.LoadSteps(args[0])
	if err != nil {
		return err
	}
	return storage.ExportJSON(os.Stdout, meta, steps)
}

func loadBaseConfig() *config.Config {
	if configFile == "" {
		return config.DefaultConfig()
	}
	cfg, err := config.Load(configFile)
	if err != nil {
		return config.DefaultConfig()
	}
	return cfg
}
