package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/tanlut/internal/analysis"
	"github.com/san-kum/tanlut/internal/config"
	"github.com/san-kum/tanlut/internal/emit"
	"github.com/san-kum/tanlut/internal/lut"
	"github.com/san-kum/tanlut/internal/smoother"
	"github.com/san-kum/tanlut/internal/tan"
	"github.com/san-kum/tanlut/internal/viz"
)

var (
	configFile string
	preset     string
	output     string
	formatter  string
	// accuracy
	fromDeg    float64
	toDeg      float64
	stepDeg    float64
	maxPercent float64
	ignoreDeg  float64
	compareTo  float64
	plot       bool
	asCSV      bool
	// step response
	basefreq    float64
	samplerate  float64
	sensitivity float64
	stepLevel   float64
	stepRatio   float64
	stepSamples int
)

// main exits 1 on any error.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newRootCmd registers the commands. The root runs the generator when no
// subcommand is given, so `go generate` needs no arguments.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "tanlut",
		Short:         "fixed-point tangent lookup table generator",
		Args:          cobra.NoArgs,
		RunE:          generate,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "table config file (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset table parameters")
	rootCmd.Flags().StringVar(&output, "output", "", "artifact path (default from config)")
	rootCmd.Flags().StringVar(&formatter, "formatter", "", "goimports, gofmt or none (default from config)")

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "generate the lookup table source file",
		Args:  cobra.NoArgs,
		RunE:  generate,
	}
	generateCmd.Flags().StringVar(&output, "output", "", "artifact path (default from config)")
	generateCmd.Flags().StringVar(&formatter, "formatter", "", "goimports, gofmt or none (default from config)")

	tableCmd := &cobra.Command{
		Use:   "table",
		Short: "print the table entries",
		Args:  cobra.NoArgs,
		RunE:  printTable,
	}

	accuracyCmd := &cobra.Command{
		Use:   "accuracy",
		Short: "compare the table evaluator with math.Tan",
		Args:  cobra.NoArgs,
		RunE:  accuracy,
	}
	accuracyCmd.Flags().Float64Var(&fromDeg, "from", 0, "first angle in degrees")
	accuracyCmd.Flags().Float64Var(&toDeg, "to", 89, "last angle in degrees")
	accuracyCmd.Flags().Float64Var(&stepDeg, "step", 1, "angle step in degrees")
	accuracyCmd.Flags().Float64Var(&maxPercent, "max-dev", 5, "highlight deviations above this percentage")
	accuracyCmd.Flags().Float64Var(&ignoreDeg, "ignore-above", 84, "do not flag angles above this (pole region)")
	accuracyCmd.Flags().BoolVar(&plot, "plot", false, "plot the deviation curve")
	accuracyCmd.Flags().BoolVar(&asCSV, "csv", false, "write CSV to stdout")

	compareCmd := &cobra.Command{
		Use:   "compare [preset...]",
		Short: "compare accuracy of table presets",
		RunE:  compare,
	}
	compareCmd.Flags().Float64Var(&compareTo, "to", 84, "last angle in degrees")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tENTRIES\tBITS\tFRAC")
			for _, name := range config.ListPresets() {
				p := config.Presets[name]
				fmt.Fprintf(w, "%s\t%d\t%d\t%d\n", name, p.Entries, p.TotalBits, p.FracBits)
			}
			return w.Flush()
		},
	}

	stepCmd := &cobra.Command{
		Use:   "step",
		Short: "step response of the dynamic smoother (float vs fixed)",
		Args:  cobra.NoArgs,
		RunE:  stepResponse,
	}
	stepCmd.Flags().Float64Var(&basefreq, "basefreq", 2, "base cutoff frequency (Hz)")
	stepCmd.Flags().Float64Var(&samplerate, "samplerate", 1000, "sample rate (Hz)")
	stepCmd.Flags().Float64Var(&sensitivity, "sensitivity", 0.5, "dynamic sensitivity")
	stepCmd.Flags().Float64Var(&stepLevel, "level", 1000, "input level before the step")
	stepCmd.Flags().Float64Var(&stepRatio, "ratio", 0.9, "input ratio after the step")
	stepCmd.Flags().IntVar(&stepSamples, "samples", 10, "samples on each side of the step")
	stepCmd.Flags().BoolVar(&plot, "plot", false, "plot the responses")

	rootCmd.AddCommand(generateCmd, tableCmd, accuracyCmd, compareCmd, presetsCmd, stepCmd)
	return rootCmd
}

// loadConfig resolves defaults, then the preset, then the config file, then
// flags.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p, err := config.GetPreset(preset)
		if err != nil {
			return cfg, err
		}
		cfg = p
	}

	if configFile != "" {
		fileCfg, err := config.Load(configFile)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		if preset != "" {
			// The preset decides the table; the file only contributes output settings.
			fileCfg.Entries, fileCfg.TotalBits, fileCfg.FracBits = cfg.Entries, cfg.TotalBits, cfg.FracBits
		}
		cfg = fileCfg
	}

	if f := cmd.Flags().Lookup("output"); f != nil && f.Changed {
		cfg.Output = output
	}
	if f := cmd.Flags().Lookup("formatter"); f != nil && f.Changed {
		cfg.Formatter = formatter
	}

	return cfg, cfg.Validate()
}

func loadTable(cmd *cobra.Command) (*lut.Table, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	return lut.Generate(cfg)
}

func generate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	tab, err := lut.Generate(cfg)
	if err != nil {
		return err
	}

	f, err := emit.NewFormatter(cfg.Formatter)
	if err != nil {
		return err
	}

	path, err := filepath.Abs(cfg.Output)
	if err != nil {
		return err
	}

	e := emit.New(f, log.New(os.Stderr, "tanlut: ", 0))
	if err := e.Emit(emit.NewArtifact(cfg, tab), path); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "created file %s\n", path)
	return nil
}

func printTable(cmd *cobra.Command, args []string) error {
	tab, err := loadTable(cmd)
	if err != nil {
		return err
	}

	m := tab.Meta
	fmt.Println(viz.Title.Render(fmt.Sprintf("tan lut: %d entries, int%d, %d fractional bits", m.Entries, m.TotalBits, m.FracBits)))
	fmt.Println(viz.Entries(tab))
	if n := tab.Saturated(); n > 0 {
		fmt.Printf("%d entries saturated at %d\n", n, m.Format().Max())
	}
	return nil
}

func accuracy(cmd *cobra.Command, args []string) error {
	tab, err := loadTable(cmd)
	if err != nil {
		return err
	}

	f, err := tan.Build(tab)
	if err != nil {
		return err
	}

	devs := analysis.Sweep(f, fromDeg, toDeg, stepDeg)
	if len(devs) == 0 {
		return fmt.Errorf("empty sweep: from %.2f to %.2f step %.2f", fromDeg, toDeg, stepDeg)
	}

	if asCSV {
		return writeCSV(devs)
	}

	fmt.Println(viz.Deviations(devs, maxPercent, ignoreDeg))

	var checked []analysis.Deviation
	for _, d := range devs {
		if d.Degrees <= ignoreDeg {
			checked = append(checked, d)
		}
	}
	fmt.Println(viz.Separator(60))
	fmt.Println(viz.SummaryLine(analysis.Summarize(checked)))

	if plot {
		fmt.Println()
		fmt.Println(viz.DeviationPlot(checked))
	} else {
		abs := make([]float64, len(checked))
		for i, d := range checked {
			abs[i] = math.Abs(d.Percent)
		}
		fmt.Println(viz.MetricLabel.Render("|dev| ") + viz.SparklineChart(abs, 60))
	}
	return nil
}

func writeCSV(devs []analysis.Deviation) error {
	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write([]string{"degrees", "radians", "reference", "approx", "abs", "percent"}); err != nil {
		return err
	}
	for _, d := range devs {
		row := []string{
			strconv.FormatFloat(d.Degrees, 'f', 3, 64),
			strconv.FormatFloat(d.Radians, 'f', 6, 64),
			strconv.FormatFloat(d.Reference, 'f', 6, 64),
			strconv.FormatFloat(d.Approx, 'f', 6, 64),
			strconv.FormatFloat(d.Abs, 'f', 6, 64),
			strconv.FormatFloat(d.Percent, 'f', 4, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func compare(cmd *cobra.Command, args []string) error {
	names := args
	if len(names) == 0 {
		names = config.ListPresets()
	}

	cfgs := make(map[string]config.Config, len(names))
	for _, name := range names {
		cfg, err := config.GetPreset(name)
		if err != nil {
			return err
		}
		cfgs[name] = cfg
	}

	results, err := analysis.Compare(context.Background(), cfgs, compareTo)
	if err != nil {
		return err
	}

	fmt.Printf("accuracy from 0° to %.0f°\n", compareTo)
	fmt.Println(viz.Comparison(results))
	return nil
}

func stepResponse(cmd *cobra.Command, args []string) error {
	if basefreq <= 0 || basefreq >= samplerate/2 {
		return fmt.Errorf("basefreq must be in (0, samplerate/2), got %.3f", basefreq)
	}

	rows := smoother.StepResponse(tan.Default(), basefreq, samplerate, sensitivity, stepLevel, stepRatio, stepSamples)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "N\tINPUT\tFLOAT\tFIXED")
	for i, r := range rows {
		fmt.Fprintf(w, "%d\t%.1f\t%.3f\t%d\n", i, r.Input, r.Float, r.Fixed)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if plot {
		fmt.Println()
		fmt.Println(viz.StepPlot(rows))
	}
	return nil
}
