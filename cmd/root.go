package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/disk-sim/sim"
	"github.com/inference-sim/disk-sim/sim/trace"
	"github.com/inference-sim/disk-sim/sim/workload"
)

var (
	logLevel     string // Log verbosity level
	inputPath    string // Request trace to simulate
	outputPath   string // Completion lines are written here
	policy       string // Dispatch policy name
	limit        int    // Max input records admitted (0 = all)
	geometryPath string // Optional geometry override YAML
	strict       bool   // Treat parse warnings as fatal
	printSummary bool   // Print run summary to stdout
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "disk-sim",
	Short: "Disk request scheduling simulator (FCFS and SSTF)",
}

// runOptions carries everything a single simulation run needs.
type runOptions struct {
	InputPath    string
	OutputPath   string
	Policy       string
	Limit        int
	GeometryPath string
	Strict       bool
	Summary      bool
}

// runCmd executes the simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Simulate a request trace under one dispatch policy",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging(logLevel)

		opts := runOptions{
			InputPath:    inputPath,
			OutputPath:   outputPath,
			Policy:       policy,
			Limit:        limit,
			GeometryPath: geometryPath,
			Strict:       strict,
			Summary:      printSummary,
		}
		if err := runSimulation(opts, os.Stdout); err != nil {
			logrus.Fatalf("%v", err)
		}
		logrus.Info("Simulation complete.")
	},
}

// setupLogging sets the global logrus level, exiting on an unknown level name.
func setupLogging(level string) {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", level)
	}
	logrus.SetLevel(parsed)
}

// loadRun resolves geometry and parses the input trace, logging every parse warning.
func loadRun(inputPath, geometryPath string, strict bool) (sim.Geometry, []sim.Request, error) {
	geometry := sim.DefaultGeometry()
	if geometryPath != "" {
		g, err := loadGeometry(geometryPath)
		if err != nil {
			return geometry, nil, err
		}
		geometry = g
	}

	requests, warnings, err := workload.LoadRequests(inputPath, geometry)
	if err != nil {
		return geometry, nil, fmt.Errorf("error in input %s: %w", inputPath, err)
	}
	for _, w := range warnings {
		logrus.Warnf("input %s: %s", inputPath, w)
	}
	if strict && len(warnings) > 0 {
		return geometry, nil, fmt.Errorf("input %s has %d parse warnings (strict mode)", inputPath, len(warnings))
	}
	return geometry, requests, nil
}

// runSimulation simulates one trace and writes its completion lines to opts.OutputPath.
// The output file is created before the input is read.
func runSimulation(opts runOptions, stdout io.Writer) error {
	if !sim.IsValidPolicy(opts.Policy) {
		return fmt.Errorf("unknown policy %q (want fcfs or sstf)", opts.Policy)
	}
	if opts.InputPath == "" || opts.OutputPath == "" {
		return fmt.Errorf("both --input and --output are required")
	}

	out, err := trace.Create(opts.OutputPath)
	if err != nil {
		return fmt.Errorf("error in output %s: %w", opts.OutputPath, err)
	}
	defer func() { _ = out.Close() }()

	geometry, requests, err := loadRun(opts.InputPath, opts.GeometryPath, opts.Strict)
	if err != nil {
		return err
	}

	s, err := sim.NewSimulator(sim.Config{Policy: opts.Policy, Limit: opts.Limit, Geometry: geometry})
	if err != nil {
		return err
	}

	var sink sim.Sink = out
	var rec *trace.Recorder
	if opts.Summary {
		rec = trace.NewRecorder()
		sink = trace.MultiSink{out, rec}
	}
	if err := s.Run(requests, sink); err != nil {
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	if rec != nil {
		return writeSummaryTable(stdout, []string{opts.Policy}, []trace.Summary{trace.Summarize(rec.Completions)})
	}
	return nil
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")
	rootCmd.PersistentFlags().StringVar(&geometryPath, "geometry", "", "Path to a geometry override YAML (default: built-in constants)")
	rootCmd.PersistentFlags().BoolVar(&strict, "strict", false, "Fail on any input line that does not parse cleanly")

	runCmd.Flags().StringVarP(&inputPath, "input", "i", "", "Request trace: one 'arrival lbn size' record per line")
	runCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file for completion lines")
	runCmd.Flags().StringVarP(&policy, "policy", "p", sim.PolicyFCFS, "Dispatch policy (fcfs, sstf)")
	runCmd.Flags().IntVarP(&limit, "limit", "n", 0, "Max number of input records admitted (0 = all)")
	runCmd.Flags().BoolVar(&printSummary, "summary", false, "Print a run summary to stdout")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
