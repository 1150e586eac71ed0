package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/cpusched-sim/cpusched-sim/sim"
	"github.com/cpusched-sim/cpusched-sim/sim/workload"
)

var (
	// CLI flags for the simulation run
	logLevel          string  // Log verbosity level
	configFile        string  // YAML run configuration (flags override algorithm only)
	algorithm         string  // Scheduling algorithm name
	quantum           int64   // Round Robin time quantum (ticks)
	agingRate         float64 // Priority aging credit per tick of waiting
	mlfqLevels        int     // Number of MLFQ levels
	mlfqQuanta        []int64 // Per-level MLFQ quanta, top level first
	mlfqBoostInterval int64   // MLFQ starvation-guard boost period (ticks)
	contextSwitchCost int64   // Fixed dispatch overhead on a CPU hand-off

	// CLI flags for workload selection
	workloadPreset string // synthetic preset: cpu-intensive, io-intensive, mixed
	numProcesses   int    // Number of synthetic processes
	seed           int64  // Seed for synthetic generation
	traceFile      string // pid,arrival,cpu,io,priority trace file
	workloadSpec   string // YAML workload spec with explicit burst lists

	eventLogPath string // CSV event-log output path ("" = no export)
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "cpusched",
	Short: "Discrete-event CPU scheduling simulator",
}

// buildConfig assembles the run configuration. A --config file supplies
// every tuning parameter; otherwise the individual flags do. A non-empty
// algorithm argument wins in both cases so compare can sweep algorithms
// over one shared parameter set.
func buildConfig(alg string) (sim.Config, error) {
	if configFile != "" {
		cfg, err := sim.LoadConfig(configFile)
		if err != nil {
			return cfg, err
		}
		if alg != "" {
			cfg.Algorithm = alg
		}
		return cfg, nil
	}
	cfg := sim.DefaultConfig()
	cfg.Algorithm = alg
	cfg.RR.Quantum = quantum
	cfg.Aging.Rate = agingRate
	cfg.MLFQ.Levels = mlfqLevels
	cfg.MLFQ.Quanta = mlfqQuanta
	cfg.MLFQ.BoostInterval = mlfqBoostInterval
	cfg.ContextSwitchCost = contextSwitchCost
	return cfg, nil
}

// buildWorkload materializes a fresh process set from the workload flags.
// Called once per simulated algorithm so that parallel comparisons never
// share mutable descriptors.
func buildWorkload() ([]*sim.Process, error) {
	switch {
	case traceFile != "":
		return workload.LoadTraceFile(traceFile)
	case workloadSpec != "":
		spec, err := workload.LoadSpec(workloadSpec)
		if err != nil {
			return nil, err
		}
		return spec.Build()
	default:
		gen := workload.NewGenerator(seed)
		procs := gen.Synthetic(numProcesses, workload.Preset(workloadPreset))
		if err := workload.Validate(procs); err != nil {
			return nil, err
		}
		return procs, nil
	}
}

// simulate runs one algorithm over a freshly built workload and returns
// its metrics.
func simulate(alg string) (*sim.Metrics, *sim.Simulator, error) {
	procs, err := buildWorkload()
	if err != nil {
		return nil, nil, err
	}
	cfg, err := buildConfig(alg)
	if err != nil {
		return nil, nil, err
	}
	s, err := sim.NewSimulator(cfg, procs)
	if err != nil {
		return nil, nil, err
	}
	s.Run()
	return sim.ComputeMetrics(s), s, nil
}

// runCmd executes a single simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the scheduling simulation",
	Run: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		if !workload.IsValidPreset(workloadPreset) {
			logrus.Fatalf("Unknown workload preset %q", workloadPreset)
		}

		metrics, s, err := simulate(algorithm)
		if err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}
		logrus.Infof("Simulation finished: algorithm=%s processes=%d seed=%d",
			metrics.Algorithm, len(metrics.Processes), seed)
		metrics.Print()

		if eventLogPath != "" {
			f, err := os.Create(eventLogPath)
			if err != nil {
				logrus.Fatalf("Cannot create event log file: %v", err)
			}
			defer f.Close()
			if err := s.Log.WriteCSV(f); err != nil {
				logrus.Fatalf("Cannot write event log: %v", err)
			}
			logrus.Infof("Event log written to %s (%d records)", eventLogPath, s.Log.Len())
		}

		logrus.Info("Simulation complete.")
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level: debug, info, warn, error")

	for _, cmd := range []*cobra.Command{runCmd, compareCmd} {
		cmd.Flags().StringVar(&configFile, "config", "", "YAML run configuration file (overrides tuning flags)")
		cmd.Flags().Int64Var(&quantum, "quantum", 20, "Round Robin time quantum in ticks")
		cmd.Flags().Float64Var(&agingRate, "aging-rate", 0.1, "priority aging credit per tick of waiting (0 disables)")
		cmd.Flags().IntVar(&mlfqLevels, "mlfq-levels", 3, "number of MLFQ levels")
		cmd.Flags().Int64SliceVar(&mlfqQuanta, "mlfq-quanta", []int64{4, 8, 16}, "per-level MLFQ quanta, top level first")
		cmd.Flags().Int64Var(&mlfqBoostInterval, "mlfq-boost-interval", 500, "MLFQ boost period in ticks")
		cmd.Flags().Int64Var(&contextSwitchCost, "context-switch-cost", 0, "fixed dispatch overhead in ticks")

		cmd.Flags().StringVar(&workloadPreset, "workload", string(workload.PresetMixed), "synthetic workload preset")
		cmd.Flags().IntVar(&numProcesses, "processes", 100, "number of synthetic processes")
		cmd.Flags().Int64Var(&seed, "seed", 42, "synthetic workload seed")
		cmd.Flags().StringVar(&traceFile, "trace-file", "", "workload trace file (pid,arrival,cpu,io,priority)")
		cmd.Flags().StringVar(&workloadSpec, "workload-spec", "", "YAML workload spec with explicit burst lists")
	}
	runCmd.Flags().StringVar(&algorithm, "algorithm", "", "scheduling algorithm (default fcfs, or the config file's)")
	runCmd.Flags().StringVar(&eventLogPath, "event-log", "", "write the event log as CSV to this path")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(compareCmd)
}
