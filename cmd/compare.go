package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/cpusched-sim/cpusched-sim/sim"
)

// compareCmd runs every algorithm over the same workload and prints a
// side-by-side summary. Each algorithm gets an entirely independent
// engine, scheduler and process set built from the same flags/seed.
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Run all scheduling algorithms over one workload and compare",
	Run: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		results := make([]*sim.Metrics, 0, len(sim.Algorithms()))
		for _, alg := range sim.Algorithms() {
			logrus.Infof("Running %s...", alg)
			metrics, _, err := simulate(alg)
			if err != nil {
				logrus.Fatalf("Simulation %s failed: %v", alg, err)
			}
			results = append(results, metrics)
		}

		fmt.Println("=== Algorithm Comparison ===")
		fmt.Printf("%-12s %12s %12s %12s %10s %10s %10s\n",
			"algorithm", "turnaround", "waiting", "response", "util%", "tput", "fairness")
		for _, m := range results {
			fmt.Printf("%-12s %12.2f %12.2f %12.2f %10.2f %10.2f %10.3f\n",
				m.Algorithm, m.AvgTurnaround, m.AvgWaiting, m.AvgResponse,
				m.CPUUtilization, m.Throughput, m.Fairness)
		}
	},
}
