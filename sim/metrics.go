// Aggregates per-process and system-wide performance metrics from the
// final process descriptor set. Everything here is a pure computation
// over timestamps the engine recorded; nothing requires re-running.

package sim

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// ProcessMetrics holds the derived per-process figures.
type ProcessMetrics struct {
	ID         int
	Turnaround int64
	Waiting    int64
	Response   int64
	CPUTime    int64
}

// Metrics aggregates statistics about a completed run for final reporting
// and algorithm comparison.
type Metrics struct {
	Algorithm string
	Processes []ProcessMetrics

	AvgTurnaround float64
	StdTurnaround float64
	AvgWaiting    float64
	StdWaiting    float64
	AvgResponse   float64
	StdResponse   float64

	MinTurnaround int64
	MaxTurnaround int64
	MinWaiting    int64
	MaxWaiting    int64

	// CPUUtilization is the percentage of total simulated time the CPU
	// spent executing bursts.
	CPUUtilization float64
	// Throughput is completed processes per 1000 ticks.
	Throughput float64
	// Fairness is Jain's index over min-normalized turnaround times;
	// 1.0 means perfectly even treatment.
	Fairness float64

	ContextSwitches int64
	TotalTime       int64
}

// ComputeMetrics derives all metrics from a finished simulator. Every
// process must be terminated; the engine guarantees that when Run returns.
func ComputeMetrics(s *Simulator) *Metrics {
	m := &Metrics{
		Algorithm:       s.Scheduler.Name(),
		TotalTime:       s.TotalTime(),
		ContextSwitches: s.ContextSwitches,
	}

	n := len(s.Processes)
	turnaround := make([]float64, 0, n)
	waiting := make([]float64, 0, n)
	response := make([]float64, 0, n)
	var totalCPU int64

	for _, p := range s.Processes {
		if p.State != StateTerminated {
			internalError("metrics over unterminated P%d", p.ID)
		}
		pm := ProcessMetrics{
			ID:         p.ID,
			Turnaround: p.Turnaround(),
			Waiting:    p.Waiting(),
			Response:   p.Response(),
			CPUTime:    p.CPUTime,
		}
		m.Processes = append(m.Processes, pm)
		turnaround = append(turnaround, float64(pm.Turnaround))
		waiting = append(waiting, float64(pm.Waiting))
		response = append(response, float64(pm.Response))
		totalCPU += p.CPUTime
	}

	if n == 0 {
		return m
	}

	m.AvgTurnaround = stat.Mean(turnaround, nil)
	m.AvgWaiting = stat.Mean(waiting, nil)
	m.AvgResponse = stat.Mean(response, nil)
	if n > 1 {
		m.StdTurnaround = stat.StdDev(turnaround, nil)
		m.StdWaiting = stat.StdDev(waiting, nil)
		m.StdResponse = stat.StdDev(response, nil)
	}

	m.MinTurnaround, m.MaxTurnaround = minMax64(turnaround)
	m.MinWaiting, m.MaxWaiting = minMax64(waiting)

	if m.TotalTime > 0 {
		m.CPUUtilization = float64(totalCPU) / float64(m.TotalTime) * 100
		m.Throughput = float64(n) / float64(m.TotalTime) * 1000
	}
	m.Fairness = jainFairness(turnaround)
	return m
}

// jainFairness computes Jain's index F = (Σx)² / (n·Σx²) over turnaround
// times normalized by their minimum, so the index measures relative
// treatment rather than absolute durations.
func jainFairness(turnaround []float64) float64 {
	if len(turnaround) == 0 {
		return 0
	}
	minT := turnaround[0]
	for _, t := range turnaround {
		if t < minT {
			minT = t
		}
	}
	if minT == 0 {
		minT = 1
	}
	var sum, sumSq float64
	for _, t := range turnaround {
		x := t / minT
		sum += x
		sumSq += x * x
	}
	denom := float64(len(turnaround)) * sumSq
	if denom == 0 {
		return 0
	}
	return sum * sum / denom
}

func minMax64(xs []float64) (int64, int64) {
	if len(xs) == 0 {
		return 0, 0
	}
	lo, hi := xs[0], xs[0]
	for _, x := range xs {
		if x < lo {
			lo = x
		}
		if x > hi {
			hi = x
		}
	}
	return int64(lo), int64(hi)
}

// Print displays aggregated metrics at the end of a run.
func (m *Metrics) Print() {
	fmt.Println("=== Simulation Metrics ===")
	fmt.Printf("Algorithm            : %s\n", m.Algorithm)
	fmt.Printf("Completed Processes  : %d\n", len(m.Processes))
	fmt.Printf("Total Time           : %d ticks\n", m.TotalTime)
	if len(m.Processes) > 0 {
		fmt.Printf("Average Turnaround   : %.2f ticks (std %.2f)\n", m.AvgTurnaround, m.StdTurnaround)
		fmt.Printf("Average Waiting      : %.2f ticks (std %.2f)\n", m.AvgWaiting, m.StdWaiting)
		fmt.Printf("Average Response     : %.2f ticks (std %.2f)\n", m.AvgResponse, m.StdResponse)
		fmt.Printf("CPU Utilization      : %.2f%%\n", m.CPUUtilization)
		fmt.Printf("Throughput           : %.2f proc/1000 ticks\n", m.Throughput)
		fmt.Printf("Fairness Index       : %.3f\n", m.Fairness)
		fmt.Printf("Context Switches     : %d\n", m.ContextSwitches)
	}
}
