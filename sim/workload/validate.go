// Load-time workload validation. A malformed descriptor rejects the whole
// workload before the run starts; there are no partial runs.

package workload

import (
	"github.com/cpusched-sim/cpusched-sim/sim"
)

// Validate checks every process descriptor: unique ids, a non-empty burst
// list starting with a CPU burst, and non-negative durations and arrival
// times. Returns a sim.WorkloadError naming the offending process.
func Validate(processes []*sim.Process) error {
	seen := make(map[int]bool, len(processes))
	for _, p := range processes {
		if seen[p.ID] {
			return &sim.WorkloadError{ProcessID: p.ID, Reason: "duplicate process id"}
		}
		seen[p.ID] = true
		if p.ArrivalTime < 0 {
			return &sim.WorkloadError{ProcessID: p.ID, Reason: "negative arrival time"}
		}
		if len(p.Bursts) == 0 {
			return &sim.WorkloadError{ProcessID: p.ID, Reason: "empty burst list"}
		}
		if p.Bursts[0].Kind != sim.BurstCPU {
			return &sim.WorkloadError{ProcessID: p.ID, Reason: "first burst must be a CPU burst"}
		}
		hasCPU := false
		for _, b := range p.Bursts {
			if b.Duration < 0 {
				return &sim.WorkloadError{ProcessID: p.ID, Reason: "negative burst duration"}
			}
			if b.Kind != sim.BurstCPU && b.Kind != sim.BurstIO {
				return &sim.WorkloadError{ProcessID: p.ID, Reason: "unknown burst kind " + string(b.Kind)}
			}
			if b.Kind == sim.BurstCPU {
				hasCPU = true
			}
		}
		if !hasCPU {
			return &sim.WorkloadError{ProcessID: p.ID, Reason: "no CPU burst"}
		}
	}
	return nil
}
