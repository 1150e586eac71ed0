// Package trace provides the append-only event log a simulation run
// produces, plus pure derivations over it (CSV export, Gantt segments).
// This package has no dependency on sim/ — it stores plain data types.
package trace

// Record kinds emitted by the engine. Dispatch and Preempt describe CPU
// hand-offs; the rest mirror the engine's event kinds.
const (
	KindArrival       = "arrival"
	KindDispatch      = "dispatch"
	KindPreempt       = "preempt"
	KindBurstComplete = "burst_complete"
	KindQuantumExpiry = "quantum_expiry"
	KindIOStart       = "io_start"
	KindIOComplete    = "io_complete"
	KindTerminated    = "terminated"
)

// Record is one event-log entry: what happened, to whom, and when.
type Record struct {
	Timestamp int64
	Kind      string
	ProcessID int
}
