// Defines the Process descriptor that models a single simulated process.
// Immutable workload inputs (arrival, bursts, priority) plus the runtime
// state the engine and schedulers mutate during a run.

package sim

import "fmt"

// ProcessState represents the lifecycle state of a process.
type ProcessState string

const (
	StateNotArrived ProcessState = "not_arrived"
	StateReady      ProcessState = "ready"
	StateRunning    ProcessState = "running"
	StateBlocked    ProcessState = "blocked"
	StateTerminated ProcessState = "terminated"
)

// BurstKind distinguishes CPU bursts from I/O bursts.
type BurstKind string

const (
	BurstCPU BurstKind = "cpu"
	BurstIO  BurstKind = "io"
)

// Burst is one contiguous span of CPU or I/O time a process requires
// before moving to its next burst or terminating.
type Burst struct {
	Kind     BurstKind `yaml:"kind"`
	Duration int64     `yaml:"duration"`
}

// Process models a single process's lifecycle in the simulation.
// ID, ArrivalTime, Bursts and BasePriority are fixed at creation;
// everything else is runtime state owned by the engine and the
// active scheduler.
type Process struct {
	ID          int     // unique identifier, never reused
	ArrivalTime int64   // tick at which the process becomes eligible
	Bursts      []Burst // alternating CPU/I-O durations; first is always CPU

	BasePriority int // nominal priority; lower value = higher priority

	State      ProcessState
	BurstIndex int   // index into Bursts of the current burst
	Remaining  int64 // remaining time in the current burst

	// Timestamps for downstream metrics. FirstRunTime is set exactly once,
	// on first dispatch; Started distinguishes "never ran" from t=0.
	FirstRunTime   int64
	Started        bool
	CompletionTime int64

	// CPUTime is total CPU consumed so far; schedulers and metrics read it.
	CPUTime int64

	// ReadySince is the tick the process last entered the ready state.
	// Priority aging and MLFQ boost read it.
	ReadySince int64

	// QueueLevel is the process's current MLFQ level; unused elsewhere.
	QueueLevel int

	// epoch counts dispatch episodes. Every timed event the engine schedules
	// for this process carries the epoch current at scheduling time; a
	// preemption or requeue bumps it, invalidating in-flight events.
	epoch uint64

	// dispatchTime records when the current dispatch episode began.
	// Preemption decisions derive consumed CPU from it.
	dispatchTime int64
}

// NewProcess builds a descriptor in the not-arrived state with the first
// burst loaded. Callers must validate bursts first (see workload package).
func NewProcess(id int, arrival int64, bursts []Burst, priority int) *Process {
	p := &Process{
		ID:           id,
		ArrivalTime:  arrival,
		Bursts:       bursts,
		BasePriority: priority,
		State:        StateNotArrived,
	}
	if len(bursts) > 0 {
		p.Remaining = bursts[0].Duration
	}
	return p
}

// CurrentBurst returns the burst the process is currently working through.
func (p *Process) CurrentBurst() Burst {
	return p.Bursts[p.BurstIndex]
}

// TotalCPUBurst returns the sum of all CPU burst durations, used by
// SJF ordering and by waiting-time metrics.
func (p *Process) TotalCPUBurst() int64 {
	var total int64
	for _, b := range p.Bursts {
		if b.Kind == BurstCPU {
			total += b.Duration
		}
	}
	return total
}

// RemainingCPU returns the CPU time still required across the current and
// all future bursts. SRTF orders the ready set by this value.
func (p *Process) RemainingCPU() int64 {
	var total int64
	for i := p.BurstIndex; i < len(p.Bursts); i++ {
		if p.Bursts[i].Kind != BurstCPU {
			continue
		}
		if i == p.BurstIndex {
			total += p.Remaining
		} else {
			total += p.Bursts[i].Duration
		}
	}
	return total
}

// advanceBurst moves to the next burst, reloading Remaining.
// Returns false if the finished burst was the last one.
func (p *Process) advanceBurst() bool {
	p.BurstIndex++
	if p.BurstIndex >= len(p.Bursts) {
		return false
	}
	p.Remaining = p.Bursts[p.BurstIndex].Duration
	return true
}

// Turnaround returns completion minus arrival. Valid only once terminated.
func (p *Process) Turnaround() int64 {
	return p.CompletionTime - p.ArrivalTime
}

// Waiting returns turnaround minus total CPU burst time.
func (p *Process) Waiting() int64 {
	return p.Turnaround() - p.TotalCPUBurst()
}

// Response returns first dispatch minus arrival. Valid once Started.
func (p *Process) Response() int64 {
	return p.FirstRunTime - p.ArrivalTime
}

func (p *Process) String() string {
	return fmt.Sprintf("Process: (ID: %d, State: %s, Burst: %d/%d, Remaining: %d, ArrivalTime: %d)",
		p.ID, p.State, p.BurstIndex, len(p.Bursts), p.Remaining, p.ArrivalTime)
}
