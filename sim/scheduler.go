package sim

import "fmt"

// ExpiryDecision is a scheduler's verdict on a quantum expiry.
type ExpiryDecision int

const (
	// ExpiryRequeue: the process was taken back into the Ready Set and the
	// engine should dispatch whoever is next.
	ExpiryRequeue ExpiryDecision = iota
	// ExpiryContinue: the process keeps the CPU for another slice.
	ExpiryContinue
)

// Scheduler decides which ready process gets the CPU next and for how long.
// It exclusively owns the Ready Set: the engine hands processes over via
// OnArrival and takes them back via OnCPUAvailable. Schedulers never mutate
// simulated time; they only read the clock value passed in.
type Scheduler interface {
	Name() string

	// OnArrival admits a process into the Ready Set. Called when a process
	// arrives, finishes I/O, or is requeued after preemption or quantum
	// expiry. p.ReadySince has already been set by the engine.
	OnArrival(p *Process, now int64)

	// OnCPUAvailable removes and returns the next process to dispatch, or
	// nil if the Ready Set is empty.
	OnCPUAvailable(now int64) *Process

	// OnQuantumExpiry decides what happens to a process whose time slice
	// expired without finishing its burst: either the scheduler takes it
	// back into the Ready Set (MLFQ demotes here; RR moves it to the back)
	// or it keeps the CPU for another slice.
	OnQuantumExpiry(p *Process, now int64) ExpiryDecision

	// OnBurstComplete observes a process leaving the CPU because its burst
	// finished. Most variants need no bookkeeping here.
	OnBurstComplete(p *Process, now int64)

	// TimeSlice returns the maximum CPU time granted to p at dispatch time,
	// or 0 for run-to-burst-completion.
	TimeSlice(p *Process, now int64) int64

	// Len returns the current Ready Set size.
	Len() int
}

// Preemptor is implemented by preemptive schedulers (SRTF, preemptive
// priority). The engine consults it whenever a process becomes ready while
// the CPU is busy, and acts through same-tick PreemptCheck events.
type Preemptor interface {
	// ShouldPreempt reports whether some ready process strictly beats the
	// running one at the given instant.
	ShouldPreempt(running *Process, now int64) bool

	// NextPreemptCheck returns the earliest future tick at which a ready
	// process could overtake the running one without any new event (aging
	// crossover), or -1 if none.
	NextPreemptCheck(running *Process, now int64) int64
}

// NewScheduler creates a Scheduler from a validated Config.
// Empty algorithm name defaults to FCFS (CLI flag default compatibility).
func NewScheduler(cfg Config) (Scheduler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	switch cfg.Algorithm {
	case "", AlgFCFS:
		return NewFCFS(), nil
	case AlgSJF:
		return NewSJF(), nil
	case AlgSRTF:
		return NewSRTF(), nil
	case AlgRoundRobin:
		return NewRoundRobin(cfg.RR.Quantum), nil
	case AlgPriority:
		return NewPriorityScheduler(cfg.Aging.Rate, true), nil
	case AlgPriorityNP:
		return NewPriorityScheduler(cfg.Aging.Rate, false), nil
	case AlgMLFQ:
		return NewMLFQ(cfg.MLFQ), nil
	default:
		// Validate accepted the name, so this is unreachable.
		panic(fmt.Sprintf("unhandled algorithm %q", cfg.Algorithm))
	}
}
