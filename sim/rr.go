package sim

// RoundRobin grants each dispatch at most one quantum of CPU. A process
// whose slice expires with work left goes to the back of the FIFO ready
// queue, except when its remaining burst is strictly shorter than the
// quantum: it then runs to burst completion instead of paying a context
// switch for a sub-quantum tail.
type RoundRobin struct {
	quantum int64
	ready   ReadyQueue
}

// NewRoundRobin creates a Round Robin scheduler with a fixed quantum.
// The quantum must already be validated (> 0) by Config.Validate.
func NewRoundRobin(quantum int64) *RoundRobin {
	return &RoundRobin{quantum: quantum}
}

func (rr *RoundRobin) Name() string { return AlgRoundRobin }

func (rr *RoundRobin) OnArrival(p *Process, _ int64) {
	rr.ready.Enqueue(p)
}

func (rr *RoundRobin) OnCPUAvailable(_ int64) *Process {
	return rr.ready.Dequeue()
}

func (rr *RoundRobin) OnQuantumExpiry(p *Process, _ int64) ExpiryDecision {
	if p.Remaining < rr.quantum {
		return ExpiryContinue
	}
	rr.ready.Enqueue(p)
	return ExpiryRequeue
}

func (rr *RoundRobin) OnBurstComplete(_ *Process, _ int64) {}

func (rr *RoundRobin) TimeSlice(_ *Process, _ int64) int64 { return rr.quantum }

func (rr *RoundRobin) Len() int { return rr.ready.Len() }
