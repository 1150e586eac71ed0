package sim

// SJF is the non-preemptive Shortest Job First scheduler. The ready set is
// ordered by total CPU burst length ascending, ties broken by arrival time
// then process id. Dispatch decisions are made only when the CPU is free.
type SJF struct {
	ready *readyTree
}

// NewSJF creates a non-preemptive SJF scheduler.
func NewSJF() *SJF {
	return &SJF{ready: newReadyTree()}
}

func (s *SJF) Name() string { return AlgSJF }

func (s *SJF) OnArrival(p *Process, _ int64) {
	s.ready.Put(p, float64(p.TotalCPUBurst()))
}

func (s *SJF) OnCPUAvailable(_ int64) *Process {
	return s.ready.PopMin()
}

func (s *SJF) OnQuantumExpiry(p *Process, _ int64) ExpiryDecision {
	internalError("quantum expiry for P%d under sjf", p.ID)
	return ExpiryRequeue
}

func (s *SJF) OnBurstComplete(_ *Process, _ int64) {}

func (s *SJF) TimeSlice(_ *Process, _ int64) int64 { return 0 }

func (s *SJF) Len() int { return s.ready.Len() }

// SRTF is preemptive SJF: the ready set is ordered by remaining CPU time,
// and a process becoming ready with strictly less remaining CPU than the
// running process preempts it at that instant. Preemption is arrival
// driven; a waiting process's remaining time never changes, so no timed
// preemption checks are needed.
type SRTF struct {
	ready *readyTree
}

// NewSRTF creates a preemptive shortest-remaining-time-first scheduler.
func NewSRTF() *SRTF {
	return &SRTF{ready: newReadyTree()}
}

func (s *SRTF) Name() string { return AlgSRTF }

func (s *SRTF) OnArrival(p *Process, _ int64) {
	s.ready.Put(p, float64(p.RemainingCPU()))
}

func (s *SRTF) OnCPUAvailable(_ int64) *Process {
	return s.ready.PopMin()
}

func (s *SRTF) OnQuantumExpiry(p *Process, _ int64) ExpiryDecision {
	internalError("quantum expiry for P%d under srtf", p.ID)
	return ExpiryRequeue
}

func (s *SRTF) OnBurstComplete(_ *Process, _ int64) {}

func (s *SRTF) TimeSlice(_ *Process, _ int64) int64 { return 0 }

func (s *SRTF) Len() int { return s.ready.Len() }

// ShouldPreempt reports whether the best ready process has strictly less
// remaining CPU than the running one at this instant. The running process
// has consumed now-dispatchTime ticks of its burst since dispatch.
func (s *SRTF) ShouldPreempt(running *Process, now int64) bool {
	best, key := s.ready.PeekMin()
	if best == nil {
		return false
	}
	runRemaining := running.RemainingCPU() - (now - running.dispatchTime)
	return int64(key) < runRemaining
}

// NextPreemptCheck always returns -1: relative remaining times only change
// at arrivals and I/O completions, which trigger their own checks.
func (s *SRTF) NextPreemptCheck(_ *Process, _ int64) int64 { return -1 }
