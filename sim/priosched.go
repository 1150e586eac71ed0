// Priority scheduling with aging, in preemptive and non-preemptive form.
//
// Effective priority at time t is base − rate·(t − readySince), lower wins.
// Every waiting process loses rate·t uniformly, so ordering is equivalent
// to ordering by the time-invariant key base + rate·readySince. The ready
// tree is keyed by that value and never needs rebalancing as time passes.

package sim

import "math"

// PriorityScheduler is the non-preemptive variant: the highest effective
// priority process is selected whenever the CPU becomes free, and a
// dispatched process always finishes its burst.
type PriorityScheduler struct {
	rate  float64 // aging credit per tick of waiting; 0 disables aging
	ready *readyTree
}

// NewPriorityScheduler creates a priority scheduler with the given aging
// rate. Preemptive mode additionally yields the CPU to any ready process
// whose effective priority strictly beats the running one.
func NewPriorityScheduler(rate float64, preemptive bool) Scheduler {
	ps := &PriorityScheduler{rate: rate, ready: newReadyTree()}
	if preemptive {
		return &PreemptivePriority{PriorityScheduler: ps}
	}
	return ps
}

// orderKey is the time-invariant tree key: base + rate·readySince.
func (ps *PriorityScheduler) orderKey(p *Process) float64 {
	return float64(p.BasePriority) + ps.rate*float64(p.ReadySince)
}

// effectiveAt converts a tree key back to the effective priority at t.
func (ps *PriorityScheduler) effectiveAt(key float64, t int64) float64 {
	return key - ps.rate*float64(t)
}

func (ps *PriorityScheduler) Name() string { return AlgPriorityNP }

func (ps *PriorityScheduler) OnArrival(p *Process, _ int64) {
	ps.ready.Put(p, ps.orderKey(p))
}

func (ps *PriorityScheduler) OnCPUAvailable(_ int64) *Process {
	return ps.ready.PopMin()
}

func (ps *PriorityScheduler) OnQuantumExpiry(p *Process, _ int64) ExpiryDecision {
	internalError("quantum expiry for P%d under priority scheduling", p.ID)
	return ExpiryRequeue
}

func (ps *PriorityScheduler) OnBurstComplete(_ *Process, _ int64) {}

func (ps *PriorityScheduler) TimeSlice(_ *Process, _ int64) int64 { return 0 }

func (ps *PriorityScheduler) Len() int { return ps.ready.Len() }

// PreemptivePriority adds arrival- and aging-triggered preemption.
// A running process keeps the effective priority it had at dispatch; the
// best waiter's effective priority keeps improving, so a crossover can
// happen mid-burst and is caught by a scheduled PreemptCheck.
type PreemptivePriority struct {
	*PriorityScheduler
}

func (pp *PreemptivePriority) Name() string { return AlgPriority }

// runningEffective is the running process's effective priority frozen at
// its dispatch instant.
func (pp *PreemptivePriority) runningEffective(running *Process) float64 {
	return pp.effectiveAt(pp.orderKey(running), running.dispatchTime)
}

func (pp *PreemptivePriority) ShouldPreempt(running *Process, now int64) bool {
	best, bestKey := pp.ready.PeekMin()
	if best == nil {
		return false
	}
	return pp.effectiveAt(bestKey, now) < pp.runningEffective(running)
}

// NextPreemptCheck returns the first tick at which the best waiter's aging
// credit pushes it strictly past the running process, or -1 if aging is
// disabled or no waiter can ever overtake.
func (pp *PreemptivePriority) NextPreemptCheck(running *Process, now int64) int64 {
	if pp.rate == 0 || pp.ready.Len() == 0 {
		return -1
	}
	_, bestKey := pp.ready.PeekMin()
	runEff := pp.runningEffective(running)
	// Crossover: bestKey − rate·t < runEff  ⇔  t > (bestKey − runEff)/rate.
	t := int64(math.Floor((bestKey-runEff)/pp.rate)) + 1
	if t <= now {
		t = now + 1
	}
	return t
}
