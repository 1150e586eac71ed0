// sim/simulator.go
package sim

import (
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/cpusched-sim/cpusched-sim/sim/trace"
)

// Simulator is the core object that holds simulated time, the event queue,
// CPU occupancy, and the active scheduler. It drives the main loop that
// turns events into state transitions and new events, emitting the event
// log as its sole externally observable product.
type Simulator struct {
	Clock  int64
	Config Config
	// EventQueue holds all pending simulation events in
	// (timestamp, kind rank, sequence) order.
	EventQueue *EventQueue
	Scheduler  Scheduler
	// Processes is the full descriptor set for the run. After Run returns,
	// arrival/first-run/completion timestamps are populated and every
	// per-process metric can be derived without re-running.
	Processes []*Process
	// Running is the process currently occupying the single CPU, nil when
	// the CPU is idle.
	Running *Process
	// Log is the append-only event record consumed by statistics and
	// visualization collaborators.
	Log *trace.EventLog

	// ContextSwitches counts dispatches of a process other than the one
	// that last held the CPU.
	ContextSwitches int64

	lastRan    *Process
	terminated int
}

// NewSimulator builds a run-ready engine: validates the configuration,
// constructs the scheduler, and schedules one Arrival event per process.
// The process set must already have passed workload validation; it is
// owned exclusively by this engine for the duration of the run.
func NewSimulator(cfg Config, processes []*Process) (*Simulator, error) {
	sched, err := NewScheduler(cfg)
	if err != nil {
		return nil, err
	}
	s := &Simulator{
		Config:     cfg,
		EventQueue: NewEventQueue(),
		Scheduler:  sched,
		Processes:  processes,
		Log:        trace.NewEventLog(),
	}
	// Arrival events are seeded in (arrival time, id) order so that the
	// heap's insertion sequence realizes the documented lower-id-wins
	// tie-break for simultaneous arrivals.
	seed := make([]*Process, len(processes))
	copy(seed, processes)
	sort.SliceStable(seed, func(i, j int) bool {
		if seed[i].ArrivalTime != seed[j].ArrivalTime {
			return seed[i].ArrivalTime < seed[j].ArrivalTime
		}
		return seed[i].ID < seed[j].ID
	})
	for _, p := range seed {
		p.State = StateNotArrived
		s.Schedule(&ArrivalEvent{time: p.ArrivalTime, Process: p})
	}
	return s, nil
}

// Schedule pushes an event into the engine's event queue.
func (s *Simulator) Schedule(ev Event) {
	s.EventQueue.Push(ev)
}

// Run executes the main loop: pop the next event, advance the clock,
// apply it, repeat until the queue drains. A zero-process workload ends
// immediately with an empty log.
func (s *Simulator) Run() {
	for !s.EventQueue.IsEmpty() {
		ev := s.EventQueue.PopMin()
		if ev.Timestamp() < s.Clock {
			internalError("event %T at %d behind clock %d", ev, ev.Timestamp(), s.Clock)
		}
		s.Clock = ev.Timestamp()
		logrus.Debugf("[tick %07d] Executing %T", s.Clock, ev)
		ev.Execute(s)
	}
	if s.terminated != len(s.Processes) {
		internalError("event queue drained with %d of %d processes unterminated",
			len(s.Processes)-s.terminated, len(s.Processes))
	}
	logrus.Debugf("[tick %07d] Simulation ended", s.Clock)
}

// TotalTime returns the tick the simulation finished at.
func (s *Simulator) TotalTime() int64 { return s.Clock }

func (s *Simulator) record(ts int64, kind string, pid int) {
	s.Log.Append(trace.Record{Timestamp: ts, Kind: kind, ProcessID: pid})
}

// handleArrival moves a process to Ready, hands it to the scheduler, and
// either dispatches (idle CPU) or queues a preemption check (busy CPU,
// preemptive scheduler).
func (s *Simulator) handleArrival(p *Process, now int64) {
	if p.State != StateNotArrived {
		internalError("arrival of P%d in state %s", p.ID, p.State)
	}
	s.becomeReady(p, now)
	s.record(now, trace.KindArrival, p.ID)
	s.Scheduler.OnArrival(p, now)
	if s.Running == nil {
		s.dispatchNext(now)
	} else {
		s.queuePreemptCheck(now)
	}
}

// handleIOComplete moves a blocked process back to Ready (or terminates it
// if the I/O burst was its last).
func (s *Simulator) handleIOComplete(p *Process, now int64) {
	if p.State != StateBlocked {
		internalError("io completion of P%d in state %s", p.ID, p.State)
	}
	s.record(now, trace.KindIOComplete, p.ID)
	if !p.advanceBurst() {
		s.terminate(p, now)
		return
	}
	if p.CurrentBurst().Kind == BurstIO {
		// back-to-back I/O bursts stay blocked
		s.Schedule(&IOCompleteEvent{time: now + p.Remaining, Process: p})
		return
	}
	s.becomeReady(p, now)
	s.Scheduler.OnArrival(p, now)
	if s.Running == nil {
		s.dispatchNext(now)
	} else {
		s.queuePreemptCheck(now)
	}
}

// handleBurstComplete retires the running process's CPU burst: block on
// I/O, requeue for a further CPU burst, or terminate; then free the CPU.
func (s *Simulator) handleBurstComplete(p *Process, now int64) {
	if s.Running != p || p.State != StateRunning {
		internalError("burst completion of P%d which is not running", p.ID)
	}
	p.CPUTime += p.Remaining
	p.Remaining = 0
	s.releaseCPU(p)
	s.record(now, trace.KindBurstComplete, p.ID)
	s.Scheduler.OnBurstComplete(p, now)

	if !p.advanceBurst() {
		s.terminate(p, now)
	} else if p.CurrentBurst().Kind == BurstIO {
		p.State = StateBlocked
		s.record(now, trace.KindIOStart, p.ID)
		s.Schedule(&IOCompleteEvent{time: now + p.Remaining, Process: p})
	} else {
		s.becomeReady(p, now)
		s.Scheduler.OnArrival(p, now)
	}
	s.dispatchNext(now)
}

// handleQuantumExpiry charges the consumed slice and asks the scheduler
// whether the process keeps the CPU or rejoins the Ready Set.
func (s *Simulator) handleQuantumExpiry(p *Process, now int64) {
	if s.Running != p || p.State != StateRunning {
		internalError("quantum expiry of P%d which is not running", p.ID)
	}
	consumed := now - p.dispatchTime
	p.CPUTime += consumed
	p.Remaining -= consumed
	if p.Remaining <= 0 {
		internalError("quantum expiry of P%d with %d remaining", p.ID, p.Remaining)
	}
	s.record(now, trace.KindQuantumExpiry, p.ID)

	if s.Scheduler.OnQuantumExpiry(p, now) == ExpiryContinue {
		// the process keeps the CPU; open a fresh slice from now
		p.dispatchTime = now
		s.record(now, trace.KindDispatch, p.ID)
		s.scheduleSlice(p, now)
		return
	}
	s.releaseCPU(p)
	s.becomeReady(p, now)
	s.dispatchNext(now)
}

// handlePreemptCheck re-evaluates whether the running process should yield
// to a higher-priority or shorter-job candidate.
func (s *Simulator) handlePreemptCheck(p *Process, now int64) {
	pre, ok := s.Scheduler.(Preemptor)
	if !ok {
		internalError("preempt check under non-preemptive scheduler %s", s.Scheduler.Name())
	}
	if s.Running != p {
		internalError("preempt check for P%d which is not running", p.ID)
	}
	if !pre.ShouldPreempt(p, now) {
		// no winner yet; re-arm the aging crossover check if one exists
		if t := pre.NextPreemptCheck(p, now); t > now {
			s.Schedule(&PreemptCheckEvent{time: t, Process: p, epoch: p.epoch})
		}
		return
	}
	s.preempt(p, now)
}

// preempt takes the CPU away from p: charge consumed time, invalidate the
// pending burst-completion event via the epoch bump, requeue, redispatch.
// The remaining burst is reduced only by time actually consumed; the
// preemption itself loses no CPU time.
func (s *Simulator) preempt(p *Process, now int64) {
	consumed := now - p.dispatchTime
	if consumed < 0 {
		consumed = 0
	}
	p.CPUTime += consumed
	p.Remaining -= consumed
	if p.Remaining <= 0 {
		internalError("preemption of P%d with %d remaining", p.ID, p.Remaining)
	}
	s.releaseCPU(p)
	s.becomeReady(p, now)
	s.record(now, trace.KindPreempt, p.ID)
	s.Scheduler.OnArrival(p, now)
	s.dispatchNext(now)
}

// dispatchNext asks the scheduler for the next process and puts it on the
// CPU. The engine never idles while the Ready Set is non-empty: every
// code path that frees the CPU ends here.
func (s *Simulator) dispatchNext(now int64) {
	if s.Running != nil {
		return
	}
	p := s.Scheduler.OnCPUAvailable(now)
	if p == nil {
		return
	}
	if p.State != StateReady {
		internalError("scheduler returned P%d in state %s", p.ID, p.State)
	}

	start := now
	if s.lastRan != nil && s.lastRan != p {
		s.ContextSwitches++
		start += s.Config.ContextSwitchCost
	}
	p.State = StateRunning
	p.epoch++
	p.dispatchTime = start
	if !p.Started {
		p.Started = true
		p.FirstRunTime = start
	}
	s.Running = p
	s.lastRan = p
	s.record(start, trace.KindDispatch, p.ID)
	s.scheduleSlice(p, start)

	if pre, ok := s.Scheduler.(Preemptor); ok {
		if t := pre.NextPreemptCheck(p, start); t > start {
			s.Schedule(&PreemptCheckEvent{time: t, Process: p, epoch: p.epoch})
		}
	}
}

// scheduleSlice schedules the event that ends the new dispatch episode:
// burst completion if the slice covers the remaining burst, quantum
// expiry otherwise.
func (s *Simulator) scheduleSlice(p *Process, start int64) {
	slice := s.Scheduler.TimeSlice(p, start)
	if slice <= 0 || p.Remaining <= slice {
		s.Schedule(&BurstCompleteEvent{time: start + p.Remaining, Process: p, epoch: p.epoch})
	} else {
		s.Schedule(&QuantumExpiryEvent{time: start + slice, Process: p, epoch: p.epoch})
	}
}

// queuePreemptCheck schedules a same-tick preemption check against the
// running process. The check's kind rank places it after every arrival
// and completion at this instant.
func (s *Simulator) queuePreemptCheck(now int64) {
	if s.Running == nil {
		return
	}
	if _, ok := s.Scheduler.(Preemptor); !ok {
		return
	}
	s.Schedule(&PreemptCheckEvent{time: now, Process: s.Running, epoch: s.Running.epoch})
}

// releaseCPU removes p from the CPU and invalidates any events still bound
// to the ended dispatch episode.
func (s *Simulator) releaseCPU(p *Process) {
	p.epoch++
	s.Running = nil
}

func (s *Simulator) becomeReady(p *Process, now int64) {
	p.State = StateReady
	p.ReadySince = now
}

func (s *Simulator) terminate(p *Process, now int64) {
	if p.State == StateTerminated {
		internalError("terminating P%d twice", p.ID)
	}
	p.State = StateTerminated
	p.Remaining = 0
	p.CompletionTime = now
	s.terminated++
	s.record(now, trace.KindTerminated, p.ID)
	logrus.Debugf("Finished P%d at %d ticks", p.ID, now)
}
