package sim

import "github.com/sirupsen/logrus"

// EventKind identifies the five event types the engine processes.
type EventKind string

const (
	KindArrival       EventKind = "arrival"
	KindBurstComplete EventKind = "burst_complete"
	KindQuantumExpiry EventKind = "quantum_expiry"
	KindIOComplete    EventKind = "io_complete"
	KindPreemptCheck  EventKind = "preempt_check"
)

// kindRank fixes the order in which same-tick events are applied: the CPU
// is released (burst completion, quantum expiry) before new candidates are
// admitted (arrival, I/O completion), and preemption checks run last so a
// process never preempts on the tick it becomes ready.
var kindRank = map[EventKind]int{
	KindBurstComplete: 0,
	KindQuantumExpiry: 1,
	KindArrival:       2,
	KindIOComplete:    3,
	KindPreemptCheck:  4,
}

// Event defines the interface for all simulation events.
// Each event has a timestamp (in ticks), a kind used for same-tick
// ordering, and an Execute method that advances simulation state.
type Event interface {
	Timestamp() int64
	Kind() EventKind
	Execute(*Simulator)
}

// ArrivalEvent marks a process becoming eligible for the CPU.
type ArrivalEvent struct {
	time    int64
	Process *Process
}

func (e *ArrivalEvent) Timestamp() int64 { return e.time }
func (e *ArrivalEvent) Kind() EventKind  { return KindArrival }

func (e *ArrivalEvent) Execute(sim *Simulator) {
	logrus.Debugf("<< Arrival: P%d at %d ticks", e.Process.ID, e.time)
	sim.handleArrival(e.Process, e.time)
}

// BurstCompleteEvent marks the running process finishing its current CPU
// burst. It carries the dispatch epoch it was scheduled under; a preemption
// in the meantime makes it stale and the engine drops it.
type BurstCompleteEvent struct {
	time    int64
	Process *Process
	epoch   uint64
}

func (e *BurstCompleteEvent) Timestamp() int64 { return e.time }
func (e *BurstCompleteEvent) Kind() EventKind  { return KindBurstComplete }

func (e *BurstCompleteEvent) Execute(sim *Simulator) {
	if e.epoch != e.Process.epoch {
		logrus.Debugf("-- stale BurstComplete for P%d dropped (epoch %d != %d)", e.Process.ID, e.epoch, e.Process.epoch)
		return
	}
	logrus.Debugf("<< BurstComplete: P%d at %d ticks", e.Process.ID, e.time)
	sim.handleBurstComplete(e.Process, e.time)
}

// QuantumExpiryEvent marks the running process exhausting its time slice.
type QuantumExpiryEvent struct {
	time    int64
	Process *Process
	epoch   uint64
}

func (e *QuantumExpiryEvent) Timestamp() int64 { return e.time }
func (e *QuantumExpiryEvent) Kind() EventKind  { return KindQuantumExpiry }

func (e *QuantumExpiryEvent) Execute(sim *Simulator) {
	if e.epoch != e.Process.epoch {
		logrus.Debugf("-- stale QuantumExpiry for P%d dropped", e.Process.ID)
		return
	}
	logrus.Debugf("<< QuantumExpiry: P%d at %d ticks", e.Process.ID, e.time)
	sim.handleQuantumExpiry(e.Process, e.time)
}

// IOCompleteEvent marks a blocked process finishing its I/O burst.
type IOCompleteEvent struct {
	time    int64
	Process *Process
}

func (e *IOCompleteEvent) Timestamp() int64 { return e.time }
func (e *IOCompleteEvent) Kind() EventKind  { return KindIOComplete }

func (e *IOCompleteEvent) Execute(sim *Simulator) {
	logrus.Debugf("<< IOComplete: P%d at %d ticks", e.Process.ID, e.time)
	sim.handleIOComplete(e.Process, e.time)
}

// PreemptCheckEvent asks a preemptive scheduler to re-evaluate whether the
// running process should yield. It is bound to the dispatch episode of the
// process that was running when the check was scheduled.
type PreemptCheckEvent struct {
	time    int64
	Process *Process // the running process this check targets
	epoch   uint64
}

func (e *PreemptCheckEvent) Timestamp() int64 { return e.time }
func (e *PreemptCheckEvent) Kind() EventKind  { return KindPreemptCheck }

func (e *PreemptCheckEvent) Execute(sim *Simulator) {
	if e.epoch != e.Process.epoch {
		logrus.Debugf("-- stale PreemptCheck for P%d dropped", e.Process.ID)
		return
	}
	logrus.Debugf("<< PreemptCheck: P%d at %d ticks", e.Process.ID, e.time)
	sim.handlePreemptCheck(e.Process, e.time)
}
