// Multilevel feedback queue. A process enters at the top level, demotes
// one level each time it exhausts that level's quantum, and every
// BoostInterval ticks all queued processes are promoted back to the top.
// Dispatch always drains the highest non-empty level, FIFO within a level.

package sim

import "github.com/sirupsen/logrus"

// MLFQ implements the multilevel feedback queue scheduler.
type MLFQ struct {
	levels        []ReadyQueue
	quanta        []int64
	boostInterval int64
	lastBoost     int64
}

// NewMLFQ creates an MLFQ scheduler from validated parameters.
func NewMLFQ(cfg MLFQConfig) *MLFQ {
	return &MLFQ{
		levels:        make([]ReadyQueue, cfg.Levels),
		quanta:        cfg.Quanta,
		boostInterval: cfg.BoostInterval,
	}
}

func (m *MLFQ) Name() string { return AlgMLFQ }

// maybeBoost applies the periodic starvation guard: once BoostInterval
// ticks have passed since the last boost, every queued process moves back
// to level 0 in level-then-FIFO order. Applied lazily at the next
// scheduler interaction so the simulation stays event-driven.
func (m *MLFQ) maybeBoost(now int64) {
	if now-m.lastBoost < m.boostInterval {
		return
	}
	m.lastBoost = now
	var promoted []*Process
	for lvl := 1; lvl < len(m.levels); lvl++ {
		for {
			p := m.levels[lvl].Dequeue()
			if p == nil {
				break
			}
			p.QueueLevel = 0
			promoted = append(promoted, p)
		}
	}
	for _, p := range promoted {
		m.levels[0].Enqueue(p)
	}
	if len(promoted) > 0 {
		logrus.Debugf("mlfq boost at %d ticks: %d processes promoted", now, len(promoted))
	}
}

func (m *MLFQ) OnArrival(p *Process, now int64) {
	m.maybeBoost(now)
	if p.QueueLevel >= len(m.levels) {
		p.QueueLevel = len(m.levels) - 1
	}
	m.levels[p.QueueLevel].Enqueue(p)
}

func (m *MLFQ) OnCPUAvailable(now int64) *Process {
	m.maybeBoost(now)
	for lvl := range m.levels {
		if p := m.levels[lvl].Dequeue(); p != nil {
			return p
		}
	}
	return nil
}

// OnQuantumExpiry demotes the process one level (bottom level requeues in
// place) and returns it to the ready set.
func (m *MLFQ) OnQuantumExpiry(p *Process, now int64) ExpiryDecision {
	if p.QueueLevel < len(m.levels)-1 {
		p.QueueLevel++
	}
	m.OnArrival(p, now)
	return ExpiryRequeue
}

func (m *MLFQ) OnBurstComplete(_ *Process, _ int64) {}

// TimeSlice returns the quantum of the process's current level.
func (m *MLFQ) TimeSlice(p *Process, _ int64) int64 {
	return m.quanta[p.QueueLevel]
}

func (m *MLFQ) Len() int {
	n := 0
	for lvl := range m.levels {
		n += m.levels[lvl].Len()
	}
	return n
}
