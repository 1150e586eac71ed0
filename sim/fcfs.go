// Implements the FIFO ready queue and the FCFS scheduler built on it.
// Processes are enqueued in the order they become ready.

package sim

import (
	"fmt"
	"strings"
)

// ReadyQueue is a FIFO queue of processes eligible for the CPU.
// FCFS and Round Robin use it directly; MLFQ keeps one per level.
type ReadyQueue struct {
	queue []*Process
}

// Enqueue adds a process to the back of the queue.
func (rq *ReadyQueue) Enqueue(p *Process) {
	rq.queue = append(rq.queue, p)
}

// Dequeue removes and returns the process at the front, or nil if empty.
func (rq *ReadyQueue) Dequeue() *Process {
	if len(rq.queue) == 0 {
		return nil
	}
	p := rq.queue[0]
	rq.queue = rq.queue[1:]
	return p
}

// Peek returns the front process without removing it, or nil if empty.
func (rq *ReadyQueue) Peek() *Process {
	if len(rq.queue) == 0 {
		return nil
	}
	return rq.queue[0]
}

// Len returns the number of queued processes.
func (rq *ReadyQueue) Len() int { return len(rq.queue) }

// Items returns the queue contents for iteration. The returned slice is
// the queue's internal storage; callers must not append to or reslice it.
func (rq *ReadyQueue) Items() []*Process { return rq.queue }

func (rq *ReadyQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, p := range rq.queue {
		sb.WriteString(fmt.Sprintf("P%d", p.ID))
		if i < len(rq.queue)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}

// FCFS is the non-preemptive First-Come-First-Served scheduler: a strict
// arrival-order queue with no quantum and no preemption.
type FCFS struct {
	ready ReadyQueue
}

// NewFCFS creates an FCFS scheduler with an empty ready queue.
func NewFCFS() *FCFS { return &FCFS{} }

func (f *FCFS) Name() string { return AlgFCFS }

func (f *FCFS) OnArrival(p *Process, _ int64) {
	f.ready.Enqueue(p)
}

func (f *FCFS) OnCPUAvailable(_ int64) *Process {
	return f.ready.Dequeue()
}

func (f *FCFS) OnQuantumExpiry(p *Process, _ int64) ExpiryDecision {
	// FCFS never grants a bounded slice, so expiry cannot happen.
	internalError("quantum expiry for P%d under fcfs", p.ID)
	return ExpiryRequeue
}

func (f *FCFS) OnBurstComplete(_ *Process, _ int64) {}

func (f *FCFS) TimeSlice(_ *Process, _ int64) int64 { return 0 }

func (f *FCFS) Len() int { return f.ready.Len() }
