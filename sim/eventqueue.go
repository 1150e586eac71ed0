package sim

import "container/heap"

// eventEntry pairs an event with the insertion sequence number that breaks
// ties among equal timestamps and kinds. The sequence is assigned by the
// queue at push time, which makes replay of identical inputs byte-for-byte
// deterministic.
type eventEntry struct {
	event Event
	seq   uint64
}

// eventHeap implements heap.Interface ordered by
// (timestamp, kind rank, insertion sequence).
// See canonical Golang example here: https://pkg.go.dev/container/heap#example-package-IntHeap
type eventHeap []eventEntry

func (h eventHeap) Len() int { return len(h) }

func (h eventHeap) Less(i, j int) bool {
	ti, tj := h[i].event.Timestamp(), h[j].event.Timestamp()
	if ti != tj {
		return ti < tj
	}
	ri, rj := kindRank[h[i].event.Kind()], kindRank[h[j].event.Kind()]
	if ri != rj {
		return ri < rj
	}
	return h[i].seq < h[j].seq
}

func (h eventHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *eventHeap) Push(x any) {
	*h = append(*h, x.(eventEntry))
}

func (h *eventHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = eventEntry{} // release the event reference
	*h = old[:n-1]
	return item
}

// EventQueue holds all pending simulation events in total order.
// Entries are ephemeral: pushed by the engine once and popped exactly once.
type EventQueue struct {
	events eventHeap
	seq    uint64
}

// NewEventQueue creates an empty event queue.
func NewEventQueue() *EventQueue {
	eq := &EventQueue{events: make(eventHeap, 0)}
	heap.Init(&eq.events)
	return eq
}

// Push inserts an event, stamping it with the next sequence number.
func (eq *EventQueue) Push(ev Event) {
	eq.seq++
	heap.Push(&eq.events, eventEntry{event: ev, seq: eq.seq})
}

// PopMin removes and returns the event with the smallest
// (timestamp, kind rank, sequence) key. Returns nil when empty.
func (eq *EventQueue) PopMin() Event {
	if eq.IsEmpty() {
		return nil
	}
	return heap.Pop(&eq.events).(eventEntry).event
}

// Peek returns the next event without removing it, or nil when empty.
func (eq *EventQueue) Peek() Event {
	if eq.IsEmpty() {
		return nil
	}
	return eq.events[0].event
}

// IsEmpty reports whether no events are pending.
func (eq *EventQueue) IsEmpty() bool { return len(eq.events) == 0 }

// Len returns the number of pending events.
func (eq *EventQueue) Len() int { return len(eq.events) }
