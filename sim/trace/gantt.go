package trace

// Segment is one contiguous span of CPU time granted to a process.
// Downstream chart renderers consume these directly.
type Segment struct {
	ProcessID int
	Start     int64
	End       int64
}

// GanttSegments derives per-process execution spans from an event log.
// A span opens at a dispatch record and closes at the next preempt,
// quantum-expiry or burst-complete record for the same process. Adjacent
// spans are coalesced when a quantum expiry leaves the process on the CPU.
func GanttSegments(log *EventLog) []Segment {
	segments := make([]Segment, 0)
	openStart := make(map[int]int64)

	for _, r := range log.Records() {
		switch r.Kind {
		case KindDispatch:
			if _, open := openStart[r.ProcessID]; !open {
				openStart[r.ProcessID] = r.Timestamp
			}
		case KindPreempt, KindQuantumExpiry, KindBurstComplete:
			start, open := openStart[r.ProcessID]
			if !open {
				continue
			}
			delete(openStart, r.ProcessID)
			n := len(segments)
			if n > 0 && segments[n-1].ProcessID == r.ProcessID && segments[n-1].End == start {
				segments[n-1].End = r.Timestamp
			} else {
				segments = append(segments, Segment{ProcessID: r.ProcessID, Start: start, End: r.Timestamp})
			}
		}
	}
	return segments
}
