package trace

import (
	"encoding/csv"
	"io"
	"strconv"
)

// EventLog collects records during a simulation run, in the exact order
// the engine applied them. Two runs over identical inputs produce
// identical logs.
type EventLog struct {
	records []Record
}

// NewEventLog creates an empty log ready for recording.
func NewEventLog() *EventLog {
	return &EventLog{records: make([]Record, 0)}
}

// Append adds a record to the log.
func (l *EventLog) Append(r Record) {
	l.records = append(l.records, r)
}

// Records returns the log contents. The returned slice is the log's
// internal storage; callers must not modify it.
func (l *EventLog) Records() []Record {
	return l.records
}

// Len returns the number of records.
func (l *EventLog) Len() int { return len(l.records) }

// WriteCSV writes the log as timestamp,kind,process_id rows with a header.
func (l *EventLog) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"timestamp", "kind", "process_id"}); err != nil {
		return err
	}
	for _, r := range l.records {
		row := []string{
			strconv.FormatInt(r.Timestamp, 10),
			r.Kind,
			strconv.Itoa(r.ProcessID),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Equal reports whether two logs hold identical record sequences.
func (l *EventLog) Equal(other *EventLog) bool {
	if len(l.records) != len(other.records) {
		return false
	}
	for i := range l.records {
		if l.records[i] != other.records[i] {
			return false
		}
	}
	return true
}
