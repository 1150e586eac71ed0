// Trace-file replay. Traces use the line format
//
//	pid,arrival,cpu_burst,io_burst,priority
//
// with '#' comments and blank lines ignored. Invalid lines are skipped
// with a warning; the assembled workload is validated wholesale.

package workload

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/cpusched-sim/cpusched-sim/sim"
)

// LoadTraceFile reads a workload trace and returns validated processes.
func LoadTraceFile(path string) ([]*sim.Process, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read trace file: %w", err)
	}
	processes, err := ParseTrace(string(data))
	if err != nil {
		return nil, fmt.Errorf("trace file %s: %w", path, err)
	}
	return processes, nil
}

// ParseTrace parses trace content. Exposed separately for tests and for
// callers holding traces in memory.
func ParseTrace(content string) ([]*sim.Process, error) {
	var processes []*sim.Process
	for lineNum, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, ",")
		if len(fields) < 5 {
			logrus.Warnf("trace line %d: expected 5 fields, got %d; skipped", lineNum+1, len(fields))
			continue
		}
		vals := make([]int64, 5)
		ok := true
		for i := 0; i < 5; i++ {
			v, err := strconv.ParseInt(strings.TrimSpace(fields[i]), 10, 64)
			if err != nil {
				logrus.Warnf("trace line %d: %v; skipped", lineNum+1, err)
				ok = false
				break
			}
			vals[i] = v
		}
		if !ok {
			continue
		}
		bursts := []sim.Burst{{Kind: sim.BurstCPU, Duration: vals[2]}}
		if vals[3] > 0 {
			bursts = append(bursts, sim.Burst{Kind: sim.BurstIO, Duration: vals[3]})
		}
		processes = append(processes, sim.NewProcess(int(vals[0]), vals[1], bursts, int(vals[4])))
	}
	if err := Validate(processes); err != nil {
		return nil, err
	}
	return processes, nil
}
