package sim

import "fmt"

// ConfigError reports an invalid or missing algorithm parameter. It is
// returned before a run starts; the simulation never begins on one.
type ConfigError struct {
	Param  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config: parameter %q: %s", e.Param, e.Reason)
}

// WorkloadError reports a malformed process descriptor. The whole workload
// is rejected; there are no partial runs.
type WorkloadError struct {
	ProcessID int
	Reason    string
}

func (e *WorkloadError) Error() string {
	return fmt.Sprintf("workload: process %d: %s", e.ProcessID, e.Reason)
}

// internalError panics with an internal-consistency message. Violations
// indicate a bug in the scheduler or engine, never a recoverable runtime
// condition, so the run aborts rather than produce misleading metrics.
func internalError(format string, args ...any) {
	panic(fmt.Sprintf("internal consistency: "+format, args...))
}
