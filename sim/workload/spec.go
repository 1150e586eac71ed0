package workload

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cpusched-sim/cpusched-sim/sim"
)

// ProcessSpec describes one process in a YAML workload, with an explicit
// burst list for workloads the single cpu+io trace format cannot express.
type ProcessSpec struct {
	ID       int         `yaml:"id"`
	Arrival  int64       `yaml:"arrival"`
	Bursts   []sim.Burst `yaml:"bursts"`
	Priority int         `yaml:"priority"`
}

// WorkloadSpec is the top-level YAML workload configuration.
type WorkloadSpec struct {
	Name      string        `yaml:"name"`
	Processes []ProcessSpec `yaml:"processes"`
}

// LoadSpec reads and parses a YAML workload spec.
func LoadSpec(path string) (*WorkloadSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read workload spec: %w", err)
	}
	var spec WorkloadSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parse workload spec %s: %w", path, err)
	}
	return &spec, nil
}

// Build materializes the spec into validated process descriptors.
func (ws *WorkloadSpec) Build() ([]*sim.Process, error) {
	processes := make([]*sim.Process, 0, len(ws.Processes))
	for _, ps := range ws.Processes {
		processes = append(processes, sim.NewProcess(ps.ID, ps.Arrival, ps.Bursts, ps.Priority))
	}
	if err := Validate(processes); err != nil {
		return nil, err
	}
	return processes, nil
}
