package sim

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Algorithm names accepted by NewScheduler.
const (
	AlgFCFS        = "fcfs"
	AlgSJF         = "sjf"
	AlgSRTF        = "srtf"
	AlgRoundRobin  = "rr"
	AlgPriority    = "priority"
	AlgPriorityNP  = "priority-np"
	AlgMLFQ        = "mlfq"
)

// validAlgorithms maps accepted algorithm names. Empty defaults to FCFS.
var validAlgorithms = map[string]bool{
	"":            true,
	AlgFCFS:       true,
	AlgSJF:        true,
	AlgSRTF:       true,
	AlgRoundRobin: true,
	AlgPriority:   true,
	AlgPriorityNP: true,
	AlgMLFQ:       true,
}

// IsValidAlgorithm returns true if name is a recognized algorithm.
func IsValidAlgorithm(name string) bool {
	return validAlgorithms[name]
}

// Algorithms lists the concrete algorithm names in fixed comparison order.
func Algorithms() []string {
	return []string{AlgFCFS, AlgSJF, AlgSRTF, AlgRoundRobin, AlgPriority, AlgPriorityNP, AlgMLFQ}
}

// RRConfig groups Round Robin parameters.
type RRConfig struct {
	Quantum int64 `yaml:"quantum"`
}

// AgingConfig groups priority-scheduling parameters. Lower priority value
// means higher priority; Rate is the aging credit accumulated per tick of
// ready-set waiting (0 disables aging).
type AgingConfig struct {
	Rate float64 `yaml:"rate"`
}

// MLFQConfig groups multilevel-feedback-queue parameters. Quanta holds one
// quantum per level, top level first; BoostInterval is the period of the
// full promotion of all queued processes back to the top level.
type MLFQConfig struct {
	Levels        int     `yaml:"levels"`
	Quanta        []int64 `yaml:"quanta"`
	BoostInterval int64   `yaml:"boost_interval"`
}

// Config is the run configuration threaded into NewScheduler and the
// engine. Constructed once at run setup; there is no process-wide state.
type Config struct {
	Algorithm string      `yaml:"algorithm"`
	RR        RRConfig    `yaml:"rr"`
	Aging     AgingConfig `yaml:"aging"`
	MLFQ      MLFQConfig  `yaml:"mlfq"`

	// ContextSwitchCost is charged whenever the CPU switches to a process
	// other than the one that last ran. Zero by default.
	ContextSwitchCost int64 `yaml:"context_switch_cost"`
}

// DefaultConfig returns a Config with the documented defaults applied.
func DefaultConfig() Config {
	return Config{
		Algorithm: AlgFCFS,
		RR:        RRConfig{Quantum: 20},
		Aging:     AgingConfig{Rate: 0.1},
		MLFQ: MLFQConfig{
			Levels:        3,
			Quanta:        []int64{4, 8, 16},
			BoostInterval: 500,
		},
	}
}

// LoadConfig reads a YAML run configuration. Fields the file omits keep
// their defaults; the merged result is validated before use.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the parameters for the selected algorithm, returning a
// ConfigError naming the offending parameter.
func (c *Config) Validate() error {
	if !IsValidAlgorithm(c.Algorithm) {
		return &ConfigError{Param: "algorithm", Reason: "unknown algorithm " + c.Algorithm}
	}
	if c.ContextSwitchCost < 0 {
		return &ConfigError{Param: "context_switch_cost", Reason: "must be >= 0"}
	}
	switch c.Algorithm {
	case AlgRoundRobin:
		if c.RR.Quantum <= 0 {
			return &ConfigError{Param: "rr.quantum", Reason: "must be > 0"}
		}
	case AlgPriority, AlgPriorityNP:
		if c.Aging.Rate < 0 {
			return &ConfigError{Param: "aging.rate", Reason: "must be >= 0"}
		}
	case AlgMLFQ:
		if c.MLFQ.Levels <= 0 {
			return &ConfigError{Param: "mlfq.levels", Reason: "must be > 0"}
		}
		if len(c.MLFQ.Quanta) != c.MLFQ.Levels {
			return &ConfigError{Param: "mlfq.quanta", Reason: "must list one quantum per level"}
		}
		for _, q := range c.MLFQ.Quanta {
			if q <= 0 {
				return &ConfigError{Param: "mlfq.quanta", Reason: "quanta must be > 0"}
			}
		}
		if c.MLFQ.BoostInterval <= 0 {
			return &ConfigError{Param: "mlfq.boost_interval", Reason: "must be > 0"}
		}
	}
	return nil
}
