package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cpuProc builds a single-CPU-burst process.
func cpuProc(id int, arrival, cpu int64) *Process {
	return NewProcess(id, arrival, []Burst{{Kind: BurstCPU, Duration: cpu}}, 1)
}

// runWorkload builds and runs a simulator over fresh processes.
func runWorkload(t *testing.T, cfg Config, procs []*Process) *Simulator {
	t.Helper()
	s, err := NewSimulator(cfg, procs)
	require.NoError(t, err)
	s.Run()
	return s
}

func TestFCFSCompletionTimes(t *testing.T) {
	// three CPU-only processes arriving together run in id order
	procs := []*Process{
		cpuProc(1, 0, 5),
		cpuProc(2, 0, 3),
		cpuProc(3, 0, 8),
	}
	cfg := DefaultConfig()
	cfg.Algorithm = AlgFCFS
	s := runWorkload(t, cfg, procs)

	assert.Equal(t, int64(5), procs[0].CompletionTime)
	assert.Equal(t, int64(8), procs[1].CompletionTime)
	assert.Equal(t, int64(16), procs[2].CompletionTime)
	assert.Equal(t, int64(16), s.TotalTime())
	assert.Equal(t, int64(2), s.ContextSwitches)
}

func TestZeroProcessWorkload(t *testing.T) {
	cfg := DefaultConfig()
	s, err := NewSimulator(cfg, nil)
	require.NoError(t, err)
	s.Run()
	assert.Equal(t, int64(0), s.TotalTime())
	assert.Equal(t, 0, s.Log.Len())
}

func TestIdleGapClosedByLateArrival(t *testing.T) {
	procs := []*Process{
		cpuProc(1, 0, 2),
		cpuProc(2, 10, 3),
	}
	cfg := DefaultConfig()
	s := runWorkload(t, cfg, procs)

	assert.Equal(t, int64(2), procs[0].CompletionTime)
	assert.Equal(t, int64(10), procs[1].FirstRunTime, "dispatch must wait for arrival, not run early")
	assert.Equal(t, int64(13), procs[1].CompletionTime)
	assert.Equal(t, int64(13), s.TotalTime())
}

func TestIOBurstBlocksWithoutHoldingCPU(t *testing.T) {
	p1 := NewProcess(1, 0, []Burst{
		{Kind: BurstCPU, Duration: 3},
		{Kind: BurstIO, Duration: 5},
		{Kind: BurstCPU, Duration: 2},
	}, 1)
	p2 := cpuProc(2, 0, 4)
	cfg := DefaultConfig()
	s := runWorkload(t, cfg, []*Process{p1, p2})

	// P1 blocks at 3; P2 uses the CPU 3..7; P1's I/O finishes at 8 and its
	// final burst runs 8..10
	assert.Equal(t, int64(7), p2.CompletionTime)
	assert.Equal(t, int64(10), p1.CompletionTime)
	assert.Equal(t, int64(5), p1.CPUTime, "I/O time must not count as CPU time")
	assert.Equal(t, int64(10), s.TotalTime())
}

func TestBackToBackIOBursts(t *testing.T) {
	p := NewProcess(1, 0, []Burst{
		{Kind: BurstCPU, Duration: 2},
		{Kind: BurstIO, Duration: 3},
		{Kind: BurstIO, Duration: 4},
		{Kind: BurstCPU, Duration: 1},
	}, 1)
	cfg := DefaultConfig()
	s := runWorkload(t, cfg, []*Process{p})

	assert.Equal(t, int64(10), p.CompletionTime)
	assert.Equal(t, int64(3), p.CPUTime)
	assert.Equal(t, int64(10), s.TotalTime())
}

func TestTrailingIOBurstTerminates(t *testing.T) {
	p := NewProcess(1, 0, []Burst{
		{Kind: BurstCPU, Duration: 2},
		{Kind: BurstIO, Duration: 6},
	}, 1)
	cfg := DefaultConfig()
	runWorkload(t, cfg, []*Process{p})

	assert.Equal(t, StateTerminated, p.State)
	assert.Equal(t, int64(8), p.CompletionTime, "completion includes the final I/O burst")
	assert.Equal(t, int64(2), p.CPUTime)
}

func TestContextSwitchCost(t *testing.T) {
	procs := []*Process{
		cpuProc(1, 0, 5),
		cpuProc(2, 0, 3),
		cpuProc(3, 0, 8),
	}
	cfg := DefaultConfig()
	cfg.ContextSwitchCost = 2
	s := runWorkload(t, cfg, procs)

	// cost charged between distinct processes only: P1 0..5, P2 7..10, P3 12..20
	assert.Equal(t, int64(5), procs[0].CompletionTime)
	assert.Equal(t, int64(10), procs[1].CompletionTime)
	assert.Equal(t, int64(20), procs[2].CompletionTime)
	assert.Equal(t, int64(2), s.ContextSwitches)
}

// mixedWorkload exercises arrivals, ties, I/O and long/short bursts.
func mixedWorkload() []*Process {
	return []*Process{
		NewProcess(1, 0, []Burst{{Kind: BurstCPU, Duration: 12}}, 4),
		NewProcess(2, 0, []Burst{
			{Kind: BurstCPU, Duration: 3},
			{Kind: BurstIO, Duration: 9},
			{Kind: BurstCPU, Duration: 3},
		}, 2),
		NewProcess(3, 5, []Burst{{Kind: BurstCPU, Duration: 2}}, 1),
		NewProcess(4, 5, []Burst{{Kind: BurstCPU, Duration: 7}}, 3),
		NewProcess(5, 30, []Burst{
			{Kind: BurstCPU, Duration: 4},
			{Kind: BurstIO, Duration: 2},
			{Kind: BurstCPU, Duration: 4},
		}, 5),
	}
}

func TestInvariantsAcrossAlgorithms(t *testing.T) {
	for _, alg := range Algorithms() {
		t.Run(alg, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Algorithm = alg
			cfg.RR.Quantum = 4
			procs := mixedWorkload()
			runWorkload(t, cfg, procs)

			for _, p := range procs {
				assert.Equal(t, StateTerminated, p.State, "P%d", p.ID)
				assert.Equal(t, p.TotalCPUBurst(), p.CPUTime,
					"P%d must receive exactly its CPU demand", p.ID)
				assert.True(t, p.Started, "P%d never dispatched", p.ID)
				assert.GreaterOrEqual(t, p.FirstRunTime, p.ArrivalTime, "P%d", p.ID)
				assert.GreaterOrEqual(t, p.CompletionTime, p.ArrivalTime+p.TotalCPUBurst(),
					"P%d finished before its demand could have been served", p.ID)
				assert.GreaterOrEqual(t, p.Waiting(), int64(0), "P%d", p.ID)
			}
		})
	}
}

func TestDeterministicReplay(t *testing.T) {
	// identical inputs must yield byte-identical event logs
	for _, alg := range Algorithms() {
		t.Run(alg, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Algorithm = alg
			cfg.RR.Quantum = 4
			first := runWorkload(t, cfg, mixedWorkload())
			second := runWorkload(t, cfg, mixedWorkload())
			assert.True(t, first.Log.Equal(second.Log), "event logs diverged between runs")
		})
	}
}

func TestSimultaneousArrivalLowerIDWins(t *testing.T) {
	for _, alg := range []string{AlgFCFS, AlgSJF, AlgRoundRobin, AlgPriorityNP} {
		t.Run(alg, func(t *testing.T) {
			// identical processes, ids deliberately seeded out of order
			procs := []*Process{
				cpuProc(3, 0, 4),
				cpuProc(1, 0, 4),
				cpuProc(2, 0, 4),
			}
			cfg := DefaultConfig()
			cfg.Algorithm = alg
			cfg.RR.Quantum = 10
			runWorkload(t, cfg, procs)

			byID := map[int]*Process{}
			for _, p := range procs {
				byID[p.ID] = p
			}
			assert.Equal(t, int64(0), byID[1].FirstRunTime)
			assert.Equal(t, int64(4), byID[2].FirstRunTime)
			assert.Equal(t, int64(8), byID[3].FirstRunTime)
		})
	}
}

func TestNewSimulatorRejectsBadConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Algorithm = "lottery"
	_, err := NewSimulator(cfg, nil)
	require.Error(t, err)
	var cerr *ConfigError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "algorithm", cerr.Param)
}
