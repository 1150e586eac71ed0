package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMLFQDemotesLongJobs(t *testing.T) {
	// quanta 4/8/16: the 20-tick job burns its level-0 quantum (0..4),
	// yields to the short job (4..7), then works through levels 1 and 2
	procs := []*Process{
		cpuProc(1, 0, 20),
		cpuProc(2, 0, 3),
	}
	cfg := DefaultConfig()
	cfg.Algorithm = AlgMLFQ
	runWorkload(t, cfg, procs)

	assert.Equal(t, int64(7), procs[1].CompletionTime, "short job must finish during the long job's demotions")
	assert.Equal(t, int64(23), procs[0].CompletionTime)
	assert.Equal(t, int64(20), procs[0].CPUTime)
	assert.Equal(t, 2, procs[0].QueueLevel, "20-tick job should bottom out at the last level")
	assert.Equal(t, 0, procs[1].QueueLevel)
}

func TestMLFQBottomLevelRequeuesInPlace(t *testing.T) {
	m := NewMLFQ(MLFQConfig{Levels: 2, Quanta: []int64{4, 8}, BoostInterval: 1000})
	p := cpuProc(1, 0, 100)
	p.QueueLevel = 1
	p.Remaining = 50

	assert.Equal(t, ExpiryRequeue, m.OnQuantumExpiry(p, 12))
	assert.Equal(t, 1, p.QueueLevel, "bottom level must not demote further")
	assert.Equal(t, 1, m.Len())
}

func TestMLFQTimeSliceFollowsLevel(t *testing.T) {
	m := NewMLFQ(MLFQConfig{Levels: 3, Quanta: []int64{4, 8, 16}, BoostInterval: 1000})
	p := cpuProc(1, 0, 100)

	assert.Equal(t, int64(4), m.TimeSlice(p, 0))
	p.QueueLevel = 1
	assert.Equal(t, int64(8), m.TimeSlice(p, 0))
	p.QueueLevel = 2
	assert.Equal(t, int64(16), m.TimeSlice(p, 0))
}

func TestMLFQBoostPromotesAllLevels(t *testing.T) {
	m := NewMLFQ(MLFQConfig{Levels: 3, Quanta: []int64{4, 8, 16}, BoostInterval: 10})
	p1 := cpuProc(1, 0, 50)
	p1.QueueLevel = 2
	p2 := cpuProc(2, 0, 50)
	p2.QueueLevel = 1
	m.OnArrival(p1, 0)
	m.OnArrival(p2, 0)

	// next interaction past the boost interval promotes everything to the
	// top level, level-then-FIFO order
	got := m.OnCPUAvailable(10)
	assert.Equal(t, p2, got, "level 1 precedes level 2 in the boost sweep")
	assert.Equal(t, 0, got.QueueLevel)
	assert.Equal(t, 0, p1.QueueLevel)
	assert.Equal(t, 1, m.Len())
}

func TestMLFQRejectsMismatchedQuanta(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Algorithm = AlgMLFQ
	cfg.MLFQ.Levels = 3
	cfg.MLFQ.Quanta = []int64{4, 8}
	_, err := NewScheduler(cfg)
	assert.Error(t, err)
}
