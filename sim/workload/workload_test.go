package workload

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/cpusched-sim/cpusched-sim/sim"
)

func TestValidateAcceptsWellFormedWorkload(t *testing.T) {
	procs := []*sim.Process{
		sim.NewProcess(1, 0, []sim.Burst{{Kind: sim.BurstCPU, Duration: 5}}, 1),
		sim.NewProcess(2, 3, []sim.Burst{
			{Kind: sim.BurstCPU, Duration: 2},
			{Kind: sim.BurstIO, Duration: 7},
			{Kind: sim.BurstCPU, Duration: 2},
		}, 4),
	}
	assert.NoError(t, Validate(procs))
}

func TestValidateRejections(t *testing.T) {
	cpu := func(d int64) sim.Burst { return sim.Burst{Kind: sim.BurstCPU, Duration: d} }
	io := func(d int64) sim.Burst { return sim.Burst{Kind: sim.BurstIO, Duration: d} }

	cases := []struct {
		name   string
		procs  []*sim.Process
		pid    int
		reason string
	}{
		{
			name: "duplicate id",
			procs: []*sim.Process{
				sim.NewProcess(1, 0, []sim.Burst{cpu(5)}, 1),
				sim.NewProcess(1, 2, []sim.Burst{cpu(3)}, 1),
			},
			pid:    1,
			reason: "duplicate process id",
		},
		{
			name:   "negative arrival",
			procs:  []*sim.Process{sim.NewProcess(2, -1, []sim.Burst{cpu(5)}, 1)},
			pid:    2,
			reason: "negative arrival time",
		},
		{
			name:   "empty bursts",
			procs:  []*sim.Process{sim.NewProcess(3, 0, nil, 1)},
			pid:    3,
			reason: "empty burst list",
		},
		{
			name:   "io first",
			procs:  []*sim.Process{sim.NewProcess(4, 0, []sim.Burst{io(5), cpu(2)}, 1)},
			pid:    4,
			reason: "first burst must be a CPU burst",
		},
		{
			name:   "negative duration",
			procs:  []*sim.Process{sim.NewProcess(5, 0, []sim.Burst{cpu(2), io(-3)}, 1)},
			pid:    5,
			reason: "negative burst duration",
		},
		{
			name: "unknown kind",
			procs: []*sim.Process{
				sim.NewProcess(6, 0, []sim.Burst{cpu(2), {Kind: "gpu", Duration: 3}}, 1),
			},
			pid: 6,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(tc.procs)
			require.Error(t, err)
			var werr *sim.WorkloadError
			require.ErrorAs(t, err, &werr)
			assert.Equal(t, tc.pid, werr.ProcessID)
			if tc.reason != "" {
				assert.Equal(t, tc.reason, werr.Reason)
			}
		})
	}
}

func TestGeneratorDeterministicPerSeed(t *testing.T) {
	a := NewGenerator(42).Synthetic(20, PresetMixed)
	b := NewGenerator(42).Synthetic(20, PresetMixed)
	require.Len(t, a, 20)

	for i := range a {
		assert.Equal(t, a[i].ID, b[i].ID)
		assert.Equal(t, a[i].ArrivalTime, b[i].ArrivalTime)
		assert.Equal(t, a[i].Bursts, b[i].Bursts)
		assert.Equal(t, a[i].BasePriority, b[i].BasePriority)
	}
}

func TestGeneratorOutputIsValid(t *testing.T) {
	for _, preset := range []Preset{PresetCPUIntensive, PresetIOIntensive, PresetMixed} {
		t.Run(string(preset), func(t *testing.T) {
			procs := NewGenerator(7).Synthetic(50, preset)
			require.Len(t, procs, 50)
			assert.NoError(t, Validate(procs))

			// ids assigned in arrival order
			for i := 1; i < len(procs); i++ {
				assert.Less(t, procs[i-1].ID, procs[i].ID)
				assert.LessOrEqual(t, procs[i-1].ArrivalTime, procs[i].ArrivalTime)
			}
		})
	}
}

func TestIsValidPreset(t *testing.T) {
	assert.True(t, IsValidPreset(""))
	assert.True(t, IsValidPreset("cpu-intensive"))
	assert.True(t, IsValidPreset("io-intensive"))
	assert.True(t, IsValidPreset("mixed"))
	assert.False(t, IsValidPreset("bursty"))
}

func TestParseTrace(t *testing.T) {
	content := `# pid,arrival,cpu,io,priority
1,0,10,5,2

2, 4, 6, 0, 1
not,a,valid,line,x
3,9,3,2,7,extra-ignored
`
	procs, err := ParseTrace(content)
	require.NoError(t, err)
	require.Len(t, procs, 3)

	assert.Equal(t, 1, procs[0].ID)
	assert.Equal(t, int64(0), procs[0].ArrivalTime)
	require.Len(t, procs[0].Bursts, 2)
	assert.Equal(t, sim.Burst{Kind: sim.BurstIO, Duration: 5}, procs[0].Bursts[1])

	// io of 0 means a single CPU burst
	assert.Equal(t, 2, procs[1].ID)
	require.Len(t, procs[1].Bursts, 1)
	assert.Equal(t, 1, procs[1].BasePriority)

	assert.Equal(t, 3, procs[2].ID)
	assert.Equal(t, 7, procs[2].BasePriority)
}

func TestParseTraceRejectsInvalidWorkload(t *testing.T) {
	_, err := ParseTrace("1,0,5,0,1\n1,2,3,0,1\n")
	require.Error(t, err)
	var werr *sim.WorkloadError
	assert.ErrorAs(t, err, &werr)
}

func TestLoadTraceFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.csv")
	require.NoError(t, os.WriteFile(path, []byte("1,0,4,0,1\n2,1,2,3,5\n"), 0o644))

	procs, err := LoadTraceFile(path)
	require.NoError(t, err)
	assert.Len(t, procs, 2)

	_, err = LoadTraceFile(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}

func TestWorkloadSpecBuild(t *testing.T) {
	raw := `
name: smoke
processes:
  - id: 1
    arrival: 0
    priority: 2
    bursts:
      - {kind: cpu, duration: 6}
      - {kind: io, duration: 4}
      - {kind: cpu, duration: 2}
  - id: 2
    arrival: 3
    priority: 1
    bursts:
      - {kind: cpu, duration: 5}
`
	var spec WorkloadSpec
	require.NoError(t, yaml.Unmarshal([]byte(raw), &spec))
	assert.Equal(t, "smoke", spec.Name)

	procs, err := spec.Build()
	require.NoError(t, err)
	require.Len(t, procs, 2)
	assert.Equal(t, int64(8), procs[0].TotalCPUBurst())
	require.Len(t, procs[0].Bursts, 3)
	assert.Equal(t, 1, procs[1].BasePriority)
}

func TestWorkloadSpecBuildRejectsInvalid(t *testing.T) {
	spec := WorkloadSpec{Processes: []ProcessSpec{{ID: 1, Arrival: 0, Priority: 1}}}
	_, err := spec.Build()
	assert.Error(t, err)
}

func TestLoadSpec(t *testing.T) {
	path := filepath.Join(t.TempDir(), "workload.yaml")
	raw := "name: file-test\nprocesses:\n  - id: 1\n    arrival: 0\n    priority: 3\n    bursts:\n      - {kind: cpu, duration: 9}\n"
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	spec, err := LoadSpec(path)
	require.NoError(t, err)
	assert.Equal(t, "file-test", spec.Name)
	require.Len(t, spec.Processes, 1)
	assert.Equal(t, int64(9), spec.Processes[0].Bursts[0].Duration)
}
