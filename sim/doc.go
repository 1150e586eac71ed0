// Package sim provides the discrete-event simulation engine that models a
// single CPU shared among competing processes under a selectable
// scheduling policy.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - process.go: Process lifecycle (not-arrived → ready → running →
//     blocked/terminated) and the descriptor state machine
//   - event.go: the five event kinds that drive the simulation and the
//     epoch stamps that let preemption cancel scheduled events
//   - simulator.go: the event loop, dispatch, and preemption mechanics
//
// # Key Interfaces
//
// The extension points are small interfaces:
//   - Scheduler: owns the Ready Set and decides who runs next and for how
//     long (fcfs.go, sjf.go, rr.go, priosched.go, mlfq.go)
//   - Preemptor: implemented additionally by preemptive variants
//
// New algorithms are added by implementing Scheduler (plus Preemptor when
// preemptive) and registering the name in config.go and scheduler.go; the
// engine never inspects which variant is active.
//
// Sub-packages:
//   - sim/trace/: the append-only event log and pure derivations over it
//   - sim/workload/: synthetic generation, trace replay, validation
package sim
