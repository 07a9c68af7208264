package sched

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// classic is the three-process workload used throughout the course notes.
func classic() []Process {
	return []Process{
		MustProcess("P1", 0, 5, 0),
		MustProcess("P2", 1, 3, 0),
		MustProcess("P3", 2, 8, 0),
	}
}

func gantt(s string) Gantt {
	var g Gantt
	for _, f := range strings.Fields(s) {
		if f == "Idle" {
			g = append(g, Idle)
			continue
		}
		g = append(g, PID(f))
	}
	return g
}

func repeat(pid string, n int) string {
	return strings.TrimSpace(strings.Repeat(pid+" ", n))
}

func join(parts ...string) string { return strings.Join(parts, " ") }

func TestSimulateClassic(t *testing.T) {
	tests := []struct {
		name       string
		alg        Algorithm
		quantum    int
		gantt      string
		completion map[PID]int
		waiting    map[PID]int
	}{
		{
			name:       "fcfs",
			alg:        FCFS,
			gantt:      join(repeat("P1", 5), repeat("P2", 3), repeat("P3", 8)),
			completion: map[PID]int{"P1": 5, "P2": 8, "P3": 16},
			waiting:    map[PID]int{"P1": 0, "P2": 4, "P3": 6},
		},
		{
			name:       "sjf keeps the running job",
			alg:        SJF,
			gantt:      join(repeat("P1", 5), repeat("P2", 3), repeat("P3", 8)),
			completion: map[PID]int{"P1": 5, "P2": 8, "P3": 16},
			waiting:    map[PID]int{"P1": 0, "P2": 4, "P3": 6},
		},
		{
			name:       "srtf preempts on arrival",
			alg:        SRTF,
			gantt:      join("P1", repeat("P2", 3), repeat("P1", 4), repeat("P3", 8)),
			completion: map[PID]int{"P1": 8, "P2": 4, "P3": 16},
			waiting:    map[PID]int{"P1": 3, "P2": 0, "P3": 6},
		},
		{
			name:       "round robin quantum 2",
			alg:        RoundRobin,
			quantum:    2,
			gantt:      "P1 P1 P2 P2 P3 P3 P1 P1 P2 P3 P3 P1 P3 P3 P3 P3",
			completion: map[PID]int{"P1": 12, "P2": 9, "P3": 16},
			waiting:    map[PID]int{"P1": 7, "P2": 5, "P3": 6},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Simulate(classic(), tt.alg, tt.quantum)
			require.NoError(t, err)
			assert.Equal(t, gantt(tt.gantt), res.Gantt)
			for pid, want := range tt.completion {
				assert.Equal(t, want, res.Outcomes[pid].Completion, "completion of %s", pid)
			}
			for pid, want := range tt.waiting {
				assert.Equal(t, want, res.Outcomes[pid].Waiting, "waiting of %s", pid)
			}
		})
	}
}

func TestSJFPicksShortestAtDecisionPoint(t *testing.T) {
	ps := []Process{
		MustProcess("A", 0, 6, 0),
		MustProcess("B", 1, 8, 0),
		MustProcess("C", 2, 7, 0),
		MustProcess("D", 3, 3, 0),
	}
	res, err := Simulate(ps, SJF, 0)
	require.NoError(t, err)

	assert.Equal(t, gantt(join(repeat("A", 6), repeat("D", 3), repeat("C", 7), repeat("B", 8))), res.Gantt)
	assert.Equal(t, 3, res.Outcomes["D"].Waiting)
	assert.Equal(t, 15, res.Outcomes["B"].Waiting)
}

func TestSJFTieBreaksOnArrivalThenID(t *testing.T) {
	ps := []Process{
		MustProcess("P3", 1, 2, 0),
		MustProcess("P2", 0, 2, 0),
		MustProcess("P1", 1, 2, 0),
	}
	res, err := Simulate(ps, SJF, 0)
	require.NoError(t, err)
	assert.Equal(t, gantt("P2 P2 P1 P1 P3 P3"), res.Gantt)
}

func TestPriorityLowerValueWins(t *testing.T) {
	ps := []Process{
		MustProcess("P1", 0, 4, 3),
		MustProcess("P2", 1, 3, 1),
		MustProcess("P3", 2, 2, 2),
		MustProcess("P4", 2, 1, 1),
	}
	res, err := Simulate(ps, Priority, 0)
	require.NoError(t, err)

	// P1 is alone at t=0 and is not preempted. At t=4, P2 and P4 share priority 1; P2 arrived first.
	assert.Equal(t, gantt("P1 P1 P1 P1 P2 P2 P2 P4 P3 P3"), res.Gantt)
	assert.Equal(t, Outcome{Completion: 7, Turnaround: 6, Waiting: 3, FirstRun: 4, Response: 3}, res.Outcomes["P2"])
}

func TestIdleGaps(t *testing.T) {
	ps := []Process{
		MustProcess("P1", 2, 2, 1),
		MustProcess("P2", 6, 1, 1),
	}
	want := gantt("Idle Idle P1 P1 Idle Idle P2")

	for _, alg := range Algorithms() {
		t.Run(alg.String(), func(t *testing.T) {
			res, err := Simulate(ps, alg, 3)
			require.NoError(t, err)
			assert.Equal(t, want, res.Gantt)
			assert.Equal(t, 4, res.Outcomes["P1"].Completion)
			assert.Equal(t, 7, res.Outcomes["P2"].Completion)
		})
	}
}

func TestSRTFTieDoesNotPreempt(t *testing.T) {
	ps := []Process{
		MustProcess("P1", 0, 4, 0),
		MustProcess("P2", 1, 3, 0),
	}
	res, err := Simulate(ps, SRTF, 0)
	require.NoError(t, err)

	// At t=1 P1 has 3 left, equal to P2's burst, so P1 keeps the CPU.
	assert.Equal(t, gantt("P1 P1 P1 P1 P2 P2 P2"), res.Gantt)
}

func TestRoundRobinNewArrivalsQueueAheadOfRequeued(t *testing.T) {
	ps := []Process{
		MustProcess("A", 0, 3, 0),
		MustProcess("B", 2, 2, 0),
	}
	res, err := Simulate(ps, RoundRobin, 2)
	require.NoError(t, err)

	// B arrives exactly when A's first slice ends and is queued before A.
	assert.Equal(t, gantt("A A B B A"), res.Gantt)
	assert.Equal(t, 5, res.Outcomes["A"].Completion)
	assert.Equal(t, 4, res.Outcomes["B"].Completion)
}

func TestSimulateDoesNotMutateInput(t *testing.T) {
	ps := classic()
	before := make([]Process, len(ps))
	copy(before, ps)

	for _, alg := range Algorithms() {
		_, err := Simulate(ps, alg, 1)
		require.NoError(t, err)
	}
	assert.Equal(t, before, ps)
}

func TestSimulateValidation(t *testing.T) {
	tests := []struct {
		name      string
		processes []Process
		alg       Algorithm
		quantum   int
		field     string
	}{
		{name: "empty", alg: FCFS, field: "processes"},
		{name: "zero burst", processes: []Process{{pid: "P1"}}, alg: FCFS, field: "burst"},
		{name: "negative arrival", processes: []Process{{pid: "P1", arrival: -1, burst: 1}}, alg: SJF, field: "arrival"},
		{name: "empty id", processes: []Process{{burst: 1}}, alg: SRTF, field: "id"},
		{
			name:      "duplicate id",
			processes: []Process{MustProcess("P1", 0, 1, 0), MustProcess("P1", 1, 1, 0)},
			alg:       Priority,
			field:     "id",
		},
		{name: "zero quantum", processes: classic(), alg: RoundRobin, quantum: 0, field: "quantum"},
		{name: "negative quantum", processes: classic(), alg: RoundRobin, quantum: -2, field: "quantum"},
		{name: "unknown algorithm", processes: classic(), alg: Algorithm(42), field: "algorithm"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Simulate(tt.processes, tt.alg, tt.quantum)
			require.Error(t, err)
			assert.Nil(t, res)
			assert.ErrorIs(t, err, ErrInvalid)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestQuantumIgnoredOutsideRoundRobin(t *testing.T) {
	res, err := Simulate(classic(), FCFS, -1)
	require.NoError(t, err)
	assert.Zero(t, res.Quantum)
}

func TestEventsTrace(t *testing.T) {
	res, err := Simulate(classic(), SRTF, 0)
	require.NoError(t, err)

	want := []Event{
		{Tick: 0, Kind: EventArrive, PID: "P1", Remaining: 5},
		{Tick: 0, Kind: EventDispatch, PID: "P1", Remaining: 5},
		{Tick: 1, Kind: EventArrive, PID: "P2", Remaining: 3},
		{Tick: 1, Kind: EventPreempt, PID: "P1", Remaining: 4},
		{Tick: 1, Kind: EventDispatch, PID: "P2", Remaining: 3},
		{Tick: 2, Kind: EventArrive, PID: "P3", Remaining: 8},
		{Tick: 4, Kind: EventFinish, PID: "P2"},
		{Tick: 4, Kind: EventDispatch, PID: "P1", Remaining: 4},
		{Tick: 8, Kind: EventFinish, PID: "P1"},
		{Tick: 8, Kind: EventDispatch, PID: "P3", Remaining: 8},
		{Tick: 16, Kind: EventFinish, PID: "P3"},
	}
	assert.Equal(t, want, res.Events)
}

func TestIdleEventOncePerStretch(t *testing.T) {
	res, err := Simulate([]Process{MustProcess("P1", 3, 1, 0)}, RoundRobin, 1)
	require.NoError(t, err)

	var idles []int
	for _, ev := range res.Events {
		if ev.Kind == EventIdle {
			idles = append(idles, ev.Tick)
		}
	}
	assert.Equal(t, []int{0}, idles)
}
