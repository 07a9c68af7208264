package sched

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGanttSegments(t *testing.T) {
	g := gantt("Idle P1 P1 P2 P1 Idle Idle")
	assert.Equal(t, []Segment{
		{PID: Idle, Start: 0, Stop: 1},
		{PID: "P1", Start: 1, Stop: 3},
		{PID: "P2", Start: 3, Stop: 4},
		{PID: "P1", Start: 4, Stop: 5},
		{PID: Idle, Start: 5, Stop: 7},
	}, g.Segments())
	assert.Equal(t, 3, g.Units("P1"))
	assert.Equal(t, 3, g.Units(Idle))
	assert.Equal(t, []string{"Idle", "P1", "P1", "P2", "P1", "Idle", "Idle"}, g.Strings())
	assert.Nil(t, Gantt(nil).Segments())
}

func TestSummaryRoundRobin(t *testing.T) {
	res, err := Simulate(classic(), RoundRobin, 2)
	require.NoError(t, err)

	s := res.Summary()
	assert.InDelta(t, 6.0, s.AverageWaiting, 1e-9)
	assert.InDelta(t, 34.0/3, s.AverageTurnaround, 1e-9)
	assert.InDelta(t, 1.0, s.AverageResponse, 1e-9)
	assert.Equal(t, 16, s.Makespan)
	assert.Zero(t, s.IdleUnits)
	assert.InDelta(t, 1.0, s.Utilization, 1e-9)
	assert.InDelta(t, 3.0/16, s.Throughput, 1e-9)
	assert.Equal(t, 7, s.ContextSwitches)
}

func TestSummaryWithIdle(t *testing.T) {
	res, err := Simulate([]Process{
		MustProcess("P1", 2, 2, 0),
		MustProcess("P2", 6, 1, 0),
	}, FCFS, 0)
	require.NoError(t, err)

	s := res.Summary()
	assert.Equal(t, 7, s.Makespan)
	assert.Equal(t, 4, s.IdleUnits)
	assert.InDelta(t, 3.0/7, s.Utilization, 1e-9)
	assert.Equal(t, 1, s.ContextSwitches)
	assert.Zero(t, s.AverageWaiting)
}

func TestSummaryEmptyResult(t *testing.T) {
	assert.Equal(t, Summary{}, (&Result{}).Summary())
}

func TestSortedRows(t *testing.T) {
	ps := []Process{
		MustProcess("P10", 0, 1, 0),
		MustProcess("P9", 0, 1, 0),
	}
	res, err := Simulate(ps, FCFS, 0)
	require.NoError(t, err)

	rows := res.Sorted()
	require.Len(t, rows, 2)
	assert.Equal(t, PID("P9"), rows[0].PID())
	assert.Equal(t, 1, rows[0].Completion)
	assert.Equal(t, PID("P10"), rows[1].PID())
	assert.Equal(t, 2, rows[1].Completion)
}
