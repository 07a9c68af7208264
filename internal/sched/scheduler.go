// internal/sched/scheduler.go

package sched

// Simulate validates the input and runs the selected algorithm over it.
// quantum is only read for RoundRobin. The processes slice is never modified.
func Simulate(processes []Process, alg Algorithm, quantum int) (*Result, error) {
	if err := Validate(processes); err != nil {
		return nil, err
	}

	var s *runState
	switch alg {
	case FCFS:
		s = runFCFS(processes)
	case SJF:
		s = runNonPreemptive(processes, func(j *Job) int { return j.burst })
	case SRTF:
		s = runSRTF(processes)
	case Priority:
		s = runNonPreemptive(processes, func(j *Job) int { return j.priority })
	case RoundRobin:
		if quantum <= 0 {
			return nil, invalid(Idle, "quantum", "must be positive for round-robin")
		}
		s = runRoundRobin(processes, quantum)
	default:
		return nil, invalid(Idle, "algorithm", "unknown algorithm "+alg.String())
	}

	input := make([]Process, len(processes))
	copy(input, processes)

	res := &Result{
		Algorithm: alg,
		Processes: input,
		Gantt:     s.gantt,
		Outcomes:  s.outcomes,
		Events:    mergeArrivals(s.events, input),
	}
	if alg == RoundRobin {
		res.Quantum = quantum
	}
	return res, nil
}

// runState is the per-invocation simulation state.
type runState struct {
	t        int // logical clock, never decreases
	gantt    Gantt
	outcomes map[PID]Outcome
	events   []Event
	current  *Job // job that held the CPU most recently, nil once it finished
}

func newRunState(n int) *runState {
	return &runState{outcomes: make(map[PID]Outcome, n)}
}

// idle records one unit with nothing to run.
func (s *runState) idle() {
	if n := len(s.gantt); n == 0 || s.gantt[n-1] != Idle {
		s.events = append(s.events, Event{Tick: s.t, Kind: EventIdle})
	}
	s.gantt = append(s.gantt, Idle)
	s.t++
}

// run gives j the CPU for units ticks and records its outcome once its burst is consumed.
func (s *runState) run(j *Job, units int) {
	if s.current != j {
		if s.current != nil && !s.current.done() {
			s.events = append(s.events, Event{Tick: s.t, Kind: EventPreempt, PID: s.current.pid, Remaining: s.current.Remaining})
		}
		s.events = append(s.events, Event{Tick: s.t, Kind: EventDispatch, PID: j.pid, Remaining: j.Remaining})
		s.current = j
	}
	if j.firstRun < 0 {
		j.firstRun = s.t
	}

	for i := 0; i < units; i++ {
		s.gantt = append(s.gantt, j.pid)
	}
	s.t += units
	j.Remaining -= units

	if j.done() {
		s.outcomes[j.pid] = newOutcome(j, s.t)
		s.events = append(s.events, Event{Tick: s.t, Kind: EventFinish, PID: j.pid})
		s.current = nil
	}
}
