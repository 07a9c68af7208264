package sched

import "sort"

// Outcome is the per-process result of a run.
type Outcome struct {
	Completion int // tick at which the last unit finished
	Turnaround int // Completion - arrival
	Waiting    int // Turnaround - burst
	FirstRun   int // tick of the first dispatch
	Response   int // FirstRun - arrival
}

func newOutcome(j *Job, completion int) Outcome {
	turnaround := completion - j.arrival
	return Outcome{
		Completion: completion,
		Turnaround: turnaround,
		Waiting:    turnaround - j.burst,
		FirstRun:   j.firstRun,
		Response:   j.firstRun - j.arrival,
	}
}

// Gantt holds one entry per simulated time unit.
type Gantt []PID

// Segment is a maximal run of identical Gantt entries, [Start, Stop).
type Segment struct {
	PID   PID
	Start int
	Stop  int
}

func (s Segment) Len() int { return s.Stop - s.Start }

// Segments collapses consecutive identical entries.
func (g Gantt) Segments() []Segment {
	var segs []Segment
	for t, pid := range g {
		if n := len(segs); n > 0 && segs[n-1].PID == pid {
			segs[n-1].Stop = t + 1
			continue
		}
		segs = append(segs, Segment{PID: pid, Start: t, Stop: t + 1})
	}
	return segs
}

// Units counts how many time units pid occupied.
func (g Gantt) Units(pid PID) int {
	n := 0
	for _, p := range g {
		if p == pid {
			n++
		}
	}
	return n
}

// Strings renders every entry, idle units as "Idle".
func (g Gantt) Strings() []string {
	out := make([]string, len(g))
	for i, p := range g {
		out[i] = p.String()
	}
	return out
}

// Result is everything a run produced.
type Result struct {
	Algorithm Algorithm
	Quantum   int // zero unless Algorithm is RoundRobin
	Processes []Process
	Gantt     Gantt
	Outcomes  map[PID]Outcome
	Events    []Event
}

// Row pairs a process with its outcome.
type Row struct {
	Process
	Outcome
}

// Sorted returns one row per process in natural id order.
func (r *Result) Sorted() []Row {
	rows := make([]Row, 0, len(r.Processes))
	for _, p := range r.Processes {
		rows = append(rows, Row{Process: p, Outcome: r.Outcomes[p.pid]})
	}
	sort.Slice(rows, func(i, j int) bool { return lessPID(rows[i].pid, rows[j].pid) })
	return rows
}

// Summary aggregates the run. Averages are over all processes.
type Summary struct {
	AverageWaiting    float64
	AverageTurnaround float64
	AverageResponse   float64
	Makespan          int
	IdleUnits         int
	Utilization       float64
	Throughput        float64
	ContextSwitches   int
}

func (r *Result) Summary() Summary {
	var s Summary
	if len(r.Outcomes) == 0 {
		return s
	}
	var wait, turnaround, response int
	for _, o := range r.Outcomes {
		wait += o.Waiting
		turnaround += o.Turnaround
		response += o.Response
	}
	n := float64(len(r.Outcomes))
	s.AverageWaiting = float64(wait) / n
	s.AverageTurnaround = float64(turnaround) / n
	s.AverageResponse = float64(response) / n

	s.Makespan = len(r.Gantt)
	s.IdleUnits = r.Gantt.Units(Idle)
	if s.Makespan > 0 {
		s.Utilization = float64(s.Makespan-s.IdleUnits) / float64(s.Makespan)
		s.Throughput = n / float64(s.Makespan)
	}

	last := Idle
	for _, seg := range r.Gantt.Segments() {
		if seg.PID == Idle {
			continue
		}
		if last != Idle && last != seg.PID {
			s.ContextSwitches++
		}
		last = seg.PID
	}
	return s
}
