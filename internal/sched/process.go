package sched

import "strings"

// PID uniquely identifies a process within one simulation run.
type PID string

// Idle marks a Gantt unit in which no process held the CPU.
// Valid PIDs are never empty and never spell "Idle" in any case.
const Idle PID = ""

func (p PID) String() string {
	if p == Idle {
		return "Idle"
	}
	return string(p)
}

// Process represents one schedulable unit. It is immutable once built.
type Process struct {
	pid      PID
	arrival  int
	burst    int
	priority int // lower value is served first
}

// NewProcess validates the fields and builds a Process.
func NewProcess(pid PID, arrival, burst, priority int) (Process, error) {
	p := Process{pid: pid, arrival: arrival, burst: burst, priority: priority}
	if err := p.validate(); err != nil {
		return Process{}, err
	}
	return p, nil
}

// MustProcess is like NewProcess but panics on invalid input.
// Intended for fixtures and literal workloads.
func MustProcess(pid PID, arrival, burst, priority int) Process {
	p, err := NewProcess(pid, arrival, burst, priority)
	if err != nil {
		panic(err)
	}
	return p
}

func (p Process) PID() PID      { return p.pid }
func (p Process) Arrival() int  { return p.arrival }
func (p Process) Burst() int    { return p.burst }
func (p Process) Priority() int { return p.priority }

func (p Process) validate() error {
	switch {
	case strings.TrimSpace(string(p.pid)) == "":
		return invalid(p.pid, "id", "must not be empty")
	case strings.EqualFold(strings.TrimSpace(string(p.pid)), Idle.String()):
		return invalid(p.pid, "id", "is reserved for idle units")
	case p.arrival < 0:
		return invalid(p.pid, "arrival", "must not be negative")
	case p.burst <= 0:
		return invalid(p.pid, "burst", "must be positive")
	}
	return nil
}

// Job is the working copy of a Process owned by a single run.
// Only Remaining changes while the run advances.
type Job struct {
	Process
	Remaining int
	firstRun  int // -1 until dispatched
}

// Clone returns a Job with a fresh remaining-time counter. The receiver is untouched.
func (p Process) Clone() *Job {
	return &Job{Process: p, Remaining: p.burst, firstRun: -1}
}

func (j *Job) done() bool { return j.Remaining == 0 }

// Validate checks every process and rejects an empty set or duplicate ids.
func Validate(processes []Process) error {
	if len(processes) == 0 {
		return invalid(Idle, "processes", "at least one process is required")
	}
	seen := make(map[PID]struct{}, len(processes))
	for _, p := range processes {
		if err := p.validate(); err != nil {
			return err
		}
		if _, dup := seen[p.pid]; dup {
			return invalid(p.pid, "id", "duplicate process id")
		}
		seen[p.pid] = struct{}{}
	}
	return nil
}

// lessPID orders ids naturally: digit runs compare numerically, so P2 sorts before P10.
func lessPID(a, b PID) bool { return comparePID(a, b) < 0 }

func comparePID(a, b PID) int {
	x, y := string(a), string(b)
	for x != "" && y != "" {
		if isDigit(x[0]) && isDigit(y[0]) {
			nx, ny := digitRun(x), digitRun(y)
			dx, dy := strings.TrimLeft(x[:nx], "0"), strings.TrimLeft(y[:ny], "0")
			if len(dx) != len(dy) {
				return sign(len(dx) - len(dy))
			}
			if c := strings.Compare(dx, dy); c != 0 {
				return c
			}
			x, y = x[nx:], y[ny:]
			continue
		}
		if x[0] != y[0] {
			return sign(int(x[0]) - int(y[0]))
		}
		x, y = x[1:], y[1:]
	}
	if c := sign(len(x) - len(y)); c != 0 {
		return c
	}
	// "P01" and "P1" compare equal above; fall back to byte order so the order stays total.
	return strings.Compare(string(a), string(b))
}

func digitRun(s string) int {
	n := 0
	for n < len(s) && isDigit(s[n]) {
		n++
	}
	return n
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}
