package sched

import (
	"fmt"
	"strings"
)

// Algorithm selects one of the supported scheduling disciplines.
type Algorithm int

const (
	FCFS       Algorithm = iota + 1 // first-come, first-served
	SJF                             // shortest job first, non-preemptive
	SRTF                            // shortest remaining time first, preemptive
	Priority                        // priority, non-preemptive
	RoundRobin                      // round-robin with a fixed quantum
)

// Algorithms lists every discipline in enumeration order.
func Algorithms() []Algorithm {
	return []Algorithm{FCFS, SJF, SRTF, Priority, RoundRobin}
}

func (a Algorithm) String() string {
	switch a {
	case FCFS:
		return "FCFS"
	case SJF:
		return "SJF"
	case SRTF:
		return "SRTF"
	case Priority:
		return "Priority"
	case RoundRobin:
		return "RR"
	default:
		return "Unknown"
	}
}

// Title is the long human readable name.
func (a Algorithm) Title() string {
	switch a {
	case FCFS:
		return "First-come, first-serve"
	case SJF:
		return "Shortest Job First (non-preemptive)"
	case SRTF:
		return "Shortest Remaining Time First (preemptive)"
	case Priority:
		return "Priority (non-preemptive)"
	case RoundRobin:
		return "Round-Robin (preemptive)"
	default:
		return "Unknown"
	}
}

// Key is the short lowercase token accepted by ParseAlgorithm.
func (a Algorithm) Key() string { return strings.ToLower(a.String()) }

// Preemptive reports whether a running process can be interrupted.
func (a Algorithm) Preemptive() bool { return a == SRTF || a == RoundRobin }

// ParseAlgorithm maps a user supplied name onto an Algorithm, ignoring case.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fcfs", "fifo":
		return FCFS, nil
	case "sjf":
		return SJF, nil
	case "srtf", "srt":
		return SRTF, nil
	case "priority", "prio":
		return Priority, nil
	case "rr", "round-robin", "roundrobin", "round_robin":
		return RoundRobin, nil
	}
	return 0, invalid(Idle, "algorithm", fmt.Sprintf("unknown algorithm %q", s))
}

func (a Algorithm) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

func (a *Algorithm) UnmarshalText(b []byte) error {
	v, err := ParseAlgorithm(string(b))
	if err != nil {
		return err
	}
	*a = v
	return nil
}
