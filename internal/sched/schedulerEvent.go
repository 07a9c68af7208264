// internal/sched/schedulerEvent.go

package sched

import "sort"

// EventKind represents the type of scheduler event
type EventKind int

const (
	EventFinish EventKind = iota
	EventArrive
	EventPreempt
	EventIdle
	EventDispatch
)

// Event is recorded on every key action of a run.
type Event struct {
	Tick      int
	Kind      EventKind
	PID       PID
	Remaining int // remaining burst of PID right after the event
}

func (ek EventKind) String() string {
	switch ek {
	case EventIdle:
		return "Idle"
	case EventArrive:
		return "Arrive"
	case EventDispatch:
		return "Dispatch"
	case EventPreempt:
		return "Preempt"
	case EventFinish:
		return "Finish"
	default:
		return "Unknown"
	}
}

// mergeArrivals adds one Arrive event per process and orders the trace by tick.
// Within a tick the kind order is Finish, Arrive, Preempt, Idle, Dispatch.
func mergeArrivals(events []Event, processes []Process) []Event {
	out := make([]Event, 0, len(events)+len(processes))
	out = append(out, events...)
	for _, p := range processes {
		out = append(out, Event{Tick: p.arrival, Kind: EventArrive, PID: p.pid, Remaining: p.burst})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Tick != out[j].Tick {
			return out[i].Tick < out[j].Tick
		}
		if out[i].Kind != out[j].Kind {
			return out[i].Kind < out[j].Kind
		}
		if out[i].Kind == EventArrive {
			return lessPID(out[i].PID, out[j].PID)
		}
		return false
	})
	return out
}
