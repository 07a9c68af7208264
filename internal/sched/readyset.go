package sched

import (
	"sort"

	"github.com/emirpasic/gods/trees/redblacktree"
)

// readySet keeps arrived jobs ordered by (primary, arrival, pid).
// The primary key is sampled when a job is pushed, so a job must be
// popped before its key changes.
type readySet struct {
	rbt     *redblacktree.Tree
	primary func(*Job) int
}

func newReadySet(primary func(*Job) int) *readySet {
	return &readySet{rbt: redblacktree.NewWith(cmp), primary: primary}
}

func (r *readySet) push(j *Job) {
	r.rbt.Put(nodeKey{primary: r.primary(j), arrival: j.arrival, pid: j.pid}, j)
}

// peek returns the best job without removing it, or nil.
func (r *readySet) peek() *Job {
	node := r.rbt.Left()
	if node == nil {
		return nil
	}
	return node.Value.(*Job)
}

func (r *readySet) pop() *Job {
	node := r.rbt.Left()
	if node == nil {
		return nil
	}
	r.rbt.Remove(node.Key)
	return node.Value.(*Job)
}

func (r *readySet) empty() bool { return r.rbt.Empty() }

// nodeKey is used as a key in the red-black tree.
type nodeKey struct {
	primary int
	arrival int
	pid     PID
}

// cmp implements the Comparator for red-black tree ordering.
func cmp(a, b any) int {
	ka, kb := a.(nodeKey), b.(nodeKey)
	switch {
	case ka.primary < kb.primary:
		return -1
	case ka.primary > kb.primary:
		return 1
	case ka.arrival < kb.arrival:
		return -1
	case ka.arrival > kb.arrival:
		return 1
	default:
		return comparePID(ka.pid, kb.pid)
	}
}

// arrivals hands out cloned jobs in (arrival, pid) order as the clock reaches them.
type arrivals struct {
	jobs []*Job
	next int
}

func newArrivals(processes []Process) *arrivals {
	jobs := make([]*Job, len(processes))
	for i, p := range processes {
		jobs[i] = p.Clone()
	}
	sort.SliceStable(jobs, func(i, j int) bool {
		if jobs[i].arrival != jobs[j].arrival {
			return jobs[i].arrival < jobs[j].arrival
		}
		return lessPID(jobs[i].pid, jobs[j].pid)
	})
	return &arrivals{jobs: jobs}
}

// admit passes every job with arrival <= t to fn, in order.
func (a *arrivals) admit(t int, fn func(*Job)) {
	for a.next < len(a.jobs) && a.jobs[a.next].arrival <= t {
		fn(a.jobs[a.next])
		a.next++
	}
}

// pop returns the next job regardless of the clock, or nil.
func (a *arrivals) pop() *Job {
	if a.next == len(a.jobs) {
		return nil
	}
	j := a.jobs[a.next]
	a.next++
	return j
}

func (a *arrivals) empty() bool { return a.next == len(a.jobs) }
