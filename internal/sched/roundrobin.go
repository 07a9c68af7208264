package sched

import "github.com/emirpasic/gods/queues/linkedlistqueue"

// runRoundRobin serves a FIFO queue, one slice of at most quantum ticks per turn.
// Jobs that arrived during a slice are queued ahead of the job whose slice just ended.
func runRoundRobin(processes []Process, quantum int) *runState {
	s := newRunState(len(processes))
	pending := newArrivals(processes)
	queue := linkedlistqueue.New()
	enqueue := func(j *Job) { queue.Enqueue(j) }

	for !pending.empty() || !queue.Empty() {
		pending.admit(s.t, enqueue)

		v, ok := queue.Dequeue()
		if !ok {
			s.idle()
			continue
		}
		j := v.(*Job)
		s.run(j, min(quantum, j.Remaining))

		pending.admit(s.t, enqueue)
		if !j.done() {
			queue.Enqueue(j)
		}
	}
	return s
}
