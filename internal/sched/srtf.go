package sched

// runSRTF re-evaluates the choice every tick. The running job keeps the CPU unless a
// ready job has strictly less remaining time; equal remaining time never preempts.
func runSRTF(processes []Process) *runState {
	s := newRunState(len(processes))
	pending := newArrivals(processes)
	ready := newReadySet(func(j *Job) int { return j.Remaining })

	var running *Job
	for running != nil || !pending.empty() || !ready.empty() {
		pending.admit(s.t, ready.push)

		switch next := ready.peek(); {
		case running == nil:
			running = ready.pop()
		case next != nil && next.Remaining < running.Remaining:
			ready.pop()
			// running is out of the tree while it runs, so its key is current here
			ready.push(running)
			running = next
		}

		if running == nil {
			s.idle()
			continue
		}
		s.run(running, 1)
		if running.done() {
			running = nil
		}
	}
	return s
}
