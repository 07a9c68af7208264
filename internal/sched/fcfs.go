package sched

// runFCFS serves jobs strictly in (arrival, pid) order. Each job runs to completion;
// gaps before an arrival are filled with Idle units.
func runFCFS(processes []Process) *runState {
	s := newRunState(len(processes))
	pending := newArrivals(processes)
	for j := pending.pop(); j != nil; j = pending.pop() {
		for s.t < j.arrival {
			s.idle()
		}
		s.run(j, j.Remaining)
	}
	return s
}
