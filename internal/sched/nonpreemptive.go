package sched

// runNonPreemptive drives SJF (primary = burst) and Priority (primary = priority).
// Whenever the CPU is free the arrived job with the smallest (primary, arrival, pid)
// runs to completion. With nothing arrived the clock advances by one Idle unit.
func runNonPreemptive(processes []Process, primary func(*Job) int) *runState {
	s := newRunState(len(processes))
	pending := newArrivals(processes)
	ready := newReadySet(primary)

	for !pending.empty() || !ready.empty() {
		pending.admit(s.t, ready.push)
		j := ready.pop()
		if j == nil {
			s.idle()
			continue
		}
		s.run(j, j.Remaining)
	}
	return s
}
