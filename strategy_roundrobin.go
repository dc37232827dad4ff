package kernel

// roundRobinNext implements the priority-weighted round-robin strategy.
// Each runnable non-idle slot holds a remaining time slice, initialized
// to its priority when the slot is exec'd. Each call consumes one unit
// of the current slot's remaining slice; once a slot's slice is
// exhausted (or it is no longer runnable), selection advances to the
// next runnable slot in ascending-index order and that slot's slice is
// reset to its priority.
func roundRobinNext(t *Table, acc *strategyState, current ProcessId) ProcessId {
	if current == Idle || !IsRunnable(&t[current]) || acc.remaining[current] == 0 {
		next := nextRunnableAscendingAfter(t, current)
		if next == Idle {
			return Idle
		}
		acc.remaining[next] = t[next].Priority
		current = next
	}
	if acc.remaining[current] > 0 {
		acc.remaining[current]--
	}
	return current
}
