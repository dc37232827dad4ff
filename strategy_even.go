package kernel

// evenNext implements the Even strategy: round through the non-idle
// slots in strictly ascending order, wrapping, picking the next runnable
// slot after current. No private accounting is kept.
func evenNext(t *Table, current ProcessId) ProcessId {
	return nextRunnableAscendingAfter(t, current)
}
