package kernel

// saturatingAddU8 adds b to a, clamping at 0xFF instead of wrapping.
func saturatingAddU8(a, b uint8) uint8 {
	sum := uint16(a) + uint16(b)
	if sum > 0xFF {
		return 0xFF
	}
	return uint8(sum)
}

// inactiveAgingNext implements the InactiveAging strategy. Every
// runnable non-idle slot except the previously-chosen one has its age
// bumped by its own priority (saturating at 0xFF). The slot with the
// largest (age, priority) pair wins ties by lowest slot index, since the
// scan runs in ascending order and only replaces the leader on a strict
// improvement. The winner's age resets to its priority.
func inactiveAgingNext(t *Table, acc *strategyState, current ProcessId) ProcessId {
	for i := ProcessId(1); i < ProcessCount; i++ {
		if i == current {
			continue
		}
		if runnableNonIdle(t, i) {
			acc.age[i] = saturatingAddU8(acc.age[i], t[i].Priority)
		}
	}

	best := Idle
	for i := ProcessId(1); i < ProcessCount; i++ {
		if !runnableNonIdle(t, i) {
			continue
		}
		if best == Idle {
			best = i
			continue
		}
		if acc.age[i] > acc.age[best] {
			best = i
		} else if acc.age[i] == acc.age[best] && t[i].Priority > t[best].Priority {
			best = i
		}
	}
	if best == Idle {
		return Idle
	}
	acc.age[best] = t[best].Priority
	return best
}
