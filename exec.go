package kernel

// contextSize is the number of bytes Exec writes for a synthetic initial
// context: 32 general registers + 1 status register (all zero) plus a
// 2-byte program-counter word.
const contextSize = 35

// Exec creates a new process: it finds the first UNUSED slot (ascending
// index order), synthesizes an initial saved context on that slot's
// stack such that the first dispatch behaves as if the process had been
// preempted at its own entry point, and marks the slot READY.
//
// A nil program, or no free slot, returns Invalid; Exec never blocks and
// never invokes the active strategy. It is safe to call from inside a
// critical section or from another process.
func (s *Scheduler) Exec(program ProgramPointer, priority Priority) ProcessId {
	s.gate.EnterCritical(s.line, s.sink)
	defer s.gate.LeaveCritical(s.line, s.sink)

	if program == nil {
		return Invalid
	}

	var pid ProcessId = Invalid
	for i := ProcessId(0); i < ProcessCount; i++ {
		if s.table[i].State == Unused {
			pid = i
			break
		}
	}
	if pid == Invalid {
		return Invalid
	}

	b := bottom(pid)
	sp := b - contextSize

	for i := Address(1); i <= 33; i++ {
		stackRegion[sp+i] = 0
	}
	stackRegion[sp+34] = byte(trampolineAddress >> 8)
	stackRegion[b] = byte(trampolineAddress)

	s.table[pid] = Process{
		State:    Ready,
		Priority: priority,
		Program:  program,
		SP:       sp,
		Checksum: checksumWindow(pid, sp),
	}
	s.clearStrategyAccounting(pid)
	s.accounting.remaining[pid] = priority

	return pid
}
