package kernel

import "reflect"

// addressOf derives a stable 16-bit "address" for a ProgramPointer. Real
// AVR function pointers are 16-bit word addresses into flash; a Go
// function value has no such address, so its process identity is taken
// from the low 16 bits of the runtime function pointer, the same idiom
// used for opcode-handler dispatch by pointer identity elsewhere in the
// retrieved corpus (reflect.ValueOf(fn).Pointer()).
func addressOf(p ProgramPointer) Address {
	return Address(reflect.ValueOf(p).Pointer())
}

// trampoline is the dispatcher trampoline (spec.md §4.3): the address
// exec synthesizes as the initial program counter for every newly
// created process. On the first dispatch, restoring this "PC" into the
// hardware and returning from the ISR lands here; the trampoline
// unconditionally enables interrupts and jumps to the process's real
// entry point. This package always uses the trampoline mode (never the
// "direct program address" mode spec.md §4.3 allows as an alternative),
// so checksum continuity across the first dispatch is never ambiguous.
//
// dispatchHook is the hook that performs "unconditionally enable interrupts,
// then jump to program" for the process currently being first-dispatched.
// It is nil until a harness installs it via SetDispatchHook; the core's
// own tests exercise exec and Tick without ever needing it to be set,
// since spec.md's testable properties never assert on a process's actual
// execution (see DESIGN.md, Open Question 3).
var dispatchHook func(program ProgramPointer)

func trampoline() {
	if dispatchHook != nil {
		dispatchHook(currentDispatchTarget)
	}
}

// currentDispatchTarget is set immediately before the synthesized PC is
// "restored" on a process's first dispatch, mirroring how the trampoline
// would, on real hardware, already know its target from a register
// loaded by exec. It is written only by DispatchProcess, which does not
// enter a critical section.
var currentDispatchTarget ProgramPointer

// trampolineAddress is resolved once at init and used as the PC word
// synthesized by Exec for every new process.
var trampolineAddress = addressOf(trampoline)

// SetDispatchHook installs the callback the trampoline invokes on a
// process's first dispatch. Demo/harness code (e.g. cmd/taskmgr) uses
// this to hand the CPU to a real Go goroutine standing in for the
// process body; the scheduler core itself never calls it.
func SetDispatchHook(h func(program ProgramPointer)) {
	dispatchHook = h
}

// DispatchProcess simulates the hardware event of restoring pid's
// synthesized program counter and landing at the trampoline: it points
// currentDispatchTarget at pid's program and invokes the trampoline.
// Tick itself never calls this (see DESIGN.md, Open Question 3); it
// exists for a harness that wants to hand a newly created process's
// body to a real goroutine the first time that slot is scheduled.
func (s *Scheduler) DispatchProcess(pid ProcessId) {
	currentDispatchTarget = s.table[pid].Program
	trampoline()
}
