// Package kernel implements a small preemptive multitasking kernel for an
// 8-bit AVR-class microcontroller: a static process table, exec-style
// process creation, a timer-driven scheduler ISR, five pluggable
// scheduling strategies, a nested critical-section gate, and a
// stack-integrity checksum.
//
// The target machine has no MMU, no dynamic memory, and a hard cap of
// eight process slots (including the idle process at slot 0). Everything
// here is backed by static storage; nothing allocates on the heap after
// package initialization.
package kernel

// ProcessId identifies a process-table slot, 0..ProcessCount-1. Slot 0 is
// always the idle process.
type ProcessId = uint8

// Invalid is returned by Exec on failure: no process, no slot.
const Invalid ProcessId = 255

// Idle is the reserved process id of the idle process.
const Idle ProcessId = 0

// Priority is higher-is-more-urgent. DefaultPriority is used where the
// caller does not care.
type Priority = uint8

// DefaultPriority is the priority assigned when a caller has no opinion.
const DefaultPriority Priority = 2

// ProcessState is the lifecycle state of a process-table slot.
type ProcessState uint8

const (
	Unused ProcessState = iota
	Ready
	Running
	Blocked
)

func (s ProcessState) String() string {
	switch s {
	case Unused:
		return "UNUSED"
	case Ready:
		return "READY"
	case Running:
		return "RUNNING"
	case Blocked:
		return "BLOCKED"
	default:
		return "INVALID"
	}
}

// ProgramPointer is a zero-argument, never-returning process entry point.
type ProgramPointer = func()

// Process is one process-table descriptor.
type Process struct {
	State    ProcessState
	Priority Priority
	Program  ProgramPointer
	SP       Address
	Checksum byte
}

// Table is the static process table: ProcessCount descriptors, slot 0
// reserved for idle.
type Table [ProcessCount]Process

// IsRunnable reports whether a descriptor is schedulable: READY or
// RUNNING. BLOCKED and UNUSED are not runnable.
func IsRunnable(p *Process) bool {
	return p.State == Ready || p.State == Running
}

// GetSlot returns an unchecked pointer into the table at pid. Callers
// index with a ProcessId they already know is in range; out-of-range
// access panics, matching the "unchecked index" contract in spec.md §6.
func (t *Table) GetSlot(pid ProcessId) *Process {
	return &t[pid]
}
