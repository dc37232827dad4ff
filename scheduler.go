package kernel

// Scheduler owns the process table, the current-process id, the
// critical-section gate, and the active strategy's accounting. It is
// the single object through which the ISR, Exec, and the external
// interfaces (spec.md §6) reach all of that process-wide mutable state.
type Scheduler struct {
	table      Table
	current    ProcessId
	gate       Gate
	strategy   StrategyKind
	accounting strategyState

	line InterruptLine
	sink FatalSink
}

// NewScheduler constructs a Scheduler wired to the given hardware
// collaborators. It does not populate the process table; call
// InitScheduler to do that.
func NewScheduler(line InterruptLine, sink FatalSink) *Scheduler {
	s := &Scheduler{line: line, sink: sink, strategy: Even}
	s.accounting.reset()
	return s
}

// CurrentPID returns the id of the process currently marked RUNNING.
func (s *Scheduler) CurrentPID() ProcessId {
	return s.current
}

// GetSlot returns an unchecked pointer into the process table.
func (s *Scheduler) GetSlot(pid ProcessId) *Process {
	return s.table.GetSlot(pid)
}

// EnterCritical begins a (possibly nested) critical section, masking
// the scheduler timer interrupt.
func (s *Scheduler) EnterCritical() {
	s.gate.EnterCritical(s.line, s.sink)
}

// LeaveCritical ends a (possibly nested) critical section.
func (s *Scheduler) LeaveCritical() {
	s.gate.LeaveCritical(s.line, s.sink)
}

// StackChecksum returns pid's stored stack checksum.
func (s *Scheduler) StackChecksum(pid ProcessId) byte {
	return s.table.StackChecksum(pid)
}

// Kill tears down pid: the slot goes back to UNUSED and its strategy
// accounting is cleared, the same bookkeeping Exec performs when a slot
// is first claimed, run in reverse. Killing Idle is a no-op; the idle
// process is not allowed to disappear. Killing the running process
// leaves current pointed at a dead slot until the next Tick picks a
// replacement — callers that kill the running process should not expect
// it to keep making progress.
func (s *Scheduler) Kill(pid ProcessId) {
	s.gate.EnterCritical(s.line, s.sink)
	defer s.gate.LeaveCritical(s.line, s.sink)

	if pid == Idle {
		return
	}
	s.table[pid] = Process{}
	s.clearStrategyAccounting(pid)
}

// idleLoop is slot 0's program. It must never return.
func idleLoop() {
	for {
	}
}

// InitScheduler builds the process table: idle at slot 0, then every
// autostart program in registration order. It must be called once,
// before the scheduler timer is armed.
func (s *Scheduler) InitScheduler() {
	s.table = Table{}
	s.accounting.reset()
	s.current = Idle

	idlePid := s.Exec(idleLoop, DefaultPriority)
	if idlePid != Idle {
		panic("kernel: idle process did not land in slot 0")
	}
	s.table[Idle].State = Running

	for _, entry := range autostartRegistry {
		if pid := s.Exec(entry.program, entry.priority); pid == Invalid {
			// spec.md has no room left in the table for more than
			// ProcessCount-1 autostart programs; silently dropping
			// the overflow matches Exec's own "no free slot" policy
			// rather than panicking the whole boot sequence.
			continue
		}
	}
}

// Tick is the scheduler ISR: the periodic compare-match timer handler
// that preempts the running process and hands the CPU to whichever
// process the active strategy selects next.
//
// Ordering (spec.md §4.2): context save strictly precedes strategy
// invocation; strategy invocation strictly precedes checksum
// verification of the chosen process; verification strictly precedes
// context restore.
func (s *Scheduler) Tick() {
	running := s.table.GetSlot(s.current)
	running.Checksum = checksumWindow(s.current, running.SP)
	if running.State == Running {
		running.State = Ready
	}

	next := s.selectNext(s.current)

	incoming := s.table.GetSlot(next)
	if checksumWindow(next, incoming.SP) != incoming.Checksum {
		s.sink.Fatal(FatalStackCorruption, "stack checksum mismatch at restore")
		return
	}

	incoming.State = Running
	s.current = next
}
