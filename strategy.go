package kernel

import "github.com/avrkern/taskkernel/internal/prng"

// StrategyKind is the tag of one of the five pluggable scheduling
// strategies. Dispatch is a switch over this closed set rather than an
// interface, since the set is fixed and dispatch happens inside the
// timer ISR where indirect calls are undesirable.
type StrategyKind uint8

const (
	Even StrategyKind = iota
	Random
	RoundRobin
	InactiveAging
	RunToCompletion
)

func (k StrategyKind) String() string {
	switch k {
	case Even:
		return "even"
	case Random:
		return "random"
	case RoundRobin:
		return "round-robin"
	case InactiveAging:
		return "inactive-aging"
	case RunToCompletion:
		return "run-to-completion"
	default:
		return "unknown"
	}
}

// strategyState is the private accounting shared by all five strategies,
// keyed by slot index. Exec seeds remaining for every new slot whichever
// strategy is active; otherwise only the active strategy's fields change.
type strategyState struct {
	remaining [ProcessCount]uint8 // RoundRobin: time slice remaining
	age       [ProcessCount]uint8 // InactiveAging: age
	rng       prng.LCG            // Random: deterministic source, seeded to 1
}

func (s *strategyState) reset() {
	*s = strategyState{}
	s.rng.Reset()
}

// clearSlot clears a single slot's accounting across all strategies, so
// a later tenant of the slot never inherits a previous tenant's age or
// time slice.
func (s *strategyState) clearSlot(pid ProcessId) {
	s.remaining[pid] = 0
	s.age[pid] = 0
}

// runnableNonIdle reports whether slot pid (never Idle) is runnable.
func runnableNonIdle(t *Table, pid ProcessId) bool {
	return pid != Idle && IsRunnable(&t[pid])
}

// nextRunnableAscendingAfter scans the non-idle slots (1..ProcessCount-1)
// in ascending order, wrapping, starting just after current, and returns
// the first runnable one found. Returns Idle if none are runnable.
func nextRunnableAscendingAfter(t *Table, current ProcessId) ProcessId {
	const span = ProcessCount - 1
	for i := 1; i <= span; i++ {
		idx := ((int(current)-1+i)%span + span) % span
		cand := ProcessId(idx + 1)
		if runnableNonIdle(t, cand) {
			return cand
		}
	}
	return Idle
}

// lowestRunnableNonIdle returns the lowest-index runnable non-idle slot,
// or Idle if none.
func lowestRunnableNonIdle(t *Table) ProcessId {
	for i := ProcessId(1); i < ProcessCount; i++ {
		if runnableNonIdle(t, i) {
			return i
		}
	}
	return Idle
}

// selectNext dispatches to the active strategy. Strategies are pure with
// respect to the table: they read it but never mutate it. They may
// freely read and update their own private accounting.
func (s *Scheduler) selectNext(current ProcessId) ProcessId {
	switch s.strategy {
	case Even:
		return evenNext(&s.table, current)
	case Random:
		return randomNext(&s.table, &s.accounting)
	case RoundRobin:
		return roundRobinNext(&s.table, &s.accounting, current)
	case InactiveAging:
		return inactiveAgingNext(&s.table, &s.accounting, current)
	case RunToCompletion:
		return runToCompletionNext(&s.table, current)
	default:
		return Idle
	}
}

// SetStrategy switches the active strategy and resets its accounting to
// strategy-defined initial values.
func (s *Scheduler) SetStrategy(kind StrategyKind) {
	s.strategy = kind
	s.accounting.reset()
}

// GetStrategy returns the active strategy.
func (s *Scheduler) GetStrategy() StrategyKind {
	return s.strategy
}

// clearStrategyAccounting clears one slot's accounting; called whenever
// a slot changes tenant (Exec, or a process terminating).
func (s *Scheduler) clearStrategyAccounting(pid ProcessId) {
	s.accounting.clearSlot(pid)
}
