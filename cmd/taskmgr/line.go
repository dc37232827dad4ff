package main

import "sync/atomic"

// line is the demo kernel.InterruptLine: in place of a real AVR
// compare-match timer and SREG, it's a flag the tick goroutine checks
// before calling Scheduler.Tick, plus a bool standing in for the global
// interrupt-enable bit. Both are accessed from the gate (on whichever
// goroutine holds a critical section) and the tick goroutine, so both
// are atomic.
type line struct {
	armed   atomic.Bool
	globals atomic.Bool
}

func newLine() *line {
	l := &line{}
	l.globals.Store(true)
	return l
}

func (l *line) DisarmScheduler()              { l.armed.Store(false) }
func (l *line) ArmScheduler()                 { l.armed.Store(true) }
func (l *line) GlobalInterruptsEnabled() bool { return l.globals.Load() }
func (l *line) SetGlobalInterrupts(v bool)    { l.globals.Store(v) }
func (l *line) schedulerArmed() bool          { return l.armed.Load() }
