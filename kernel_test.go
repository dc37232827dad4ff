package kernel

// fakeLine is a test InterruptLine: it just records arm/disarm calls and
// holds the global interrupt flag, mirroring the teacher's testBus (a
// small in-memory stand-in for the real hardware collaborator).
type fakeLine struct {
	armed   bool
	globals bool
}

func newFakeLine(globalsEnabled bool) *fakeLine {
	return &fakeLine{armed: true, globals: globalsEnabled}
}

func (f *fakeLine) DisarmScheduler()              { f.armed = false }
func (f *fakeLine) ArmScheduler()                 { f.armed = true }
func (f *fakeLine) GlobalInterruptsEnabled() bool { return f.globals }
func (f *fakeLine) SetGlobalInterrupts(v bool)    { f.globals = v }

// fakeSink is a test FatalSink: it records every fatal call instead of
// blocking on a display/button prompt.
type fakeSink struct {
	calls []fatalCall
}

type fatalCall struct {
	kind FatalKind
	msg  string
}

func (f *fakeSink) Fatal(kind FatalKind, msg string) {
	f.calls = append(f.calls, fatalCall{kind, msg})
}

// newTestScheduler returns a Scheduler wired to fresh fakes, with a
// clean autostart registry and a clean process table (no InitScheduler
// call — most tests want to drive Exec/Tick directly against an empty
// table rather than the idle+autostart boot sequence).
func newTestScheduler() (*Scheduler, *fakeLine, *fakeSink) {
	resetAutostartRegistry()
	line := newFakeLine(true)
	sink := &fakeSink{}
	return NewScheduler(line, sink), line, sink
}

func noopProgram() {}
