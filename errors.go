package kernel

import "log"

// FatalKind distinguishes the core's fatal conditions (spec.md §7).
type FatalKind uint8

const (
	FatalGateOverflow FatalKind = iota
	FatalGateUnderflow
	FatalStackCorruption
)

func (k FatalKind) String() string {
	switch k {
	case FatalGateOverflow:
		return "critical section overflow"
	case FatalGateUnderflow:
		return "critical section underflow"
	case FatalStackCorruption:
		return "stack corruption"
	default:
		return "unknown fatal error"
	}
}

// Display is the two-line character display collaborator. The core only
// ever writes error text to it; normal process output and the
// interactive task-manager UI are layered on top, outside this package.
type Display interface {
	DisplayErrorLine(msg string)
}

// ButtonInput is the four-button collaborator used to confirm a fatal
// error or a suspect reset cause before the system continues or halts.
type ButtonInput interface {
	WaitForPress()
	WaitForRelease()
}

// SystemTimer is the free-running coarse millisecond counter used by
// higher layers; the core never reads it itself, and OSError does not
// take one.
type SystemTimer interface {
	Milliseconds() uint32
}

// FatalSink is invoked by the gate and the scheduler on conditions that
// spec.md §7 classifies as fatal: gate misuse and stack corruption.
type FatalSink interface {
	Fatal(kind FatalKind, msg string)
}

// OSError is the default FatalSink: it disables the scheduler timer,
// prints the message to the display, waits for the user to acknowledge
// on the button input, restores the global interrupt flag to its
// pre-call state, and returns without resetting the MCU. It does not
// distinguish fatal from non-fatal conditions itself — every call it
// receives through FatalSink.Fatal is, by definition, fatal; non-fatal
// confirmations go through ConfirmReset instead (reset.go).
type OSError struct {
	Line    InterruptLine
	Display Display
	Input   ButtonInput
}

// Fatal implements FatalSink.
func (o *OSError) Fatal(kind FatalKind, msg string) {
	log.Printf("[kernel] fatal: %s: %s", kind, msg)

	saved := o.Line.GlobalInterruptsEnabled()
	o.Line.DisarmScheduler()
	o.Line.SetGlobalInterrupts(false)

	o.Display.DisplayErrorLine(kind.String() + ": " + msg)
	o.Input.WaitForPress()
	o.Input.WaitForRelease()

	o.Line.SetGlobalInterrupts(saved)
}
