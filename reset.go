package kernel

// ResetSource names why the MCU is starting up, as examined by the
// boot/reset-cause inspection that sits outside this package (spec.md
// §2's "boot/reset examination"); the core only needs to know whether
// the source was expected.
type ResetSource uint8

const (
	ResetPowerOn ResetSource = iota
	ResetExternal
	ResetWatchdog
	ResetBrownOut
	ResetUnknown
)

func (r ResetSource) String() string {
	switch r {
	case ResetPowerOn:
		return "power-on"
	case ResetExternal:
		return "external"
	case ResetWatchdog:
		return "watchdog"
	case ResetBrownOut:
		return "brown-out"
	default:
		return "unknown"
	}
}

// ConfirmReset handles the one non-fatal error path in spec.md §7: an
// invalid/unexpected reset source detected at boot. It reports the
// suspect cause and blocks for a button press before returning whether
// boot should continue. Unlike FatalSink.Fatal, it never touches the
// scheduler timer or the global interrupt flag — at the point it runs,
// the scheduler has not been armed yet.
func ConfirmReset(source ResetSource, display Display, input ButtonInput) bool {
	if source != ResetPowerOn && source != ResetExternal {
		display.DisplayErrorLine("unexpected reset: " + source.String())
		input.WaitForPress()
		input.WaitForRelease()
	}
	return true
}
