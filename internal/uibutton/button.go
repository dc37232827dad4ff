// Package uibutton defines the four-button identity shared by the ebiten
// and terminal display backends. kernel.ButtonInput only ever needs "a
// button was pressed" (boot confirmation, fatal-halt prompts); the
// task-manager UI in cmd/taskmgr needs to know *which* one, to move a
// selection and act on it. Factoring the type out here lets both
// backends and the task manager agree on it without cmd/taskmgr linking
// whichever backend it isn't using.
package uibutton

// Button identifies one of the four physical buttons (spec.md §6's
// "four-button input driver").
type Button int

const (
	Select Button = iota
	Up
	Down
	Back
)

func (b Button) String() string {
	switch b {
	case Select:
		return "SELECT"
	case Up:
		return "UP"
	case Down:
		return "DOWN"
	case Back:
		return "BACK"
	default:
		return "UNKNOWN"
	}
}
