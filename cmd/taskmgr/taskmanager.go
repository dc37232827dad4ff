package main

import (
	"context"
	"encoding/binary"
	"fmt"
	"log"

	"github.com/avrkern/taskkernel"
	"github.com/avrkern/taskkernel/internal/uibutton"
)

// navigator is the part of the display backends' API the task manager
// needs beyond kernel.Display/kernel.ButtonInput: somewhere to show
// arbitrary two-line state, and a feed of identified button presses to
// drive it (kernel.ButtonInput only ever says "a button was pressed").
type navigator interface {
	SetLines(top, bottom string)
	Nav() <-chan uibutton.Button
}

// slotSnapshot is one process slot decoded out of a kernel.Scheduler
// Snapshot, alongside the header's current-pid byte.
type slotSnapshot struct {
	current  kernel.ProcessId
	state    kernel.ProcessState
	priority kernel.Priority
	sp       uint16
	checksum byte
}

// decodeSnapshotSlot reads slot pid out of a buffer filled by
// Scheduler.Snapshot: 1 header byte, then snapshotEntrySize (5) bytes
// per slot in ascending pid order.
func decodeSnapshotSlot(buf []byte, pid kernel.ProcessId) slotSnapshot {
	const entrySize = 5
	off := 1 + int(pid)*entrySize
	return slotSnapshot{
		current:  buf[0],
		state:    kernel.ProcessState(buf[off]),
		priority: buf[off+1],
		sp:       binary.BigEndian.Uint16(buf[off+2:]),
		checksum: buf[off+4],
	}
}

// runTaskManager is the interactive task-manager UI (spec.md §6): Up and
// Down move a selection cursor across the process table, Select kills
// the selected process (Idle is immune, see Scheduler.Kill), Back just
// redraws. It runs until ctx is cancelled.
func runTaskManager(ctx context.Context, sched *kernel.Scheduler, nav navigator) error {
	buf := make([]byte, kernel.SnapshotSize)
	var selected kernel.ProcessId

	render := func() {
		if err := sched.Snapshot(buf); err != nil {
			log.Printf("taskmgr: snapshot: %v", err)
			return
		}
		slot := decodeSnapshotSlot(buf, selected)
		top := fmt.Sprintf("pid%d %s", selected, slot.state)
		bottom := fmt.Sprintf("pr%d sp%04x cur%d", slot.priority, slot.sp, slot.current)
		nav.SetLines(top, bottom)
		if s, ok := nav.(fmt.Stringer); ok {
			log.Printf("taskmgr: panel now %s", s.String())
		}
	}

	render()
	for {
		select {
		case <-ctx.Done():
			return nil
		case btn, ok := <-nav.Nav():
			if !ok {
				return nil
			}
			switch btn {
			case uibutton.Up:
				selected = (selected + 1) % kernel.ProcessCount
			case uibutton.Down:
				selected = (selected + kernel.ProcessCount - 1) % kernel.ProcessCount
			case uibutton.Select:
				if selected != kernel.Idle {
					sched.Kill(selected)
				}
			case uibutton.Back:
				// redraw only; no state change.
			}
			render()
		}
	}
}
