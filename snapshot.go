package kernel

import (
	"encoding/binary"
	"errors"
)

// snapshotEntrySize is the number of bytes Snapshot writes per process
// slot: 1 byte state, 1 byte priority, 2 bytes SP, 1 byte checksum.
const snapshotEntrySize = 5

// SnapshotSize is the total number of bytes Snapshot writes: one header
// byte (current pid) plus snapshotEntrySize per slot. Mirrors the
// teacher's fixed-layout Serialize/SerializeSize pair (serialize.go),
// generalized from "one CPU's registers" to "one process table."
const SnapshotSize = 1 + ProcessCount*snapshotEntrySize

// Snapshot writes a debug dump of the process table into buf, which must
// be at least SnapshotSize bytes. Used by the task-manager UI to read
// table state from outside a critical section without holding the gate
// open for the length of a render pass. Bus/program pointers are not
// included, the same way the teacher's Serialize omits its Bus.
func (s *Scheduler) Snapshot(buf []byte) error {
	if len(buf) < SnapshotSize {
		return errors.New("kernel: snapshot buffer too small")
	}

	buf[0] = s.current
	off := 1
	for i := 0; i < ProcessCount; i++ {
		p := &s.table[i]
		buf[off] = byte(p.State)
		buf[off+1] = p.Priority
		binary.BigEndian.PutUint16(buf[off+2:], p.SP)
		buf[off+4] = p.Checksum
		off += snapshotEntrySize
	}
	return nil
}
