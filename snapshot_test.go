package kernel

import (
	"encoding/binary"
	"testing"
)

// TestSnapshotBufferTooSmall covers the guard clause.
func TestSnapshotBufferTooSmall(t *testing.T) {
	s, _, _ := newTestScheduler()
	buf := make([]byte, SnapshotSize-1)
	if err := s.Snapshot(buf); err == nil {
		t.Fatal("Snapshot with undersized buffer returned nil error")
	}
}

// TestSnapshotByteLayout covers Snapshot's exact wire layout: one header
// byte (current pid), then snapshotEntrySize bytes per slot in ascending
// pid order — state, priority, SP (big-endian uint16), checksum.
func TestSnapshotByteLayout(t *testing.T) {
	s, _, _ := newTestScheduler()

	first := s.Exec(noopProgram, 5)
	second := s.Exec(noopProgram, 9)
	if first != 0 || second != 1 {
		t.Fatalf("setup: got pids %d, %d, want 0, 1", first, second)
	}
	s.current = second
	s.table[second].State = Running

	buf := make([]byte, SnapshotSize)
	if err := s.Snapshot(buf); err != nil {
		t.Fatalf("Snapshot: %v", err)
	}

	if buf[0] != second {
		t.Fatalf("header byte = %d, want current pid %d", buf[0], second)
	}

	for pid := ProcessId(0); pid < ProcessCount; pid++ {
		off := 1 + int(pid)*snapshotEntrySize
		want := s.table[pid]

		if got := ProcessState(buf[off]); got != want.State {
			t.Errorf("slot %d state = %v, want %v", pid, got, want.State)
		}
		if got := buf[off+1]; got != want.Priority {
			t.Errorf("slot %d priority = %d, want %d", pid, got, want.Priority)
		}
		if got := binary.BigEndian.Uint16(buf[off+2:]); got != uint16(want.SP) {
			t.Errorf("slot %d sp = %#04x, want %#04x", pid, got, want.SP)
		}
		if got := buf[off+4]; got != want.Checksum {
			t.Errorf("slot %d checksum = %#02x, want %#02x", pid, got, want.Checksum)
		}
	}
}

// TestSnapshotSizeMatchesLayout guards SnapshotSize against drifting out
// of sync with the per-slot layout Snapshot actually writes.
func TestSnapshotSizeMatchesLayout(t *testing.T) {
	if want := 1 + ProcessCount*5; SnapshotSize != want {
		t.Fatalf("SnapshotSize = %d, want %d", SnapshotSize, want)
	}
}
