package kernel

import "testing"

// TestExecAllSlotsFull covers spec.md §8 scenario 1: with every slot
// READY, Exec returns Invalid; zeroing all slots and calling Exec eight
// times returns 0..7 in order; freeing slot 2 makes the next Exec reuse
// it.
func TestExecAllSlotsFull(t *testing.T) {
	s, _, sink := newTestScheduler()

	for i := range s.table {
		s.table[i].State = Ready
	}
	depthBefore := s.gate.Depth()
	if got := s.Exec(noopProgram, 2); got != Invalid {
		t.Fatalf("Exec on full table = %d, want Invalid", got)
	}
	if s.gate.Depth() != depthBefore {
		t.Fatalf("gate depth changed across a failing Exec: %d -> %d", depthBefore, s.gate.Depth())
	}
	if len(sink.calls) != 0 {
		t.Fatalf("unexpected fatal calls: %v", sink.calls)
	}

	for i := range s.table {
		s.table[i] = Process{}
	}
	for want := ProcessId(0); want < ProcessCount; want++ {
		got := s.Exec(noopProgram, 2)
		if got != want {
			t.Fatalf("Exec #%d = %d, want %d", want, got, want)
		}
	}

	s.table[2] = Process{}
	if got := s.Exec(noopProgram, 2); got != 2 {
		t.Fatalf("Exec after freeing slot 2 = %d, want 2", got)
	}
}

// TestExecNilProgram covers the nil-program failure path.
func TestExecNilProgram(t *testing.T) {
	s, _, _ := newTestScheduler()
	depthBefore := s.gate.Depth()
	if got := s.Exec(nil, 2); got != Invalid {
		t.Fatalf("Exec(nil, _) = %d, want Invalid", got)
	}
	if s.gate.Depth() != depthBefore {
		t.Fatalf("gate depth changed across a nil-program Exec: %d -> %d", depthBefore, s.gate.Depth())
	}
}

// TestExecStackLayout covers spec.md §8 scenario 2: the synthesized
// initial context's exact byte layout.
func TestExecStackLayout(t *testing.T) {
	s, _, _ := newTestScheduler()

	var infiniteLoop ProgramPointer = func() {}
	got := s.Exec(infiniteLoop, 10)
	if got != 0 {
		t.Fatalf("Exec into empty table = %d, want 0", got)
	}

	p := s.table[0]
	if p.State != Ready {
		t.Errorf("state = %v, want READY", p.State)
	}
	if p.Priority != 10 {
		t.Errorf("priority = %d, want 10", p.Priority)
	}
	wantSP := bottom(0) - 35
	if p.SP != wantSP {
		t.Errorf("sp = %d, want bottom(0)-35 = %d", p.SP, wantSP)
	}

	sp := p.SP
	b := bottom(0)
	if b-sp != 35 {
		t.Fatalf("bottom-sp = %d, want 35", b-sp)
	}
	for i := Address(1); i <= 33; i++ {
		if got := stackRegion[sp+i]; got != 0 {
			t.Errorf("stackRegion[sp+%d] = %#02x, want 0", i, got)
		}
	}
	wantHigh := byte(trampolineAddress >> 8)
	wantLow := byte(trampolineAddress)
	if got := stackRegion[sp+34]; got != wantHigh {
		t.Errorf("stackRegion[sp+34] = %#02x, want %#02x (trampoline high byte)", got, wantHigh)
	}
	if got := stackRegion[b]; got != wantLow {
		t.Errorf("stackRegion[sp+35] = %#02x, want %#02x (trampoline low byte)", got, wantLow)
	}

	wantChecksum := fold(stackRegion[sp : b+1])
	if p.Checksum != wantChecksum {
		t.Errorf("checksum = %#02x, want %#02x", p.Checksum, wantChecksum)
	}
}

// TestExecReuseAfterTermination covers the round-trip/idempotence
// property: Exec into a slot vacated by termination succeeds and reuses
// the lowest free index.
func TestExecReuseAfterTermination(t *testing.T) {
	s, _, _ := newTestScheduler()

	first := s.Exec(noopProgram, 2)
	second := s.Exec(noopProgram, 2)
	if first != 0 || second != 1 {
		t.Fatalf("got pids %d, %d, want 0, 1", first, second)
	}

	s.table[first] = Process{} // simulate voluntary termination
	third := s.Exec(noopProgram, 3)
	if third != first {
		t.Fatalf("Exec after termination = %d, want reused slot %d", third, first)
	}
}

// TestExecNeverOverwritesNeighboringWindows checks that Exec never
// touches bytes outside the chosen slot's stack window.
func TestExecNeverOverwritesNeighboringWindows(t *testing.T) {
	s, _, _ := newTestScheduler()

	for i := range stackRegion {
		stackRegion[i] = 0xAA
	}
	s.Exec(noopProgram, 2)

	lo, hi := top(0), bottom(0)
	for addr := Address(0); ; addr++ {
		if addr < lo || addr > hi {
			if stackRegion[addr] != 0xAA {
				t.Fatalf("byte at %d outside slot 0's window was modified", addr)
			}
		}
		if addr == regionTop {
			break
		}
	}
}
