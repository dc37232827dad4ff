package prng

import "testing"

// TestNewSeedsToOne checks the spec-mandated reset seed.
func TestNewSeedsToOne(t *testing.T) {
	g := New()
	if g.seed != 1 {
		t.Fatalf("New() seed = %d, want 1", g.seed)
	}
}

// TestResetReturnsToSeed checks that Reset reproduces the exact sequence
// a fresh New() would produce.
func TestResetReturnsToSeed(t *testing.T) {
	a := New()
	firstA := a.next()
	secondA := a.next()

	b := New()
	b.Seed(12345) // perturb state
	b.next()
	b.Reset()
	firstB := b.next()
	secondB := b.next()

	if firstA != firstB || secondA != secondB {
		t.Fatalf("post-Reset sequence (%d, %d) != fresh-seed sequence (%d, %d)", firstB, secondB, firstA, secondA)
	}
}

// TestIntnRange checks Intn never returns outside [0, n) across many
// draws and several moduli.
func TestIntnRange(t *testing.T) {
	g := New()
	for _, n := range []int{1, 2, 3, 5, 7, 32} {
		for i := 0; i < 200; i++ {
			v := g.Intn(n)
			if v < 0 || v >= n {
				t.Fatalf("Intn(%d) = %d, out of range", n, v)
			}
		}
	}
}

// TestIntnPanicsOnNonPositiveN checks the documented panic contract.
func TestIntnPanicsOnNonPositiveN(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("Intn(0) did not panic")
		}
	}()
	New().Intn(0)
}

// TestSeedOne reproduces the first draws from seed 1 directly, verified
// independently (see DESIGN.md Open Question 1): a known-good reference
// vector for the avr-libc-style LCG, hand-checked against the recurrence
// seed = seed*1103515245+12345 (mod 2^32), draw = (seed>>16)&0x7FFF.
func TestSeedOne(t *testing.T) {
	g := New()
	want := []uint32{16838, 5758, 10113, 17515, 31051}
	for i, w := range want {
		if got := g.next(); got != w {
			t.Fatalf("draw %d = %d, want %d", i, got, w)
		}
	}
}
