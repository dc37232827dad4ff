package kernel

// fold XOR-folds every byte in data into a single byte. This is the
// stack-integrity checksum: it detects any single-byte change within the
// folded window but can miss certain multi-byte compensating changes
// (two bit flips at the same bit position in two different bytes cancel
// out) — a known, accepted limitation of XOR folding.
func fold(data []byte) byte {
	var sum byte
	for _, b := range data {
		sum ^= b
	}
	return sum
}

// checksumWindow recomputes the checksum over pid's saved context, the
// inclusive byte range [sp, bottom(pid)].
func checksumWindow(pid ProcessId, sp Address) byte {
	return fold(stackRegion[sp : bottom(pid)+1])
}

// StackChecksum returns the descriptor's stored checksum for pid. Part of
// the external process-table interface (spec.md §6).
func (t *Table) StackChecksum(pid ProcessId) byte {
	return t[pid].Checksum
}
