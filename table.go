package charset

import "slices"

// ClassOf returns the index of the piece containing the code unit u.
//
// Piece indices are the compacted alphabet of DFA construction: two units
// with the same class index are indistinguishable to every set the
// topology has been refined with, so transition tables can be indexed by
// class instead of by raw code unit. Instead of 65536 transitions per DFA
// state, a state needs one per piece (typically a few dozen).
//
// The lookup is a binary search over the cut positions: the class of u is
// the number of cuts at or below u.
func (t Topology) ClassOf(u uint16) int {
	i, found := slices.BinarySearch(t.cuts, u)
	if found {
		return i + 1
	}
	return i
}

// Table returns the full unit-to-class lookup table, indexed by code unit.
// Entry u holds the same value ClassOf(u) returns; a dense table trades
// 128 KiB for O(1) classification in DFA inner loops.
//
// The table is built in one walk over the domain, starting a new class at
// every cut position.
func (t Topology) Table() []uint16 {
	table := make([]uint16, numUnits)
	class, next := uint16(0), 0
	for u := 0; u < numUnits; u++ {
		if next < len(t.cuts) && int(t.cuts[next]) == u {
			class++
			next++
		}
		table[u] = class
	}
	return table
}

// Representatives returns one code unit per piece, in ascending class
// order: the first unit of each piece. Computing a DFA transition for a
// representative computes it for every unit of its class.
func (t Topology) Representatives() []uint16 {
	reps := make([]uint16, 0, t.Len())
	reps = append(reps, unitMin)
	reps = append(reps, t.cuts...)
	return reps
}
