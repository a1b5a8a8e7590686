package charset

import (
	"slices"

	"github.com/coregx/charset/internal/sparse"
)

// Map returns the set of f(u) for every code unit u in s.
//
// f may be neither monotone nor injective: results are deduplicated through
// a sparse set over the full domain, sorted, and re-canonicalized, so the
// output is a valid Set no matter how f scrambles the input.
func (s Set) Map(f func(uint16) uint16) Set {
	if s.IsEmpty() {
		return Set{}
	}
	seen := sparse.NewSet(numUnits)
	for i := 0; i < len(s.pairs); i += 2 {
		lo, hi := s.pairs[i], s.pairs[i+1]
		for u := lo; ; u++ {
			seen.Insert(f(u))
			if u == hi {
				break
			}
		}
	}

	out := slices.Clone(seen.Values())
	slices.Sort(out)

	var bld builder
	bld.grow(len(out))
	for _, u := range out {
		bld.appendPossiblyAdjacent(u, u)
	}
	return bld.finish()
}

// Filter returns the set of code units in s satisfying pred.
//
// Each range is scanned once, accumulating maximal runs of satisfying
// units. Runs are separated by at least one rejected or absent unit, so
// they land in the builder already non-adjacent.
func (s Set) Filter(pred func(uint16) bool) Set {
	var bld builder
	for i := 0; i < len(s.pairs); i += 2 {
		lo, hi := s.pairs[i], s.pairs[i+1]
		run := -1 // start of the current satisfying run, -1 when none
		for u := lo; ; u++ {
			if pred(u) {
				if run < 0 {
					run = int(u)
				}
			} else if run >= 0 {
				bld.appendNonAdjacent(uint16(run), u-1)
				run = -1
			}
			if u == hi {
				break
			}
		}
		if run >= 0 {
			bld.appendNonAdjacent(uint16(run), hi)
		}
	}
	return bld.finish()
}

// CountFunc returns the number of code units in s satisfying pred.
func (s Set) CountFunc(pred func(uint16) bool) int {
	n := 0
	for i := 0; i < len(s.pairs); i += 2 {
		lo, hi := s.pairs[i], s.pairs[i+1]
		for u := lo; ; u++ {
			if pred(u) {
				n++
			}
			if u == hi {
				break
			}
		}
	}
	return n
}
