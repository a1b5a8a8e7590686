package charset

import (
	"iter"
	"slices"
)

// Units returns an iterator over the code units of the set in ascending
// order. The sequence is lazy and restartable: it holds no iteration
// state of its own, so ranging over it again replays it from the start.
//
// Example:
//
//	for u := range set.Units() {
//	    if u > 'z' {
//	        break
//	    }
//	}
func (s Set) Units() iter.Seq[uint16] {
	return func(yield func(uint16) bool) {
		for i := 0; i < len(s.pairs); i += 2 {
			lo, hi := s.pairs[i], s.pairs[i+1]
			for u := lo; ; u++ {
				if !yield(u) {
					return
				}
				if u == hi {
					break
				}
			}
		}
	}
}

// Ranges returns an iterator over the maximal contiguous ranges of the set
// in ascending order.
func (s Set) Ranges() iter.Seq[Range] {
	return func(yield func(Range) bool) {
		for i := 0; i < len(s.pairs); i += 2 {
			if !yield(Range{Lo: s.pairs[i], Hi: s.pairs[i+1]}) {
				return
			}
		}
	}
}

// AppendUnits appends every code unit of the set to dst in ascending order
// and returns the extended slice.
func (s Set) AppendUnits(dst []uint16) []uint16 {
	if s.size == 0 {
		return dst
	}
	dst = slices.Grow(dst, s.size)
	for u := range s.Units() {
		dst = append(dst, u)
	}
	return dst
}
