package charset

import (
	"math/rand/v2"

	"github.com/coregx/charset/internal/conv"
)

// Size returns the number of code units in the set.
// The count is computed once at construction, so Size is O(1).
func (s Set) Size() int {
	return s.size
}

// At returns the code unit at index i in ascending order, with index 0
// being the smallest member. It returns a *IndexError when i is negative
// or at least Size().
//
// The lookup walks the ranges, skipping each range's full width until the
// remaining offset falls inside one.
func (s Set) At(i int) (uint16, error) {
	if i < 0 || i >= s.size {
		return 0, &IndexError{Index: i, Size: s.size}
	}
	idx := i
	for k := 0; k < len(s.pairs); k += 2 {
		lo, hi := s.pairs[k], s.pairs[k+1]
		n := int(hi) - int(lo) + 1
		if idx < n {
			return conv.IntToUint16(int(lo) + idx), nil
		}
		idx -= n
	}
	panic("charset: internal error: element count inconsistent with ranges")
}

// Pick returns a code unit of the set chosen uniformly at random from rng.
// It panics if the set is empty.
func (s Set) Pick(rng *rand.Rand) uint16 {
	if s.size == 0 {
		panic("charset: Pick on empty set")
	}
	u, _ := s.At(rng.IntN(s.size))
	return u
}
