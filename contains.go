package charset

import "slices"

// Sets at or below this many endpoints (16 ranges) test membership with a
// linear scan; larger sets switch to binary search. Small sets dominate in
// practice and the scan beats the search on them.
const linearScanMaxEndpoints = 32

// Contains reports whether the set contains the code unit u.
func (s Set) Contains(u uint16) bool {
	if len(s.pairs) <= linearScanMaxEndpoints {
		return s.containsLinear(u)
	}
	return s.containsBinary(u)
}

// containsLinear walks the ranges in order, stopping at the first range
// that starts beyond u.
func (s Set) containsLinear(u uint16) bool {
	for i := 0; i < len(s.pairs); i += 2 {
		if u < s.pairs[i] {
			return false
		}
		if u <= s.pairs[i+1] {
			return true
		}
	}
	return false
}

// containsBinary searches the flat endpoint sequence directly. An exact hit
// lands on a range endpoint, so u is a member. Otherwise an odd insertion
// index places u strictly between a range's lower and upper endpoint.
func (s Set) containsBinary(u uint16) bool {
	i, found := slices.BinarySearch(s.pairs, u)
	return found || i%2 == 1
}

// ContainsAll reports whether every code unit of other is in s.
//
// It runs a single forward sweep over both range lists: canonical form
// guarantees that a range of other is covered if and only if it fits
// entirely inside one range of s, so each range of other is checked against
// a cursor that only ever advances.
func (s Set) ContainsAll(other Set) bool {
	if other.IsEmpty() {
		return true
	}
	i := 0
	for j := 0; j < len(other.pairs); j += 2 {
		blo, bhi := other.pairs[j], other.pairs[j+1]
		for i < len(s.pairs) && s.pairs[i+1] < blo {
			i += 2
		}
		if i >= len(s.pairs) || s.pairs[i] > blo || s.pairs[i+1] < bhi {
			return false
		}
	}
	return true
}
