package charset

import "fmt"

// Overlap classifies how two sets relate, from the receiver's point of view.
type Overlap uint8

const (
	// OverlapEmpty means the sets share no code units
	OverlapEmpty Overlap = iota

	// OverlapPartial means the sets share some code units but each also has
	// units the other lacks
	OverlapPartial

	// OverlapSuperset means the receiver strictly contains the argument
	OverlapSuperset

	// OverlapSubset means the argument strictly contains the receiver
	OverlapSubset

	// OverlapEqual means the sets contain exactly the same code units
	OverlapEqual
)

// String returns a human-readable representation of the Overlap
func (o Overlap) String() string {
	switch o {
	case OverlapEmpty:
		return "Empty"
	case OverlapPartial:
		return "Partial"
	case OverlapSuperset:
		return "Superset"
	case OverlapSubset:
		return "Subset"
	case OverlapEqual:
		return "Equal"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(o))
	}
}

// Relation classifies the overlap between s and other in a single
// left-to-right sweep over both range lists, without materializing the
// intersection. Disjoint sets (including any comparison involving the
// empty set) classify as OverlapEmpty; equality and the two strict
// containment directions are distinguished from genuine partial overlap.
//
// The sweep tallies how each overlapping pair of ranges relates (equal,
// receiver's range inside the argument's, or the reverse) plus the ranges
// on each side that never overlap anything. A crossing pair, where each
// range sticks out past the other, proves partial overlap immediately:
// canonical form guarantees the protruding units belong to no other range
// of the opposite set.
func (s Set) Relation(other Set) Overlap {
	a, b := s.pairs, other.pairs

	var (
		pairs    int // overlapping range pairs seen
		exact    int // pairs with identical bounds
		aCovered int // pairs where a's range sits strictly inside b's
		bCovered int // pairs where b's range sits strictly inside a's
		leftA    int // a-ranges overlapping no b-range
		leftB    int // b-ranges overlapping no a-range
	)

	i, j := 0, 0
	aHit, bHit := false, false
	advanceA := func() {
		if !aHit {
			leftA++
		}
		i += 2
		aHit = false
	}
	advanceB := func() {
		if !bHit {
			leftB++
		}
		j += 2
		bHit = false
	}

	for i < len(a) && j < len(b) {
		alo, ahi := a[i], a[i+1]
		blo, bhi := b[j], b[j+1]

		if ahi < blo {
			advanceA()
			continue
		}
		if bhi < alo {
			advanceB()
			continue
		}

		pairs++
		aInside := alo >= blo && ahi <= bhi
		bInside := blo >= alo && bhi <= ahi
		switch {
		case aInside && bInside:
			exact++
		case aInside:
			aCovered++
		case bInside:
			bCovered++
		default:
			// Crossing ranges: each protrudes past the other on one side,
			// and the protruding units cannot be covered by any other range
			// of the opposite set.
			return OverlapPartial
		}
		aHit, bHit = true, true

		switch {
		case ahi < bhi:
			advanceA()
		case bhi < ahi:
			advanceB()
		default:
			advanceA()
			advanceB()
		}
	}
	for i < len(a) {
		advanceA()
	}
	for j < len(b) {
		advanceB()
	}

	if pairs == 0 {
		return OverlapEmpty
	}
	if exact == pairs {
		switch {
		case leftA > 0 && leftB > 0:
			return OverlapPartial
		case leftA > 0:
			return OverlapSuperset
		case leftB > 0:
			return OverlapSubset
		default:
			return OverlapEqual
		}
	}
	if aCovered > 0 && bCovered == 0 {
		if leftA > 0 {
			return OverlapPartial
		}
		return OverlapSubset
	}
	if bCovered > 0 && aCovered == 0 {
		if leftB > 0 {
			return OverlapPartial
		}
		return OverlapSuperset
	}
	return OverlapPartial
}
