package charset

// Union returns the set of code units in s, in other, or in both.
//
// It merges the two range lists in one pass, always consuming the range
// with the smaller lower bound and letting the builder fuse touching or
// overlapping ranges.
func (s Set) Union(other Set) Set {
	if s.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return s
	}
	a, b := s.pairs, other.pairs

	var bld builder
	bld.grow((len(a) + len(b)) / 2)
	i, j := 0, 0
	for i < len(a) || j < len(b) {
		if j >= len(b) || (i < len(a) && a[i] <= b[j]) {
			bld.appendPossiblyOverlapping(a[i], a[i+1])
			i += 2
		} else {
			bld.appendPossiblyOverlapping(b[j], b[j+1])
			j += 2
		}
	}
	return bld.finish()
}

// Intersect returns the set of code units present in both s and other.
//
// The sweep emits the overlap of the two current ranges, if any, then
// advances whichever side ends first (both on a tie). Emitted overlaps
// inherit a gap from the canonical form of the advanced side, so they
// never need merging.
func (s Set) Intersect(other Set) Set {
	a, b := s.pairs, other.pairs
	if len(a) == 0 || len(b) == 0 {
		return Set{}
	}

	var bld builder
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		ahi, bhi := a[i+1], b[j+1]
		lo, hi := max(a[i], b[j]), min(ahi, bhi)
		if lo <= hi {
			bld.appendNonAdjacent(lo, hi)
		}
		switch {
		case ahi < bhi:
			i += 2
		case bhi < ahi:
			j += 2
		default:
			i += 2
			j += 2
		}
	}
	return bld.finish()
}

// Invert returns the complement of s within the full code-unit domain.
//
// The complement is the gap before the first range, the gaps between
// consecutive ranges, and the gap after the last range. Canonical
// non-adjacency guarantees every inner gap is nonempty.
func (s Set) Invert() Set {
	if s.IsEmpty() {
		return Universal()
	}
	p := s.pairs

	var bld builder
	bld.grow(len(p)/2 + 1)
	if p[0] > unitMin {
		bld.appendNonAdjacent(unitMin, p[0]-1)
	}
	for i := 1; i+1 < len(p); i += 2 {
		bld.appendNonAdjacent(p[i]+1, p[i+1]-1)
	}
	if p[len(p)-1] < unitMax {
		bld.appendNonAdjacent(p[len(p)-1]+1, unitMax)
	}
	return bld.finish()
}

// Subtract returns the set of code units in s but not in other.
func (s Set) Subtract(other Set) Set {
	return s.Intersect(other.Invert())
}

// IsSubsetOf reports whether every code unit of s is in other.
func (s Set) IsSubsetOf(other Set) bool {
	return s.Intersect(other).Equal(s)
}

// IsSupersetOf reports whether every code unit of other is in s.
func (s Set) IsSupersetOf(other Set) bool {
	return other.IsSubsetOf(s)
}

// IsProperSubsetOf reports whether s is a subset of other and not equal to it.
func (s Set) IsProperSubsetOf(other Set) bool {
	return s.IsSubsetOf(other) && !s.Equal(other)
}

// IsProperSupersetOf reports whether s is a superset of other and not equal to it.
func (s Set) IsProperSupersetOf(other Set) bool {
	return other.IsProperSubsetOf(s)
}

// Disjoint reports whether s and other share no code units.
func (s Set) Disjoint(other Set) bool {
	return s.Intersect(other).IsEmpty()
}

// Overlaps reports whether s and other share at least one code unit.
func (s Set) Overlaps(other Set) bool {
	return !s.Disjoint(other)
}
