package charset

// builder accumulates range endpoints for a Set under construction.
//
// Every construction path in the package funnels through one of exactly
// three append disciplines, each with a different tolerance for how the
// incoming range may relate to the previously appended one:
//
//   - appendNonAdjacent: caller guarantees a gap before the new range
//   - appendPossiblyAdjacent: the new range may touch the previous one
//     (merged), but must not overlap it
//   - appendPossiblyOverlapping: the new range may touch or overlap the
//     previous one (merged)
//
// All three require ranges to arrive in ascending order of lower bound.
// Contract violations are programming errors and panic.
type builder struct {
	pairs []uint16
}

// grow pre-sizes the endpoint slice for n ranges.
func (b *builder) grow(n int) {
	if cap(b.pairs) == 0 && n > 0 {
		b.pairs = make([]uint16, 0, 2*n)
	}
}

// appendNonAdjacent appends [lo, hi] given that it starts at least two
// units after the previous range ends, so no merging can apply.
func (b *builder) appendNonAdjacent(lo, hi uint16) {
	if lo > hi {
		panic("charset: builder: range lower bound exceeds upper bound")
	}
	if n := len(b.pairs); n > 0 && int(lo) <= int(b.pairs[n-1])+1 {
		panic("charset: builder: range must not touch the previous range")
	}
	b.pairs = append(b.pairs, lo, hi)
}

// appendPossiblyAdjacent appends [lo, hi], extending the previous range
// when the two touch exactly. Overlapping the previous range is a
// contract violation.
func (b *builder) appendPossiblyAdjacent(lo, hi uint16) {
	if lo > hi {
		panic("charset: builder: range lower bound exceeds upper bound")
	}
	if n := len(b.pairs); n > 0 {
		if int(lo) <= int(b.pairs[n-1]) {
			panic("charset: builder: range must not overlap the previous range")
		}
		if int(lo) == int(b.pairs[n-1])+1 {
			b.pairs[n-1] = hi
			return
		}
	}
	b.pairs = append(b.pairs, lo, hi)
}

// appendPossiblyOverlapping appends [lo, hi], merging it into the previous
// range when the two touch or overlap. Ranges still must arrive in
// ascending order of lower bound.
func (b *builder) appendPossiblyOverlapping(lo, hi uint16) {
	if lo > hi {
		panic("charset: builder: range lower bound exceeds upper bound")
	}
	if n := len(b.pairs); n > 0 {
		if lo < b.pairs[n-2] {
			panic("charset: builder: ranges must arrive in ascending order")
		}
		if int(lo) <= int(b.pairs[n-1])+1 {
			if hi > b.pairs[n-1] {
				b.pairs[n-1] = hi
			}
			return
		}
	}
	b.pairs = append(b.pairs, lo, hi)
}

// finish seals the accumulated ranges into an immutable Set, computing the
// element count and content hash. The builder must not be reused afterwards.
func (b *builder) finish() Set {
	if len(b.pairs) == 0 {
		return Set{}
	}
	if debugChecks {
		assertCanonical(b.pairs)
	}
	size := 0
	for i := 0; i < len(b.pairs); i += 2 {
		size += int(b.pairs[i+1]) - int(b.pairs[i]) + 1
	}
	return Set{
		pairs: b.pairs,
		size:  size,
		hash:  computeHash(b.pairs, size),
	}
}
