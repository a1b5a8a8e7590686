package charset

import (
	"fmt"
	"iter"
	"slices"
)

// Topology is an immutable partition of the full code-unit domain into
// contiguous pieces. It answers the alphabet-compaction question of DFA
// construction: after refining a topology with every character class of a
// grammar, all units inside one piece are indistinguishable to every class,
// so a DFA can transition on piece indices instead of raw code units.
//
// Internally a Topology stores its sorted interior cut positions. A cut at
// position p places a piece boundary immediately before the unit p, so k
// cuts split the domain into k+1 pieces. The boundary before unit 0 is
// implicit and never stored. The zero value is the trivial one-piece
// partition and is ready to use.
//
// Refinement only ever adds cuts, and identical refinement histories
// produce identical cut sequences, so topologies built the same way are
// structurally equal.
//
// Example:
//
//	top := charset.TrivialTopology().
//	    RefineSet(charset.MustRange('a', 'z')).
//	    RefineSet(charset.ASCIIDigits())
//	top.Len() // 5 pieces: before '0', digits, between, letters, after 'z'
type Topology struct {
	cuts []uint16
}

// TrivialTopology returns the one-piece partition of the whole domain.
func TrivialTopology() Topology {
	return Topology{}
}

// NewTopology returns the partition with piece boundaries immediately
// before the given positions. Positions may repeat and arrive in any
// order; each must lie in the interior of the domain, 1..0xFFFF, or a
// *CutError is returned.
func NewTopology(cuts ...int) (Topology, error) {
	if len(cuts) == 0 {
		return Topology{}, nil
	}
	out := make([]uint16, 0, len(cuts))
	for _, c := range cuts {
		if c < 1 || c > unitMax {
			return Topology{}, &CutError{Position: c}
		}
		out = append(out, uint16(c))
	}
	slices.Sort(out)
	return Topology{cuts: slices.Compact(out)}, nil
}

// TopologyOf returns the coarsest partition in which s is a union of
// whole pieces: every interior boundary of s becomes a cut. The empty and
// universal sets have no interior boundaries and yield the trivial
// partition.
func TopologyOf(s Set) Topology {
	if len(s.pairs) == 0 {
		return Topology{}
	}
	// Canonical ordering of the ranges makes the collected cuts strictly
	// ascending without sorting.
	cuts := make([]uint16, 0, len(s.pairs))
	for i := 0; i < len(s.pairs); i += 2 {
		lo, hi := s.pairs[i], s.pairs[i+1]
		if lo > unitMin {
			cuts = append(cuts, lo)
		}
		if hi < unitMax {
			cuts = append(cuts, hi+1)
		}
	}
	return Topology{cuts: cuts}
}

// Refine returns the coarsest partition finer than both t and other: the
// merge of their cut positions. Refining never removes cuts, and refining
// with an already-incorporated partition returns an equal topology.
func (t Topology) Refine(other Topology) Topology {
	if len(other.cuts) == 0 {
		return t
	}
	if len(t.cuts) == 0 {
		return other
	}
	merged := make([]uint16, 0, len(t.cuts)+len(other.cuts))
	i, j := 0, 0
	for i < len(t.cuts) && j < len(other.cuts) {
		a, b := t.cuts[i], other.cuts[j]
		switch {
		case a < b:
			merged = append(merged, a)
			i++
		case b < a:
			merged = append(merged, b)
			j++
		default:
			merged = append(merged, a)
			i++
			j++
		}
	}
	merged = append(merged, t.cuts[i:]...)
	merged = append(merged, other.cuts[j:]...)
	return Topology{cuts: merged}
}

// RefineSet returns t refined by the interior boundaries of s, so that s
// becomes a union of whole pieces of the result.
func (t Topology) RefineSet(s Set) Topology {
	return t.Refine(TopologyOf(s))
}

// Len returns the number of pieces in the partition, always at least 1.
func (t Topology) Len() int {
	return len(t.cuts) + 1
}

// Piece returns the i-th piece of the partition in ascending order.
// It panics if i is negative or at least Len().
func (t Topology) Piece(i int) Range {
	if i < 0 || i > len(t.cuts) {
		panic(fmt.Sprintf("charset: piece index %d out of range for %d pieces", i, t.Len()))
	}
	r := Range{Lo: unitMin, Hi: unitMax}
	if i > 0 {
		r.Lo = t.cuts[i-1]
	}
	if i < len(t.cuts) {
		r.Hi = t.cuts[i] - 1
	}
	return r
}

// Pieces returns an iterator over the pieces of the partition in
// ascending order. The pieces are disjoint, contiguous, and cover the
// whole domain.
func (t Topology) Pieces() iter.Seq[Range] {
	return func(yield func(Range) bool) {
		for i := 0; i <= len(t.cuts); i++ {
			if !yield(t.Piece(i)) {
				return
			}
		}
	}
}

// Sets returns an iterator over the pieces of the partition, each as a
// single-range Set. These are the basis sets: every set whose boundaries
// the topology has incorporated is a union of them.
func (t Topology) Sets() iter.Seq[Set] {
	return func(yield func(Set) bool) {
		for r := range t.Pieces() {
			if !yield(MustRange(r.Lo, r.Hi)) {
				return
			}
		}
	}
}

// Basis returns the pieces of the partition materialized as Sets.
func (t Topology) Basis() []Set {
	out := make([]Set, 0, t.Len())
	for s := range t.Sets() {
		out = append(out, s)
	}
	return out
}

// Equal reports whether t and other have identical cut positions, and
// therefore identical pieces.
func (t Topology) Equal(other Topology) bool {
	return slices.Equal(t.cuts, other.cuts)
}

// String returns a compact description of the partition.
func (t Topology) String() string {
	return fmt.Sprintf("Topology(%d pieces)", t.Len())
}
