// Package charset provides immutable sets of 16-bit code units with a
// complete range algebra, built as a foundation for lexer and DFA
// construction.
//
// A Set is stored in canonical form: sorted, disjoint, non-adjacent closed
// ranges over the domain 0..0xFFFF. Canonical form makes structural equality
// coincide with semantic equality and keeps every operation linear in the
// number of ranges:
//   - Union, Intersect, Invert and the derived predicates are single
//     two-pointer sweeps
//   - Relation classifies the overlap of two sets five ways in one pass,
//     without materializing the intersection
//   - Membership picks between a linear scan and binary search based on
//     set width
//
// A Topology partitions the full domain into contiguous pieces and is refined
// by the boundaries of sets. After refining with every character class of a
// lexer grammar, each basis piece behaves uniformly in every class, which is
// exactly the alphabet-compaction step of DFA construction.
//
// Basic usage:
//
//	// Build sets
//	letters := charset.MustRange('a', 'z')
//	digits := charset.ASCIIDigits()
//	word := letters.Union(digits).Union(charset.Singleton('_'))
//
//	// Query them
//	word.Contains('x')            // true
//	letters.Relation(word)        // charset.OverlapSubset
//	fmt.Println(word.String())    // [0-9_a-z]
//
//	// Refine an alphabet for DFA construction
//	top := charset.TrivialTopology().RefineSet(letters).RefineSet(digits)
//	for piece := range top.Pieces() {
//	    // each piece is uniform w.r.t. letters and digits
//	}
//
// All Set and Topology values are immutable: every operation returns a new
// value and never mutates its operands, so values are safe to share between
// goroutines without synchronization.
package charset

import (
	"slices"
	"sort"
	"sync"
	"unicode/utf16"
)

// Code-unit domain bounds. The element type is uint16, the code-unit view
// of UTF-16 text, so sets cover 0..0xFFFF.
const (
	unitMin = 0x0000
	unitMax = 0xFFFF

	numUnits = unitMax - unitMin + 1
)

// Range is a closed interval of code units, Lo <= Hi.
type Range struct {
	Lo uint16
	Hi uint16
}

// Len returns the number of code units in the range.
func (r Range) Len() int {
	return int(r.Hi) - int(r.Lo) + 1
}

// Set is an immutable set of 16-bit code units.
//
// Internally a Set is a flat sequence of range endpoints
// [lo0, hi0, lo1, hi1, ...] in canonical form: each pair is a valid closed
// range, pairs are sorted ascending, and no two pairs touch or overlap
// (hi+1 < next lo). Element count and content hash are computed once at
// construction.
//
// The zero value is the empty set and is ready to use. Sets are values:
// copying is cheap and operations never mutate their operands, so a Set is
// safe for concurrent use by multiple goroutines.
//
// Example:
//
//	hex := charset.MustRange('0', '9').
//	    Union(charset.MustRange('a', 'f')).
//	    Union(charset.MustRange('A', 'F'))
//	hex.Contains('c') // true
//	hex.Size()        // 22
type Set struct {
	pairs []uint16
	size  int
	hash  uint64
}

// Empty returns the empty set.
func Empty() Set {
	return Set{}
}

var universalSet = sync.OnceValue(func() Set {
	var b builder
	b.appendNonAdjacent(unitMin, unitMax)
	return b.finish()
})

// Universal returns the set containing every code unit in 0..0xFFFF.
func Universal() Set {
	return universalSet()
}

// Singleton returns the set containing exactly one code unit.
func Singleton(u uint16) Set {
	var b builder
	b.appendNonAdjacent(u, u)
	return b.finish()
}

// NewRange returns the set of all code units in the closed interval
// [lo, hi]. It returns a *RangeError if lo > hi.
func NewRange(lo, hi uint16) (Set, error) {
	if lo > hi {
		return Set{}, &RangeError{Lo: lo, Hi: hi}
	}
	var b builder
	b.appendNonAdjacent(lo, hi)
	return b.finish(), nil
}

// MustRange is like NewRange but panics if the range is invalid.
// It simplifies safe initialization of set variables and constants.
func MustRange(lo, hi uint16) Set {
	s, err := NewRange(lo, hi)
	if err != nil {
		panic("charset: MustRange: " + err.Error())
	}
	return s
}

// FromRanges returns the set covering all the given ranges. The ranges may
// arrive in any order and may overlap or touch; the result is canonical.
// It returns a *RangeError if any range has Lo > Hi.
func FromRanges(ranges ...Range) (Set, error) {
	for _, r := range ranges {
		if r.Lo > r.Hi {
			return Set{}, &RangeError{Lo: r.Lo, Hi: r.Hi}
		}
	}
	sorted := slices.Clone(ranges)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Lo < sorted[j].Lo })

	var b builder
	for _, r := range sorted {
		b.appendPossiblyOverlapping(r.Lo, r.Hi)
	}
	return b.finish(), nil
}

// FromUnits returns the set containing exactly the given code units.
// Duplicates are allowed and the order does not matter.
func FromUnits(units ...uint16) Set {
	if len(units) == 0 {
		return Set{}
	}
	sorted := slices.Clone(units)
	slices.Sort(sorted)

	var b builder
	i := 0
	for i < len(sorted) {
		lo := sorted[i]
		hi := lo
		i++
		// Extend the run over duplicates and consecutive units.
		for i < len(sorted) && int(sorted[i]) <= int(hi)+1 {
			hi = sorted[i]
			i++
		}
		b.appendNonAdjacent(lo, hi)
	}
	return b.finish()
}

// FromString returns the set of all UTF-16 code units that appear in s.
// Runes outside the Basic Multilingual Plane contribute their surrogate
// pair halves, matching the 16-bit code-unit view of the string.
func FromString(s string) Set {
	if s == "" {
		return Set{}
	}
	return FromUnits(utf16.Encode([]rune(s))...)
}

// Equal reports whether s and other contain exactly the same code units.
// Canonical form makes this a structural comparison of the range endpoints.
func (s Set) Equal(other Set) bool {
	return slices.Equal(s.pairs, other.pairs)
}

// IsEmpty reports whether the set contains no code units.
func (s Set) IsEmpty() bool {
	return len(s.pairs) == 0
}

// IsUniversal reports whether the set contains every code unit in the domain.
func (s Set) IsUniversal() bool {
	return len(s.pairs) == 2 && s.pairs[0] == unitMin && s.pairs[1] == unitMax
}

// NumRanges returns the number of maximal contiguous ranges in the set.
func (s Set) NumRanges() int {
	return len(s.pairs) / 2
}
