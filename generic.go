package charset

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// Algebra is the interface of a value-semantics set algebra: operations
// return new values and never mutate their operands. Set implements it;
// alternative representations (bitmap sets, balanced trees) can slot into
// code written against the algebra.
type Algebra[S any] interface {
	Union(S) S
	Intersect(S) S
	Invert() S
	Subtract(S) S
	Equal(S) bool
	IsEmpty() bool
}

// SetLike extends Algebra with element-level access over an integer
// element type: lifting a single element to a set, membership, size, and
// iteration.
type SetLike[S any, E constraints.Integer] interface {
	Algebra[S]
	Lift(E) S
	Contains(E) bool
	Size() int
	Units() iter.Seq[E]
}

// TopologyLike is the interface of a partition of a domain that can be
// refined by sets and by other partitions, and enumerated as basis sets.
type TopologyLike[T any, S any] interface {
	Refine(T) T
	RefineSet(S) T
	Len() int
	Equal(T) bool
	Sets() iter.Seq[S]
}

// Compile-time interface compliance checks
var (
	_ Algebra[Set]                = Set{}
	_ SetLike[Set, uint16]        = Set{}
	_ TopologyLike[Topology, Set] = Topology{}
)

// Lift returns the singleton set of u. The receiver's content is ignored,
// so any Set value, including the zero value, serves as the constructor
// handle in generic code.
func (Set) Lift(u uint16) Set {
	return Singleton(u)
}

// SymmetricDifference returns the elements in exactly one of a and b.
// It works for any implementation of the algebra.
func SymmetricDifference[S Algebra[S]](a, b S) S {
	return a.Subtract(b).Union(b.Subtract(a))
}

// RefineAll refines t with the boundaries of every given set, in order.
// Refinement is commutative and idempotent, so the order only affects
// intermediate values, never the result.
func RefineAll[T TopologyLike[T, S], S any](t T, sets ...S) T {
	for _, s := range sets {
		t = t.RefineSet(s)
	}
	return t
}
