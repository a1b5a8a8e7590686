// Package sparse provides a sparse set data structure for efficient membership testing.
//
// A sparse set supports O(1) insertion and membership testing while maintaining
// a dense list of inserted elements. It is used to deduplicate code units when
// a transformation may map many input units to the same output unit.
package sparse

// Set is a set of uint16 values backed by a sparse/dense array pair.
// The sparse array maps values to indices in the dense array; the dense
// array records values in insertion order.
//
// The universe of possible values is fixed at construction time.
type Set struct {
	sparse []uint16 // Maps value -> index in dense
	dense  []uint16 // Contains the actual values
}

// NewSet creates a new sparse set able to hold values in [0, capacity).
func NewSet(capacity int) *Set {
	return &Set{
		sparse: make([]uint16, capacity),
		dense:  make([]uint16, 0, capacity),
	}
}

// Insert adds a value to the set.
// It returns true if the value was newly inserted, false if already present.
// Panics if value >= capacity.
func (s *Set) Insert(value uint16) bool {
	if s.Contains(value) {
		return false
	}

	// Map value to its index in dense, then append.
	// len(dense) never exceeds capacity, so the index fits in uint16
	// as long as capacity <= 65536.
	s.sparse[value] = uint16(len(s.dense))
	s.dense = append(s.dense, value)
	return true
}

// Contains returns true if the value is in the set.
func (s *Set) Contains(value uint16) bool {
	if int(value) >= len(s.sparse) {
		return false
	}
	idx := int(s.sparse[value])
	return idx < len(s.dense) && s.dense[idx] == value
}

// Len returns the number of elements in the set.
func (s *Set) Len() int {
	return len(s.dense)
}

// IsEmpty returns true if the set contains no elements.
func (s *Set) IsEmpty() bool {
	return len(s.dense) == 0
}

// Clear removes all elements from the set in O(1) time.
func (s *Set) Clear() {
	s.dense = s.dense[:0]
}

// Values returns a slice of all values in insertion order.
// The returned slice is valid until the next mutation.
func (s *Set) Values() []uint16 {
	return s.dense
}
