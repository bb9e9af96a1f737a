// Package sparse provides a sparse set over small integer universes.
//
// The set supports O(1) insertion, membership testing and clearing while
// keeping a dense slice of members for iteration in insertion order. The
// automaton simulation uses it for active-state frontiers and BFS visited
// sets, where the universe is the fragment's state count.
package sparse

// Set is a set of uint32 values below a fixed capacity. The sparse slice
// maps a value to its index in the dense slice; a value is a member when
// that index is in range and points back at it.
type Set struct {
	sparse []uint32
	dense  []uint32
}

// NewSet creates a set able to hold values in [0, capacity).
func NewSet(capacity uint32) *Set {
	return &Set{
		sparse: make([]uint32, capacity),
		dense:  make([]uint32, 0, capacity),
	}
}

// Insert adds value to the set. Inserting an existing member is a no-op.
// Panics if value >= capacity.
func (s *Set) Insert(value uint32) {
	if s.Contains(value) {
		return
	}
	s.sparse[value] = uint32(len(s.dense))
	s.dense = append(s.dense, value)
}

// Contains reports whether value is a member.
func (s *Set) Contains(value uint32) bool {
	if value >= uint32(len(s.sparse)) {
		return false
	}
	idx := s.sparse[value]
	return idx < uint32(len(s.dense)) && s.dense[idx] == value
}

// Clear empties the set in O(1).
func (s *Set) Clear() {
	s.dense = s.dense[:0]
}

// Len returns the number of members.
func (s *Set) Len() int {
	return len(s.dense)
}

// Values returns the members in insertion order. The slice is valid until
// the next mutation.
func (s *Set) Values() []uint32 {
	return s.dense
}
