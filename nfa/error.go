package nfa

import "fmt"

// EpsilonCycleError indicates the fragment's epsilon-only subgraph contains a
// cycle. Such a fragment cannot be simulated: epsilon closure would never
// terminate, which is why construction rejects it up front.
type EpsilonCycleError struct {
	// State is the ID of a state on the detected cycle.
	State StateID
}

// Error implements the error interface
func (e *EpsilonCycleError) Error() string {
	return fmt.Sprintf("nfa: epsilon cycle through state %d; the automaton cannot be simulated", e.State)
}

// UnexpectedAtomError indicates the parser reached an atom position holding a
// symbol no atom can start with. Validation and canonicalization should make
// this unreachable; seeing it signals an inconsistency between the two.
type UnexpectedAtomError struct {
	Pos    int
	Symbol byte
}

// Error implements the error interface
func (e *UnexpectedAtomError) Error() string {
	return fmt.Sprintf("nfa: unexpected symbol %q at canonical position %d: cannot start an atom", string(e.Symbol), e.Pos)
}
