// Package nfa implements the automaton core: a Thompson NFA fragment built
// from literal transitions and the star/concat/alternate combinators, plus
// the frontier simulation (epsilon closure and single-symbol step) used for
// whole-word testing and substring search.
//
// A Fragment owns an arena of states addressed by StateID. Combinators
// consume their operands: the operand arenas are merged into the result and
// the consumed fragments are poisoned, so the zero-copy construction path
// used by the compiler cannot alias live state graphs. Clone gives the
// explicit deep-copy variant for callers that need to reuse a fragment.
package nfa

// StateID addresses a state within a fragment's arena.
type StateID uint32

// edge is one entry of a state's append-only transition list. A label may
// appear on several edges of the same state; that fan-out is the
// non-determinism.
type edge struct {
	label Label
	to    StateID
}

// state is a node of the automaton graph. Its transition list is append-only
// during construction and read-only once matching begins.
type state struct {
	edges []edge
}

func (s *state) hasLabel(lb Label) bool {
	for _, e := range s.edges {
		if e.label == lb {
			return true
		}
	}
	return false
}

// Fragment is an automaton with a designated initial and final state. It
// exclusively owns every state in its arena.
type Fragment struct {
	states []state
	start  StateID
	final  StateID

	// numbered caches whether index holds a valid BFS enumeration.
	// Invalidated by every structural mutation.
	numbered bool
	index    []int

	// consumed marks a fragment moved into a combinator. Any further use
	// panics; see check.
	consumed bool
}

// check panics when the fragment has been consumed by a combinator. Reuse
// after a move is a programming error, not a recoverable condition.
func (f *Fragment) check() {
	if f.consumed {
		panic("nfa: use of a fragment already consumed by a combinator")
	}
}

// mutate records a structural mutation, invalidating the enumeration cache.
func (f *Fragment) mutate() {
	f.check()
	f.numbered = false
	f.index = nil
}

// Start returns the initial state's ID.
func (f *Fragment) Start() StateID {
	f.check()
	return f.start
}

// Final returns the final state's ID.
func (f *Fragment) Final() StateID {
	f.check()
	return f.final
}

// NumStates returns the number of states in the fragment's arena.
func (f *Fragment) NumStates() int {
	f.check()
	return len(f.states)
}

// AddState appends a fresh state with no transitions and returns its ID.
func (f *Fragment) AddState() StateID {
	f.mutate()
	f.states = append(f.states, state{})
	return StateID(len(f.states) - 1)
}

// AddTransition appends an edge from one state to another under the given
// label. Transition lists are append-only; nothing is ever removed.
func (f *Fragment) AddTransition(from StateID, label Label, to StateID) {
	f.mutate()
	f.states[from].edges = append(f.states[from].edges, edge{label: label, to: to})
}

// Clone deep-copies the fragment into a fresh arena with fresh state
// identities. The clone shares nothing with the original, so either side may
// be consumed or matched independently afterwards.
func (f *Fragment) Clone() *Fragment {
	f.check()
	c := &Fragment{
		states: make([]state, len(f.states)),
		start:  f.start,
		final:  f.final,
	}
	for i, s := range f.states {
		if len(s.edges) == 0 {
			continue
		}
		c.states[i].edges = append([]edge(nil), s.edges...)
	}
	return c
}
