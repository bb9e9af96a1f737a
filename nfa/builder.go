package nfa

// NewLiteral builds the elementary fragment for one label: two fresh states
// and a single transition between them.
func NewLiteral(lb Label) *Fragment {
	f := &Fragment{states: make([]state, 2), start: 0, final: 1}
	f.states[0].edges = append(f.states[0].edges, edge{label: lb, to: 1})
	return f
}

// merge appends other's reachable state set into f's arena, remapping state
// IDs by a fixed offset, and consumes other. Returns the offset to apply to
// other's old IDs.
func (f *Fragment) merge(other *Fragment) StateID {
	offset := StateID(len(f.states))
	for _, s := range other.states {
		ns := state{}
		if len(s.edges) > 0 {
			ns.edges = make([]edge, len(s.edges))
			for i, e := range s.edges {
				ns.edges[i] = edge{label: e.label, to: e.to + offset}
			}
		}
		f.states = append(f.states, ns)
	}
	other.consume()
	return offset
}

// consume poisons a fragment moved into a combinator.
func (f *Fragment) consume() {
	f.consumed = true
	f.states = nil
	f.index = nil
}

// take moves f's arena into a fresh result fragment and consumes f. Every
// combinator routes its first operand through take, so no operand ever
// aliases the fragment a combinator returns.
func take(f *Fragment) *Fragment {
	f.check()
	r := &Fragment{states: f.states, start: f.start, final: f.final}
	f.consume()
	return r
}

// Star wraps f in a Kleene star. f is consumed; the result is a fresh
// fragment with a new initial and final state and epsilon edges
// new-initial -> old-initial, new-initial -> new-final,
// old-final -> old-initial and old-final -> new-final.
func Star(f *Fragment) *Fragment {
	r := take(f)
	oldStart, oldFinal := r.start, r.final

	newStart := StateID(len(r.states))
	newFinal := newStart + 1
	r.states = append(r.states, state{}, state{})

	r.states[newStart].edges = append(r.states[newStart].edges,
		edge{label: Epsilon(), to: oldStart},
		edge{label: Epsilon(), to: newFinal},
	)
	r.states[oldFinal].edges = append(r.states[oldFinal].edges,
		edge{label: Epsilon(), to: oldStart},
		edge{label: Epsilon(), to: newFinal},
	)

	r.start, r.final = newStart, newFinal
	return r
}

// Concat joins f1 and f2 in sequence with an epsilon edge from f1's final
// state to f2's initial state. Both operands are consumed; the result starts
// at f1's initial and ends at f2's final state.
func Concat(f1, f2 *Fragment) *Fragment {
	f2.check()
	r := take(f1)

	start2, final2 := f2.start, f2.final
	offset := r.merge(f2)

	r.states[r.final].edges = append(r.states[r.final].edges,
		edge{label: Epsilon(), to: start2 + offset})
	r.final = final2 + offset
	return r
}

// Alternate builds the union of f1 and f2. Both operands are consumed; a new
// initial state branches to both operand initials and both operand finals
// feed a new final state, all via epsilon edges.
func Alternate(f1, f2 *Fragment) *Fragment {
	f2.check()
	r := take(f1)

	start1, final1 := r.start, r.final
	start2, final2 := f2.start, f2.final
	offset := r.merge(f2)

	newStart := StateID(len(r.states))
	newFinal := newStart + 1
	r.states = append(r.states, state{}, state{})

	r.states[newStart].edges = append(r.states[newStart].edges,
		edge{label: Epsilon(), to: start1},
		edge{label: Epsilon(), to: start2 + offset},
	)
	r.states[final1].edges = append(r.states[final1].edges,
		edge{label: Epsilon(), to: newFinal})
	r.states[final2+offset].edges = append(r.states[final2+offset].edges,
		edge{label: Epsilon(), to: newFinal})

	r.start, r.final = newStart, newFinal
	return r
}
