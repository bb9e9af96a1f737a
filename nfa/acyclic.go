package nfa

// Visitation colors for the epsilon-cycle DFS.
const (
	unvisited uint8 = iota
	inProgress
	done
)

// CheckAcyclic verifies that the subgraph formed by epsilon edges alone is
// acyclic. It runs a depth-first search with temporary/permanent marks over
// every state; a back edge to an in-progress state is a cycle and yields an
// *EpsilonCycleError.
func (f *Fragment) CheckAcyclic() error {
	f.check()
	color := make([]uint8, len(f.states))

	var visit func(id StateID) *EpsilonCycleError
	visit = func(id StateID) *EpsilonCycleError {
		color[id] = inProgress
		for _, e := range f.states[id].edges {
			if !e.label.IsEpsilon() {
				continue
			}
			switch color[e.to] {
			case inProgress:
				return &EpsilonCycleError{State: e.to}
			case unvisited:
				if err := visit(e.to); err != nil {
					return err
				}
			}
		}
		color[id] = done
		return nil
	}

	for id := range f.states {
		if color[id] != unvisited {
			continue
		}
		if err := visit(StateID(id)); err != nil {
			return err
		}
	}
	return nil
}
