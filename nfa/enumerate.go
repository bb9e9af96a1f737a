package nfa

import (
	"github.com/coregx/thompson/internal/sparse"
)

// Edge is one rendered transition: From and To are the stable BFS indices of
// the endpoints and Label its transition label. This is the boundary handed
// to graph-rendering collaborators; nothing flows back into the core.
type Edge struct {
	From  int
	To    int
	Label Label
}

// Enumerate assigns every state reachable from the initial state a stable
// integer index in breadth-first first-discovery order, the initial state
// taking index 0. The numbering is cached until the next structural
// mutation. States unreachable from the initial state keep index -1.
func (f *Fragment) Enumerate() {
	f.check()
	if f.numbered {
		return
	}

	f.index = make([]int, len(f.states))
	for i := range f.index {
		f.index[i] = -1
	}

	visited := sparse.NewSet(uint32(len(f.states)))
	visited.Insert(uint32(f.start))
	queue := []StateID{f.start}
	next := 0

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		f.index[id] = next
		next++
		for _, e := range f.states[id].edges {
			if visited.Contains(uint32(e.to)) {
				continue
			}
			visited.Insert(uint32(e.to))
			queue = append(queue, e.to)
		}
	}
	f.numbered = true
}

// StateIndex returns the BFS index of a state, enumerating first if needed.
// Returns -1 for states unreachable from the initial state.
func (f *Fragment) StateIndex(id StateID) int {
	f.Enumerate()
	return f.index[id]
}

// StartIndex returns the initial state's index (always 0 after enumeration).
func (f *Fragment) StartIndex() int {
	return f.StateIndex(f.start)
}

// FinalIndex returns the final state's index.
func (f *Fragment) FinalIndex() int {
	return f.StateIndex(f.final)
}

// Edges lists the transitions among states reachable from the initial state,
// in breadth-first order of their source states, with endpoints given as BFS
// indices.
func (f *Fragment) Edges() []Edge {
	f.Enumerate()

	visited := sparse.NewSet(uint32(len(f.states)))
	visited.Insert(uint32(f.start))
	queue := []StateID{f.start}
	var edges []Edge

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		for _, e := range f.states[id].edges {
			edges = append(edges, Edge{From: f.index[id], To: f.index[e.to], Label: e.label})
			if visited.Contains(uint32(e.to)) {
				continue
			}
			visited.Insert(uint32(e.to))
			queue = append(queue, e.to)
		}
	}
	return edges
}
