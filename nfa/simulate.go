package nfa

import (
	"sort"

	"github.com/coregx/thompson/internal/sparse"
	"github.com/coregx/thompson/syntax"
)

// markerSet is a sorted set of origin markers carried by an active state.
// During substring search a marker is the text position just before the
// match attempt began; whole-word testing uses a single fixed marker.
type markerSet []int

func (m markerSet) contains(v int) bool {
	i := sort.SearchInts(m, v)
	return i < len(m) && m[i] == v
}

// union returns m with every element of other added, and whether m grew.
func (m markerSet) union(other markerSet) (markerSet, bool) {
	grew := false
	for _, v := range other {
		i := sort.SearchInts(m, v)
		if i < len(m) && m[i] == v {
			continue
		}
		m = append(m, 0)
		copy(m[i+1:], m[i:])
		m[i] = v
		grew = true
	}
	return m, grew
}

// min returns the smallest marker. Only valid on a non-empty set.
func (m markerSet) min() int {
	return m[0]
}

// frontier is the set of simultaneously active states, each carrying the
// markers of the match attempts that reached it.
type frontier struct {
	active  *sparse.Set
	markers []markerSet
}

func newFrontier(numStates int) *frontier {
	return &frontier{
		active:  sparse.NewSet(uint32(numStates)),
		markers: make([]markerSet, numStates),
	}
}

// add activates id with the given markers, unioning into any markers already
// present. It reports whether the state is new to the frontier or its marker
// set grew.
func (fr *frontier) add(id StateID, ms markerSet) bool {
	if !fr.active.Contains(uint32(id)) {
		fr.active.Insert(uint32(id))
		fr.markers[id] = append(markerSet(nil), ms...)
		return true
	}
	merged, grew := fr.markers[id].union(ms)
	fr.markers[id] = merged
	return grew
}

func (fr *frontier) contains(id StateID) bool {
	return fr.active.Contains(uint32(id))
}

// closure expands the frontier across epsilon edges until no new state/marker
// pair is discovered. A state is re-enqueued whenever its marker set grows,
// so markers propagate through epsilon chains of any depth. Termination
// relies on the epsilon subgraph being acyclic, which construction enforces.
func (f *Fragment) closure(fr *frontier) {
	queue := append([]StateID(nil), idsOf(fr.active.Values())...)
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		ms := fr.markers[id]
		for _, e := range f.states[id].edges {
			if !e.label.IsEpsilon() {
				continue
			}
			if fr.add(e.to, ms) {
				queue = append(queue, e.to)
			}
		}
	}
}

func idsOf(values []uint32) []StateID {
	ids := make([]StateID, len(values))
	for i, v := range values {
		ids[i] = StateID(v)
	}
	return ids
}

// effectiveLabel picks the single label a state tests against an input
// symbol. Classes take precedence over the wildcard, and the wildcard over
// the literal, in the fixed order alpha > word > digit > any > literal.
// The order is part of the observable matching semantics; do not reorder.
func (f *Fragment) effectiveLabel(id StateID, b byte) Label {
	st := &f.states[id]
	switch {
	case st.hasLabel(Alpha()) && syntax.IsASCIILetter(b):
		return Alpha()
	case st.hasLabel(Word()) && (syntax.IsASCIILetter(b) || syntax.IsASCIIDigit(b)):
		return Word()
	case st.hasLabel(Digit()) && syntax.IsASCIIDigit(b):
		return Digit()
	case st.hasLabel(Any()):
		return Any()
	default:
		return Byte(b)
	}
}

// step advances every active state on one input symbol, following all edges
// under the state's effective label. Marker sets of all sources reaching the
// same destination are unioned.
func (f *Fragment) step(fr *frontier, b byte) *frontier {
	next := newFrontier(len(f.states))
	for _, v := range fr.active.Values() {
		id := StateID(v)
		lb := f.effectiveLabel(id, b)
		for _, e := range f.states[id].edges {
			if e.label == lb {
				next.add(e.to, fr.markers[id])
			}
		}
	}
	return next
}

// TestWord reports whether the fragment matches word exactly, end to end.
// Matching only reads the transition tables; a fragment may serve any number
// of sequential matches.
func (f *Fragment) TestWord(word string) bool {
	f.check()
	fr := newFrontier(len(f.states))
	fr.add(f.start, markerSet{0})
	f.closure(fr)

	for i := 0; i < len(word); i++ {
		fr = f.step(fr, word[i])
		f.closure(fr)
	}
	return fr.contains(f.final)
}

// Span is one occurrence of the pattern in a text; End is exclusive.
type Span struct {
	Start int
	End   int
}

// FindOccurrences scans text left to right and returns the occurrences of
// the pattern as spans, in the order their start positions were first
// discovered (increasing end order under the scan).
//
// The frontier is seeded with marker -1 and the initial state is re-seeded
// with marker i after consuming text[i], starting a fresh match attempt at
// every position. When the final state turns up in a closure, the candidate
// span runs from the smallest marker (exclusive) to the current position
// (inclusive). Marker sets blend when attempts overlap, losing per-path
// precision, so each candidate is independently re-verified with TestWord
// before it is recorded; that re-check is required for correctness, not an
// optimization. A later, longer occurrence with the same start overwrites
// the earlier end. Overlapping spans are reported as found; resolving
// overlaps is the highlighting collaborator's concern.
func (f *Fragment) FindOccurrences(text string) []Span {
	f.check()
	fr := newFrontier(len(f.states))
	fr.add(f.start, markerSet{-1})
	f.closure(fr)

	var starts []int
	ends := make(map[int]int)

	for i := 0; i < len(text); i++ {
		next := f.step(fr, text[i])
		next.add(f.start, markerSet{i})
		f.closure(next)
		fr = next

		if !fr.contains(f.final) {
			continue
		}
		start := fr.markers[f.final].min() + 1
		if start >= i+1 {
			continue // empty candidate
		}
		if !f.TestWord(text[start : i+1]) {
			continue
		}
		if _, seen := ends[start]; !seen {
			starts = append(starts, start)
		}
		ends[start] = i + 1
	}

	spans := make([]Span, 0, len(starts))
	for _, s := range starts {
		spans = append(spans, Span{Start: s, End: ends[s]})
	}
	return spans
}
