// Package thompson compiles a restricted regular-expression syntax into a
// Thompson NFA and simulates it, either to test a word end to end or to find
// the occurrences of the pattern inside a text.
//
// The surface syntax accepts ASCII letters, digits, space and the wildcard
// '.', grouping with '()' and character classes with '[]', the quantifiers
// '*', '+' and '?', and the escape classes '\d' (digit), '\w' (letter or
// digit) and '\a' (letter). Patterns are validated, rewritten into a
// four-operator canonical form and compiled into an automaton fragment whose
// epsilon subgraph is verified acyclic.
//
// Basic usage:
//
//	re, err := thompson.Compile(`[ab]+a`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	re.MatchWord("abba")              // true
//	re.FindOccurrences("xxabbaxx")    // spans of occurrences
//
// A compiled Regex only reads its automaton while matching, so it may serve
// any number of sequential matches.
package thompson

import (
	"github.com/coregx/thompson/nfa"
)

// Span is one occurrence of a pattern in a text; End is exclusive.
type Span = nfa.Span

// Options configures compilation.
type Options = nfa.Options

// Regex is a compiled pattern together with the engine's search strategy.
type Regex struct {
	pattern  string
	fragment *nfa.Fragment
	engine   *engine
}

// Compile compiles a pattern with default options.
//
// It fails with syntax.ErrEmptyPattern or *syntax.SyntaxError when the raw
// pattern is rejected, and with *nfa.EpsilonCycleError when the compiled
// fragment's epsilon subgraph contains a cycle.
func Compile(pattern string) (*Regex, error) {
	return CompileWithOptions(pattern, nfa.DefaultOptions())
}

// MustCompile is Compile for patterns known to be valid; it panics on error.
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic("thompson: Compile(`" + pattern + "`): " + err.Error())
	}
	return re
}

// CompileWithOptions compiles a pattern with explicit Options.
func CompileWithOptions(pattern string, opts Options) (*Regex, error) {
	fragment, err := nfa.CompileWithOptions(pattern, opts)
	if err != nil {
		return nil, err
	}
	return &Regex{
		pattern:  pattern,
		fragment: fragment,
		engine:   newEngine(pattern),
	}, nil
}

// Pattern returns the source pattern.
func (r *Regex) Pattern() string {
	return r.pattern
}

// Fragment exposes the compiled automaton for rendering collaborators, which
// consume its BFS state numbering and edge list. The fragment must not be
// passed to a consuming combinator while the Regex is in use.
func (r *Regex) Fragment() *nfa.Fragment {
	return r.fragment
}

// MatchWord reports whether the pattern matches word exactly, end to end.
func (r *Regex) MatchWord(word string) bool {
	return r.fragment.TestWord(word)
}

// FindOccurrences returns the occurrences of the pattern in text, in the
// scan's discovery order. Overlapping spans are reported as found; callers
// rendering them are expected to resolve overlaps (see Highlight).
func (r *Regex) FindOccurrences(text string) []Span {
	if r.engine.skipSearch(text) {
		return nil
	}
	return r.fragment.FindOccurrences(text)
}
