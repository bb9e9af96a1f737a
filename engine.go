package thompson

import (
	"github.com/coregx/ahocorasick"

	"github.com/coregx/thompson/literal"
	"github.com/coregx/thompson/syntax"
)

// engine holds the per-pattern search strategy. When the canonical pattern
// denotes a finite alternation of complete literals, an Aho-Corasick
// automaton over those literals acts as a prefilter: a text it does not
// match cannot contain any occurrence, so the frontier scan is skipped
// entirely. The positive path always runs the NFA; the prefilter never
// decides a match by itself.
type engine struct {
	prefilter *ahocorasick.Automaton
}

func newEngine(pattern string) *engine {
	e := &engine{}

	seq, ok := literal.Extract(syntax.Canonicalize(pattern))
	if !ok || !seq.AllComplete() {
		return e
	}

	builder := ahocorasick.NewBuilder()
	for i := 0; i < seq.Len(); i++ {
		builder.AddPattern(seq.Get(i).Bytes)
	}
	auto, err := builder.Build()
	if err != nil {
		// No prefilter; the NFA alone is always correct.
		return e
	}
	e.prefilter = auto
	return e
}

// skipSearch reports whether the prefilter proves text has no occurrence.
func (e *engine) skipSearch(text string) bool {
	return e.prefilter != nil && !e.prefilter.IsMatch([]byte(text))
}
