package literal

import (
	"github.com/coregx/thompson/syntax"
)

// MaxLiterals caps the alternation size the extractor will expand. Beyond
// this a prefilter stops paying for itself.
const MaxLiterals = 64

// Extract determines whether a canonical pattern denotes a finite set of
// plain words — no star, no epsilon, no wildcard, no escape classes — and if
// so returns that set as complete literals. The second result is false when
// the pattern is not purely literal or the expansion exceeds MaxLiterals.
func Extract(canonical string) (*Seq, bool) {
	p := &extractor{cur: syntax.NewCursor(canonical)}
	words, ok := p.expr()
	if !ok || !p.cur.Done() {
		return nil, false
	}

	seq := NewSeq()
	for _, w := range words {
		seq.Push(NewLiteral([]byte(w), true))
	}
	seq.Dedup()
	if seq.IsEmpty() {
		return nil, false
	}
	return seq, true
}

// extractor mirrors the compiler's grammar but computes the denoted word set
// instead of an automaton, bailing out on any non-literal construct.
type extractor struct {
	cur *syntax.Cursor
}

func (p *extractor) expr() ([]string, bool) {
	words, ok := p.term()
	if !ok {
		return nil, false
	}
	for p.cur.Char() == syntax.Plus {
		p.cur.Next()
		more, ok := p.term()
		if !ok {
			return nil, false
		}
		words = append(words, more...)
		if len(words) > MaxLiterals {
			return nil, false
		}
	}
	return words, true
}

func (p *extractor) term() ([]string, bool) {
	words, ok := p.factor()
	if !ok {
		return nil, false
	}
	for {
		ch := p.cur.Char()
		if !(syntax.IsLiteral(ch) || ch == '(') {
			return words, true
		}
		more, ok := p.factor()
		if !ok {
			return nil, false
		}
		if len(words)*len(more) > MaxLiterals {
			return nil, false
		}
		product := make([]string, 0, len(words)*len(more))
		for _, w := range words {
			for _, m := range more {
				product = append(product, w+m)
			}
		}
		words = product
	}
}

func (p *extractor) factor() ([]string, bool) {
	words, ok := p.atom()
	if !ok {
		return nil, false
	}
	if p.cur.Char() == syntax.Star {
		return nil, false // unbounded repetition has no finite word set
	}
	return words, true
}

func (p *extractor) atom() ([]string, bool) {
	switch ch := p.cur.Char(); {
	case ch == syntax.AnySymbol, ch == syntax.Question, ch == syntax.Backslash:
		// Wildcards, epsilon and classes are not plain words.
		return nil, false

	case syntax.IsLiteral(ch):
		p.cur.Next()
		return []string{string(ch)}, true

	case ch == '(':
		p.cur.Next()
		words, ok := p.expr()
		if !ok {
			return nil, false
		}
		if p.cur.Char() != ')' {
			return nil, false
		}
		p.cur.Next()
		return words, true

	default:
		return nil, false
	}
}
