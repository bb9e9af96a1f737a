package nfa

import (
	"github.com/coregx/thompson/syntax"
)

// Options configures fragment compilation.
type Options struct {
	// CheckAcyclic runs the epsilon-cycle detector on the finished fragment.
	// Disabling it is only safe for callers that never simulate the result.
	CheckAcyclic bool
}

// DefaultOptions returns the compilation defaults.
func DefaultOptions() Options {
	return Options{CheckAcyclic: true}
}

// Compile validates and canonicalizes a raw pattern, parses it into a
// fragment and verifies the epsilon subgraph is acyclic.
func Compile(pattern string) (*Fragment, error) {
	return CompileWithOptions(pattern, DefaultOptions())
}

// CompileWithOptions is Compile with explicit Options.
func CompileWithOptions(pattern string, opts Options) (*Fragment, error) {
	if err := syntax.Validate(pattern); err != nil {
		return nil, err
	}

	p := &parser{cur: syntax.NewCursor(syntax.Canonicalize(pattern))}
	f, err := p.expr()
	if err != nil {
		return nil, err
	}

	if opts.CheckAcyclic {
		if err := f.CheckAcyclic(); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// parser is the LL(1) recursive-descent driver over the canonical pattern:
//
//	expr   := term ( '+' term )*
//	term   := factor factor*
//	factor := atom ( '*' )?
//	atom   := literal | '?' | '\' class | '(' expr ')'
//
// Sub-fragments are built fresh and used exactly once, so every combinator
// call takes the consuming (move) path; no copies are made while parsing.
type parser struct {
	cur *syntax.Cursor
}

func (p *parser) expr() (*Fragment, error) {
	f, err := p.term()
	if err != nil {
		return nil, err
	}
	for p.cur.Char() == syntax.Plus {
		p.cur.Next()
		t, err := p.term()
		if err != nil {
			return nil, err
		}
		f = Alternate(f, t)
	}
	return f, nil
}

func (p *parser) term() (*Fragment, error) {
	f, err := p.factor()
	if err != nil {
		return nil, err
	}
	for startsAtom(p.cur.Char()) {
		g, err := p.factor()
		if err != nil {
			return nil, err
		}
		f = Concat(f, g)
	}
	return f, nil
}

// startsAtom reports whether ch can begin a concatenated factor. A bare '?'
// never appears in concatenation position in canonical form; it only occurs
// as an alternation branch inside the groups canonicalization emits.
func startsAtom(ch byte) bool {
	return syntax.IsLiteral(ch) || ch == '(' || ch == syntax.Backslash
}

func (p *parser) factor() (*Fragment, error) {
	f, err := p.atom()
	if err != nil {
		return nil, err
	}
	if p.cur.Char() == syntax.Star {
		f = Star(f)
		p.cur.Next()
	}
	return f, nil
}

func (p *parser) atom() (*Fragment, error) {
	switch ch := p.cur.Char(); {
	case ch == syntax.Backslash:
		p.cur.Next()
		var lb Label
		switch p.cur.Char() {
		case syntax.ClassDigit:
			lb = Digit()
		case syntax.ClassWord:
			lb = Word()
		case syntax.ClassAlpha:
			lb = Alpha()
		default:
			return nil, &UnexpectedAtomError{Pos: p.cur.Pos(), Symbol: p.cur.Char()}
		}
		p.cur.Next()
		return NewLiteral(lb), nil

	case ch == syntax.Question:
		p.cur.Next()
		return NewLiteral(Epsilon()), nil

	case ch == syntax.AnySymbol:
		p.cur.Next()
		return NewLiteral(Any()), nil

	case syntax.IsLiteral(ch):
		p.cur.Next()
		return NewLiteral(Byte(ch)), nil

	case ch == '(':
		p.cur.Next()
		f, err := p.expr()
		if err != nil {
			return nil, err
		}
		if p.cur.Char() == ')' {
			p.cur.Next()
		}
		return f, nil

	default:
		return nil, &UnexpectedAtomError{Pos: p.cur.Pos(), Symbol: ch}
	}
}
