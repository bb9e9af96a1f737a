package syntax

import "strings"

// Canonicalize rewrites a validated raw pattern into the canonical
// four-operator form, inside-out:
//
//	[c1c2...cn]  ->  (c1+c2+...+cn)      bracket class as alternation
//	X+           ->  XX*                 one-or-more as duplicate + star
//	X?           ->  (X+?)               zero-or-one as "X or epsilon"
//
// where X is the immediately preceding atom: a parenthesized group, a bracket
// expansion, or a single (possibly escaped) literal. In the output, '+' means
// alternation, '*' the Kleene star, a bare '?' epsilon, juxtaposition
// concatenation and parentheses grouping. The input must have passed Validate.
func Canonicalize(pattern string) string {
	out, _ := canonicalize(pattern)
	return out
}

// canonicalize rewrites one nesting level. groupEnd maps the index of a
// rewritten group's closing parenthesis to the index of its opening one, so a
// quantifier that follows the group can recover the whole span of its atom.
func canonicalize(text string) (string, map[int]int) {
	groupEnd := make(map[int]int)

	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '[':
			j := i + 1
			for text[j] != ']' {
				j++
			}
			var b strings.Builder
			b.WriteByte('(')
			for k := i + 1; k < j; k++ {
				if k > i+1 {
					b.WriteByte(Plus)
				}
				b.WriteByte(text[k])
			}
			b.WriteByte(')')
			expanded := b.String()
			text = text[:i] + expanded + text[j+1:]
			groupEnd[i-1+len(expanded)] = i
			i = i - 1 + len(expanded)

		case '(':
			j := i + 1
			depth := 1
			for depth > 0 {
				if text[j] == '(' {
					depth++
				}
				if text[j] == ')' {
					depth--
				}
				j++
			}
			inner, innerEnds := canonicalize(text[i+1 : j-1])
			for end, beg := range innerEnds {
				groupEnd[end+i+1] = beg + i + 1
			}
			text = text[:i+1] + inner + text[j-1:]
			groupEnd[i+1+len(inner)] = i
			i = i + 1 + len(inner)

		case Plus:
			beg := i - 1
			if b, ok := groupEnd[i-1]; ok {
				beg = b
			}
			if i >= 2 && text[i-2] == Backslash {
				beg--
			}
			atom := text[beg:i]
			text = text[:beg] + atom + atom + string(Star) + text[i+1:]
			i += len(atom) // lands on the inserted '*'

		case Question:
			beg := i - 1
			if b, ok := groupEnd[i-1]; ok {
				beg = b
			}
			if i >= 2 && text[i-2] == Backslash {
				beg--
			}
			atom := text[beg:i]
			text = text[:beg] + "(" + atom + string(Plus) + string(Question) + ")" + text[i+1:]
			i = beg + len(atom) + 3 // lands on the inserted ')'
		}
	}

	return text, groupEnd
}
