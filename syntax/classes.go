// Package syntax implements the pattern front end: byte-class tables for the
// accepted alphabet, raw-pattern validation, rewriting into the canonical
// four-operator form, and the lookahead cursor the compiler reads from.
//
// The accepted surface syntax is deliberately small: ASCII letters, digits,
// space and the wildcard '.' as literals, '()' and '[]' for grouping, the
// quantifiers '*', '+' and '?', and the escape classes '\d', '\w' and '\a'.
// Canonicalization reduces all of it to four operator meanings: '+' is
// alternation, '*' is the Kleene star, a bare '?' is epsilon and
// juxtaposition is concatenation.
package syntax

// Named symbols of the surface syntax.
const (
	Space     = ' '
	AnySymbol = '.'

	Star     = '*'
	Plus     = '+'
	Question = '?'

	Backslash  = '\\'
	ClassDigit = 'd'
	ClassWord  = 'w'
	ClassAlpha = 'a'
)

// Byte-class lookup tables, indexed by the raw pattern byte.
var (
	literalTable  [256]bool // letters, digits, space, '.'
	metaTable     [256]bool // '*', '+', '?'
	classTable    [256]bool // 'd', 'w', 'a' (valid after a backslash)
	groupTable    [256]bool // '(', ')', '[', ']'
	acceptedTable [256]bool // union of everything above plus '\\'
)

func init() {
	for b := 'a'; b <= 'z'; b++ {
		literalTable[b] = true
	}
	for b := 'A'; b <= 'Z'; b++ {
		literalTable[b] = true
	}
	for b := '0'; b <= '9'; b++ {
		literalTable[b] = true
	}
	literalTable[Space] = true
	literalTable[AnySymbol] = true

	metaTable[Star] = true
	metaTable[Plus] = true
	metaTable[Question] = true

	classTable[ClassDigit] = true
	classTable[ClassWord] = true
	classTable[ClassAlpha] = true

	for _, b := range []byte{'(', ')', '[', ']'} {
		groupTable[b] = true
	}

	for i := 0; i < 256; i++ {
		acceptedTable[i] = literalTable[i] || metaTable[i] || classTable[i] || groupTable[i]
	}
	acceptedTable[Backslash] = true
}

// IsLiteral reports whether b is a literal symbol: an ASCII letter or digit,
// a space, or the wildcard '.'.
func IsLiteral(b byte) bool {
	return literalTable[b]
}

// IsMeta reports whether b is a quantifier meta symbol ('*', '+' or '?').
func IsMeta(b byte) bool {
	return metaTable[b]
}

// IsClassSymbol reports whether b completes an escape class after a
// backslash ('d', 'w' or 'a').
func IsClassSymbol(b byte) bool {
	return classTable[b]
}

// IsAccepted reports whether b belongs to the full accepted alphabet.
func IsAccepted(b byte) bool {
	return acceptedTable[b]
}

// IsASCIILetter reports whether b is in [A-Za-z].
func IsASCIILetter(b byte) bool {
	return ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}

// IsASCIIDigit reports whether b is in [0-9].
func IsASCIIDigit(b byte) bool {
	return '0' <= b && b <= '9'
}
