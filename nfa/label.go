package nfa

import "fmt"

// LabelKind identifies the type of a transition label.
type LabelKind uint8

const (
	// LabelEpsilon is the empty-string transition.
	LabelEpsilon LabelKind = iota

	// LabelByte matches exactly one literal byte.
	LabelByte

	// LabelAny is the wildcard: it matches any input symbol.
	LabelAny

	// LabelDigit matches an ASCII digit ('\d').
	LabelDigit

	// LabelWord matches an ASCII letter or digit ('\w').
	LabelWord

	// LabelAlpha matches an ASCII letter ('\a').
	LabelAlpha
)

// Label is a transition label: epsilon, a literal byte, or a class marker.
// Labels are comparable values.
type Label struct {
	kind LabelKind
	b    byte // valid only for LabelByte
}

// Epsilon returns the empty-string label.
func Epsilon() Label { return Label{kind: LabelEpsilon} }

// Byte returns a literal label for b.
func Byte(b byte) Label { return Label{kind: LabelByte, b: b} }

// Any returns the wildcard label.
func Any() Label { return Label{kind: LabelAny} }

// Digit returns the digit-class label.
func Digit() Label { return Label{kind: LabelDigit} }

// Word returns the word-class label.
func Word() Label { return Label{kind: LabelWord} }

// Alpha returns the alpha-class label.
func Alpha() Label { return Label{kind: LabelAlpha} }

// Kind returns the label's kind.
func (l Label) Kind() LabelKind { return l.kind }

// Byte returns the literal byte of a LabelByte label, 0 otherwise.
func (l Label) Byte() byte {
	if l.kind == LabelByte {
		return l.b
	}
	return 0
}

// IsEpsilon reports whether the label is the empty-string label.
func (l Label) IsEpsilon() bool { return l.kind == LabelEpsilon }

// String renders the label for diagnostics and for the rendering boundary.
// Epsilon is rendered distinctly from every literal.
func (l Label) String() string {
	switch l.kind {
	case LabelEpsilon:
		return "ε"
	case LabelByte:
		return string(l.b)
	case LabelAny:
		return "."
	case LabelDigit:
		return `\d`
	case LabelWord:
		return `\w`
	case LabelAlpha:
		return `\a`
	default:
		return fmt.Sprintf("Label(%d)", l.kind)
	}
}
