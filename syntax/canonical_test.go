package syntax

import "testing"

func TestCanonicalize(t *testing.T) {
	tests := []struct {
		pattern string
		want    string
	}{
		// Already canonical.
		{"a", "a"},
		{"abc", "abc"},
		{"ab*a", "ab*a"},
		{"(ab)*", "(ab)*"},

		// Bracket classes become parenthesized alternations.
		{"[ab]", "(a+b)"},
		{"[abc]", "(a+b+c)"},
		{"x[ab]y", "x(a+b)y"},

		// One-or-more duplicates the atom and stars the copy.
		{"a+", "aa*"},
		{"ba+", "baa*"},
		{"(ab)+", "(ab)(ab)*"},
		{"[ab]+", "(a+b)(a+b)*"},
		{"\\d+", "\\d\\d*"},
		{"(a)+(b)+", "(a)(a)*(b)(b)*"},

		// Zero-or-one becomes "atom or epsilon".
		{"a?", "(a+?)"},
		{"a?b", "(a+?)b"},
		{"(ab)?", "((ab)+?)"},
		{"[ab]?", "((a+b)+?)"},
		{"\\d?", "(\\d+?)"},
		{"(a)?(b)?", "((a)+?)((b)+?)"},

		// Nested groups are rewritten before the quantifier that wraps them.
		{"(a[bc])?", "((a(b+c))+?)"},
		{"(a+b)", "(aa*b)"},
		{"((ab)+)?", "(((ab)(ab)*)+?)"},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			if got := Canonicalize(tt.pattern); got != tt.want {
				t.Errorf("Canonicalize(%q) = %q, want %q", tt.pattern, got, tt.want)
			}
		})
	}
}
