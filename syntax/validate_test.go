package syntax

import (
	"errors"
	"testing"
)

func TestValidate_Accept(t *testing.T) {
	patterns := []string{
		"a",
		"abc",
		"ab*a",
		"a+",
		"a?",
		"[ab]",
		"[ab]+x",
		"(ab)*",
		"((a))",
		"(a)(b)",
		"\\d",
		"\\d\\w\\a",
		"\\d+",
		"a b",
		".",
		".*",
		"(a[bc])?",
	}

	for _, pattern := range patterns {
		t.Run(pattern, func(t *testing.T) {
			if err := Validate(pattern); err != nil {
				t.Errorf("Validate(%q) = %v, want nil", pattern, err)
			}
		})
	}
}

func TestValidate_Reject(t *testing.T) {
	tests := []struct {
		pattern string
		wantPos int
		wantSym byte
	}{
		{"(a", 0, '('},
		{"a**", 1, '*'},
		{"[]", 0, '['},
		{"\\x", 0, '\\'},
		{"\\", 0, '\\'},
		{"*a", 0, '*'},
		{"+", 0, '+'},
		{"a+*", 1, '+'},
		{"a)", 1, ')'},
		{"()", 0, '('},
		{"(*a)", 1, '*'},
		{"[a*]", 2, '*'},
		{"[a(]", 2, '('},
		{"[ab", 0, '['},
		{"ab]", 2, ']'},
		{"a{b}", 1, '{'},
		{"a#", 1, '#'},
		{"(a))", 3, ')'},
		{"a(?b)", 2, '?'},
		{"[\\d]", 1, '\\'},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			err := Validate(tt.pattern)
			if err == nil {
				t.Fatalf("Validate(%q) = nil, want error", tt.pattern)
			}
			var serr *SyntaxError
			if !errors.As(err, &serr) {
				t.Fatalf("Validate(%q) = %v, want *SyntaxError", tt.pattern, err)
			}
			if serr.Pos != tt.wantPos {
				t.Errorf("Validate(%q) position = %d, want %d", tt.pattern, serr.Pos, tt.wantPos)
			}
			if serr.Symbol != tt.wantSym {
				t.Errorf("Validate(%q) symbol = %q, want %q", tt.pattern, string(serr.Symbol), string(tt.wantSym))
			}
		})
	}
}

func TestValidate_EmptyPattern(t *testing.T) {
	if err := Validate(""); !errors.Is(err, ErrEmptyPattern) {
		t.Errorf("Validate(\"\") = %v, want ErrEmptyPattern", err)
	}
}
