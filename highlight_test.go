package thompson

import "testing"

func TestHighlightPlain(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		spans []Span
		want  string
	}{
		{"no spans", "hello", nil, "hello"},
		{"single", "xaby", []Span{{Start: 1, End: 3}}, "x[ab]y"},
		{"adjacent", "abcd", []Span{{Start: 0, End: 2}, {Start: 2, End: 4}}, "[ab][cd]"},
		{"whole text", "ab", []Span{{Start: 0, End: 2}}, "[ab]"},
		{"overlap clipped", "xaabay", []Span{{Start: 1, End: 3}, {Start: 2, End: 5}}, "x[aa][ba]y"},
		{"contained dropped", "abcdef", []Span{{Start: 0, End: 4}, {Start: 1, End: 3}}, "[abcd]ef"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HighlightPlain(tt.text, tt.spans); got != tt.want {
				t.Errorf("HighlightPlain(%q, %v) = %q, want %q", tt.text, tt.spans, got, tt.want)
			}
		})
	}
}

func TestHighlight_ANSI(t *testing.T) {
	got := Highlight("xay", []Span{{Start: 1, End: 2}})
	want := "x" + ansiMatch + "a" + ansiReset + "y"
	if got != want {
		t.Errorf("Highlight = %q, want %q", got, want)
	}
}

func TestSortSpans(t *testing.T) {
	spans := []Span{{Start: 4, End: 6}, {Start: 1, End: 3}, {Start: 1, End: 2}}
	SortSpans(spans)
	want := []Span{{Start: 1, End: 2}, {Start: 1, End: 3}, {Start: 4, End: 6}}
	for i := range want {
		if spans[i] != want[i] {
			t.Fatalf("SortSpans = %v, want %v", spans, want)
		}
	}
}
