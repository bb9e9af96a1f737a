package nfa

import "testing"

func mustCompile(t *testing.T, pattern string) *Fragment {
	t.Helper()
	f, err := Compile(pattern)
	if err != nil {
		t.Fatalf("Compile(%q): %v", pattern, err)
	}
	return f
}

func TestTestWord(t *testing.T) {
	tests := []struct {
		pattern string
		word    string
		want    bool
	}{
		// Kleene star.
		{"a*", "", true},
		{"a*", "aaaa", true},
		{"a*", "aab", false},
		{"ab*a", "aa", true},
		{"ab*a", "abbba", true},
		{"ab*a", "aba", true},
		{"ab*a", "ab", false},

		// Bracket class as alternation.
		{"[ab]", "a", true},
		{"[ab]", "b", true},
		{"[ab]", "c", false},
		{"[ab]", "ab", false},

		// One-or-more.
		{"a+", "", false},
		{"a+", "a", true},
		{"a+", "aaa", true},
		{"a+", "aab", false},

		// Zero-or-one.
		{"a?", "", true},
		{"a?", "a", true},
		{"a?", "aa", false},

		// Escape classes.
		{"\\d", "5", true},
		{"\\d", "0", true},
		{"\\d", "x", false},
		{"\\w", "k", true},
		{"\\w", "7", true},
		{"\\w", " ", false},
		{"\\a", "Q", true},
		{"\\a", "3", false},

		// Wildcard.
		{".", "z", true},
		{".", "8", true},
		{".", "", false},
		{".*", "anything", true},

		// Grouping and mixed forms.
		{"(ab)+", "ab", true},
		{"(ab)+", "abab", true},
		{"(ab)+", "aba", false},
		{"[ab]+x", "abx", true},
		{"[ab]+x", "x", false},
		{"\\d+", "2024", true},
		{"\\d+", "20x4", false},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+"/"+tt.word, func(t *testing.T) {
			f := mustCompile(t, tt.pattern)
			if got := f.TestWord(tt.word); got != tt.want {
				t.Errorf("TestWord(%q, %q) = %v, want %v", tt.pattern, tt.word, got, tt.want)
			}
		})
	}
}

func TestFindOccurrences(t *testing.T) {
	tests := []struct {
		pattern string
		text    string
		want    []Span
	}{
		// "aa" ends at 2 (attempt seeded after 'x'), "aba" ends at 4.
		// "aaba" is not a match of ab*a, so starts 1 and 2 survive.
		{"ab*a", "xaabay", []Span{{1, 3}, {2, 5}}},

		// A growing match with one start keeps its latest end.
		{"aa*", "aaa", []Span{{0, 3}}},

		{"ab", "xxabxxab", []Span{{2, 4}, {6, 8}}},
		{"[ab]", "ca", []Span{{1, 2}}},
		{"\\d\\d", "a12b345", []Span{{1, 3}, {4, 6}, {5, 7}}},
		{"z", "aaaa", nil},
		{"a", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+"/"+tt.text, func(t *testing.T) {
			f := mustCompile(t, tt.pattern)
			got := f.FindOccurrences(tt.text)
			if len(got) != len(tt.want) {
				t.Fatalf("FindOccurrences(%q, %q) = %v, want %v", tt.pattern, tt.text, got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Fatalf("FindOccurrences(%q, %q) = %v, want %v", tt.pattern, tt.text, got, tt.want)
				}
			}
		})
	}
}

// The effective label per state follows the fixed priority
// alpha > word > digit > any > literal.
func TestStep_ClassPriority(t *testing.T) {
	build := func(labels ...Label) (*Fragment, []StateID) {
		f := &Fragment{}
		src := f.AddState()
		targets := make([]StateID, len(labels))
		for i, lb := range labels {
			targets[i] = f.AddState()
			f.AddTransition(src, lb, targets[i])
		}
		f.start, f.final = src, src
		return f, targets
	}

	t.Run("alpha beats word and any for letters", func(t *testing.T) {
		f, targets := build(Any(), Word(), Alpha())
		fr := newFrontier(f.NumStates())
		fr.add(f.start, markerSet{0})

		next := f.step(fr, 'x')
		if !next.contains(targets[2]) || next.contains(targets[0]) || next.contains(targets[1]) {
			t.Error("letter did not take the alpha transition exclusively")
		}
	})

	t.Run("word beats digit and any for digits", func(t *testing.T) {
		f, targets := build(Any(), Digit(), Word())
		fr := newFrontier(f.NumStates())
		fr.add(f.start, markerSet{0})

		next := f.step(fr, '7')
		if !next.contains(targets[2]) || next.contains(targets[0]) || next.contains(targets[1]) {
			t.Error("digit did not take the word transition exclusively")
		}
	})

	t.Run("digit beats any", func(t *testing.T) {
		f, targets := build(Any(), Digit())
		fr := newFrontier(f.NumStates())
		fr.add(f.start, markerSet{0})

		next := f.step(fr, '7')
		if !next.contains(targets[1]) || next.contains(targets[0]) {
			t.Error("digit did not take the digit-class transition exclusively")
		}
	})

	t.Run("any beats literal", func(t *testing.T) {
		f, targets := build(Byte('q'), Any())
		fr := newFrontier(f.NumStates())
		fr.add(f.start, markerSet{0})

		next := f.step(fr, 'q')
		if !next.contains(targets[1]) || next.contains(targets[0]) {
			t.Error("wildcard did not shadow the literal transition")
		}
	})

	t.Run("alpha not applicable for digits", func(t *testing.T) {
		f, targets := build(Alpha(), Any())
		fr := newFrontier(f.NumStates())
		fr.add(f.start, markerSet{0})

		next := f.step(fr, '3')
		if !next.contains(targets[1]) || next.contains(targets[0]) {
			t.Error("digit must fall through alpha to the wildcard")
		}
	})
}

func TestClosure_MarkerUnion(t *testing.T) {
	// Two epsilon paths into the same state must union their markers, and
	// markers must propagate through chains of epsilon edges.
	f := &Fragment{}
	s0 := f.AddState()
	s1 := f.AddState()
	s2 := f.AddState()
	s3 := f.AddState()
	f.AddTransition(s0, Epsilon(), s2)
	f.AddTransition(s1, Epsilon(), s2)
	f.AddTransition(s2, Epsilon(), s3)
	f.start, f.final = s0, s3

	fr := newFrontier(f.NumStates())
	fr.add(s0, markerSet{1})
	fr.add(s1, markerSet{4})
	f.closure(fr)

	for _, id := range []StateID{s2, s3} {
		ms := fr.markers[id]
		if !ms.contains(1) || !ms.contains(4) || len(ms) != 2 {
			t.Errorf("state %d markers = %v, want [1 4]", id, ms)
		}
	}
	if fr.markers[s3].min() != 1 {
		t.Errorf("min marker = %d, want 1", fr.markers[s3].min())
	}
}

func TestFragment_ReusableAcrossMatches(t *testing.T) {
	f := mustCompile(t, "ab*a")
	for i := 0; i < 3; i++ {
		if !f.TestWord("abba") {
			t.Fatal("repeated TestWord changed its answer")
		}
		got := f.FindOccurrences("xaabay")
		if len(got) != 2 {
			t.Fatalf("repeated FindOccurrences changed its answer: %v", got)
		}
	}
}
