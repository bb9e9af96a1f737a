package thompson

import (
	"sort"
	"strings"
)

// ANSI escapes used by Highlight: underlined blue for match text.
const (
	ansiMatch = "\x1b[4;34m"
	ansiReset = "\x1b[0m"
)

// Highlight returns text with every span wrapped in ANSI underline/color
// escapes. Spans must be sorted by Start ascending; a span starting inside
// already-emitted text is clipped to resume at the previous span's end, and
// spans entirely inside emitted text are dropped.
func Highlight(text string, spans []Span) string {
	return annotate(text, spans, ansiMatch, ansiReset)
}

// HighlightPlain is Highlight with bracket markers instead of escape codes,
// for output that is not a terminal.
func HighlightPlain(text string, spans []Span) string {
	return annotate(text, spans, "[", "]")
}

// SortSpans orders spans by Start ascending (End as tie-break), as Highlight
// expects. FindOccurrences reports spans in scan order, which is not always
// start order.
func SortSpans(spans []Span) {
	sort.Slice(spans, func(i, j int) bool {
		if spans[i].Start != spans[j].Start {
			return spans[i].Start < spans[j].Start
		}
		return spans[i].End < spans[j].End
	})
}

func annotate(text string, spans []Span, opening, closing string) string {
	var b strings.Builder
	emitted := 0

	for _, span := range spans {
		start, end := span.Start, span.End
		if start < emitted {
			start = emitted // clip into the already-emitted region
		}
		if end <= start {
			continue
		}
		b.WriteString(text[emitted:start])
		b.WriteString(opening)
		b.WriteString(text[start:end])
		b.WriteString(closing)
		emitted = end
	}
	b.WriteString(text[emitted:])
	return b.String()
}
