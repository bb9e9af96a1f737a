package syntax

// Validate scans a raw pattern once, left to right, and rejects it with a
// *SyntaxError at the first offense:
//
//   - a symbol outside the accepted alphabet
//   - unbalanced round or square brackets
//   - an empty '()' or '[]' group
//   - a non-literal symbol inside a '[...]' group
//   - a backslash not followed by 'd', 'w' or 'a'
//   - a quantifier opening the pattern, two quantifiers in a row, or a
//     quantifier after anything other than a literal, ')' or ']'
//
// An empty pattern is rejected with ErrEmptyPattern. Validation does not
// guarantee the compiled automaton is simulatable; epsilon cycles are caught
// later, after construction.
func Validate(pattern string) error {
	if pattern == "" {
		return ErrEmptyPattern
	}

	var roundOpen []int // positions of unmatched '('
	inSquare := false
	squareOpen := -1

	for i := 0; i < len(pattern); i++ {
		b := pattern[i]
		if !IsAccepted(b) {
			return &SyntaxError{Pos: i, Symbol: b, Message: "symbol not in the accepted alphabet"}
		}

		if inSquare {
			if b == ']' {
				if i == squareOpen+1 {
					return &SyntaxError{Pos: squareOpen, Symbol: '[', Message: "empty bracket group"}
				}
				inSquare = false
				continue
			}
			if !IsLiteral(b) {
				return &SyntaxError{Pos: i, Symbol: b, Message: "bracket group may contain only literal symbols"}
			}
			continue
		}

		switch {
		case b == '(':
			roundOpen = append(roundOpen, i)
		case b == ')':
			if len(roundOpen) == 0 {
				return &SyntaxError{Pos: i, Symbol: b, Message: "unmatched closing parenthesis"}
			}
			if i == roundOpen[len(roundOpen)-1]+1 {
				return &SyntaxError{Pos: roundOpen[len(roundOpen)-1], Symbol: '(', Message: "empty group"}
			}
			roundOpen = roundOpen[:len(roundOpen)-1]
		case b == '[':
			inSquare = true
			squareOpen = i
		case b == ']':
			return &SyntaxError{Pos: i, Symbol: b, Message: "unmatched closing bracket"}
		case b == Backslash:
			if i+1 >= len(pattern) || !IsClassSymbol(pattern[i+1]) {
				return &SyntaxError{Pos: i, Symbol: b, Message: "backslash must be followed by 'd', 'w' or 'a'"}
			}
			i++ // the class symbol is consumed together with the backslash
		case IsMeta(b):
			if i == 0 {
				return &SyntaxError{Pos: 0, Symbol: b, Message: "quantifier at start of pattern"}
			}
			prev := pattern[i-1]
			if IsMeta(prev) {
				// Report the first quantifier of the pair.
				return &SyntaxError{Pos: i - 1, Symbol: prev, Message: "consecutive quantifiers"}
			}
			if !IsLiteral(prev) && prev != ')' && prev != ']' {
				return &SyntaxError{Pos: i, Symbol: b, Message: "quantifier must follow a literal symbol or a closed group"}
			}
		}
	}

	if inSquare {
		return &SyntaxError{Pos: squareOpen, Symbol: '[', Message: "unclosed bracket group"}
	}
	if len(roundOpen) > 0 {
		return &SyntaxError{Pos: roundOpen[0], Symbol: '(', Message: "unclosed group"}
	}
	return nil
}
