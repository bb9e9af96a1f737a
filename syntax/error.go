package syntax

import (
	"errors"
	"fmt"
)

// ErrEmptyPattern indicates an empty raw pattern was rejected outright.
var ErrEmptyPattern = errors.New("syntax: empty pattern")

// SyntaxError describes a rejected raw pattern. Pos is the 0-based position
// of the offending symbol.
type SyntaxError struct {
	Pos     int
	Symbol  byte
	Message string
}

// Error implements the error interface
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at position %d (%q): %s", e.Pos, string(e.Symbol), e.Message)
}
