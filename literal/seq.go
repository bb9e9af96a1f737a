// Package literal represents literal byte sequences extracted from patterns.
//
// The engine uses it to recognize patterns that denote a finite alternation
// of plain words — the shape bracket classes canonicalize into — so that a
// multi-pattern prefilter can reject texts without running the automaton.
package literal

import "bytes"

// Literal is one concrete byte sequence a pattern can match. Complete means
// the sequence is an entire match on its own, not merely a prefix or
// substring of potential matches.
type Literal struct {
	Bytes    []byte
	Complete bool
}

// NewLiteral creates a Literal from b and the completeness flag.
func NewLiteral(b []byte, complete bool) Literal {
	return Literal{Bytes: b, Complete: complete}
}

// Len returns the literal's length in bytes.
func (l Literal) Len() int {
	return len(l.Bytes)
}

// Seq is a set of alternative literals.
type Seq struct {
	literals []Literal
}

// NewSeq creates a sequence from the given literals.
func NewSeq(lits ...Literal) *Seq {
	return &Seq{literals: lits}
}

// Push appends a literal to the sequence.
func (s *Seq) Push(l Literal) {
	s.literals = append(s.literals, l)
}

// Len returns the number of literals.
func (s *Seq) Len() int {
	return len(s.literals)
}

// Get returns the i-th literal.
func (s *Seq) Get(i int) Literal {
	return s.literals[i]
}

// IsEmpty reports whether the sequence has no literals.
func (s *Seq) IsEmpty() bool {
	return len(s.literals) == 0
}

// AllComplete reports whether every literal is a complete match.
func (s *Seq) AllComplete() bool {
	for _, l := range s.literals {
		if !l.Complete {
			return false
		}
	}
	return true
}

// Dedup removes duplicate byte sequences, keeping first occurrences in order.
func (s *Seq) Dedup() {
	out := s.literals[:0]
	for _, l := range s.literals {
		dup := false
		for _, kept := range out {
			if bytes.Equal(kept.Bytes, l.Bytes) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, l)
		}
	}
	s.literals = out
}
