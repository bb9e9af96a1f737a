package nfa

import (
	"errors"
	"testing"
)

func TestCheckAcyclic_CleanFragments(t *testing.T) {
	patterns := []string{"a", "ab*a", "(a+b)*c", "\\d\\w", "a?"}
	for _, pattern := range patterns {
		t.Run(pattern, func(t *testing.T) {
			f, err := Compile(pattern)
			if err != nil {
				t.Fatalf("Compile(%q): %v", pattern, err)
			}
			if err := f.CheckAcyclic(); err != nil {
				t.Errorf("CheckAcyclic() = %v, want nil", err)
			}
		})
	}
}

func TestCheckAcyclic_SelfLoop(t *testing.T) {
	f := NewLiteral(Byte('a'))
	f.AddTransition(f.Start(), Epsilon(), f.Start())

	var cerr *EpsilonCycleError
	if err := f.CheckAcyclic(); !errors.As(err, &cerr) {
		t.Fatalf("CheckAcyclic() = %v, want *EpsilonCycleError", err)
	}
}

func TestCheckAcyclic_EpsilonBackEdge(t *testing.T) {
	// start -ε-> final -ε-> start is a two-state epsilon cycle.
	f := NewLiteral(Epsilon())
	f.AddTransition(f.Final(), Epsilon(), f.Start())

	var cerr *EpsilonCycleError
	if err := f.CheckAcyclic(); !errors.As(err, &cerr) {
		t.Fatalf("CheckAcyclic() = %v, want *EpsilonCycleError", err)
	}
}

func TestCheckAcyclic_LiteralCycleAllowed(t *testing.T) {
	// A cycle through a non-epsilon edge is fine; only the epsilon
	// subgraph must stay acyclic.
	f := NewLiteral(Byte('a'))
	f.AddTransition(f.Final(), Byte('b'), f.Start())

	if err := f.CheckAcyclic(); err != nil {
		t.Fatalf("CheckAcyclic() = %v, want nil", err)
	}
}

func TestCompile_RejectsEpsilonCycle(t *testing.T) {
	// (a?)* builds a star over an alternation with an epsilon branch; the
	// star's back edge closes an all-epsilon loop.
	_, err := Compile("(a?)*")
	var cerr *EpsilonCycleError
	if !errors.As(err, &cerr) {
		t.Fatalf("Compile((a?)*) error = %v, want *EpsilonCycleError", err)
	}

	// With the check disabled, compilation itself succeeds.
	f, err := CompileWithOptions("(a?)*", Options{CheckAcyclic: false})
	if err != nil || f == nil {
		t.Fatalf("CompileWithOptions((a?)*, no check) = %v, %v", f, err)
	}
}
