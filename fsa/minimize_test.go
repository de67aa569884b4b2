package fsa

import "testing"

// endsInB builds a wasteful four-state DFA for "strings over {a,b} ending
// in b": states 0/1 and 2/3 are pairwise equivalent, so the minimal
// automaton has two states.
func endsInB() *DFA {
	next := func(a, b StateID) map[Symbol]StateID {
		return map[Symbol]StateID{Char('a'): a, Char('b'): b}
	}
	return &DFA{
		start: 0,
		states: []dfaState{
			{next: next(1, 2)},
			{next: next(1, 2)},
			{acceptable: true, next: next(1, 3)},
			{acceptable: true, next: next(1, 3)},
		},
	}
}

func TestMinimizeMergesEquivalentStates(t *testing.T) {
	d := endsInB()
	m := d.Minimize()
	if m.NumStates() != 2 {
		t.Fatalf("want 2 states, got %d", m.NumStates())
	}
	for _, s := range allStrings("ab", 4) {
		if got, want := m.IsMatched(Symbols(s)), d.IsMatched(Symbols(s)); got != want {
			t.Errorf("%q: minimized says %v, original says %v", s, got, want)
		}
	}
	if d.NumStates() != 4 {
		t.Fatal("Minimize mutated its input")
	}
}

func TestMinimizeIdempotent(t *testing.T) {
	m := endsInB().Minimize()
	again := m.Minimize()
	if again.NumStates() != m.NumStates() {
		t.Fatalf("second pass changed state count: %d -> %d", m.NumStates(), again.NumStates())
	}
	if again == m {
		t.Fatal("Minimize must return a fresh automaton")
	}
}

func TestMinimizeDropsUnreachable(t *testing.T) {
	d := endsInB()
	// An unreachable accepting state must not pollute the partition.
	d.states = append(d.states, dfaState{acceptable: true, next: map[Symbol]StateID{}})
	m := d.Minimize()
	if m.NumStates() != 2 {
		t.Fatalf("want 2 states after dropping unreachable, got %d", m.NumStates())
	}
}

// Partial tables distinguish states too: an accepting state with no
// outgoing transitions is not equivalent to an accepting state that can
// keep matching.
func TestMinimizePartialTable(t *testing.T) {
	// Accepts "" and "a"; state 1 is a dead end.
	d := &DFA{
		start: 0,
		states: []dfaState{
			{acceptable: true, next: map[Symbol]StateID{Char('a'): 1}},
			{acceptable: true, next: map[Symbol]StateID{}},
		},
	}
	m := d.Minimize()
	if m.NumStates() != 2 {
		t.Fatalf("states 0 and 1 are distinguishable, want 2 states, got %d", m.NumStates())
	}
	for in, want := range map[string]bool{"": true, "a": true, "aa": false} {
		if got := m.IsMatched(Symbols(in)); got != want {
			t.Errorf("%q: got %v want %v", in, got, want)
		}
	}
}

func TestMinimizeSingleBlock(t *testing.T) {
	// a* as a one-state loop: nothing to merge, nothing to lose.
	d := &DFA{
		start:  0,
		states: []dfaState{{acceptable: true, next: map[Symbol]StateID{Char('a'): 0}}},
	}
	m := d.Minimize()
	if m.NumStates() != 1 {
		t.Fatalf("want 1 state, got %d", m.NumStates())
	}
	if !m.IsMatched(Symbols("aaa")) || m.IsMatched(Symbols("b")) {
		t.Fatal("language changed")
	}
}
