package fsa

import (
	"sync"
	"testing"
)

// exactlyAB is the two-transition chain accepting only "ab".
func exactlyAB() *DFA {
	return &DFA{
		start: 0,
		states: []dfaState{
			{next: map[Symbol]StateID{Char('a'): 1}},
			{next: map[Symbol]StateID{Char('b'): 2}},
			{acceptable: true, next: map[Symbol]StateID{}},
		},
	}
}

func TestDFAEndOfOutcomes(t *testing.T) {
	d := exactlyAB()

	if _, ok := d.EndOf(Symbols("ba")); ok {
		t.Fatal("missing transition must report no reachable state")
	}

	end, ok := d.EndOf(Symbols("a"))
	if !ok {
		t.Fatal(`"a" should reach a state`)
	}
	if d.Acceptable(end) {
		t.Fatal("mid-chain state must not accept")
	}

	if !d.IsMatched(Symbols("ab")) {
		t.Fatal(`"ab" should match`)
	}
}

func TestDFACompleteAddsTrap(t *testing.T) {
	d := exactlyAB()
	total := d.Complete([]Symbol{Char('a'), Char('b')})

	if total.NumStates() != d.NumStates()+1 {
		t.Fatalf("want one trap state added, got %d states", total.NumStates())
	}
	if d.NumStates() != 3 {
		t.Fatal("Complete mutated its input")
	}

	// Total now, same language: every input reaches some state.
	for _, s := range allStrings("ab", 4) {
		if _, ok := total.EndOf(Symbols(s)); !ok {
			t.Fatalf("%q: total DFA lost a transition", s)
		}
		if got, want := total.IsMatched(Symbols(s)), d.IsMatched(Symbols(s)); got != want {
			t.Errorf("%q: got %v want %v", s, got, want)
		}
	}
}

func TestDFACompleteAlreadyTotal(t *testing.T) {
	d := &DFA{
		start:  0,
		states: []dfaState{{acceptable: true, next: map[Symbol]StateID{Char('a'): 0}}},
	}
	total := d.Complete([]Symbol{Char('a')})
	if total.NumStates() != 1 {
		t.Fatalf("no trap needed, got %d states", total.NumStates())
	}
}

func TestDFATransitionsSorted(t *testing.T) {
	d := &DFA{
		start: 0,
		states: []dfaState{
			{next: map[Symbol]StateID{Char('c'): 0, Char('a'): 0, Char('b'): 0}},
		},
	}
	var got []rune
	for sym := range d.Transitions(0) {
		got = append(got, sym.Rune())
	}
	if string(got) != "abc" {
		t.Fatalf("want symbol order abc, got %q", string(got))
	}
}

// Simulation is read-only, so concurrent matches against one automaton
// need no coordination.
func TestDFAConcurrentMatching(t *testing.T) {
	d := exactlyAB()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if !d.IsMatched(Symbols("ab")) || d.IsMatched(Symbols("ba")) {
					t.Error("concurrent match gave a wrong answer")
					return
				}
			}
		}()
	}
	wg.Wait()
}
