// Package fsa implements finite-state automata: arena-backed NFAs and
// their construction surface, determinization via subset construction,
// DFA minimization with Hopcroft's algorithm, boolean language
// operations, and simulation of either kind over a symbol sequence.
package fsa

import (
	"iter"
	"sort"
)

// Symbol is an input symbol of an automaton: a concrete character, or ε,
// the no-input marker. ε only ever labels NFA edges; a DFA transition
// table never contains it.
type Symbol struct {
	ch      rune
	epsilon bool
}

// Epsilon is the no-input symbol.
var Epsilon = Symbol{epsilon: true}

// Char builds the symbol for a concrete character.
func Char(r rune) Symbol { return Symbol{ch: r} }

// IsEpsilon reports whether the symbol is ε.
func (s Symbol) IsEpsilon() bool { return s.epsilon }

// Rune returns the concrete character, 0 for ε.
func (s Symbol) Rune() rune { return s.ch }

func (s Symbol) String() string {
	if s.epsilon {
		return "ε"
	}
	return string(s.ch)
}

// Symbols turns a string into a lazy symbol sequence, one symbol per rune.
func Symbols(str string) iter.Seq[Symbol] {
	return func(yield func(Symbol) bool) {
		for _, r := range str {
			if !yield(Char(r)) {
				return
			}
		}
	}
}

// sortSymbols orders ε first, then by character. Keeps alphabet and
// transition iteration deterministic.
func sortSymbols(syms []Symbol) {
	sort.Slice(syms, func(i, j int) bool {
		if syms[i].epsilon != syms[j].epsilon {
			return syms[i].epsilon
		}
		return syms[i].ch < syms[j].ch
	})
}
