// Package regexfsa compiles algebraic regular expressions down to
// minimized DFAs and matches strings against them. The full pipeline is
// regex.Regex → Thompson NFA → subset-construction DFA → Hopcroft-minimized
// DFA; Matcher chains the stages for one-shot use, while the fsa and regex
// packages expose each stage separately.
package regexfsa

import (
	"github.com/TangentW/regex-fsa/fsa"
	"github.com/TangentW/regex-fsa/regex"
)

// Matcher holds a fully compiled, minimized DFA. It is immutable and safe
// for concurrent use: any number of IsMatched calls may run in parallel.
type Matcher struct {
	dfa *fsa.DFA
}

// FromRegex compiles the term through every stage of the pipeline.
func FromRegex(r *regex.Regex) *Matcher {
	return FromNFA(r.AsNFA())
}

// FromNFA determinizes and minimizes the automaton.
func FromNFA(n *fsa.NFA) *Matcher {
	return FromDFA(n.AsDFA())
}

// FromDFA minimizes the automaton.
func FromDFA(d *fsa.DFA) *Matcher {
	return &Matcher{dfa: d.Minimize()}
}

// IsMatched reports whether the automaton accepts the whole string.
func (m *Matcher) IsMatched(str string) bool {
	return m.dfa.IsMatched(fsa.Symbols(str))
}

// DFA returns the minimized automaton backing the matcher.
func (m *Matcher) DFA() *fsa.DFA {
	return m.dfa
}
