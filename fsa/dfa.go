package fsa

import "iter"

type dfaState struct {
	acceptable bool
	next       map[Symbol]StateID
}

// DFA is a deterministic finite automaton: at most one transition per
// symbol per state and no ε transitions, both guaranteed by the
// transition-table representation. The table may be partial; a missing
// entry means the input is rejected from that state. A DFA is immutable
// once built and safe for concurrent simulation.
type DFA struct {
	states []dfaState
	start  StateID
}

// Start returns the start state.
func (d *DFA) Start() StateID { return d.start }

// NumStates returns the number of states in the automaton.
func (d *DFA) NumStates() int { return len(d.states) }

// Acceptable reports whether the state is accepting.
func (d *DFA) Acceptable(id StateID) bool { return d.states[id].acceptable }

// EndOf walks the DFA over the symbol sequence and returns the state
// reached after consuming it all. ok is false when some symbol had no
// transition: no state is reachable, which is a distinct outcome from
// reaching a non-accepting state.
func (d *DFA) EndOf(symbols iter.Seq[Symbol]) (state StateID, ok bool) {
	cur := d.start
	for sym := range symbols {
		next, ok := d.states[cur].next[sym]
		if !ok {
			return 0, false
		}
		cur = next
	}
	return cur, true
}

// IsMatched reports whether the DFA accepts the whole sequence.
func (d *DFA) IsMatched(symbols iter.Seq[Symbol]) bool {
	end, ok := d.EndOf(symbols)
	return ok && d.states[end].acceptable
}

// Transitions iterates the outgoing transitions of a state in symbol
// order.
func (d *DFA) Transitions(from StateID) iter.Seq2[Symbol, StateID] {
	return func(yield func(Symbol, StateID) bool) {
		syms := make([]Symbol, 0, len(d.states[from].next))
		for sym := range d.states[from].next {
			syms = append(syms, sym)
		}
		sortSymbols(syms)
		for _, sym := range syms {
			if !yield(sym, d.states[from].next[sym]) {
				return
			}
		}
	}
}

// Alphabet returns the symbols appearing in the automaton's transition
// tables, sorted.
func (d *DFA) Alphabet() []Symbol {
	seen := make(map[Symbol]struct{})
	for _, s := range d.states {
		for sym := range s.next {
			seen[sym] = struct{}{}
		}
	}
	syms := make([]Symbol, 0, len(seen))
	for sym := range seen {
		syms = append(syms, sym)
	}
	sortSymbols(syms)
	return syms
}

// Complete returns a copy whose transition function is total over the
// given alphabet: every missing entry is redirected to a non-accepting
// trap state looping on every symbol. The trap state is only added when
// some entry is actually missing. ε symbols in the alphabet are ignored.
func (d *DFA) Complete(alphabet []Symbol) *DFA {
	out := d.clone()
	trap := StateID(-1)

	origin := len(out.states)
	for i := 0; i < origin; i++ {
		for _, sym := range alphabet {
			if sym.IsEpsilon() {
				continue
			}
			if _, ok := out.states[i].next[sym]; !ok {
				if trap < 0 {
					trap = StateID(len(out.states))
					out.states = append(out.states, dfaState{next: make(map[Symbol]StateID)})
				}
				out.states[i].next[sym] = trap
			}
		}
	}
	if trap >= 0 {
		for _, sym := range alphabet {
			if !sym.IsEpsilon() {
				out.states[trap].next[sym] = trap
			}
		}
	}
	return out
}

func (d *DFA) clone() *DFA {
	states := make([]dfaState, len(d.states))
	for i, s := range d.states {
		next := make(map[Symbol]StateID, len(s.next))
		for sym, to := range s.next {
			next[sym] = to
		}
		states[i] = dfaState{acceptable: s.acceptable, next: next}
	}
	return &DFA{states: states, start: d.start}
}

// reachable returns the states reachable from start, in discovery order.
func (d *DFA) reachable() []StateID {
	seen := make([]bool, len(d.states))
	order := []StateID{d.start}
	seen[d.start] = true
	for i := 0; i < len(order); i++ {
		for _, to := range d.states[order[i]].next {
			if !seen[to] {
				seen[to] = true
				order = append(order, to)
			}
		}
	}
	return order
}
