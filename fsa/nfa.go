package fsa

import (
	"fmt"
	"iter"

	"github.com/bits-and-blooms/bitset"
)

// StateID is an index into the owning automaton's state arena. An ID is
// only meaningful together with the automaton that issued it; automata
// never share states.
type StateID int

type edge struct {
	sym Symbol
	to  StateID
}

type nfaState struct {
	edges      []edge
	acceptable bool
}

// NFA is a non-deterministic finite automaton. States may carry several
// transitions per symbol as well as ε transitions. An NFA is immutable
// once built and safe for concurrent simulation.
type NFA struct {
	states []nfaState
	start  StateID
	end    StateID
}

// NFABuilder accumulates states and transitions for one NFA under
// construction. All states live in a single arena, so sub-automata wired
// together during Thompson construction can reference each other by ID
// without ever crossing automaton boundaries.
type NFABuilder struct {
	states []nfaState
}

func NewNFABuilder() *NFABuilder { return &NFABuilder{} }

// State allocates a fresh state and returns its handle.
func (b *NFABuilder) State() StateID {
	b.states = append(b.states, nfaState{})
	return StateID(len(b.states) - 1)
}

// Transition adds an edge from one state to another on the given symbol.
func (b *NFABuilder) Transition(from StateID, sym Symbol, to StateID) {
	b.check(from)
	b.check(to)
	b.states[from].edges = append(b.states[from].edges, edge{sym: sym, to: to})
}

// Epsilon adds an ε edge.
func (b *NFABuilder) Epsilon(from, to StateID) {
	b.Transition(from, Epsilon, to)
}

// Build finalizes the automaton with the given start state and sole
// accepting state. The builder must not be reused afterwards.
func (b *NFABuilder) Build(start, end StateID) *NFA {
	b.check(start)
	b.check(end)
	b.states[end].acceptable = true
	return &NFA{states: b.states, start: start, end: end}
}

func (b *NFABuilder) check(id StateID) {
	if id < 0 || int(id) >= len(b.states) {
		panic(fmt.Sprintf("fsa: state %d not allocated by this builder", id))
	}
}

// Start returns the start state.
func (n *NFA) Start() StateID { return n.start }

// NumStates returns the number of states in the automaton.
func (n *NFA) NumStates() int { return len(n.states) }

// Acceptable reports whether the state is accepting.
func (n *NFA) Acceptable(id StateID) bool { return n.states[id].acceptable }

// Transitions iterates the outgoing edges of a state, ε included.
func (n *NFA) Transitions(from StateID) iter.Seq2[Symbol, StateID] {
	return func(yield func(Symbol, StateID) bool) {
		for _, e := range n.states[from].edges {
			if !yield(e.sym, e.to) {
				return
			}
		}
	}
}

// Alphabet returns the concrete symbols appearing on the automaton's
// edges, sorted. ε is never part of the alphabet.
func (n *NFA) Alphabet() []Symbol {
	seen := make(map[Symbol]struct{})
	for _, s := range n.states {
		for _, e := range s.edges {
			if !e.sym.IsEpsilon() {
				seen[e.sym] = struct{}{}
			}
		}
	}
	syms := make([]Symbol, 0, len(seen))
	for sym := range seen {
		syms = append(syms, sym)
	}
	sortSymbols(syms)
	return syms
}

// EndOf runs the NFA over the symbol sequence and returns the ε-closed
// set of states reached, sorted by ID. A nil result means the frontier
// died before the sequence was exhausted: no state is reachable at all,
// which is distinct from ending in non-accepting states.
func (n *NFA) EndOf(symbols iter.Seq[Symbol]) []StateID {
	cur := bitset.New(uint(len(n.states)))
	cur.Set(uint(n.start))
	n.closure(cur)

	for sym := range symbols {
		cur = n.move(cur, sym)
		if !cur.Any() {
			return nil
		}
		n.closure(cur)
	}

	out := make([]StateID, 0, cur.Count())
	for i, ok := cur.NextSet(0); ok; i, ok = cur.NextSet(i + 1) {
		out = append(out, StateID(i))
	}
	return out
}

// IsMatched reports whether the NFA accepts the whole sequence.
func (n *NFA) IsMatched(symbols iter.Seq[Symbol]) bool {
	for _, id := range n.EndOf(symbols) {
		if n.states[id].acceptable {
			return true
		}
	}
	return false
}

// closure extends the set in place with every state reachable over ε
// edges from its members.
func (n *NFA) closure(set *bitset.BitSet) {
	queue := make([]StateID, 0, set.Count())
	for i, ok := set.NextSet(0); ok; i, ok = set.NextSet(i + 1) {
		queue = append(queue, StateID(i))
	}
	for len(queue) > 0 {
		id := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		for _, e := range n.states[id].edges {
			if e.sym.IsEpsilon() && !set.Test(uint(e.to)) {
				set.Set(uint(e.to))
				queue = append(queue, e.to)
			}
		}
	}
}

// move returns the states reachable from the set by exactly one edge on
// the given symbol.
func (n *NFA) move(set *bitset.BitSet, sym Symbol) *bitset.BitSet {
	out := bitset.New(uint(len(n.states)))
	for i, ok := set.NextSet(0); ok; i, ok = set.NextSet(i + 1) {
		for _, e := range n.states[i].edges {
			if e.sym == sym {
				out.Set(uint(e.to))
			}
		}
	}
	return out
}

// symbolsOf returns the concrete symbols leaving any member of the set,
// sorted.
func (n *NFA) symbolsOf(set *bitset.BitSet) []Symbol {
	seen := make(map[Symbol]struct{})
	for i, ok := set.NextSet(0); ok; i, ok = set.NextSet(i + 1) {
		for _, e := range n.states[i].edges {
			if !e.sym.IsEpsilon() {
				seen[e.sym] = struct{}{}
			}
		}
	}
	syms := make([]Symbol, 0, len(seen))
	for sym := range seen {
		syms = append(syms, sym)
	}
	sortSymbols(syms)
	return syms
}
