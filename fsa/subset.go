package fsa

import (
	"strconv"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// AsDFA converts the NFA into an equivalent DFA via subset construction.
// Each DFA state stands for the ε-closure of a set of NFA states; the
// construction runs a worklist over newly discovered sets until no more
// appear. A symbol with an empty move set produces no transition rather
// than a trap state, so the resulting transition table may be partial.
// The receiver is left untouched.
func (n *NFA) AsDFA() *DFA {
	start := bitset.New(uint(len(n.states)))
	start.Set(uint(n.start))
	n.closure(start)

	d := &DFA{}
	ids := make(map[string]StateID)
	add := func(set *bitset.BitSet) StateID {
		id := StateID(len(d.states))
		d.states = append(d.states, dfaState{
			acceptable: n.anyAcceptable(set),
			next:       make(map[Symbol]StateID),
		})
		ids[setKey(set)] = id
		return id
	}
	add(start)

	queue := []*bitset.BitSet{start}
	for len(queue) > 0 {
		set := queue[0]
		queue = queue[1:]
		from := ids[setKey(set)]

		// Only symbols actually leaving this set matter; the automaton's
		// alphabet is derived, never assumed.
		for _, sym := range n.symbolsOf(set) {
			next := n.move(set, sym)
			if !next.Any() {
				continue
			}
			n.closure(next)

			to, ok := ids[setKey(next)]
			if !ok {
				to = add(next)
				queue = append(queue, next)
			}
			d.states[from].next[sym] = to
		}
	}
	return d
}

func (n *NFA) anyAcceptable(set *bitset.BitSet) bool {
	for i, ok := set.NextSet(0); ok; i, ok = set.NextSet(i + 1) {
		if n.states[i].acceptable {
			return true
		}
	}
	return false
}

// setKey canonicalizes a state set for map lookup.
func setKey(set *bitset.BitSet) string {
	var sb strings.Builder
	for i, ok := set.NextSet(0); ok; i, ok = set.NextSet(i + 1) {
		sb.WriteString(strconv.FormatUint(uint64(i), 10))
		sb.WriteByte(',')
	}
	return sb.String()
}
