package fsa

// Boolean combinations of DFA languages via product construction, plus
// complement and reversal. All of them return fresh automata and leave
// their operands untouched.

// Complement returns a DFA accepting exactly the strings over the
// operand's own alphabet that the operand rejects.
func Complement(d *DFA) *DFA {
	out := d.Complete(d.Alphabet())
	for i := range out.states {
		out.states[i].acceptable = !out.states[i].acceptable
	}
	return out
}

// Intersect returns a DFA for the intersection of both languages.
func Intersect(a, b *DFA) *DFA {
	return product(a, b, func(x, y bool) bool { return x && y })
}

// Union returns a DFA for the union of both languages.
func Union(a, b *DFA) *DFA {
	return product(a, b, func(x, y bool) bool { return x || y })
}

// product runs both automata in lockstep over the union of their
// alphabets. Operands are completed first: a pair must survive even when
// only one side still has live transitions, otherwise Union would drop
// strings wherever the other side's partial table runs dry.
func product(a, b *DFA, accept func(bool, bool) bool) *DFA {
	alphabet := unionSymbols(a.Alphabet(), b.Alphabet())
	a = a.Complete(alphabet)
	b = b.Complete(alphabet)

	type pair struct{ a, b StateID }
	ids := map[pair]StateID{}
	out := &DFA{}
	add := func(p pair) StateID {
		id := StateID(len(out.states))
		out.states = append(out.states, dfaState{
			acceptable: accept(a.states[p.a].acceptable, b.states[p.b].acceptable),
			next:       make(map[Symbol]StateID),
		})
		ids[p] = id
		return id
	}

	startPair := pair{a.start, b.start}
	add(startPair)
	queue := []pair{startPair}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		from := ids[p]
		for _, sym := range alphabet {
			ta, oka := a.states[p.a].next[sym]
			tb, okb := b.states[p.b].next[sym]
			if !oka || !okb {
				continue
			}
			np := pair{ta, tb}
			to, seen := ids[np]
			if !seen {
				to = add(np)
				queue = append(queue, np)
			}
			out.states[from].next[sym] = to
		}
	}
	return out
}

// Reverse returns an NFA accepting the reversal of the DFA's language:
// every transition flipped, a fresh start fanning out over ε to the old
// accepting states, and the old start as the sole accepting state.
func Reverse(d *DFA) *NFA {
	bld := NewNFABuilder()
	nodes := make([]StateID, len(d.states))
	for i := range nodes {
		nodes[i] = bld.State()
	}
	start := bld.State()
	for i, s := range d.states {
		for sym, to := range s.next {
			bld.Transition(nodes[to], sym, nodes[i])
		}
		if s.acceptable {
			bld.Epsilon(start, nodes[i])
		}
	}
	return bld.Build(start, nodes[d.start])
}

func unionSymbols(a, b []Symbol) []Symbol {
	seen := make(map[Symbol]struct{}, len(a)+len(b))
	for _, sym := range a {
		seen[sym] = struct{}{}
	}
	for _, sym := range b {
		seen[sym] = struct{}{}
	}
	out := make([]Symbol, 0, len(seen))
	for sym := range seen {
		out = append(out, sym)
	}
	sortSymbols(out)
	return out
}
