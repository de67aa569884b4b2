package fsa

// Minimize returns the smallest DFA accepting the same language, computed
// with Hopcroft's partition-refinement algorithm. Unreachable states are
// discarded up front so they cannot distort the equivalence classes. The
// receiver is never modified; callers may keep both automata.
func (d *DFA) Minimize() *DFA {
	reach := d.reachable()
	alphabet := d.Alphabet()

	// Per-symbol preimage index over reachable states, so refinement
	// never rescans the whole automaton.
	preds := make(map[Symbol]map[StateID][]StateID, len(alphabet))
	for _, sym := range alphabet {
		preds[sym] = make(map[StateID][]StateID)
	}
	for _, id := range reach {
		for sym, to := range d.states[id].next {
			preds[sym][to] = append(preds[sym][to], id)
		}
	}

	// Initial partition: accepting vs non-accepting, empty halves dropped.
	blockOf := make([]int, len(d.states))
	for i := range blockOf {
		blockOf[i] = -1
	}
	var acc, non []StateID
	for _, id := range reach {
		if d.states[id].acceptable {
			acc = append(acc, id)
		} else {
			non = append(non, id)
		}
	}
	var blocks [][]StateID
	for _, half := range [][]StateID{non, acc} {
		if len(half) == 0 {
			continue
		}
		for _, id := range half {
			blockOf[id] = len(blocks)
		}
		blocks = append(blocks, half)
	}

	work := make([]int, len(blocks))
	inWork := make([]bool, len(blocks))
	for i := range work {
		work[i] = i
		inWork[i] = true
	}

	member := make([]bool, len(d.states))
	for len(work) > 0 {
		splitter := work[0]
		work = work[1:]
		inWork[splitter] = false
		// Snapshot: the splitter block may itself be refined below.
		members := append([]StateID(nil), blocks[splitter]...)

		for _, sym := range alphabet {
			// Preimage of the splitter under sym, grouped by current block.
			touched := make(map[int][]StateID)
			for _, t := range members {
				for _, s := range preds[sym][t] {
					touched[blockOf[s]] = append(touched[blockOf[s]], s)
				}
			}

			for idx, inter := range touched {
				if len(inter) == len(blocks[idx]) {
					continue
				}
				for _, s := range inter {
					member[s] = true
				}
				diff := make([]StateID, 0, len(blocks[idx])-len(inter))
				for _, s := range blocks[idx] {
					if !member[s] {
						diff = append(diff, s)
					}
				}
				for _, s := range inter {
					member[s] = false
				}

				blocks[idx] = inter
				fresh := len(blocks)
				blocks = append(blocks, diff)
				inWork = append(inWork, false)
				for _, s := range diff {
					blockOf[s] = fresh
				}

				// If the split block is pending it already stands for one
				// half; queue the other. Otherwise the smaller half is
				// enough to keep refinement exact.
				switch {
				case inWork[idx]:
					work = append(work, fresh)
					inWork[fresh] = true
				case len(inter) < len(diff):
					work = append(work, idx)
					inWork[idx] = true
				default:
					work = append(work, fresh)
					inWork[fresh] = true
				}
			}
		}
	}

	// One state per block; transitions and acceptability read off any
	// representative, since all members agree once refinement settles.
	out := &DFA{states: make([]dfaState, len(blocks)), start: StateID(blockOf[d.start])}
	for i, block := range blocks {
		rep := block[0]
		next := make(map[Symbol]StateID, len(d.states[rep].next))
		for sym, to := range d.states[rep].next {
			next[sym] = StateID(blockOf[to])
		}
		out.states[i] = dfaState{acceptable: d.states[rep].acceptable, next: next}
	}
	return out
}
