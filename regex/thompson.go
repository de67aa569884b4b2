package regex

import "github.com/TangentW/regex-fsa/fsa"

// AsNFA compiles the term into an NFA by Thompson construction: one
// sub-automaton per term, wired together with ε transitions. The whole
// recursion emits into a single builder arena, so sub-automata reference
// each other by state handle and never leak across automata. The root's
// exit becomes the sole accepting state.
func (r *Regex) AsNFA() *fsa.NFA {
	b := fsa.NewNFABuilder()
	entry, exit := r.compile(b)
	return b.Build(entry, exit)
}

// compile emits the sub-automaton for r and returns its entry and exit.
// Every sub-automaton has exactly one of each and belongs to exactly one
// parent, which keeps the ε wiring linear in the size of the term.
func (r *Regex) compile(b *fsa.NFABuilder) (entry, exit fsa.StateID) {
	switch r.op {
	case opLiteral:
		// A chain consuming the literal character by character.
		entry = b.State()
		cur := entry
		for _, ch := range r.lit {
			next := b.State()
			b.Transition(cur, fsa.Char(ch), next)
			cur = next
		}
		if cur == entry {
			// Empty literal: a lone ε edge, language {""}.
			exit = b.State()
			b.Epsilon(entry, exit)
			return entry, exit
		}
		return entry, cur

	case opConcat:
		leftEntry, leftExit := r.left.compile(b)
		rightEntry, rightExit := r.right.compile(b)
		b.Epsilon(leftExit, rightEntry)
		return leftEntry, rightExit

	case opUnion:
		entry, exit = b.State(), b.State()
		leftEntry, leftExit := r.left.compile(b)
		rightEntry, rightExit := r.right.compile(b)
		b.Epsilon(entry, leftEntry)
		b.Epsilon(entry, rightEntry)
		b.Epsilon(leftExit, exit)
		b.Epsilon(rightExit, exit)
		return entry, exit

	case opStar:
		entry, exit = b.State(), b.State()
		innerEntry, innerExit := r.left.compile(b)
		b.Epsilon(entry, innerEntry)     // one iteration
		b.Epsilon(entry, exit)           // zero iterations
		b.Epsilon(innerExit, innerEntry) // repeat
		b.Epsilon(innerExit, exit)       // stop
		return entry, exit

	default:
		panic("regex: unknown term")
	}
}
