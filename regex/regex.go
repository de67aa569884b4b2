// Package regex implements the regular-expression algebra: terms are
// built programmatically from literals and the concatenation, union and
// Kleene-star combinators, then compiled to automata. There is no string
// pattern syntax here.
package regex

type op int

const (
	opLiteral op = iota
	opConcat
	opUnion
	opStar
)

// Regex is an immutable regular-expression term, a tagged variant over
// Literal, Concat, Union and Star. Combinators build fresh terms and
// never modify their operands, so a term can safely appear under several
// parents.
type Regex struct {
	op    op
	lit   []rune
	left  *Regex
	right *Regex
}

// Lit builds the leaf whose language is exactly the given string.
// Lit("") matches only the empty string.
func Lit(s string) *Regex { return &Regex{op: opLiteral, lit: []rune(s)} }

// Char builds the leaf matching a single character.
func Char(r rune) *Regex { return &Regex{op: opLiteral, lit: []rune{r}} }

// And concatenates: the language of r.And(next) is every string of r's
// language followed by one of next's.
func (r *Regex) And(next *Regex) *Regex {
	return &Regex{op: opConcat, left: r, right: next}
}

// Or is alternation: the union of both languages.
func (r *Regex) Or(other *Regex) *Regex {
	return &Regex{op: opUnion, left: r, right: other}
}

// Many is zero-or-more repetition, the Kleene closure. Its language
// always contains the empty string.
func (r *Regex) Many() *Regex {
	return &Regex{op: opStar, left: r}
}

// Some is one-or-more repetition: r followed by r*.
func (r *Regex) Some() *Regex {
	return r.And(r.Many())
}

func (r *Regex) String() string {
	switch r.op {
	case opLiteral:
		if len(r.lit) == 0 {
			return "ε"
		}
		return string(r.lit)
	case opConcat:
		return r.left.String() + r.right.String()
	case opUnion:
		return "(" + r.left.String() + "|" + r.right.String() + ")"
	case opStar:
		return "(" + r.left.String() + ")*"
	default:
		panic("regex: unknown term")
	}
}
