// Package ast defines the OBO 1.4 abstract syntax tree: header, term,
// typedef, and instance clauses, the frames that aggregate them, and the
// document that aggregates frames.
package ast

// Cardinality is the declared multiplicity of a clause variant within
// its containing frame. The parser does not itself enforce cardinality;
// package validate does, as a separate pass.
type Cardinality int

const (
	// ZeroOrOne: the clause may appear at most once.
	ZeroOrOne Cardinality = iota
	// ExactlyOne: the clause must appear exactly once.
	ExactlyOne
	// Any: the clause may appear any number of times, including zero.
	Any
	// NotOne: the clause may appear zero times or more than once, but
	// not exactly once (e.g. intersection_of needs at least two terms
	// to mean anything, or none at all).
	NotOne
)

func (c Cardinality) String() string {
	switch c {
	case ZeroOrOne:
		return "ZeroOrOne"
	case ExactlyOne:
		return "ExactlyOne"
	case Any:
		return "Any"
	case NotOne:
		return "NotOne"
	default:
		return "Unknown"
	}
}
