package ast

// Clause is implemented by every clause variant across all four frame
// kinds. Tag/Cardinality/String are declared per variant by table
// (see header.go, term.go, typedef.go, instance.go); Comment reports an
// optional trailing "! comment" captured from the source line.
type Clause interface {
	Tag() string
	Cardinality() Cardinality
	String() string
	Comment() (text string, ok bool)
}

// HeaderClause is a Clause legal inside a HeaderFrame.
type HeaderClause interface {
	Clause
	headerClauseNode()
}

// TermClause is a Clause legal inside a TermFrame.
type TermClause interface {
	Clause
	termClauseNode()
}

// TypedefClause is a Clause legal inside a TypedefFrame.
type TypedefClause interface {
	Clause
	typedefClauseNode()
}

// InstanceClause is a Clause legal inside an InstanceFrame.
type InstanceClause interface {
	Clause
	instanceClauseNode()
}

// Trivia holds the non-semantic "! comment" attached to a clause line;
// every clause variant embeds it to satisfy Clause.Comment without
// per-variant boilerplate.
type Trivia struct {
	CommentText string
	HasComment  bool
}

// Comment returns the clause's trailing comment, if any.
func (t Trivia) Comment() (string, bool) { return t.CommentText, t.HasComment }

// WithComment returns a copy of t carrying the given comment text.
func (t Trivia) WithComment(text string) Trivia {
	return Trivia{CommentText: text, HasComment: true}
}

// ClauseEqual reports whether two clauses are semantically equal: they
// serialize identically. Canonical serialization is lossless with
// respect to a clause's AST content (modulo intra-clause whitespace, per
// spec's round-trip invariant), so string equality on the canonical form
// is equality on the value.
func ClauseEqual(a, b Clause) bool {
	return a.String() == b.String()
}
