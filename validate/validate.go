// Package validate checks an ast.Document against the cardinality rules
// declared by each Clause variant. It is a separate pass from parsing:
// the parser accepts any clause in any quantity, and validate reports
// the violations afterward, the way a linter runs after a compiler.
package validate

import (
	"fmt"

	"github.com/ha1tch/goobo/ast"
	"github.com/ha1tch/goobo/oboerr"
)

// Validate checks doc's header and every entity frame for cardinality
// violations, returning one error per violation found.
func Validate(doc *ast.Document) []*oboerr.ValidationError {
	var errs []*oboerr.ValidationError
	errs = append(errs, validateHeader(doc.Header)...)
	for _, e := range doc.Entities {
		switch f := e.(type) {
		case *ast.TermFrame:
			errs = append(errs, validateClauses("Term:"+f.Id.String(), termClauses(f.Clauses))...)
		case *ast.TypedefFrame:
			errs = append(errs, validateClauses("Typedef:"+f.Id.String(), typedefClauses(f.Clauses))...)
		case *ast.InstanceFrame:
			errs = append(errs, validateClauses("Instance:"+f.Id.String(), instanceClauses(f.Clauses))...)
		}
	}
	return errs
}

func termClauses(cs []ast.TermClause) []ast.Clause {
	out := make([]ast.Clause, len(cs))
	for i, c := range cs {
		out[i] = c
	}
	return out
}

func typedefClauses(cs []ast.TypedefClause) []ast.Clause {
	out := make([]ast.Clause, len(cs))
	for i, c := range cs {
		out[i] = c
	}
	return out
}

func instanceClauses(cs []ast.InstanceClause) []ast.Clause {
	out := make([]ast.Clause, len(cs))
	for i, c := range cs {
		out[i] = c
	}
	return out
}

func validateHeader(hf ast.HeaderFrame) []*oboerr.ValidationError {
	out := make([]ast.Clause, len(hf.Clauses))
	for i, c := range hf.Clauses {
		out[i] = c
	}
	return validateClauses("header", out)
}

// validateClauses groups clauses by tag and checks each group's size
// against the cardinality declared by its first member (every clause
// sharing a tag shares a cardinality, by construction).
func validateClauses(frame string, clauses []ast.Clause) []*oboerr.ValidationError {
	counts := make(map[string]int)
	cardinalities := make(map[string]ast.Cardinality)
	for _, c := range clauses {
		counts[c.Tag()]++
		cardinalities[c.Tag()] = c.Cardinality()
	}

	var errs []*oboerr.ValidationError
	for tag, n := range counts {
		switch cardinalities[tag] {
		case ast.ZeroOrOne:
			if n > 1 {
				errs = append(errs, &oboerr.ValidationError{
					Frame: frame, ClauseTag: tag, Kind: oboerr.CardinalityViolated,
					Detail: fmt.Sprintf("expected at most one %q clause, found %d", tag, n),
				})
			}
		case ast.ExactlyOne:
			if n != 1 {
				errs = append(errs, &oboerr.ValidationError{
					Frame: frame, ClauseTag: tag, Kind: oboerr.CardinalityViolated,
					Detail: fmt.Sprintf("expected exactly one %q clause, found %d", tag, n),
				})
			}
		case ast.NotOne:
			if n == 1 {
				errs = append(errs, &oboerr.ValidationError{
					Frame: frame, ClauseTag: tag, Kind: oboerr.CardinalityViolated,
					Detail: fmt.Sprintf("expected zero or at least two %q clauses, found exactly 1", tag),
				})
			}
		case ast.Any:
			// no constraint
		}
	}

	for _, tag := range requiredTags[frameKind(frame)] {
		if counts[tag] == 0 {
			errs = append(errs, &oboerr.ValidationError{
				Frame: frame, ClauseTag: tag, Kind: oboerr.CardinalityViolated,
				Detail: fmt.Sprintf("expected exactly one %q clause, found 0", tag),
			})
		}
	}
	return errs
}

// frameKind extracts the "Term"/"Typedef"/"Instance"/"header" prefix
// validateClauses was called with, to look up which ExactlyOne clauses
// that frame kind requires.
func frameKind(frame string) string {
	if frame == "header" {
		return "header"
	}
	for i, c := range frame {
		if c == ':' {
			return frame[:i]
		}
	}
	return frame
}

// requiredTags lists, per frame kind, the clause tags whose cardinality
// is ExactlyOne: the only case validateClauses cannot detect by counting
// tags that are actually present, since an absent ExactlyOne clause
// never appears in counts at all. TypedefFrame.Namespace is the single
// ExactlyOne clause among header/term/typedef/instance (see ast/typedef.go).
var requiredTags = map[string][]string{
	"Typedef": {"namespace"},
}
