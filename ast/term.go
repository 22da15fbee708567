package ast

import (
	"fmt"

	"github.com/ha1tch/goobo/ident"
	"github.com/ha1tch/goobo/value"
)

// termOrder is the canonical tag-position table for TermClause, per
// spec §4.5.
var termOrder = []string{
	"id",
	"is_anonymous",
	"name",
	"namespace",
	"alt_id",
	"def",
	"comment",
	"subset",
	"synonym",
	"xref",
	"builtin",
	"property_value",
	"is_a",
	"intersection_of",
	"union_of",
	"equivalent_to",
	"disjoint_from",
	"relationship",
	"created_by",
	"creation_date",
	"is_obsolete",
	"replaced_by",
	"consider",
}

func termOrderIndex(tag string) int {
	for i, t := range termOrder {
		if t == tag {
			return i
		}
	}
	return len(termOrder)
}

// TermClauseLess implements the canonical term clause ordering.
func TermClauseLess(a, b TermClause) bool {
	pa, pb := termOrderIndex(a.Tag()), termOrderIndex(b.Tag())
	if pa != pb {
		return pa < pb
	}
	return a.String() < b.String()
}

func (TermIsAnonymous) termClauseNode()    {}
func (TermName) termClauseNode()           {}
func (TermNamespace) termClauseNode()      {}
func (TermAltId) termClauseNode()          {}
func (TermDef) termClauseNode()            {}
func (TermComment) termClauseNode()        {}
func (TermSubset) termClauseNode()         {}
func (TermSynonym) termClauseNode()        {}
func (TermXref) termClauseNode()           {}
func (TermBuiltin) termClauseNode()        {}
func (TermPropertyValue) termClauseNode()  {}
func (TermIsA) termClauseNode()            {}
func (TermIntersectionOf) termClauseNode() {}
func (TermUnionOf) termClauseNode()        {}
func (TermEquivalentTo) termClauseNode()   {}
func (TermDisjointFrom) termClauseNode()   {}
func (TermRelationship) termClauseNode()   {}
func (TermCreatedBy) termClauseNode()      {}
func (TermCreationDate) termClauseNode()   {}
func (TermIsObsolete) termClauseNode()     {}
func (TermReplacedBy) termClauseNode()     {}
func (TermConsider) termClauseNode()       {}

// TermIsAnonymous is the "is_anonymous" term clause.
type TermIsAnonymous struct {
	Trivia
	Value bool
}

func (TermIsAnonymous) Tag() string             { return "is_anonymous" }
func (TermIsAnonymous) Cardinality() Cardinality { return ZeroOrOne }
func (c TermIsAnonymous) String() string         { return "is_anonymous: " + value.FormatBoolean(c.Value) }

// TermName is the "name" term clause.
type TermName struct {
	Trivia
	Value value.UnquotedString
}

func (TermName) Tag() string             { return "name" }
func (TermName) Cardinality() Cardinality { return ZeroOrOne }
func (c TermName) String() string         { return "name: " + c.Value.String() }

// TermNamespace is the "namespace" term clause.
type TermNamespace struct {
	Trivia
	Value ident.NamespaceId
}

func (TermNamespace) Tag() string             { return "namespace" }
func (TermNamespace) Cardinality() Cardinality { return ZeroOrOne }
func (c TermNamespace) String() string         { return "namespace: " + c.Value.String() }

// TermAltId is the "alt_id" term clause.
type TermAltId struct {
	Trivia
	Value ident.ClassId
}

func (TermAltId) Tag() string             { return "alt_id" }
func (TermAltId) Cardinality() Cardinality { return Any }
func (c TermAltId) String() string         { return "alt_id: " + c.Value.String() }

// TermDef is the "def" term clause.
type TermDef struct {
	Trivia
	Text  value.QuotedString
	Xrefs value.XrefList
}

func (TermDef) Tag() string             { return "def" }
func (TermDef) Cardinality() Cardinality { return ZeroOrOne }
func (c TermDef) String() string {
	return "def: " + c.Text.String() + " " + c.Xrefs.String()
}

// TermComment is the "comment" term clause.
type TermComment struct {
	Trivia
	Value value.UnquotedString
}

func (TermComment) Tag() string             { return "comment" }
func (TermComment) Cardinality() Cardinality { return ZeroOrOne }
func (c TermComment) String() string         { return "comment: " + c.Value.String() }

// TermSubset is the "subset" term clause.
type TermSubset struct {
	Trivia
	Value ident.SubsetId
}

func (TermSubset) Tag() string             { return "subset" }
func (TermSubset) Cardinality() Cardinality { return Any }
func (c TermSubset) String() string         { return "subset: " + c.Value.String() }

// TermSynonym is the "synonym" term clause.
type TermSynonym struct {
	Trivia
	Value value.Synonym
}

func (TermSynonym) Tag() string             { return "synonym" }
func (TermSynonym) Cardinality() Cardinality { return Any }
func (c TermSynonym) String() string         { return "synonym: " + c.Value.String() }

// TermXref is the "xref" term clause.
type TermXref struct {
	Trivia
	Value value.Xref
}

func (TermXref) Tag() string             { return "xref" }
func (TermXref) Cardinality() Cardinality { return Any }
func (c TermXref) String() string         { return "xref: " + c.Value.String() }

// TermBuiltin is the "builtin" term clause.
type TermBuiltin struct {
	Trivia
	Value bool
}

func (TermBuiltin) Tag() string             { return "builtin" }
func (TermBuiltin) Cardinality() Cardinality { return ZeroOrOne }
func (c TermBuiltin) String() string         { return "builtin: " + value.FormatBoolean(c.Value) }

// TermPropertyValue is the "property_value" term clause.
type TermPropertyValue struct {
	Trivia
	Value value.PropertyValue
}

func (TermPropertyValue) Tag() string             { return "property_value" }
func (TermPropertyValue) Cardinality() Cardinality { return Any }
func (c TermPropertyValue) String() string         { return "property_value: " + c.Value.String() }

// TermIsA is the "is_a" term clause.
type TermIsA struct {
	Trivia
	Value ident.ClassId
}

func (TermIsA) Tag() string             { return "is_a" }
func (TermIsA) Cardinality() Cardinality { return Any }
func (c TermIsA) String() string         { return "is_a: " + c.Value.String() }

// TermIntersectionOf is the "intersection_of" term clause: either a
// bare class, or a relation-qualified genus/differentia pair.
type TermIntersectionOf struct {
	Trivia
	Relation *ident.RelationId
	Class    ident.ClassId
}

func (TermIntersectionOf) Tag() string             { return "intersection_of" }
func (TermIntersectionOf) Cardinality() Cardinality { return NotOne }
func (c TermIntersectionOf) String() string {
	if c.Relation != nil {
		return "intersection_of: " + c.Relation.String() + " " + c.Class.String()
	}
	return "intersection_of: " + c.Class.String()
}

// TermUnionOf is the "union_of" term clause.
type TermUnionOf struct {
	Trivia
	Value ident.ClassId
}

func (TermUnionOf) Tag() string             { return "union_of" }
func (TermUnionOf) Cardinality() Cardinality { return NotOne }
func (c TermUnionOf) String() string         { return "union_of: " + c.Value.String() }

// TermEquivalentTo is the "equivalent_to" term clause.
type TermEquivalentTo struct {
	Trivia
	Value ident.ClassId
}

func (TermEquivalentTo) Tag() string             { return "equivalent_to" }
func (TermEquivalentTo) Cardinality() Cardinality { return Any }
func (c TermEquivalentTo) String() string         { return "equivalent_to: " + c.Value.String() }

// TermDisjointFrom is the "disjoint_from" term clause.
type TermDisjointFrom struct {
	Trivia
	Value ident.ClassId
}

func (TermDisjointFrom) Tag() string             { return "disjoint_from" }
func (TermDisjointFrom) Cardinality() Cardinality { return Any }
func (c TermDisjointFrom) String() string         { return "disjoint_from: " + c.Value.String() }

// TermRelationship is the "relationship" term clause.
type TermRelationship struct {
	Trivia
	Relation ident.RelationId
	Target   ident.ClassId
}

func (TermRelationship) Tag() string             { return "relationship" }
func (TermRelationship) Cardinality() Cardinality { return Any }
func (c TermRelationship) String() string {
	return fmt.Sprintf("relationship: %s %s", c.Relation, c.Target)
}

// TermCreatedBy is the "created_by" term clause.
type TermCreatedBy struct {
	Trivia
	Value value.UnquotedString
}

func (TermCreatedBy) Tag() string             { return "created_by" }
func (TermCreatedBy) Cardinality() Cardinality { return ZeroOrOne }
func (c TermCreatedBy) String() string         { return "created_by: " + c.Value.String() }

// TermCreationDate is the "creation_date" term clause.
type TermCreationDate struct {
	Trivia
	Value value.IsoDateTime
}

func (TermCreationDate) Tag() string             { return "creation_date" }
func (TermCreationDate) Cardinality() Cardinality { return ZeroOrOne }
func (c TermCreationDate) String() string         { return "creation_date: " + c.Value.String() }

// TermIsObsolete is the "is_obsolete" term clause.
type TermIsObsolete struct {
	Trivia
	Value bool
}

func (TermIsObsolete) Tag() string             { return "is_obsolete" }
func (TermIsObsolete) Cardinality() Cardinality { return ZeroOrOne }
func (c TermIsObsolete) String() string         { return "is_obsolete: " + value.FormatBoolean(c.Value) }

// TermReplacedBy is the "replaced_by" term clause.
type TermReplacedBy struct {
	Trivia
	Value ident.ClassId
}

func (TermReplacedBy) Tag() string             { return "replaced_by" }
func (TermReplacedBy) Cardinality() Cardinality { return Any }
func (c TermReplacedBy) String() string         { return "replaced_by: " + c.Value.String() }

// TermConsider is the "consider" term clause.
type TermConsider struct {
	Trivia
	Value ident.ClassId
}

func (TermConsider) Tag() string             { return "consider" }
func (TermConsider) Cardinality() Cardinality { return Any }
func (c TermConsider) String() string         { return "consider: " + c.Value.String() }
