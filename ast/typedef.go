package ast

import (
	"fmt"

	"github.com/ha1tch/goobo/ident"
	"github.com/ha1tch/goobo/value"
)

// typedefOrder is the canonical tag-position table for TypedefClause.
var typedefOrder = []string{
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
	"property_value",
	"domain",
	"range",
	"builtin",
	"holds_over_chain",
	"is_anti_symmetric",
	"is_cyclic",
	"is_reflexive",
	"is_symmetric",
	"is_asymmetric",
	"is_transitive",
	"is_functional",
	"is_inverse_functional",
	"is_a",
	"intersection_of",
	"union_of",
	"equivalent_to",
	"disjoint_from",
	"inverse_of",
	"transitive_over",
	"equivalent_to_chain",
	"disjoint_over",
	"relationship",
	"is_obsolete",
	"replaced_by",
	"consider",
	"created_by",
	"creation_date",
	"expand_assertion_to",
	"expand_expression_to",
	"is_metadata_tag",
	"is_class_level",
}

func typedefOrderIndex(tag string) int {
	for i, t := range typedefOrder {
		if t == tag {
			return i
		}
	}
	return len(typedefOrder)
}

// TypedefClauseLess implements the canonical typedef clause ordering.
func TypedefClauseLess(a, b TypedefClause) bool {
	pa, pb := typedefOrderIndex(a.Tag()), typedefOrderIndex(b.Tag())
	if pa != pb {
		return pa < pb
	}
	return a.String() < b.String()
}

func (TypedefIsAnonymous) typedefClauseNode()       {}
func (TypedefName) typedefClauseNode()              {}
func (TypedefNamespace) typedefClauseNode()         {}
func (TypedefAltId) typedefClauseNode()             {}
func (TypedefDef) typedefClauseNode()               {}
func (TypedefComment) typedefClauseNode()           {}
func (TypedefSubset) typedefClauseNode()            {}
func (TypedefSynonym) typedefClauseNode()           {}
func (TypedefXref) typedefClauseNode()              {}
func (TypedefPropertyValue) typedefClauseNode()     {}
func (TypedefDomain) typedefClauseNode()            {}
func (TypedefRange) typedefClauseNode()             {}
func (TypedefBuiltin) typedefClauseNode()           {}
func (TypedefHoldsOverChain) typedefClauseNode()    {}
func (TypedefIsAntiSymmetric) typedefClauseNode()   {}
func (TypedefIsCyclic) typedefClauseNode()          {}
func (TypedefIsReflexive) typedefClauseNode()       {}
func (TypedefIsSymmetric) typedefClauseNode()       {}
func (TypedefIsAsymmetric) typedefClauseNode()      {}
func (TypedefIsTransitive) typedefClauseNode()      {}
func (TypedefIsFunctional) typedefClauseNode()      {}
func (TypedefIsInverseFunctional) typedefClauseNode() {}
func (TypedefIsA) typedefClauseNode()               {}
func (TypedefIntersectionOf) typedefClauseNode()    {}
func (TypedefUnionOf) typedefClauseNode()           {}
func (TypedefEquivalentTo) typedefClauseNode()      {}
func (TypedefDisjointFrom) typedefClauseNode()      {}
func (TypedefInverseOf) typedefClauseNode()         {}
func (TypedefTransitiveOver) typedefClauseNode()    {}
func (TypedefEquivalentToChain) typedefClauseNode() {}
func (TypedefDisjointOver) typedefClauseNode()      {}
func (TypedefRelationship) typedefClauseNode()      {}
func (TypedefIsObsolete) typedefClauseNode()        {}
func (TypedefReplacedBy) typedefClauseNode()        {}
func (TypedefConsider) typedefClauseNode()          {}
func (TypedefCreatedBy) typedefClauseNode()         {}
func (TypedefCreationDate) typedefClauseNode()      {}
func (TypedefExpandAssertionTo) typedefClauseNode() {}
func (TypedefExpandExpressionTo) typedefClauseNode() {}
func (TypedefIsMetadataTag) typedefClauseNode()     {}
func (TypedefIsClassLevel) typedefClauseNode()      {}

type TypedefIsAnonymous struct {
	Trivia
	Value bool
}

func (TypedefIsAnonymous) Tag() string             { return "is_anonymous" }
func (TypedefIsAnonymous) Cardinality() Cardinality { return ZeroOrOne }
func (c TypedefIsAnonymous) String() string         { return "is_anonymous: " + value.FormatBoolean(c.Value) }

type TypedefName struct {
	Trivia
	Value value.UnquotedString
}

func (TypedefName) Tag() string             { return "name" }
func (TypedefName) Cardinality() Cardinality { return ZeroOrOne }
func (c TypedefName) String() string         { return "name: " + c.Value.String() }

// TypedefNamespace has cardinality ExactlyOne per the original
// implementation, unlike TermNamespace/InstanceNamespace.
type TypedefNamespace struct {
	Trivia
	Value ident.NamespaceId
}

func (TypedefNamespace) Tag() string             { return "namespace" }
func (TypedefNamespace) Cardinality() Cardinality { return ExactlyOne }
func (c TypedefNamespace) String() string         { return "namespace: " + c.Value.String() }

type TypedefAltId struct {
	Trivia
	Value ident.Ident
}

func (TypedefAltId) Tag() string             { return "alt_id" }
func (TypedefAltId) Cardinality() Cardinality { return Any }
func (c TypedefAltId) String() string         { return "alt_id: " + c.Value.String() }

type TypedefDef struct {
	Trivia
	Text  value.QuotedString
	Xrefs value.XrefList
}

func (TypedefDef) Tag() string             { return "def" }
func (TypedefDef) Cardinality() Cardinality { return ZeroOrOne }
func (c TypedefDef) String() string {
	return "def: " + c.Text.String() + " " + c.Xrefs.String()
}

type TypedefComment struct {
	Trivia
	Value value.UnquotedString
}

func (TypedefComment) Tag() string             { return "comment" }
func (TypedefComment) Cardinality() Cardinality { return ZeroOrOne }
func (c TypedefComment) String() string         { return "comment: " + c.Value.String() }

type TypedefSubset struct {
	Trivia
	Value ident.SubsetId
}

func (TypedefSubset) Tag() string             { return "subset" }
func (TypedefSubset) Cardinality() Cardinality { return Any }
func (c TypedefSubset) String() string         { return "subset: " + c.Value.String() }

type TypedefSynonym struct {
	Trivia
	Value value.Synonym
}

func (TypedefSynonym) Tag() string             { return "synonym" }
func (TypedefSynonym) Cardinality() Cardinality { return Any }
func (c TypedefSynonym) String() string         { return "synonym: " + c.Value.String() }

type TypedefXref struct {
	Trivia
	Value value.Xref
}

func (TypedefXref) Tag() string             { return "xref" }
func (TypedefXref) Cardinality() Cardinality { return Any }
func (c TypedefXref) String() string         { return "xref: " + c.Value.String() }

type TypedefPropertyValue struct {
	Trivia
	Value value.PropertyValue
}

func (TypedefPropertyValue) Tag() string             { return "property_value" }
func (TypedefPropertyValue) Cardinality() Cardinality { return Any }
func (c TypedefPropertyValue) String() string         { return "property_value: " + c.Value.String() }

// TypedefDomain restricts the relation's subject to a class. The
// original implementation notes this should arguably be a bare Ident
// rather than ClassIdent; kept as ClassId for parity.
type TypedefDomain struct {
	Trivia
	Value ident.ClassId
}

func (TypedefDomain) Tag() string             { return "domain" }
func (TypedefDomain) Cardinality() Cardinality { return ZeroOrOne }
func (c TypedefDomain) String() string         { return "domain: " + c.Value.String() }

type TypedefRange struct {
	Trivia
	Value ident.ClassId
}

func (TypedefRange) Tag() string             { return "range" }
func (TypedefRange) Cardinality() Cardinality { return ZeroOrOne }
func (c TypedefRange) String() string         { return "range: " + c.Value.String() }

type TypedefBuiltin struct {
	Trivia
	Value bool
}

func (TypedefBuiltin) Tag() string             { return "builtin" }
func (TypedefBuiltin) Cardinality() Cardinality { return ZeroOrOne }
func (c TypedefBuiltin) String() string         { return "builtin: " + value.FormatBoolean(c.Value) }

type TypedefHoldsOverChain struct {
	Trivia
	First  ident.RelationId
	Second ident.RelationId
}

func (TypedefHoldsOverChain) Tag() string             { return "holds_over_chain" }
func (TypedefHoldsOverChain) Cardinality() Cardinality { return Any }
func (c TypedefHoldsOverChain) String() string {
	return fmt.Sprintf("holds_over_chain: %s %s", c.First, c.Second)
}

type TypedefIsAntiSymmetric struct {
	Trivia
	Value bool
}

func (TypedefIsAntiSymmetric) Tag() string             { return "is_anti_symmetric" }
func (TypedefIsAntiSymmetric) Cardinality() Cardinality { return ZeroOrOne }
func (c TypedefIsAntiSymmetric) String() string {
	return "is_anti_symmetric: " + value.FormatBoolean(c.Value)
}

type TypedefIsCyclic struct {
	Trivia
	Value bool
}

func (TypedefIsCyclic) Tag() string             { return "is_cyclic" }
func (TypedefIsCyclic) Cardinality() Cardinality { return ZeroOrOne }
func (c TypedefIsCyclic) String() string         { return "is_cyclic: " + value.FormatBoolean(c.Value) }

type TypedefIsReflexive struct {
	Trivia
	Value bool
}

func (TypedefIsReflexive) Tag() string             { return "is_reflexive" }
func (TypedefIsReflexive) Cardinality() Cardinality { return ZeroOrOne }
func (c TypedefIsReflexive) String() string {
	return "is_reflexive: " + value.FormatBoolean(c.Value)
}

type TypedefIsSymmetric struct {
	Trivia
	Value bool
}

func (TypedefIsSymmetric) Tag() string             { return "is_symmetric" }
func (TypedefIsSymmetric) Cardinality() Cardinality { return ZeroOrOne }
func (c TypedefIsSymmetric) String() string {
	return "is_symmetric: " + value.FormatBoolean(c.Value)
}

type TypedefIsAsymmetric struct {
	Trivia
	Value bool
}

func (TypedefIsAsymmetric) Tag() string             { return "is_asymmetric" }
func (TypedefIsAsymmetric) Cardinality() Cardinality { return ZeroOrOne }
func (c TypedefIsAsymmetric) String() string {
	return "is_asymmetric: " + value.FormatBoolean(c.Value)
}

type TypedefIsTransitive struct {
	Trivia
	Value bool
}

func (TypedefIsTransitive) Tag() string             { return "is_transitive" }
func (TypedefIsTransitive) Cardinality() Cardinality { return ZeroOrOne }
func (c TypedefIsTransitive) String() string {
	return "is_transitive: " + value.FormatBoolean(c.Value)
}

type TypedefIsFunctional struct {
	Trivia
	Value bool
}

func (TypedefIsFunctional) Tag() string             { return "is_functional" }
func (TypedefIsFunctional) Cardinality() Cardinality { return ZeroOrOne }
func (c TypedefIsFunctional) String() string {
	return "is_functional: " + value.FormatBoolean(c.Value)
}

type TypedefIsInverseFunctional struct {
	Trivia
	Value bool
}

func (TypedefIsInverseFunctional) Tag() string             { return "is_inverse_functional" }
func (TypedefIsInverseFunctional) Cardinality() Cardinality { return ZeroOrOne }
func (c TypedefIsInverseFunctional) String() string {
	return "is_inverse_functional: " + value.FormatBoolean(c.Value)
}

type TypedefIsA struct {
	Trivia
	Value ident.RelationId
}

func (TypedefIsA) Tag() string             { return "is_a" }
func (TypedefIsA) Cardinality() Cardinality { return Any }
func (c TypedefIsA) String() string         { return "is_a: " + c.Value.String() }

type TypedefIntersectionOf struct {
	Trivia
	Value ident.RelationId
}

func (TypedefIntersectionOf) Tag() string             { return "intersection_of" }
func (TypedefIntersectionOf) Cardinality() Cardinality { return NotOne }
func (c TypedefIntersectionOf) String() string         { return "intersection_of: " + c.Value.String() }

type TypedefUnionOf struct {
	Trivia
	Value ident.RelationId
}

func (TypedefUnionOf) Tag() string             { return "union_of" }
func (TypedefUnionOf) Cardinality() Cardinality { return NotOne }
func (c TypedefUnionOf) String() string         { return "union_of: " + c.Value.String() }

type TypedefEquivalentTo struct {
	Trivia
	Value ident.RelationId
}

func (TypedefEquivalentTo) Tag() string             { return "equivalent_to" }
func (TypedefEquivalentTo) Cardinality() Cardinality { return Any }
func (c TypedefEquivalentTo) String() string         { return "equivalent_to: " + c.Value.String() }

type TypedefDisjointFrom struct {
	Trivia
	Value ident.RelationId
}

func (TypedefDisjointFrom) Tag() string             { return "disjoint_from" }
func (TypedefDisjointFrom) Cardinality() Cardinality { return Any }
func (c TypedefDisjointFrom) String() string         { return "disjoint_from: " + c.Value.String() }

type TypedefInverseOf struct {
	Trivia
	Value ident.RelationId
}

func (TypedefInverseOf) Tag() string             { return "inverse_of" }
func (TypedefInverseOf) Cardinality() Cardinality { return ZeroOrOne }
func (c TypedefInverseOf) String() string         { return "inverse_of: " + c.Value.String() }

type TypedefTransitiveOver struct {
	Trivia
	Value ident.RelationId
}

func (TypedefTransitiveOver) Tag() string             { return "transitive_over" }
func (TypedefTransitiveOver) Cardinality() Cardinality { return Any }
func (c TypedefTransitiveOver) String() string         { return "transitive_over: " + c.Value.String() }

type TypedefEquivalentToChain struct {
	Trivia
	First  ident.RelationId
	Second ident.RelationId
}

func (TypedefEquivalentToChain) Tag() string             { return "equivalent_to_chain" }
func (TypedefEquivalentToChain) Cardinality() Cardinality { return Any }
func (c TypedefEquivalentToChain) String() string {
	return fmt.Sprintf("equivalent_to_chain: %s %s", c.First, c.Second)
}

type TypedefDisjointOver struct {
	Trivia
	Value ident.RelationId
}

func (TypedefDisjointOver) Tag() string             { return "disjoint_over" }
func (TypedefDisjointOver) Cardinality() Cardinality { return Any }
func (c TypedefDisjointOver) String() string         { return "disjoint_over: " + c.Value.String() }

type TypedefRelationship struct {
	Trivia
	Relation ident.RelationId
	Target   ident.RelationId
}

func (TypedefRelationship) Tag() string             { return "relationship" }
func (TypedefRelationship) Cardinality() Cardinality { return Any }
func (c TypedefRelationship) String() string {
	return fmt.Sprintf("relationship: %s %s", c.Relation, c.Target)
}

type TypedefIsObsolete struct {
	Trivia
	Value bool
}

func (TypedefIsObsolete) Tag() string             { return "is_obsolete" }
func (TypedefIsObsolete) Cardinality() Cardinality { return ZeroOrOne }
func (c TypedefIsObsolete) String() string         { return "is_obsolete: " + value.FormatBoolean(c.Value) }

type TypedefReplacedBy struct {
	Trivia
	Value ident.RelationId
}

func (TypedefReplacedBy) Tag() string             { return "replaced_by" }
func (TypedefReplacedBy) Cardinality() Cardinality { return Any }
func (c TypedefReplacedBy) String() string         { return "replaced_by: " + c.Value.String() }

type TypedefConsider struct {
	Trivia
	Value ident.Ident
}

func (TypedefConsider) Tag() string             { return "consider" }
func (TypedefConsider) Cardinality() Cardinality { return Any }
func (c TypedefConsider) String() string         { return "consider: " + c.Value.String() }

type TypedefCreatedBy struct {
	Trivia
	Value value.UnquotedString
}

func (TypedefCreatedBy) Tag() string             { return "created_by" }
func (TypedefCreatedBy) Cardinality() Cardinality { return ZeroOrOne }
func (c TypedefCreatedBy) String() string         { return "created_by: " + c.Value.String() }

type TypedefCreationDate struct {
	Trivia
	Value value.IsoDateTime
}

func (TypedefCreationDate) Tag() string             { return "creation_date" }
func (TypedefCreationDate) Cardinality() Cardinality { return ZeroOrOne }
func (c TypedefCreationDate) String() string         { return "creation_date: " + c.Value.String() }

type TypedefExpandAssertionTo struct {
	Trivia
	Description value.QuotedString
	Xrefs       value.XrefList
}

func (TypedefExpandAssertionTo) Tag() string             { return "expand_assertion_to" }
func (TypedefExpandAssertionTo) Cardinality() Cardinality { return Any }
func (c TypedefExpandAssertionTo) String() string {
	return "expand_assertion_to: " + c.Description.String() + " " + c.Xrefs.String()
}

type TypedefExpandExpressionTo struct {
	Trivia
	Description value.QuotedString
	Xrefs       value.XrefList
}

func (TypedefExpandExpressionTo) Tag() string             { return "expand_expression_to" }
func (TypedefExpandExpressionTo) Cardinality() Cardinality { return Any }
func (c TypedefExpandExpressionTo) String() string {
	return "expand_expression_to: " + c.Description.String() + " " + c.Xrefs.String()
}

type TypedefIsMetadataTag struct {
	Trivia
	Value bool
}

func (TypedefIsMetadataTag) Tag() string             { return "is_metadata_tag" }
func (TypedefIsMetadataTag) Cardinality() Cardinality { return ZeroOrOne }
func (c TypedefIsMetadataTag) String() string {
	return "is_metadata_tag: " + value.FormatBoolean(c.Value)
}

type TypedefIsClassLevel struct {
	Trivia
	Value bool
}

func (TypedefIsClassLevel) Tag() string             { return "is_class_level" }
func (TypedefIsClassLevel) Cardinality() Cardinality { return ZeroOrOne }
func (c TypedefIsClassLevel) String() string {
	return "is_class_level: " + value.FormatBoolean(c.Value)
}
