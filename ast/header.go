package ast

import (
	"fmt"

	"github.com/ha1tch/goobo/ident"
	"github.com/ha1tch/goobo/value"
)

// headerOrder is the fixed tag table spec §4.5 calls the primary sort
// key for header clauses: the order the OBO specification recommends
// clauses appear in a header.
var headerOrder = []string{
	"format-version",
	"data-version",
	"date",
	"saved-by",
	"auto-generated-by",
	"import",
	"subsetdef",
	"synonymtypedef",
	"default-namespace",
	"namespace-id-rule",
	"idspace",
	"treat-xrefs-as-equivalent",
	"treat-xrefs-as-genus-differentia",
	"treat-xrefs-as-reverse-genus-differentia",
	"treat-xrefs-as-relationship",
	"treat-xrefs-as-is_a",
	"treat-xrefs-as-has-subclass",
	"property_value",
	"remark",
	"ontology",
	"owl-axioms",
}

func headerOrderIndex(tag string) int {
	for i, t := range headerOrder {
		if t == tag {
			return i
		}
	}
	return len(headerOrder) // Unreserved clauses sort after every reserved tag.
}

// HeaderClauseLess implements the canonical header clause ordering:
// primary key is position in headerOrder, secondary key is lexicographic
// comparison of the canonical serialization (which, for two clauses of
// the same tag, compares their payloads).
func HeaderClauseLess(a, b HeaderClause) bool {
	pa, pb := headerOrderIndex(a.Tag()), headerOrderIndex(b.Tag())
	if pa != pb {
		return pa < pb
	}
	return a.String() < b.String()
}

func (FormatVersion) headerClauseNode()       {}
func (DataVersion) headerClauseNode()         {}
func (Date) headerClauseNode()                {}
func (SavedBy) headerClauseNode()             {}
func (AutoGeneratedBy) headerClauseNode()     {}
func (Import) headerClauseNode()              {}
func (Subsetdef) headerClauseNode()           {}
func (SynonymTypedef) headerClauseNode()      {}
func (DefaultNamespace) headerClauseNode()    {}
func (NamespaceIdRule) headerClauseNode()     {}
func (Idspace) headerClauseNode()             {}
func (TreatXrefsAsEquivalent) headerClauseNode()                 {}
func (TreatXrefsAsGenusDifferentia) headerClauseNode()           {}
func (TreatXrefsAsReverseGenusDifferentia) headerClauseNode()    {}
func (TreatXrefsAsRelationship) headerClauseNode()               {}
func (TreatXrefsAsIsA) headerClauseNode()                        {}
func (TreatXrefsAsHasSubclass) headerClauseNode()                {}
func (HeaderPropertyValue) headerClauseNode() {}
func (Remark) headerClauseNode()              {}
func (Ontology) headerClauseNode()            {}
func (OwlAxioms) headerClauseNode()           {}
func (Unreserved) headerClauseNode()          {}

// FormatVersion is the "format-version" header clause.
type FormatVersion struct {
	Trivia
	Value value.UnquotedString
}

func (FormatVersion) Tag() string                { return "format-version" }
func (FormatVersion) Cardinality() Cardinality    { return ZeroOrOne }
func (c FormatVersion) String() string            { return "format-version: " + c.Value.String() }

// DataVersion is the "data-version" header clause.
type DataVersion struct {
	Trivia
	Value value.UnquotedString
}

func (DataVersion) Tag() string             { return "data-version" }
func (DataVersion) Cardinality() Cardinality { return ZeroOrOne }
func (c DataVersion) String() string         { return "data-version: " + c.Value.String() }

// Date is the "date" header clause.
type Date struct {
	Trivia
	Value value.NaiveDateTime
}

func (Date) Tag() string             { return "date" }
func (Date) Cardinality() Cardinality { return ZeroOrOne }
func (c Date) String() string         { return "date: " + c.Value.String() }

// SavedBy is the "saved-by" header clause.
type SavedBy struct {
	Trivia
	Value value.UnquotedString
}

func (SavedBy) Tag() string             { return "saved-by" }
func (SavedBy) Cardinality() Cardinality { return ZeroOrOne }
func (c SavedBy) String() string         { return "saved-by: " + c.Value.String() }

// AutoGeneratedBy is the "auto-generated-by" header clause.
type AutoGeneratedBy struct {
	Trivia
	Value value.UnquotedString
}

func (AutoGeneratedBy) Tag() string             { return "auto-generated-by" }
func (AutoGeneratedBy) Cardinality() Cardinality { return ZeroOrOne }
func (c AutoGeneratedBy) String() string         { return "auto-generated-by: " + c.Value.String() }

// Import is the "import" header clause.
type Import struct {
	Trivia
	Value value.Import
}

func (Import) Tag() string             { return "import" }
func (Import) Cardinality() Cardinality { return Any }
func (c Import) String() string         { return "import: " + c.Value.String() }

// Subsetdef is the "subsetdef" header clause.
type Subsetdef struct {
	Trivia
	Subset      ident.SubsetId
	Description value.QuotedString
}

func (Subsetdef) Tag() string             { return "subsetdef" }
func (Subsetdef) Cardinality() Cardinality { return Any }
func (c Subsetdef) String() string {
	return "subsetdef: " + c.Subset.String() + " " + c.Description.String()
}

// SynonymTypedef is the "synonymtypedef" header clause.
type SynonymTypedef struct {
	Trivia
	Type        ident.SynonymTypeId
	Description value.QuotedString
	Scope       *value.SynonymScope
}

func (SynonymTypedef) Tag() string             { return "synonymtypedef" }
func (SynonymTypedef) Cardinality() Cardinality { return Any }
func (c SynonymTypedef) String() string {
	s := "synonymtypedef: " + c.Type.String() + " " + c.Description.String()
	if c.Scope != nil {
		s += " " + c.Scope.String()
	}
	return s
}

// DefaultNamespace is the "default-namespace" header clause.
type DefaultNamespace struct {
	Trivia
	Value ident.NamespaceId
}

func (DefaultNamespace) Tag() string             { return "default-namespace" }
func (DefaultNamespace) Cardinality() Cardinality { return ZeroOrOne }
func (c DefaultNamespace) String() string         { return "default-namespace: " + c.Value.String() }

// NamespaceIdRule is the "namespace-id-rule" header clause.
type NamespaceIdRule struct {
	Trivia
	Value value.UnquotedString
}

func (NamespaceIdRule) Tag() string             { return "namespace-id-rule" }
func (NamespaceIdRule) Cardinality() Cardinality { return Any }
func (c NamespaceIdRule) String() string         { return "namespace-id-rule: " + c.Value.String() }

// Idspace is the "idspace" header clause.
type Idspace struct {
	Trivia
	Prefix      ident.Prefix
	Url         ident.Url
	Description *value.QuotedString
}

func (Idspace) Tag() string             { return "idspace" }
func (Idspace) Cardinality() Cardinality { return Any }
func (c Idspace) String() string {
	s := "idspace: " + c.Prefix.String() + " " + c.Url.String()
	if c.Description != nil {
		s += " " + c.Description.String()
	}
	return s
}

// TreatXrefsAsEquivalent is the "treat-xrefs-as-equivalent" header
// clause.
type TreatXrefsAsEquivalent struct {
	Trivia
	Prefix ident.Prefix
}

func (TreatXrefsAsEquivalent) Tag() string             { return "treat-xrefs-as-equivalent" }
func (TreatXrefsAsEquivalent) Cardinality() Cardinality { return Any }
func (c TreatXrefsAsEquivalent) String() string {
	return "treat-xrefs-as-equivalent: " + c.Prefix.String()
}

// TreatXrefsAsGenusDifferentia is the
// "treat-xrefs-as-genus-differentia" header clause.
type TreatXrefsAsGenusDifferentia struct {
	Trivia
	Prefix   ident.Prefix
	Relation ident.RelationId
	Class    ident.ClassId
}

func (TreatXrefsAsGenusDifferentia) Tag() string { return "treat-xrefs-as-genus-differentia" }
func (TreatXrefsAsGenusDifferentia) Cardinality() Cardinality { return Any }
func (c TreatXrefsAsGenusDifferentia) String() string {
	return fmt.Sprintf("treat-xrefs-as-genus-differentia: %s %s %s", c.Prefix, c.Relation, c.Class)
}

// TreatXrefsAsReverseGenusDifferentia is the
// "treat-xrefs-as-reverse-genus-differentia" header clause.
type TreatXrefsAsReverseGenusDifferentia struct {
	Trivia
	Prefix   ident.Prefix
	Relation ident.RelationId
	Class    ident.ClassId
}

func (TreatXrefsAsReverseGenusDifferentia) Tag() string {
	return "treat-xrefs-as-reverse-genus-differentia"
}
func (TreatXrefsAsReverseGenusDifferentia) Cardinality() Cardinality { return Any }
func (c TreatXrefsAsReverseGenusDifferentia) String() string {
	return fmt.Sprintf("treat-xrefs-as-reverse-genus-differentia: %s %s %s", c.Prefix, c.Relation, c.Class)
}

// TreatXrefsAsRelationship is the "treat-xrefs-as-relationship" header
// clause.
type TreatXrefsAsRelationship struct {
	Trivia
	Prefix   ident.Prefix
	Relation ident.RelationId
}

func (TreatXrefsAsRelationship) Tag() string             { return "treat-xrefs-as-relationship" }
func (TreatXrefsAsRelationship) Cardinality() Cardinality { return Any }
func (c TreatXrefsAsRelationship) String() string {
	return fmt.Sprintf("treat-xrefs-as-relationship: %s %s", c.Prefix, c.Relation)
}

// TreatXrefsAsIsA is the "treat-xrefs-as-is_a" header clause.
type TreatXrefsAsIsA struct {
	Trivia
	Prefix ident.Prefix
}

func (TreatXrefsAsIsA) Tag() string             { return "treat-xrefs-as-is_a" }
func (TreatXrefsAsIsA) Cardinality() Cardinality { return Any }
func (c TreatXrefsAsIsA) String() string         { return "treat-xrefs-as-is_a: " + c.Prefix.String() }

// TreatXrefsAsHasSubclass is the "treat-xrefs-as-has-subclass" header
// clause. Per spec §9, it is always serialized with the ":" separator,
// unlike one historical source variant that omitted it.
type TreatXrefsAsHasSubclass struct {
	Trivia
	Prefix ident.Prefix
}

func (TreatXrefsAsHasSubclass) Tag() string             { return "treat-xrefs-as-has-subclass" }
func (TreatXrefsAsHasSubclass) Cardinality() Cardinality { return Any }
func (c TreatXrefsAsHasSubclass) String() string {
	return "treat-xrefs-as-has-subclass: " + c.Prefix.String()
}

// HeaderPropertyValue is the "property_value" header clause.
type HeaderPropertyValue struct {
	Trivia
	Value value.PropertyValue
}

func (HeaderPropertyValue) Tag() string             { return "property_value" }
func (HeaderPropertyValue) Cardinality() Cardinality { return Any }
func (c HeaderPropertyValue) String() string         { return "property_value: " + c.Value.String() }

// Remark is the "remark" header clause.
type Remark struct {
	Trivia
	Value value.UnquotedString
}

func (Remark) Tag() string             { return "remark" }
func (Remark) Cardinality() Cardinality { return Any }
func (c Remark) String() string         { return "remark: " + c.Value.String() }

// Ontology is the "ontology" header clause.
type Ontology struct {
	Trivia
	Value value.UnquotedString
}

func (Ontology) Tag() string             { return "ontology" }
func (Ontology) Cardinality() Cardinality { return ZeroOrOne }
func (c Ontology) String() string         { return "ontology: " + c.Value.String() }

// OwlAxioms is the "owl-axioms" header clause.
type OwlAxioms struct {
	Trivia
	Value value.UnquotedString
}

func (OwlAxioms) Tag() string             { return "owl-axioms" }
func (OwlAxioms) Cardinality() Cardinality { return Any }
func (c OwlAxioms) String() string         { return "owl-axioms: " + c.Value.String() }

// Unreserved is a header clause whose tag is not one of the reserved
// header tags; its tag text is retained verbatim.
type Unreserved struct {
	Trivia
	TagText string
	Value   value.UnquotedString
}

func (c Unreserved) Tag() string             { return c.TagText }
func (Unreserved) Cardinality() Cardinality { return Any }
func (c Unreserved) String() string         { return c.TagText + ": " + c.Value.String() }
