package ast

import (
	"fmt"

	"github.com/ha1tch/goobo/ident"
	"github.com/ha1tch/goobo/value"
)

// instanceOrder is the canonical tag-position table for InstanceClause.
var instanceOrder = []string{
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
	"instance_of",
	"relationship",
	"created_by",
	"creation_date",
	"is_obsolete",
	"replaced_by",
}

func instanceOrderIndex(tag string) int {
	for i, t := range instanceOrder {
		if t == tag {
			return i
		}
	}
	return len(instanceOrder)
}

// InstanceClauseLess implements the canonical instance clause ordering.
func InstanceClauseLess(a, b InstanceClause) bool {
	pa, pb := instanceOrderIndex(a.Tag()), instanceOrderIndex(b.Tag())
	if pa != pb {
		return pa < pb
	}
	return a.String() < b.String()
}

func (InstanceIsAnonymous) instanceClauseNode() {}
func (InstanceName) instanceClauseNode()        {}
func (InstanceNamespace) instanceClauseNode()   {}
func (InstanceAltId) instanceClauseNode()       {}
func (InstanceDef) instanceClauseNode()         {}
func (InstanceComment) instanceClauseNode()     {}
func (InstanceSubset) instanceClauseNode()      {}
func (InstanceSynonym) instanceClauseNode()     {}
func (InstanceXref) instanceClauseNode()        {}
func (InstancePropertyValue) instanceClauseNode() {}
func (InstanceOf) instanceClauseNode()          {}
func (InstanceRelationship) instanceClauseNode() {}
func (InstanceCreatedBy) instanceClauseNode()   {}
func (InstanceCreationDate) instanceClauseNode() {}
func (InstanceIsObsolete) instanceClauseNode()  {}
func (InstanceReplacedBy) instanceClauseNode()  {}

type InstanceIsAnonymous struct {
	Trivia
	Value bool
}

func (InstanceIsAnonymous) Tag() string             { return "is_anonymous" }
func (InstanceIsAnonymous) Cardinality() Cardinality { return ZeroOrOne }
func (c InstanceIsAnonymous) String() string {
	return "is_anonymous: " + value.FormatBoolean(c.Value)
}

type InstanceName struct {
	Trivia
	Value value.UnquotedString
}

func (InstanceName) Tag() string             { return "name" }
func (InstanceName) Cardinality() Cardinality { return ZeroOrOne }
func (c InstanceName) String() string         { return "name: " + c.Value.String() }

type InstanceNamespace struct {
	Trivia
	Value ident.NamespaceId
}

func (InstanceNamespace) Tag() string             { return "namespace" }
func (InstanceNamespace) Cardinality() Cardinality { return ZeroOrOne }
func (c InstanceNamespace) String() string         { return "namespace: " + c.Value.String() }

type InstanceAltId struct {
	Trivia
	Value ident.InstanceId
}

func (InstanceAltId) Tag() string             { return "alt_id" }
func (InstanceAltId) Cardinality() Cardinality { return Any }
func (c InstanceAltId) String() string         { return "alt_id: " + c.Value.String() }

type InstanceDef struct {
	Trivia
	Text  value.QuotedString
	Xrefs value.XrefList
}

func (InstanceDef) Tag() string             { return "def" }
func (InstanceDef) Cardinality() Cardinality { return ZeroOrOne }
func (c InstanceDef) String() string {
	return "def: " + c.Text.String() + " " + c.Xrefs.String()
}

type InstanceComment struct {
	Trivia
	Value value.UnquotedString
}

func (InstanceComment) Tag() string             { return "comment" }
func (InstanceComment) Cardinality() Cardinality { return ZeroOrOne }
func (c InstanceComment) String() string         { return "comment: " + c.Value.String() }

type InstanceSubset struct {
	Trivia
	Value ident.SubsetId
}

func (InstanceSubset) Tag() string             { return "subset" }
func (InstanceSubset) Cardinality() Cardinality { return Any }
func (c InstanceSubset) String() string         { return "subset: " + c.Value.String() }

type InstanceSynonym struct {
	Trivia
	Value value.Synonym
}

func (InstanceSynonym) Tag() string             { return "synonym" }
func (InstanceSynonym) Cardinality() Cardinality { return Any }
func (c InstanceSynonym) String() string         { return "synonym: " + c.Value.String() }

type InstanceXref struct {
	Trivia
	Value value.Xref
}

func (InstanceXref) Tag() string             { return "xref" }
func (InstanceXref) Cardinality() Cardinality { return Any }
func (c InstanceXref) String() string         { return "xref: " + c.Value.String() }

type InstancePropertyValue struct {
	Trivia
	Value value.PropertyValue
}

func (InstancePropertyValue) Tag() string             { return "property_value" }
func (InstancePropertyValue) Cardinality() Cardinality { return Any }
func (c InstancePropertyValue) String() string         { return "property_value: " + c.Value.String() }

// InstanceOf is the "instance_of" instance clause.
type InstanceOf struct {
	Trivia
	Value ident.ClassId
}

func (InstanceOf) Tag() string             { return "instance_of" }
func (InstanceOf) Cardinality() Cardinality { return ZeroOrOne }
func (c InstanceOf) String() string         { return "instance_of: " + c.Value.String() }

type InstanceRelationship struct {
	Trivia
	Relation ident.RelationId
	Target   ident.InstanceId
}

func (InstanceRelationship) Tag() string             { return "relationship" }
func (InstanceRelationship) Cardinality() Cardinality { return Any }
func (c InstanceRelationship) String() string {
	return fmt.Sprintf("relationship: %s %s", c.Relation, c.Target)
}

type InstanceCreatedBy struct {
	Trivia
	Value value.UnquotedString
}

func (InstanceCreatedBy) Tag() string             { return "created_by" }
func (InstanceCreatedBy) Cardinality() Cardinality { return ZeroOrOne }
func (c InstanceCreatedBy) String() string         { return "created_by: " + c.Value.String() }

type InstanceCreationDate struct {
	Trivia
	Value value.IsoDateTime
}

func (InstanceCreationDate) Tag() string             { return "creation_date" }
func (InstanceCreationDate) Cardinality() Cardinality { return ZeroOrOne }
func (c InstanceCreationDate) String() string         { return "creation_date: " + c.Value.String() }

type InstanceIsObsolete struct {
	Trivia
	Value bool
}

func (InstanceIsObsolete) Tag() string             { return "is_obsolete" }
func (InstanceIsObsolete) Cardinality() Cardinality { return ZeroOrOne }
func (c InstanceIsObsolete) String() string {
	return "is_obsolete: " + value.FormatBoolean(c.Value)
}

type InstanceReplacedBy struct {
	Trivia
	Value ident.InstanceId
}

func (InstanceReplacedBy) Tag() string             { return "replaced_by" }
func (InstanceReplacedBy) Cardinality() Cardinality { return Any }
func (c InstanceReplacedBy) String() string         { return "replaced_by: " + c.Value.String() }
