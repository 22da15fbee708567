package value

import "github.com/ha1tch/goobo/ident"

// PropertyValue is a "property_value" clause payload: either a plain
// identifier-valued relation, or a datatype-tagged literal.
type PropertyValue interface {
	propertyValueNode()
	String() string
}

// IdentifiedPropertyValue is "relation target", e.g.
// "property_value: has_synonym GO:0000002".
type IdentifiedPropertyValue struct {
	Relation ident.RelationId
	Target   ident.Ident
}

func (IdentifiedPropertyValue) propertyValueNode() {}

func (p IdentifiedPropertyValue) String() string {
	return p.Relation.String() + " " + p.Target.String()
}

// TypedPropertyValue is "relation \"literal\" datatype", e.g.
// "property_value: shape \"round\" xsd:string".
type TypedPropertyValue struct {
	Relation ident.RelationId
	Literal  QuotedString
	Datatype ident.Ident
}

func (TypedPropertyValue) propertyValueNode() {}

func (p TypedPropertyValue) String() string {
	return p.Relation.String() + " " + p.Literal.String() + " " + p.Datatype.String()
}
