package parser

import (
	"strings"

	"github.com/ha1tch/goobo/ast"
	"github.com/ha1tch/goobo/ident"
	"github.com/ha1tch/goobo/parsetree"
	"github.com/ha1tch/goobo/value"
)

// buildInstanceClause decodes one InstanceClause line node.
func buildInstanceClause(node *parsetree.Node) (ast.InstanceClause, error) {
	trim := strings.TrimSpace(node.Rest)
	tv := trivia(node)
	sc := newRestScanner(trim)

	switch node.Tag {
	case "is_anonymous":
		b, err := parseBool(node, trim)
		if err != nil {
			return nil, err
		}
		return ast.InstanceIsAnonymous{Trivia: tv, Value: b}, nil
	case "name":
		return ast.InstanceName{Trivia: tv, Value: value.ParseUnquotedString(trim)}, nil
	case "namespace":
		id, err := ident.Parse(trim)
		if err != nil {
			return nil, wrap(node, err)
		}
		return ast.InstanceNamespace{Trivia: tv, Value: ident.NewNamespaceId(id)}, nil
	case "alt_id":
		id, err := ident.Parse(trim)
		if err != nil {
			return nil, wrap(node, err)
		}
		return ast.InstanceAltId{Trivia: tv, Value: ident.NewInstanceId(id)}, nil
	case "def":
		text, xrefs, err := parseDefPayload(sc)
		if err != nil {
			return nil, wrap(node, err)
		}
		return ast.InstanceDef{Trivia: tv, Text: text, Xrefs: xrefs}, nil
	case "comment":
		return ast.InstanceComment{Trivia: tv, Value: value.ParseUnquotedString(trim)}, nil
	case "subset":
		id, err := ident.Parse(trim)
		if err != nil {
			return nil, wrap(node, err)
		}
		return ast.InstanceSubset{Trivia: tv, Value: ident.NewSubsetId(id)}, nil
	case "synonym":
		syn, err := parseSynonymPayload(sc)
		if err != nil {
			return nil, wrap(node, err)
		}
		return ast.InstanceSynonym{Trivia: tv, Value: syn}, nil
	case "xref":
		x, err := parseXrefPayload(trim)
		if err != nil {
			return nil, wrap(node, err)
		}
		return ast.InstanceXref{Trivia: tv, Value: x}, nil
	case "property_value":
		pv, err := parsePropertyValue(trim)
		if err != nil {
			return nil, wrap(node, err)
		}
		return ast.InstancePropertyValue{Trivia: tv, Value: pv}, nil
	case "instance_of":
		id, err := ident.Parse(trim)
		if err != nil {
			return nil, wrap(node, err)
		}
		return ast.InstanceOf{Trivia: tv, Value: ident.NewClassId(id)}, nil
	case "relationship":
		relField, _ := sc.nextField()
		targetField, _ := sc.nextField()
		relId, err := ident.Parse(relField)
		if err != nil {
			return nil, wrap(node, err)
		}
		targetId, err := ident.Parse(targetField)
		if err != nil {
			return nil, wrap(node, err)
		}
		return ast.InstanceRelationship{Trivia: tv, Relation: ident.NewRelationId(relId), Target: ident.NewInstanceId(targetId)}, nil
	case "created_by":
		return ast.InstanceCreatedBy{Trivia: tv, Value: value.ParseUnquotedString(trim)}, nil
	case "creation_date":
		dt, err := value.ParseIsoDateTime(trim)
		if err != nil {
			return nil, wrap(node, err)
		}
		return ast.InstanceCreationDate{Trivia: tv, Value: dt}, nil
	case "is_obsolete":
		b, err := parseBool(node, trim)
		if err != nil {
			return nil, err
		}
		return ast.InstanceIsObsolete{Trivia: tv, Value: b}, nil
	case "replaced_by":
		id, err := ident.Parse(trim)
		if err != nil {
			return nil, wrap(node, err)
		}
		return ast.InstanceReplacedBy{Trivia: tv, Value: ident.NewInstanceId(id)}, nil
	default:
		return nil, newSyntaxErrorf("known instance clause tag", node.Tag)
	}
}
