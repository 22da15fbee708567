package parser

import (
	"strings"

	"github.com/ha1tch/goobo/ast"
	"github.com/ha1tch/goobo/ident"
	"github.com/ha1tch/goobo/parsetree"
	"github.com/ha1tch/goobo/value"
)

func parseRelationId(node *parsetree.Node, text string) (ident.RelationId, error) {
	id, err := ident.Parse(text)
	if err != nil {
		return ident.RelationId{}, wrap(node, err)
	}
	return ident.NewRelationId(id), nil
}

func parseRelationPair(node *parsetree.Node, sc *restScanner) (ident.RelationId, ident.RelationId, error) {
	firstField, _ := sc.nextField()
	secondField, _ := sc.nextField()
	first, err := parseRelationId(node, firstField)
	if err != nil {
		return ident.RelationId{}, ident.RelationId{}, err
	}
	second, err := parseRelationId(node, secondField)
	if err != nil {
		return ident.RelationId{}, ident.RelationId{}, err
	}
	return first, second, nil
}

// buildTypedefClause decodes one TypedefClause line node.
func buildTypedefClause(node *parsetree.Node) (ast.TypedefClause, error) {
	trim := strings.TrimSpace(node.Rest)
	tv := trivia(node)
	sc := newRestScanner(trim)

	switch node.Tag {
	case "is_anonymous":
		b, err := parseBool(node, trim)
		if err != nil {
			return nil, err
		}
		return ast.TypedefIsAnonymous{Trivia: tv, Value: b}, nil
	case "name":
		return ast.TypedefName{Trivia: tv, Value: value.ParseUnquotedString(trim)}, nil
	case "namespace":
		id, err := ident.Parse(trim)
		if err != nil {
			return nil, wrap(node, err)
		}
		return ast.TypedefNamespace{Trivia: tv, Value: ident.NewNamespaceId(id)}, nil
	case "alt_id":
		id, err := ident.Parse(trim)
		if err != nil {
			return nil, wrap(node, err)
		}
		return ast.TypedefAltId{Trivia: tv, Value: id}, nil
	case "def":
		text, xrefs, err := parseDefPayload(sc)
		if err != nil {
			return nil, wrap(node, err)
		}
		return ast.TypedefDef{Trivia: tv, Text: text, Xrefs: xrefs}, nil
	case "comment":
		return ast.TypedefComment{Trivia: tv, Value: value.ParseUnquotedString(trim)}, nil
	case "subset":
		id, err := ident.Parse(trim)
		if err != nil {
			return nil, wrap(node, err)
		}
		return ast.TypedefSubset{Trivia: tv, Value: ident.NewSubsetId(id)}, nil
	case "synonym":
		syn, err := parseSynonymPayload(sc)
		if err != nil {
			return nil, wrap(node, err)
		}
		return ast.TypedefSynonym{Trivia: tv, Value: syn}, nil
	case "xref":
		x, err := parseXrefPayload(trim)
		if err != nil {
			return nil, wrap(node, err)
		}
		return ast.TypedefXref{Trivia: tv, Value: x}, nil
	case "property_value":
		pv, err := parsePropertyValue(trim)
		if err != nil {
			return nil, wrap(node, err)
		}
		return ast.TypedefPropertyValue{Trivia: tv, Value: pv}, nil
	case "domain":
		id, err := ident.Parse(trim)
		if err != nil {
			return nil, wrap(node, err)
		}
		return ast.TypedefDomain{Trivia: tv, Value: ident.NewClassId(id)}, nil
	case "range":
		id, err := ident.Parse(trim)
		if err != nil {
			return nil, wrap(node, err)
		}
		return ast.TypedefRange{Trivia: tv, Value: ident.NewClassId(id)}, nil
	case "builtin":
		b, err := parseBool(node, trim)
		if err != nil {
			return nil, err
		}
		return ast.TypedefBuiltin{Trivia: tv, Value: b}, nil
	case "holds_over_chain":
		first, second, err := parseRelationPair(node, sc)
		if err != nil {
			return nil, err
		}
		return ast.TypedefHoldsOverChain{Trivia: tv, First: first, Second: second}, nil
	case "is_anti_symmetric":
		b, err := parseBool(node, trim)
		if err != nil {
			return nil, err
		}
		return ast.TypedefIsAntiSymmetric{Trivia: tv, Value: b}, nil
	case "is_cyclic":
		b, err := parseBool(node, trim)
		if err != nil {
			return nil, err
		}
		return ast.TypedefIsCyclic{Trivia: tv, Value: b}, nil
	case "is_reflexive":
		b, err := parseBool(node, trim)
		if err != nil {
			return nil, err
		}
		return ast.TypedefIsReflexive{Trivia: tv, Value: b}, nil
	case "is_symmetric":
		b, err := parseBool(node, trim)
		if err != nil {
			return nil, err
		}
		return ast.TypedefIsSymmetric{Trivia: tv, Value: b}, nil
	case "is_asymmetric":
		b, err := parseBool(node, trim)
		if err != nil {
			return nil, err
		}
		return ast.TypedefIsAsymmetric{Trivia: tv, Value: b}, nil
	case "is_transitive":
		b, err := parseBool(node, trim)
		if err != nil {
			return nil, err
		}
		return ast.TypedefIsTransitive{Trivia: tv, Value: b}, nil
	case "is_functional":
		b, err := parseBool(node, trim)
		if err != nil {
			return nil, err
		}
		return ast.TypedefIsFunctional{Trivia: tv, Value: b}, nil
	case "is_inverse_functional":
		b, err := parseBool(node, trim)
		if err != nil {
			return nil, err
		}
		return ast.TypedefIsInverseFunctional{Trivia: tv, Value: b}, nil
	case "is_a":
		rel, err := parseRelationId(node, trim)
		if err != nil {
			return nil, err
		}
		return ast.TypedefIsA{Trivia: tv, Value: rel}, nil
	case "intersection_of":
		rel, err := parseRelationId(node, trim)
		if err != nil {
			return nil, err
		}
		return ast.TypedefIntersectionOf{Trivia: tv, Value: rel}, nil
	case "union_of":
		rel, err := parseRelationId(node, trim)
		if err != nil {
			return nil, err
		}
		return ast.TypedefUnionOf{Trivia: tv, Value: rel}, nil
	case "equivalent_to":
		rel, err := parseRelationId(node, trim)
		if err != nil {
			return nil, err
		}
		return ast.TypedefEquivalentTo{Trivia: tv, Value: rel}, nil
	case "disjoint_from":
		rel, err := parseRelationId(node, trim)
		if err != nil {
			return nil, err
		}
		return ast.TypedefDisjointFrom{Trivia: tv, Value: rel}, nil
	case "inverse_of":
		rel, err := parseRelationId(node, trim)
		if err != nil {
			return nil, err
		}
		return ast.TypedefInverseOf{Trivia: tv, Value: rel}, nil
	case "transitive_over":
		rel, err := parseRelationId(node, trim)
		if err != nil {
			return nil, err
		}
		return ast.TypedefTransitiveOver{Trivia: tv, Value: rel}, nil
	case "equivalent_to_chain":
		first, second, err := parseRelationPair(node, sc)
		if err != nil {
			return nil, err
		}
		return ast.TypedefEquivalentToChain{Trivia: tv, First: first, Second: second}, nil
	case "disjoint_over":
		rel, err := parseRelationId(node, trim)
		if err != nil {
			return nil, err
		}
		return ast.TypedefDisjointOver{Trivia: tv, Value: rel}, nil
	case "relationship":
		first, second, err := parseRelationPair(node, sc)
		if err != nil {
			return nil, err
		}
		return ast.TypedefRelationship{Trivia: tv, Relation: first, Target: second}, nil
	case "is_obsolete":
		b, err := parseBool(node, trim)
		if err != nil {
			return nil, err
		}
		return ast.TypedefIsObsolete{Trivia: tv, Value: b}, nil
	case "replaced_by":
		rel, err := parseRelationId(node, trim)
		if err != nil {
			return nil, err
		}
		return ast.TypedefReplacedBy{Trivia: tv, Value: rel}, nil
	case "consider":
		id, err := ident.Parse(trim)
		if err != nil {
			return nil, wrap(node, err)
		}
		return ast.TypedefConsider{Trivia: tv, Value: id}, nil
	case "created_by":
		return ast.TypedefCreatedBy{Trivia: tv, Value: value.ParseUnquotedString(trim)}, nil
	case "creation_date":
		dt, err := value.ParseIsoDateTime(trim)
		if err != nil {
			return nil, wrap(node, err)
		}
		return ast.TypedefCreationDate{Trivia: tv, Value: dt}, nil
	case "expand_assertion_to":
		descField, _ := sc.nextField()
		desc := value.ParseQuotedString(descField)
		xrefsField, _ := sc.nextField()
		xrefs, err := parseXrefList(xrefsField)
		if err != nil {
			return nil, wrap(node, err)
		}
		return ast.TypedefExpandAssertionTo{Trivia: tv, Description: desc, Xrefs: xrefs}, nil
	case "expand_expression_to":
		descField, _ := sc.nextField()
		desc := value.ParseQuotedString(descField)
		xrefsField, _ := sc.nextField()
		xrefs, err := parseXrefList(xrefsField)
		if err != nil {
			return nil, wrap(node, err)
		}
		return ast.TypedefExpandExpressionTo{Trivia: tv, Description: desc, Xrefs: xrefs}, nil
	case "is_metadata_tag":
		b, err := parseBool(node, trim)
		if err != nil {
			return nil, err
		}
		return ast.TypedefIsMetadataTag{Trivia: tv, Value: b}, nil
	case "is_class_level":
		b, err := parseBool(node, trim)
		if err != nil {
			return nil, err
		}
		return ast.TypedefIsClassLevel{Trivia: tv, Value: b}, nil
	default:
		return nil, newSyntaxErrorf("known typedef clause tag", node.Tag)
	}
}
