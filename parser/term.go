package parser

import (
	"strings"

	"github.com/ha1tch/goobo/ast"
	"github.com/ha1tch/goobo/ident"
	"github.com/ha1tch/goobo/parsetree"
	"github.com/ha1tch/goobo/value"
)

func parseBool(node *parsetree.Node, text string) (bool, error) {
	b, err := value.ParseBoolean(text)
	if err != nil {
		return false, wrap(node, err)
	}
	return b, nil
}

func parseDefPayload(sc *restScanner) (value.QuotedString, value.XrefList, error) {
	textField, _ := sc.nextField()
	text := value.ParseQuotedString(textField)
	xrefsField, _ := sc.nextField()
	xrefs, err := parseXrefList(xrefsField)
	return text, xrefs, err
}

func parseSynonymPayload(sc *restScanner) (value.Synonym, error) {
	textField, _ := sc.nextField()
	syn := value.Synonym{Text: value.ParseQuotedString(textField)}
	scopeField, ok := sc.nextField()
	if !ok {
		return syn, newSyntaxErrorf("synonym scope", "missing")
	}
	scope, err := value.ParseSynonymScope(scopeField)
	if err != nil {
		return syn, err
	}
	syn.Scope = scope
	if !sc.atEnd() {
		peekField, _ := sc.nextField()
		if strings.HasPrefix(peekField, "[") {
			xrefs, err := parseXrefList(peekField)
			if err != nil {
				return syn, err
			}
			syn.Xrefs = xrefs
		} else {
			typeId, err := ident.Parse(peekField)
			if err != nil {
				return syn, err
			}
			t := ident.NewSynonymTypeId(typeId)
			syn.Type = &t
			if !sc.atEnd() {
				xrefField, _ := sc.nextField()
				xrefs, err := parseXrefList(xrefField)
				if err != nil {
					return syn, err
				}
				syn.Xrefs = xrefs
			}
		}
	}
	return syn, nil
}

func parseXrefPayload(text string) (value.Xref, error) {
	return parseXref(text)
}

// buildTermClause decodes one TermClause line node.
func buildTermClause(node *parsetree.Node) (ast.TermClause, error) {
	trim := strings.TrimSpace(node.Rest)
	tv := trivia(node)
	sc := newRestScanner(trim)

	switch node.Tag {
	case "is_anonymous":
		b, err := parseBool(node, trim)
		if err != nil {
			return nil, err
		}
		return ast.TermIsAnonymous{Trivia: tv, Value: b}, nil
	case "name":
		return ast.TermName{Trivia: tv, Value: value.ParseUnquotedString(trim)}, nil
	case "namespace":
		id, err := ident.Parse(trim)
		if err != nil {
			return nil, wrap(node, err)
		}
		return ast.TermNamespace{Trivia: tv, Value: ident.NewNamespaceId(id)}, nil
	case "alt_id":
		id, err := ident.Parse(trim)
		if err != nil {
			return nil, wrap(node, err)
		}
		return ast.TermAltId{Trivia: tv, Value: ident.NewClassId(id)}, nil
	case "def":
		text, xrefs, err := parseDefPayload(sc)
		if err != nil {
			return nil, wrap(node, err)
		}
		return ast.TermDef{Trivia: tv, Text: text, Xrefs: xrefs}, nil
	case "comment":
		return ast.TermComment{Trivia: tv, Value: value.ParseUnquotedString(trim)}, nil
	case "subset":
		id, err := ident.Parse(trim)
		if err != nil {
			return nil, wrap(node, err)
		}
		return ast.TermSubset{Trivia: tv, Value: ident.NewSubsetId(id)}, nil
	case "synonym":
		syn, err := parseSynonymPayload(sc)
		if err != nil {
			return nil, wrap(node, err)
		}
		return ast.TermSynonym{Trivia: tv, Value: syn}, nil
	case "xref":
		x, err := parseXrefPayload(trim)
		if err != nil {
			return nil, wrap(node, err)
		}
		return ast.TermXref{Trivia: tv, Value: x}, nil
	case "builtin":
		b, err := parseBool(node, trim)
		if err != nil {
			return nil, err
		}
		return ast.TermBuiltin{Trivia: tv, Value: b}, nil
	case "property_value":
		pv, err := parsePropertyValue(trim)
		if err != nil {
			return nil, wrap(node, err)
		}
		return ast.TermPropertyValue{Trivia: tv, Value: pv}, nil
	case "is_a":
		id, err := ident.Parse(trim)
		if err != nil {
			return nil, wrap(node, err)
		}
		return ast.TermIsA{Trivia: tv, Value: ident.NewClassId(id)}, nil
	case "intersection_of":
		first, _ := sc.nextField()
		if !sc.atEnd() {
			second, _ := sc.nextField()
			relId, err := ident.Parse(first)
			if err != nil {
				return nil, wrap(node, err)
			}
			classId, err := ident.Parse(second)
			if err != nil {
				return nil, wrap(node, err)
			}
			rel := ident.NewRelationId(relId)
			return ast.TermIntersectionOf{Trivia: tv, Relation: &rel, Class: ident.NewClassId(classId)}, nil
		}
		classId, err := ident.Parse(first)
		if err != nil {
			return nil, wrap(node, err)
		}
		return ast.TermIntersectionOf{Trivia: tv, Class: ident.NewClassId(classId)}, nil
	case "union_of":
		id, err := ident.Parse(trim)
		if err != nil {
			return nil, wrap(node, err)
		}
		return ast.TermUnionOf{Trivia: tv, Value: ident.NewClassId(id)}, nil
	case "equivalent_to":
		id, err := ident.Parse(trim)
		if err != nil {
			return nil, wrap(node, err)
		}
		return ast.TermEquivalentTo{Trivia: tv, Value: ident.NewClassId(id)}, nil
	case "disjoint_from":
		id, err := ident.Parse(trim)
		if err != nil {
			return nil, wrap(node, err)
		}
		return ast.TermDisjointFrom{Trivia: tv, Value: ident.NewClassId(id)}, nil
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
		return ast.TermRelationship{Trivia: tv, Relation: ident.NewRelationId(relId), Target: ident.NewClassId(targetId)}, nil
	case "created_by":
		return ast.TermCreatedBy{Trivia: tv, Value: value.ParseUnquotedString(trim)}, nil
	case "creation_date":
		dt, err := value.ParseIsoDateTime(trim)
		if err != nil {
			return nil, wrap(node, err)
		}
		return ast.TermCreationDate{Trivia: tv, Value: dt}, nil
	case "is_obsolete":
		b, err := parseBool(node, trim)
		if err != nil {
			return nil, err
		}
		return ast.TermIsObsolete{Trivia: tv, Value: b}, nil
	case "replaced_by":
		id, err := ident.Parse(trim)
		if err != nil {
			return nil, wrap(node, err)
		}
		return ast.TermReplacedBy{Trivia: tv, Value: ident.NewClassId(id)}, nil
	case "consider":
		id, err := ident.Parse(trim)
		if err != nil {
			return nil, wrap(node, err)
		}
		return ast.TermConsider{Trivia: tv, Value: ident.NewClassId(id)}, nil
	default:
		return nil, newSyntaxErrorf("known term clause tag", node.Tag)
	}
}
