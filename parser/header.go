package parser

import (
	"strings"

	"github.com/ha1tch/goobo/ast"
	"github.com/ha1tch/goobo/ident"
	"github.com/ha1tch/goobo/oboerr"
	"github.com/ha1tch/goobo/parsetree"
	"github.com/ha1tch/goobo/value"
)

func trivia(node *parsetree.Node) ast.Trivia {
	if node.HasComment {
		return ast.Trivia{CommentText: strings.TrimSpace(node.Comment), HasComment: true}
	}
	return ast.Trivia{}
}

// buildHeaderClause decodes one HeaderClause line node into its typed
// ast.HeaderClause variant, dispatching on the clause's tag text.
func buildHeaderClause(node *parsetree.Node) (ast.HeaderClause, error) {
	rest := strings.TrimRight(node.Rest, " \t")
	trim := strings.TrimSpace(rest)
	tv := trivia(node)

	switch node.Tag {
	case "format-version":
		return ast.FormatVersion{Trivia: tv, Value: value.ParseUnquotedString(trim)}, nil
	case "data-version":
		return ast.DataVersion{Trivia: tv, Value: value.ParseUnquotedString(trim)}, nil
	case "date":
		dt, err := value.ParseNaiveDateTime(trim)
		if err != nil {
			return nil, wrap(node, err)
		}
		return ast.Date{Trivia: tv, Value: dt}, nil
	case "saved-by":
		return ast.SavedBy{Trivia: tv, Value: value.ParseUnquotedString(trim)}, nil
	case "auto-generated-by":
		return ast.AutoGeneratedBy{Trivia: tv, Value: value.ParseUnquotedString(trim)}, nil
	case "import":
		imp, err := value.ParseImport(trim)
		if err != nil {
			return nil, wrap(node, err)
		}
		return ast.Import{Trivia: tv, Value: imp}, nil
	case "subsetdef":
		sc := newRestScanner(trim)
		idField, _ := sc.nextField()
		id, err := ident.Parse(idField)
		if err != nil {
			return nil, wrap(node, err)
		}
		descField, _ := sc.nextField()
		return ast.Subsetdef{
			Trivia:      tv,
			Subset:      ident.NewSubsetId(id),
			Description: value.ParseQuotedString(descField),
		}, nil
	case "synonymtypedef":
		sc := newRestScanner(trim)
		idField, _ := sc.nextField()
		id, err := ident.Parse(idField)
		if err != nil {
			return nil, wrap(node, err)
		}
		descField, _ := sc.nextField()
		c := ast.SynonymTypedef{
			Trivia:      tv,
			Type:        ident.NewSynonymTypeId(id),
			Description: value.ParseQuotedString(descField),
		}
		if !sc.atEnd() {
			scopeField, _ := sc.nextField()
			scope, err := value.ParseSynonymScope(scopeField)
			if err != nil {
				return nil, wrap(node, err)
			}
			c.Scope = &scope
		}
		return c, nil
	case "default-namespace":
		id, err := ident.Parse(trim)
		if err != nil {
			return nil, wrap(node, err)
		}
		return ast.DefaultNamespace{Trivia: tv, Value: ident.NewNamespaceId(id)}, nil
	case "namespace-id-rule":
		return ast.NamespaceIdRule{Trivia: tv, Value: value.ParseUnquotedString(trim)}, nil
	case "idspace":
		sc := newRestScanner(trim)
		prefixField, _ := sc.nextField()
		prefix, err := ident.ParsePrefix(prefixField)
		if err != nil {
			return nil, wrap(node, err)
		}
		urlField, _ := sc.nextField()
		c := ast.Idspace{Trivia: tv, Prefix: prefix, Url: ident.Url{Value: urlField}}
		if !sc.atEnd() {
			descField, _ := sc.nextField()
			q := value.ParseQuotedString(descField)
			c.Description = &q
		}
		return c, nil
	case "treat-xrefs-as-equivalent":
		prefix, err := ident.ParsePrefix(trim)
		if err != nil {
			return nil, wrap(node, err)
		}
		return ast.TreatXrefsAsEquivalent{Trivia: tv, Prefix: prefix}, nil
	case "treat-xrefs-as-genus-differentia":
		sc := newRestScanner(trim)
		prefixField, _ := sc.nextField()
		relField, _ := sc.nextField()
		classField, _ := sc.nextField()
		prefix, err := ident.ParsePrefix(prefixField)
		if err != nil {
			return nil, wrap(node, err)
		}
		rel, err := ident.Parse(relField)
		if err != nil {
			return nil, wrap(node, err)
		}
		cls, err := ident.Parse(classField)
		if err != nil {
			return nil, wrap(node, err)
		}
		return ast.TreatXrefsAsGenusDifferentia{
			Trivia: tv, Prefix: prefix,
			Relation: ident.NewRelationId(rel), Class: ident.NewClassId(cls),
		}, nil
	case "treat-xrefs-as-reverse-genus-differentia":
		sc := newRestScanner(trim)
		prefixField, _ := sc.nextField()
		relField, _ := sc.nextField()
		classField, _ := sc.nextField()
		prefix, err := ident.ParsePrefix(prefixField)
		if err != nil {
			return nil, wrap(node, err)
		}
		rel, err := ident.Parse(relField)
		if err != nil {
			return nil, wrap(node, err)
		}
		cls, err := ident.Parse(classField)
		if err != nil {
			return nil, wrap(node, err)
		}
		return ast.TreatXrefsAsReverseGenusDifferentia{
			Trivia: tv, Prefix: prefix,
			Relation: ident.NewRelationId(rel), Class: ident.NewClassId(cls),
		}, nil
	case "treat-xrefs-as-relationship":
		sc := newRestScanner(trim)
		prefixField, _ := sc.nextField()
		relField, _ := sc.nextField()
		prefix, err := ident.ParsePrefix(prefixField)
		if err != nil {
			return nil, wrap(node, err)
		}
		rel, err := ident.Parse(relField)
		if err != nil {
			return nil, wrap(node, err)
		}
		return ast.TreatXrefsAsRelationship{Trivia: tv, Prefix: prefix, Relation: ident.NewRelationId(rel)}, nil
	case "treat-xrefs-as-is_a":
		prefix, err := ident.ParsePrefix(trim)
		if err != nil {
			return nil, wrap(node, err)
		}
		return ast.TreatXrefsAsIsA{Trivia: tv, Prefix: prefix}, nil
	case "treat-xrefs-as-has-subclass":
		prefix, err := ident.ParsePrefix(trim)
		if err != nil {
			return nil, wrap(node, err)
		}
		return ast.TreatXrefsAsHasSubclass{Trivia: tv, Prefix: prefix}, nil
	case "property_value":
		pv, err := parsePropertyValue(trim)
		if err != nil {
			return nil, wrap(node, err)
		}
		return ast.HeaderPropertyValue{Trivia: tv, Value: pv}, nil
	case "remark":
		return ast.Remark{Trivia: tv, Value: value.ParseUnquotedString(trim)}, nil
	case "ontology":
		return ast.Ontology{Trivia: tv, Value: value.ParseUnquotedString(trim)}, nil
	case "owl-axioms":
		return ast.OwlAxioms{Trivia: tv, Value: value.ParseUnquotedString(trim)}, nil
	default:
		return ast.Unreserved{Trivia: tv, TagText: node.Tag, Value: value.ParseUnquotedString(trim)}, nil
	}
}

// parsePropertyValue decodes a "property_value" payload shared by
// header, term, typedef, and instance clauses: either "relation target"
// or "relation \"literal\" datatype".
func parsePropertyValue(text string) (value.PropertyValue, error) {
	sc := newRestScanner(text)
	relField, ok := sc.nextField()
	if !ok {
		return nil, newSyntaxErrorf("property_value relation", "empty value")
	}
	relId, err := ident.Parse(relField)
	if err != nil {
		return nil, err
	}
	relation := ident.NewRelationId(relId)

	second, ok := sc.nextField()
	if !ok {
		return nil, newSyntaxErrorf("property_value target", "missing")
	}
	if strings.HasPrefix(second, "\"") {
		literal := value.ParseQuotedString(second)
		datatypeField, ok := sc.nextField()
		if !ok {
			return nil, newSyntaxErrorf("property_value datatype", "missing")
		}
		datatype, err := ident.Parse(datatypeField)
		if err != nil {
			return nil, err
		}
		return value.TypedPropertyValue{Relation: relation, Literal: literal, Datatype: datatype}, nil
	}
	target, err := ident.Parse(second)
	if err != nil {
		return nil, err
	}
	return value.IdentifiedPropertyValue{Relation: relation, Target: target}, nil
}

func wrap(node *parsetree.Node, err error) error {
	return &oboerr.SyntaxError{
		Pos:     oboerr.Position{Line: node.Line, Column: node.Column},
		Message: err.Error(),
	}
}
