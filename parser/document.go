package parser

import (
	"strings"

	"github.com/ha1tch/goobo/ast"
	"github.com/ha1tch/goobo/ident"
	"github.com/ha1tch/goobo/oboerr"
	"github.com/ha1tch/goobo/parsetree"
)

// ParseDocument builds a complete ast.Document from OBO source text.
func ParseDocument(input string) (*ast.Document, error) {
	root, err := parsetree.ParseOboDoc(input)
	if err != nil {
		return nil, err
	}
	doc := &ast.Document{}
	for _, child := range root.Children {
		switch child.Rule {
		case parsetree.RuleHeaderFrame:
			hf, err := buildHeaderFrame(child)
			if err != nil {
				return nil, err
			}
			doc.Header = *hf
		case parsetree.RuleEntitySingle:
			frame, err := buildEntityFrame(child.Children[0])
			if err != nil {
				return nil, err
			}
			doc.Entities = append(doc.Entities, frame)
		}
	}
	return doc, nil
}

func buildHeaderFrame(node *parsetree.Node) (*ast.HeaderFrame, error) {
	hf := &ast.HeaderFrame{}
	for _, c := range node.Children {
		clause, err := buildHeaderClause(c)
		if err != nil {
			return nil, err
		}
		hf.Clauses = append(hf.Clauses, clause)
	}
	return hf, nil
}

// ParseHeaderFrame builds an ast.HeaderFrame from text with no entity
// stanzas.
func ParseHeaderFrame(input string) (*ast.HeaderFrame, error) {
	node, err := parsetree.ParseHeaderFrame(input)
	if err != nil {
		return nil, err
	}
	return buildHeaderFrame(node)
}

func buildEntityFrame(node *parsetree.Node) (ast.EntityFrame, error) {
	switch node.Rule {
	case parsetree.RuleTermFrame:
		return buildTermFrame(node)
	case parsetree.RuleTypedefFrame:
		return buildTypedefFrame(node)
	case parsetree.RuleInstanceFrame:
		return buildInstanceFrame(node)
	default:
		return nil, &oboerr.SyntaxError{
			Pos:      oboerr.Position{Line: node.Line, Column: node.Column},
			Expected: "Term, Typedef, or Instance frame",
			Found:    node.Rule.String(),
		}
	}
}

// ParseEntityFrame builds exactly one EntityFrame from text consisting
// of a single stanza (its header line and clause lines).
func ParseEntityFrame(input string) (ast.EntityFrame, error) {
	node, err := parsetree.ParseEntitySingle(input)
	if err != nil {
		return nil, err
	}
	return buildEntityFrame(node.Children[0])
}

func missingIdErr(node *parsetree.Node) error {
	return &oboerr.SyntaxError{
		Pos:      oboerr.Position{Line: node.Line, Column: node.Column},
		Expected: "id clause",
		Found:    "none",
	}
}

func buildTermFrame(node *parsetree.Node) (*ast.TermFrame, error) {
	frame := &ast.TermFrame{}
	sawId := false
	for _, c := range node.Children {
		if c.Tag == "id" {
			id, err := ident.Parse(strings.TrimSpace(c.Rest))
			if err != nil {
				return nil, wrap(c, err)
			}
			frame.Id = ident.NewClassId(id)
			sawId = true
			continue
		}
		clause, err := buildTermClause(c)
		if err != nil {
			return nil, err
		}
		frame.Clauses = append(frame.Clauses, clause)
	}
	if !sawId {
		return nil, missingIdErr(node)
	}
	return frame, nil
}

func buildTypedefFrame(node *parsetree.Node) (*ast.TypedefFrame, error) {
	frame := &ast.TypedefFrame{}
	sawId := false
	for _, c := range node.Children {
		if c.Tag == "id" {
			id, err := ident.Parse(strings.TrimSpace(c.Rest))
			if err != nil {
				return nil, wrap(c, err)
			}
			frame.Id = ident.NewRelationId(id)
			sawId = true
			continue
		}
		clause, err := buildTypedefClause(c)
		if err != nil {
			return nil, err
		}
		frame.Clauses = append(frame.Clauses, clause)
	}
	if !sawId {
		return nil, missingIdErr(node)
	}
	return frame, nil
}

func buildInstanceFrame(node *parsetree.Node) (*ast.InstanceFrame, error) {
	frame := &ast.InstanceFrame{}
	sawId := false
	for _, c := range node.Children {
		if c.Tag == "id" {
			id, err := ident.Parse(strings.TrimSpace(c.Rest))
			if err != nil {
				return nil, wrap(c, err)
			}
			frame.Id = ident.NewInstanceId(id)
			sawId = true
			continue
		}
		clause, err := buildInstanceClause(c)
		if err != nil {
			return nil, err
		}
		frame.Clauses = append(frame.Clauses, clause)
	}
	if !sawId {
		return nil, missingIdErr(node)
	}
	return frame, nil
}
