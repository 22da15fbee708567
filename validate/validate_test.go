package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ha1tch/goobo/ast"
	"github.com/ha1tch/goobo/ident"
	"github.com/ha1tch/goobo/oboerr"
	"github.com/ha1tch/goobo/value"
)

func mustId(t *testing.T, text string) ident.Ident {
	t.Helper()
	id, err := ident.Parse(text)
	require.NoError(t, err)
	return id
}

func TestValidateDetectsDuplicateZeroOrOne(t *testing.T) {
	doc := &ast.Document{
		Entities: []ast.EntityFrame{
			&ast.TermFrame{
				Id: ident.NewClassId(mustId(t, "GO:0000001")),
				Clauses: []ast.TermClause{
					ast.TermName{Value: value.UnquotedString{Value: "a"}},
					ast.TermName{Value: value.UnquotedString{Value: "b"}},
				},
			},
		},
	}
	errs := Validate(doc)
	require.Len(t, errs, 1)
	assert.Equal(t, oboerr.CardinalityViolated, errs[0].Kind)
}

func TestValidateRequiresTypedefNamespace(t *testing.T) {
	doc := &ast.Document{
		Entities: []ast.EntityFrame{
			&ast.TypedefFrame{
				Id: ident.NewRelationId(mustId(t, "part_of")),
			},
		},
	}
	errs := Validate(doc)
	found := false
	for _, e := range errs {
		if e.ClauseTag == "namespace" {
			found = true
		}
	}
	assert.True(t, found, "expected a missing-namespace violation, got %+v", errs)
}

func TestValidatePassesCleanDocument(t *testing.T) {
	doc := &ast.Document{
		Entities: []ast.EntityFrame{
			&ast.TypedefFrame{
				Id: ident.NewRelationId(mustId(t, "part_of")),
				Clauses: []ast.TypedefClause{
					ast.TypedefNamespace{Value: ident.NewNamespaceId(mustId(t, "external"))},
				},
			},
		},
	}
	assert.Empty(t, Validate(doc))
}
